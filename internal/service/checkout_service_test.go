package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tehkencana/pos/internal/cart"
	"github.com/tehkencana/pos/internal/models"
	"github.com/tehkencana/pos/internal/printer"
	"github.com/tehkencana/pos/internal/storage/sqlite"
)

type fakePrinter struct {
	mu       sync.Mutex
	printErr error
	calls    int
	lastAddr string
	lastData []byte
}

func (p *fakePrinter) Print(ctx context.Context, addr string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.lastAddr = addr
	p.lastData = payload
	return p.printErr
}

func (p *fakePrinter) snapshot() (int, string, []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls, p.lastAddr, p.lastData
}

func newCheckoutFixture(t *testing.T, fp *fakePrinter) (*CheckoutService, *cart.Cart, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	c := cart.New()
	return NewCheckoutService(store, c, fp), c, store
}

func waitForJob(t *testing.T, job *Job) {
	t.Helper()
	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("print job did not finish")
	}
}

func TestCheckoutNoDeviceSelected(t *testing.T) {
	fp := &fakePrinter{}
	svc, c, _ := newCheckoutFixture(t, fp)

	c.AddOrAdjust(models.Product{ID: 1, Name: "Es Teh", Price: 5000}, 2)

	_, err := svc.Checkout(context.Background())
	if !errors.Is(err, printer.ErrNoDeviceSelected) {
		t.Fatalf("err = %v, want ErrNoDeviceSelected", err)
	}

	// No transport work was performed
	if calls, _, _ := fp.snapshot(); calls != 0 {
		t.Errorf("printer called %d times, want 0", calls)
	}

	// The cart is kept: nothing was printed, the sale is still open
	if c.Quantity(1) != 2 {
		t.Error("cart was cleared on a declined checkout")
	}
}

func TestCheckoutPrintsAndClearsCart(t *testing.T) {
	fp := &fakePrinter{}
	svc, c, store := newCheckoutFixture(t, fp)
	ctx := context.Background()

	if err := store.SetPrinterAddress(ctx, "AA:BB:CC:DD:EE:FF"); err != nil {
		t.Fatalf("SetPrinterAddress failed: %v", err)
	}

	c.AddOrAdjust(models.Product{ID: 1, Name: "Es Teh Manis", Price: 5000}, 2)
	c.AddOrAdjust(models.Product{ID: 2, Name: "Nasi Goreng", Price: 15000}, 1)

	job, err := svc.Checkout(ctx)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if job.ID == "" {
		t.Error("expected a job ID")
	}

	// Cleared at dispatch, before the transfer completes
	if c.Len() != 0 {
		t.Error("cart not cleared after dispatch")
	}

	waitForJob(t, job)
	if job.Err() != nil {
		t.Fatalf("job failed: %v", job.Err())
	}

	calls, addr, payload := fp.snapshot()
	if calls != 1 {
		t.Fatalf("printer called %d times, want 1", calls)
	}
	if addr != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("printed to %q", addr)
	}

	text := string(payload)
	if !strings.Contains(text, "TOTAL: Rp 25000\n") {
		t.Errorf("payload missing total line:\n%q", text)
	}
	if !strings.Contains(text, "Es Teh Manis      2x     10000\n") {
		t.Errorf("payload missing item line:\n%q", text)
	}
}

func TestCheckoutFailureStillClearsCart(t *testing.T) {
	fp := &fakePrinter{printErr: errors.New("device unreachable")}
	svc, c, store := newCheckoutFixture(t, fp)
	ctx := context.Background()

	if err := store.SetPrinterAddress(ctx, "AA:BB:CC:DD:EE:FF"); err != nil {
		t.Fatalf("SetPrinterAddress failed: %v", err)
	}
	c.AddOrAdjust(models.Product{ID: 1, Name: "Es Teh", Price: 5000}, 1)

	job, err := svc.Checkout(ctx)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	waitForJob(t, job)

	// A print attempt was made; its failure is terminal and does not
	// restore the cart
	if job.Err() == nil {
		t.Error("expected job error")
	}
	if c.Len() != 0 {
		t.Error("cart not cleared after failed attempt")
	}
}

func TestCheckoutJobLookup(t *testing.T) {
	fp := &fakePrinter{}
	svc, c, store := newCheckoutFixture(t, fp)
	ctx := context.Background()

	if err := store.SetPrinterAddress(ctx, "AA:BB:CC:DD:EE:FF"); err != nil {
		t.Fatalf("SetPrinterAddress failed: %v", err)
	}
	c.AddOrAdjust(models.Product{ID: 1, Name: "Es Teh", Price: 5000}, 1)

	job, err := svc.Checkout(ctx)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	got, ok := svc.Job(job.ID)
	if !ok || got != job {
		t.Error("dispatched job not found by ID")
	}
	if _, ok := svc.Job("missing"); ok {
		t.Error("unexpected job for unknown ID")
	}

	waitForJob(t, job)
	if !job.Finished() {
		t.Error("job should report finished")
	}
}

func TestCheckoutEmptyCartStillPrints(t *testing.T) {
	// The formatter has no error path: an empty cart produces a
	// header/footer receipt with total 0
	fp := &fakePrinter{}
	svc, _, store := newCheckoutFixture(t, fp)
	ctx := context.Background()

	if err := store.SetPrinterAddress(ctx, "AA:BB:CC:DD:EE:FF"); err != nil {
		t.Fatalf("SetPrinterAddress failed: %v", err)
	}

	job, err := svc.Checkout(ctx)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	waitForJob(t, job)

	_, _, payload := fp.snapshot()
	if !strings.Contains(string(payload), "TOTAL: Rp 0\n") {
		t.Errorf("payload missing zero total:\n%q", payload)
	}
}
