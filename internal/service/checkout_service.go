package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tehkencana/pos/internal/cart"
	"github.com/tehkencana/pos/internal/metrics"
	"github.com/tehkencana/pos/internal/printer"
	"github.com/tehkencana/pos/internal/receipt"
	"github.com/tehkencana/pos/internal/storage"
)

// Printer is the transmit half of the printer transport, narrowed for
// injection in tests.
type Printer interface {
	Print(ctx context.Context, addr string, payload []byte) error
}

// Job is one dispatched print transmission. The result arrives
// asynchronously: Done is closed when the transfer finishes, after which
// Err is stable.
type Job struct {
	ID   string
	done chan struct{}
	err  error
}

// Done is closed once the transmission has finished, success or failure.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Err returns the transmission result. Only valid after Done is closed.
func (j *Job) Err() error {
	select {
	case <-j.done:
		return j.err
	default:
		return nil
	}
}

// Finished reports whether the transmission has completed.
func (j *Job) Finished() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// CheckoutService turns the current cart into a receipt and pushes it to
// the selected printer on a one-shot goroutine, so the blocking socket work
// never stalls the caller.
type CheckoutService struct {
	store   storage.Store
	cart    *cart.Cart
	printer Printer

	mu   sync.Mutex
	jobs map[string]*Job
}

// NewCheckoutService creates a CheckoutService with the given collaborators.
func NewCheckoutService(store storage.Store, c *cart.Cart, p Printer) *CheckoutService {
	return &CheckoutService{
		store:   store,
		cart:    c,
		printer: p,
		jobs:    make(map[string]*Job),
	}
}

// Checkout snapshots the cart, formats the receipt and dispatches the
// transmission. It returns immediately with a Job handle; the print result
// arrives on the job.
//
// The cart is cleared once a print attempt is dispatched, whatever its
// outcome. When no printer is selected the checkout is declined with
// ErrNoDeviceSelected and the cart is kept: clearing it without even
// attempting to print would silently drop the sale.
func (s *CheckoutService) Checkout(ctx context.Context) (*Job, error) {
	metrics.Checkouts.Inc()

	addr, err := s.store.PrinterAddress(ctx)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		slog.Warn("checkout declined: no printer selected")
		return nil, printer.ErrNoDeviceSelected
	}

	lines := s.cart.Lines()
	total := s.cart.Total()

	entries := make([]receipt.Entry, len(lines))
	for i, line := range lines {
		entries[i] = receipt.Entry{
			Name:     line.Product.Name,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
		}
	}
	payload := receipt.Format(entries, total)

	job := &Job{ID: uuid.New().String(), done: make(chan struct{})}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	slog.Info("checkout dispatched",
		"job_id", job.ID,
		"items", len(lines),
		"total", total,
		"printer", addr,
	)

	go func() {
		start := time.Now()
		// Detached from the request context: once transmission starts
		// there is no cancellation.
		err := s.printer.Print(context.Background(), addr, payload)
		metrics.PrintDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.PrintJobs.WithLabelValues("error").Inc()
			slog.Error("print failed", "job_id", job.ID, "error", err)
		} else {
			metrics.PrintJobs.WithLabelValues("ok").Inc()
			slog.Info("print completed", "job_id", job.ID, "duration_ms", time.Since(start).Milliseconds())
		}

		job.err = err
		close(job.done)
	}()

	s.cart.Clear()

	return job, nil
}

// Job looks up a dispatched job by ID.
func (s *CheckoutService) Job(id string) (*Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	return job, ok
}
