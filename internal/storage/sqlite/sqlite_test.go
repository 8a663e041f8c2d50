package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tehkencana/pos/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func addCategory(t *testing.T, store *SQLiteStore, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	if err := store.AddCategory(context.Background(), c); err != nil {
		t.Fatalf("AddCategory(%q) failed: %v", name, err)
	}
	return c
}

func addProduct(t *testing.T, store *SQLiteStore, name string, price float64, categoryID int64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price, CategoryID: categoryID}
	if err := store.AddProduct(context.Background(), p); err != nil {
		t.Fatalf("AddProduct(%q) failed: %v", name, err)
	}
	return p
}

func TestCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("AddCategory assigns sequential positions", func(t *testing.T) {
		a := addCategory(t, store, "Minuman")
		b := addCategory(t, store, "Makanan")

		if a.ID == 0 || b.ID == 0 {
			t.Error("expected generated IDs")
		}
		if a.Position != 0 || b.Position != 1 {
			t.Errorf("positions = %d, %d; want 0, 1", a.Position, b.Position)
		}
	})

	t.Run("ListCategories orders by position then id desc", func(t *testing.T) {
		c := addCategory(t, store, "Snack")

		// Force a position collision with the first category
		c.Position = 0
		if err := store.UpdateCategory(ctx, c); err != nil {
			t.Fatalf("UpdateCategory failed: %v", err)
		}

		categories, err := store.ListCategories(ctx)
		if err != nil {
			t.Fatalf("ListCategories failed: %v", err)
		}
		if len(categories) != 3 {
			t.Fatalf("got %d categories, want 3", len(categories))
		}

		// Both at position 0: the newer row (higher id) lists first
		if categories[0].Name != "Snack" || categories[1].Name != "Minuman" {
			t.Errorf("tie-break order wrong: %q, %q", categories[0].Name, categories[1].Name)
		}
	})

	t.Run("UpdateCategory rejects missing row", func(t *testing.T) {
		err := store.UpdateCategory(ctx, &models.Category{ID: 9999, Name: "Ghost"})
		if err == nil {
			t.Error("expected error for missing category")
		}
	})
}

func TestReorderCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := addCategory(t, store, "A")
	b := addCategory(t, store, "B")
	c := addCategory(t, store, "C")

	// Reverse the order
	if err := store.ReorderCategories(ctx, []int64{c.ID, b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderCategories failed: %v", err)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	wantNames := []string{"C", "B", "A"}
	for i, want := range wantNames {
		if categories[i].Name != want {
			t.Errorf("position %d: got %q, want %q", i, categories[i].Name, want)
		}
		if categories[i].Position != i {
			t.Errorf("position %d: stored position = %d", i, categories[i].Position)
		}
	}
}

func TestProducts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	cat := addCategory(t, store, "Minuman")

	t.Run("AddProduct assigns position within its category", func(t *testing.T) {
		other := addCategory(t, store, "Makanan")

		p1 := addProduct(t, store, "Es Teh", 5000, cat.ID)
		p2 := addProduct(t, store, "Kopi", 8000, cat.ID)
		p3 := addProduct(t, store, "Nasi Goreng", 15000, other.ID)

		if p1.Position != 0 || p2.Position != 1 {
			t.Errorf("positions = %d, %d; want 0, 1", p1.Position, p2.Position)
		}
		// Position scope is per category
		if p3.Position != 0 {
			t.Errorf("other category position = %d, want 0", p3.Position)
		}
	})

	t.Run("ListProducts orders by position then name", func(t *testing.T) {
		// Both new products collide at position 2
		addProduct(t, store, "Bandrek", 7000, cat.ID)
		pa := addProduct(t, store, "Air Mineral", 3000, cat.ID)
		pa.Position = 2
		if err := store.UpdateProduct(ctx, pa); err != nil {
			t.Fatalf("UpdateProduct failed: %v", err)
		}

		products, err := store.ListProducts(ctx, cat.ID)
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		if len(products) != 4 {
			t.Fatalf("got %d products, want 4", len(products))
		}

		// Position 2 collision resolves alphabetically
		if products[2].Name != "Air Mineral" || products[3].Name != "Bandrek" {
			t.Errorf("tie-break order wrong: %q, %q", products[2].Name, products[3].Name)
		}
	})

	t.Run("GetProduct returns nil for missing row", func(t *testing.T) {
		p, err := store.GetProduct(ctx, 9999)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if p != nil {
			t.Errorf("expected nil, got %+v", p)
		}
	})

	t.Run("DeleteProduct removes the row", func(t *testing.T) {
		p := addProduct(t, store, "Temp", 1000, cat.ID)
		if err := store.DeleteProduct(ctx, p.ID); err != nil {
			t.Fatalf("DeleteProduct failed: %v", err)
		}

		got, err := store.GetProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if got != nil {
			t.Error("product still present after delete")
		}
	})
}

func TestDeleteCategoryCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cat := addCategory(t, store, "Minuman")
	keep := addCategory(t, store, "Makanan")

	addProduct(t, store, "Es Teh", 5000, cat.ID)
	addProduct(t, store, "Kopi", 8000, cat.ID)
	survivor := addProduct(t, store, "Nasi Goreng", 15000, keep.ID)

	removed, err := store.DeleteCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}

	// The cascade must report what it removed
	if len(removed) != 2 {
		t.Fatalf("got %d removed products, want 2", len(removed))
	}

	products, err := store.ListProducts(ctx, cat.ID)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected no products in deleted category, got %d", len(products))
	}

	// Other categories untouched
	got, err := store.GetProduct(ctx, survivor.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got == nil {
		t.Error("survivor product was deleted")
	}
}

func TestReorderProductsPartial(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	cat := addCategory(t, store, "Minuman")

	var ids []int64
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		ids = append(ids, addProduct(t, store, name, 1000, cat.ID).ID)
	}

	// Reorder only 2 of 5: D and E take positions 0 and 1; A, B, C keep
	// positions 0, 1, 2. No error: the tie-break defines display order.
	if err := store.ReorderProducts(ctx, []int64{ids[3], ids[4]}); err != nil {
		t.Fatalf("ReorderProducts failed: %v", err)
	}

	products, err := store.ListProducts(ctx, cat.ID)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}

	byName := make(map[string]int)
	for _, p := range products {
		byName[p.Name] = p.Position
	}
	wantPositions := map[string]int{"A": 0, "B": 1, "C": 2, "D": 0, "E": 1}
	for name, want := range wantPositions {
		if byName[name] != want {
			t.Errorf("%s position = %d, want %d", name, byName[name], want)
		}
	}

	// Duplicate positions resolve alphabetically: A before D, B before E
	wantOrder := []string{"A", "D", "B", "E", "C"}
	for i, want := range wantOrder {
		if products[i].Name != want {
			t.Errorf("display slot %d: got %q, want %q", i, products[i].Name, want)
		}
	}
}

func TestPrinterAddress(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("unset selection is empty, not an error", func(t *testing.T) {
		addr, err := store.PrinterAddress(ctx)
		if err != nil {
			t.Fatalf("PrinterAddress failed: %v", err)
		}
		if addr != "" {
			t.Errorf("addr = %q, want empty", addr)
		}
	})

	t.Run("set and overwrite", func(t *testing.T) {
		if err := store.SetPrinterAddress(ctx, "AA:BB:CC:DD:EE:FF"); err != nil {
			t.Fatalf("SetPrinterAddress failed: %v", err)
		}
		if err := store.SetPrinterAddress(ctx, "11:22:33:44:55:66"); err != nil {
			t.Fatalf("SetPrinterAddress failed: %v", err)
		}

		addr, err := store.PrinterAddress(ctx)
		if err != nil {
			t.Fatalf("PrinterAddress failed: %v", err)
		}
		if addr != "11:22:33:44:55:66" {
			t.Errorf("addr = %q, want the overwritten value", addr)
		}
	})
}
