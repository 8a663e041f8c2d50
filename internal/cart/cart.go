// Package cart holds the transient working set for the current transaction.
//
// Entries are keyed by the product's stable row ID, not by full value
// equality: a catalog edit to a product already in the cart must not strand
// its quantity under a stale key. The product fields kept here are a
// snapshot, refreshed explicitly when the catalog row changes.
package cart

import (
	"sync"

	"github.com/tehkencana/pos/internal/models"
)

// Line is one cart entry: a product snapshot plus a positive quantity.
type Line struct {
	Product  models.Product
	Quantity int
}

// Subtotal is the line's price × quantity, as a real number. Display and
// receipt layers truncate toward zero.
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart maps products to quantities, preserving insertion order for receipt
// iteration. Invariant: no entry has quantity <= 0.
//
// The mutex covers concurrent HTTP handlers; there is no finer coordination
// because only one checkout flow mutates the cart at a time.
type Cart struct {
	mu    sync.Mutex
	lines map[int64]*Line
	order []int64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: make(map[int64]*Line)}
}

// AddOrAdjust applies a quantity delta for the product. The new quantity is
// clamped at zero; a zero result removes the entry entirely rather than
// storing a zero row.
func (c *Cart) AddOrAdjust(product models.Product, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[product.ID]
	if !ok {
		if delta <= 0 {
			return
		}
		c.lines[product.ID] = &Line{Product: product, Quantity: delta}
		c.order = append(c.order, product.ID)
		return
	}

	line.Quantity += delta
	line.Product = product
	if line.Quantity <= 0 {
		c.removeLocked(product.ID)
	}
}

// RefreshProduct updates the stored snapshot for a product already in the
// cart, keeping its quantity. No-op when the product is not present.
func (c *Cart) RefreshProduct(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[product.ID]; ok {
		line.Product = product
	}
}

// RemoveProduct drops the entry for a product regardless of quantity. Used
// when the catalog row is deleted (directly or via category cascade).
func (c *Cart) RemoveProduct(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id int64) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[int64]*Line)
	c.order = nil
}

// Quantity returns the current quantity for a product, 0 when absent.
func (c *Cart) Quantity(id int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[id]; ok {
		return line.Quantity
	}
	return 0
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Lines returns a snapshot of the cart in insertion order. The returned
// slice is independent of the live cart.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

// Total sums price × quantity over all entries, as a real number.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}
