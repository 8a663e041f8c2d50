// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/tehkencana/pos/internal/models"
)

// Store defines the interface for catalog and settings persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// ListCategories returns every category ordered by (position ASC,
	// id DESC).
	ListCategories(ctx context.Context) ([]models.Category, error)

	// AddCategory persists a new category at the end of the display order
	// (max existing position + 1, 0 for an empty catalog). The ID and
	// Position fields are populated by the store.
	AddCategory(ctx context.Context, category *models.Category) error

	// UpdateCategory overwrites name, image and position of an existing
	// category. Returns an error if the row does not exist.
	UpdateCategory(ctx context.Context, category *models.Category) error

	// DeleteCategory removes a category and all its products in a single
	// transaction. It returns the products that were removed so the
	// caller can reconcile dependent state (the cart); the cascade is
	// deliberate, not fire-and-forget.
	DeleteCategory(ctx context.Context, id int64) ([]models.Product, error)

	// ReorderCategories rewrites the position of each listed category to
	// its index in ids, in one transaction. The sequence is not required
	// to be a permutation of the catalog: omitted rows keep their old
	// position and the listing tie-break resolves any duplicates.
	ReorderCategories(ctx context.Context, ids []int64) error

	// ListProducts returns the products of one category ordered by
	// (position ASC, name ASC).
	ListProducts(ctx context.Context, categoryID int64) ([]models.Product, error)

	// GetProduct retrieves a product by ID. Returns (nil, nil) when the
	// row does not exist.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)

	// AddProduct persists a new product at the end of its category's
	// display order. ID and Position are populated by the store.
	AddProduct(ctx context.Context, product *models.Product) error

	// UpdateProduct overwrites an existing product row.
	UpdateProduct(ctx context.Context, product *models.Product) error

	// DeleteProduct removes a single product.
	DeleteProduct(ctx context.Context, id int64) error

	// ReorderProducts rewrites product positions to match ids, with the
	// same non-validating semantics as ReorderCategories.
	ReorderProducts(ctx context.Context, ids []int64) error

	// PrinterAddress returns the persisted printer MAC, or "" when no
	// printer has been selected yet.
	PrinterAddress(ctx context.Context) (string, error)

	// SetPrinterAddress persists the chosen printer MAC, overwriting any
	// previous selection.
	SetPrinterAddress(ctx context.Context, addr string) error

	// Close releases any resources held by the store.
	Close() error
}
