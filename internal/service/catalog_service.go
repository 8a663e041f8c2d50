package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tehkencana/pos/internal/cart"
	"github.com/tehkencana/pos/internal/models"
	"github.com/tehkencana/pos/internal/storage"
)

// CatalogService owns catalog mutation and keeps the cart consistent with
// it: deleting products (directly or via a category cascade) evicts them
// from the cart, editing a product refreshes its cart snapshot.
type CatalogService struct {
	store storage.Store
	cart  *cart.Cart
}

// NewCatalogService creates a CatalogService with the given storage backend
// and cart.
func NewCatalogService(store storage.Store, c *cart.Cart) *CatalogService {
	return &CatalogService{store: store, cart: c}
}

// Categories lists the catalog in display order.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// AddCategory creates a category at the end of the display order.
func (s *CatalogService) AddCategory(ctx context.Context, name, imageURI string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name must not be empty")
	}

	category := &models.Category{Name: name, ImageURI: imageURI}
	if err := s.store.AddCategory(ctx, category); err != nil {
		return nil, err
	}

	slog.Info("category added", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// UpdateCategory overwrites an existing category.
func (s *CatalogService) UpdateCategory(ctx context.Context, category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	return s.store.UpdateCategory(ctx, category)
}

// DeleteCategory removes a category with all its products and evicts those
// products from the cart. The cascade and the eviction belong together;
// the store alone cannot reconcile the cart.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}

	for _, p := range removed {
		s.cart.RemoveProduct(p.ID)
	}

	slog.Info("category deleted", "category_id", id, "products_removed", len(removed))
	return nil
}

// ReorderCategories rewrites category positions to the given order.
func (s *CatalogService) ReorderCategories(ctx context.Context, ids []int64) error {
	return s.store.ReorderCategories(ctx, ids)
}

// Products lists one category's products in display order.
func (s *CatalogService) Products(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return s.store.ListProducts(ctx, categoryID)
}

// Product retrieves a single product, nil when absent.
func (s *CatalogService) Product(ctx context.Context, id int64) (*models.Product, error) {
	return s.store.GetProduct(ctx, id)
}

// AddProduct creates a product at the end of its category's order.
func (s *CatalogService) AddProduct(ctx context.Context, name string, price float64, categoryID int64) (*models.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name must not be empty")
	}
	if price < 0 {
		return nil, fmt.Errorf("product price must not be negative")
	}

	product := &models.Product{Name: name, Price: price, CategoryID: categoryID}
	if err := s.store.AddProduct(ctx, product); err != nil {
		return nil, err
	}

	slog.Info("product added", "product_id", product.ID, "name", product.Name, "category_id", categoryID)
	return product, nil
}

// UpdateProduct overwrites a product row and refreshes its cart snapshot so
// an in-cart entry keeps its quantity under the edited product.
func (s *CatalogService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return err
	}

	s.cart.RefreshProduct(*product)
	return nil
}

// DeleteProduct removes a product and evicts it from the cart.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.cart.RemoveProduct(id)
	return nil
}

// ReorderProducts rewrites product positions to the given order.
func (s *CatalogService) ReorderProducts(ctx context.Context, ids []int64) error {
	return s.store.ReorderProducts(ctx, ids)
}
