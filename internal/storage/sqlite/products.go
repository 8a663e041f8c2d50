package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tehkencana/pos/internal/models"
)

// ListProducts returns the products of one category ordered by position,
// alphabetically among equal positions.
func (s *SQLiteStore) ListProducts(ctx context.Context, categoryID int64) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, category_id, position FROM products WHERE category_id = ? ORDER BY position ASC, name ASC",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Position); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetProduct retrieves a product by ID.
func (s *SQLiteStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p := &models.Product{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, category_id, position FROM products WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Position)

	if err == sql.ErrNoRows {
		return nil, nil // Product not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

// AddProduct inserts a new product at the end of its category's order.
func (s *SQLiteStore) AddProduct(ctx context.Context, product *models.Product) error {
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position)+1, 0) FROM products WHERE category_id = ?",
		product.CategoryID,
	).Scan(&product.Position)
	if err != nil {
		return fmt.Errorf("failed to compute product position: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO products (name, price, category_id, position) VALUES (?, ?, ?, ?)",
		product.Name, product.Price, product.CategoryID, product.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	product.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read product id: %w", err)
	}

	return nil
}

// UpdateProduct overwrites an existing product row.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET name = ?, price = ?, category_id = ?, position = ? WHERE id = ?",
		product.Name, product.Price, product.CategoryID, product.Position, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check product update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product not found: %d", product.ID)
	}

	return nil
}

// DeleteProduct removes a single product.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check product delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product not found: %d", id)
	}

	return nil
}

// ReorderProducts assigns each listed product the position matching its
// index in ids, in one transaction. Same non-validating semantics as
// ReorderCategories.
func (s *SQLiteStore) ReorderProducts(ctx context.Context, ids []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE products SET position = ? WHERE id = ?", i, id,
		); err != nil {
			return fmt.Errorf("failed to reposition product %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
