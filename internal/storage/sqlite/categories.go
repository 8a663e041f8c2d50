package sqlite

import (
	"context"
	"fmt"

	"github.com/tehkencana/pos/internal/models"
)

// ListCategories returns all categories ordered by position, newest-row-first
// among equal positions.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, image_uri, position FROM categories ORDER BY position ASC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURI, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// AddCategory inserts a new category at the end of the display order.
// The new row's position is max(position)+1, or 0 for an empty catalog.
func (s *SQLiteStore) AddCategory(ctx context.Context, category *models.Category) error {
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position)+1, 0) FROM categories",
	).Scan(&category.Position)
	if err != nil {
		return fmt.Errorf("failed to compute category position: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, image_uri, position) VALUES (?, ?, ?)",
		category.Name, category.ImageURI, category.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	category.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read category id: %w", err)
	}

	return nil
}

// UpdateCategory overwrites an existing category row.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, image_uri = ?, position = ? WHERE id = ?",
		category.Name, category.ImageURI, category.Position, category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check category update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category not found: %d", category.ID)
	}

	return nil
}

// DeleteCategory removes a category and, via the foreign key cascade, all of
// its products — in one transaction. The removed products are returned so
// the caller can evict them from the cart.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id int64) ([]models.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Capture the products before the cascade wipes them
	rows, err := tx.QueryContext(ctx,
		"SELECT id, name, price, category_id, position FROM products WHERE category_id = ?",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list category products: %w", err)
	}

	var removed []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Position); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		removed = append(removed, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check category delete: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("category not found: %d", id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return removed, nil
}

// ReorderCategories assigns each listed category the position matching its
// index in ids. Runs as one transaction so a partial failure cannot leave a
// half-rewritten ordering. Categories not listed keep their old position;
// the listing tie-break resolves any resulting duplicates.
func (s *SQLiteStore) ReorderCategories(ctx context.Context, ids []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE categories SET position = ? WHERE id = ?", i, id,
		); err != nil {
			return fmt.Errorf("failed to reposition category %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
