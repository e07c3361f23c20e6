package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierworks/maquette/internal/types"
	"github.com/oklog/ulid/v2"
)

// CreateSubcategory inserts a subcategory into a category.
func (s *SQLiteStore) CreateSubcategory(ctx context.Context, req types.CreateSubcategoryRequest) (*types.Subcategory, error) {
	now := nowUTC()
	sub := types.Subcategory{
		ID:         ulid.Make().String(),
		CategoryID: req.CategoryID,
		Name:       req.Name,
		OrderIndex: req.OrderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
		Items:      []types.Item{},
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subcategories (id, category_id, name, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.CategoryID, sub.Name, sub.OrderIndex,
		formatTime(sub.CreatedAt), formatTime(sub.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("inserting subcategory: %w", err)
	}

	return &sub, nil
}

// UpdateSubcategory patches the non-nil fields of req.
func (s *SQLiteStore) UpdateSubcategory(ctx context.Context, id string, req types.UpdateSubcategoryRequest) (*types.Subcategory, error) {
	sub, err := s.getSubcategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.OrderIndex != nil {
		sub.OrderIndex = *req.OrderIndex
	}
	sub.UpdatedAt = nowUTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE subcategories SET name = ?, order_index = ?, updated_at = ? WHERE id = ?
	`, sub.Name, sub.OrderIndex, formatTime(sub.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("updating subcategory: %w", err)
	}

	return sub, nil
}

// DeleteSubcategory removes a subcategory; its items cascade.
func (s *SQLiteStore) DeleteSubcategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subcategories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting subcategory: %w", err)
	}
	return requireAffected(res)
}

// ListSubcategories returns the ordered sibling list within a category.
func (s *SQLiteStore) ListSubcategories(ctx context.Context, categoryID string) ([]types.Subcategory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category_id, name, order_index, created_at, updated_at
		FROM subcategories WHERE category_id = ?
		ORDER BY order_index, created_at
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing subcategories: %w", err)
	}
	defer rows.Close()

	subcategories := []types.Subcategory{}
	for rows.Next() {
		sub, err := scanSubcategory(rows)
		if err != nil {
			return nil, err
		}
		subcategories = append(subcategories, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subcategories: %w", err)
	}
	return subcategories, nil
}

func (s *SQLiteStore) getSubcategory(ctx context.Context, id string) (*types.Subcategory, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, category_id, name, order_index, created_at, updated_at
		FROM subcategories WHERE id = ?
	`, id)
	return scanSubcategory(row)
}

func scanSubcategory(scanner interface{ Scan(...any) error }) (*types.Subcategory, error) {
	var sub types.Subcategory
	var createdAt, updatedAt string

	err := scanner.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.OrderIndex, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning subcategory: %w", err)
	}

	sub.CreatedAt = parseTime(createdAt)
	sub.UpdatedAt = parseTime(updatedAt)
	sub.Items = []types.Item{}
	return &sub, nil
}
