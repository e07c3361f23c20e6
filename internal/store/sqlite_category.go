package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierworks/maquette/internal/catalog"
	"github.com/atelierworks/maquette/internal/types"
	"github.com/oklog/ulid/v2"
)

// CreateCategory inserts a category into a room.
func (s *SQLiteStore) CreateCategory(ctx context.Context, req types.CreateCategoryRequest) (*types.Category, error) {
	now := nowUTC()
	cat := types.Category{
		ID:            ulid.Make().String(),
		RoomID:        req.RoomID,
		Name:          req.Name,
		Color:         req.Color,
		OrderIndex:    req.OrderIndex,
		CreatedAt:     now,
		UpdatedAt:     now,
		Subcategories: []types.Subcategory{},
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, room_id, name, color, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, cat.ID, cat.RoomID, cat.Name, cat.Color, cat.OrderIndex,
		formatTime(cat.CreatedAt), formatTime(cat.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}

	return &cat, nil
}

// UpdateCategory patches the non-nil fields of req.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, id string, req types.UpdateCategoryRequest) (*types.Category, error) {
	cat, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Color != nil {
		cat.Color = *req.Color
	}
	if req.OrderIndex != nil {
		cat.OrderIndex = *req.OrderIndex
	}
	cat.UpdatedAt = nowUTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, color = ?, order_index = ?, updated_at = ? WHERE id = ?
	`, cat.Name, cat.Color, cat.OrderIndex, formatTime(cat.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	return cat, nil
}

// DeleteCategory removes a category; its subcategories cascade.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return requireAffected(res)
}

// ListCategories returns the ordered sibling list of categories in a room.
func (s *SQLiteStore) ListCategories(ctx context.Context, roomID string) ([]types.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, room_id, name, color, order_index, created_at, updated_at
		FROM categories WHERE room_id = ?
		ORDER BY order_index, created_at
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []types.Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

func (s *SQLiteStore) getCategory(ctx context.Context, id string) (*types.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, room_id, name, color, order_index, created_at, updated_at
		FROM categories WHERE id = ?
	`, id)
	return scanCategory(row)
}

func scanCategory(scanner interface{ Scan(...any) error }) (*types.Category, error) {
	var cat types.Category
	var createdAt, updatedAt string

	err := scanner.Scan(&cat.ID, &cat.RoomID, &cat.Name, &cat.Color, &cat.OrderIndex, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}

	cat.CreatedAt = parseTime(createdAt)
	cat.UpdatedAt = parseTime(updatedAt)
	cat.Subcategories = []types.Subcategory{}
	return &cat, nil
}

// PopulateCategory creates one catalog category in a room, pre-filled
// with its standard subcategories and one placeholder item each.
func (s *SQLiteStore) PopulateCategory(ctx context.Context, roomID, categoryName string) (*types.Category, error) {
	tpl, ok := catalog.Lookup(categoryName)
	if !ok {
		return nil, ErrUnknownCategory
	}

	// New category goes to the end of the room's list.
	existing, err := s.ListCategories(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return s.populateFromTemplate(ctx, roomID, tpl, len(existing))
}

// populateFromTemplate materializes a catalog template under a room.
func (s *SQLiteStore) populateFromTemplate(ctx context.Context, roomID string, tpl catalog.Template, orderIndex int) (*types.Category, error) {
	cat, err := s.CreateCategory(ctx, types.CreateCategoryRequest{
		Name:       tpl.Name,
		RoomID:     roomID,
		Color:      tpl.Color,
		OrderIndex: orderIndex,
	})
	if err != nil {
		return nil, err
	}

	for i, subName := range tpl.Subcategories {
		sub, err := s.CreateSubcategory(ctx, types.CreateSubcategoryRequest{
			Name:       subName,
			CategoryID: cat.ID,
			OrderIndex: i,
		})
		if err != nil {
			return nil, err
		}

		// Each subcategory starts with one editable placeholder row.
		item, err := s.CreateItem(ctx, types.CreateItemRequest{
			SubcategoryID: sub.ID,
			Name:          types.PlaceholderItemName,
			Quantity:      1,
		})
		if err != nil {
			return nil, err
		}
		sub.Items = append(sub.Items, *item)
		cat.Subcategories = append(cat.Subcategories, *sub)
	}

	return cat, nil
}
