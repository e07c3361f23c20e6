package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierworks/maquette/internal/types"
	"github.com/oklog/ulid/v2"
)

// CreateItem inserts an item into a subcategory.
func (s *SQLiteStore) CreateItem(ctx context.Context, req types.CreateItemRequest) (*types.Item, error) {
	now := nowUTC()
	item := types.Item{
		ID:             ulid.Make().String(),
		SubcategoryID:  req.SubcategoryID,
		Name:           req.Name,
		Vendor:         req.Vendor,
		SKU:            req.SKU,
		Quantity:       req.Quantity,
		Cost:           req.Cost,
		Size:           req.Size,
		FinishColor:    req.FinishColor,
		Status:         req.Status,
		Carrier:        req.Carrier,
		Link:           req.Link,
		ImageURL:       req.ImageURL,
		Remarks:        req.Remarks,
		TrackingNumber: req.TrackingNumber,
		OrderDate:      req.OrderDate,
		OrderNumber:    req.OrderNumber,
		OrderIndex:     req.OrderIndex,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (
			id, subcategory_id, name, vendor, sku, quantity, cost, size,
			finish_color, status, carrier, link, image_url, remarks,
			tracking_number, order_date, order_number, order_index,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.SubcategoryID, item.Name, item.Vendor, item.SKU,
		item.Quantity, item.Cost, item.Size, item.FinishColor, item.Status,
		item.Carrier, item.Link, item.ImageURL, item.Remarks,
		item.TrackingNumber, item.OrderDate, item.OrderNumber, item.OrderIndex,
		formatTime(item.CreatedAt), formatTime(item.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}

	return &item, nil
}

// UpdateItem patches the non-nil fields of req. Field edits from the UI
// arrive one at a time, so most calls set a single field.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id string, req types.UpdateItemRequest) (*types.Item, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	applyItemPatch(item, req)
	item.UpdatedAt = nowUTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE items SET
			name = ?, vendor = ?, sku = ?, quantity = ?, cost = ?, size = ?,
			finish_color = ?, status = ?, carrier = ?, link = ?, image_url = ?,
			remarks = ?, tracking_number = ?, order_date = ?, order_number = ?,
			order_index = ?, updated_at = ?
		WHERE id = ?
	`, item.Name, item.Vendor, item.SKU, item.Quantity, item.Cost, item.Size,
		item.FinishColor, item.Status, item.Carrier, item.Link, item.ImageURL,
		item.Remarks, item.TrackingNumber, item.OrderDate, item.OrderNumber,
		item.OrderIndex, formatTime(item.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return item, nil
}

func applyItemPatch(item *types.Item, req types.UpdateItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Vendor != nil {
		item.Vendor = *req.Vendor
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Cost != nil {
		item.Cost = *req.Cost
	}
	if req.Size != nil {
		item.Size = *req.Size
	}
	if req.FinishColor != nil {
		item.FinishColor = *req.FinishColor
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Carrier != nil {
		item.Carrier = *req.Carrier
	}
	if req.Link != nil {
		item.Link = *req.Link
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Remarks != nil {
		item.Remarks = *req.Remarks
	}
	if req.TrackingNumber != nil {
		item.TrackingNumber = *req.TrackingNumber
	}
	if req.OrderDate != nil {
		item.OrderDate = *req.OrderDate
	}
	if req.OrderNumber != nil {
		item.OrderNumber = *req.OrderNumber
	}
	if req.OrderIndex != nil {
		item.OrderIndex = *req.OrderIndex
	}
}

// DeleteItem removes a single item.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return requireAffected(res)
}

const itemColumns = `id, subcategory_id, name, vendor, sku, quantity, cost, size,
	finish_color, status, carrier, link, image_url, remarks,
	tracking_number, order_date, order_number, order_index, created_at, updated_at`

func (s *SQLiteStore) listItems(ctx context.Context, subcategoryID string) ([]types.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items WHERE subcategory_id = ?
		ORDER BY order_index, created_at
	`, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []types.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (s *SQLiteStore) getItem(ctx context.Context, id string) (*types.Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	return scanItem(row)
}

func scanItem(scanner interface{ Scan(...any) error }) (*types.Item, error) {
	var item types.Item
	var createdAt, updatedAt string

	err := scanner.Scan(
		&item.ID, &item.SubcategoryID, &item.Name, &item.Vendor, &item.SKU,
		&item.Quantity, &item.Cost, &item.Size, &item.FinishColor, &item.Status,
		&item.Carrier, &item.Link, &item.ImageURL, &item.Remarks,
		&item.TrackingNumber, &item.OrderDate, &item.OrderNumber, &item.OrderIndex,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	item.CreatedAt = parseTime(createdAt)
	item.UpdatedAt = parseTime(updatedAt)
	return &item, nil
}

// ListItemStatuses returns the status vocabulary for one sheet type in
// display order.
func (s *SQLiteStore) ListItemStatuses(ctx context.Context, sheet types.SheetType) ([]types.ItemStatus, error) {
	if !sheet.Valid() {
		return nil, ErrInvalidSheetType
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sheet_type, value, color, sort_order
		FROM item_statuses WHERE sheet_type = ?
		ORDER BY sort_order
	`, string(sheet))
	if err != nil {
		return nil, fmt.Errorf("listing item statuses: %w", err)
	}
	defer rows.Close()

	statuses := []types.ItemStatus{}
	for rows.Next() {
		var st types.ItemStatus
		var sheetStr string
		if err := rows.Scan(&st.ID, &sheetStr, &st.Value, &st.Color, &st.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning item status: %w", err)
		}
		st.SheetType = types.SheetType(sheetStr)
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item statuses: %w", err)
	}
	return statuses, nil
}
