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

// CreateRoom inserts a room into a project sheet. With AutoPopulate set
// the room is seeded with the full standard category set from the catalog.
func (s *SQLiteStore) CreateRoom(ctx context.Context, req types.CreateRoomRequest) (*types.Room, error) {
	if !req.SheetType.Valid() {
		return nil, ErrInvalidSheetType
	}

	now := nowUTC()
	room := types.Room{
		ID:         ulid.Make().String(),
		ProjectID:  req.ProjectID,
		Name:       req.Name,
		SheetType:  req.SheetType,
		OrderIndex: req.OrderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
		Categories: []types.Category{},
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rooms (id, project_id, name, sheet_type, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, room.ID, room.ProjectID, room.Name, string(room.SheetType), room.OrderIndex,
		formatTime(room.CreatedAt), formatTime(room.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("inserting room: %w", err)
	}

	if req.AutoPopulate {
		for i, tpl := range catalog.All() {
			cat, err := s.populateFromTemplate(ctx, room.ID, tpl, i)
			if err != nil {
				return nil, err
			}
			room.Categories = append(room.Categories, *cat)
		}
	}

	return &room, nil
}

// UpdateRoom patches the non-nil fields of req.
func (s *SQLiteStore) UpdateRoom(ctx context.Context, id string, req types.UpdateRoomRequest) (*types.Room, error) {
	room, err := s.getRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.OrderIndex != nil {
		room.OrderIndex = *req.OrderIndex
	}
	room.UpdatedAt = nowUTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE rooms SET name = ?, order_index = ?, updated_at = ? WHERE id = ?
	`, room.Name, room.OrderIndex, formatTime(room.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("updating room: %w", err)
	}

	return room, nil
}

// DeleteRoom removes a room; its categories cascade.
func (s *SQLiteStore) DeleteRoom(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}
	return requireAffected(res)
}

// ListRooms returns the ordered sibling list of rooms for one project sheet.
func (s *SQLiteStore) ListRooms(ctx context.Context, projectID string, sheet types.SheetType) ([]types.Room, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, name, sheet_type, order_index, created_at, updated_at
		FROM rooms WHERE project_id = ? AND sheet_type = ?
		ORDER BY order_index, created_at
	`, projectID, string(sheet))
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	rooms := []types.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rooms: %w", err)
	}
	return rooms, nil
}

func (s *SQLiteStore) getRoom(ctx context.Context, id string) (*types.Room, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, project_id, name, sheet_type, order_index, created_at, updated_at
		FROM rooms WHERE id = ?
	`, id)
	return scanRoom(row)
}

func scanRoom(scanner interface{ Scan(...any) error }) (*types.Room, error) {
	var room types.Room
	var sheet, createdAt, updatedAt string

	err := scanner.Scan(&room.ID, &room.ProjectID, &room.Name, &sheet, &room.OrderIndex, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning room: %w", err)
	}

	room.SheetType = types.SheetType(sheet)
	room.CreatedAt = parseTime(createdAt)
	room.UpdatedAt = parseTime(updatedAt)
	room.Categories = []types.Category{}
	return &room, nil
}
