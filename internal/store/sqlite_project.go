package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierworks/maquette/internal/types"
	"github.com/oklog/ulid/v2"
)

// CreateProject inserts a new project.
func (s *SQLiteStore) CreateProject(ctx context.Context, req types.CreateProjectRequest) (*types.Project, error) {
	now := nowUTC()
	p := types.Project{
		ID:         ulid.Make().String(),
		Name:       req.Name,
		ClientName: req.ClientName,
		Address:    req.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
		Rooms:      []types.Room{},
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, client_name, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.ClientName, p.Address, formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("inserting project: %w", err)
	}

	return &p, nil
}

// GetProject fetches project metadata without the room tree.
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*types.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, client_name, address, created_at, updated_at
		FROM projects WHERE id = ?
	`, id)
	return scanProject(row)
}

// GetProjectTree fetches a project with its full nested tree for one
// sheet type. Sibling lists come back ordered by order_index.
func (s *SQLiteStore) GetProjectTree(ctx context.Context, id string, sheet types.SheetType) (*types.Project, error) {
	if !sheet.Valid() {
		return nil, ErrInvalidSheetType
	}

	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	rooms, err := s.ListRooms(ctx, id, sheet)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		categories, err := s.ListCategories(ctx, rooms[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range categories {
			subcategories, err := s.ListSubcategories(ctx, categories[j].ID)
			if err != nil {
				return nil, err
			}
			for k := range subcategories {
				items, err := s.listItems(ctx, subcategories[k].ID)
				if err != nil {
					return nil, err
				}
				subcategories[k].Items = items
			}
			categories[j].Subcategories = subcategories
		}
		rooms[i].Categories = categories
	}

	p.Rooms = rooms
	return p, nil
}

// UpdateProject patches the non-nil fields of req.
func (s *SQLiteStore) UpdateProject(ctx context.Context, id string, req types.UpdateProjectRequest) (*types.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	p.UpdatedAt = nowUTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, client_name = ?, address = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.ClientName, p.Address, formatTime(p.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return p, nil
}

// DeleteProject removes a project; rooms, categories, subcategories, and
// items cascade via foreign keys.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireAffected(res)
}

// ListProjects returns all projects without their trees, newest last.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, client_name, address, created_at, updated_at
		FROM projects ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func scanProject(scanner interface{ Scan(...any) error }) (*types.Project, error) {
	var p types.Project
	var createdAt, updatedAt string

	err := scanner.Scan(&p.ID, &p.Name, &p.ClientName, &p.Address, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	p.Rooms = []types.Room{}
	return &p, nil
}

// requireAffected converts a zero-row write into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
