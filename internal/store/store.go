package store

import (
	"context"

	"github.com/atelierworks/maquette/internal/types"
)

// Store defines the persistence contract for all project tree operations.
type Store interface {
	CreateProject(ctx context.Context, req types.CreateProjectRequest) (*types.Project, error)
	GetProject(ctx context.Context, id string) (*types.Project, error)
	GetProjectTree(ctx context.Context, id string, sheet types.SheetType) (*types.Project, error)
	UpdateProject(ctx context.Context, id string, req types.UpdateProjectRequest) (*types.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]types.Project, error)

	CreateRoom(ctx context.Context, req types.CreateRoomRequest) (*types.Room, error)
	UpdateRoom(ctx context.Context, id string, req types.UpdateRoomRequest) (*types.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	ListRooms(ctx context.Context, projectID string, sheet types.SheetType) ([]types.Room, error)

	CreateCategory(ctx context.Context, req types.CreateCategoryRequest) (*types.Category, error)
	UpdateCategory(ctx context.Context, id string, req types.UpdateCategoryRequest) (*types.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context, roomID string) ([]types.Category, error)

	CreateSubcategory(ctx context.Context, req types.CreateSubcategoryRequest) (*types.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id string, req types.UpdateSubcategoryRequest) (*types.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
	ListSubcategories(ctx context.Context, categoryID string) ([]types.Subcategory, error)

	CreateItem(ctx context.Context, req types.CreateItemRequest) (*types.Item, error)
	UpdateItem(ctx context.Context, id string, req types.UpdateItemRequest) (*types.Item, error)
	DeleteItem(ctx context.Context, id string) error

	ListItemStatuses(ctx context.Context, sheet types.SheetType) ([]types.ItemStatus, error)
	PopulateCategory(ctx context.Context, roomID, categoryName string) (*types.Category, error)

	CountProjects(ctx context.Context) (int64, error)
	Close() error
}
