// Package maquette is a Go client for the Maquette project service API.
package maquette

import "time"

// SheetType names one of the three project sheet variants.
type SheetType string

const (
	SheetWalkthrough SheetType = "walkthrough"
	SheetChecklist   SheetType = "checklist"
	SheetFFE         SheetType = "ffe"
)

// Project is the root aggregate. Rooms are populated only when fetched
// with a sheet type.
type Project struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Rooms      []Room    `json:"rooms"`
}

// Room is one room on one sheet.
type Room struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Name       string     `json:"name"`
	SheetType  SheetType  `json:"sheet_type"`
	OrderIndex int        `json:"order_index"`
	Categories []Category `json:"categories"`
}

// Category groups subcategories within a room.
type Category struct {
	ID            string        `json:"id"`
	RoomID        string        `json:"room_id"`
	Name          string        `json:"name"`
	Color         string        `json:"color,omitempty"`
	OrderIndex    int           `json:"order_index"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory groups items within a category.
type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
	Items      []Item `json:"items"`
}

// Item is the leaf entity.
type Item struct {
	ID            string  `json:"id"`
	SubcategoryID string  `json:"subcategory_id"`
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	Quantity      int     `json:"quantity"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status"`
	Link          string  `json:"link,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	OrderIndex    int     `json:"order_index"`
}

// CreateProjectParams creates a project.
type CreateProjectParams struct {
	Name       string `json:"name"`
	ClientName string `json:"client_name,omitempty"`
	Address    string `json:"address,omitempty"`
}

// CreateRoomParams creates a room on a sheet.
type CreateRoomParams struct {
	Name         string    `json:"name"`
	ProjectID    string    `json:"project_id"`
	SheetType    SheetType `json:"sheet_type"`
	OrderIndex   int       `json:"order_index"`
	AutoPopulate bool      `json:"auto_populate,omitempty"`
}

// CreateCategoryParams creates a category in a room.
type CreateCategoryParams struct {
	Name       string `json:"name"`
	RoomID     string `json:"room_id"`
	Color      string `json:"color,omitempty"`
	OrderIndex int    `json:"order_index"`
}

// CreateSubcategoryParams creates a subcategory in a category.
type CreateSubcategoryParams struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	OrderIndex int    `json:"order_index"`
}

// CreateItemParams creates an item in a subcategory.
type CreateItemParams struct {
	SubcategoryID string  `json:"subcategory_id"`
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
	Cost          float64 `json:"cost,omitempty"`
	Status        string  `json:"status,omitempty"`
	Link          string  `json:"link,omitempty"`
	OrderIndex    int     `json:"order_index"`
}

// TransferParams bulk-copies qualifying items between sheets of one
// project.
type TransferParams struct {
	ProjectID   string    `json:"project_id"`
	SourceSheet SheetType `json:"source_sheet"`
	TargetSheet SheetType `json:"target_sheet"`
}

// TransferResult is the aggregate outcome of a transfer run.
type TransferResult struct {
	Transferred int `json:"transferred"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

// ReorderParams moves one element within a sibling list. ScopeID is the
// parent id for category and subcategory drags.
type ReorderParams struct {
	ProjectID        string    `json:"project_id,omitempty"`
	SheetType        SheetType `json:"sheet_type,omitempty"`
	ScopeID          string    `json:"scope_id,omitempty"`
	SourceIndex      int       `json:"source_index"`
	DestinationIndex *int      `json:"destination_index"`
}

// ReorderResult reports how many sibling rewrites landed.
type ReorderResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// ItemStatus is one entry of a sheet's status vocabulary.
type ItemStatus struct {
	ID        string    `json:"id"`
	SheetType SheetType `json:"sheet_type"`
	Value     string    `json:"value"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
}

// Health is the service health descriptor.
type Health struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	ProjectCount int64  `json:"project_count"`
}
