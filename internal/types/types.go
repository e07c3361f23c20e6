package types

import "time"

// SheetType identifies a named variant of a project tree. Each sheet type
// has independent Room/Category/Subcategory/Item records and its own status
// vocabulary.
type SheetType string

const (
	SheetWalkthrough SheetType = "walkthrough"
	SheetChecklist   SheetType = "checklist"
	SheetFFE         SheetType = "ffe"
)

// Valid reports whether s is one of the known sheet types.
func (s SheetType) Valid() bool {
	switch s {
	case SheetWalkthrough, SheetChecklist, SheetFFE:
		return true
	}
	return false
}

// PlaceholderItemName is the sentinel name given to item rows created as
// empty shells. Items carrying it (or an empty name) are excluded from
// bulk transfer.
const PlaceholderItemName = "New Item"

// Project is the root aggregate. Rooms are ordered by order_index and
// scoped to one sheet type per fetch.
type Project struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Rooms      []Room    `json:"rooms"`
}

// Room belongs to exactly one project and one sheet type.
type Room struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Name       string     `json:"name"`
	SheetType  SheetType  `json:"sheet_type"`
	OrderIndex int        `json:"order_index"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Categories []Category `json:"categories"`
}

// Category belongs to one room and carries a display color.
type Category struct {
	ID            string        `json:"id"`
	RoomID        string        `json:"room_id"`
	Name          string        `json:"name"`
	Color         string        `json:"color,omitempty"`
	OrderIndex    int           `json:"order_index"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory belongs to one category.
type Subcategory struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Items      []Item    `json:"items"`
}

// Item is the leaf entity. Status values are free text drawn from the
// per-sheet vocabulary; tracking fields are only populated on FF&E sheets.
type Item struct {
	ID             string    `json:"id"`
	SubcategoryID  string    `json:"subcategory_id"`
	Name           string    `json:"name"`
	Vendor         string    `json:"vendor,omitempty"`
	SKU            string    `json:"sku,omitempty"`
	Quantity       int       `json:"quantity"`
	Cost           float64   `json:"cost"`
	Size           string    `json:"size,omitempty"`
	FinishColor    string    `json:"finish_color,omitempty"`
	Status         string    `json:"status"`
	Carrier        string    `json:"carrier,omitempty"`
	Link           string    `json:"link,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	OrderDate      string    `json:"order_date,omitempty"`
	OrderNumber    string    `json:"order_number,omitempty"`
	OrderIndex     int       `json:"order_index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsPlaceholder reports whether the item is an unedited shell row.
func (i Item) IsPlaceholder() bool {
	return i.Name == "" || i.Name == PlaceholderItemName
}

// ItemStatus is one entry of a sheet's status vocabulary with its display
// color.
type ItemStatus struct {
	ID        string    `json:"id"`
	SheetType SheetType `json:"sheet_type"`
	Value     string    `json:"value"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
}

// --- Request / response shapes ---

// CreateProjectRequest creates a new project.
type CreateProjectRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
	Address    string `json:"address"`
}

// UpdateProjectRequest patches project fields. Nil fields are untouched.
type UpdateProjectRequest struct {
	Name       *string `json:"name,omitempty"`
	ClientName *string `json:"client_name,omitempty"`
	Address    *string `json:"address,omitempty"`
}

// CreateRoomRequest creates a room within a project sheet. When
// AutoPopulate is set the room is seeded with the standard category set.
type CreateRoomRequest struct {
	Name         string    `json:"name"`
	ProjectID    string    `json:"project_id"`
	SheetType    SheetType `json:"sheet_type"`
	OrderIndex   int       `json:"order_index"`
	AutoPopulate bool      `json:"auto_populate,omitempty"`
}

// UpdateRoomRequest patches room fields.
type UpdateRoomRequest struct {
	Name       *string `json:"name,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}

// CreateCategoryRequest creates a category within a room.
type CreateCategoryRequest struct {
	Name       string `json:"name"`
	RoomID     string `json:"room_id"`
	Color      string `json:"color"`
	OrderIndex int    `json:"order_index"`
}

// UpdateCategoryRequest patches category fields.
type UpdateCategoryRequest struct {
	Name       *string `json:"name,omitempty"`
	Color      *string `json:"color,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}

// CreateSubcategoryRequest creates a subcategory within a category.
type CreateSubcategoryRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	OrderIndex int    `json:"order_index"`
}

// UpdateSubcategoryRequest patches subcategory fields.
type UpdateSubcategoryRequest struct {
	Name       *string `json:"name,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}

// CreateItemRequest creates an item within a subcategory.
type CreateItemRequest struct {
	SubcategoryID  string  `json:"subcategory_id"`
	Name           string  `json:"name"`
	Vendor         string  `json:"vendor"`
	SKU            string  `json:"sku"`
	Quantity       int     `json:"quantity"`
	Cost           float64 `json:"cost"`
	Size           string  `json:"size"`
	FinishColor    string  `json:"finish_color"`
	Status         string  `json:"status"`
	Carrier        string  `json:"carrier"`
	Link           string  `json:"link"`
	ImageURL       string  `json:"image_url"`
	Remarks        string  `json:"remarks"`
	TrackingNumber string  `json:"tracking_number"`
	OrderDate      string  `json:"order_date"`
	OrderNumber    string  `json:"order_number"`
	OrderIndex     int     `json:"order_index"`
}

// UpdateItemRequest patches item fields. One call is issued per logical
// edit, so most requests carry a single non-nil field.
type UpdateItemRequest struct {
	Name           *string  `json:"name,omitempty"`
	Vendor         *string  `json:"vendor,omitempty"`
	SKU            *string  `json:"sku,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`
	Cost           *float64 `json:"cost,omitempty"`
	Size           *string  `json:"size,omitempty"`
	FinishColor    *string  `json:"finish_color,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Carrier        *string  `json:"carrier,omitempty"`
	Link           *string  `json:"link,omitempty"`
	ImageURL       *string  `json:"image_url,omitempty"`
	Remarks        *string  `json:"remarks,omitempty"`
	TrackingNumber *string  `json:"tracking_number,omitempty"`
	OrderDate      *string  `json:"order_date,omitempty"`
	OrderNumber    *string  `json:"order_number,omitempty"`
	OrderIndex     *int     `json:"order_index,omitempty"`
}

// ReorderRequest moves one element within a sibling list. ScopeID is the
// parent room id for category drags, the parent category id for
// subcategory drags, and the project id for top-level room drags.
type ReorderRequest struct {
	ProjectID        string    `json:"project_id,omitempty"`
	SheetType        SheetType `json:"sheet_type,omitempty"`
	ScopeID          string    `json:"scope_id,omitempty"`
	SourceIndex      int       `json:"source_index"`
	DestinationIndex *int      `json:"destination_index"`
}

// ReorderResult reports how many sibling rewrites were applied. Failed
// counts writes that did not land; the in-memory order is not rolled back.
type ReorderResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// TransferRequest bulk-copies qualifying items from one sheet to another
// within the same project.
type TransferRequest struct {
	ProjectID   string    `json:"project_id"`
	SourceSheet SheetType `json:"source_sheet"`
	TargetSheet SheetType `json:"target_sheet"`
}

// TransferResult is the aggregate outcome of a transfer run. Individual
// item failures are logged, not itemized.
type TransferResult struct {
	Transferred int `json:"transferred"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

// AvailableCategoriesResponse lists the catalog category names that
// comprehensive populate understands.
type AvailableCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ScrapedProduct is the field subset a product page scrape yields.
type ScrapedProduct struct {
	Name        string  `json:"name"`
	Vendor      string  `json:"vendor"`
	SKU         string  `json:"sku"`
	Cost        float64 `json:"cost"`
	FinishColor string  `json:"finish_color"`
	ImageURL    string  `json:"image_url"`
}

// ScrapeRequest asks the server to scrape a product page.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse wraps a scrape outcome in the success-flag envelope the
// UI checks before reading data.
type ScrapeResponse struct {
	Success bool            `json:"success"`
	Data    *ScrapedProduct `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ExtractBoardRequest asks the server to pull product links off a Canva
// board page.
type ExtractBoardRequest struct {
	URL string `json:"url"`
}

// ExtractBoardResponse returns the products found on a board.
type ExtractBoardResponse struct {
	Success  bool             `json:"success"`
	Products []ScrapedProduct `json:"products,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// ExtractPDFLinksResponse returns the outbound links found in an uploaded
// board PDF.
type ExtractPDFLinksResponse struct {
	Success bool     `json:"success"`
	Links   []string `json:"links,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ImportBoardRequest starts an asynchronous board import into a target
// subcategory.
type ImportBoardRequest struct {
	URL           string   `json:"url,omitempty"`
	Links         []string `json:"links,omitempty"`
	SubcategoryID string   `json:"subcategory_id"`
}

// JobStatus is the lifecycle state of an asynchronous import job.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the job will make no further progress.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// ImportJob is the pollable descriptor of an asynchronous import.
type ImportJob struct {
	ID               string    `json:"id"`
	Status           JobStatus `json:"status"`
	TotalProducts    int       `json:"total_products"`
	ImportedProducts int       `json:"imported_products"`
	FailedProducts   int       `json:"failed_products"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	ProjectCount int64  `json:"project_count"`
}
