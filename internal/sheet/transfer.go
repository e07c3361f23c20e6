package sheet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelierworks/maquette/internal/types"
)

// Backend is the surface the transfer engine needs to create records in
// the target sheet. The store satisfies it directly; tests supply fakes.
type Backend interface {
	CreateRoom(ctx context.Context, req types.CreateRoomRequest) (*types.Room, error)
	CreateCategory(ctx context.Context, req types.CreateCategoryRequest) (*types.Category, error)
	CreateSubcategory(ctx context.Context, req types.CreateSubcategoryRequest) (*types.Subcategory, error)
	CreateItem(ctx context.Context, req types.CreateItemRequest) (*types.Item, error)
}

// Candidate is one item selected for transfer together with its path
// context. Names, not ids, are the join key into the target sheet because
// target-sheet containers are created independently per sheet type.
type Candidate struct {
	Item            types.Item
	RoomName        string
	CategoryName    string
	CategoryColor   string
	SubcategoryName string
}

// SelectTransferable walks every room→category→subcategory→item path and
// collects the items qualifying for transfer. Placeholder items (empty
// name or the unedited "New Item" shell) are skipped; the second return
// value counts them.
func SelectTransferable(p types.Project) ([]Candidate, int) {
	var candidates []Candidate
	var skipped int
	for _, room := range p.Rooms {
		for _, cat := range room.Categories {
			for _, sub := range cat.Subcategories {
				for _, item := range sub.Items {
					if item.IsPlaceholder() {
						skipped++
						continue
					}
					candidates = append(candidates, Candidate{
						Item:            item,
						RoomName:        room.Name,
						CategoryName:    cat.Name,
						CategoryColor:   cat.Color,
						SubcategoryName: sub.Name,
					})
				}
			}
		}
	}
	return candidates, skipped
}

// Transferrer bulk-copies qualifying items from a source sheet tree into
// a parallel sheet, lazily creating the Room→Category→Subcategory
// scaffold chain on demand. Scaffolding is memoized by composite name key
// within a single run only; re-running a transfer duplicates containers
// and items by design.
type Transferrer struct {
	backend Backend
}

// NewTransferrer creates a Transferrer over the given backend.
func NewTransferrer(backend Backend) *Transferrer {
	return &Transferrer{backend: backend}
}

// Run transfers every qualifying item from the source tree into
// targetSheet. Scaffold creates for one path are strictly sequenced (room
// before category before subcategory before item) because each depends on
// the previous call's generated id. A failure on one item's scaffold or
// record is logged and that item alone is skipped; the batch continues
// and only aggregate counts are reported.
func (t *Transferrer) Run(ctx context.Context, source types.Project, targetSheet types.SheetType) types.TransferResult {
	candidates, skipped := SelectTransferable(source)
	result := types.TransferResult{Skipped: skipped}

	roomIDs := make(map[string]string)
	categoryIDs := make(map[string]string)
	subcategoryIDs := make(map[string]string)

	for _, cand := range candidates {
		roomKey := fmt.Sprintf("%s_%s", cand.RoomName, targetSheet)
		roomID, ok := roomIDs[roomKey]
		if !ok {
			room, err := t.backend.CreateRoom(ctx, types.CreateRoomRequest{
				Name:       cand.RoomName,
				ProjectID:  source.ID,
				SheetType:  targetSheet,
				OrderIndex: len(roomIDs),
			})
			if err != nil {
				slog.Warn("transfer: room scaffold failed",
					"room", cand.RoomName, "target_sheet", targetSheet, "error", err)
				result.Failed++
				continue
			}
			roomID = room.ID
			roomIDs[roomKey] = roomID
		}

		categoryKey := fmt.Sprintf("%s_%s", roomKey, cand.CategoryName)
		categoryID, ok := categoryIDs[categoryKey]
		if !ok {
			cat, err := t.backend.CreateCategory(ctx, types.CreateCategoryRequest{
				Name:       cand.CategoryName,
				RoomID:     roomID,
				Color:      cand.CategoryColor,
				OrderIndex: len(categoryIDs),
			})
			if err != nil {
				slog.Warn("transfer: category scaffold failed",
					"category", cand.CategoryName, "room", cand.RoomName, "error", err)
				result.Failed++
				continue
			}
			categoryID = cat.ID
			categoryIDs[categoryKey] = categoryID
		}

		subcategoryKey := fmt.Sprintf("%s_%s", categoryKey, cand.SubcategoryName)
		subcategoryID, ok := subcategoryIDs[subcategoryKey]
		if !ok {
			sub, err := t.backend.CreateSubcategory(ctx, types.CreateSubcategoryRequest{
				Name:       cand.SubcategoryName,
				CategoryID: categoryID,
				OrderIndex: len(subcategoryIDs),
			})
			if err != nil {
				slog.Warn("transfer: subcategory scaffold failed",
					"subcategory", cand.SubcategoryName, "category", cand.CategoryName, "error", err)
				result.Failed++
				continue
			}
			subcategoryID = sub.ID
			subcategoryIDs[subcategoryKey] = subcategoryID
		}

		// Status is always reset to blank; the target sheet has its own
		// vocabulary and the source value is meaningless there.
		_, err := t.backend.CreateItem(ctx, types.CreateItemRequest{
			SubcategoryID: subcategoryID,
			Name:          cand.Item.Name,
			Vendor:        cand.Item.Vendor,
			SKU:           cand.Item.SKU,
			Quantity:      cand.Item.Quantity,
			Cost:          cand.Item.Cost,
			Size:          cand.Item.Size,
			FinishColor:   cand.Item.FinishColor,
			Link:          cand.Item.Link,
			ImageURL:      cand.Item.ImageURL,
			OrderIndex:    cand.Item.OrderIndex,
			Status:        "",
		})
		if err != nil {
			slog.Warn("transfer: item create failed",
				"item", cand.Item.Name, "subcategory", cand.SubcategoryName, "error", err)
			result.Failed++
			continue
		}
		result.Transferred++
	}

	return result
}
