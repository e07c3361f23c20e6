package api

import (
	"net/http"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/atelierworks/maquette/internal/sheet"
	"github.com/atelierworks/maquette/internal/types"
)

// ReorderRooms handles PUT /api/rooms/reorder. A cancelled drop or a
// same-index move short-circuits with zero store writes.
func (h *Handler) ReorderRooms(w http.ResponseWriter, r *http.Request) {
	var req types.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rooms, err := h.store.ListRooms(r.Context(), req.ProjectID, req.SheetType)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	moved, ok := sheet.Move(rooms, req.SourceIndex, req.DestinationIndex)
	if !ok {
		writeJSON(w, http.StatusOK, types.ReorderResult{})
		return
	}

	plan := sheet.Plan(moved, func(room types.Room) string { return room.ID })
	result := h.applyPlan(r, plan, func(id string, orderIndex int) error {
		_, err := h.store.UpdateRoom(r.Context(), id, types.UpdateRoomRequest{OrderIndex: &orderIndex})
		return err
	})
	writeJSON(w, http.StatusOK, result)
}

// ReorderCategories handles PUT /api/categories/reorder; ScopeID is the
// parent room id.
func (h *Handler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req types.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	categories, err := h.store.ListCategories(r.Context(), req.ScopeID)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	moved, ok := sheet.Move(categories, req.SourceIndex, req.DestinationIndex)
	if !ok {
		writeJSON(w, http.StatusOK, types.ReorderResult{})
		return
	}

	plan := sheet.Plan(moved, func(cat types.Category) string { return cat.ID })
	result := h.applyPlan(r, plan, func(id string, orderIndex int) error {
		_, err := h.store.UpdateCategory(r.Context(), id, types.UpdateCategoryRequest{OrderIndex: &orderIndex})
		return err
	})
	writeJSON(w, http.StatusOK, result)
}

// ReorderSubcategories handles PUT /api/subcategories/reorder; ScopeID
// is the parent category id.
func (h *Handler) ReorderSubcategories(w http.ResponseWriter, r *http.Request) {
	var req types.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	subcategories, err := h.store.ListSubcategories(r.Context(), req.ScopeID)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	moved, ok := sheet.Move(subcategories, req.SourceIndex, req.DestinationIndex)
	if !ok {
		writeJSON(w, http.StatusOK, types.ReorderResult{})
		return
	}

	plan := sheet.Plan(moved, func(sub types.Subcategory) string { return sub.ID })
	result := h.applyPlan(r, plan, func(id string, orderIndex int) error {
		_, err := h.store.UpdateSubcategory(r.Context(), id, types.UpdateSubcategoryRequest{OrderIndex: &orderIndex})
		return err
	})
	writeJSON(w, http.StatusOK, result)
}

// applyPlan issues every sibling rewrite concurrently and waits for all
// of them. Failures are counted and surfaced, not rolled back; the next
// full reload reconciles.
func (h *Handler) applyPlan(r *http.Request, plan []sheet.OrderUpdate, write func(id string, orderIndex int) error) types.ReorderResult {
	var failed atomic.Int64

	g, _ := errgroup.WithContext(r.Context())
	for _, update := range plan {
		update := update
		g.Go(func() error {
			if err := write(update.ID, update.OrderIndex); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	g.Wait()

	return types.ReorderResult{
		Updated: len(plan) - int(failed.Load()),
		Failed:  int(failed.Load()),
	}
}
