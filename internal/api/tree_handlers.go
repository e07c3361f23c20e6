package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierworks/maquette/internal/catalog"
	"github.com/atelierworks/maquette/internal/types"
	"github.com/atelierworks/maquette/internal/validation"
)

// CreateRoom handles POST /api/rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req types.CreateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.RequireName(req.Name); err != nil {
		WriteProblem(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	room, err := h.store.CreateRoom(r.Context(), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/{id}
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.store.UpdateRoom(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/{id}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory handles POST /api/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.RequireName(req.Name); err != nil {
		WriteProblem(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cat, err := h.store.CreateCategory(r.Context(), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cat, err := h.store.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateSubcategory handles POST /api/subcategories
func (h *Handler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSubcategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.RequireName(req.Name); err != nil {
		WriteProblem(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sub, err := h.store.CreateSubcategory(r.Context(), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// UpdateSubcategory handles PUT /api/subcategories/{id}
func (h *Handler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateSubcategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.store.UpdateSubcategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// DeleteSubcategory handles DELETE /api/subcategories/{id}
func (h *Handler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSubcategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateItem handles POST /api/items
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req types.CreateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.store.CreateItem(r.Context(), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items/{id}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.store.UpdateItem(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/{id}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListItemStatuses handles GET /api/item-statuses?sheet_type=<type>
func (h *Handler) ListItemStatuses(w http.ResponseWriter, r *http.Request) {
	sheet := types.SheetType(r.URL.Query().Get("sheet_type"))
	statuses, err := h.store.ListItemStatuses(r.Context(), sheet)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

// AvailableCategories handles GET /api/categories/available
func (h *Handler) AvailableCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.AvailableCategoriesResponse{Categories: catalog.Available()})
}

// PopulateCategory handles POST /api/categories/comprehensive?room_id=&category_name=
func (h *Handler) PopulateCategory(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room_id")
	categoryName := r.URL.Query().Get("category_name")
	if roomID == "" || categoryName == "" {
		WriteProblem(w, r, http.StatusBadRequest, "room_id and category_name are required")
		return
	}

	cat, err := h.store.PopulateCategory(r.Context(), roomID, categoryName)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}
