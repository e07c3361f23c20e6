package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierworks/maquette/internal/export"
	"github.com/atelierworks/maquette/internal/sheet"
	"github.com/atelierworks/maquette/internal/types"
	"github.com/atelierworks/maquette/internal/validation"
)

// ListProjects handles GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /api/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.RequireName(req.Name); err != nil {
		WriteProblem(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p, err := h.store.CreateProject(r.Context(), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GetProject handles GET /api/projects/{id}?sheet_type=<type>.
// With a sheet_type it returns the full nested tree for that sheet,
// optionally filtered by search/room_id/category/vendor/status/carrier
// query params; without one only the project metadata.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sheetParam := r.URL.Query().Get("sheet_type")

	if sheetParam == "" {
		p, err := h.store.GetProject(r.Context(), id)
		if err != nil {
			MapStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
		return
	}

	p, err := h.store.GetProjectTree(r.Context(), id, types.SheetType(sheetParam))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	q := r.URL.Query()
	criteria := sheet.Criteria{
		SearchTerm:   q.Get("search"),
		RoomID:       q.Get("room_id"),
		CategoryName: q.Get("category"),
		Vendor:       q.Get("vendor"),
		Status:       q.Get("status"),
		Carrier:      q.Get("carrier"),
	}
	filtered := sheet.Filter(*p, criteria)
	writeJSON(w, http.StatusOK, filtered)
}

// UpdateProject handles PUT /api/projects/{id}
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.store.UpdateProject(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject handles DELETE /api/projects/{id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportProjectCSV handles GET /api/projects/{id}/export.csv?sheet_type=<type>
func (h *Handler) ExportProjectCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sheet := types.SheetType(r.URL.Query().Get("sheet_type"))
	if sheet == "" {
		sheet = types.SheetFFE
	}

	p, err := h.store.GetProjectTree(r.Context(), id, sheet)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(p.Name, sheet)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.CSV(*p)))
}
