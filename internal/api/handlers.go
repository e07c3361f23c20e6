package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atelierworks/maquette/internal/importer"
	"github.com/atelierworks/maquette/internal/store"
	"github.com/atelierworks/maquette/internal/types"
)

// ProductScraper resolves a product URL into its field subset.
type ProductScraper interface {
	Product(ctx context.Context, url string) (*types.ScrapedProduct, error)
}

// BoardLinkExtractor pulls product links off a shared board page.
type BoardLinkExtractor interface {
	Links(ctx context.Context, boardURL string) ([]string, error)
}

// ImportStarter launches asynchronous board imports.
type ImportStarter interface {
	StartBoardImport(links []string, subcategoryID string) types.ImportJob
}

// Handler implements the API handlers
type Handler struct {
	store   store.Store
	scraper ProductScraper
	boards  BoardLinkExtractor
	runner  ImportStarter
	jobs    *importer.Registry
	version string
}

// NewHandler creates a new Handler over the store and import services.
func NewHandler(s store.Store, scraper ProductScraper, boards BoardLinkExtractor, runner ImportStarter, jobs *importer.Registry, version string) *Handler {
	return &Handler{
		store:   s,
		scraper: scraper,
		boards:  boards,
		runner:  runner,
		jobs:    jobs,
		version: version,
	}
}

// Health returns the health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.CountProjects(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:       "healthy",
		Version:      h.version,
		ProjectCount: count,
	})
}

// decodeJSON decodes a request body, writing a 400 problem on failure.
// It returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
