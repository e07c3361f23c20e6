package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierworks/maquette/internal/importer"
	"github.com/atelierworks/maquette/internal/types"
)

// maxUploadBytes caps the multipart form memory for PDF uploads.
const maxUploadBytes = 32 << 20

// ScrapeProduct handles POST /api/scrape-product. Scrape failures come
// back as 200 {success:false} because the UI treats them as a normal
// "couldn't read that page" outcome, not a transport error.
func (h *Handler) ScrapeProduct(w http.ResponseWriter, r *http.Request) {
	var req types.ScrapeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.URL == "" {
		WriteProblem(w, r, http.StatusBadRequest, "url is required")
		return
	}

	product, err := h.scraper.Product(r.Context(), req.URL)
	if err != nil {
		writeJSON(w, http.StatusOK, types.ScrapeResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, types.ScrapeResponse{Success: true, Data: product})
}

// ExtractBoard handles POST /api/canva/extract-board: synchronous link
// extraction plus a scrape of each linked product.
func (h *Handler) ExtractBoard(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractBoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.URL == "" {
		WriteProblem(w, r, http.StatusBadRequest, "url is required")
		return
	}

	links, err := h.boards.Links(r.Context(), req.URL)
	if err != nil {
		writeJSON(w, http.StatusOK, types.ExtractBoardResponse{Success: false, Error: err.Error()})
		return
	}

	products := make([]types.ScrapedProduct, 0, len(links))
	for _, link := range links {
		product, err := h.scraper.Product(r.Context(), link)
		if err != nil {
			// One unreadable product page does not fail the board.
			continue
		}
		products = append(products, *product)
	}
	writeJSON(w, http.StatusOK, types.ExtractBoardResponse{Success: true, Products: products})
}

// ExtractPDFLinks handles POST /api/canva/extract-pdf-links with a
// multipart "file" field containing the exported board PDF.
func (h *Handler) ExtractPDFLinks(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		WriteProblem(w, r, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	links, err := importer.ExtractPDFLinks(file)
	if err != nil {
		writeJSON(w, http.StatusOK, types.ExtractPDFLinksResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, types.ExtractPDFLinksResponse{Success: true, Links: links})
}

// ImportBoard handles POST /api/import-canva-board. Links may be passed
// directly (from a prior PDF extraction) or resolved from a board URL;
// the import itself runs asynchronously and is polled via the job
// endpoints.
func (h *Handler) ImportBoard(w http.ResponseWriter, r *http.Request) {
	var req types.ImportBoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SubcategoryID == "" {
		WriteProblem(w, r, http.StatusBadRequest, "subcategory_id is required")
		return
	}

	links := req.Links
	if len(links) == 0 {
		if req.URL == "" {
			WriteProblem(w, r, http.StatusBadRequest, "url or links is required")
			return
		}
		var err error
		links, err = h.boards.Links(r.Context(), req.URL)
		if err != nil {
			WriteProblem(w, r, http.StatusBadGateway, "Board could not be read")
			return
		}
	}

	job := h.runner.StartBoardImport(links, req.SubcategoryID)
	writeJSON(w, http.StatusAccepted, job)
}

// GetImportJob handles GET /api/import/pdf-job/{id} and
// GET /api/canva/upload-job/{id}; both poll the same registry.
func (h *Handler) GetImportJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		WriteProblem(w, r, http.StatusNotFound, "Job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}
