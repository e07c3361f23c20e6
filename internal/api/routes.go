package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.CreateProject)
			r.Get("/{id}", h.GetProject)
			r.Put("/{id}", h.UpdateProject)
			r.Delete("/{id}", h.DeleteProject)
			r.Get("/{id}/export.csv", h.ExportProjectCSV)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", h.CreateRoom)
			r.Put("/reorder", h.ReorderRooms)
			r.Put("/{id}", h.UpdateRoom)
			r.Delete("/{id}", h.DeleteRoom)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", h.CreateCategory)
			r.Get("/available", h.AvailableCategories)
			r.Post("/comprehensive", h.PopulateCategory)
			r.Put("/reorder", h.ReorderCategories)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})

		r.Route("/subcategories", func(r chi.Router) {
			r.Post("/", h.CreateSubcategory)
			r.Put("/reorder", h.ReorderSubcategories)
			r.Put("/{id}", h.UpdateSubcategory)
			r.Delete("/{id}", h.DeleteSubcategory)
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.CreateItem)
			r.Put("/{id}", h.UpdateItem)
			r.Delete("/{id}", h.DeleteItem)
		})

		r.Get("/item-statuses", h.ListItemStatuses)
		r.Post("/sheets/transfer", h.TransferSheet)

		r.Post("/scrape-product", h.ScrapeProduct)
		r.Post("/canva/extract-board", h.ExtractBoard)
		r.Post("/canva/extract-pdf-links", h.ExtractPDFLinks)
		r.Post("/import-canva-board", h.ImportBoard)
		r.Get("/import/pdf-job/{id}", h.GetImportJob)
		r.Get("/canva/upload-job/{id}", h.GetImportJob)
	})

	return r
}
