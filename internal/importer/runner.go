package importer

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/atelierworks/maquette/internal/types"
)

// ProductScraper resolves a product link into its field subset.
type ProductScraper interface {
	Product(ctx context.Context, url string) (*types.ScrapedProduct, error)
}

// ItemCreator is the slice of the store the runner needs.
type ItemCreator interface {
	CreateItem(ctx context.Context, req types.CreateItemRequest) (*types.Item, error)
}

// Runner executes board imports in the background, reporting progress
// through the job registry.
type Runner struct {
	scraper     ProductScraper
	items       ItemCreator
	registry    *Registry
	concurrency int
}

// NewRunner creates a Runner. Concurrency bounds how many product pages
// are scraped at once.
func NewRunner(scraper ProductScraper, items ItemCreator, registry *Registry, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		scraper:     scraper,
		items:       items,
		registry:    registry,
		concurrency: concurrency,
	}
}

// StartBoardImport registers a job and launches the import in a
// goroutine. The returned descriptor is immediately pollable.
func (r *Runner) StartBoardImport(links []string, subcategoryID string) types.ImportJob {
	job := r.registry.Create()
	go r.run(context.Background(), job.ID, links, subcategoryID)
	return job
}

// run scrapes every link and creates one item per product. A failed link
// is counted and skipped; the batch continues.
func (r *Runner) run(ctx context.Context, jobID string, links []string, subcategoryID string) {
	r.registry.Start(jobID, len(links))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			product, err := r.scraper.Product(ctx, link)
			if err != nil {
				slog.Warn("board import: scrape failed", "job_id", jobID, "url", link, "error", err)
				r.registry.RecordFailed(jobID)
				return nil
			}

			_, err = r.items.CreateItem(ctx, types.CreateItemRequest{
				SubcategoryID: subcategoryID,
				Name:          product.Name,
				Vendor:        product.Vendor,
				SKU:           product.SKU,
				Cost:          product.Cost,
				FinishColor:   product.FinishColor,
				ImageURL:      product.ImageURL,
				Link:          link,
				Quantity:      1,
				OrderIndex:    i,
			})
			if err != nil {
				slog.Warn("board import: item create failed", "job_id", jobID, "url", link, "error", err)
				r.registry.RecordFailed(jobID)
				return nil
			}

			r.registry.RecordImported(jobID)
			return nil
		})
	}

	// Workers swallow their own errors, so Wait only reflects ctx.
	if err := g.Wait(); err != nil {
		r.registry.Fail(jobID, "import interrupted")
		return
	}
	r.registry.Complete(jobID)

	job, _ := r.registry.Get(jobID)
	slog.Info("board import finished",
		"job_id", jobID,
		"total", job.TotalProducts,
		"imported", job.ImportedProducts,
		"failed", job.FailedProducts,
	)
}
