package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atelierworks/maquette/internal/importer"
	"github.com/atelierworks/maquette/internal/types"
)

func TestScrapeProduct_Success(t *testing.T) {
	scraper := &stubScraper{product: &types.ScrapedProduct{
		Name:   "Walnut Side Table",
		Vendor: "westelm",
		Cost:   249.99,
	}}
	handler := NewHandler(&mockStore{}, scraper, &stubBoards{}, &stubRunner{}, importer.NewRegistry(), "1.0.0")

	body := `{"url":"https://www.westelm.com/products/walnut-side-table"}`
	req := httptest.NewRequest(http.MethodPost, "/api/scrape-product", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ScrapeProduct(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp types.ScrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Data == nil || resp.Data.Name != "Walnut Side Table" {
		t.Errorf("data = %+v, want scraped product", resp.Data)
	}
}

func TestScrapeProduct_FailureIsSuccessFalseNot500(t *testing.T) {
	scraper := &stubScraper{err: errors.New("fetch failed")}
	handler := NewHandler(&mockStore{}, scraper, &stubBoards{}, &stubRunner{}, importer.NewRegistry(), "1.0.0")

	body := `{"url":"https://example.com/product"}`
	req := httptest.NewRequest(http.MethodPost, "/api/scrape-product", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ScrapeProduct(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (scrape failures are not transport errors)", w.Code, http.StatusOK)
	}

	var resp types.ScrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Error == "" {
		t.Error("error message is empty, want the scrape failure")
	}
}

func TestScrapeProduct_MissingURL(t *testing.T) {
	handler := newTestHandler(&mockStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/scrape-product", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.ScrapeProduct(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestExtractBoard_SkipsUnreadableProducts(t *testing.T) {
	boards := &stubBoards{links: []string{
		"https://example.com/a",
		"https://example.com/b",
	}}
	scraper := &scriptedScraper{products: map[string]*types.ScrapedProduct{
		"https://example.com/a": {Name: "Armchair"},
	}}
	handler := NewHandler(&mockStore{}, scraper, boards, &stubRunner{}, importer.NewRegistry(), "1.0.0")

	body := `{"url":"https://www.canva.com/design/board"}`
	req := httptest.NewRequest(http.MethodPost, "/api/canva/extract-board", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ExtractBoard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp types.ExtractBoardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if len(resp.Products) != 1 || resp.Products[0].Name != "Armchair" {
		t.Errorf("products = %+v, want one Armchair", resp.Products)
	}
}

// scriptedScraper returns a product per URL, failing unknown ones.
type scriptedScraper struct {
	products map[string]*types.ScrapedProduct
}

func (s *scriptedScraper) Product(ctx context.Context, url string) (*types.ScrapedProduct, error) {
	p, ok := s.products[url]
	if !ok {
		return nil, errors.New("unreadable page")
	}
	return p, nil
}

func TestExtractPDFLinks_Multipart(t *testing.T) {
	handler := newTestHandler(&mockStore{})

	pdf := "%PDF-1.4\n/URI (https://www.westelm.com/products/sofa)\n%%EOF"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "board.pdf")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	fw.Write([]byte(pdf))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/canva/extract-pdf-links", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	handler.ExtractPDFLinks(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp types.ExtractPDFLinksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Errorf("success = false, want true, error: %s", resp.Error)
	}
	if len(resp.Links) != 1 || resp.Links[0] != "https://www.westelm.com/products/sofa" {
		t.Errorf("links = %v, want the embedded URI", resp.Links)
	}
}

func TestExtractPDFLinks_MissingFile(t *testing.T) {
	handler := newTestHandler(&mockStore{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("other", "value")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/canva/extract-pdf-links", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	handler.ExtractPDFLinks(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestImportBoard_WithLinksStartsJob(t *testing.T) {
	runner := &stubRunner{job: types.ImportJob{ID: "job-1", Status: types.JobQueued}}
	handler := NewHandler(&mockStore{}, &stubScraper{}, &stubBoards{}, runner, importer.NewRegistry(), "1.0.0")

	body := `{"links":["https://example.com/a","https://example.com/b"],"subcategory_id":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/import-canva-board", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ImportBoard(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusAccepted)
	}

	var job types.ImportJob
	if err := json.Unmarshal(w.Body.Bytes(), &job); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if job.ID != "job-1" {
		t.Errorf("job id = %q, want %q", job.ID, "job-1")
	}
	if len(runner.links) != 2 {
		t.Errorf("runner received %d links, want 2", len(runner.links))
	}
	if runner.subcat != "s1" {
		t.Errorf("runner subcategory = %q, want %q", runner.subcat, "s1")
	}
}

func TestImportBoard_MissingSubcategory(t *testing.T) {
	handler := newTestHandler(&mockStore{})

	body := `{"links":["https://example.com/a"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/import-canva-board", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ImportBoard(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetImportJob_NotFound(t *testing.T) {
	router := NewRouter(newTestHandler(&mockStore{}))

	req := httptest.NewRequest(http.MethodGet, "/api/import/pdf-job/missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetImportJob_BothPollingRoutes(t *testing.T) {
	jobs := importer.NewRegistry()
	job := jobs.Create()
	handler := NewHandler(&mockStore{}, &stubScraper{}, &stubBoards{}, &stubRunner{}, jobs, "1.0.0")
	router := NewRouter(handler)

	for _, path := range []string{
		"/api/import/pdf-job/" + job.ID,
		"/api/canva/upload-job/" + job.ID,
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}
