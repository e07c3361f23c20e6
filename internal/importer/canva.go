package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// maxPDFBytes caps uploaded board PDFs; boards past this are split by the
// designer anyway.
const maxPDFBytes = 32 << 20

// BoardExtractor pulls outbound product links off a shared Canva board
// page.
type BoardExtractor struct {
	client *http.Client
}

// NewBoardExtractor creates a BoardExtractor with the given timeout.
func NewBoardExtractor(timeout time.Duration) *BoardExtractor {
	return &BoardExtractor{client: &http.Client{Timeout: timeout}}
}

// Links fetches the board page and returns every external product link
// it references, deduplicated in document order. Canva-internal links are
// not products and are dropped.
func (e *BoardExtractor) Links(ctx context.Context, boardURL string) ([]string, error) {
	u, err := url.Parse(boardURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid board URL %q", boardURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "maquette/1.0 (board import)")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing board page: %w", err)
	}

	return collectAnchors(doc), nil
}

// collectAnchors walks the document gathering qualifying hrefs.
func collectAnchors(doc *html.Node) []string {
	seen := make(map[string]bool)
	var links []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key != "href" {
					continue
				}
				href := strings.TrimSpace(a.Val)
				if qualifiesAsProductLink(href) && !seen[href] {
					seen[href] = true
					links = append(links, href)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

func qualifiesAsProductLink(href string) bool {
	u, err := url.Parse(href)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	return host != "canva.com" && !strings.HasSuffix(host, ".canva.com")
}

// pdfURIPattern matches link annotations in a board PDF. Canva embeds
// outbound links as /URI entries.
var pdfURIPattern = regexp.MustCompile(`/URI\s*\(\s*(https?://[^)\s]+)\s*\)`)

// ExtractPDFLinks scans an uploaded board PDF for outbound product links.
// The raw byte stream is scanned directly; link annotations are stored
// uncompressed in the files Canva produces.
func ExtractPDFLinks(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPDFBytes))
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		return nil, fmt.Errorf("not a PDF file")
	}

	seen := make(map[string]bool)
	var links []string
	for _, m := range pdfURIPattern.FindAllSubmatch(data, -1) {
		href := string(m[1])
		if qualifiesAsProductLink(href) && !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
	}
	return links, nil
}
