// Package scrape extracts product fields from vendor product pages. It
// reads Open Graph and schema.org metadata, which the vendors the studio
// sources from all publish; anything missing stays blank for the user to
// fill in.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/atelierworks/maquette/internal/types"
)

// maxBodyBytes caps how much of a product page is read. Pages past this
// size have their metadata in the head anyway.
const maxBodyBytes = 2 << 20

var ErrUnsupportedURL = errors.New("unsupported product URL")

// defaultUserAgent is sent when no override is configured. Some vendors
// reject requests with no agent at all.
const defaultUserAgent = "maquette/1.0 (product import)"

// Scraper fetches and parses product pages. UserAgent may be set before
// first use to override the default request agent.
type Scraper struct {
	client    *http.Client
	UserAgent string
}

// New creates a Scraper with the given request timeout.
func New(timeout time.Duration) *Scraper {
	return &Scraper{client: &http.Client{Timeout: timeout}}
}

// Product fetches rawURL and extracts the product field subset.
func (s *Scraper) Product(ctx context.Context, rawURL string) (*types.ScrapedProduct, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrUnsupportedURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	agent := s.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	req.Header.Set("User-Agent", agent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching product page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product page returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing product page: %w", err)
	}

	product := extract(doc)
	if product.Vendor == "" {
		product.Vendor = vendorFromHost(u.Host)
	}
	return product, nil
}

// extract walks the parsed document collecting metadata fields.
func extract(doc *html.Node) *types.ScrapedProduct {
	var p types.ScrapedProduct
	var title string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				applyMeta(&p, n)
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if p.Name == "" {
		p.Name = title
	}
	return &p
}

func applyMeta(p *types.ScrapedProduct, n *html.Node) {
	key := attr(n, "property")
	if key == "" {
		key = attr(n, "name")
	}
	if key == "" {
		key = attr(n, "itemprop")
	}
	content := strings.TrimSpace(attr(n, "content"))
	if content == "" {
		return
	}

	switch strings.ToLower(key) {
	case "og:title", "twitter:title":
		if p.Name == "" {
			p.Name = content
		}
	case "og:site_name":
		if p.Vendor == "" {
			p.Vendor = content
		}
	case "og:image", "twitter:image":
		if p.ImageURL == "" {
			p.ImageURL = content
		}
	case "product:price:amount", "og:price:amount", "price":
		if p.Cost == 0 {
			p.Cost = parsePrice(content)
		}
	case "sku", "product:retailer_item_id":
		if p.SKU == "" {
			p.SKU = content
		}
	case "color", "product:color":
		if p.FinishColor == "" {
			p.FinishColor = content
		}
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// parsePrice tolerates currency symbols and thousands separators.
func parsePrice(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// vendorFromHost falls back to a cleaned host name when the page carries
// no site_name metadata.
func vendorFromHost(host string) string {
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, '.'); i > 0 {
		host = host[:i]
	}
	if host == "" {
		return ""
	}
	return strings.ToUpper(host[:1]) + host[1:]
}
