package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productPage = `<!DOCTYPE html>
<html>
<head>
<title>Arc Floor Lamp | West Elm</title>
<meta property="og:title" content="Arc Floor Lamp">
<meta property="og:site_name" content="West Elm">
<meta property="og:image" content="https://cdn.example.com/arc-lamp.jpg">
<meta property="product:price:amount" content="$1,299.00">
<meta itemprop="sku" content="WE-ARC-100">
<meta itemprop="color" content="Antique Brass">
</head>
<body><h1>Arc Floor Lamp</h1></body>
</html>`

func TestProduct_ExtractsMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productPage))
	}))
	defer srv.Close()

	product, err := New(5*time.Second).Product(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Arc Floor Lamp", product.Name)
	assert.Equal(t, "West Elm", product.Vendor)
	assert.Equal(t, "WE-ARC-100", product.SKU)
	assert.Equal(t, 1299.0, product.Cost)
	assert.Equal(t, "Antique Brass", product.FinishColor)
	assert.Equal(t, "https://cdn.example.com/arc-lamp.jpg", product.ImageURL)
}

func TestProduct_FallsBackToTitleAndHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Tripod Lamp</title></head><body></body></html>`))
	}))
	defer srv.Close()

	product, err := New(5*time.Second).Product(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Tripod Lamp", product.Name)
	assert.NotEmpty(t, product.Vendor, "vendor falls back to the host name")
}

func TestProduct_RejectsBadURL(t *testing.T) {
	s := New(time.Second)

	for _, u := range []string{"", "not-a-url", "ftp://example.com/x", "file:///etc/passwd"} {
		_, err := s.Product(context.Background(), u)
		assert.ErrorIs(t, err, ErrUnsupportedURL, "url=%q", u)
	}
}

func TestProduct_Non200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(time.Second).Product(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"$1,299.00": 1299.0,
		"299.5":     299.5,
		"USD 45":    45,
		"":          0,
		"n/a":       0,
	}
	for in, want := range cases {
		assert.Equal(t, want, parsePrice(in), "input=%q", in)
	}
}
