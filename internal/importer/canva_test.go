package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardPage = `<html><body>
<a href="https://www.canva.com/design/abc/edit">Edit board</a>
<a href="https://www.westelm.com/products/arc-lamp">Arc Lamp</a>
<a href="https://www.cb2.com/tripod-lamp">Tripod Lamp</a>
<a href="https://www.westelm.com/products/arc-lamp">Arc Lamp again</a>
<a href="#section">anchor</a>
<a href="mailto:studio@example.com">mail</a>
</body></html>`

func TestBoardExtractor_Links(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(boardPage))
	}))
	defer srv.Close()

	links, err := NewBoardExtractor(5*time.Second).Links(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://www.westelm.com/products/arc-lamp",
		"https://www.cb2.com/tripod-lamp",
	}, links, "canva links, fragments, mailto, and duplicates are dropped")
}

func TestBoardExtractor_RejectsInvalidURL(t *testing.T) {
	_, err := NewBoardExtractor(time.Second).Links(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestExtractPDFLinks(t *testing.T) {
	pdf := "%PDF-1.4\n" +
		"1 0 obj << /Type /Annot /A << /URI (https://www.westelm.com/products/arc-lamp) >> >> endobj\n" +
		"2 0 obj << /A << /URI (https://www.canva.com/design/abc) >> >> endobj\n" +
		"3 0 obj << /A << /URI (https://www.cb2.com/tripod-lamp) >> >> endobj\n" +
		"%%EOF"

	links, err := ExtractPDFLinks(strings.NewReader(pdf))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://www.westelm.com/products/arc-lamp",
		"https://www.cb2.com/tripod-lamp",
	}, links)
}

func TestExtractPDFLinks_RejectsNonPDF(t *testing.T) {
	_, err := ExtractPDFLinks(strings.NewReader("<html>not a pdf</html>"))
	assert.Error(t, err)
}
