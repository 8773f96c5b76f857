package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webdoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webdoc.Extractor at compile time.
var _ webdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// It is a port of Mozilla's Readability and serves as the fallback
// behind the trafilatura extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// pageURL resolves relative references in the extracted content.
func (e *Extractor) Extract(rawHTML string, pageURL *url.URL) (*webdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webdoc.Errorf(webdoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EUNPROCESSABLE, "no readable content found: %s", err)
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, webdoc.Errorf(webdoc.EUNPROCESSABLE, "no readable content found")
	}

	return &webdoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
