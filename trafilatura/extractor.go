package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/webdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webdoc.Extractor at compile time.
var _ webdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Trafilatura scores candidate regions by content density and falls
// back to readability-style heuristics when its primary algorithm
// finds nothing; the result is deterministic for fixed input.
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

	// Links and images stay in the content tree: the converter keeps
	// links as inline markup and the media harvester reads images from
	// this same subtree.
	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
		IncludeLinks:   true,
		OriginalURL:    pageURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EUNPROCESSABLE, "no readable content found: %s", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, webdoc.Errorf(webdoc.EUNPROCESSABLE, "no readable content found")
	}

	return &webdoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
