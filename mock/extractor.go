package mock

import (
	"net/url"

	"github.com/fwojciec/webdoc"
)

var _ webdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webdoc.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string, pageURL *url.URL) (*webdoc.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string, pageURL *url.URL) (*webdoc.ExtractResult, error) {
	return e.ExtractFn(rawHTML, pageURL)
}
