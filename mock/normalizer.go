package mock

import (
	"context"

	"github.com/fwojciec/webdoc"
)

var _ webdoc.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of webdoc.Normalizer.
type Normalizer struct {
	NormalizeFn func(ctx context.Context, doc *webdoc.FetchedDocument, opts webdoc.NormalizeOptions) (*webdoc.NormalizeResult, error)
}

func (n *Normalizer) Normalize(ctx context.Context, doc *webdoc.FetchedDocument, opts webdoc.NormalizeOptions) (*webdoc.NormalizeResult, error) {
	return n.NormalizeFn(ctx, doc, opts)
}
