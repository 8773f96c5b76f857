package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webdoc"
)

// Ensure LoggingNormalizer implements webdoc.Normalizer.
var _ webdoc.Normalizer = (*LoggingNormalizer)(nil)

// LoggingNormalizer wraps a Normalizer with operation logging.
type LoggingNormalizer struct {
	next   webdoc.Normalizer
	logger *slog.Logger
}

// NewLoggingNormalizer creates a new LoggingNormalizer.
func NewLoggingNormalizer(next webdoc.Normalizer, logger *slog.Logger) *LoggingNormalizer {
	return &LoggingNormalizer{next: next, logger: logger}
}

// Normalize delegates to the wrapped normalizer and logs the operation.
func (n *LoggingNormalizer) Normalize(ctx context.Context, doc *webdoc.FetchedDocument, opts webdoc.NormalizeOptions) (res *webdoc.NormalizeResult, err error) {
	defer func(begin time.Time) {
		chars := 0
		media := 0
		truncated := false
		if res != nil {
			chars = len(res.Text)
			media = len(res.MediaRefs)
			truncated = res.Truncated
		}
		n.logger.Info("normalize",
			"url", doc.URL,
			"class", webdoc.Classify(doc, opts.Raw).String(),
			"chars", chars,
			"media", media,
			"truncated", truncated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Normalize(ctx, doc, opts)
}
