// Package normalize implements the content normalization pipeline:
// classification, structural extraction, markdown conversion, media
// harvesting, binary text extraction, and pagination. It composes the
// webdoc interfaces and holds no state of its own; every call is a
// single synchronous pass with fresh parser state.
package normalize

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webdoc"
)

// Ensure Pipeline implements webdoc.Normalizer at compile time.
var _ webdoc.Normalizer = (*Pipeline)(nil)

// Pipeline normalizes fetched documents. Extractor is required;
// Fallback is consulted when the primary extractor finds no readable
// content. Converter and Media serve the HTML path, Binary the PDF path.
type Pipeline struct {
	Extractor webdoc.Extractor
	Fallback  webdoc.Extractor
	Converter webdoc.Converter
	Media     webdoc.MediaHarvester
	Binary    webdoc.BinaryExtractor
}

// Normalize classifies the document and applies the matching
// extraction path, then paginates the result. Extraction-stage
// failures never abort the call: a failed HTML extraction becomes the
// result text, and a malformed binary document degrades to empty
// text. The returned error is reserved for context cancellation.
func (p *Pipeline) Normalize(ctx context.Context, doc *webdoc.FetchedDocument, opts webdoc.NormalizeOptions) (*webdoc.NormalizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	window := opts.Window
	if window.MaxLength == 0 {
		window = webdoc.DefaultWindow()
	}

	var (
		text       string
		refs       []webdoc.MediaRef
		prefixNote string
	)

	switch webdoc.Classify(doc, opts.Raw) {
	case webdoc.ClassHTML:
		text, refs = p.normalizeHTML(doc)
	case webdoc.ClassPDF:
		text = p.normalizeBinary(doc)
	default:
		text = string(doc.Body)
		prefixNote = passthroughNote(doc.ContentType)
	}

	paged := webdoc.Paginate(text, window)

	return &webdoc.NormalizeResult{
		Text:           paged.Slice,
		MediaRefs:      refs,
		PrefixNote:     prefixNote,
		Truncated:      paged.Truncated,
		NextStartIndex: paged.NextStartIndex,
		ContentHash:    fmt.Sprintf("%016x", xxhash.Sum64String(text)),
	}, nil
}

// normalizeHTML isolates the main content region, converts it to
// markdown, and harvests media references from the same subtree.
func (p *Pipeline) normalizeHTML(doc *webdoc.FetchedDocument) (string, []webdoc.MediaRef) {
	pageURL := parseURL(doc.URL)
	rawHTML := string(doc.Body)

	extracted, err := p.extract(rawHTML, pageURL)
	if err != nil {
		return failureNote(err), nil
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return failureNote(err), nil
	}

	refs, err := p.Media.Harvest(extracted.ContentHTML, pageURL)
	if err != nil {
		refs = nil
	}

	return markdown, refs
}

// extract runs the primary extractor and falls back to the secondary
// one when no readable content is found.
func (p *Pipeline) extract(rawHTML string, pageURL *url.URL) (*webdoc.ExtractResult, error) {
	result, err := p.Extractor.Extract(rawHTML, pageURL)
	if err == nil {
		return result, nil
	}
	if p.Fallback == nil {
		return nil, err
	}
	return p.Fallback.Extract(rawHTML, pageURL)
}

// normalizeBinary extracts linear text from a binary document,
// degrading to empty text on parse failure. Partial or garbled
// documents are common; graceful degradation beats failure here.
func (p *Pipeline) normalizeBinary(doc *webdoc.FetchedDocument) string {
	text, err := p.Binary.ExtractText(doc.Body)
	if err != nil {
		return ""
	}
	return text
}

// failureNote renders an extraction-stage failure as result content.
func failureNote(err error) string {
	return "Page could not be simplified: " + webdoc.ErrorMessage(err)
}

// passthroughNote explains why content is returned unsimplified.
// Plain text needs no explanation.
func passthroughNote(contentType string) string {
	if contentType == "" || strings.HasPrefix(contentType, "text/plain") {
		return ""
	}
	return fmt.Sprintf("Content type %s cannot be simplified to markdown; raw content follows.", contentType)
}

// parseURL returns nil for unparseable URLs so that extraction still
// proceeds, just without relative reference resolution.
func parseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}
