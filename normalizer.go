package webdoc

import "context"

// NormalizeOptions configures a single normalization pass.
type NormalizeOptions struct {
	// Window selects the portion of normalized text to return.
	Window PageWindow

	// Raw bypasses structural extraction and binary parsing
	// entirely, returning the document as-is with a note when the
	// content type is not already plain text.
	Raw bool
}

// NormalizeResult is the outcome of normalizing one document.
// Extraction-stage failures are folded into Text as informational
// content; a NormalizeResult is produced for every document that was
// successfully retrieved.
type NormalizeResult struct {
	// Text is the normalized text for the requested window.
	Text string `json:"text"`

	// MediaRefs are embedded images found within the extracted
	// content, at most MaxMediaRefs, always returned in full
	// independent of pagination.
	MediaRefs []MediaRef `json:"mediaRefs,omitempty"`

	// PrefixNote precedes the text when the content was passed
	// through without simplification (e.g., non-HTML content types).
	PrefixNote string `json:"prefixNote,omitempty"`

	// Truncated reports whether Text was cut at the window's
	// MaxLength; NextStartIndex is the offset for the next window
	// when it was.
	Truncated      bool `json:"truncated"`
	NextStartIndex int  `json:"nextStartIndex,omitempty"`

	// ContentHash is an xxhash64 hex digest of the full
	// pre-pagination text, stable across windows of the same
	// document.
	ContentHash string `json:"contentHash"`
}

// Normalizer turns a fetched document into normalized, windowed text.
type Normalizer interface {
	// Normalize classifies the document, applies the matching
	// extraction path, and paginates the result. The returned error
	// is reserved for context cancellation and internal failures;
	// extraction-stage failures surface as result content.
	Normalize(ctx context.Context, doc *FetchedDocument, opts NormalizeOptions) (*NormalizeResult, error)
}
