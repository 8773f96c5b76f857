package webdoc

import (
	"bytes"
	"strings"
)

// FetchedDocument represents a document retrieved from a URL. It is
// immutable once obtained: created per request, consumed once by the
// normalization pipeline, and discarded. It is never cached or retried.
type FetchedDocument struct {
	// URL is the requested URL, used to resolve relative references.
	URL string

	// ContentType is the declared MIME type from the response headers.
	// May be empty when the server did not declare one.
	ContentType string

	// Body is the raw response body.
	Body []byte
}

// ContentClass identifies which extraction path applies to a document.
// It is derived from the document on demand, never stored.
type ContentClass int

// Content classes, in decision order.
const (
	ClassHTML ContentClass = iota
	ClassPDF
	ClassOpaque
)

// String returns a human-readable name for the content class.
func (c ContentClass) String() string {
	switch c {
	case ClassHTML:
		return "html"
	case ClassPDF:
		return "pdf"
	default:
		return "opaque"
	}
}

// classifySniffLimit bounds how much of the body is inspected for an
// HTML root-element marker when the declared content type is not
// conclusive.
const classifySniffLimit = 1024

// Classify decides which extraction path applies to a document.
// The decision is ordered and the first match wins:
//
//  1. forceRaw always classifies as Opaque.
//  2. A declared HTML MIME type, or an <html marker near the start of
//     the body, classifies as HTML.
//  3. A declared PDF MIME type classifies as PDF.
//  4. Everything else is Opaque.
//
// Classification always succeeds; there is no error path.
func Classify(doc *FetchedDocument, forceRaw bool) ContentClass {
	if forceRaw {
		return ClassOpaque
	}

	declared := strings.ToLower(doc.ContentType)
	if strings.Contains(declared, "text/html") || strings.Contains(declared, "application/xhtml") {
		return ClassHTML
	}

	sniff := doc.Body
	if len(sniff) > classifySniffLimit {
		sniff = sniff[:classifySniffLimit]
	}
	if bytes.Contains(bytes.ToLower(sniff), []byte("<html")) {
		return ClassHTML
	}

	if strings.Contains(declared, "application/pdf") {
		return ClassPDF
	}

	return ClassOpaque
}
