// Package fitz provides a go-fitz (MuPDF) based implementation of
// webdoc.BinaryExtractor for PDF documents.
package fitz

import (
	"strings"

	"github.com/fwojciec/webdoc"
	"github.com/gen2brain/go-fitz"
)

// Ensure Extractor implements webdoc.BinaryExtractor at compile time.
var _ webdoc.BinaryExtractor = (*Extractor)(nil)

// Extractor extracts linear text from PDF bytes. Each call opens a
// fresh document, so concurrent extractions share no parser state.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText parses the PDF and returns page text concatenated in
// page order, separated by blank lines. Pages that fail to render are
// skipped; a document that cannot be opened at all is an error, which
// the pipeline degrades to empty text.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", webdoc.Errorf(webdoc.EINVALID, "empty document")
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", webdoc.Errorf(webdoc.EUNPROCESSABLE, "malformed document: %s", err)
	}
	defer doc.Close()

	var pages []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}
