package webdoc

import "net/url"

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
//
// Extraction must be deterministic: for fixed input HTML the chosen
// region and its serialization are stable across runs.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// pageURL is the originating URL, used to resolve relative
	// references during parsing.
	//
	// Returns EUNPROCESSABLE when no readable content region can be
	// found. Callers treat that as failure-as-content, not as a
	// fatal error.
	Extract(rawHTML string, pageURL *url.URL) (*ExtractResult, error)
}
