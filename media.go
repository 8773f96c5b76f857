package webdoc

import "net/url"

// MaxMediaRefs caps how many media references are harvested from a
// single document. Entries beyond the cap are silently dropped.
const MaxMediaRefs = 10

// MediaRef describes an embedded image found within extracted content.
type MediaRef struct {
	// SourceURL is the image source, resolved against the page URL.
	SourceURL string `json:"sourceUrl"`

	// AltText is the image alt attribute; empty when absent.
	AltText string `json:"altText"`
}

// MediaHarvester collects embedded image references from extracted
// content, in document order, capped at MaxMediaRefs.
type MediaHarvester interface {
	// Harvest scans content HTML for image elements. base resolves
	// relative sources; a nil base leaves sources as written.
	Harvest(contentHTML string, base *url.URL) ([]MediaRef, error)
}
