// Package goquery provides a goquery-based media harvester that
// collects embedded image references from extracted content.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webdoc"
)

// Ensure Harvester implements webdoc.MediaHarvester at compile time.
var _ webdoc.MediaHarvester = (*Harvester)(nil)

// Harvester scans extracted content for image elements in document
// order, capped at webdoc.MaxMediaRefs. Images outside the extracted
// region never reach it; the pipeline passes only the content subtree.
type Harvester struct{}

// NewHarvester creates a new Harvester.
func NewHarvester() *Harvester {
	return &Harvester{}
}

// Harvest collects image references from content HTML. Relative
// sources are resolved against base when base is non-nil. Entries
// beyond the cap are silently dropped.
func (h *Harvester) Harvest(contentHTML string, base *url.URL) ([]webdoc.MediaRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, err
	}

	var refs []webdoc.MediaRef
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			return true
		}

		refs = append(refs, webdoc.MediaRef{
			SourceURL: resolveSource(src, base),
			AltText:   s.AttrOr("alt", ""),
		})
		return len(refs) < webdoc.MaxMediaRefs
	})

	return refs, nil
}

// resolveSource resolves src against base, falling back to the source
// as written when it cannot be parsed.
func resolveSource(src string, base *url.URL) string {
	if base == nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
