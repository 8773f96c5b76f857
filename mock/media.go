package mock

import (
	"net/url"

	"github.com/fwojciec/webdoc"
)

var _ webdoc.MediaHarvester = (*MediaHarvester)(nil)

// MediaHarvester is a mock implementation of webdoc.MediaHarvester.
type MediaHarvester struct {
	HarvestFn func(contentHTML string, base *url.URL) ([]webdoc.MediaRef, error)
}

func (m *MediaHarvester) Harvest(contentHTML string, base *url.URL) ([]webdoc.MediaRef, error) {
	return m.HarvestFn(contentHTML, base)
}
