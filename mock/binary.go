package mock

import "github.com/fwojciec/webdoc"

var _ webdoc.BinaryExtractor = (*BinaryExtractor)(nil)

// BinaryExtractor is a mock implementation of webdoc.BinaryExtractor.
type BinaryExtractor struct {
	ExtractTextFn func(data []byte) (string, error)
}

func (b *BinaryExtractor) ExtractText(data []byte) (string, error) {
	return b.ExtractTextFn(data)
}
