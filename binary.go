package webdoc

// BinaryExtractor extracts linear text from a binary document format
// such as PDF.
type BinaryExtractor interface {
	// ExtractText parses the raw bytes and returns page text
	// concatenated in page order. Returns an error for malformed
	// input; the pipeline degrades that to empty text rather than
	// failing the request.
	ExtractText(data []byte) (string, error)
}
