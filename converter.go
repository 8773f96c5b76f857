package webdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown: hash-style
	// headings, fenced code blocks, paragraphs separated by blank
	// lines, inline link and emphasis tokens. The input should be
	// clean HTML (e.g., from an Extractor), but any script or style
	// residue must be excluded from the output rather than rendered.
	Convert(html string) (string, error)
}
