package webdoc

// Pagination defaults and bounds for PageWindow. Callers validate
// windows against these before invoking the pipeline.
const (
	DefaultMaxLength = 20000
	MaxWindowLength  = 1000000
)

// PageWindow selects a slice of normalized text. It applies to text
// only, never to media references.
type PageWindow struct {
	// StartIndex is the rune offset to start from. Out-of-range
	// values yield an empty slice, not an error.
	StartIndex int

	// MaxLength is the maximum number of runes to return.
	MaxLength int
}

// DefaultWindow returns a window covering the first DefaultMaxLength
// runes of a document.
func DefaultWindow() PageWindow {
	return PageWindow{StartIndex: 0, MaxLength: DefaultMaxLength}
}

// Validate returns an error if the window is out of bounds.
func (w PageWindow) Validate() error {
	if w.StartIndex < 0 {
		return Errorf(EINVALID, "start index must be non-negative, got %d", w.StartIndex)
	}
	if w.MaxLength <= 0 {
		return Errorf(EINVALID, "max length must be positive, got %d", w.MaxLength)
	}
	if w.MaxLength > MaxWindowLength {
		return Errorf(EINVALID, "max length must not exceed %d, got %d", MaxWindowLength, w.MaxLength)
	}
	return nil
}

// PaginatedOutput is the result of applying a PageWindow to text.
type PaginatedOutput struct {
	// Slice is the selected portion of the text.
	Slice string

	// Truncated reports whether content was cut at MaxLength.
	Truncated bool

	// NextStartIndex is the offset to request the next window from.
	// Only meaningful when Truncated is true. It is computed
	// arithmetically as StartIndex + MaxLength without verifying
	// that more content actually remains past the window, so the
	// exact final page can still advertise a next offset.
	NextStartIndex int
}

// Paginate slices text deterministically according to the window.
// A start index at or past the end of the text yields an empty slice
// with Truncated false. Offsets count runes, so concatenating
// consecutive windows reconstructs the original text exactly.
func Paginate(text string, w PageWindow) PaginatedOutput {
	runes := []rune(text)
	if w.StartIndex >= len(runes) {
		return PaginatedOutput{Slice: "", Truncated: false}
	}

	remaining := runes[w.StartIndex:]
	if len(remaining) <= w.MaxLength {
		return PaginatedOutput{Slice: string(remaining), Truncated: false}
	}

	return PaginatedOutput{
		Slice:          string(remaining[:w.MaxLength]),
		Truncated:      true,
		NextStartIndex: w.StartIndex + w.MaxLength,
	}
}
