package webdoc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	t.Run("returns full text when it fits the window", func(t *testing.T) {
		t.Parallel()

		out := webdoc.Paginate("hello world", webdoc.PageWindow{StartIndex: 0, MaxLength: 100})

		assert.Equal(t, "hello world", out.Slice)
		assert.False(t, out.Truncated)
	})

	t.Run("truncates at max length and computes next start index", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 50)
		out := webdoc.Paginate(text, webdoc.PageWindow{StartIndex: 0, MaxLength: 20})

		assert.Len(t, out.Slice, 20)
		assert.True(t, out.Truncated)
		assert.Equal(t, 20, out.NextStartIndex)
	})

	t.Run("slices from a non-zero start", func(t *testing.T) {
		t.Parallel()

		out := webdoc.Paginate("abcdefghij", webdoc.PageWindow{StartIndex: 4, MaxLength: 3})

		assert.Equal(t, "efg", out.Slice)
		assert.True(t, out.Truncated)
		assert.Equal(t, 7, out.NextStartIndex)
	})

	t.Run("start at text length yields empty slice without truncation", func(t *testing.T) {
		t.Parallel()

		out := webdoc.Paginate("abc", webdoc.PageWindow{StartIndex: 3, MaxLength: 10})

		assert.Empty(t, out.Slice)
		assert.False(t, out.Truncated)
	})

	t.Run("start past text length yields empty slice without truncation", func(t *testing.T) {
		t.Parallel()

		out := webdoc.Paginate("abc", webdoc.PageWindow{StartIndex: 100, MaxLength: 10})

		assert.Empty(t, out.Slice)
		assert.False(t, out.Truncated)
	})

	t.Run("exact final page still advertises a next start index", func(t *testing.T) {
		t.Parallel()

		// Documented behavior: the next offset is computed
		// arithmetically without verifying more content exists.
		out := webdoc.Paginate("abcdef", webdoc.PageWindow{StartIndex: 0, MaxLength: 5})

		assert.True(t, out.Truncated)
		assert.Equal(t, 5, out.NextStartIndex)
	})

	t.Run("concatenating consecutive windows reconstructs the text", func(t *testing.T) {
		t.Parallel()

		text := "Hello, 世界! This is a longer piece of text with multi-byte runes: é, ü, 中文."
		const m = 7

		var rebuilt strings.Builder
		start := 0
		for {
			out := webdoc.Paginate(text, webdoc.PageWindow{StartIndex: start, MaxLength: m})
			rebuilt.WriteString(out.Slice)
			if !out.Truncated {
				break
			}
			start = out.NextStartIndex
		}

		assert.Equal(t, text, rebuilt.String())
	})

	t.Run("window offsets count runes not bytes", func(t *testing.T) {
		t.Parallel()

		out := webdoc.Paginate("日本語テキスト", webdoc.PageWindow{StartIndex: 2, MaxLength: 3})

		assert.Equal(t, "語テキ", out.Slice)
		assert.True(t, out.Truncated)
		assert.Equal(t, 5, out.NextStartIndex)
	})
}

func TestPageWindow_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, webdoc.DefaultWindow().Validate())
	})

	t.Run("rejects negative start index", func(t *testing.T) {
		t.Parallel()

		err := webdoc.PageWindow{StartIndex: -1, MaxLength: 100}.Validate()
		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})

	t.Run("rejects non-positive max length", func(t *testing.T) {
		t.Parallel()

		err := webdoc.PageWindow{StartIndex: 0, MaxLength: 0}.Validate()
		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})

	t.Run("rejects max length above the upper bound", func(t *testing.T) {
		t.Parallel()

		err := webdoc.PageWindow{StartIndex: 0, MaxLength: webdoc.MaxWindowLength + 1}.Validate()
		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})
}
