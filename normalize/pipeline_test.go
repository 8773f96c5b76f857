package normalize_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/webdoc"
	"github.com/fwojciec/webdoc/fitz"
	wdgoquery "github.com/fwojciec/webdoc/goquery"
	"github.com/fwojciec/webdoc/htmltomarkdown"
	"github.com/fwojciec/webdoc/normalize"
	"github.com/fwojciec/webdoc/readability"
	"github.com/fwojciec/webdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRealPipeline wires the pipeline with its production stages, the
// same composition the CLI uses.
func newRealPipeline() *normalize.Pipeline {
	return &normalize.Pipeline{
		Extractor: trafilatura.NewExtractor(),
		Fallback:  readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Media:     wdgoquery.NewHarvester(),
		Binary:    fitz.NewExtractor(),
	}
}

func TestPipeline_EndToEnd_Article(t *testing.T) {
	t.Parallel()

	doc := &webdoc.FetchedDocument{
		URL:         "https://example.com/articles/t",
		ContentType: "text/html",
		Body: []byte(`<!DOCTYPE html>
<html>
<head><title>T</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>T</h1>
<p>Hello <img src="a.png" alt="A"> and welcome to this article, which carries enough prose for the extractor to keep it.</p>
</article>
<footer>Copyright 2025 Example Corp</footer>
</body>
</html>`),
	}

	res, err := newRealPipeline().Normalize(context.Background(), doc, webdoc.NormalizeOptions{})

	require.NoError(t, err)
	assert.Contains(t, res.Text, "# T")
	assert.Contains(t, res.Text, "Hello")
	assert.NotContains(t, res.Text, "Copyright 2025")
	assert.False(t, res.Truncated)
	assert.Empty(t, res.PrefixNote)

	require.Len(t, res.MediaRefs, 1)
	assert.Equal(t, "https://example.com/articles/a.png", res.MediaRefs[0].SourceURL)
	assert.Equal(t, "A", res.MediaRefs[0].AltText)
}

func TestPipeline_EndToEnd_MediaCap(t *testing.T) {
	t.Parallel()

	var imgs strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&imgs, `<p>Paragraph with an illustration <img src="/img-%d.png" alt="pic"> and some surrounding prose to keep the region.</p>`, i)
	}

	doc := &webdoc.FetchedDocument{
		URL:         "https://example.com/gallery",
		ContentType: "text/html",
		Body: []byte(`<!DOCTYPE html><html><head><title>Gallery</title></head><body><article>` +
			imgs.String() + `</article></body></html>`),
	}

	res, err := newRealPipeline().Normalize(context.Background(), doc, webdoc.NormalizeOptions{})

	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.MediaRefs), webdoc.MaxMediaRefs)
}

func TestPipeline_EndToEnd_NoContent(t *testing.T) {
	t.Parallel()

	doc := &webdoc.FetchedDocument{
		URL:         "https://example.com/empty",
		ContentType: "text/html",
		Body:        []byte(`<!DOCTYPE html><html><head><title>Empty</title></head><body></body></html>`),
	}

	res, err := newRealPipeline().Normalize(context.Background(), doc, webdoc.NormalizeOptions{})

	require.NoError(t, err)
	assert.Contains(t, res.Text, "could not be simplified")
	assert.Empty(t, res.MediaRefs)
}

func TestPipeline_EndToEnd_MalformedPDF(t *testing.T) {
	t.Parallel()

	doc := &webdoc.FetchedDocument{
		URL:         "https://example.com/broken.pdf",
		ContentType: "application/pdf",
		Body:        []byte("%PDF-1.7 garbage that is not a document"),
	}

	res, err := newRealPipeline().Normalize(context.Background(), doc, webdoc.NormalizeOptions{})

	require.NoError(t, err)
	assert.Empty(t, res.Text)
}
