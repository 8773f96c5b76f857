package main

import (
	"fmt"

	"github.com/fwojciec/webdoc"
)

// FetchCmd handles the one-shot fetch operation.
type FetchCmd struct {
	URL        string `arg:"" required:"" help:"URL to fetch"`
	MaxLength  int    `default:"20000" help:"Maximum number of characters to print"`
	StartIndex int    `default:"0" help:"Character offset to start from"`
	Raw        bool   `help:"Print the raw content without markdown simplification"`
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	// Validate options before they reach the core.
	window := webdoc.PageWindow{
		StartIndex: c.StartIndex,
		MaxLength:  c.MaxLength,
	}
	if err := window.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdoc.ErrorMessage(err))
		return err
	}

	doc, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %v\n", c.URL, err)
		return err
	}

	res, err := deps.Normalizer.Normalize(deps.Ctx, doc, webdoc.NormalizeOptions{
		Window: window,
		Raw:    c.Raw,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if res.PrefixNote != "" {
		fmt.Fprintln(deps.Stdout, res.PrefixNote)
	}
	fmt.Fprintln(deps.Stdout, res.Text)

	for _, ref := range res.MediaRefs {
		if ref.AltText != "" {
			fmt.Fprintf(deps.Stdout, "media: %s (%s)\n", ref.SourceURL, ref.AltText)
		} else {
			fmt.Fprintf(deps.Stdout, "media: %s\n", ref.SourceURL)
		}
	}

	if res.Truncated {
		fmt.Fprintf(deps.Stderr, "content truncated; rerun with --start-index %d for more\n", res.NextStartIndex)
	}

	return nil
}
