// Package mcp exposes the normalization pipeline as a Model Context
// Protocol server with a single tool, fetch, served over stdio.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/webdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FetchArgs are the arguments of the fetch tool.
type FetchArgs struct {
	URL        string `json:"url" jsonschema:"URL to fetch"`
	MaxLength  int    `json:"max_length,omitempty" jsonschema:"maximum number of characters to return (default 20000)"`
	StartIndex int    `json:"start_index,omitempty" jsonschema:"character offset to start the returned window from"`
	Raw        bool   `json:"raw,omitempty" jsonschema:"return the raw content without markdown simplification"`
}

// Options validates the arguments and converts them into pipeline
// options. Validation happens here, upstream of the core, so the
// pipeline may assume well-formed input.
func (a FetchArgs) Options() (webdoc.NormalizeOptions, error) {
	if strings.TrimSpace(a.URL) == "" {
		return webdoc.NormalizeOptions{}, webdoc.Errorf(webdoc.EINVALID, "url is required")
	}

	window := webdoc.PageWindow{
		StartIndex: a.StartIndex,
		MaxLength:  a.MaxLength,
	}
	if window.MaxLength == 0 {
		window.MaxLength = webdoc.DefaultMaxLength
	}
	if err := window.Validate(); err != nil {
		return webdoc.NormalizeOptions{}, err
	}

	return webdoc.NormalizeOptions{Window: window, Raw: a.Raw}, nil
}

// Server serves the fetch tool over MCP.
type Server struct {
	fetcher    webdoc.Fetcher
	normalizer webdoc.Normalizer
	server     *mcp.Server
}

// NewServer creates a new Server backed by the given fetcher and
// normalizer.
func NewServer(fetcher webdoc.Fetcher, normalizer webdoc.Normalizer) *Server {
	s := &Server{
		fetcher:    fetcher,
		normalizer: normalizer,
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: "webdoc", Version: "1.0.0"}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "fetch",
		Description: "Fetch a URL and return its content as markdown. HTML pages are reduced to their main readable content; PDFs are reduced to linear text; other content types pass through with a note. Long content is windowed: use start_index from a truncated response to continue.",
	}, s.fetch)
	s.server = srv

	return s
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// fetch is the tool handler. Retrieval and validation failures become
// tool error results; extraction-stage failures are already folded
// into the normalized text by the pipeline.
func (s *Server) fetch(ctx context.Context, req *mcp.CallToolRequest, args FetchArgs) (*mcp.CallToolResult, any, error) {
	opts, err := args.Options()
	if err != nil {
		return errorResult(webdoc.ErrorMessage(err)), nil, nil
	}

	doc, err := s.fetcher.Fetch(ctx, args.URL)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to fetch %s: %s", args.URL, err)), nil, nil
	}

	res, err := s.normalizer.Normalize(ctx, doc, opts)
	if err != nil {
		return nil, nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatResult(args.URL, res)}},
	}, nil, nil
}

// FormatResult renders a normalize result as the tool's text output:
// a contents header, the optional prefix note, the windowed text, a
// continuation hint when truncated, and the full media reference list.
func FormatResult(url string, res *webdoc.NormalizeResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Contents of %s:\n", url)
	if res.PrefixNote != "" {
		b.WriteString(res.PrefixNote)
		b.WriteString("\n")
	}
	b.WriteString(res.Text)

	if res.Truncated {
		fmt.Fprintf(&b, "\n\nContent truncated. Call the fetch tool with a start_index of %d to get more content.", res.NextStartIndex)
	}

	if len(res.MediaRefs) > 0 {
		b.WriteString("\n\nMedia:\n")
		for _, ref := range res.MediaRefs {
			if ref.AltText != "" {
				fmt.Fprintf(&b, "- %s (%s)\n", ref.SourceURL, ref.AltText)
			} else {
				fmt.Fprintf(&b, "- %s\n", ref.SourceURL)
			}
		}
	}

	return b.String()
}

// errorResult wraps a message as a tool error result.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
