package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webdoc/fitz"
	wdgoquery "github.com/fwojciec/webdoc/goquery"
	"github.com/fwojciec/webdoc/htmltomarkdown"
	wdhttp "github.com/fwojciec/webdoc/http"
	"github.com/fwojciec/webdoc/normalize"
	"github.com/fwojciec/webdoc/readability"
	wdslog "github.com/fwojciec/webdoc/slog"
	"github.com/fwojciec/webdoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webdoc"),
		kong.Description("Fetch a URL and print a normalized, size-bounded text representation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := wdslog.NewLoggingFetcher(
		wdhttp.NewFetcher(wdhttp.WithTimeout(timeout)),
		logger,
	)
	defer fetcher.Close()

	pipeline := &normalize.Pipeline{
		Extractor: trafilatura.NewExtractor(),
		Fallback:  readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Media:     wdgoquery.NewHarvester(),
		Binary:    fitz.NewExtractor(),
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Fetcher:    fetcher,
		Normalizer: wdslog.NewLoggingNormalizer(pipeline, logger),
	}

	return kctx.Run(deps)
}
