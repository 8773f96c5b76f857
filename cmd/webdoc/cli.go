package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webdoc"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log operations to stderr"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`

	Fetch FetchCmd `cmd:"" help:"Fetch a URL and print its normalized content"`
	Serve ServeCmd `cmd:"" help:"Serve the fetch tool over MCP stdio"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher    webdoc.Fetcher
	Normalizer webdoc.Normalizer
}
