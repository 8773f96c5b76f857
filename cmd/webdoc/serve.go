package main

import (
	wdmcp "github.com/fwojciec/webdoc/mcp"
)

// ServeCmd runs the MCP stdio server.
type ServeCmd struct{}

// Run executes the serve command, blocking until the client
// disconnects or the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := wdmcp.NewServer(deps.Fetcher, deps.Normalizer)
	return server.Run(deps.Ctx)
}
