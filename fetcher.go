package webdoc

import "context"

// Fetcher retrieves documents from URLs with a single best-effort
// request. Implementations must honor context cancellation while the
// request is in flight.
type Fetcher interface {
	// Fetch performs one GET request and returns the document.
	// A non-2xx response is an error carrying the numeric status
	// and the offending URL.
	Fetch(ctx context.Context, url string) (*FetchedDocument, error)

	// Close releases transport resources.
	Close() error
}
