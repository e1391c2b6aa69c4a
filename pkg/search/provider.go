package search

import (
	"context"
	"errors"

	"websearch-mcp/pkg/api"
)

// Provider abstracts an external search back-end. Each adapter handles its
// own vendor protocol internally and reports failures as classified
// [api.ProviderFailure] errors.
//
// The orchestrator depends solely on this interface and never inspects
// which concrete back-end it is holding. Implementations must be safe for
// concurrent use by multiple goroutines.
type Provider interface {
	// Name returns the provider identifier (e.g., "google", "ollama").
	Name() string

	// Search performs one query and returns at most maxResults normalized
	// results. A nil error with an empty slice is a valid outcome; the
	// caller decides how to treat it.
	Search(ctx context.Context, query string, maxResults int) ([]api.SearchResult, error)
}

// Sentinel errors.
var (
	// ErrNoProvidersConfigured is returned by BuildRegistry when credential
	// detection yields no usable provider. It is startup-fatal.
	ErrNoProvidersConfigured = errors.New("no search providers configured")

	// ErrNoProvidersAvailable is returned by Execute when the registry
	// snapshot is empty. No network call is made.
	ErrNoProvidersAvailable = errors.New("no search providers available")
)
