package search

import (
	"fmt"
	"log/slog"

	"websearch-mcp/pkg/config"
	"websearch-mcp/pkg/search/google"
	"websearch-mcp/pkg/search/ollama"
	"websearch-mcp/pkg/search/searxng"
)

// Compile-time checks that every adapter implements Provider.
var (
	_ Provider = (*google.GoogleProvider)(nil)
	_ Provider = (*ollama.OllamaProvider)(nil)
	_ Provider = (*searxng.SearXNGProvider)(nil)
)

// Registry holds the set of usable providers. It is constructed once at
// startup and never mutated afterwards, so it is safe to share read-only
// across concurrent requests without locking.
type Registry struct {
	providers []Provider
}

// NewRegistry builds a registry from an explicit provider list. Used by
// tests and callers doing their own wiring; an empty list is allowed here
// and surfaces as ErrNoProvidersAvailable at execute time.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// BuildRegistry inspects the configured credentials and constructs every
// usable provider adapter:
//
//   - google: requires both api_key and engine_id
//   - ollama: usable unless disabled; an optional key selects hosted mode
//   - searxng: requires a base URL
//
// Returns ErrNoProvidersConfigured when the resulting set is empty. That
// condition is startup-fatal for the server, never a per-request error.
func BuildRegistry(cfg *config.Config) (*Registry, error) {
	var providers []Provider

	if g := cfg.Providers.Google; g.APIKey != "" && g.EngineID != "" {
		p, err := google.New(google.Config{
			APIKey:   g.APIKey,
			EngineID: g.EngineID,
		})
		if err != nil {
			return nil, fmt.Errorf("building google provider: %w", err)
		}
		providers = append(providers, p)
		slog.Info("search provider detected", "provider", p.Name())
	}

	if cfg.OllamaEnabled() {
		p := ollama.New(ollama.Config{
			APIKey:  cfg.Providers.Ollama.APIKey,
			BaseURL: cfg.Providers.Ollama.BaseURL,
		})
		providers = append(providers, p)
		slog.Info("search provider detected", "provider", p.Name(), "hosted", cfg.Providers.Ollama.APIKey != "")
	}

	if u := cfg.Providers.SearXNG.URL; u != "" {
		p, err := searxng.New(searxng.Config{BaseURL: u})
		if err != nil {
			return nil, fmt.Errorf("building searxng provider: %w", err)
		}
		providers = append(providers, p)
		slog.Info("search provider detected", "provider", p.Name())
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return &Registry{providers: providers}, nil
}

// Providers returns a copy of the provider set. Callers may reorder or
// shrink the copy freely.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Names returns the provider identifiers in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// Len returns the number of usable providers.
func (r *Registry) Len() int {
	return len(r.providers)
}
