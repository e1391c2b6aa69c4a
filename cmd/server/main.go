// Command server runs the websearch MCP server.
//
// Providers are detected from credentials at startup:
//
//	GOOGLE_API_KEY + GOOGLE_SEARCH_ENGINE_ID - Google Custom Search
//	OLLAMA_API_KEY                           - hosted Ollama web search
//	(none)                                   - local Ollama instance
//	SEARXNG_URL                              - self-hosted SearXNG
//
// A YAML config file (WEBSEARCH_CONFIG or -config) layers under the
// environment. The server exits non-zero when no provider is usable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"websearch-mcp/pkg/config"
	"websearch-mcp/pkg/debug"
	"websearch-mcp/pkg/search"
	"websearch-mcp/pkg/transport"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	debug.Init(cfg.Debug.Categories, cfg.Debug.Level)

	registry, err := search.BuildRegistry(cfg)
	if err != nil {
		if errors.Is(err, search.ErrNoProvidersConfigured) {
			return fmt.Errorf("%w: set GOOGLE_API_KEY and GOOGLE_SEARCH_ENGINE_ID for Google, "+
				"OLLAMA_API_KEY (or run a local Ollama instance) for Ollama, "+
				"or SEARXNG_URL for SearXNG", err)
		}
		return fmt.Errorf("building provider registry: %w", err)
	}
	slog.Info("search providers ready", "providers", registry.Names(), "count", registry.Len())

	orchestrator := search.NewOrchestrator(registry,
		search.WithCallTimeout(cfg.Search.CallTimeout))

	srv, err := transport.NewServer(*cfg, orchestrator)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.ListenAndServe()
}
