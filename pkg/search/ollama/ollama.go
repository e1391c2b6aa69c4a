// Package ollama implements the search provider backed by the Ollama
// web-search API. Without an API key the adapter talks to a local
// instance; with one it uses the hosted service with bearer
// authentication.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"websearch-mcp/pkg/api"
	"websearch-mcp/pkg/search/vendorhttp"
)

// Base URLs for the two operating modes.
const (
	// DefaultHostedBaseURL is the hosted Ollama service, used when an
	// API key is configured.
	DefaultHostedBaseURL = "https://ollama.com"

	// DefaultLocalBaseURL is a local Ollama instance, used without a key.
	DefaultLocalBaseURL = "http://localhost:11434"
)

// Config holds configuration for the Ollama provider adapter.
type Config struct {
	// APIKey enables the hosted service (optional).
	APIKey string

	// BaseURL overrides the endpoint. Defaults depend on whether APIKey
	// is set.
	BaseURL string

	// HTTPClient allows injecting a custom client (useful for testing).
	// If nil, http.DefaultClient is used; the caller bounds each call
	// with a context deadline.
	HTTPClient *http.Client
}

// OllamaProvider implements search.Provider against the web-search API.
type OllamaProvider struct {
	cfg    Config
	client *http.Client
}

// New creates a new OllamaProvider with the given configuration.
// The adapter is usable without any credentials.
func New(cfg Config) *OllamaProvider {
	if cfg.BaseURL == "" {
		if cfg.APIKey != "" {
			cfg.BaseURL = DefaultHostedBaseURL
		} else {
			cfg.BaseURL = DefaultLocalBaseURL
		}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &OllamaProvider{cfg: cfg, client: client}
}

// Name returns the provider identifier.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// searchRequest is the web-search API request body.
type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// searchResponse represents the JSON response from the web-search API.
type searchResponse struct {
	Results []searchItem `json:"results"`
}

// searchItem represents a single result entry.
type searchItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Search queries the web-search API and returns normalized results.
func (p *OllamaProvider) Search(ctx context.Context, query string, maxResults int) ([]api.SearchResult, error) {
	payload, err := json.Marshal(searchRequest{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/api/web_search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, api.NewProviderFailure(api.OutcomeNetwork, fmt.Errorf("executing search request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, vendorhttp.MapHTTPError(resp)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, api.NewProviderFailure(api.OutcomeMalformed, fmt.Errorf("decoding search response: %w", err))
	}

	results := make([]api.SearchResult, 0, min(len(sr.Results), maxResults))
	for i, item := range sr.Results {
		if i >= maxResults {
			break
		}
		results = append(results, api.SearchResult{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Content,
		})
	}

	return results, nil
}
