// Package searxng implements the search provider backed by a self-hosted
// SearXNG instance.
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"websearch-mcp/pkg/api"
	"websearch-mcp/pkg/search/vendorhttp"
)

// htmlTagRegex matches HTML tags for stripping from snippets.
var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// Config holds configuration for the SearXNG provider adapter.
type Config struct {
	// BaseURL of the SearXNG instance (required).
	BaseURL string

	// HTTPClient allows injecting a custom client (useful for testing).
	// If nil, http.DefaultClient is used; the caller bounds each call
	// with a context deadline.
	HTTPClient *http.Client
}

// SearXNGProvider implements search.Provider against a SearXNG instance.
type SearXNGProvider struct {
	cfg    Config
	client *http.Client
}

// New creates a new SearXNGProvider with the given configuration.
func New(cfg Config) (*SearXNGProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("searxng: BaseURL is required")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &SearXNGProvider{cfg: cfg, client: client}, nil
}

// Name returns the provider identifier.
func (p *SearXNGProvider) Name() string {
	return "searxng"
}

// searxngResponse represents the JSON response from SearXNG.
type searxngResponse struct {
	Results []searxngResult `json:"results"`
}

// searxngResult represents a single result from SearXNG.
type searxngResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Search queries the SearXNG instance and returns normalized results.
func (p *SearXNGProvider) Search(ctx context.Context, query string, maxResults int) ([]api.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/search?q=%s&format=json&categories=general",
		p.cfg.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, api.NewProviderFailure(api.OutcomeNetwork, fmt.Errorf("executing search request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, vendorhttp.MapHTTPError(resp)
	}

	var sr searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, api.NewProviderFailure(api.OutcomeMalformed, fmt.Errorf("decoding search response: %w", err))
	}

	results := make([]api.SearchResult, 0, min(len(sr.Results), maxResults))
	for i, r := range sr.Results {
		if i >= maxResults {
			break
		}
		results = append(results, api.SearchResult{
			Title:   stripHTML(r.Title),
			URL:     r.URL,
			Snippet: stripHTML(r.Content),
		})
	}

	return results, nil
}

// stripHTML removes HTML tags from text.
func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagRegex.ReplaceAllString(s, ""))
}
