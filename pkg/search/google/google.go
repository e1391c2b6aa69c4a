// Package google implements the search provider backed by the Google
// Custom Search JSON API.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"websearch-mcp/pkg/api"
	"websearch-mcp/pkg/search/vendorhttp"
)

// DefaultBaseURL is the Custom Search API endpoint.
const DefaultBaseURL = "https://customsearch.googleapis.com/customsearch/v1"

// Config holds configuration for the Google provider adapter.
type Config struct {
	// APIKey is the Custom Search API key (required).
	APIKey string

	// EngineID is the Custom Search Engine ID, the "cx" parameter (required).
	EngineID string

	// BaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient allows injecting a custom client (useful for testing).
	// If nil, http.DefaultClient is used; the caller bounds each call
	// with a context deadline.
	HTTPClient *http.Client
}

// GoogleProvider implements search.Provider against the Custom Search API.
type GoogleProvider struct {
	cfg    Config
	client *http.Client
}

// New creates a new GoogleProvider with the given configuration.
// Returns an error if the configuration is incomplete.
func New(cfg Config) (*GoogleProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google: APIKey is required")
	}
	if cfg.EngineID == "" {
		return nil, fmt.Errorf("google: EngineID is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &GoogleProvider{cfg: cfg, client: client}, nil
}

// Name returns the provider identifier.
func (p *GoogleProvider) Name() string {
	return "google"
}

// searchResponse represents the JSON response from the Custom Search API.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

// searchItem represents a single result entry.
type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Search queries the Custom Search API and returns normalized results.
// The API serves at most 10 results per call; maxResults is capped
// accordingly.
func (p *GoogleProvider) Search(ctx context.Context, query string, maxResults int) ([]api.SearchResult, error) {
	if maxResults > api.MaxResultCount {
		maxResults = api.MaxResultCount
	}

	params := url.Values{}
	params.Set("key", p.cfg.APIKey)
	params.Set("cx", p.cfg.EngineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

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

	results := make([]api.SearchResult, 0, min(len(sr.Items), maxResults))
	for i, item := range sr.Items {
		if i >= maxResults {
			break
		}
		results = append(results, api.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	return results, nil
}
