package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"websearch-mcp/pkg/api"
)

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := New(Config{EngineID: "cx"}); err == nil {
		t.Error("expected error for missing APIKey")
	}
	if _, err := New(Config{APIKey: "key"}); err == nil {
		t.Error("expected error for missing EngineID")
	}
	if _, err := New(Config{APIKey: "key", EngineID: "cx"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("expected key=test-key, got %q", q.Get("key"))
		}
		if q.Get("cx") != "test-cx" {
			t.Errorf("expected cx=test-cx, got %q", q.Get("cx"))
		}
		if q.Get("q") != "golang concurrency" {
			t.Errorf("unexpected query %q", q.Get("q"))
		}
		if q.Get("num") != "3" {
			t.Errorf("expected num=3, got %q", q.Get("num"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"title": "Goroutines", "link": "https://go.dev/tour/concurrency", "snippet": "A goroutine is a lightweight thread"},
				{"title": "Channels", "link": "https://go.dev/ref/spec#Channel_types", "snippet": "Channels provide a mechanism"}
			]
		}`))
	}))
	defer server.Close()

	p, err := New(Config{APIKey: "test-key", EngineID: "test-cx", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	results, err := p.Search(context.Background(), "golang concurrency", 3)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Goroutines" {
		t.Errorf("unexpected title %q", results[0].Title)
	}
	if results[0].URL != "https://go.dev/tour/concurrency" {
		t.Errorf("unexpected url %q", results[0].URL)
	}
	if results[1].Snippet != "Channels provide a mechanism" {
		t.Errorf("unexpected snippet %q", results[1].Snippet)
	}
}

func TestSearchCapsMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("num"); got != "10" {
			t.Errorf("expected num capped at 10, got %q", got)
		}
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	p, _ := New(Config{APIKey: "k", EngineID: "cx", BaseURL: server.URL})
	if _, err := p.Search(context.Background(), "q", 25); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
}

func TestSearchEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	p, _ := New(Config{APIKey: "k", EngineID: "cx", BaseURL: server.URL})
	results, err := p.Search(context.Background(), "q", 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   api.Outcome
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error": {"message": "invalid key"}}`, api.OutcomeAuth},
		{"forbidden", http.StatusForbidden, `{"error": {"message": "blocked"}}`, api.OutcomeAuth},
		{"rate limited", http.StatusTooManyRequests, `{"error": {"message": "quota exceeded"}}`, api.OutcomeQuota},
		{"server error", http.StatusInternalServerError, `oops`, api.OutcomeNetwork},
		{"bad request", http.StatusBadRequest, `{"error": {"message": "invalid cx"}}`, api.OutcomeMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p, _ := New(Config{APIKey: "k", EngineID: "cx", BaseURL: server.URL})
			_, err := p.Search(context.Background(), "q", 5)

			var failure *api.ProviderFailure
			if !errors.As(err, &failure) {
				t.Fatalf("expected ProviderFailure, got %v", err)
			}
			if failure.Kind != tt.want {
				t.Errorf("expected outcome %s, got %s", tt.want, failure.Kind)
			}
		})
	}
}

func TestSearchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	p, _ := New(Config{APIKey: "k", EngineID: "cx", BaseURL: server.URL})
	_, err := p.Search(context.Background(), "q", 5)

	if api.FailureKind(err) != api.OutcomeMalformed {
		t.Errorf("expected malformed, got %v", err)
	}
}

func TestSearchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	p, _ := New(Config{APIKey: "k", EngineID: "cx", BaseURL: server.URL})
	_, err := p.Search(context.Background(), "q", 5)

	if api.FailureKind(err) != api.OutcomeNetwork {
		t.Errorf("expected network failure, got %v", err)
	}
}
