package api

import "strings"

// Result count bounds. Google Custom Search returns at most 10 results per
// call, so the whole system clamps to that range before any provider is
// invoked.
const (
	MinResultCount     = 1
	MaxResultCount     = 10
	DefaultResultCount = 10
)

// SearchResult holds a single normalized search result from any back-end.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// SearchQuery is one search request as seen by the orchestration core.
// It is a value type constructed per request and never shared.
type SearchQuery struct {
	Text  string `json:"query"`
	Count int    `json:"count"`
}

// Clamped returns a copy of the query with the result count normalized to
// [MinResultCount, MaxResultCount]. A zero count means the caller omitted
// it and gets DefaultResultCount.
func (q SearchQuery) Clamped() SearchQuery {
	switch {
	case q.Count == 0:
		q.Count = DefaultResultCount
	case q.Count < MinResultCount:
		q.Count = MinResultCount
	case q.Count > MaxResultCount:
		q.Count = MaxResultCount
	}
	return q
}

// Validate checks that the query text is non-empty after trimming.
// The count is not validated here: out-of-range counts are clamped, not
// rejected.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidQueryError("query", "query must not be empty")
	}
	return nil
}

// Outcome classifies the result of invoking one provider.
type Outcome string

const (
	// OutcomeSuccess means the provider returned at least one result.
	OutcomeSuccess Outcome = "success"

	// OutcomeEmpty means the call succeeded but returned zero results.
	// It triggers fallback exactly like a failure.
	OutcomeEmpty Outcome = "empty"

	// Failure classifications. All trigger fallback; they differ only
	// for diagnostics and metrics.
	OutcomeAuth      Outcome = "auth"
	OutcomeQuota     Outcome = "quota"
	OutcomeNetwork   Outcome = "network"
	OutcomeMalformed Outcome = "malformed"
)

// String returns the outcome as its wire label.
func (o Outcome) String() string {
	return string(o)
}

// Failed reports whether the outcome is a failure classification
// (as opposed to success or empty-success).
func (o Outcome) Failed() bool {
	return o != OutcomeSuccess && o != OutcomeEmpty
}

// Attempt records the outcome of invoking one provider during a single
// orchestrated search. Attempts exist only for the duration of one call;
// no history is kept across requests.
type Attempt struct {
	Provider string  `json:"provider"`
	Outcome  Outcome `json:"outcome"`
	Err      error   `json:"-"`
}

// String renders the attempt as "provider=outcome" for log and error text.
func (a Attempt) String() string {
	return a.Provider + "=" + string(a.Outcome)
}
