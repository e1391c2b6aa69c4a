package transport

import (
	"errors"
	"fmt"
	"strings"

	"websearch-mcp/pkg/api"
)

// DefaultMaxSnippetLength bounds snippet size in formatted output.
const DefaultMaxSnippetLength = 512

// FormatResults renders search results as numbered markdown, naming the
// backend that served them. Snippets longer than maxSnippet are truncated
// with a trailing ellipsis; maxSnippet <= 0 disables truncation.
func FormatResults(provider string, results []api.SearchResult, maxSnippet int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search results (via %s):\n", provider)

	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. **%s**\n", i+1, r.Title)
		if snippet := truncateSnippet(r.Snippet, maxSnippet); snippet != "" {
			fmt.Fprintf(&b, "   %s\n", snippet)
		}
		fmt.Fprintf(&b, "   %s\n", r.URL)
	}

	return b.String()
}

// truncateSnippet cuts s to at most max bytes, replacing the tail with
// "..." when it had to cut. Runs on already-trimmed snippet text.
func truncateSnippet(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max - 3
	if cut < 0 {
		cut = 0
	}
	// Avoid splitting a multi-byte rune at the cut point.
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "..."
}

// formatFailure renders an orchestration error as human-readable tool
// error text. Attempted providers and their failure kinds are listed so
// the caller can tell a credential problem from an outage.
func formatFailure(err error) string {
	var allFailed *api.AllProvidersFailedError
	if errors.As(err, &allFailed) {
		var b strings.Builder
		b.WriteString("All search providers failed:\n")
		for _, a := range allFailed.Attempts {
			fmt.Fprintf(&b, "- %s: %s", a.Provider, a.Outcome)
			if a.Err != nil {
				fmt.Fprintf(&b, " (%v)", a.Err)
			}
			b.WriteString("\n")
		}
		return b.String()
	}
	return "Search failed: " + err.Error()
}
