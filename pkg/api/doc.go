// Package api defines the shared value types of the websearch-mcp server.
//
// This package provides the data exchanged between the search orchestration
// core and its collaborators: search queries, normalized search results,
// per-provider attempt records, and the structured error taxonomy.
//
// The package has zero external dependencies (Go standard library only) and
// performs no I/O. Every other package in the repository may import it;
// it imports nothing of its own.
//
// Core types:
//   - [SearchQuery]: A validated query with a clamped result count
//   - [SearchResult]: One normalized result (title, URL, snippet)
//   - [Attempt]: The recorded outcome of invoking one provider
//   - [APIError]: Structured error with type, param, and message
package api
