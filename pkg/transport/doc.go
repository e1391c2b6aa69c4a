// Package transport exposes the search orchestrator as an MCP tool over
// streamable HTTP and owns the server lifecycle: routing, middleware,
// health and metrics endpoints, and graceful shutdown.
package transport
