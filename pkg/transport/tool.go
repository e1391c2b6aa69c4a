package transport

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"websearch-mcp/pkg/api"
	"websearch-mcp/pkg/observability"
	"websearch-mcp/pkg/search"
)

// ServerName and ServerVersion identify this MCP server to clients.
const (
	ServerName    = "websearch-mcp"
	ServerVersion = "v1.0.0"
)

// SearchInput is the web_search tool input schema.
type SearchInput struct {
	Query string `json:"query" jsonschema_description:"The search query"`
	Count int    `json:"count,omitempty" jsonschema_description:"Maximum number of results to return (1-10, default 10)"`
}

// ToolHandler binds the orchestrator to the web_search MCP tool.
type ToolHandler struct {
	orchestrator *search.Orchestrator
	maxSnippet   int
}

// NewToolHandler creates the tool handler. maxSnippet bounds snippet
// length in formatted output; zero or negative disables truncation.
func NewToolHandler(orchestrator *search.Orchestrator, maxSnippet int) *ToolHandler {
	return &ToolHandler{orchestrator: orchestrator, maxSnippet: maxSnippet}
}

// NewMCPServer builds the MCP server with the web_search tool registered.
func NewMCPServer(h *ToolHandler) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: ServerName, Version: ServerVersion},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_search",
		Description: "Search the web and return a ranked list of results with titles, snippets, and URLs",
	}, h.WebSearch)

	return server
}

// WebSearch executes one search request. Orchestration errors become tool
// errors (IsError results) rather than protocol errors, so the calling
// model sees readable failure text it can act on.
func (h *ToolHandler) WebSearch(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, struct{}, error) {
	results, attempts, err := h.orchestrator.Execute(ctx, api.SearchQuery{
		Text:  input.Query,
		Count: input.Count,
	})
	if err != nil {
		// Cancellation is the client going away, not a tool failure.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, struct{}{}, err
		}
		observability.ToolExecutionsTotal.WithLabelValues("error").Inc()
		return toolError(formatFailure(err)), struct{}{}, nil
	}

	provider := ""
	if len(attempts) > 0 {
		provider = attempts[len(attempts)-1].Provider
	}

	observability.ToolExecutionsTotal.WithLabelValues("success").Inc()

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: FormatResults(provider, results, h.maxSnippet)},
		},
	}, struct{}{}, nil
}

func toolError(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
