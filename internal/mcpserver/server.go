// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes api-scoper capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apiscoper "github.com/FlyingPhish/API-Scoper"
)

const serverInstructions = `api-scoper MCP server — classifies and summarizes API documentation files (Swagger/OpenAPI and Postman collections).

Tools return best-effort structural statistics: endpoint counts, HTTP method distribution, and parameter totals. Documents are never validated; malformed shapes contribute zero instead of failing.

Configuration via environment variables set in your MCP client config:
- APISCOPER_MAX_NESTING_DEPTH (default: 100) — Postman folder nesting limit
- APISCOPER_MAX_FILE_SIZE (default: 10485760) — per-file byte limit`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "api-scoper", Version: apiscoper.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_spec",
		Description: "Analyze a single API documentation file (Swagger/OpenAPI or Postman collection). Returns the detected document type, endpoint count, HTTP method distribution, and total parameter count. Unknown document types are reported as such, not as errors.",
	}, handleAnalyze)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_directory",
		Description: "Scan a directory for API documentation files (.json, .yaml, .yml) and summarize each one. Returns per-file statistics plus a list of files that failed to decode or extract. One malformed file never aborts the scan.",
	}, handleScan)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
