package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/FlyingPhish/API-Scoper/scanner"
)

type analyzeInput struct {
	Path string `json:"path" jsonschema:"Path to the API documentation file (.json, .yaml or .yml)"`
}

type analyzeOutput struct {
	Type       string         `json:"type"`
	Format     string         `json:"format"`
	Endpoints  int            `json:"endpoints"`
	Methods    map[string]int `json:"methods,omitempty"`
	Parameters int            `json:"parameters"`
	Message    string         `json:"message,omitempty"`
}

func handleAnalyze(_ context.Context, _ *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, analyzeOutput, error) {
	s := newScanner()
	result, err := s.ScanFile(input.Path)
	if err != nil {
		return errResult(err), analyzeOutput{}, nil
	}
	return nil, fileOutput(result), nil
}

// newScanner builds a scanner honoring the server's env-configured limits.
func newScanner() *scanner.Scanner {
	s := scanner.New()
	s.MaxNestingDepth = cfg.MaxNestingDepth
	s.MaxFileSize = cfg.MaxFileSize
	return s
}

// fileOutput converts a scanner FileResult into the shared tool output shape.
func fileOutput(result *scanner.FileResult) analyzeOutput {
	out := analyzeOutput{
		Type:    string(result.Type),
		Format:  string(result.Format),
		Message: result.Message,
	}
	if result.Summary != nil {
		out.Endpoints = result.Summary.TotalEndpoints
		out.Parameters = result.Summary.TotalParameters
		out.Methods = nonZeroMethods(result.Summary.MethodDistribution)
	}
	return out
}

// nonZeroMethods drops zero buckets so tool output stays compact.
func nonZeroMethods(dist map[string]int) map[string]int {
	methods := make(map[string]int, len(dist))
	for method, count := range dist {
		if count > 0 {
			methods[method] = count
		}
	}
	if len(methods) == 0 {
		return nil
	}
	return methods
}
