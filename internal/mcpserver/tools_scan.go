package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type scanInput struct {
	Directory string `json:"directory" jsonschema:"Directory containing API documentation files to scan"`
}

type scanFileEntry struct {
	Filename string `json:"filename"`
	analyzeOutput
}

type scanErrorEntry struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type scanOutput struct {
	Directory string           `json:"directory"`
	FileCount int              `json:"file_count"`
	Files     []scanFileEntry  `json:"files,omitempty"`
	Errors    []scanErrorEntry `json:"errors,omitempty"`
}

func handleScan(_ context.Context, _ *mcp.CallToolRequest, input scanInput) (*mcp.CallToolResult, scanOutput, error) {
	s := newScanner()
	batch, err := s.Scan(input.Directory)
	if err != nil {
		return errResult(err), scanOutput{}, nil
	}

	output := scanOutput{
		Directory: input.Directory,
		FileCount: len(batch.Results) + len(batch.Errors),
	}
	for _, name := range batch.Filenames() {
		output.Files = append(output.Files, scanFileEntry{
			Filename:      name,
			analyzeOutput: fileOutput(batch.Results[name]),
		})
	}
	for _, fileErr := range batch.Errors {
		output.Errors = append(output.Errors, scanErrorEntry{
			Filename: fileErr.Filename,
			Error:    sanitizeError(fileErr.Err),
		})
	}
	return nil, output, nil
}
