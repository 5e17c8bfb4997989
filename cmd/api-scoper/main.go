package main

import (
	"errors"
	"fmt"
	"os"

	apiscoper "github.com/FlyingPhish/API-Scoper"
	"github.com/FlyingPhish/API-Scoper/cmd/api-scoper/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("api-scoper v%s\n", apiscoper.Version())
	case "help", "-h", "--help":
		printUsage()
	case "scan":
		if err := commands.HandleScan(os.Args[2:]); err != nil {
			// The report already carries the errors block for per-file
			// failures; only unexpected errors need printing here.
			if !errors.Is(err, commands.ErrFilesFailed) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	case "analyze":
		if err := commands.HandleAnalyze(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`api-scoper - API Documentation Scoping Tool

Usage:
  api-scoper <command> [options]

Commands:
  scan        Scan a directory of API documentation files and summarize each one
  analyze     Analyze a single API documentation file
  mcp         Serve the analyzer as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  api-scoper scan -d ./specs
  api-scoper scan -d ./specs --format json -o report.json
  api-scoper analyze openapi.yaml
  api-scoper analyze --format yaml collection.json

Run 'api-scoper <command> --help' for more information on a command.`)
}
