// Package apiscoper provides tools for classifying and summarizing API
// documentation files (Swagger/OpenAPI documents and Postman collections).
//
// API-Scoper answers the scoping question "how big is this API?": given a
// directory of specification files it reports, per file, the number of
// endpoints, the distribution of HTTP methods, and the total number of
// parameters. The statistics are best-effort and structural; the tool never
// validates documents against their specification.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - analyzer: classify a parsed document and extract its summary statistics
//   - scanner: scan a directory of spec files and aggregate per-file results
//   - scoperrors: structured error types for programmatic error handling
//
// # Quick Start
//
// Scan a directory of specification files:
//
//	import "github.com/FlyingPhish/API-Scoper/scanner"
//
//	s := scanner.New()
//	batch, err := s.Scan("./specs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for name, res := range batch.Results {
//		if res.Summary != nil {
//			fmt.Printf("%s: %d endpoints\n", name, res.Summary.TotalEndpoints)
//		}
//	}
//
// Analyze a single already-decoded document:
//
//	import "github.com/FlyingPhish/API-Scoper/analyzer"
//
//	a := analyzer.New()
//	docType, summary, err := a.Analyze(doc)
//
// # Supported Formats
//
// Input files may be JSON or YAML and are recognized by shape, not by
// extension:
//
//   - Swagger/OpenAPI: a top-level "swagger" or "openapi" key
//   - Postman collection: top-level "info" and "item" keys
//
// A document matching neither heuristic is classified as unknown, which is a
// distinct outcome rather than an error.
//
// # Best-Effort Semantics
//
// The analyzer operates on untyped trees (map[string]any / []any) exactly as
// decoded from JSON or YAML. Every shape expectation is a conditional guard:
// a missing or wrongly-typed key contributes zero to the statistics instead
// of failing the file. The only hard failures inside the core are resource
// limits (nesting depth), which protect against adversarial inputs.
//
// # Security Considerations
//
//   - Resource limits: nesting depth (default: 100) and per-file size
//     (default: 10 MiB) prevent resource exhaustion on hostile inputs
//   - File permissions: report files are written with restrictive
//     permissions (0600)
//   - Permissive decoding: invalid UTF-8 byte sequences are replaced rather
//     than aborting the scan
//
// # Command-Line Interface
//
// In addition to the library packages, api-scoper provides a CLI:
//
//	# Scan a directory of spec files
//	api-scoper scan -d ./specs
//
//	# Analyze a single file
//	api-scoper analyze openapi.yaml
//
//	# Serve the analyzer over MCP (stdio)
//	api-scoper mcp
//
// Install the CLI:
//
//	go install github.com/FlyingPhish/API-Scoper/cmd/api-scoper@latest
package apiscoper
