// Package analyzer classifies parsed API documentation and extracts
// structural summary statistics from it.
//
// The package operates on untyped document trees (map[string]any and []any
// values as produced by encoding/json or yaml decoding) and never validates
// them: every shape expectation is a conditional guard that degrades to a
// zero contribution when the tree deviates from the expected layout.
//
// Two document families are understood:
//
//   - Swagger/OpenAPI documents, summarized by walking the paths map
//   - Postman collections, summarized by flattening the nested item tree
//
// Classification between them is performed by [Classify]; [Analyzer.Analyze]
// combines classification and extraction into a single dispatch.
package analyzer
