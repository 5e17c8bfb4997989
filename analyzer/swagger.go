package analyzer

import "strings"

// AnalyzeSwagger builds a Summary from a parsed Swagger/OpenAPI document by
// walking its "paths" map. A missing or non-mapping "paths" value yields an
// empty Summary; malformed inner shapes (non-mapping path items, non-mapping
// operations) are skipped silently.
//
// Each (path, method) pair whose operation value is a mapping counts as one
// endpoint. Method names outside the standard verbs land in the
// MethodUnknown bucket; path-item metadata keys (parameters, servers,
// summary, description, $ref, x-* extensions) are never interpreted as
// methods.
//
// Parameters accumulate from each operation's "parameters" sequence plus the
// field count of its request-body schemas (see countBodyParameters).
func (a *Analyzer) AnalyzeSwagger(doc map[string]any) *Summary {
	summary := NewSummary()

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		a.log().Debug("document has no paths mapping")
		return summary
	}

	for path, info := range paths {
		item, ok := info.(map[string]any)
		if !ok {
			a.log().Debug("skipping non-mapping path item", "path", path)
			continue
		}
		for method, op := range item {
			if isPathItemMetadata(method) {
				continue
			}
			operation, ok := op.(map[string]any)
			if !ok {
				continue
			}
			summary.TotalEndpoints++
			summary.MethodDistribution[normalizeMethod(method)]++

			if params, ok := operation["parameters"].([]any); ok {
				summary.TotalParameters += len(params)
			}
			summary.TotalParameters += countBodyParameters(operation["requestBody"])
		}
	}

	a.log().Debug("swagger extraction complete",
		"endpoints", summary.TotalEndpoints,
		"parameters", summary.TotalParameters)
	return summary
}

// isPathItemMetadata reports whether a path-item key is OpenAPI metadata
// rather than an HTTP method entry.
func isPathItemMetadata(key string) bool {
	switch key {
	case "parameters", "servers", "summary", "description", "$ref":
		return true
	}
	return strings.HasPrefix(key, "x-")
}
