package analyzer

import "strings"

// HTTP method distribution keys. MethodUnknown is the catch-all bucket for
// any method string outside the seven standard verbs.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodPatch   = "PATCH"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodUnknown = "UNKNOWN"
)

// methodKeys is the closed set of distribution buckets, in report order.
var methodKeys = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
	MethodUnknown,
}

// MethodKeys returns the fixed set of distribution bucket names in report
// order. The returned slice is a copy and may be modified by the caller.
func MethodKeys() []string {
	keys := make([]string, len(methodKeys))
	copy(keys, methodKeys)
	return keys
}

// Summary contains the structural statistics extracted from one API
// documentation file. It is created by exactly one extractor and should be
// treated as read-only once returned.
//
// The JSON/YAML field names match the report keys the CLI prints, so a
// marshaled Summary is itself the per-file report record.
type Summary struct {
	// TotalEndpoints is the number of requests (Postman) or operations
	// (Swagger/OpenAPI) found in the document
	TotalEndpoints int `json:"Total Requests/Endpoints" yaml:"Total Requests/Endpoints"`
	// MethodDistribution maps each bucket in MethodKeys to its count.
	// Every bucket is present, zero-initialized, so absence is never
	// ambiguous.
	MethodDistribution map[string]int `json:"HTTP Methods Distribution" yaml:"HTTP Methods Distribution"`
	// TotalParameters is the total parameter count across all requests,
	// including query parameters and request-body schema fields
	TotalParameters int `json:"Total Parameters" yaml:"Total Parameters"`
}

// NewSummary returns an empty Summary with every distribution bucket
// pre-seeded to zero.
func NewSummary() *Summary {
	dist := make(map[string]int, len(methodKeys))
	for _, key := range methodKeys {
		dist[key] = 0
	}
	return &Summary{MethodDistribution: dist}
}

// normalizeMethod upper-cases a method string and folds anything outside the
// standard verbs into the MethodUnknown bucket.
func normalizeMethod(method string) string {
	upper := strings.ToUpper(strings.TrimSpace(method))
	switch upper {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		return upper
	default:
		return MethodUnknown
	}
}
