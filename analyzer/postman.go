package analyzer

import (
	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

// AnalyzePostman builds a Summary from the value of a Postman collection's
// top-level "item" key. The item tree is flattened depth-first, so requests
// inside arbitrarily nested folders are each counted exactly once.
//
// Per flattened request:
//   - a string "method" increments its distribution bucket (non-standard
//     verbs land in MethodUnknown)
//   - a "url" mapping with a "query" sequence adds that sequence's length
//     to the parameter total, whether or not a method is present
//
// Requests that are not mappings still count toward the endpoint total.
// The only failure mode is exceeding MaxNestingDepth.
func (a *Analyzer) AnalyzePostman(items any) (*Summary, error) {
	requests, err := a.flattenItems(items, 0)
	if err != nil {
		return nil, err
	}

	summary := NewSummary()
	summary.TotalEndpoints = len(requests)

	for _, request := range requests {
		m, ok := request.(map[string]any)
		if !ok {
			continue
		}
		if method, ok := m["method"].(string); ok {
			summary.MethodDistribution[normalizeMethod(method)]++
		}
		if url, ok := m["url"].(map[string]any); ok {
			if query, ok := url["query"].([]any); ok {
				summary.TotalParameters += len(query)
			}
		}
	}

	a.log().Debug("postman extraction complete",
		"requests", summary.TotalEndpoints,
		"parameters", summary.TotalParameters)
	return summary, nil
}

// flattenItems recursively collects the "request" values from a Postman item
// sequence in depth-first pre-order. Folders (items carrying a nested "item"
// key) are descended into; an item may contribute both its own request and
// nested requests. Non-sequence input yields no requests.
func (a *Analyzer) flattenItems(items any, depth int) ([]any, error) {
	if depth > a.maxDepth() {
		return nil, &scoperrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(a.maxDepth()),
			Actual:       int64(depth),
			Message:      "postman item tree nested too deeply",
		}
	}

	list, ok := items.([]any)
	if !ok {
		return nil, nil
	}

	var requests []any
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if request, ok := m["request"]; ok {
			requests = append(requests, request)
		}
		if nested, ok := m["item"]; ok {
			sub, err := a.flattenItems(nested, depth+1)
			if err != nil {
				return nil, err
			}
			requests = append(requests, sub...)
		}
	}
	return requests, nil
}
