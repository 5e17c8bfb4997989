package analyzer

// DefaultMaxNestingDepth is the default limit on Postman folder nesting
// followed while flattening collection items.
const DefaultMaxNestingDepth = 100

// Analyzer extracts summary statistics from parsed API documentation.
type Analyzer struct {
	// MaxNestingDepth is the maximum folder nesting depth followed when
	// flattening Postman collection items. Exceeding it fails the document
	// with a ResourceLimitError rather than risking stack exhaustion.
	// Default: 100
	MaxNestingDepth int
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Analyzer instance with default settings
func New() *Analyzer {
	return &Analyzer{
		MaxNestingDepth: DefaultMaxNestingDepth,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (a *Analyzer) log() Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return NopLogger{}
}

// maxDepth returns the effective nesting depth limit.
func (a *Analyzer) maxDepth() int {
	if a.MaxNestingDepth > 0 {
		return a.MaxNestingDepth
	}
	return DefaultMaxNestingDepth
}

// Analyze classifies a parsed document and dispatches to the matching
// extractor. For DocTypeUnknown documents the returned Summary is nil and
// the error is nil: an unrecognized document is a classification outcome,
// not a failure.
func (a *Analyzer) Analyze(doc any) (DocumentType, *Summary, error) {
	docType := Classify(doc)
	switch docType {
	case DocTypeSwagger:
		m, _ := doc.(map[string]any)
		return docType, a.AnalyzeSwagger(m), nil
	case DocTypePostman:
		m, _ := doc.(map[string]any)
		summary, err := a.AnalyzePostman(m["item"])
		if err != nil {
			return docType, nil, err
		}
		return docType, summary, nil
	default:
		return DocTypeUnknown, nil, nil
	}
}
