package scanner

import (
	"slices"

	"github.com/FlyingPhish/API-Scoper/analyzer"
)

// UnknownTypeMessage is the sentinel report line for files that decoded
// cleanly but matched neither the Swagger/OpenAPI nor the Postman heuristic.
const UnknownTypeMessage = "Unknown API documentation type."

// FileResult holds the outcome for one successfully processed file.
type FileResult struct {
	// Type is the classified document type
	Type analyzer.DocumentType `json:"type" yaml:"type"`
	// Format is the detected source format (json or yaml)
	Format SourceFormat `json:"format" yaml:"format"`
	// Summary holds the extracted statistics.
	// It is nil when Type is DocTypeUnknown.
	Summary *analyzer.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
	// Message carries the sentinel text for unknown-type files
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// FileError records a file that failed to decode or extract.
type FileError struct {
	// Filename is the directory entry name, not the full path
	Filename string `json:"filename" yaml:"filename"`
	// Message is the human-readable failure description
	Message string `json:"error" yaml:"error"`
	// Err is the underlying error; not marshaled
	Err error `json:"-" yaml:"-"`
}

// Error returns a human-readable error message.
func (e FileError) Error() string {
	return e.Filename + ": " + e.Message
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e FileError) Unwrap() error {
	return e.Err
}

// BatchResult aggregates one directory scan. It is owned by the Scan call
// that produced it and is never shared across scans.
type BatchResult struct {
	// Directory is the scanned directory path
	Directory string `json:"directory" yaml:"directory"`
	// Results maps filename to its outcome for every file that processed
	// without error, including unknown-type files
	Results map[string]*FileResult `json:"results" yaml:"results"`
	// Errors lists files that failed to decode or extract, in encounter
	// order. Failed files never appear in Results.
	Errors []FileError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HasErrors reports whether any file in the batch failed.
func (b *BatchResult) HasErrors() bool {
	return len(b.Errors) > 0
}

// Filenames returns the sorted keys of Results.
func (b *BatchResult) Filenames() []string {
	names := make([]string, 0, len(b.Results))
	for name := range b.Results {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
