// Package commands provides CLI command handlers for api-scoper.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/FlyingPhish/API-Scoper/analyzer"
	"github.com/FlyingPhish/API-Scoper/internal/fileutil"
	"github.com/FlyingPhish/API-Scoper/scanner"
	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &scoperrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
		}
	}
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// WriteReport writes report bytes to the given path with restrictive
// permissions, or to stdout when path is empty.
func WriteReport(data []byte, path string) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Output written to: %s\n", path)
	return nil
}

// PrintFileResult prints the per-file summary block in text form.
func PrintFileResult(w io.Writer, name string, result *scanner.FileResult) {
	_, _ = fmt.Fprintf(w, "\nProcessing results for: %s\n", name)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 30))
	if result.Summary == nil {
		_, _ = fmt.Fprintln(w, result.Message)
		_, _ = fmt.Fprintln(w, strings.Repeat("-", 30))
		return
	}
	_, _ = fmt.Fprintf(w, "Total Requests/Endpoints: %d\n", result.Summary.TotalEndpoints)
	_, _ = fmt.Fprintf(w, "HTTP Methods Distribution: %s\n", formatDistribution(result.Summary.MethodDistribution))
	_, _ = fmt.Fprintf(w, "Total Parameters: %d\n", result.Summary.TotalParameters)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 30))
}

// formatDistribution renders the non-zero buckets in report order.
func formatDistribution(dist map[string]int) string {
	var parts []string
	for _, method := range analyzer.MethodKeys() {
		if count := dist[method]; count > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", method, count))
		}
	}
	// Buckets outside the fixed set should not exist, but render them
	// anyway if they do.
	var extras []string
	for method, count := range dist {
		if count > 0 && !slices.Contains(analyzer.MethodKeys(), method) {
			extras = append(extras, fmt.Sprintf("%s: %d", method, count))
		}
	}
	slices.Sort(extras)
	parts = append(parts, extras...)
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// PrintBatchErrors prints the trailing errors block, if any.
func PrintBatchErrors(w io.Writer, errs []scanner.FileError) {
	if len(errs) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "\nErrors encountered for the following files:")
	for _, fileErr := range errs {
		_, _ = fmt.Fprintf(w, "  %s - Error: %s\n", fileErr.Filename, fileErr.Message)
	}
}
