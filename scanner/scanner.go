package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FlyingPhish/API-Scoper/analyzer"
	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

// DefaultMaxFileSize is the default per-file size limit in bytes (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Scanner batch-processes API documentation files in a directory.
type Scanner struct {
	// MaxFileSize is the maximum file size in bytes read per file.
	// Larger files become per-file error entries. Default: 10MB
	MaxFileSize int64
	// MaxNestingDepth is forwarded to the analyzer's Postman item
	// flattening. Default: analyzer.DefaultMaxNestingDepth
	MaxNestingDepth int
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger analyzer.Logger
	// OnFile, if set, is invoked with each filename just before that file
	// is processed. Used by callers to drive progress reporting.
	OnFile func(name string)
}

// New creates a new Scanner instance with default settings
func New() *Scanner {
	return &Scanner{
		MaxFileSize: DefaultMaxFileSize,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (s *Scanner) log() analyzer.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return analyzer.NopLogger{}
}

// maxFileSize returns the effective per-file size limit.
func (s *Scanner) maxFileSize() int64 {
	if s.MaxFileSize > 0 {
		return s.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SpecFiles returns the names of regular directory entries carrying a spec
// extension (.json, .yaml or .yml), in the order os.ReadDir yields them
// (sorted by filename on all supported platforms).
func SpecFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanner: failed to read directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if detectFormatFromPath(entry.Name()) != SourceFormatUnknown {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Scan processes every spec file in dir and returns the aggregated batch.
// A failure to enumerate the directory is the only fatal error; all per-file
// failures are collected into the batch error list and processing continues
// with the next file.
func (s *Scanner) Scan(dir string) (*BatchResult, error) {
	names, err := SpecFiles(dir)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{
		Directory: dir,
		Results:   make(map[string]*FileResult, len(names)),
	}
	a := &analyzer.Analyzer{
		MaxNestingDepth: s.MaxNestingDepth,
		Logger:          s.Logger,
	}

	for _, name := range names {
		if s.OnFile != nil {
			s.OnFile(name)
		}
		result, err := s.scanFile(a, dir, name)
		if err != nil {
			s.log().Warn("file failed", "file", name, "error", err)
			batch.Errors = append(batch.Errors, FileError{
				Filename: name,
				Message:  err.Error(),
				Err:      err,
			})
			continue
		}
		batch.Results[name] = result
	}

	s.log().Info("scan complete",
		"dir", dir,
		"files", len(names),
		"errors", len(batch.Errors))
	return batch, nil
}

// ScanFile processes a single documentation file and returns its outcome.
func (s *Scanner) ScanFile(path string) (*FileResult, error) {
	a := &analyzer.Analyzer{
		MaxNestingDepth: s.MaxNestingDepth,
		Logger:          s.Logger,
	}
	return s.scanFile(a, filepath.Dir(path), filepath.Base(path))
}

func (s *Scanner) scanFile(a *analyzer.Analyzer, dir, name string) (*FileResult, error) {
	path := filepath.Join(dir, name)

	data, err := s.readFile(path)
	if err != nil {
		return nil, err
	}

	doc, format, err := decodeDocument(path, data)
	if err != nil {
		return nil, err
	}

	docType, summary, err := a.Analyze(doc)
	if err != nil {
		return nil, err
	}

	result := &FileResult{
		Type:    docType,
		Format:  format,
		Summary: summary,
	}
	if docType == analyzer.DocTypeUnknown {
		result.Message = UnknownTypeMessage
	}

	s.log().Debug("file analyzed", "file", name, "type", docType, "format", format)
	return result, nil
}

// readFile reads a file's bytes, enforcing the per-file size limit before
// the read so oversized files never land in memory.
func (s *Scanner) readFile(path string) ([]byte, error) {
	limit := s.maxFileSize()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scanner: failed to stat file: %w", err)
	}
	if info.Size() > limit {
		return nil, &scoperrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       info.Size(),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scanner: failed to read file: %w", err)
	}
	return data, nil
}
