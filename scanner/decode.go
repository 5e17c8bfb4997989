package scanner

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

// SourceFormat represents the format of a source documentation file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// sanitizeUTF8 replaces ill-formed UTF-8 byte sequences with U+FFFD so that
// decoding never fails at the byte level. A transform failure falls back to
// the original bytes and lets the decoder report whatever it finds.
func sanitizeUTF8(data []byte) []byte {
	clean, _, err := transform.Bytes(runes.ReplaceIllFormed(), data)
	if err != nil {
		return data
	}
	return clean
}

// decodeDocument decodes file bytes into an untyped document tree. The
// format is taken from the file extension, falling back to content sniffing.
// JSON files take the encoding/json fast path; everything else goes through
// the YAML decoder, which accepts JSON as well.
//
// The returned value is whatever the document's top level is; callers decide
// what a non-mapping top level means.
func decodeDocument(path string, data []byte) (any, SourceFormat, error) {
	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	data = sanitizeUTF8(data)

	var doc any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, format, &scoperrors.DecodeError{
				Path:   path,
				Format: string(format),
				Cause:  err,
			}
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, format, &scoperrors.DecodeError{
				Path:   path,
				Format: string(format),
				Cause:  err,
			}
		}
	}
	return doc, format, nil
}
