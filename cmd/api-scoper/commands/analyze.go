package commands

import (
	"bytes"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/FlyingPhish/API-Scoper/scanner"
	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

// analyzeFlags contains flags for the analyze command
type analyzeFlags struct {
	format   string
	output   string
	maxDepth int
}

func setupAnalyzeFlags() (*flag.FlagSet, *analyzeFlags) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	flags := &analyzeFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "maximum Postman folder nesting depth (default 100)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: api-scoper analyze [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Analyze a single API documentation file and print its summary.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  api-scoper analyze openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  api-scoper analyze --format json collection.json\n")
	}

	return fs, flags
}

// HandleAnalyze implements the analyze command.
func HandleAnalyze(args []string) error {
	fs, flags := setupAnalyzeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return &scoperrors.ConfigError{
			Option:  "file",
			Message: "analyze command requires exactly one file path",
		}
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	s := scanner.New()
	s.MaxNestingDepth = flags.maxDepth

	result, err := s.ScanFile(specPath)
	if err != nil {
		return fmt.Errorf("analyzing file: %w", err)
	}

	var data []byte
	if flags.format == FormatText {
		var buf bytes.Buffer
		PrintFileResult(&buf, filepath.Base(specPath), result)
		data = bytes.TrimRight(buf.Bytes(), "\n")
	} else {
		data, err = MarshalStructured(result, flags.format)
		if err != nil {
			return err
		}
	}
	return WriteReport(data, flags.output)
}
