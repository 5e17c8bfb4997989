package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/FlyingPhish/API-Scoper/scanner"
	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

// ErrFilesFailed reports that a scan recorded per-file errors. The report,
// including its errors block, has already been written when this is
// returned; callers translate it into a non-zero exit status.
var ErrFilesFailed = errors.New("one or more files failed to process")

// scanFlags contains flags for the scan command
type scanFlags struct {
	directory  string
	format     string
	output     string
	noProgress bool
	maxDepth   int
}

func setupScanFlags() (*flag.FlagSet, *scanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &scanFlags{}

	fs.StringVar(&flags.directory, "d", "", "directory containing API documentation files (required)")
	fs.StringVar(&flags.directory, "directory", "", "directory containing API documentation files (required)")
	fs.StringVar(&flags.format, "format", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.noProgress, "no-progress", false, "disable the progress bar")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "maximum Postman folder nesting depth (default 100)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: api-scoper scan [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Scan a directory of API documentation files and summarize each one.\n\n")
		_, _ = fmt.Fprintf(output, "Files ending in .json, .yaml or .yml are classified as Swagger/OpenAPI\n")
		_, _ = fmt.Fprintf(output, "documents or Postman collections and summarized; anything else yields\n")
		_, _ = fmt.Fprintf(output, "an 'unknown type' entry. A malformed file is reported in the errors\n")
		_, _ = fmt.Fprintf(output, "block and never stops the scan.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  api-scoper scan -d ./specs\n")
		_, _ = fmt.Fprintf(output, "  api-scoper scan -d ./specs --format json -o report.json\n")
		_, _ = fmt.Fprintf(output, "  api-scoper scan -d ./specs --no-progress\n")
		_, _ = fmt.Fprintf(output, "\nExit Status:\n")
		_, _ = fmt.Fprintf(output, "  0    Every file processed cleanly\n")
		_, _ = fmt.Fprintf(output, "  1    One or more files failed to decode or extract\n")
	}

	return fs, flags
}

// HandleScan implements the scan command.
func HandleScan(args []string) error {
	fs, flags := setupScanFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.directory == "" {
		fs.Usage()
		return &scoperrors.ConfigError{
			Option:  "directory",
			Message: "directory is required (use -d or --directory)",
		}
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	names, err := scanner.SpecFiles(flags.directory)
	if err != nil {
		return err
	}

	s := scanner.New()
	s.MaxNestingDepth = flags.maxDepth

	// Progress goes to stderr so it never pollutes piped report output.
	if !flags.noProgress && flags.format == FormatText && len(names) > 0 {
		bar := progressbar.NewOptions(len(names),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("[Scanning]"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		)
		s.OnFile = func(string) { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	batch, err := s.Scan(flags.directory)
	if err != nil {
		return err
	}

	var data []byte
	if flags.format == FormatText {
		data = renderScanText(batch)
	} else {
		data, err = MarshalStructured(batch, flags.format)
		if err != nil {
			return err
		}
	}
	if err := WriteReport(data, flags.output); err != nil {
		return err
	}

	if batch.HasErrors() {
		return ErrFilesFailed
	}
	return nil
}

// renderScanText renders the full text report so it can go to stdout or an
// output file alike.
func renderScanText(batch *scanner.BatchResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "API Documentation Scanner\n")
	fmt.Fprintf(&buf, "=========================\n")
	fmt.Fprintf(&buf, "Directory: %s\n", batch.Directory)
	fmt.Fprintf(&buf, "Files processed: %d\n", len(batch.Results)+len(batch.Errors))

	for _, name := range batch.Filenames() {
		PrintFileResult(&buf, name, batch.Results[name])
	}
	PrintBatchErrors(&buf, batch.Errors)

	if batch.HasErrors() {
		fmt.Fprintf(&buf, "\n✗ Scan completed with %d error(s)\n", len(batch.Errors))
	} else {
		fmt.Fprintf(&buf, "\n✓ Scan completed successfully\n")
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}
