package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/FlyingPhish/API-Scoper/internal/mcpserver"
)

func setupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: api-scoper mcp\n\n")
		_, _ = fmt.Fprintf(output, "Serve the analyzer as MCP tools over stdio.\n\n")
		_, _ = fmt.Fprintf(output, "Tools: analyze_spec, scan_directory.\n")
		_, _ = fmt.Fprintf(output, "Configure limits via APISCOPER_MAX_NESTING_DEPTH and APISCOPER_MAX_FILE_SIZE.\n")
	}

	return fs
}

// HandleMCP implements the mcp command.
func HandleMCP(args []string) error {
	fs := setupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return mcpserver.Run(ctx)
}
