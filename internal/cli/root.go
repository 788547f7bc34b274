package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ExecuteContext runs the root command against the process stdout.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd(os.Stdout).ExecuteContext(ctx)
}

// NewRootCmd builds the apicall command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "apicall",
		Short: "Issue one HTTP request and print status, headers and body",
		Long: `apicall performs a single GET or POST request and prints the final status
code, every header segment received (interim 1xx responses included) and the body.

Payload fields given with --data are sent as a form-encoded POST body, or appended
to the URL as a query string when --query is set. Redirects are not followed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, out)
		},
	}

	root.SilenceUsage = true
	root.SilenceErrors = true

	flags := root.Flags()
	flags.StringP("url", "u", "", "Target URL (http or https)")
	flags.StringArrayP("data", "d", nil, "Payload field key=value (repeatable, order kept)")
	flags.BoolP("query", "q", false, "Send payload as a GET query string instead of a POST body")
	flags.IntP("timeout", "t", 0, "Timeout in seconds (0 waits indefinitely)")
	flags.String("user-agent", "", "User-Agent header to send")
	flags.StringP("file", "f", "", "Request definition file (YAML or JSON)")
	flags.StringP("output", "o", "json", "Output format (json, yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newVersionCmd(out))
	return root
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "apicall %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
