package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options collects the flag values shared across subcommands.
type options struct {
	logLevel  string
	logFormat string
}

// validate normalizes and checks the shared flag values.
func (o *options) validate() error {
	o.logFormat = strings.ToLower(o.logFormat)
	if o.logFormat != "text" && o.logFormat != "json" {
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	o.logLevel = strings.ToLower(o.logLevel)
	switch o.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return nil
}

// newRootCmd builds the command tree. Results go to outW, logs to errW.
func newRootCmd(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sectreg",
		Short: "Inspect and verify the module/service registry of this binary",
		Long: `sectreg enumerates the registration records deposited into the image's
module and service regions by declaration sites anywhere in the program,
resolves each record to its Go type, and reports the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(newInspectCmd(outW, errW, opts))
	root.AddCommand(newVerifyCmd(outW, errW, opts))

	return root
}

// Run parses args, executes the matching command, and maps failures to exit
// codes via ExitError.
func Run(outW, errW io.Writer, args []string) error {
	root := newRootCmd(outW, errW)
	root.SetArgs(args)
	return root.Execute()
}
