package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/sectreg/internal/app"
)

func newInspectCmd(outW, errW io.Writer, opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List every module and service declared in this binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				Output:    output,
				LogFormat: opts.logFormat,
				LogLevel:  opts.logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			a := app.NewApp(outW, errW, cfg, nil)
			return a.Inspect(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format. Options: 'text', 'json', or 'yaml'.")
	return cmd
}
