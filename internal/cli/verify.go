package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/sectreg/internal/app"
)

func newVerifyCmd(outW, errW io.Writer, opts *options) *cobra.Command {
	var (
		manifestPath string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the discovered registry against an expected-state manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				ManifestPath: manifestPath,
				Strict:       strict,
				LogFormat:    opts.logFormat,
				LogLevel:     opts.logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			a := app.NewApp(outW, errW, cfg, nil)
			if err := a.Verify(cmd.Context()); err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to a manifest .hcl file or directory.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on discovered entries missing from the manifest.")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
