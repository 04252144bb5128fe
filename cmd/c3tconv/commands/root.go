package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/c3tconv/internal/app"
	"github.com/reoring/c3tconv/internal/config"
)

type options struct {
	cli config.CLIArgs
}

// Execute runs the CLI with the process arguments and standard streams.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "c3tconv -i <in.c3t> -o <out[.c3b]>",
		Short:         "Convert c3t animation documents to c3b",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd, outW, errW)
			if err != nil {
				return err
			}
			return a.Convert(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.cli.Input, "input", "i", "", "source .c3t document")
	pf.StringVar(&o.cli.ConfigPath, "config", "", "path to a c3tconv.yaml config file")
	pf.StringVar(&o.cli.LogLevel, "log-level", "", "log level: debug, info, warn or error (default info)")
	pf.StringVar(&o.cli.LogFormat, "log-format", "", "log format: text or json (default text)")

	root.Flags().StringVarP(&o.cli.Output, "output", "o", "", "destination .c3b path")
	root.Flags().BoolVar(&o.cli.SeparateAnim, "separate-anim", false, "write one artifact per animation")

	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &app.ExitError{Code: app.ExitUsage, Err: err}
	})
	root.AddCommand(checkCmd(o, outW, errW), versionCmd(outW))
	return root
}

// newApp merges flags with the config file. Only flags the user actually set
// override file values.
func (o *options) newApp(cmd *cobra.Command, outW, errW io.Writer) (*app.App, error) {
	cli := o.cli
	if f := cmd.Flags().Lookup("separate-anim"); f != nil {
		cli.SeparateAnimSet = f.Changed
	}
	eff, err := config.Load(cli)
	if err != nil {
		return nil, err
	}
	return app.New(outW, errW, eff), nil
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &app.ExitError{Code: app.ExitUsage, Err: err}
		}
		return nil
	}
}
