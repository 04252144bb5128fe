package commands

import (
	"io"

	"github.com/spf13/cobra"
)

func checkCmd(o *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check -i <in.c3t>",
		Short: "Validate a c3t document without writing anything",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd, outW, errW)
			if err != nil {
				return err
			}
			_, err = a.Check(cmd.Context())
			return err
		},
	}
}
