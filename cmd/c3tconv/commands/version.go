package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/c3tconv"
)

// Version is the tool version, set at build time with
// -ldflags "-X github.com/reoring/c3tconv/cmd/c3tconv/commands.Version=...".
var Version = "dev"

func versionCmd(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(outW, "c3tconv %s (c3t %s)\n", Version, c3tconv.ExpectedVersion)
			return err
		},
	}
}
