package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/Jirwin42/attendence"

// Version is the dbtables release, overridable at link time with
// -ldflags "-X github.com/Jirwin42/attendence/internal/cli.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dbtables version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dbtables v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
