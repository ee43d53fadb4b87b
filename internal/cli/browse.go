package cli

import (
	"github.com/spf13/cobra"

	"github.com/Jirwin42/attendence/internal/session"
)

func newBrowseCmd(a *app) *cobra.Command {
	var (
		sortColumn string
		desc       bool
	)
	cmd := &cobra.Command{
		Use:   "browse <table>",
		Short: "Print every row of a table",
		Long:  "Print every row of a table with a record count, optionally sorted by one column.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := tableArg(args[0])
			if err != nil {
				return err
			}
			return a.interactive(cmd, func(s *session.Session) error {
				return s.Browse(cmd.Context(), name, sortColumn, desc)
			})
		},
	}
	cmd.Flags().StringVar(&sortColumn, "sort", "", "column to sort by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return cmd
}
