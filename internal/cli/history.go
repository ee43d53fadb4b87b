package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jirwin42/attendence/internal/journal"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show statements submitted to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j := journal.ForDatabase(a.cfg.Database)
			entries, err := j.Last(limit)
			if err != nil {
				return sysError("read journal: %s", err)
			}
			if a.flags.jsonMode {
				if entries == nil {
					entries = []journal.Entry{}
				}
				return writeJSON(cmd, entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No statements recorded.")
				return nil
			}
			for _, e := range entries {
				status := "ok"
				if !e.OK() {
					status = "error: " + e.Error
				}
				fmt.Fprintf(out, "%s  %s  %s\n", e.At.Local().Format(time.DateTime), e.SQL, status)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the newest n statements (0 for all)")
	return cmd
}
