package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jirwin42/attendence/internal/schema"
)

func newBootstrapCmd(a *app) *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "bootstrap <template>",
		Short: "Create a table from a built-in template if it does not exist",
		Long:  "Create a table from a built-in template. Templates: " + strings.Join(schema.TemplateNames(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := schema.Template(args[0])
			if err != nil {
				return userError("%s", err)
			}
			if table != "" {
				spec.Name = table
			}
			stmt, err := schema.CreateTableIfNotExists(spec)
			if err != nil {
				return userError("%s", err)
			}
			if err := a.store().Exec(cmd.Context(), spec.Name, stmt); err != nil {
				return sysError("%s", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Table '%s' is ready.\n", spec.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table name (default: the template's)")
	return cmd
}
