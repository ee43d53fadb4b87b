package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/internal/session"
	"github.com/Jirwin42/attendence/pkg/types"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create [table]",
		Short: "Define columns interactively and create a table",
		Long: `Prompt for columns and create the table. When the table already exists,
choose to abort, overwrite it (drops all rows) or merge the new columns in.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := optionalTableArg(args)
			if err != nil {
				return err
			}
			return a.interactive(cmd, func(s *session.Session) error {
				return ignoreEOF(s.CreateTable(cmd.Context(), name))
			})
		},
	}
}

func newManageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "manage [table]",
		Short: "Add, rename or drop columns, or rename a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := optionalTableArg(args)
			if err != nil {
				return err
			}
			return a.interactive(cmd, func(s *session.Session) error {
				return ignoreEOF(s.ManageTable(cmd.Context(), name))
			})
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <table>",
		Short: "Show the columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := tableArg(args[0])
			if err != nil {
				return err
			}
			cols, err := a.store().Columns(cmd.Context(), name)
			if errors.Is(err, types.ErrTableNotFound) {
				return userError("table %q not found", name)
			}
			if err != nil {
				return sysError("%s", err)
			}
			if a.flags.jsonMode {
				return writeJSON(cmd, cols)
			}
			session.WriteSchema(cmd.OutOrStdout(), cols)
			return nil
		},
	}
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := a.store().Tables(cmd.Context())
			if err != nil {
				return sysError("%s", err)
			}
			if a.flags.jsonMode {
				if tables == nil {
					tables = []string{}
				}
				return writeJSON(cmd, tables)
			}
			out := cmd.OutOrStdout()
			if len(tables) == 0 {
				fmt.Fprintln(out, "No tables found.")
				return nil
			}
			for _, t := range tables {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
}

func optionalTableArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	return tableArg(args[0])
}

func tableArg(name string) (string, error) {
	if _, err := schema.ValidateIdentifier(name); err != nil {
		return "", &exitError{code: exitUserError, err: err}
	}
	return name, nil
}

// ignoreEOF treats the end of scripted or piped input as a normal finish.
func ignoreEOF(err error) error {
	if isEndOfInput(err) {
		return nil
	}
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal output: %s", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
