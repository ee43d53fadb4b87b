// Package cli implements the dbtables command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jirwin42/attendence/internal/console"
	"github.com/Jirwin42/attendence/internal/journal"
	"github.com/Jirwin42/attendence/internal/paths"
	"github.com/Jirwin42/attendence/internal/session"
	"github.com/Jirwin42/attendence/internal/sqlite"
	"github.com/Jirwin42/attendence/pkg/types"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the exit code a failed command should end with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	database  string
	jsonMode  bool
}

// app is the state the subcommands share once flags and config are loaded.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
}

// NewRootCmd creates the top-level "dbtables" command with global flags
// and all subcommands registered. Run without a subcommand it opens the
// interactive main menu.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dbtables",
		Short: "Build and edit SQLite table schemas from terminal prompts",
		Long: `dbtables creates SQLite tables from interactively defined columns and edits
existing ones: add, rename and drop columns, rename tables, view schemas and
browse rows.`,
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interactive(cmd, func(s *session.Session) error {
				return s.Run(cmd.Context())
			})
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.database, "db", "", "database file (default: $(CWD)/"+types.DefaultDatabase+")")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCreateCmd(a))
	root.AddCommand(newManageCmd(a))
	root.AddCommand(newSchemaCmd(a))
	root.AddCommand(newTablesCmd(a))
	root.AddCommand(newBrowseCmd(a))
	root.AddCommand(newBootstrapCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := exitUserError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}

// load resolves the config directory, reads config.yaml and settles the
// database path.
func (a *app) load(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %s", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError("load config: %s", err)
	}
	dbPath, err := paths.ResolveDatabase(a.flags.database, v.GetString(cfgKeyDatabase))
	if err != nil {
		return sysError("resolve database: %s", err)
	}

	a.configDir = configDir
	a.cfg = types.Config{
		Database:       dbPath,
		ReviewCreate:   v.GetBool(cfgKeyReviewCreate),
		JournalEnabled: v.GetBool(cfgKeyJournal),
	}
	if err := a.cfg.Validate(); err != nil {
		return userError("config: %s", err)
	}
	return nil
}

// store returns a Store for the configured database, journaling statements
// when the journal is enabled.
func (a *app) store() *sqlite.Store {
	s := sqlite.NewStore(a.cfg.Database)
	if a.cfg.JournalEnabled {
		s.WithRecorder(journal.ForDatabase(a.cfg.Database))
	}
	return s
}

// interactive builds a session on the command's input and output and runs fn.
func (a *app) interactive(cmd *cobra.Command, fn func(s *session.Session) error) error {
	reader, err := a.lineReader(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return sysError("open terminal: %s", err)
	}
	defer reader.Close()

	con := console.New(reader, cmd.OutOrStdout())
	return fn(session.New(con, a.store(), a.cfg))
}

// isEndOfInput reports whether err means input was closed or interrupted.
func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, console.ErrInterrupted)
}

func (a *app) lineReader(in io.Reader, out io.Writer) (console.LineReader, error) {
	if f, ok := in.(*os.File); ok {
		return console.NewTerminalReader(f, out, paths.HistoryFile(a.configDir))
	}
	return console.NewPlainReader(in, out), nil
}
