// Package session runs the interactive menus of dbtables: the main menu,
// the create-table flow with its conflict handling, and the manage-table
// menu.
//
// Input mistakes are re-prompted and store failures are printed with the
// store's own message; neither ends the session. Only an explicit exit or
// the end of input does.
package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Jirwin42/attendence/internal/console"
	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/internal/sqlite"
	"github.com/Jirwin42/attendence/pkg/types"
)

// Store is the part of the SQLite store a session uses.
type Store interface {
	Path() string
	Size() int64
	LookupTable(ctx context.Context, name string) (string, bool, error)
	Tables(ctx context.Context) ([]string, error)
	Columns(ctx context.Context, table string) ([]types.ColumnInfo, error)
	Exec(ctx context.Context, table string, stmt schema.Statement) error
	ExecAll(ctx context.Context, table string, stmts []schema.Statement, independent bool) ([]sqlite.Result, error)
	ReadRows(ctx context.Context, table string) (sqlite.Rows, error)
}

// Session holds what the menus share.
type Session struct {
	con   *console.Console
	store Store
	cfg   types.Config
	now   func() time.Time
}

// New returns a Session prompting on con and issuing statements to store.
func New(con *console.Console, store Store, cfg types.Config) *Session {
	return &Session{con: con, store: store, cfg: cfg, now: time.Now}
}

// Run shows the main menu until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.banner()
		choice, err := s.con.Line("Enter your choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.CreateTable(ctx, "")
		case "2":
			err = s.ManageTable(ctx, "")
		case "3":
			err = s.ListTables(ctx)
		case "4":
			err = s.browsePrompt(ctx)
		case "5":
			s.con.Println("Exiting program.")
			return nil
		default:
			s.con.Println("Invalid choice, please try again.")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish turns the end of input into a clean exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, console.ErrInterrupted) {
		s.con.Println("\nExiting program.")
		return nil
	}
	return err
}

func (s *Session) banner() {
	s.con.Println("\n===== SQLite Database Manager =====")
	s.con.Printf("Database: %s (%s)\n", s.store.Path(), humanize.Bytes(uint64(s.store.Size())))
	s.con.Println("Today's Date:", s.now().Format("Monday, January 2, 2006"))
	s.con.Println("---------------------------------")
	s.con.Println("1. Create a new table")
	s.con.Println("2. View/Edit an existing table")
	s.con.Println("3. List tables")
	s.con.Println("4. Browse table rows")
	s.con.Println("5. Exit")
}

// ListTables prints the names of the tables in the database.
func (s *Session) ListTables(ctx context.Context) error {
	tables, err := s.store.Tables(ctx)
	if err != nil {
		s.storeError(err)
		return nil
	}
	if len(tables) == 0 {
		s.con.Println("No tables found.")
		return nil
	}
	s.con.Printf("\nTables in %s:\n", s.store.Path())
	for _, t := range tables {
		s.con.Printf("  - %s\n", t)
	}
	return nil
}

// askName prompts for a required name when name is empty. ok is false when
// the user left it blank; the message has already been shown.
func (s *Session) askName(name, prompt, blankMsg string) (string, bool, error) {
	if name != "" {
		if _, err := schema.ValidateIdentifier(name); err != nil {
			s.con.Printf("Error: '%s' is not a valid identifier.\n", name)
			return "", false, nil
		}
		return name, true, nil
	}
	name, err := s.con.RequireName(prompt)
	if errors.Is(err, console.ErrEmptyName) {
		s.con.Println(blankMsg)
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (s *Session) storeError(err error) {
	s.con.Printf("\nAn SQLite error occurred: %v\n", err)
}
