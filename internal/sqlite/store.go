// Package sqlite implements the store that dbtables issues its statements
// against: a single local SQLite database file opened by path.
//
// Every operation opens its own connection, runs one or a few statements,
// and closes it before returning, so nothing is held open across prompts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/pkg/types"
)

// Recorder receives every statement submitted to the store with its outcome.
type Recorder interface {
	Record(table, sql string, execErr error) error
}

// Result is the outcome of one statement in a batch.
type Result struct {
	Statement schema.Statement
	Err       error
}

// Store issues statements against the database file at Path.
type Store struct {
	path     string
	recorder Recorder
}

// NewStore returns a Store for the database file at path. The file is
// created on first use if it does not exist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// WithRecorder makes the store report every executed statement to r.
func (s *Store) WithRecorder(r Recorder) *Store {
	s.recorder = r
	return s
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Size returns the database file size in bytes, or 0 when it does not exist.
func (s *Store) Size() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// withDB opens a connection, runs fn, and closes the connection.
func (s *Store) withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	if strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("sqlite: %w", types.ErrDatabaseEmpty)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("sqlite: open: %w", err)
	}
	defer db.Close()

	// One connection keeps a batch on the same session.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return fn(db)
}

// TableExists reports whether a table named name exists, ignoring case as
// SQLite does.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	_, ok, err := s.LookupTable(ctx, name)
	return ok, err
}

// LookupTable finds the table SQLite would resolve name to and returns its
// name as stored, which may differ from name in case.
func (s *Store) LookupTable(ctx context.Context, name string) (string, bool, error) {
	var stored string
	err := s.withDB(ctx, func(db *sql.DB) error {
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=? COLLATE NOCASE", name).Scan(&stored)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sqlite: table lookup: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return stored, stored != "", nil
}

// Tables lists user tables in name order.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	var names []string
	err := s.withDB(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
		if err != nil {
			return fmt.Errorf("sqlite: list tables: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var n string
			if err := rows.Scan(&n); err != nil {
				return fmt.Errorf("sqlite: scan table name: %w", err)
			}
			names = append(names, n)
		}
		return rows.Err()
	})
	return names, err
}

// Columns returns the current columns of table from table_info. Returns
// types.ErrTableNotFound when the table has no columns (it does not exist).
func (s *Store) Columns(ctx context.Context, table string) ([]types.ColumnInfo, error) {
	var cols []types.ColumnInfo
	err := s.withDB(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?)`, table)
		if err != nil {
			return fmt.Errorf("sqlite: table info: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var (
				c       types.ColumnInfo
				dflt    sql.NullString
				notNull int
				pk      int
			)
			if err := rows.Scan(&c.CID, &c.Name, &c.Type, &notNull, &dflt, &pk); err != nil {
				return fmt.Errorf("sqlite: scan table info: %w", err)
			}
			c.NotNull = notNull != 0
			c.PrimaryKey = pk != 0
			if dflt.Valid {
				v := dflt.String
				c.Default = &v
			}
			cols = append(cols, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrTableNotFound, table)
	}
	return cols, nil
}

// Exec submits one statement. A rejected statement returns the driver's
// error unwrapped so callers can show the store's diagnostic text as is.
func (s *Store) Exec(ctx context.Context, table string, stmt schema.Statement) error {
	results, err := s.ExecAll(ctx, table, []schema.Statement{stmt}, true)
	if err != nil {
		return err
	}
	return results[0].Err
}

// ExecAll submits stmts on one connection. With independent set, a failed
// statement does not stop the rest; otherwise execution stops at the first
// failure and the remaining statements are not attempted. Nothing is rolled
// back. The returned error covers connection failures only; per-statement
// failures are in the results.
func (s *Store) ExecAll(ctx context.Context, table string, stmts []schema.Statement, independent bool) ([]Result, error) {
	results := make([]Result, 0, len(stmts))
	err := s.withDB(ctx, func(db *sql.DB) error {
		for _, stmt := range stmts {
			_, execErr := db.ExecContext(ctx, stmt.SQL)
			s.record(table, stmt.SQL, execErr)
			results = append(results, Result{Statement: stmt, Err: execErr})
			if execErr != nil && !independent {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Store) record(table, sql string, execErr error) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(table, sql, execErr); err != nil {
		fmt.Fprintln(os.Stderr, "journal:", err)
	}
}

// Rows holds the result of reading a whole table for display.
type Rows struct {
	Headers []string
	Values  [][]string
}

// NullDisplay is how a NULL value is shown by ReadRows.
const NullDisplay = "NULL"

// ReadRows returns every row of table rendered as strings.
func (s *Store) ReadRows(ctx context.Context, table string) (Rows, error) {
	query, err := schema.SelectAll(table)
	if err != nil {
		return Rows{}, err
	}

	var out Rows
	err = s.withDB(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("sqlite: read %s: %w", table, err)
		}
		defer rows.Close()

		out.Headers, err = rows.Columns()
		if err != nil {
			return fmt.Errorf("sqlite: columns: %w", err)
		}
		for rows.Next() {
			raw := make([]any, len(out.Headers))
			ptrs := make([]any, len(raw))
			for i := range raw {
				ptrs[i] = &raw[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return fmt.Errorf("sqlite: scan row: %w", err)
			}
			vals := make([]string, len(raw))
			for i, v := range raw {
				vals[i] = displayValue(v)
			}
			out.Values = append(out.Values, vals)
		}
		return rows.Err()
	})
	return out, err
}

func displayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return NullDisplay
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
