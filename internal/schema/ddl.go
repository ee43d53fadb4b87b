package schema

import (
	"fmt"
	"strings"

	"github.com/Jirwin42/attendence/pkg/types"
)

// Statement is one DDL statement together with the column it affects.
// Column is empty for statements that act on the whole table.
type Statement struct {
	SQL    string
	Column string
}

func (s Statement) String() string { return s.SQL }

// ColumnFragment renders a column as `<name> <TYPE>` followed by
// PRIMARY KEY, NOT NULL and UNIQUE, in that order, when set. AUTOINCREMENT
// follows PRIMARY KEY.
func ColumnFragment(c types.ColumnSpec) string {
	parts := []string{c.Name, string(c.Type)}
	if c.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
		if c.AutoIncrement {
			parts = append(parts, "AUTOINCREMENT")
		}
	}
	if !c.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if c.Unique {
		parts = append(parts, "UNIQUE")
	}
	return strings.Join(parts, " ")
}

// CreateTable assembles the CREATE TABLE statement for spec. The output is
// deterministic for identical ordered input.
func CreateTable(spec types.TableSpec) (Statement, error) {
	return createTable("CREATE TABLE", spec)
}

// CreateTableIfNotExists is CreateTable with an IF NOT EXISTS guard.
func CreateTableIfNotExists(spec types.TableSpec) (Statement, error) {
	return createTable("CREATE TABLE IF NOT EXISTS", spec)
}

func createTable(verb string, spec types.TableSpec) (Statement, error) {
	if err := validateSpec(spec); err != nil {
		return Statement{}, err
	}
	frags := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		frags[i] = ColumnFragment(c)
	}
	return Statement{
		SQL: fmt.Sprintf("%s %s (%s);", verb, spec.Name, strings.Join(frags, ", ")),
	}, nil
}

// AddColumn returns `ALTER TABLE <table> ADD COLUMN <fragment>;`.
func AddColumn(table string, c types.ColumnSpec) (Statement, error) {
	if err := identifiers(table, c.Name); err != nil {
		return Statement{}, err
	}
	if !c.Type.IsValid() {
		return Statement{}, fmt.Errorf("%w: %q", types.ErrInvalidColumnType, c.Type)
	}
	return Statement{
		SQL:    fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", table, ColumnFragment(c)),
		Column: c.Name,
	}, nil
}

// RenameColumn returns `ALTER TABLE <table> RENAME COLUMN <from> TO <to>;`.
func RenameColumn(table, from, to string) (Statement, error) {
	if err := identifiers(table, from, to); err != nil {
		return Statement{}, err
	}
	return Statement{
		SQL:    fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s;", table, from, to),
		Column: from,
	}, nil
}

// DropColumn returns `ALTER TABLE <table> DROP COLUMN <column>;`.
func DropColumn(table, column string) (Statement, error) {
	if err := identifiers(table, column); err != nil {
		return Statement{}, err
	}
	return Statement{
		SQL:    fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;", table, column),
		Column: column,
	}, nil
}

// RenameTable returns `ALTER TABLE <from> RENAME TO <to>;`.
func RenameTable(from, to string) (Statement, error) {
	if err := identifiers(from, to); err != nil {
		return Statement{}, err
	}
	return Statement{SQL: fmt.Sprintf("ALTER TABLE %s RENAME TO %s;", from, to)}, nil
}

// DropTable returns `DROP TABLE <table>;`.
func DropTable(table string) (Statement, error) {
	if err := identifiers(table); err != nil {
		return Statement{}, err
	}
	return Statement{SQL: fmt.Sprintf("DROP TABLE %s;", table)}, nil
}

// SelectAll returns the read-only query the row viewer runs.
func SelectAll(table string) (string, error) {
	if err := identifiers(table); err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT * FROM %s", table), nil
}

func identifiers(names ...string) error {
	for _, n := range names {
		if _, err := ValidateIdentifier(n); err != nil {
			return err
		}
	}
	return nil
}
