package types

import (
	"errors"
	"fmt"
	"strings"
)

// TableSpec is a table name with its columns in physical order.
type TableSpec struct {
	Name    string
	Columns []ColumnSpec
}

// PrimaryKey returns the primary-key column and true, or false when the
// table has none.
func (t TableSpec) PrimaryKey() (ColumnSpec, bool) {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// Validate checks the structural invariants of the table definition. Identifier syntax
// is checked separately by the schema package.
func (t TableSpec) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}
	if len(t.Columns) == 0 {
		return ErrNoColumns
	}
	seen := make(map[string]bool, len(t.Columns))
	keys := 0
	for _, c := range t.Columns {
		if c.Name == "" {
			return ErrEmptyName
		}
		if !c.Type.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidColumnType, c.Type)
		}
		lower := strings.ToLower(c.Name)
		if seen[lower] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Name)
		}
		seen[lower] = true
		if c.PrimaryKey {
			keys++
		}
		if c.AutoIncrement && (!c.PrimaryKey || c.Type != TypeInteger) {
			return fmt.Errorf("%w: %s", ErrInvalidAutoIncrement, c.Name)
		}
	}
	if keys > 1 {
		return ErrMultiplePrimaryKeys
	}
	return nil
}

// Specification and validation errors.
var (
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrEmptyName            = errors.New("name must not be empty")
	ErrNoColumns            = errors.New("no columns defined")
	ErrMultiplePrimaryKeys  = errors.New("more than one primary key")
	ErrDuplicateColumn      = errors.New("duplicate column name")
	ErrInvalidColumnType    = errors.New("invalid column type")
	ErrInvalidAutoIncrement = errors.New("AUTOINCREMENT requires an INTEGER PRIMARY KEY")
	ErrInvalidChoice        = errors.New("invalid choice")
)

// Store errors.
var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableExists   = errors.New("table already exists")
)
