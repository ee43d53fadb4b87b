package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnType is a declared SQLite column type.
type ColumnType string

// Column types, in the order the type menu presents them.
const (
	TypeInteger ColumnType = "INTEGER"
	TypeText    ColumnType = "TEXT"
	TypeReal    ColumnType = "REAL"
	TypeBlob    ColumnType = "BLOB"
	TypeNumeric ColumnType = "NUMERIC"
)

// ColumnTypes lists every selectable column type in menu order.
var ColumnTypes = []ColumnType{
	TypeInteger,
	TypeText,
	TypeReal,
	TypeBlob,
	TypeNumeric,
}

// IsValid reports whether t is one of the ColumnTypes.
func (t ColumnType) IsValid() bool {
	for _, ct := range ColumnTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// ColumnTypeByChoice maps a 1-based menu choice to its ColumnType.
// Returns ErrInvalidChoice for non-numeric or out-of-range input.
func ColumnTypeByChoice(choice string) (ColumnType, error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return "", fmt.Errorf("%w: please enter a number", ErrInvalidChoice)
	}
	if n < 1 || n > len(ColumnTypes) {
		return "", fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidChoice, n, len(ColumnTypes))
	}
	return ColumnTypes[n-1], nil
}

// ColumnSpec describes one column of a table being defined.
type ColumnSpec struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	// AutoIncrement adds AUTOINCREMENT to an INTEGER PRIMARY KEY.
	AutoIncrement bool
	Nullable      bool
	Unique        bool
}

// NewColumnSpec returns a nullable, non-unique, non-key column.
func NewColumnSpec(name string, t ColumnType) ColumnSpec {
	return ColumnSpec{Name: name, Type: t, Nullable: true}
}

// ColumnInfo is one row of PRAGMA table_info for an existing table.
type ColumnInfo struct {
	CID        int     `json:"cid"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    bool    `json:"not_null"`
	Default    *string `json:"default"`
	PrimaryKey bool    `json:"pk"`
}

// DefaultString renders the default value the way the schema view prints it.
func (c ColumnInfo) DefaultString() string {
	if c.Default == nil {
		return "None"
	}
	return *c.Default
}
