package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Jirwin42/attendence/internal/viewer"
	"github.com/Jirwin42/attendence/pkg/types"
)

// WriteSchema prints columns as the fixed-width schema table.
func WriteSchema(w io.Writer, cols []types.ColumnInfo) {
	fmt.Fprintf(w, "%-5s %-20s %-15s %-10s %-10s %-5s\n", "ID", "Name", "Type", "Not Null", "Default", "PK")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, c := range cols {
		fmt.Fprintf(w, "%-5d %-20s %-15s %-10t %-10s %-5t\n",
			c.CID, c.Name, c.Type, c.NotNull, c.DefaultString(), c.PrimaryKey)
	}
}

// Browse prints every row of table, sorted by sortColumn when it is set.
func (s *Session) Browse(ctx context.Context, table, sortColumn string, desc bool) error {
	rows, err := s.store.ReadRows(ctx, table)
	if err != nil {
		s.con.Printf("Database Error: %v\n\nHint: Is the table name '%s' correct?\n", err, table)
		return nil
	}
	t := viewer.Table{Headers: rows.Headers, Rows: rows.Values}
	if sortColumn != "" {
		if err := t.SortBy(sortColumn, desc); err != nil {
			s.con.Printf("Error: %v\n", err)
			return nil
		}
	}
	return viewer.Render(s.con.Out(), t)
}

func (s *Session) browsePrompt(ctx context.Context) error {
	table, ok, err := s.askName("", "Enter the name of the table to browse: ", "Table name cannot be empty.")
	if err != nil || !ok {
		return err
	}
	column, err := s.con.OptionalName("Sort by column (press Enter for none): ")
	if err != nil {
		return err
	}
	var desc bool
	if column != "" {
		if desc, err = s.con.Yes("Descending order? (y/n): "); err != nil {
			return err
		}
	}
	return s.Browse(ctx, table, column, desc)
}
