// Package viewer renders the rows of a table for reading and sorts them by
// a column.
package viewer

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
)

// Table is a header row plus string-rendered data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1. Matching
// ignores case, as SQLite column names do.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// SortBy orders rows by the named column. When every value in the column
// parses as a number the order is numeric; otherwise it is a case-folded
// string order. The sort is stable.
func (t Table) SortBy(column string, desc bool) error {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("no column %q (columns: %s)", column, strings.Join(t.Headers, ", "))
	}

	if nums, ok := numericKeys(t.Rows, idx); ok {
		sortRows(t.Rows, func(i, j int) bool { return nums[i] < nums[j] }, desc, nums)
		return nil
	}

	fold := cases.Fold()
	keys := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		keys[i] = fold.String(r[idx])
	}
	sortRows(t.Rows, func(i, j int) bool { return keys[i] < keys[j] }, desc, keys)
	return nil
}

// numericKeys parses column idx of every row as a float.
func numericKeys(rows [][]string, idx int) ([]float64, bool) {
	keys := make([]float64, len(rows))
	for i, r := range rows {
		f, err := strconv.ParseFloat(strings.TrimSpace(r[idx]), 64)
		if err != nil {
			return nil, false
		}
		keys[i] = f
	}
	return keys, true
}

// keySlice sorts rows together with their precomputed keys.
type keySlice[K any] struct {
	rows [][]string
	keys []K
	less func(i, j int) bool
}

func (s keySlice[K]) Len() int           { return len(s.rows) }
func (s keySlice[K]) Less(i, j int) bool { return s.less(i, j) }
func (s keySlice[K]) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

func sortRows[K any](rows [][]string, less func(i, j int) bool, desc bool, keys []K) {
	ks := keySlice[K]{rows: rows, keys: keys, less: less}
	if desc {
		ks.less = func(i, j int) bool { return less(j, i) }
	}
	sort.Stable(ks)
}

// Render writes the table as aligned columns followed by a record count.
func Render(w io.Writer, t Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	seps := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		seps[i] = strings.Repeat("-", max(len(h), 3))
	}
	fmt.Fprintln(tw, strings.Join(seps, "\t"))
	for _, r := range t.Rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, RecordCount(len(t.Rows)))
	return err
}

// RecordCount formats n as the viewer's status line.
func RecordCount(n int) string {
	if n == 1 {
		return "Found 1 record."
	}
	return fmt.Sprintf("Found %s records.", humanize.Comma(int64(n)))
}
