package console

import (
	"strings"

	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/pkg/types"
)

// Mode selects how many columns a Collector gathers.
type Mode int

const (
	// MultiColumn gathers columns for a new table until a blank name is
	// entered, offering the primary-key flag until one has been set.
	MultiColumn Mode = iota
	// SingleColumn gathers exactly one column for an existing table. The
	// primary-key flag is never offered and a blank name cancels.
	SingleColumn
)

// Collector yields column specs one prompt sequence at a time.
type Collector struct {
	c    *Console
	mode Mode

	primaryKeySet bool
	names         map[string]bool
	done          bool
}

// NewCollector returns a Collector reading from c.
func NewCollector(c *Console, mode Mode) *Collector {
	return &Collector{
		c:             c,
		mode:          mode,
		primaryKeySet: mode == SingleColumn,
		names:         make(map[string]bool),
	}
}

// Next prompts for one more column. It returns false when the sequence has
// ended: a blank name in MultiColumn mode, a blank name (cancel) or a
// completed column in SingleColumn mode.
func (col *Collector) Next() (types.ColumnSpec, bool, error) {
	if col.done {
		return types.ColumnSpec{}, false, nil
	}

	prompt := "Enter column name (or press Enter to finish): "
	if col.mode == SingleColumn {
		prompt = "Enter column name: "
	}
	name, err := Ask(col.c, prompt, col.parseColumnName)
	if err != nil {
		return types.ColumnSpec{}, false, err
	}
	if name == "" {
		col.done = true
		if col.mode == SingleColumn {
			col.c.Println("Column name cannot be empty. No column added.")
		}
		return types.ColumnSpec{}, false, nil
	}

	ct, err := col.c.ColumnType()
	if err != nil {
		return types.ColumnSpec{}, false, err
	}
	spec := types.NewColumnSpec(name, ct)

	if !col.primaryKeySet {
		pk, err := col.c.Yes("Is this the PRIMARY KEY? (y/n): ")
		if err != nil {
			return types.ColumnSpec{}, false, err
		}
		if pk {
			spec.PrimaryKey = true
			col.primaryKeySet = true
		}
	}

	notNull, err := col.c.No("Can this column be empty (allow NULLs)? (y/n): ")
	if err != nil {
		return types.ColumnSpec{}, false, err
	}
	spec.Nullable = !notNull

	spec.Unique, err = col.c.Yes("Must values in this column be UNIQUE? (y/n): ")
	if err != nil {
		return types.ColumnSpec{}, false, err
	}

	col.names[strings.ToLower(name)] = true
	col.c.Printf("--> Added: `%s`\n\n", schema.ColumnFragment(spec))

	if col.mode == SingleColumn {
		col.done = true
	}
	return spec, true, nil
}

// All drains the collector. An empty result means no columns were defined
// and the caller must not create the table.
func (col *Collector) All() ([]types.ColumnSpec, error) {
	if col.mode == MultiColumn {
		col.c.Println("\n--- Define Columns ---")
		col.c.Println("Enter column details. Press Enter on an empty column name when finished.")
	}
	var specs []types.ColumnSpec
	for {
		spec, ok, err := col.Next()
		if err != nil {
			return specs, err
		}
		if !ok {
			return specs, nil
		}
		specs = append(specs, spec)
	}
}

func (col *Collector) parseColumnName(answer string) (string, error) {
	name, err := parseName(true)(answer)
	if err != nil {
		return "", err
	}
	if name != "" && col.names[strings.ToLower(name)] {
		return "", rejection("Error: column '" + name + "' is already defined.")
	}
	return name, nil
}
