package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jirwin42/attendence/pkg/types"
)

func TestCollector_EmptyFirstInput(t *testing.T) {
	c, _ := scripted("")
	specs, err := NewCollector(c, MultiColumn).All()
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestCollector_Orders(t *testing.T) {
	c, out := scripted(
		"id", "1", "y", "n", "n",
		"total", "3", "y", "n",
		"",
	)
	specs, err := NewCollector(c, MultiColumn).All()
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, types.ColumnSpec{Name: "id", Type: types.TypeInteger, PrimaryKey: true, Nullable: false}, specs[0])
	assert.Equal(t, types.ColumnSpec{Name: "total", Type: types.TypeReal, Nullable: true}, specs[1])

	text := out.String()
	assert.Contains(t, text, "--> Added: `id INTEGER PRIMARY KEY NOT NULL`")
	assert.Contains(t, text, "--> Added: `total REAL`")
	assert.Equal(t, 1, strings.Count(text, "PRIMARY KEY? (y/n)"), "primary key offered only until set")
}

func TestCollector_PrimaryKeyOfferedUntilSet(t *testing.T) {
	c, out := scripted(
		"a", "2", "n", "y", "n",
		"b", "2", "y", "y", "y",
		"c", "2", "y", "n",
		"",
	)
	specs, err := NewCollector(c, MultiColumn).All()
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.False(t, specs[0].PrimaryKey)
	assert.True(t, specs[1].PrimaryKey)
	assert.True(t, specs[1].Unique)
	assert.False(t, specs[2].PrimaryKey)
	assert.Equal(t, 2, strings.Count(out.String(), "PRIMARY KEY? (y/n)"))
}

func TestCollector_RejectsDuplicateAndInvalidNames(t *testing.T) {
	c, out := scripted(
		"a", "2", "n", "y", "n",
		"A", "9x", "b", "5", "n", "y", "n",
		"",
	)
	specs, err := NewCollector(c, MultiColumn).All()
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "b", specs[1].Name)
	assert.Equal(t, types.TypeNumeric, specs[1].Type)
	assert.Contains(t, out.String(), "Error: column 'A' is already defined.")
	assert.Contains(t, out.String(), "Error: '9x' is not a valid identifier.")
}

func TestCollector_SingleColumn(t *testing.T) {
	c, out := scripted("note", "2", "y", "n", "extra")
	col := NewCollector(c, SingleColumn)

	spec, ok, err := col.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.NewColumnSpec("note", types.TypeText), spec)
	assert.NotContains(t, out.String(), "PRIMARY KEY")

	_, ok, err = col.Next()
	require.NoError(t, err)
	assert.False(t, ok, "single-column mode stops after one column")
}

func TestCollector_SingleColumnBlankCancels(t *testing.T) {
	c, out := scripted("")
	specs, err := NewCollector(c, SingleColumn).All()
	require.NoError(t, err)
	assert.Empty(t, specs)
	assert.Contains(t, out.String(), "No column added.")
}
