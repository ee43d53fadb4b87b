package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSpecValidate(t *testing.T) {
	id := ColumnSpec{Name: "id", Type: TypeInteger, PrimaryKey: true}
	total := NewColumnSpec("total", TypeReal)

	tests := []struct {
		name    string
		spec    TableSpec
		wantErr error
	}{
		{"valid", TableSpec{Name: "orders", Columns: []ColumnSpec{id, total}}, nil},
		{"empty name", TableSpec{Columns: []ColumnSpec{id}}, ErrEmptyName},
		{"no columns", TableSpec{Name: "orders"}, ErrNoColumns},
		{"two primary keys", TableSpec{Name: "orders", Columns: []ColumnSpec{id, {Name: "k", Type: TypeText, PrimaryKey: true}}}, ErrMultiplePrimaryKeys},
		{"duplicate column ignores case", TableSpec{Name: "orders", Columns: []ColumnSpec{total, NewColumnSpec("TOTAL", TypeText)}}, ErrDuplicateColumn},
		{"unknown type", TableSpec{Name: "orders", Columns: []ColumnSpec{{Name: "x", Type: "VARCHAR"}}}, ErrInvalidColumnType},
		{"autoincrement key", TableSpec{Name: "orders", Columns: []ColumnSpec{{Name: "id", Type: TypeInteger, PrimaryKey: true, AutoIncrement: true}}}, nil},
		{"autoincrement without key", TableSpec{Name: "orders", Columns: []ColumnSpec{{Name: "id", Type: TypeInteger, AutoIncrement: true}}}, ErrInvalidAutoIncrement},
		{"autoincrement on text key", TableSpec{Name: "orders", Columns: []ColumnSpec{{Name: "id", Type: TypeText, PrimaryKey: true, AutoIncrement: true}}}, ErrInvalidAutoIncrement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTableSpecPrimaryKey(t *testing.T) {
	spec := TableSpec{Name: "t", Columns: []ColumnSpec{
		NewColumnSpec("a", TypeText),
		{Name: "b", Type: TypeInteger, PrimaryKey: true},
	}}
	pk, ok := spec.PrimaryKey()
	require.True(t, ok)
	assert.Equal(t, "b", pk.Name)

	_, ok = TableSpec{Name: "t", Columns: []ColumnSpec{NewColumnSpec("a", TypeText)}}.PrimaryKey()
	assert.False(t, ok)
}

func TestColumnTypeByChoice(t *testing.T) {
	for i, want := range ColumnTypes {
		got, err := ColumnTypeByChoice(string(rune('1' + i)))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"0", "6", "-1", "abc", "", "2.5"} {
		_, err := ColumnTypeByChoice(bad)
		assert.ErrorIs(t, err, ErrInvalidChoice, "input %q", bad)
	}

	got, err := ColumnTypeByChoice(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, TypeReal, got)
}

func TestResolutionByChoice(t *testing.T) {
	assert.Equal(t, Abort, ResolutionByChoice("1"))
	assert.Equal(t, Overwrite, ResolutionByChoice("2"))
	assert.Equal(t, Merge, ResolutionByChoice("3"))
	assert.Equal(t, Abort, ResolutionByChoice("4"))
	assert.Equal(t, Abort, ResolutionByChoice(""))
	assert.Equal(t, "merge", Merge.String())
}

func TestColumnInfoDefaultString(t *testing.T) {
	assert.Equal(t, "None", ColumnInfo{}.DefaultString())
	v := "'x'"
	assert.Equal(t, "'x'", ColumnInfo{Default: &v}.DefaultString())
}
