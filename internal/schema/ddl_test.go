package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jirwin42/attendence/pkg/types"
)

func ordersSpec() types.TableSpec {
	return types.TableSpec{
		Name: "orders",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInteger, PrimaryKey: true, Nullable: false},
			{Name: "total", Type: types.TypeReal, Nullable: true},
		},
	}
}

func TestCreateTable_Orders(t *testing.T) {
	stmt, err := CreateTable(ordersSpec())
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE orders (id INTEGER PRIMARY KEY NOT NULL, total REAL);", stmt.SQL)
	assert.Empty(t, stmt.Column)
}

func TestColumnFragment_FlagOrder(t *testing.T) {
	c := types.ColumnSpec{Name: "code", Type: types.TypeText, PrimaryKey: true, Nullable: false, Unique: true}
	assert.Equal(t, "code TEXT PRIMARY KEY NOT NULL UNIQUE", ColumnFragment(c))

	c = types.ColumnSpec{Name: "email", Type: types.TypeText, Nullable: true, Unique: true}
	assert.Equal(t, "email TEXT UNIQUE", ColumnFragment(c))

	c = types.ColumnSpec{Name: "id", Type: types.TypeInteger, PrimaryKey: true, AutoIncrement: true}
	assert.Equal(t, "id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL", ColumnFragment(c))
}

func TestCreateTable_FragmentsInOrder(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	for n := 1; n <= len(names); n++ {
		spec := types.TableSpec{Name: "t"}
		for i := 0; i < n; i++ {
			c := types.NewColumnSpec(names[i], types.ColumnTypes[i%len(types.ColumnTypes)])
			c.PrimaryKey = i == n/2
			spec.Columns = append(spec.Columns, c)
		}

		stmt, err := CreateTable(spec)
		require.NoError(t, err)

		body := strings.TrimSuffix(strings.TrimPrefix(stmt.SQL, "CREATE TABLE t ("), ");")
		frags := strings.Split(body, ", ")
		require.Len(t, frags, n)

		keys := 0
		for i, f := range frags {
			assert.True(t, strings.HasPrefix(f, names[i]+" "), "fragment %d = %q", i, f)
			if strings.Contains(f, "PRIMARY KEY") {
				keys++
			}
		}
		assert.Equal(t, 1, keys)
	}
}

func TestCreateTable_Deterministic(t *testing.T) {
	a, err := CreateTable(ordersSpec())
	require.NoError(t, err)
	b, err := CreateTable(ordersSpec())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCreateTable_Rejects(t *testing.T) {
	spec := ordersSpec()
	spec.Name = "1orders"
	_, err := CreateTable(spec)
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)

	spec = ordersSpec()
	spec.Columns[1].Name = "to tal"
	_, err = CreateTable(spec)
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)

	_, err = CreateTable(types.TableSpec{Name: "empty"})
	assert.ErrorIs(t, err, types.ErrNoColumns)

	spec = ordersSpec()
	spec.Columns[1].PrimaryKey = true
	_, err = CreateTable(spec)
	assert.ErrorIs(t, err, types.ErrMultiplePrimaryKeys)
}

func TestCreateTableIfNotExists(t *testing.T) {
	stmt, err := CreateTableIfNotExists(ordersSpec())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stmt.SQL, "CREATE TABLE IF NOT EXISTS orders ("))
}

func TestAlterStatements(t *testing.T) {
	add, err := AddColumn("orders", types.NewColumnSpec("note", types.TypeText))
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE orders ADD COLUMN note TEXT;", add.SQL)
	assert.Equal(t, "note", add.Column)

	ren, err := RenameColumn("orders", "note", "memo")
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE orders RENAME COLUMN note TO memo;", ren.SQL)

	drop, err := DropColumn("orders", "memo")
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE orders DROP COLUMN memo;", drop.SQL)

	rt, err := RenameTable("orders", "purchases")
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE orders RENAME TO purchases;", rt.SQL)

	dt, err := DropTable("orders")
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE orders;", dt.SQL)

	sel, err := SelectAll("orders")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM orders", sel)

	_, err = RenameColumn("orders", "note", "bad name")
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)
	_, err = AddColumn("orders", types.ColumnSpec{Name: "x", Type: "JSON"})
	assert.ErrorIs(t, err, types.ErrInvalidColumnType)
	_, err = SelectAll("orders; DROP TABLE x")
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)
}
