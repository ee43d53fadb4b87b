package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jirwin42/attendence/pkg/types"
)

func TestReconcile_Abort(t *testing.T) {
	plan, err := Reconcile(ordersSpec(), types.Abort, "")
	require.NoError(t, err)
	assert.Equal(t, types.Abort, plan.Resolution)
	assert.True(t, plan.Empty())
	assert.False(t, plan.ConfirmationFailed)
}

func TestReconcile_Overwrite(t *testing.T) {
	plan, err := Reconcile(ordersSpec(), types.Overwrite, "OVERWRITE")
	require.NoError(t, err)
	assert.Equal(t, types.Overwrite, plan.Resolution)
	assert.False(t, plan.Independent())
	require.Len(t, plan.Statements, 2)
	assert.Equal(t, "DROP TABLE orders;", plan.Statements[0].SQL)
	assert.Equal(t, "CREATE TABLE orders (id INTEGER PRIMARY KEY NOT NULL, total REAL);", plan.Statements[1].SQL)
}

func TestReconcile_OverwriteTokenMismatch(t *testing.T) {
	for _, token := range []string{"", "overwrite", "Overwrite", "OVERWRITE ", " OVERWRITE", "yes", "y"} {
		t.Run(token, func(t *testing.T) {
			plan, err := Reconcile(ordersSpec(), types.Overwrite, token)
			require.NoError(t, err)
			assert.Equal(t, types.Abort, plan.Resolution)
			assert.True(t, plan.ConfirmationFailed)
			assert.True(t, plan.Empty())
		})
	}
}

func TestReconcile_Merge(t *testing.T) {
	spec := types.TableSpec{Name: "orders", Columns: []types.ColumnSpec{
		types.NewColumnSpec("note", types.TypeText),
	}}
	plan, err := Reconcile(spec, types.Merge, "")
	require.NoError(t, err)
	assert.True(t, plan.Independent())
	require.Len(t, plan.Statements, 1)
	assert.Equal(t, "ALTER TABLE orders ADD COLUMN note TEXT;", plan.Statements[0].SQL)
	assert.Equal(t, "note", plan.Statements[0].Column)
}

func TestReconcile_MergeKeepsColumnOrder(t *testing.T) {
	spec := types.TableSpec{Name: "t", Columns: []types.ColumnSpec{
		types.NewColumnSpec("b", types.TypeText),
		types.NewColumnSpec("c", types.TypeBlob),
	}}
	plan, err := Reconcile(spec, types.Merge, "")
	require.NoError(t, err)
	require.Len(t, plan.Statements, 2)
	assert.Equal(t, "b", plan.Statements[0].Column)
	assert.Equal(t, "c", plan.Statements[1].Column)
}

func TestReconcile_InvalidSpec(t *testing.T) {
	_, err := Reconcile(types.TableSpec{Name: "orders"}, types.Merge, "")
	assert.ErrorIs(t, err, types.ErrNoColumns)
}
