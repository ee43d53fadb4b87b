package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jirwin42/attendence/pkg/types"
)

// scripted returns a Console fed by the given answers, one per line, and
// the buffer its output goes to.
func scripted(answers ...string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	return New(NewPlainReader(in, &out), &out), &out
}

func TestPlainReader(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainReader(strings.NewReader("one\r\ntwo"), &out)

	got, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	got, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	_, err = r.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
	assert.NoError(t, r.Close())
}

func TestRequireName_RepromptsInvalid(t *testing.T) {
	c, out := scripted("1bad", "bad-name", "orders")
	name, err := c.RequireName("Table: ")
	require.NoError(t, err)
	assert.Equal(t, "orders", name)
	assert.Equal(t, 2, strings.Count(out.String(), "is not a valid identifier"))
	assert.Contains(t, out.String(), "Error: '1bad' is not a valid identifier.")
}

func TestRequireName_BlankCancels(t *testing.T) {
	c, _ := scripted("   ")
	_, err := c.RequireName("Table: ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRequireName_EOF(t *testing.T) {
	c := New(NewPlainReader(strings.NewReader(""), io.Discard), io.Discard)
	_, err := c.RequireName("Table: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestColumnType_Reprompts(t *testing.T) {
	c, out := scripted("abc", "0", "9", "", "3")
	ct, err := c.ColumnType()
	require.NoError(t, err)
	assert.Equal(t, types.TypeReal, ct)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please enter a number."))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice."))
	assert.Contains(t, out.String(), "  5. NUMERIC")
}

func TestYesNo(t *testing.T) {
	c, _ := scripted("Y", "yes", "N", "")
	y, err := c.Yes("? ")
	require.NoError(t, err)
	assert.True(t, y)
	y, err = c.Yes("? ")
	require.NoError(t, err)
	assert.False(t, y, "only a bare y counts")
	n, err := c.No("? ")
	require.NoError(t, err)
	assert.True(t, n)
	n, err = c.No("? ")
	require.NoError(t, err)
	assert.False(t, n)
}

func TestRawKeepsSpacing(t *testing.T) {
	c, _ := scripted(" OVERWRITE")
	got, err := c.Raw("Type 'OVERWRITE' to confirm: ")
	require.NoError(t, err)
	assert.Equal(t, " OVERWRITE", got)
}
