package schema

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jirwin42/attendence/pkg/types"
)

func TestValidateIdentifier(t *testing.T) {
	valid := []string{"orders", "_hidden", "Order_2", "a", "A1b2", "__"}
	for _, s := range valid {
		t.Run("valid "+s, func(t *testing.T) {
			got, err := ValidateIdentifier(s)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}

	invalid := []string{"", "1abc", "9", "order-items", "has space", "semi;colon", "drop)", "café", " lead", "tab\t"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := ValidateIdentifier(s)
			require.ErrorIs(t, err, types.ErrInvalidIdentifier)
			assert.Contains(t, err.Error(), strconv.Quote(s))
		})
	}
}

func TestIsIdentifierMatchesCharacterRule(t *testing.T) {
	// Every single byte: accepted iff letter or underscore.
	for b := 0; b < 256; b++ {
		s := string([]byte{byte(b)})
		want := b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		assert.Equal(t, want, IsIdentifier(s), "byte %d", b)
	}
	// Digits are accepted after the first position.
	for d := '0'; d <= '9'; d++ {
		assert.True(t, IsIdentifier("x"+string(d)))
		assert.False(t, IsIdentifier(string(d)+"x"))
	}
}
