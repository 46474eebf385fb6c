//go:build unit

package bookingcode_test

import (
	"testing"

	"rentradar/internal/pkg/bookingcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("generates valid codes", func(t *testing.T) {
		for range 100 {
			code, err := bookingcode.New()
			require.NoError(t, err)
			assert.Len(t, code, bookingcode.Length)
			assert.True(t, bookingcode.IsValid(code), code)
		}
	})

	t.Run("codes vary", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 50 {
			code, err := bookingcode.New()
			require.NoError(t, err)
			seen[code] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"7KQ2RD", true},
		{"ABCDEF", true},
		{"000000", true},
		{"", false},
		{"7KQ2R", false},
		{"7KQ2RDX", false},
		{"7kq2rd", false},
		{"7KQ-RD", false},
		{"7KQ2R ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, bookingcode.IsValid(c.code), c.code)
	}
}
