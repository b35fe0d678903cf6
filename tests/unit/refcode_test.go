package unit_test

import (
	"strings"
	"testing"

	"soulsynergy/internal/pkg/refcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefcode_Generate(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		code, err := refcode.Generate()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(code, "SS-"))
		assert.Len(t, code, len("SS-")+8)
	})

	t.Run("No confusable characters", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := refcode.Generate()
			require.NoError(t, err)

			suffix := strings.TrimPrefix(code, "SS-")
			assert.NotContains(t, suffix, "0")
			assert.NotContains(t, suffix, "O")
			assert.NotContains(t, suffix, "1")
			assert.NotContains(t, suffix, "I")
			assert.NotContains(t, suffix, "L")
		}
	})

	t.Run("Codes differ between calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := refcode.Generate()
			require.NoError(t, err)
			assert.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	})
}
