package uniquecode_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pkpu-id/tagihan/pkg/uniquecode"
	"github.com/stretchr/testify/assert"
)

func noneExist(string) (bool, error) { return false, nil }

func TestGenerate(t *testing.T) {
	t.Run("Length and alphabet", func(t *testing.T) {
		code, err := uniquecode.Generate(25, noneExist)

		assert.NoError(t, err)
		assert.Len(t, code, 25)
		for _, r := range code {
			isUpper := r >= 'A' && r <= 'Z'
			isLower := r >= 'a' && r <= 'z'
			isDigit := r >= '0' && r <= '9'
			assert.True(t, isUpper || isLower || isDigit, "unexpected character %q", r)
		}
	})

	t.Run("Invalid length", func(t *testing.T) {
		_, err := uniquecode.Generate(0, noneExist)
		assert.Error(t, err)
	})

	t.Run("Never returns a code from the existing set", func(t *testing.T) {
		// Simulasi set kode yang sudah terpakai
		existing := map[string]bool{}
		exists := func(code string) (bool, error) {
			return existing[code], nil
		}

		for range 200 {
			code, err := uniquecode.Generate(25, exists)
			assert.NoError(t, err)
			assert.False(t, existing[code])
			existing[code] = true
		}
	})

	t.Run("Retries until the existence check clears", func(t *testing.T) {
		// The retry loop is unbounded by contract; this pins down that it
		// actually loops instead of returning a taken candidate. With three
		// forced collisions the fourth draw must be returned.
		calls := 0
		exists := func(code string) (bool, error) {
			calls++
			return calls <= 3, nil
		}

		code, err := uniquecode.Generate(25, exists)

		assert.NoError(t, err)
		assert.Equal(t, 4, calls)
		assert.Len(t, code, 25)
	})

	t.Run("Existence check failure propagates", func(t *testing.T) {
		boom := errors.New("storage down")
		_, err := uniquecode.Generate(25, func(string) (bool, error) {
			return false, boom
		})

		assert.ErrorIs(t, err, boom)
	})

	t.Run("Distinct consecutive codes", func(t *testing.T) {
		a, err := uniquecode.Generate(25, noneExist)
		assert.NoError(t, err)
		b, err := uniquecode.Generate(25, noneExist)
		assert.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.False(t, strings.ContainsAny(a, " \t\n"))
	})
}
