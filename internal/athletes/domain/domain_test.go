package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRUT(t *testing.T) {
	t.Run("accepts formatted input", func(t *testing.T) {
		// 12.345.678 has verifier 5.
		rut, err := NormalizeRUT("12.345.678-5")
		require.NoError(t, err)
		assert.Equal(t, "123456785", rut)
	})

	t.Run("accepts raw input and lowercase k", func(t *testing.T) {
		// 20.347.878 has verifier K.
		rut, err := NormalizeRUT("20347878k")
		require.NoError(t, err)
		assert.Equal(t, "20347878K", rut)
	})

	t.Run("rejects bad check digit", func(t *testing.T) {
		_, err := NormalizeRUT("12.345.678-9")
		assert.ErrorIs(t, err, ErrInvalidRUT)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, in := range []string{"", "5", "abc-4", "12a45678-5"} {
			_, err := NormalizeRUT(in)
			assert.ErrorIs(t, err, ErrInvalidRUT, "input %q", in)
		}
	})
}

func TestFormatRUT(t *testing.T) {
	assert.Equal(t, "12.345.678-5", FormatRUT("123456785"))
	assert.Equal(t, "20.347.878-K", FormatRUT("20347878K"))
	assert.Equal(t, "1.234.567-4", FormatRUT("12345674"))
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "penaloza", NormalizeSearch("Peñaloza"))
	assert.Equal(t, "josemiguel", NormalizeSearch("José Miguel"))
	assert.Equal(t, "maria2013", NormalizeSearch("María (2013)"))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("José Peñaloza", "penal"))
	assert.True(t, MatchesSearch("José Peñaloza", "JOSE"))
	assert.True(t, MatchesSearch("anything", "   "))
	assert.False(t, MatchesSearch("José Peñaloza", "martinez"))
}
