package swimtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplay(t *testing.T) {
	t.Run("canonical MM:SS.cc", func(t *testing.T) {
		ms, err := ParseDisplay("01:20.55")
		require.NoError(t, err)
		assert.Equal(t, int64(80550), ms)
	})

	t.Run("hour-bearing HH:MM:SS.cc", func(t *testing.T) {
		ms, err := ParseDisplay("00:18:45.20")
		require.NoError(t, err)
		assert.Equal(t, int64(1125200), ms)

		ms, err = ParseDisplay("01:02:03.00")
		require.NoError(t, err)
		assert.Equal(t, int64(3723000), ms)
	})

	t.Run("hour form rejects minutes of 60 or more", func(t *testing.T) {
		_, err := ParseDisplay("01:60:00.00")
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("bare SS.cc", func(t *testing.T) {
		ms, err := ParseDisplay("35.20")
		require.NoError(t, err)
		assert.Equal(t, int64(35200), ms)
	})

	t.Run("single centisecond digit means tenths", func(t *testing.T) {
		ms, err := ParseDisplay("35.5")
		require.NoError(t, err)
		assert.Equal(t, int64(35500), ms)
	})

	t.Run("digit-only progressive entry", func(t *testing.T) {
		ms, err := ParseDisplay("12055")
		require.NoError(t, err)
		assert.Equal(t, int64(80550), ms)
	})

	t.Run("short digit entry", func(t *testing.T) {
		ms, err := ParseDisplay("3520")
		require.NoError(t, err)
		assert.Equal(t, int64(35200), ms)
	})

	t.Run("seconds of 60 or more are invalid, never wrapped", func(t *testing.T) {
		for _, in := range []string{"01:60.00", "61.00", "6100", "16100"} {
			_, err := ParseDisplay(in)
			assert.ErrorIs(t, err, ErrInvalidTime, "input %q", in)
		}
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		for _, in := range []string{"", "  ", "abc", "1:2:3:4", "10.123", "-5.00"} {
			_, err := ParseDisplay(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func TestFormatMsRoundTrip(t *testing.T) {
	cases := []string{"00:00.00", "00:35.20", "01:20.55", "02:00.01", "15:59.99"}
	for _, display := range cases {
		ms, err := ParseDisplay(display)
		require.NoError(t, err)
		assert.Equal(t, display, FormatMs(ms))
	}
}

func TestFormatMsNegative(t *testing.T) {
	assert.Equal(t, "00:00.00", FormatMs(-100))
}

func TestCategory(t *testing.T) {
	// birthYear=2013, seasonYear=2025 -> age 12 -> INF B1
	assert.Equal(t, "INF B1", Category(2013, 2025))
	assert.Equal(t, "PROM", Category(2018, 2025))
	assert.Equal(t, "INF A1", Category(2015, 2025))
	assert.Equal(t, "JUV B2", Category(2008, 2025))
	assert.Equal(t, "TC", Category(2000, 2025))

	// Pure function of the difference: repeated calls are stable.
	for i := 0; i < 3; i++ {
		assert.Equal(t, Category(2013, 2025), Category(2014, 2026))
	}
}

func TestDates(t *testing.T) {
	d, err := ParseISO("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, "09/03/2025", ToDisplay(d))

	d2, err := ParseDisplayDate("09/03/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", ToISO(d2))

	d3, err := ParseDisplayDate("09032025")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", ToISO(d3))

	_, err = ParseDisplayDate("32/13/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
