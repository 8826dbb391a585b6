package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripDate_AcceptedFormats(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2024.03.15", "2024/03/15", "2024-03-15", " 2024.03.15 "} {
		got, ok := ParseTripDate(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), in)
	}
}

func TestParseTripDate_Rejects(t *testing.T) {
	for _, in := range []string{"", "15.03.2024", "2024.13.01", "next friday"} {
		_, ok := ParseTripDate(in)
		assert.False(t, ok, in)
	}
}

func TestParseTripDateOrToday_FallsBackToNow(t *testing.T) {
	orig := nowFunc
	t.Cleanup(func() { nowFunc = orig })
	nowFunc = func() time.Time { return time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC) }

	got := ParseTripDateOrToday("garbage")

	assert.Equal(t, "2025.01.02", FormatCanonicalDate(got))
}

func TestDayDate_OffsetsFromStart(t *testing.T) {
	start := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)

	for day := 1; day <= 40; day++ {
		want := start.AddDate(0, 0, day-1).Format("2006.01.02")
		assert.Equal(t, want, DayDate(start, day))
	}
	// crosses the leap day
	assert.Equal(t, "2024.02.29", DayDate(start, 3))
	assert.Equal(t, "2024.03.01", DayDate(start, 4))
}

func TestFormatCanonicalDate_Zero(t *testing.T) {
	assert.Equal(t, "", FormatCanonicalDate(time.Time{}))
}
