package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	timestamp := time.Date(2026, 5, 5, 23, 45, 12, 999, time.UTC)

	assert.Equal(t, time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), DateOnly(timestamp))
}

func TestFormatAndParseDate(t *testing.T) {
	date := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)

	formatted := FormatDate(date)
	assert.Equal(t, "2026-05-05", formatted)

	parsed, err := ParseDate(formatted)
	require.NoError(t, err)
	assert.Equal(t, date, parsed)
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, input := range []string{"2026/05/05", "05-05-2026", "2026-5-5", "not a date", ""} {
		_, err := ParseDate(input)
		assert.Error(t, err, input)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name         string
		year         int
		month        time.Month
		expectedFrom time.Time
		expectedTo   time.Time
	}{
		{
			name:         "mid-year month",
			year:         2026,
			month:        time.May,
			expectedFrom: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedTo:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "december rolls into next year",
			year:         2026,
			month:        time.December,
			expectedFrom: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedTo:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "february in a leap year",
			year:         2028,
			month:        time.February,
			expectedFrom: time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedTo:   time.Date(2028, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := MonthWindow(tt.year, tt.month)
			assert.Equal(t, tt.expectedFrom, from)
			assert.Equal(t, tt.expectedTo, to)
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-05", MonthKey(2026, time.May))
	assert.Equal(t, "2026-12", MonthKey(2026, time.December))
	assert.Equal(t, "2027-01", MonthKey(2027, time.January))
}

func TestIsExpired(t *testing.T) {
	assert.True(t, IsExpired(UTCNow().Add(-time.Minute)))
	assert.False(t, IsExpired(UTCNow().Add(time.Minute)))
}

func TestUTCNowAdd(t *testing.T) {
	deadline := UTCNowAdd(time.Hour)

	assert.Equal(t, time.UTC, deadline.Location())
	assert.True(t, deadline.After(UTCNow().Add(59*time.Minute)))
	assert.False(t, deadline.After(UTCNow().Add(61*time.Minute)))
}
