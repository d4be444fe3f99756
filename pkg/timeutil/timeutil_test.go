package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday_Format(t *testing.T) {
	today := Today()
	_, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)
}

func TestWeekBoundaries(t *testing.T) {
	monday, sunday := WeekBoundaries()

	start, err := time.Parse("2006-01-02", monday)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", sunday)
	require.NoError(t, err)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 6*24*time.Hour, end.Sub(start))
}

func TestDaysSince(t *testing.T) {
	tenDaysAgo := Now().AddDate(0, 0, -10).Format("2006-01-02")
	days := DaysSince(tenDaysAgo)
	// Tolerância de 1 dia por conta do truncamento de horas
	assert.InDelta(t, 10, days, 1)

	assert.Equal(t, 0, DaysSince("data-invalida"))
	assert.Equal(t, 0, DaysSince(""))
}

func TestFormatHuman(t *testing.T) {
	assert.Equal(t, "February 10, 2026", FormatHuman("2026-02-10"))
	assert.Equal(t, "not-a-date", FormatHuman("not-a-date"))
}
