package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, NewDateRange(date("2026-01-10"), date("2026-01-12")).IsValid())
	assert.False(t, NewDateRange(date("2026-01-12"), date("2026-01-10")).IsValid(), "reversed range")
	assert.False(t, NewDateRange(date("2026-01-10"), date("2026-01-10")).IsValid(), "empty range")
	assert.False(t, DateRange{}.IsValid(), "zero range")
}

func TestDateRange_Nights(t *testing.T) {
	assert.Equal(t, 1, NewDateRange(date("2026-01-10"), date("2026-01-11")).Nights())
	assert.Equal(t, 3, NewDateRange(date("2026-01-10"), date("2026-01-13")).Nights())
}

func TestDateRange_Dates(t *testing.T) {
	rng := NewDateRange(date("2026-01-10"), date("2026-01-13"))
	dates := rng.Dates()

	require.Len(t, dates, 3)
	assert.Equal(t, date("2026-01-10"), dates[0])
	assert.Equal(t, date("2026-01-11"), dates[1])
	assert.Equal(t, date("2026-01-12"), dates[2])

	// День выезда в диапазон не входит
	for _, d := range dates {
		assert.NotEqual(t, date("2026-01-13"), d)
	}
}

func TestNewDateRange_TruncatesTime(t *testing.T) {
	start := time.Date(2026, 1, 10, 15, 30, 45, 0, time.UTC)
	end := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)

	rng := NewDateRange(start, end)
	assert.Equal(t, date("2026-01-10"), rng.Start)
	assert.Equal(t, date("2026-01-12"), rng.End)
	assert.Equal(t, 2, rng.Nights())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date("2026-01-10"), date("2026-01-10")))
	assert.Equal(t, 5, DaysBetween(date("2026-01-10"), date("2026-01-15")))
	assert.Equal(t, -3, DaysBetween(date("2026-01-10"), date("2026-01-07")))

	// Компонента времени не влияет на количество календарных дней
	morning := time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)
	evening := time.Date(2026, 1, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(morning, evening))
}
