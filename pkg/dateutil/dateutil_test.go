package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 3, 15, 18, 45, 12, 999, time.UTC)
	got := DateOnly(in)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDateKey(t *testing.T) {
	in := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DateKey(in))
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-03-15", "15.03.2024", " 2024-03-15 "} {
		got, err := ParseDate(s)
		assert.NoError(t, err, s)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 15, got.Day())
	}

	_, err := ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysBetween(a, b))
	assert.Equal(t, -10, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// через границу месяца и високосный февраль
	feb := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(feb, mar))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "23:59", "09:30", "14:00"}
	for _, s := range valid {
		assert.True(t, IsValidClock(s), s)
	}

	invalid := []string{"24:00", "12:60", "9:30", "12:5", "noon", "", "12-30"}
	for _, s := range invalid {
		assert.False(t, IsValidClock(s), s)
	}
}

func TestClockBefore(t *testing.T) {
	assert.True(t, ClockBefore("09:00", "14:00"))
	assert.False(t, ClockBefore("14:00", "09:00"))
	assert.False(t, ClockBefore("14:00", "14:00"))
}
