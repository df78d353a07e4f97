package dateutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DayKeyLayout - формат даты, используемый как ключ дня во всем приложении
const DayKeyLayout = "2006-01-02"

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey возвращает строковый ключ дня (YYYY-MM-DD)
func DateKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDate парсит дату в формате YYYY-MM-DD или DD.MM.YYYY
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.ParseInLocation(DayKeyLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("02.01.2006", s, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q (expected YYYY-MM-DD or DD.MM.YYYY)", s)
}

// DaysBetween возвращает количество дней от from до to (может быть отрицательным).
// Округление защищает от сдвигов при переходе на летнее время.
func DaysBetween(from, to time.Time) int {
	from = DateOnly(from)
	to = DateOnly(to)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// SameDay проверяет, относятся ли две метки времени к одному календарному дню
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsValidClock проверяет строку времени в формате HH:MM (00:00 - 23:59)
func IsValidClock(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}

	return true
}

// ClockBefore сравнивает два времени HH:MM; для валидных строк
// лексикографическое сравнение совпадает с хронологическим
func ClockBefore(a, b string) bool {
	return a < b
}
