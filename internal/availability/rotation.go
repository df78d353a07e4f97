// internal/availability/rotation.go
package availability

import (
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"
)

// resolveRotation вычисляет базовый статус дня по командной ротации.
// Без ротации, для неактивного человека и при некорректной записи
// ротации возвращается статус по умолчанию (база, доступен).
func resolveRotation(person *models.Person, date time.Time, data *Dataset, cfg Config) Availability {
	def := cfg.defaultAvailability()

	if person == nil || !person.IsActive || person.TeamID == nil {
		return def
	}

	rot := data.rotations[*person.TeamID]
	if rot == nil || rot.PatternLength <= 0 || len(rot.Pattern) == 0 {
		return def
	}

	offset := dateutil.DaysBetween(rot.CycleStart, date)
	// Индекс всегда неотрицательный, в том числе для дат до начала цикла
	idx := ((offset % rot.PatternLength) + rot.PatternLength) % rot.PatternLength
	if idx >= len(rot.Pattern) {
		return def
	}

	switch rot.Pattern[idx] {
	case models.RotationDayHome:
		return Availability{
			Status:      StatusHome,
			StartHour:   cfg.DayStart,
			EndHour:     cfg.DayEnd,
			IsAvailable: false,
			Source:      SourceRotation,
		}
	case models.RotationDayUnavailable:
		return Availability{
			Status:      StatusUnavailable,
			StartHour:   cfg.DayStart,
			EndHour:     cfg.DayEnd,
			IsAvailable: false,
			Source:      SourceRotation,
		}
	default:
		// base и нераспознанные значения паттерна дают день на базе
		return def
	}
}
