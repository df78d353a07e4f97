// internal/availability/snapshot.go
package availability

import (
	"strings"
	"time"

	"attendance-bot/internal/models"
)

// snapshotOverlay применяет ручной снимок присутствия. Снимок на точную
// дату авторитетен и полностью заменяет результат расчетных слоев.
type snapshotOverlay struct {
	data *Dataset
}

func (o snapshotOverlay) source() Source {
	return SourceSnapshot
}

func (o snapshotOverlay) apply(person *models.Person, date time.Time, current Availability, cfg Config) (Availability, bool) {
	s := o.data.snapshotOn(person.ID, date)
	if s == nil {
		return current, false
	}
	return normalizeSnapshot(s, cfg), true
}

// canonicalState сводит сырые метки обоих форматов (включая ивритские
// надписи старых записей) к каноническому статусу
func canonicalState(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "base", "בסיס":
		return StatusBase, true
	case "home", "בית":
		return StatusHome, true
	case "arrival":
		return StatusArrival, true
	case "departure":
		return StatusDeparture, true
	case "unavailable":
		return StatusUnavailable, true
	case "sick":
		return StatusSick, true
	case "leave":
		return StatusLeave, true
	}
	return "", false
}

// normalizeSnapshot приводит запись снимка к каноническому Availability.
// Формы нормализации:
//   - новый формат: V2State - канонический статус, для home добавляется
//     HomeStatusType (по умолчанию leave_shamp);
//   - старый формат: та же логика поверх сырой строки Status;
//   - для базы прибытие/убытие выводится из нестандартных времен
//     (00:00/23:59 - сентинели "без ограничения");
//   - нераспознанная метка не является ошибкой: она сохраняется как
//     RawLabel, доступность консервативно false.
func normalizeSnapshot(s *models.PresenceSnapshot, cfg Config) Availability {
	raw := s.V2State
	if raw == "" {
		raw = s.Status
	}

	start := s.StartTime
	if start == "" {
		start = cfg.DayStart
	}
	end := s.EndTime
	if end == "" {
		end = cfg.DayEnd
	}

	state, ok := canonicalState(raw)
	if !ok {
		return Availability{
			Status:      StatusUnavailable,
			StartHour:   start,
			EndHour:     end,
			IsAvailable: false,
			RawLabel:    raw,
			Source:      SourceSnapshot,
		}
	}

	switch state {
	case StatusHome:
		hst := HomeStatusType(s.HomeStatusType)
		if hst == "" {
			hst = HomeLeaveShamp
		}
		return Availability{
			Status:         StatusHome,
			StartHour:      cfg.DayStart,
			EndHour:        cfg.DayEnd,
			HomeStatusType: hst,
			IsAvailable:    false,
			Source:         SourceSnapshot,
		}

	case StatusBase:
		switch {
		case start != cfg.DayStart && end != cfg.DayEnd:
			// присутствие только внутри окна
			return Availability{
				Status:      StatusBase,
				StartHour:   start,
				EndHour:     end,
				IsAvailable: true,
				Source:      SourceSnapshot,
			}
		case start != cfg.DayStart:
			return Availability{
				Status:      StatusArrival,
				StartHour:   start,
				EndHour:     cfg.DayEnd,
				IsAvailable: true,
				Source:      SourceSnapshot,
			}
		case end != cfg.DayEnd:
			return Availability{
				Status:      StatusDeparture,
				StartHour:   cfg.DayStart,
				EndHour:     end,
				IsAvailable: true,
				Source:      SourceSnapshot,
			}
		default:
			return Availability{
				Status:      StatusBase,
				StartHour:   cfg.DayStart,
				EndHour:     cfg.DayEnd,
				IsAvailable: true,
				Source:      SourceSnapshot,
			}
		}

	case StatusArrival:
		return Availability{
			Status:      StatusArrival,
			StartHour:   start,
			EndHour:     cfg.DayEnd,
			IsAvailable: true,
			Source:      SourceSnapshot,
		}

	case StatusDeparture:
		return Availability{
			Status:      StatusDeparture,
			StartHour:   cfg.DayStart,
			EndHour:     end,
			IsAvailable: true,
			Source:      SourceSnapshot,
		}

	default:
		// unavailable, sick, leave - целодневная недоступность
		return Availability{
			Status:      state,
			StartHour:   cfg.DayStart,
			EndHour:     cfg.DayEnd,
			IsAvailable: false,
			Source:      SourceSnapshot,
		}
	}
}
