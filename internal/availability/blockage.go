// internal/availability/blockage.go
package availability

import (
	"time"

	"attendance-bot/internal/models"
)

// blockageOverlay уточняет день на базе почасовой блокировкой.
// К домашним дням не применяется: целодневное отсутствие приоритетнее
// частичного, блокировка лишь уточняет день присутствия.
type blockageOverlay struct {
	data *Dataset
}

func (o blockageOverlay) source() Source {
	return SourceBlockage
}

func (o blockageOverlay) apply(person *models.Person, date time.Time, current Availability, cfg Config) (Availability, bool) {
	if !current.isPresent() {
		return current, false
	}

	b := o.data.blockageOn(person.ID, date)
	if b == nil {
		return current, false
	}

	start := b.StartTime
	if start == "" {
		start = cfg.DayStart
	}
	end := b.EndTime
	if end == "" {
		end = cfg.DayEnd
	}

	switch {
	case start == cfg.DayStart && end == cfg.DayEnd:
		// окно на весь день не несет ограничения
		return current, false

	case start == cfg.DayStart:
		// дома до end, затем на базе: прибытие
		return Availability{
			Status:      StatusArrival,
			StartHour:   end,
			EndHour:     cfg.DayEnd,
			IsAvailable: true,
			Source:      SourceBlockage,
		}, true

	case end == cfg.DayEnd:
		// на базе до start, затем дома: убытие
		return Availability{
			Status:      StatusDeparture,
			StartHour:   cfg.DayStart,
			EndHour:     start,
			IsAvailable: true,
			Source:      SourceBlockage,
		}, true

	default:
		// произвольное окно внутри дня: статус остается base, окно
		// присутствия сужается; вне окна вызывающий код считает
		// человека недоступным
		return Availability{
			Status:      StatusBase,
			StartHour:   start,
			EndHour:     end,
			IsAvailable: true,
			Source:      SourceBlockage,
		}, true
	}
}
