// internal/availability/timeline.go
package availability

import (
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"
)

// PeriodType - двоичная классификация сжатого периода
type PeriodType string

const (
	PeriodHome PeriodType = "home"
	PeriodBase PeriodType = "base"
)

// Period - непрерывный отрезок дней одной классификации с разрешенным
// репрезентативным временем перехода. Домашние периоды несут время и
// дату убытия, базовые - время и дату возвращения.
type Period struct {
	Type           PeriodType     `json:"type"`
	StartDate      time.Time      `json:"start_date"`
	EndDate        time.Time      `json:"end_date"`
	DurationDays   int            `json:"duration_days"`
	DaysUntil      int            `json:"days_until"`
	HomeStatusType HomeStatusType `json:"home_status_type,omitempty"`

	DepartureTime string    `json:"departure_time,omitempty"`
	DepartureDate time.Time `json:"departure_date,omitempty"`
	ReturnTime    string    `json:"return_time,omitempty"`
	ReturnDate    time.Time `json:"return_date,omitempty"`
}

// bucketOf сводит статус дня к двоичной классификации периода.
// День убытия открывает домашний период, день прибытия - базовый.
func bucketOf(av Availability) PeriodType {
	switch av.Status {
	case StatusDeparture:
		return PeriodHome
	case StatusArrival:
		return PeriodBase
	}
	if !av.IsAvailable || av.Status == StatusHome || av.Status == StatusLeave {
		return PeriodHome
	}
	return PeriodBase
}

// awayForBoundary - считается ли день "вне базы" при поиске границ
func awayForBoundary(av Availability) bool {
	return !av.IsAvailable || av.Status == StatusHome || av.Status == StatusLeave
}

// isArrivalBoundary проверяет, является ли день i днем прибытия:
// собственное время начала отлично от сентинеля, либо предыдущий день
// проведен вне базы (и не был частичным возвращением с нестандартным
// временем конца).
func isArrivalBoundary(days []Availability, i int, cfg Config) bool {
	d := days[i]
	if d.StartHour != "" && d.StartHour != cfg.DayStart {
		return true
	}
	if i == 0 {
		return false
	}
	prev := days[i-1]
	if !awayForBoundary(prev) {
		return false
	}
	if prev.EndHour != "" && prev.EndHour != cfg.DayEnd {
		return false
	}
	return true
}

// isDepartureBoundary проверяет, является ли день i днем убытия:
// собственное время конца отлично от сентинеля, либо следующий день
// проведен вне базы (и не является частичным убытием с нестандартным
// временем начала).
func isDepartureBoundary(days []Availability, i int, cfg Config) bool {
	d := days[i]
	if d.EndHour != "" && d.EndHour != cfg.DayEnd {
		return true
	}
	if i == len(days)-1 {
		return false
	}
	next := days[i+1]
	if !awayForBoundary(next) {
		return false
	}
	if next.StartHour != "" && next.StartHour != cfg.DayStart {
		return false
	}
	return true
}

// Compress разворачивает диапазон дат в посуточные статусы и сжимает
// последовательные дни одной классификации в периоды. Периоды
// непрерывны, не пересекаются и покрывают диапазон ровно один раз.
// today задается явно и используется только для DaysUntil.
func (r *Resolver) Compress(person *models.Person, from, to, today time.Time) []Period {
	from = dateutil.DateOnly(from)
	to = dateutil.DateOnly(to)
	today = dateutil.DateOnly(today)

	if to.Before(from) {
		return []Period{}
	}

	total := dateutil.DaysBetween(from, to) + 1
	days := make([]Availability, 0, total)
	for i := 0; i < total; i++ {
		days = append(days, r.Effective(person, from.AddDate(0, 0, i)))
	}

	periods := []Period{}
	var cur *Period
	for i, av := range days {
		date := from.AddDate(0, 0, i)
		bucket := bucketOf(av)

		if cur != nil && cur.Type == bucket {
			cur.EndDate = date
			if cur.HomeStatusType == "" {
				cur.HomeStatusType = av.HomeStatusType
			}
			continue
		}

		if cur != nil {
			periods = append(periods, *cur)
		}
		cur = &Period{
			Type:           bucket,
			StartDate:      date,
			EndDate:        date,
			HomeStatusType: av.HomeStatusType,
		}
	}
	if cur != nil {
		periods = append(periods, *cur)
	}

	for i := range periods {
		p := &periods[i]
		p.DurationDays = dateutil.DaysBetween(p.StartDate, p.EndDate) + 1
		p.DaysUntil = dateutil.DaysBetween(today, p.StartDate)
	}

	r.resolveTransitions(periods, days, from)

	return periods
}

// resolveTransitions заполняет репрезентативное время перехода каждого
// периода. Время берется из первого дня периода; сентинель времени
// заменяется принятым по умолчанию временем убытия/возвращения. Дата
// перехода - первый день периода, прошедший проверку границы, иначе
// первый день периода.
func (r *Resolver) resolveTransitions(periods []Period, days []Availability, from time.Time) {
	cfg := r.cfg
	for i := range periods {
		p := &periods[i]
		first := dateutil.DaysBetween(from, p.StartDate)
		last := dateutil.DaysBetween(from, p.EndDate)
		firstDay := days[first]

		switch p.Type {
		case PeriodHome:
			t := firstDay.EndHour
			if t == "" || t == cfg.DayEnd {
				t = cfg.DefaultDepartureTime
			}
			p.DepartureTime = t
			p.DepartureDate = p.StartDate
			for j := first; j <= last; j++ {
				if isDepartureBoundary(days, j, cfg) {
					p.DepartureDate = from.AddDate(0, 0, j)
					break
				}
			}

		case PeriodBase:
			t := firstDay.StartHour
			if t == "" || t == cfg.DayStart {
				t = cfg.DefaultReturnTime
			}
			p.ReturnTime = t
			p.ReturnDate = p.StartDate
			for j := first; j <= last; j++ {
				if isArrivalBoundary(days, j, cfg) {
					p.ReturnDate = from.AddDate(0, 0, j)
					break
				}
			}
		}
	}
}
