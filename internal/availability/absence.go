// internal/availability/absence.go
package availability

import (
	"strings"
	"time"

	"attendance-bot/internal/models"
)

// reasonHomeStatus - фиксированная карта причин отсутствия в
// подклассификацию домашнего статуса
var reasonHomeStatus = map[string]HomeStatusType{
	"gimel":             HomeGimel,
	"absent":            HomeAbsent,
	"organization_days": HomeOrganizationDays,
	"not_in_shamp":      HomeNotInShamp,
	"leave":             HomeLeaveShamp,
	"vacation":          HomeLeaveShamp,
	"shamp":             HomeLeaveShamp,
}

// homeStatusForReason сводит причину к категории; неизвестные причины
// попадают в общую категорию leave_shamp
func homeStatusForReason(reason string) HomeStatusType {
	if hst, ok := reasonHomeStatus[strings.ToLower(strings.TrimSpace(reason))]; ok {
		return hst
	}
	return HomeLeaveShamp
}

// absenceOverlay перекрывает день одобренной заявкой на отсутствие.
// Заявка действует целыми днями: весь день дома, недоступен.
type absenceOverlay struct {
	data *Dataset
}

func (o absenceOverlay) source() Source {
	return SourceAbsence
}

func (o absenceOverlay) apply(person *models.Person, date time.Time, current Availability, cfg Config) (Availability, bool) {
	ab := o.data.absenceOn(person.ID, date)
	if ab == nil {
		return current, false
	}

	return Availability{
		Status:         StatusHome,
		StartHour:      cfg.DayStart,
		EndHour:        cfg.DayEnd,
		HomeStatusType: homeStatusForReason(ab.Reason),
		IsAvailable:    false,
		Source:         SourceAbsence,
	}, true
}
