package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"attendance-bot/internal/models"
)

// Сценарий: ротация дает "база" каждый день, блокировка 00:00-14:00 -
// прибытие в 14:00
func TestBlockageArrival(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "base")
	b := blockage(1, date(2024, 4, 5), "00:00", "14:00")
	r := resolverFor([]*models.TeamRotation{rot}, nil, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 7), date(2024, 4, 5))
	assert.Equal(t, StatusArrival, av.Status)
	assert.Equal(t, "14:00", av.StartHour)
	assert.Equal(t, "23:59", av.EndHour)
	assert.True(t, av.IsAvailable)
	assert.Equal(t, SourceBlockage, av.Source)
}

func TestBlockageDeparture(t *testing.T) {
	b := blockage(1, date(2024, 4, 5), "16:30", "23:59")
	r := resolverFor(nil, nil, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 4, 5))
	assert.Equal(t, StatusDeparture, av.Status)
	assert.Equal(t, "00:00", av.StartHour)
	assert.Equal(t, "16:30", av.EndHour)
	assert.True(t, av.IsAvailable)
}

func TestBlockageBoundedWindow(t *testing.T) {
	b := blockage(1, date(2024, 4, 5), "09:00", "13:00")
	r := resolverFor(nil, nil, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 4, 5))
	assert.Equal(t, StatusBase, av.Status)
	assert.Equal(t, "09:00", av.StartHour)
	assert.Equal(t, "13:00", av.EndHour)
	assert.Equal(t, SourceBlockage, av.Source)
}

func TestBlockageFullDayWindowIsNoop(t *testing.T) {
	b := blockage(1, date(2024, 4, 5), "00:00", "23:59")
	r := resolverFor(nil, nil, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 4, 5))
	assert.Equal(t, StatusBase, av.Status)
	assert.Equal(t, SourceRotation, av.Source)
}

func TestBlockageExactDateOnly(t *testing.T) {
	b := blockage(1, date(2024, 4, 5), "00:00", "14:00")
	r := resolverFor(nil, nil, []*models.HourlyBlockage{b}, nil)

	assert.Equal(t, StatusBase, r.Effective(activePerson(1, 0), date(2024, 4, 4)).Status)
	assert.Equal(t, StatusBase, r.Effective(activePerson(1, 0), date(2024, 4, 6)).Status)
}

// Отсутствие приоритетнее блокировки: блокировка уточняет только день
// присутствия и не трогает домашний день
func TestBlockageDoesNotApplyToHomeDay(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 4, 5), date(2024, 4, 7), "gimel", date(2024, 4, 1))
	b := blockage(1, date(2024, 4, 5), "00:00", "14:00")
	r := resolverFor(nil, []*models.Absence{ab}, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 4, 5))
	assert.Equal(t, StatusHome, av.Status)
	assert.Equal(t, HomeGimel, av.HomeStatusType)
	assert.Equal(t, SourceAbsence, av.Source)
}

func TestBlockageDoesNotApplyToRotationHomeDay(t *testing.T) {
	rot := weekRotation(7, date(2024, 4, 5), "home")
	b := blockage(1, date(2024, 4, 5), "10:00", "12:00")
	r := resolverFor([]*models.TeamRotation{rot}, nil, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 7), date(2024, 4, 5))
	assert.Equal(t, StatusHome, av.Status)
	assert.Equal(t, SourceRotation, av.Source)
}

func TestBlockageEmptyTimesTreatedAsSentinels(t *testing.T) {
	b := blockage(1, date(2024, 4, 5), "", "14:00")
	r := resolverFor(nil, nil, []*models.HourlyBlockage{b}, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 4, 5))
	assert.Equal(t, StatusArrival, av.Status)
	assert.Equal(t, "14:00", av.StartHour)
}
