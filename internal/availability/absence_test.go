package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-bot/internal/models"
)

// Сценарий: человек без ротации, одобренное отсутствие 10-12 марта
// с причиной gimel
func TestAbsenceOverridesDefault(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 12), "gimel", date(2024, 3, 1))
	r := resolverFor(nil, []*models.Absence{ab}, nil, nil)
	p := activePerson(1, 0)

	av := r.Effective(p, date(2024, 3, 11))
	assert.Equal(t, StatusHome, av.Status)
	assert.Equal(t, HomeGimel, av.HomeStatusType)
	assert.False(t, av.IsAvailable)
	assert.Equal(t, SourceAbsence, av.Source)

	// за пределами диапазона заявка не действует
	assert.Equal(t, StatusBase, r.Effective(p, date(2024, 3, 13)).Status)
	assert.Equal(t, StatusBase, r.Effective(p, date(2024, 3, 9)).Status)
}

func TestAbsenceInclusiveBounds(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 12), "leave", date(2024, 3, 1))
	r := resolverFor(nil, []*models.Absence{ab}, nil, nil)
	p := activePerson(1, 0)

	assert.Equal(t, StatusHome, r.Effective(p, date(2024, 3, 10)).Status)
	assert.Equal(t, StatusHome, r.Effective(p, date(2024, 3, 12)).Status)
}

func TestAbsencePendingAndDeniedIgnored(t *testing.T) {
	pending := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 12), "gimel", date(2024, 3, 1))
	pending.Status = models.AbsenceStatusPending
	denied := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 12), "gimel", date(2024, 3, 2))
	denied.Status = models.AbsenceStatusDenied

	r := resolverFor(nil, []*models.Absence{pending, denied}, nil, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 3, 11))
	assert.Equal(t, StatusBase, av.Status)
	assert.True(t, av.IsAvailable)
}

func TestAbsenceOverridesRotationBase(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "base")
	ab := approvedAbsence(1, date(2024, 4, 1), date(2024, 4, 3), "organization_days", date(2024, 3, 20))
	r := resolverFor([]*models.TeamRotation{rot}, []*models.Absence{ab}, nil, nil)

	av := r.Effective(activePerson(1, 7), date(2024, 4, 2))
	assert.Equal(t, StatusHome, av.Status)
	assert.Equal(t, HomeOrganizationDays, av.HomeStatusType)
}

// Пересекающиеся одобренные заявки - не ошибка: побеждает более поздняя
// created_at, при равенстве - более длинная заявка
func TestAbsenceTieBreakLatestCreatedWins(t *testing.T) {
	older := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 20), "gimel", date(2024, 2, 1))
	older.ID = 1
	newer := approvedAbsence(1, date(2024, 3, 12), date(2024, 3, 14), "absent", date(2024, 2, 15))
	newer.ID = 2

	r := resolverFor(nil, []*models.Absence{older, newer}, nil, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 3, 13))
	require.Equal(t, StatusHome, av.Status)
	assert.Equal(t, HomeAbsent, av.HomeStatusType, "должна победить более поздняя заявка")

	// дни, покрытые только старой заявкой, по-прежнему разрешаются по ней
	av = r.Effective(activePerson(1, 0), date(2024, 3, 18))
	assert.Equal(t, HomeGimel, av.HomeStatusType)
}

func TestAbsenceTieBreakLongestSpanOnEqualCreated(t *testing.T) {
	created := date(2024, 2, 1)
	short := approvedAbsence(1, date(2024, 3, 12), date(2024, 3, 13), "absent", created)
	short.ID = 1
	long := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 20), "gimel", created)
	long.ID = 2

	// порядок во входном срезе не должен влиять на результат
	for _, abs := range [][]*models.Absence{{short, long}, {long, short}} {
		r := resolverFor(nil, abs, nil, nil)
		av := r.Effective(activePerson(1, 0), date(2024, 3, 12))
		assert.Equal(t, HomeGimel, av.HomeStatusType)
	}
}

func TestHomeStatusForReason(t *testing.T) {
	cases := map[string]HomeStatusType{
		"gimel":             HomeGimel,
		"GIMEL":             HomeGimel,
		"absent":            HomeAbsent,
		"organization_days": HomeOrganizationDays,
		"not_in_shamp":      HomeNotInShamp,
		"vacation":          HomeLeaveShamp,
		"что-то новое":      HomeLeaveShamp,
		"":                  HomeLeaveShamp,
	}
	for reason, want := range cases {
		assert.Equal(t, want, homeStatusForReason(reason), "reason=%q", reason)
	}
}

func TestAbsenceSpanDays(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 12), "gimel", time.Time{})
	assert.Equal(t, 3, ab.SpanDays())

	single := approvedAbsence(1, date(2024, 3, 10), date(2024, 3, 10), "gimel", time.Time{})
	assert.Equal(t, 1, single.SpanDays())
}
