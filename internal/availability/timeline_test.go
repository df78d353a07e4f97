package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-bot/internal/models"
)

// Сценарий: дни 1-2 дома, дни 3-5 на базе - два периода
func TestCompressTwoPeriods(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 5, 1), date(2024, 5, 2), "gimel", date(2024, 4, 1))
	r := resolverFor(nil, []*models.Absence{ab}, nil, nil)

	periods := r.Compress(activePerson(1, 0), date(2024, 5, 1), date(2024, 5, 5), date(2024, 4, 28))

	require.Len(t, periods, 2)

	assert.Equal(t, PeriodHome, periods[0].Type)
	assert.Equal(t, date(2024, 5, 1), periods[0].StartDate)
	assert.Equal(t, date(2024, 5, 2), periods[0].EndDate)
	assert.Equal(t, 2, periods[0].DurationDays)
	assert.Equal(t, 3, periods[0].DaysUntil)
	assert.Equal(t, HomeGimel, periods[0].HomeStatusType)

	assert.Equal(t, PeriodBase, periods[1].Type)
	assert.Equal(t, date(2024, 5, 3), periods[1].StartDate)
	assert.Equal(t, date(2024, 5, 5), periods[1].EndDate)
	assert.Equal(t, 3, periods[1].DurationDays)
	assert.Equal(t, 5, periods[1].DaysUntil)
}

func TestCompressEmptyRange(t *testing.T) {
	r := resolverFor(nil, nil, nil, nil)
	periods := r.Compress(activePerson(1, 0), date(2024, 5, 5), date(2024, 5, 1), date(2024, 5, 1))
	assert.Empty(t, periods)
}

func TestCompressSingleDay(t *testing.T) {
	r := resolverFor(nil, nil, nil, nil)
	periods := r.Compress(activePerson(1, 0), date(2024, 5, 1), date(2024, 5, 1), date(2024, 5, 1))

	require.Len(t, periods, 1)
	assert.Equal(t, PeriodBase, periods[0].Type)
	assert.Equal(t, 1, periods[0].DurationDays)
	assert.Equal(t, 0, periods[0].DaysUntil)
}

// Свойство покрытия: сумма длительностей равна длине диапазона, периоды
// идут подряд без дыр и пересечений
func TestCompressRangeCoverage(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "base", "base", "base", "base", "base", "home", "home")
	ab := approvedAbsence(1, date(2024, 3, 6), date(2024, 3, 12), "gimel", date(2024, 2, 1))
	b := blockage(1, date(2024, 3, 20), "00:00", "14:00")

	r := resolverFor([]*models.TeamRotation{rot}, []*models.Absence{ab}, []*models.HourlyBlockage{b}, nil)

	from, to := date(2024, 3, 1), date(2024, 3, 31)
	periods := r.Compress(activePerson(1, 7), from, to, date(2024, 3, 1))

	total := 0
	for i, p := range periods {
		total += p.DurationDays
		if i > 0 {
			prev := periods[i-1]
			assert.Equal(t, prev.EndDate.AddDate(0, 0, 1), p.StartDate, "периоды должны стыковаться без дыр")
			assert.NotEqual(t, prev.Type, p.Type, "соседние периоды должны иметь разную классификацию")
		}
	}
	assert.Equal(t, 31, total)
	assert.Equal(t, from, periods[0].StartDate)
	assert.Equal(t, to, periods[len(periods)-1].EndDate)
}

func TestCompressIdempotence(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "base", "home")
	r := resolverFor([]*models.TeamRotation{rot}, nil, nil, nil)
	p := activePerson(1, 7)

	first := r.Compress(p, date(2024, 3, 1), date(2024, 3, 14), date(2024, 3, 1))
	second := r.Compress(p, date(2024, 3, 1), date(2024, 3, 14), date(2024, 3, 1))
	assert.Equal(t, first, second)
}

// День убытия открывает домашний период, день прибытия - базовый
func TestCompressDepartureAndArrivalBuckets(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "base")
	dep := blockage(1, date(2024, 5, 3), "15:00", "23:59")
	arr := blockage(1, date(2024, 5, 6), "00:00", "09:00")
	ab := approvedAbsence(1, date(2024, 5, 4), date(2024, 5, 5), "gimel", date(2024, 4, 1))

	r := resolverFor([]*models.TeamRotation{rot}, []*models.Absence{ab}, []*models.HourlyBlockage{dep, arr}, nil)

	periods := r.Compress(activePerson(1, 7), date(2024, 5, 1), date(2024, 5, 8), date(2024, 5, 1))

	require.Len(t, periods, 3)
	assert.Equal(t, PeriodBase, periods[0].Type)
	assert.Equal(t, date(2024, 5, 2), periods[0].EndDate)

	// домашний период начинается с дня убытия
	assert.Equal(t, PeriodHome, periods[1].Type)
	assert.Equal(t, date(2024, 5, 3), periods[1].StartDate)
	assert.Equal(t, date(2024, 5, 5), periods[1].EndDate)
	assert.Equal(t, "15:00", periods[1].DepartureTime)
	assert.Equal(t, date(2024, 5, 3), periods[1].DepartureDate)

	// базовый период начинается с дня прибытия
	assert.Equal(t, PeriodBase, periods[2].Type)
	assert.Equal(t, date(2024, 5, 6), periods[2].StartDate)
	assert.Equal(t, "09:00", periods[2].ReturnTime)
	assert.Equal(t, date(2024, 5, 6), periods[2].ReturnDate)
}

// Когда точное время перехода неизвестно, подставляются времена по
// умолчанию: 14:00 для убытия, 10:00 для возвращения
func TestCompressDefaultTransitionTimes(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 5, 3), date(2024, 5, 5), "gimel", date(2024, 4, 1))
	r := resolverFor(nil, []*models.Absence{ab}, nil, nil)

	periods := r.Compress(activePerson(1, 0), date(2024, 5, 1), date(2024, 5, 8), date(2024, 5, 1))

	require.Len(t, periods, 3)
	assert.Equal(t, "10:00", periods[0].ReturnTime)
	assert.Equal(t, "14:00", periods[1].DepartureTime)
	assert.Equal(t, "10:00", periods[2].ReturnTime)
}

func TestCompressAdoptsFirstHomeStatusType(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "home")
	ab := approvedAbsence(1, date(2024, 5, 2), date(2024, 5, 3), "gimel", date(2024, 4, 1))
	r := resolverFor([]*models.TeamRotation{rot}, []*models.Absence{ab}, nil, nil)

	// первый день дома по ротации (без подтипа), затем дни с gimel:
	// период принимает первый непустой подтип
	periods := r.Compress(activePerson(1, 7), date(2024, 5, 1), date(2024, 5, 3), date(2024, 5, 1))

	require.Len(t, periods, 1)
	assert.Equal(t, PeriodHome, periods[0].Type)
	assert.Equal(t, HomeGimel, periods[0].HomeStatusType)
}

func TestBoundaryDetection(t *testing.T) {
	cfg := DefaultConfig()
	home := Availability{Status: StatusHome, StartHour: "00:00", EndHour: "23:59", IsAvailable: false}
	base := Availability{Status: StatusBase, StartHour: "00:00", EndHour: "23:59", IsAvailable: true}
	arrival := Availability{Status: StatusArrival, StartHour: "09:00", EndHour: "23:59", IsAvailable: true}
	departure := Availability{Status: StatusDeparture, StartHour: "00:00", EndHour: "15:00", IsAvailable: true}

	t.Run("arrival by own hour", func(t *testing.T) {
		days := []Availability{base, arrival}
		assert.True(t, isArrivalBoundary(days, 1, cfg))
	})

	t.Run("arrival after home day", func(t *testing.T) {
		days := []Availability{home, base}
		assert.True(t, isArrivalBoundary(days, 1, cfg))
	})

	t.Run("no arrival after partial return", func(t *testing.T) {
		partialReturn := home
		partialReturn.EndHour = "18:00"
		days := []Availability{partialReturn, base}
		assert.False(t, isArrivalBoundary(days, 1, cfg))
	})

	t.Run("first day is not an arrival", func(t *testing.T) {
		days := []Availability{base, base}
		assert.False(t, isArrivalBoundary(days, 0, cfg))
	})

	t.Run("departure by own hour", func(t *testing.T) {
		days := []Availability{departure, home}
		assert.True(t, isDepartureBoundary(days, 0, cfg))
	})

	t.Run("departure before home day", func(t *testing.T) {
		days := []Availability{base, home}
		assert.True(t, isDepartureBoundary(days, 0, cfg))
	})

	t.Run("no departure before partial departure", func(t *testing.T) {
		partial := home
		partial.StartHour = "08:00"
		days := []Availability{base, partial}
		assert.False(t, isDepartureBoundary(days, 0, cfg))
	})

	t.Run("last day is not a departure", func(t *testing.T) {
		days := []Availability{base, base}
		assert.False(t, isDepartureBoundary(days, 1, cfg))
	})
}

func TestBucketOf(t *testing.T) {
	assert.Equal(t, PeriodHome, bucketOf(Availability{Status: StatusDeparture, IsAvailable: true}))
	assert.Equal(t, PeriodBase, bucketOf(Availability{Status: StatusArrival, IsAvailable: true}))
	assert.Equal(t, PeriodHome, bucketOf(Availability{Status: StatusHome}))
	assert.Equal(t, PeriodHome, bucketOf(Availability{Status: StatusLeave}))
	assert.Equal(t, PeriodHome, bucketOf(Availability{Status: StatusSick}))
	assert.Equal(t, PeriodBase, bucketOf(Availability{Status: StatusBase, IsAvailable: true}))
}

func TestCompressInactivePersonAllBase(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 5, 1), date(2024, 5, 5), "gimel", date(2024, 4, 1))
	r := resolverFor(nil, []*models.Absence{ab}, nil, nil)

	p := activePerson(1, 0)
	p.IsActive = false

	periods := r.Compress(p, date(2024, 5, 1), date(2024, 5, 7), date(2024, 5, 1))
	require.Len(t, periods, 1)
	assert.Equal(t, PeriodBase, periods[0].Type)
	assert.Equal(t, 7, periods[0].DurationDays)
}

func TestCompressMalformedRotationDayDoesNotAbort(t *testing.T) {
	rot := &models.TeamRotation{TeamID: 7, CycleStart: date(2024, 1, 1), PatternLength: 3, Pattern: []string{"home"}}
	r := resolverFor([]*models.TeamRotation{rot}, nil, nil, nil)

	// некорректная ротация деградирует до базы, сжатие не прерывается
	periods := r.Compress(activePerson(1, 7), date(2024, 5, 1), date(2024, 5, 10), date(2024, 5, 1))
	require.Len(t, periods, 1)
	assert.Equal(t, PeriodBase, periods[0].Type)
	assert.Equal(t, 10, periods[0].DurationDays)
}
