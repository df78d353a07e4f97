package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"attendance-bot/internal/models"
)

func snap(personID uint, day time.Time, s models.PresenceSnapshot) *models.PresenceSnapshot {
	s.PersonID = personID
	s.Date = day
	return &s
}

func TestSnapshotNormalization(t *testing.T) {
	cfg := DefaultConfig()
	day := date(2024, 6, 1)

	cases := []struct {
		name string
		in   models.PresenceSnapshot
		want Availability
	}{
		{
			name: "legacy string home",
			in:   models.PresenceSnapshot{Status: "home"},
			want: Availability{
				Status: StatusHome, StartHour: "00:00", EndHour: "23:59",
				HomeStatusType: HomeLeaveShamp, IsAvailable: false, Source: SourceSnapshot,
			},
		},
		{
			name: "v2 home with type",
			in:   models.PresenceSnapshot{V2State: "home", HomeStatusType: "gimel"},
			want: Availability{
				Status: StatusHome, StartHour: "00:00", EndHour: "23:59",
				HomeStatusType: HomeGimel, IsAvailable: false, Source: SourceSnapshot,
			},
		},
		{
			name: "v2 wins over legacy string",
			in:   models.PresenceSnapshot{Status: "home", V2State: "base"},
			want: Availability{
				Status: StatusBase, StartHour: "00:00", EndHour: "23:59",
				IsAvailable: true, Source: SourceSnapshot,
			},
		},
		{
			name: "hebrew base label",
			in:   models.PresenceSnapshot{Status: "בסיס"},
			want: Availability{
				Status: StatusBase, StartHour: "00:00", EndHour: "23:59",
				IsAvailable: true, Source: SourceSnapshot,
			},
		},
		{
			name: "hebrew home label",
			in:   models.PresenceSnapshot{Status: "בית"},
			want: Availability{
				Status: StatusHome, StartHour: "00:00", EndHour: "23:59",
				HomeStatusType: HomeLeaveShamp, IsAvailable: false, Source: SourceSnapshot,
			},
		},
		{
			name: "base with late start becomes arrival",
			in:   models.PresenceSnapshot{V2State: "base", StartTime: "09:30"},
			want: Availability{
				Status: StatusArrival, StartHour: "09:30", EndHour: "23:59",
				IsAvailable: true, Source: SourceSnapshot,
			},
		},
		{
			name: "base with early end becomes departure",
			in:   models.PresenceSnapshot{V2State: "base", EndTime: "15:00"},
			want: Availability{
				Status: StatusDeparture, StartHour: "00:00", EndHour: "15:00",
				IsAvailable: true, Source: SourceSnapshot,
			},
		},
		{
			name: "base with both hints keeps bounded window",
			in:   models.PresenceSnapshot{V2State: "base", StartTime: "09:00", EndTime: "15:00"},
			want: Availability{
				Status: StatusBase, StartHour: "09:00", EndHour: "15:00",
				IsAvailable: true, Source: SourceSnapshot,
			},
		},
		{
			name: "sentinel hints mean no constraint",
			in:   models.PresenceSnapshot{V2State: "base", StartTime: "00:00", EndTime: "23:59"},
			want: Availability{
				Status: StatusBase, StartHour: "00:00", EndHour: "23:59",
				IsAvailable: true, Source: SourceSnapshot,
			},
		},
		{
			name: "sick day",
			in:   models.PresenceSnapshot{V2State: "sick"},
			want: Availability{
				Status: StatusSick, StartHour: "00:00", EndHour: "23:59",
				IsAvailable: false, Source: SourceSnapshot,
			},
		},
		{
			name: "unknown label passes through as raw",
			in:   models.PresenceSnapshot{Status: "mystery-state"},
			want: Availability{
				Status: StatusUnavailable, StartHour: "00:00", EndHour: "23:59",
				IsAvailable: false, RawLabel: "mystery-state", Source: SourceSnapshot,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := snap(1, day, tc.in)
			assert.Equal(t, tc.want, normalizeSnapshot(s, cfg))
		})
	}
}

// Снимок на точную дату перекрывает все расчетные слои
func TestSnapshotOverridesAllLayers(t *testing.T) {
	rot := weekRotation(7, date(2024, 1, 1), "base")
	ab := approvedAbsence(1, date(2024, 6, 1), date(2024, 6, 3), "gimel", date(2024, 5, 1))
	b := blockage(1, date(2024, 6, 1), "00:00", "14:00")
	s := snap(1, date(2024, 6, 1), models.PresenceSnapshot{V2State: "base"})

	r := resolverFor(
		[]*models.TeamRotation{rot},
		[]*models.Absence{ab},
		[]*models.HourlyBlockage{b},
		[]*models.PresenceSnapshot{s},
	)

	av := r.Effective(activePerson(1, 7), date(2024, 6, 1))
	assert.Equal(t, StatusBase, av.Status)
	assert.Equal(t, SourceSnapshot, av.Source)

	// на следующий день снимка нет - действует отсутствие
	av = r.Effective(activePerson(1, 7), date(2024, 6, 2))
	assert.Equal(t, StatusHome, av.Status)
	assert.Equal(t, SourceAbsence, av.Source)
}

// Резолвер без слоя снимков: nil вместо коллекции отключает слой
func TestResolverWithoutSnapshotLayer(t *testing.T) {
	ab := approvedAbsence(1, date(2024, 6, 1), date(2024, 6, 3), "gimel", date(2024, 5, 1))
	r := resolverFor(nil, []*models.Absence{ab}, nil, nil)

	av := r.Effective(activePerson(1, 0), date(2024, 6, 1))
	assert.Equal(t, StatusHome, av.Status)
	assert.Equal(t, SourceAbsence, av.Source)
}
