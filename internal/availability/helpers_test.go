package availability

import (
	"time"

	"attendance-bot/internal/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func activePerson(id uint, teamID uint) *models.Person {
	p := &models.Person{ID: id, ChatID: int64(id), FirstName: "Test", IsActive: true}
	if teamID != 0 {
		p.TeamID = &teamID
	}
	return p
}

func weekRotation(teamID uint, cycleStart time.Time, pattern ...string) *models.TeamRotation {
	return &models.TeamRotation{
		TeamID:        teamID,
		CycleStart:    cycleStart,
		PatternLength: len(pattern),
		Pattern:       pattern,
	}
}

func approvedAbsence(personID uint, start, end time.Time, reason string, createdAt time.Time) *models.Absence {
	return &models.Absence{
		PersonID:  personID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    models.AbsenceStatusApproved,
		CreatedAt: createdAt,
	}
}

func blockage(personID uint, day time.Time, start, end string) *models.HourlyBlockage {
	return &models.HourlyBlockage{
		PersonID:  personID,
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}
}

func resolverFor(
	rotations []*models.TeamRotation,
	absences []*models.Absence,
	blockages []*models.HourlyBlockage,
	snapshots []*models.PresenceSnapshot,
) *Resolver {
	return NewResolver(NewDataset(rotations, absences, blockages, snapshots), DefaultConfig())
}
