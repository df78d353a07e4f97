// internal/availability/dataset.go
package availability

import (
	"sort"
	"sync/atomic"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"
)

var datasetSeq uint64

type dayKey struct {
	personID uint
	day      string
}

// Dataset - проиндексированные входные коллекции. Строится один раз на
// пакет разрешений, после чего каждый поиск выполняется за O(1)
// (для отсутствий - за O(k) по интервалам конкретного человека).
// После построения Dataset не изменяется.
type Dataset struct {
	rotations    map[uint]*models.TeamRotation
	absences     map[uint][]*models.Absence
	blockages    map[dayKey]*models.HourlyBlockage
	snapshots    map[dayKey]*models.PresenceSnapshot
	hasSnapshots bool
	version      uint64
}

// NewDataset индексирует сырые коллекции. snapshots == nil означает, что
// слой ручных снимков не используется (контексты без ежедневных отметок).
func NewDataset(
	rotations []*models.TeamRotation,
	absences []*models.Absence,
	blockages []*models.HourlyBlockage,
	snapshots []*models.PresenceSnapshot,
) *Dataset {
	d := &Dataset{
		rotations:    make(map[uint]*models.TeamRotation, len(rotations)),
		absences:     make(map[uint][]*models.Absence),
		blockages:    make(map[dayKey]*models.HourlyBlockage, len(blockages)),
		snapshots:    make(map[dayKey]*models.PresenceSnapshot, len(snapshots)),
		hasSnapshots: snapshots != nil,
		version:      atomic.AddUint64(&datasetSeq, 1),
	}

	for _, rot := range rotations {
		if rot != nil {
			d.rotations[rot.TeamID] = rot
		}
	}

	for _, ab := range absences {
		if ab != nil {
			d.absences[ab.PersonID] = append(d.absences[ab.PersonID], ab)
		}
	}
	for _, list := range d.absences {
		sortAbsences(list)
	}

	for _, b := range blockages {
		if b != nil {
			d.blockages[dayKey{b.PersonID, dateutil.DateKey(b.Date)}] = b
		}
	}

	for _, s := range snapshots {
		if s != nil {
			d.snapshots[dayKey{s.PersonID, dateutil.DateKey(s.Date)}] = s
		}
	}

	return d
}

// Version - идентичность набора входных данных; меняется при каждой
// переиндексации и служит ключом инвалидации внешних кэшей.
func (d *Dataset) Version() uint64 {
	return d.version
}

// sortAbsences фиксирует порядок разбора пересекающихся заявок:
// более поздняя created_at, при равенстве - более длинная заявка,
// затем меньший ID как финальный стабильный ключ.
func sortAbsences(list []*models.Absence) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.SpanDays() != b.SpanDays() {
			return a.SpanDays() > b.SpanDays()
		}
		return a.ID < b.ID
	})
}

// absenceOn возвращает действующую одобренную заявку на дату
func (d *Dataset) absenceOn(personID uint, date time.Time) *models.Absence {
	for _, ab := range d.absences[personID] {
		if ab.IsApproved() && ab.Covers(date) {
			return ab
		}
	}
	return nil
}

func (d *Dataset) blockageOn(personID uint, date time.Time) *models.HourlyBlockage {
	return d.blockages[dayKey{personID, dateutil.DateKey(date)}]
}

func (d *Dataset) snapshotOn(personID uint, date time.Time) *models.PresenceSnapshot {
	return d.snapshots[dayKey{personID, dateutil.DateKey(date)}]
}
