// internal/service/snapshot.go
package service

import (
	"fmt"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"
	"attendance-bot/pkg/dateutil"

	"github.com/sirupsen/logrus"
)

type SnapshotService struct {
	snapshotRepo repository.PresenceSnapshotRepository
	personRepo   repository.PersonRepository
	logger       *logrus.Logger
}

func NewSnapshotService(snapshotRepo repository.PresenceSnapshotRepository, personRepo repository.PersonRepository) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		personRepo:   personRepo,
		logger:       logrus.New(),
	}
}

// Mark фиксирует ручную отметку присутствия на дату. Отметка
// авторитетна: она перекрывает ротацию, отсутствия и блокировки.
// Новые отметки всегда пишутся в формате v2.
func (s *SnapshotService) Mark(personID uint, date time.Time, state, homeStatusType, startTime, endTime string) (*models.PresenceSnapshot, error) {
	person, err := s.personRepo.GetByID(personID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска человека: %v", err)
	}
	if person == nil {
		return nil, fmt.Errorf("человек не найден")
	}

	if startTime != "" && !dateutil.IsValidClock(startTime) {
		return nil, fmt.Errorf("время должно быть в формате ЧЧ:ММ")
	}
	if endTime != "" && !dateutil.IsValidClock(endTime) {
		return nil, fmt.Errorf("время должно быть в формате ЧЧ:ММ")
	}

	snapshot := &models.PresenceSnapshot{
		PersonID:       personID,
		Date:           dateutil.DateOnly(date),
		V2State:        state,
		HomeStatusType: homeStatusType,
		StartTime:      startTime,
		EndTime:        endTime,
	}

	if err := s.snapshotRepo.Save(snapshot); err != nil {
		return nil, fmt.Errorf("ошибка сохранения отметки: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"person_id": personID,
		"date":      dateutil.DateKey(snapshot.Date),
		"state":     state,
	}).Info("Presence snapshot recorded")

	return snapshot, nil
}

// ListForPerson возвращает отметки человека
func (s *SnapshotService) ListForPerson(personID uint) ([]*models.PresenceSnapshot, error) {
	return s.snapshotRepo.GetByPerson(personID)
}

// Delete удаляет отметку; дата снова разрешается расчетными слоями
func (s *SnapshotService) Delete(id uint) error {
	return s.snapshotRepo.Delete(id)
}
