// internal/service/blockage.go
package service

import (
	"fmt"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"
	"attendance-bot/pkg/dateutil"

	"github.com/sirupsen/logrus"
)

type BlockageService struct {
	blockageRepo repository.HourlyBlockageRepository
	personRepo   repository.PersonRepository
	logger       *logrus.Logger
}

func NewBlockageService(blockageRepo repository.HourlyBlockageRepository, personRepo repository.PersonRepository) *BlockageService {
	return &BlockageService{
		blockageRepo: blockageRepo,
		personRepo:   personRepo,
		logger:       logrus.New(),
	}
}

// Record фиксирует частичное отсутствие на один день. Пустое время
// начала означает 00:00, пустое время конца - 23:59.
func (s *BlockageService) Record(personID uint, date time.Time, startTime, endTime, reason string) (*models.HourlyBlockage, error) {
	if startTime == "" {
		startTime = "00:00"
	}
	if endTime == "" {
		endTime = "23:59"
	}

	if !dateutil.IsValidClock(startTime) || !dateutil.IsValidClock(endTime) {
		return nil, fmt.Errorf("время должно быть в формате ЧЧ:ММ")
	}
	if !dateutil.ClockBefore(startTime, endTime) {
		return nil, fmt.Errorf("время начала должно быть раньше времени конца")
	}

	person, err := s.personRepo.GetByID(personID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска человека: %v", err)
	}
	if person == nil {
		return nil, fmt.Errorf("человек не найден")
	}

	blockage := &models.HourlyBlockage{
		PersonID:  personID,
		Date:      dateutil.DateOnly(date),
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    reason,
	}

	if err := s.blockageRepo.Create(blockage); err != nil {
		return nil, fmt.Errorf("ошибка сохранения блокировки: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"person_id": personID,
		"date":      dateutil.DateKey(blockage.Date),
		"window":    startTime + "-" + endTime,
	}).Info("Hourly blockage recorded")

	return blockage, nil
}

// ListForPerson возвращает блокировки человека
func (s *BlockageService) ListForPerson(personID uint) ([]*models.HourlyBlockage, error) {
	return s.blockageRepo.GetByPerson(personID)
}

// Delete удаляет блокировку
func (s *BlockageService) Delete(id uint) error {
	return s.blockageRepo.Delete(id)
}
