// internal/service/absence.go
package service

import (
	"fmt"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"
	"attendance-bot/pkg/dateutil"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type AbsenceService struct {
	absenceRepo repository.AbsenceRepository
	personRepo  repository.PersonRepository
	validate    *validator.Validate
	logger      *logrus.Logger
}

// absenceInput - валидация на границе создания записи: движок расчета
// не перепроверяет корректность диапазона при каждом разрешении
type absenceInput struct {
	PersonID  uint      `validate:"required"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtefield=StartDate"`
	Reason    string    `validate:"required,max=100"`
}

func NewAbsenceService(absenceRepo repository.AbsenceRepository, personRepo repository.PersonRepository) *AbsenceService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AbsenceService{
		absenceRepo: absenceRepo,
		personRepo:  personRepo,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Request создает заявку на отсутствие в статусе pending
func (s *AbsenceService) Request(personID uint, startDate, endDate time.Time, reason string) (*models.Absence, error) {
	startDate = dateutil.DateOnly(startDate)
	endDate = dateutil.DateOnly(endDate)

	in := absenceInput{PersonID: personID, StartDate: startDate, EndDate: endDate, Reason: reason}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("некорректная заявка: дата окончания не может быть раньше даты начала")
	}

	person, err := s.personRepo.GetByID(personID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска человека: %v", err)
	}
	if person == nil {
		return nil, fmt.Errorf("человек не найден")
	}

	absence := &models.Absence{
		PersonID:  personID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    models.AbsenceStatusPending,
	}

	if err := s.absenceRepo.Create(absence); err != nil {
		return nil, fmt.Errorf("ошибка создания заявки: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"person_id": personID,
		"start":     startDate.Format(dateutil.DayKeyLayout),
		"end":       endDate.Format(dateutil.DayKeyLayout),
		"reason":    reason,
	}).Info("Absence requested")

	return absence, nil
}

// Approve одобряет заявку. Пересечение с другой одобренной заявкой не
// является ошибкой: конфликт детерминированно разрешается движком.
func (s *AbsenceService) Approve(id uint) (*models.Absence, error) {
	return s.setStatus(id, models.AbsenceStatusApproved)
}

// Deny отклоняет заявку; запись сохраняется как метаданные
func (s *AbsenceService) Deny(id uint) (*models.Absence, error) {
	return s.setStatus(id, models.AbsenceStatusDenied)
}

func (s *AbsenceService) setStatus(id uint, status string) (*models.Absence, error) {
	absence, err := s.absenceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска заявки: %v", err)
	}
	if absence == nil {
		return nil, fmt.Errorf("заявка не найдена")
	}

	absence.Status = status
	if err := s.absenceRepo.Update(absence); err != nil {
		return nil, fmt.Errorf("ошибка обновления заявки: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":     id,
		"status": status,
	}).Info("Absence status changed")

	return absence, nil
}

// ListForPerson возвращает все заявки человека
func (s *AbsenceService) ListForPerson(personID uint) ([]*models.Absence, error) {
	return s.absenceRepo.GetByPerson(personID)
}

// ListPending возвращает заявки, ожидающие решения
func (s *AbsenceService) ListPending() ([]*models.Absence, error) {
	return s.absenceRepo.GetByStatus(models.AbsenceStatusPending)
}

// FormatAbsence форматирует заявку для вывода в чат
func (s *AbsenceService) FormatAbsence(absence *models.Absence) string {
	statusEmoji := map[string]string{
		models.AbsenceStatusPending:  "⏳",
		models.AbsenceStatusApproved: "✅",
		models.AbsenceStatusDenied:   "❌",
	}

	return fmt.Sprintf("%s #%d: %s — %s (%s)",
		statusEmoji[absence.Status],
		absence.ID,
		absence.StartDate.Format("02.01.2006"),
		absence.EndDate.Format("02.01.2006"),
		absence.Reason,
	)
}
