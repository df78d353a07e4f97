// internal/service/rotation.go
package service

import (
	"fmt"
	"strings"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type RotationService struct {
	rotationRepo repository.TeamRotationRepository
	teamRepo     repository.TeamRepository
	validate     *validator.Validate
	logger       *logrus.Logger
}

type rotationInput struct {
	TeamID     uint      `validate:"required"`
	CycleStart time.Time `validate:"required"`
	Pattern    []string  `validate:"required,min=1,max=366,dive,oneof=base home unavailable"`
}

func NewRotationService(rotationRepo repository.TeamRotationRepository, teamRepo repository.TeamRepository) *RotationService {
	return &RotationService{
		rotationRepo: rotationRepo,
		teamRepo:     teamRepo,
		validate:     validator.New(),
		logger:       logrus.New(),
	}
}

// SetRotation задает ротацию команды. Паттерн - список статусов по дням
// цикла, например: base,base,base,base,base,home,home
func (s *RotationService) SetRotation(teamID uint, cycleStart time.Time, pattern []string) (*models.TeamRotation, error) {
	for i := range pattern {
		pattern[i] = strings.ToLower(strings.TrimSpace(pattern[i]))
	}

	in := rotationInput{TeamID: teamID, CycleStart: cycleStart, Pattern: pattern}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("некорректная ротация: допустимы статусы base, home, unavailable")
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска команды: %v", err)
	}
	if team == nil {
		return nil, fmt.Errorf("команда не найдена")
	}

	rotation := &models.TeamRotation{
		TeamID:        teamID,
		CycleStart:    cycleStart,
		PatternLength: len(pattern),
		Pattern:       pattern,
	}

	if err := s.rotationRepo.Upsert(rotation); err != nil {
		return nil, fmt.Errorf("ошибка сохранения ротации: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"team_id": teamID,
		"length":  len(pattern),
	}).Info("Team rotation updated")

	return rotation, nil
}

// GetRotation возвращает ротацию команды (nil, если не задана)
func (s *RotationService) GetRotation(teamID uint) (*models.TeamRotation, error) {
	return s.rotationRepo.GetByTeam(teamID)
}

// GetAll возвращает ротации всех команд
func (s *RotationService) GetAll() ([]*models.TeamRotation, error) {
	return s.rotationRepo.GetAll()
}

// DeleteRotation убирает ротацию команды; люди команды возвращаются
// к статусу по умолчанию
func (s *RotationService) DeleteRotation(teamID uint) error {
	return s.rotationRepo.Delete(teamID)
}

// FormatRotation форматирует ротацию для вывода в чат
func (s *RotationService) FormatRotation(rotation *models.TeamRotation) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("🔄 Ротация команды #%d", rotation.TeamID))
	lines = append(lines, fmt.Sprintf("📅 Начало цикла: %s", rotation.CycleStart.Format("02.01.2006")))
	lines = append(lines, fmt.Sprintf("📏 Длина цикла: %d дн.", rotation.PatternLength))

	var days []string
	for i, day := range rotation.Pattern {
		emoji := "🏠"
		if day == models.RotationDayBase {
			emoji = "🪖"
		} else if day == models.RotationDayUnavailable {
			emoji = "⛔"
		}
		days = append(days, fmt.Sprintf("%d:%s", i+1, emoji))
	}
	lines = append(lines, strings.Join(days, " "))

	return strings.Join(lines, "\n")
}
