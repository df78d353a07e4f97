package repository

import (
	"errors"

	"attendance-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TeamRotationRepository interface {
	Upsert(rotation *models.TeamRotation) error
	GetByTeam(teamID uint) (*models.TeamRotation, error)
	GetAll() ([]*models.TeamRotation, error)
	Delete(teamID uint) error
}

type GormTeamRotationRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormTeamRotationRepository(db *gorm.DB) (*GormTeamRotationRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.TeamRotation{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate team_rotations table")
		return nil, err
	}

	logger.Info("Team rotation repository initialized")

	return &GormTeamRotationRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert создает ротацию команды или заменяет существующую:
// у команды может быть только одна действующая ротация
func (r *GormTeamRotationRepository) Upsert(rotation *models.TeamRotation) error {
	r.logger.WithFields(logrus.Fields{
		"team_id":        rotation.TeamID,
		"pattern_length": rotation.PatternLength,
	}).Info("Saving team rotation")

	if !rotation.IsValid() {
		r.logger.WithField("team_id", rotation.TeamID).Warn("Invalid team rotation data")
		return errors.New("некорректные данные ротации")
	}

	existing, err := r.GetByTeam(rotation.TeamID)
	if err != nil {
		r.logger.WithError(err).Error("Failed to check rotation existence")
		return err
	}

	if existing != nil {
		rotation.ID = existing.ID
		rotation.CreatedAt = existing.CreatedAt
	}

	if err := r.db.Save(rotation).Error; err != nil {
		r.logger.WithError(err).Error("Failed to save team rotation")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":      rotation.ID,
		"team_id": rotation.TeamID,
	}).Info("Team rotation saved successfully")

	return nil
}

func (r *GormTeamRotationRepository) GetByTeam(teamID uint) (*models.TeamRotation, error) {
	var rotation models.TeamRotation
	result := r.db.Where("team_id = ?", teamID).First(&rotation)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("team_id", teamID).Debug("Team rotation not found")
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get team rotation")
		return nil, result.Error
	}

	return &rotation, nil
}

func (r *GormTeamRotationRepository) GetAll() ([]*models.TeamRotation, error) {
	var rotations []*models.TeamRotation
	result := r.db.Order("team_id ASC").Find(&rotations)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all team rotations")
		return nil, result.Error
	}

	r.logger.WithField("count", len(rotations)).Debug("Retrieved all team rotations")
	return rotations, nil
}

func (r *GormTeamRotationRepository) Delete(teamID uint) error {
	result := r.db.Where("team_id = ?", teamID).Delete(&models.TeamRotation{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete team rotation")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("ротация не найдена")
	}

	r.logger.WithField("team_id", teamID).Info("Team rotation deleted")
	return nil
}
