// internal/repository/presence_snapshot_repo.go
package repository

import (
	"errors"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"

	"gorm.io/gorm"
)

type PresenceSnapshotRepository interface {
	Save(snapshot *models.PresenceSnapshot) error
	GetByPersonAndDate(personID uint, date time.Time) (*models.PresenceSnapshot, error)
	GetByPerson(personID uint) ([]*models.PresenceSnapshot, error)
	GetAll() ([]*models.PresenceSnapshot, error)
	Delete(id uint) error
}

type GormPresenceSnapshotRepository struct {
	db *gorm.DB
}

func NewGormPresenceSnapshotRepository(db *gorm.DB) (PresenceSnapshotRepository, error) {
	if err := db.AutoMigrate(&models.PresenceSnapshot{}); err != nil {
		return nil, err
	}
	return &GormPresenceSnapshotRepository{db: db}, nil
}

// Save записывает снимок; повторная отметка на ту же дату заменяет прежнюю
func (r *GormPresenceSnapshotRepository) Save(snapshot *models.PresenceSnapshot) error {
	existing, err := r.GetByPersonAndDate(snapshot.PersonID, snapshot.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		snapshot.ID = existing.ID
		snapshot.CreatedAt = existing.CreatedAt
	}

	return r.db.Save(snapshot).Error
}

func (r *GormPresenceSnapshotRepository) GetByPersonAndDate(personID uint, date time.Time) (*models.PresenceSnapshot, error) {
	var snapshot models.PresenceSnapshot
	day := dateutil.DateOnly(date)
	err := r.db.Where("person_id = ? AND date >= ? AND date < ?",
		personID, day, day.AddDate(0, 0, 1)).
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *GormPresenceSnapshotRepository) GetByPerson(personID uint) ([]*models.PresenceSnapshot, error) {
	var snapshots []*models.PresenceSnapshot
	err := r.db.Where("person_id = ?", personID).
		Order("date DESC").
		Find(&snapshots).Error
	return snapshots, err
}

func (r *GormPresenceSnapshotRepository) GetAll() ([]*models.PresenceSnapshot, error) {
	var snapshots []*models.PresenceSnapshot
	err := r.db.Order("date ASC").Find(&snapshots).Error
	return snapshots, err
}

func (r *GormPresenceSnapshotRepository) Delete(id uint) error {
	result := r.db.Delete(&models.PresenceSnapshot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("снимок не найден")
	}
	return nil
}
