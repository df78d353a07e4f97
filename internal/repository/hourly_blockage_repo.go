// internal/repository/hourly_blockage_repo.go
package repository

import (
	"errors"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"

	"gorm.io/gorm"
)

type HourlyBlockageRepository interface {
	Create(blockage *models.HourlyBlockage) error
	GetByID(id uint) (*models.HourlyBlockage, error)
	GetByPersonAndDate(personID uint, date time.Time) (*models.HourlyBlockage, error)
	GetByPerson(personID uint) ([]*models.HourlyBlockage, error)
	GetAll() ([]*models.HourlyBlockage, error)
	Delete(id uint) error
}

type GormHourlyBlockageRepository struct {
	db *gorm.DB
}

func NewGormHourlyBlockageRepository(db *gorm.DB) (HourlyBlockageRepository, error) {
	if err := db.AutoMigrate(&models.HourlyBlockage{}); err != nil {
		return nil, err
	}
	return &GormHourlyBlockageRepository{db: db}, nil
}

func (r *GormHourlyBlockageRepository) Create(blockage *models.HourlyBlockage) error {
	// На одну дату у человека может быть только одна блокировка:
	// новая заменяет старую
	existing, err := r.GetByPersonAndDate(blockage.PersonID, blockage.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		blockage.ID = existing.ID
		blockage.CreatedAt = existing.CreatedAt
	}

	return r.db.Save(blockage).Error
}

func (r *GormHourlyBlockageRepository) GetByID(id uint) (*models.HourlyBlockage, error) {
	var blockage models.HourlyBlockage
	err := r.db.First(&blockage, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blockage, nil
}

func (r *GormHourlyBlockageRepository) GetByPersonAndDate(personID uint, date time.Time) (*models.HourlyBlockage, error) {
	var blockage models.HourlyBlockage
	day := dateutil.DateOnly(date)
	err := r.db.Where("person_id = ? AND date >= ? AND date < ?",
		personID, day, day.AddDate(0, 0, 1)).
		First(&blockage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blockage, nil
}

func (r *GormHourlyBlockageRepository) GetByPerson(personID uint) ([]*models.HourlyBlockage, error) {
	var blockages []*models.HourlyBlockage
	err := r.db.Where("person_id = ?", personID).
		Order("date DESC").
		Find(&blockages).Error
	return blockages, err
}

func (r *GormHourlyBlockageRepository) GetAll() ([]*models.HourlyBlockage, error) {
	var blockages []*models.HourlyBlockage
	err := r.db.Order("date ASC").Find(&blockages).Error
	return blockages, err
}

func (r *GormHourlyBlockageRepository) Delete(id uint) error {
	result := r.db.Delete(&models.HourlyBlockage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("блокировка не найдена")
	}
	return nil
}
