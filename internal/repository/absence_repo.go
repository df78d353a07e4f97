// internal/repository/absence_repo.go
package repository

import (
	"errors"
	"time"

	"attendance-bot/internal/models"

	"gorm.io/gorm"
)

type AbsenceRepository interface {
	Create(absence *models.Absence) error
	Update(absence *models.Absence) error
	GetByID(id uint) (*models.Absence, error)
	GetByPerson(personID uint) ([]*models.Absence, error)
	GetByStatus(status string) ([]*models.Absence, error)
	GetAll() ([]*models.Absence, error)
	GetOverlapping(personID uint, startDate, endDate time.Time) ([]*models.Absence, error)
	Delete(id uint) error
}

type GormAbsenceRepository struct {
	db *gorm.DB
}

func NewGormAbsenceRepository(db *gorm.DB) (AbsenceRepository, error) {
	if err := db.AutoMigrate(&models.Absence{}); err != nil {
		return nil, err
	}
	return &GormAbsenceRepository{db: db}, nil
}

func (r *GormAbsenceRepository) Create(absence *models.Absence) error {
	return r.db.Create(absence).Error
}

func (r *GormAbsenceRepository) Update(absence *models.Absence) error {
	return r.db.Save(absence).Error
}

func (r *GormAbsenceRepository) GetByID(id uint) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.First(&absence, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

func (r *GormAbsenceRepository) GetByPerson(personID uint) ([]*models.Absence, error) {
	var absences []*models.Absence
	err := r.db.Where("person_id = ?", personID).
		Order("start_date DESC").
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) GetByStatus(status string) ([]*models.Absence, error) {
	var absences []*models.Absence
	err := r.db.Where("status = ?", status).
		Order("start_date ASC").
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) GetAll() ([]*models.Absence, error) {
	var absences []*models.Absence
	err := r.db.Order("start_date ASC").Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) GetOverlapping(personID uint, startDate, endDate time.Time) ([]*models.Absence, error) {
	var absences []*models.Absence
	err := r.db.Where("person_id = ? AND start_date <= ? AND end_date >= ?",
		personID, endDate, startDate).
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Absence{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("заявка не найдена")
	}
	return nil
}
