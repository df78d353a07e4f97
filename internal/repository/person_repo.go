package repository

import (
	"errors"

	"attendance-bot/internal/models"

	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(person *models.Person) error
	Update(person *models.Person) error
	GetByID(id uint) (*models.Person, error)
	GetByChatID(chatID int64) (*models.Person, error)
	GetAll() ([]*models.Person, error)
	GetAllActive() ([]*models.Person, error)
	GetByTeam(teamID uint) ([]*models.Person, error)
	Delete(chatID int64) error
}

type GormPersonRepository struct {
	db *gorm.DB
}

func NewGormPersonRepository(db *gorm.DB) (PersonRepository, error) {
	// Автомиграция - создает таблицы если их нет
	if err := db.AutoMigrate(&models.Person{}); err != nil {
		return nil, err
	}

	return &GormPersonRepository{db: db}, nil
}

func (r *GormPersonRepository) Create(person *models.Person) error {
	// Проверяем, существует ли уже человек с таким chat_id
	var existing models.Person
	result := r.db.Where("chat_id = ?", person.ChatID).First(&existing)
	if result.Error == nil {
		return errors.New("человек уже зарегистрирован")
	}

	return r.db.Create(person).Error
}

func (r *GormPersonRepository) Update(person *models.Person) error {
	var existing models.Person
	result := r.db.Where("chat_id = ?", person.ChatID).First(&existing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errors.New("человек не найден")
	}

	return r.db.Save(person).Error
}

func (r *GormPersonRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	result := r.db.First(&person, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &person, nil
}

func (r *GormPersonRepository) GetByChatID(chatID int64) (*models.Person, error) {
	var person models.Person
	result := r.db.Where("chat_id = ?", chatID).First(&person)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &person, nil
}

func (r *GormPersonRepository) GetAll() ([]*models.Person, error) {
	var people []*models.Person
	err := r.db.Order("first_name ASC, last_name ASC").Find(&people).Error
	return people, err
}

func (r *GormPersonRepository) GetAllActive() ([]*models.Person, error) {
	var people []*models.Person
	err := r.db.Where("is_active = ?", true).
		Order("first_name ASC, last_name ASC").
		Find(&people).Error
	return people, err
}

func (r *GormPersonRepository) GetByTeam(teamID uint) ([]*models.Person, error) {
	var people []*models.Person
	err := r.db.Where("team_id = ?", teamID).
		Order("first_name ASC").
		Find(&people).Error
	return people, err
}

func (r *GormPersonRepository) Delete(chatID int64) error {
	result := r.db.Where("chat_id = ?", chatID).Delete(&models.Person{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("человек не найден")
	}
	return nil
}
