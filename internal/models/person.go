package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleMember string = "member"
	RoleAdmin  string = "admin"
)

type Person struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ChatID    int64     `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string    `json:"username"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `gorm:"default:'member'" json:"role"`
	TeamID    *uint     `gorm:"index" json:"team_id,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// IsAdmin проверяет, является ли человек администратором
func (p *Person) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FullName возвращает полное имя для вывода
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SetRole устанавливает роль
func (p *Person) SetRole(role Role) {
	p.Role = string(role)
}

// TableName задает имя таблицы в БД
func (Person) TableName() string {
	return "people"
}
