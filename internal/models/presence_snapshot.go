// internal/models/presence_snapshot.go
package models

import "time"

// PresenceSnapshot - зафиксированная вручную запись присутствия на одну
// конкретную дату. Если запись есть, она перекрывает все расчетные слои.
//
// Исторически записи существуют в двух форматах: старый (только Status
// как сырая строка) и новый (V2State + HomeStatusType + окно времени).
// Оба формата хранятся в одной таблице; V2State != "" означает новый формат.
type PresenceSnapshot struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	PersonID       uint      `gorm:"not null;index" json:"person_id"`
	Date           time.Time `gorm:"type:date;not null;index" json:"date"`
	Status         string    `json:"status"`
	V2State        string    `gorm:"type:varchar(20)" json:"v2_state"`
	HomeStatusType string    `gorm:"type:varchar(30)" json:"home_status_type"`
	StartTime      string    `gorm:"type:varchar(5)" json:"start_time"`
	EndTime        string    `gorm:"type:varchar(5)" json:"end_time"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Person Person `gorm:"foreignKey:PersonID" json:"person"`
}

func (PresenceSnapshot) TableName() string {
	return "presence_snapshots"
}

// IsStructured проверяет, записан ли снимок в новом формате
func (s *PresenceSnapshot) IsStructured() bool {
	return s.V2State != ""
}
