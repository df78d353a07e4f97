// internal/models/hourly_blockage.go
package models

import "time"

// HourlyBlockage - частичное отсутствие в пределах одного дня.
// Окно 00:00..HH:MM означает прибытие в HH:MM, окно HH:MM..23:59 -
// убытие в HH:MM, произвольное окно - присутствие только внутри него.
type HourlyBlockage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PersonID  uint      `gorm:"not null;index" json:"person_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Person Person `gorm:"foreignKey:PersonID" json:"person"`
}

func (HourlyBlockage) TableName() string {
	return "hourly_blockages"
}
