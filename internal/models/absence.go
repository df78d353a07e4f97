// internal/models/absence.go
package models

import "time"

const (
	AbsenceStatusPending  = "pending"
	AbsenceStatusApproved = "approved"
	AbsenceStatusDenied   = "denied"
)

// Absence - заявка на отсутствие на диапазон дат (включительно).
// На расчет доступности влияют только записи со статусом approved.
type Absence struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PersonID  uint      `gorm:"not null;index" json:"person_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason    string    `gorm:"not null" json:"reason"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Person Person `gorm:"foreignKey:PersonID" json:"person"`
}

func (Absence) TableName() string {
	return "absences"
}

// IsApproved проверяет, одобрена ли заявка
func (a *Absence) IsApproved() bool {
	return a.Status == AbsenceStatusApproved
}

// Covers проверяет, попадает ли дата в диапазон заявки
func (a *Absence) Covers(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start := time.Date(a.StartDate.Year(), a.StartDate.Month(), a.StartDate.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(a.EndDate.Year(), a.EndDate.Month(), a.EndDate.Day(), 0, 0, 0, 0, date.Location())
	return !day.Before(start) && !day.After(end)
}

// SpanDays возвращает длину заявки в днях (включительно)
func (a *Absence) SpanDays() int {
	return int(a.EndDate.Sub(a.StartDate).Hours()/24) + 1
}
