// internal/models/team_rotation.go
package models

import "time"

// Допустимые статусы в ячейке паттерна ротации
const (
	RotationDayBase        = "base"
	RotationDayHome        = "home"
	RotationDayUnavailable = "unavailable"
)

// TeamRotation описывает повторяющийся цикл командной ротации:
// начиная с CycleStart, каждый день получает статус из Pattern
// по смещению внутри цикла длиной PatternLength.
type TeamRotation struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	TeamID        uint      `gorm:"uniqueIndex;not null" json:"team_id"`
	CycleStart    time.Time `gorm:"type:date;not null" json:"cycle_start"`
	PatternLength int       `gorm:"not null" json:"pattern_length"`
	Pattern       []string  `gorm:"serializer:json;not null" json:"pattern"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Team Team `gorm:"foreignKey:TeamID" json:"team"`
}

func (TeamRotation) TableName() string {
	return "team_rotations"
}

// IsValid проверяет валидность данных ротации
func (r *TeamRotation) IsValid() bool {
	if r.PatternLength < 1 || r.PatternLength > 366 {
		return false
	}
	if len(r.Pattern) != r.PatternLength {
		return false
	}
	for _, day := range r.Pattern {
		switch day {
		case RotationDayBase, RotationDayHome, RotationDayUnavailable:
		default:
			return false
		}
	}
	return true
}
