// Package availability вычисляет эффективный статус присутствия человека
// на дату (или диапазон дат), сливая четыре независимых источника данных
// в фиксированном порядке приоритета:
//
//	снимок > почасовая блокировка > отсутствие > ротация > статус по умолчанию
//
// Все функции пакета чистые: никакого I/O, логирования и общего
// изменяемого состояния. Источники данных загружаются снаружи и один раз
// индексируются в Dataset.
package availability

// Status - каноническое состояние человека на день
type Status string

const (
	StatusBase        Status = "base"
	StatusHome        Status = "home"
	StatusArrival     Status = "arrival"
	StatusDeparture   Status = "departure"
	StatusUnavailable Status = "unavailable"
	StatusSick        Status = "sick"
	StatusLeave       Status = "leave"
)

// HomeStatusType - подклассификация домашнего статуса
type HomeStatusType string

const (
	HomeLeaveShamp       HomeStatusType = "leave_shamp"
	HomeGimel            HomeStatusType = "gimel"
	HomeAbsent           HomeStatusType = "absent"
	HomeOrganizationDays HomeStatusType = "organization_days"
	HomeNotInShamp       HomeStatusType = "not_in_shamp"
)

// Source - слой, определивший итоговый статус
type Source string

const (
	SourceRotation Source = "rotation"
	SourceAbsence  Source = "absence"
	SourceBlockage Source = "blockage"
	SourceSnapshot Source = "snapshot"
)

// Availability - результат разрешения для пары (человек, дата).
// Разрешение тотально: для любых входов возвращается ровно одно
// полностью заполненное значение.
type Availability struct {
	Status         Status         `json:"status"`
	StartHour      string         `json:"start_hour"`
	EndHour        string         `json:"end_hour"`
	HomeStatusType HomeStatusType `json:"home_status_type,omitempty"`
	IsAvailable    bool           `json:"is_available"`
	RawLabel       string         `json:"raw_label,omitempty"`
	Source         Source         `json:"source"`
}

// isPresent проверяет, классифицирован ли день как присутствие на базе
func (a Availability) isPresent() bool {
	switch a.Status {
	case StatusBase, StatusArrival, StatusDeparture:
		return true
	}
	return false
}

// CoversClock проверяет, попадает ли время HH:MM в окно присутствия дня
func (a Availability) CoversClock(clock string) bool {
	return a.StartHour <= clock && clock <= a.EndHour
}

// Config - именованные константы политики вместо рассыпанных по коду
// строк-сентинелей
type Config struct {
	// Сентинели "нет ограничения по времени"
	DayStart string
	DayEnd   string

	// Репрезентативные времена переходов, когда точное время неизвестно
	DefaultDepartureTime string
	DefaultReturnTime    string
}

// DefaultConfig возвращает принятую в приложении политику времени
func DefaultConfig() Config {
	return Config{
		DayStart:             "00:00",
		DayEnd:               "23:59",
		DefaultDepartureTime: "14:00",
		DefaultReturnTime:    "10:00",
	}
}

// defaultAvailability - статус по умолчанию: на базе, доступен весь день
func (c Config) defaultAvailability() Availability {
	return Availability{
		Status:      StatusBase,
		StartHour:   c.DayStart,
		EndHour:     c.DayEnd,
		IsAvailable: true,
		Source:      SourceRotation,
	}
}
