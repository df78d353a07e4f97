// internal/service/report.go
package service

import (
	"bytes"
	"fmt"
	"time"

	"attendance-bot/internal/availability"
	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ReportService выгружает сводку и прогнозы в Excel
type ReportService struct {
	availabilitySvc *AvailabilityService
	personSvc       *PersonService
	logger          *logrus.Logger
}

func NewReportService(availabilitySvc *AvailabilityService, personSvc *PersonService) *ReportService {
	return &ReportService{
		availabilitySvc: availabilitySvc,
		personSvc:       personSvc,
		logger:          logrus.New(),
	}
}

var statusTitles = map[availability.Status]string{
	availability.StatusBase:        "На базе",
	availability.StatusHome:        "Дома",
	availability.StatusArrival:     "Прибытие",
	availability.StatusDeparture:   "Убытие",
	availability.StatusUnavailable: "Недоступен",
	availability.StatusSick:        "Болеет",
	availability.StatusLeave:       "Отпуск",
}

// StatusTitle возвращает русское название статуса (сырые метки
// выводятся как есть)
func StatusTitle(av availability.Availability) string {
	if av.RawLabel != "" {
		return av.RawLabel
	}
	if title, ok := statusTitles[av.Status]; ok {
		return title
	}
	return string(av.Status)
}

// BuildWorkbook собирает книгу с листами "Сводка" (статусы всех на
// дату) и "Прогноз" (периоды дом/база на forecastDays вперед)
func (s *ReportService) BuildWorkbook(date time.Time, forecastDays int) ([]byte, error) {
	people, err := s.personSvc.GetAllActive()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки людей: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeBoardSheet(f, people, date); err != nil {
		return nil, err
	}
	if err := s.writeForecastSheet(f, people, date, forecastDays); err != nil {
		return nil, err
	}

	// excelize создает книгу с листом Sheet1 по умолчанию
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("ошибка записи книги: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"date":   dateutil.DateKey(date),
		"people": len(people),
	}).Info("Attendance workbook built")

	return buf.Bytes(), nil
}

func (s *ReportService) writeBoardSheet(f *excelize.File, people []*models.Person, date time.Time) error {
	const sheet = "Сводка"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Имя", "Статус", "С", "До", "Категория", "Источник"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range people {
		av, err := s.availabilitySvc.StatusFor(p, date)
		if err != nil {
			return err
		}

		values := []interface{}{
			p.FullName(),
			StatusTitle(av),
			av.StartHour,
			av.EndHour,
			string(av.HomeStatusType),
			string(av.Source),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return nil
}

func (s *ReportService) writeForecastSheet(f *excelize.File, people []*models.Person, date time.Time, forecastDays int) error {
	const sheet = "Прогноз"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Имя", "Тип", "Начало", "Конец", "Дней", "Переход"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range people {
		periods, err := s.availabilitySvc.Forecast(p, date, date.AddDate(0, 0, forecastDays-1))
		if err != nil {
			return err
		}

		for _, period := range periods {
			transition := ""
			typeTitle := "База"
			if period.Type == availability.PeriodHome {
				typeTitle = "Дом"
				transition = fmt.Sprintf("убытие %s в %s",
					period.DepartureDate.Format("02.01"), period.DepartureTime)
			} else {
				transition = fmt.Sprintf("возвращение %s в %s",
					period.ReturnDate.Format("02.01"), period.ReturnTime)
			}

			values := []interface{}{
				p.FullName(),
				typeTitle,
				period.StartDate.Format("02.01.2006"),
				period.EndDate.Format("02.01.2006"),
				period.DurationDays,
				transition,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	return nil
}
