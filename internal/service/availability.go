// internal/service/availability.go
package service

import (
	"fmt"
	"sync"
	"time"

	"attendance-bot/internal/availability"
	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

// BoardEntry - строка сводки подразделения на дату
type BoardEntry struct {
	Person *models.Person
	Status availability.Availability
}

// AvailabilityService - мост между хранилищем и чистым движком расчета.
// Сервис загружает четыре коллекции, один раз индексирует их и держит
// резолвер до первой мутации данных (Invalidate).
type AvailabilityService struct {
	personRepo   repository.PersonRepository
	rotationRepo repository.TeamRotationRepository
	absenceRepo  repository.AbsenceRepository
	blockageRepo repository.HourlyBlockageRepository
	snapshotRepo repository.PresenceSnapshotRepository
	logger       *logrus.Logger

	mu       sync.Mutex
	resolver *availability.Resolver
}

func NewAvailabilityService(
	personRepo repository.PersonRepository,
	rotationRepo repository.TeamRotationRepository,
	absenceRepo repository.AbsenceRepository,
	blockageRepo repository.HourlyBlockageRepository,
	snapshotRepo repository.PresenceSnapshotRepository,
) *AvailabilityService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AvailabilityService{
		personRepo:   personRepo,
		rotationRepo: rotationRepo,
		absenceRepo:  absenceRepo,
		blockageRepo: blockageRepo,
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

// Invalidate сбрасывает резолвер; следующий запрос переиндексирует
// данные. Вызывается после любой мутации ротаций, заявок, блокировок
// или отметок.
func (s *AvailabilityService) Invalidate() {
	s.mu.Lock()
	s.resolver = nil
	s.mu.Unlock()
}

func (s *AvailabilityService) getResolver() (*availability.Resolver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolver != nil {
		return s.resolver, nil
	}

	rotations, err := s.rotationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки ротаций: %v", err)
	}
	absences, err := s.absenceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки заявок: %v", err)
	}
	blockages, err := s.blockageRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки блокировок: %v", err)
	}
	snapshots, err := s.snapshotRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки отметок: %v", err)
	}

	data := availability.NewDataset(rotations, absences, blockages, snapshots)
	s.resolver = availability.NewResolver(data, availability.DefaultConfig())

	s.logger.WithFields(logrus.Fields{
		"version":   data.Version(),
		"rotations": len(rotations),
		"absences":  len(absences),
		"blockages": len(blockages),
		"snapshots": len(snapshots),
	}).Debug("Availability resolver rebuilt")

	return s.resolver, nil
}

// StatusFor возвращает эффективный статус человека на дату
func (s *AvailabilityService) StatusFor(person *models.Person, date time.Time) (availability.Availability, error) {
	r, err := s.getResolver()
	if err != nil {
		return availability.Availability{}, err
	}
	return r.Effective(person, date), nil
}

// StatusAt дополнительно учитывает время дня
func (s *AvailabilityService) StatusAt(person *models.Person, date time.Time, clock string) (availability.Availability, error) {
	r, err := s.getResolver()
	if err != nil {
		return availability.Availability{}, err
	}
	return r.EffectiveAt(person, date, clock), nil
}

// Board строит сводку всех активных людей на дату
func (s *AvailabilityService) Board(date time.Time) ([]BoardEntry, error) {
	r, err := s.getResolver()
	if err != nil {
		return nil, err
	}

	people, err := s.personRepo.GetAllActive()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки людей: %v", err)
	}

	entries := make([]BoardEntry, 0, len(people))
	for _, p := range people {
		entries = append(entries, BoardEntry{Person: p, Status: r.Effective(p, date)})
	}
	return entries, nil
}

// Forecast сжимает диапазон дат человека в последовательность периодов
// дом/база для прогноза
func (s *AvailabilityService) Forecast(person *models.Person, from, to time.Time) ([]availability.Period, error) {
	r, err := s.getResolver()
	if err != nil {
		return nil, err
	}
	return r.Compress(person, from, to, time.Now()), nil
}
