// internal/availability/resolver.go
package availability

import (
	"sync"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"
)

// overlay - один слой уточнения статуса. Слои применяются к результату
// нижележащих слоев строго в порядке списка Resolver.overlays; второй
// результат apply сообщает, применился ли слой к этой дате.
type overlay interface {
	source() Source
	apply(person *models.Person, date time.Time, current Availability, cfg Config) (Availability, bool)
}

// Resolver вычисляет эффективную доступность поверх одного Dataset.
// Порядок приоритета - явный список слоев, а не скрытая
// последовательность вызовов: ротация дает базу, затем отсутствия,
// блокировки и снимки.
type Resolver struct {
	data     *Dataset
	cfg      Config
	overlays []overlay

	// Мемоизация по (человек, день). Dataset неизменяем, поэтому ключ
	// версии не нужен: новый Dataset означает новый Resolver. Замок
	// сохраняет безопасность для параллельных читателей.
	mu   sync.RWMutex
	memo map[dayKey]Availability
}

// NewResolver строит резолвер над проиндексированным набором данных.
// Если набор построен без снимков, слой снимков не подключается.
func NewResolver(data *Dataset, cfg Config) *Resolver {
	overlays := []overlay{
		absenceOverlay{data},
		blockageOverlay{data},
	}
	if data.hasSnapshots {
		overlays = append(overlays, snapshotOverlay{data})
	}

	return &Resolver{
		data:     data,
		cfg:      cfg,
		overlays: overlays,
		memo:     make(map[dayKey]Availability),
	}
}

// Config возвращает политику времени резолвера
func (r *Resolver) Config() Config {
	return r.cfg
}

// Version - версия набора данных, поверх которого построен резолвер
func (r *Resolver) Version() uint64 {
	return r.data.version
}

// Effective возвращает эффективную доступность человека на дату.
// Всегда ровно одно полностью заполненное значение, без ошибок.
func (r *Resolver) Effective(person *models.Person, date time.Time) Availability {
	if person == nil {
		return r.cfg.defaultAvailability()
	}

	key := dayKey{person.ID, dateutil.DateKey(date)}

	r.mu.RLock()
	av, ok := r.memo[key]
	r.mu.RUnlock()
	if ok {
		return av
	}

	av = r.resolve(person, dateutil.DateOnly(date))

	r.mu.Lock()
	r.memo[key] = av
	r.mu.Unlock()

	return av
}

// EffectiveAt дополнительно сужает ответ до конкретного времени дня:
// вне окна присутствия человек считается недоступным
func (r *Resolver) EffectiveAt(person *models.Person, date time.Time, clock string) Availability {
	av := r.Effective(person, date)
	if av.IsAvailable && !av.CoversClock(clock) {
		av.IsAvailable = false
	}
	return av
}

func (r *Resolver) resolve(person *models.Person, date time.Time) Availability {
	// Неактивные люди всегда числятся на базе, независимо от данных
	if !person.IsActive {
		return r.cfg.defaultAvailability()
	}

	av := resolveRotation(person, date, r.data, r.cfg)
	for _, o := range r.overlays {
		if next, applied := o.apply(person, date, av, r.cfg); applied {
			av = next
		}
	}
	return av
}
