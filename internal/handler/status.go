// internal/handler/status.go
package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"attendance-bot/internal/availability"
	"attendance-bot/internal/service"
	"attendance-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var statusEmoji = map[availability.Status]string{
	availability.StatusBase:        "🪖",
	availability.StatusHome:        "🏠",
	availability.StatusArrival:     "🛬",
	availability.StatusDeparture:   "🛫",
	availability.StatusUnavailable: "⛔",
	availability.StatusSick:        "🤒",
	availability.StatusLeave:       "🌴",
}

func formatAvailability(av availability.Availability) string {
	emoji, ok := statusEmoji[av.Status]
	if !ok || av.RawLabel != "" {
		emoji = "❓"
	}

	line := emoji + " " + service.StatusTitle(av)

	switch av.Status {
	case availability.StatusArrival:
		line += fmt.Sprintf(" (на базе с %s)", av.StartHour)
	case availability.StatusDeparture:
		line += fmt.Sprintf(" (на базе до %s)", av.EndHour)
	case availability.StatusBase:
		if av.StartHour != "00:00" || av.EndHour != "23:59" {
			line += fmt.Sprintf(" (%s—%s)", av.StartHour, av.EndHour)
		}
	case availability.StatusHome:
		if av.HomeStatusType != "" {
			line += fmt.Sprintf(" [%s]", av.HomeStatusType)
		}
	}

	return line
}

// parseDateArg разбирает необязательный аргумент даты; без аргумента -
// сегодня
func parseDateArg(args string) (time.Time, error) {
	fields := splitArgs(args)
	if len(fields) == 0 {
		return dateutil.DateOnly(time.Now()), nil
	}
	return dateutil.ParseDate(fields[0])
}

func (h *Handler) showStatus(message *tgbotapi.Message, args string) {
	person := h.requireProfile(message)
	if person == nil {
		return
	}

	date, err := parseDateArg(args)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	av, err := h.availabilityService.StatusFor(person, date)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("📅 %s\n%s",
		date.Format("02.01.2006"), formatAvailability(av)))
}

func (h *Handler) showBoard(message *tgbotapi.Message, args string) {
	if h.requireProfile(message) == nil {
		return
	}

	date, err := parseDateArg(args)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	entries, err := h.availabilityService.Board(date)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if len(entries) == 0 {
		h.send(message.Chat.ID, "Пока никто не зарегистрирован.")
		return
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("📋 Сводка на %s:", date.Format("02.01.2006")))
	lines = append(lines, "")

	present := 0
	for _, e := range entries {
		if e.Status.IsAvailable {
			present++
		}
		lines = append(lines, fmt.Sprintf("%s — %s", e.Person.FullName(), formatAvailability(e.Status)))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("На базе: %d из %d", present, len(entries)))

	h.send(message.Chat.ID, strings.Join(lines, "\n"))
}

func (h *Handler) showForecast(message *tgbotapi.Message, args string) {
	person := h.requireProfile(message)
	if person == nil {
		return
	}

	days := h.config.ForecastDays
	if fields := splitArgs(args); len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil && n > 0 && n <= 366 {
			days = n
		}
	}

	today := dateutil.DateOnly(time.Now())
	periods, err := h.availabilityService.Forecast(person, today, today.AddDate(0, 0, days-1))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("🔮 Прогноз на %d дн.:", days))
	lines = append(lines, "")

	for _, p := range periods {
		span := fmt.Sprintf("%s — %s (%d дн.)",
			p.StartDate.Format("02.01"), p.EndDate.Format("02.01"), p.DurationDays)

		if p.Type == availability.PeriodHome {
			line := "🏠 " + span + fmt.Sprintf(", убытие %s в %s",
				p.DepartureDate.Format("02.01"), p.DepartureTime)
			if p.HomeStatusType != "" {
				line += fmt.Sprintf(" [%s]", p.HomeStatusType)
			}
			lines = append(lines, line)
		} else {
			lines = append(lines, "🪖 "+span+fmt.Sprintf(", возвращение %s в %s",
				p.ReturnDate.Format("02.01"), p.ReturnTime))
		}
	}

	h.send(message.Chat.ID, strings.Join(lines, "\n"))
}
