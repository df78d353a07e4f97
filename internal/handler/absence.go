// internal/handler/absence.go
package handler

import (
	"strings"

	"attendance-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const stateAbsenceRequest = "absence_request"

// startAbsenceRequest создает заявку из аргументов команды или
// запускает пошаговый диалог
func (h *Handler) startAbsenceRequest(message *tgbotapi.Message, args string) {
	person := h.requireProfile(message)
	if person == nil {
		return
	}

	if strings.TrimSpace(args) != "" {
		h.createAbsence(message, args)
		return
	}

	h.userStates[message.Chat.ID] = stateAbsenceRequest
	h.send(message.Chat.ID, "📝 Отправьте заявку одной строкой:\n"+
		"<начало> <конец> <причина>\n\n"+
		"Например: 2024-03-10 2024-03-12 gimel")
}

// handleAbsenceInput обрабатывает ответ в диалоге заявки
func (h *Handler) handleAbsenceInput(message *tgbotapi.Message) {
	delete(h.userStates, message.Chat.ID)
	h.createAbsence(message, message.Text)
}

func (h *Handler) createAbsence(message *tgbotapi.Message, input string) {
	person := h.requireProfile(message)
	if person == nil {
		return
	}

	fields := strings.Fields(input)
	if len(fields) < 3 {
		h.send(message.Chat.ID, "❌ Нужно три части: начало, конец, причина. Например:\n"+
			"/absence 2024-03-10 2024-03-12 gimel")
		return
	}

	start, err := dateutil.ParseDate(fields[0])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	end, err := dateutil.ParseDate(fields[1])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	reason := strings.Join(fields[2:], " ")

	absence, err := h.absenceService.Request(person.ID, start, end, reason)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, "✅ Заявка создана и ожидает одобрения:\n"+
		h.absenceService.FormatAbsence(absence))
}

func (h *Handler) showMyAbsences(message *tgbotapi.Message) {
	person := h.requireProfile(message)
	if person == nil {
		return
	}

	absences, err := h.absenceService.ListForPerson(person.ID)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if len(absences) == 0 {
		h.send(message.Chat.ID, "У вас нет заявок на отсутствие.")
		return
	}

	var lines []string
	lines = append(lines, "📜 Мои заявки:")
	lines = append(lines, "")
	for _, a := range absences {
		lines = append(lines, h.absenceService.FormatAbsence(a))
	}

	h.send(message.Chat.ID, strings.Join(lines, "\n"))
}
