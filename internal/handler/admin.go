// internal/handler/admin.go
package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"attendance-bot/internal/models"
	"attendance-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showPendingAbsences(message *tgbotapi.Message) {
	if h.requireAdmin(message) == nil {
		return
	}

	absences, err := h.absenceService.ListPending()
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if len(absences) == 0 {
		h.send(message.Chat.ID, "Нет заявок, ожидающих решения.")
		return
	}

	var lines []string
	lines = append(lines, "⏳ Ожидают решения:")
	lines = append(lines, "")
	for _, a := range absences {
		person, err := h.personService.GetByID(a.PersonID)
		name := "?"
		if err == nil {
			name = person.FullName()
		}
		lines = append(lines, fmt.Sprintf("%s — %s", name, h.absenceService.FormatAbsence(a)))
	}
	lines = append(lines, "")
	lines = append(lines, "Решение: /approve <id> или /deny <id>")

	h.send(message.Chat.ID, strings.Join(lines, "\n"))
}

func (h *Handler) approveAbsence(message *tgbotapi.Message, args string) {
	h.decideAbsence(message, args, true)
}

func (h *Handler) denyAbsence(message *tgbotapi.Message, args string) {
	h.decideAbsence(message, args, false)
}

func (h *Handler) decideAbsence(message *tgbotapi.Message, args string, approve bool) {
	if h.requireAdmin(message) == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) != 1 {
		h.send(message.Chat.ID, "❌ Укажите номер заявки: /approve <id>")
		return
	}

	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		h.send(message.Chat.ID, "❌ Номер заявки должен быть числом.")
		return
	}

	var result string
	if approve {
		absence, err := h.absenceService.Approve(uint(id))
		if err != nil {
			h.send(message.Chat.ID, "❌ "+err.Error())
			return
		}
		result = "✅ Заявка одобрена:\n" + h.absenceService.FormatAbsence(absence)
	} else {
		absence, err := h.absenceService.Deny(uint(id))
		if err != nil {
			h.send(message.Chat.ID, "❌ "+err.Error())
			return
		}
		result = "❌ Заявка отклонена:\n" + h.absenceService.FormatAbsence(absence)
	}

	// Решение меняет расчет доступности
	h.availabilityService.Invalidate()

	h.send(message.Chat.ID, result)
}

// setRotation: /rotation <team_id> <дата_начала> <паттерн через запятую>
func (h *Handler) setRotation(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) != 3 {
		h.send(message.Chat.ID, "❌ Формат: /rotation <команда> <дата_начала> <паттерн>\n"+
			"Например: /rotation 1 2024-01-01 base,base,base,base,base,home,home")
		return
	}

	teamID, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		h.send(message.Chat.ID, "❌ Номер команды должен быть числом.")
		return
	}

	cycleStart, err := dateutil.ParseDate(fields[1])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	pattern := strings.Split(fields[2], ",")

	rotation, err := h.rotationService.SetRotation(uint(teamID), cycleStart, pattern)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.availabilityService.Invalidate()

	h.send(message.Chat.ID, "✅ Ротация сохранена:\n"+h.rotationService.FormatRotation(rotation))
}

func (h *Handler) showRotations(message *tgbotapi.Message) {
	if h.requireAdmin(message) == nil {
		return
	}

	rotations, err := h.rotationService.GetAll()
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if len(rotations) == 0 {
		h.send(message.Chat.ID, "Ротации не заданы: все числятся на базе.")
		return
	}

	var blocks []string
	for _, r := range rotations {
		blocks = append(blocks, h.rotationService.FormatRotation(r))
	}

	h.send(message.Chat.ID, strings.Join(blocks, "\n\n"))
}

// recordBlockage: /blockage <chat_id> <дата> <с> <до> [причина]
func (h *Handler) recordBlockage(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) < 4 {
		h.send(message.Chat.ID, "❌ Формат: /blockage <chat_id> <дата> <с> <до> [причина]\n"+
			"Блокировка 00:00—14:00 означает прибытие в 14:00.")
		return
	}

	target, date, ok := h.parseTargetAndDate(message, fields[0], fields[1])
	if !ok {
		return
	}

	reason := ""
	if len(fields) > 4 {
		reason = strings.Join(fields[4:], " ")
	}

	blockage, err := h.blockageService.Record(target.ID, date, fields[2], fields[3], reason)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.availabilityService.Invalidate()

	h.send(message.Chat.ID, fmt.Sprintf("✅ Блокировка записана: %s %s—%s (%s)",
		dateutil.DateKey(blockage.Date), blockage.StartTime, blockage.EndTime, target.FullName()))
}

// markPresence: /mark <chat_id> <дата> <статус> [категория] [с] [до]
func (h *Handler) markPresence(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) < 3 {
		h.send(message.Chat.ID, "❌ Формат: /mark <chat_id> <дата> <статус> [категория] [с] [до]\n"+
			"Статусы: base, home, arrival, departure, unavailable, sick, leave")
		return
	}

	target, date, ok := h.parseTargetAndDate(message, fields[0], fields[1])
	if !ok {
		return
	}

	state := fields[2]
	homeStatusType, startTime, endTime := "", "", ""
	if len(fields) > 3 {
		homeStatusType = fields[3]
	}
	if len(fields) > 4 {
		startTime = fields[4]
	}
	if len(fields) > 5 {
		endTime = fields[5]
	}

	if _, err := h.snapshotService.Mark(target.ID, date, state, homeStatusType, startTime, endTime); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.availabilityService.Invalidate()

	h.send(message.Chat.ID, fmt.Sprintf("✅ Отметка записана: %s — %s (%s)",
		dateutil.DateKey(dateutil.DateOnly(date)), state, target.FullName()))
}

// exportWorkbook: /export [дата] [дней]
func (h *Handler) exportWorkbook(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	date := dateutil.DateOnly(time.Now())
	days := h.config.ForecastDays

	fields := splitArgs(args)
	if len(fields) > 0 {
		parsed, err := dateutil.ParseDate(fields[0])
		if err != nil {
			h.send(message.Chat.ID, "❌ "+err.Error())
			return
		}
		date = parsed
	}
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 && n <= 366 {
			days = n
		}
	}

	data, err := h.reportService.BuildWorkbook(date, days)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("attendance_%s.xlsx", dateutil.DateKey(date)),
		Bytes: data,
	})
	if _, err := h.client.Bot.Send(doc); err != nil {
		h.send(message.Chat.ID, "❌ Не удалось отправить файл: "+err.Error())
	}
}

// assignTeam: /setteam <chat_id> <название команды>
func (h *Handler) assignTeam(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) < 2 {
		h.send(message.Chat.ID, "❌ Формат: /setteam <chat_id> <команда>")
		return
	}

	chatID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ chat_id должен быть числом.")
		return
	}

	teamName := strings.Join(fields[1:], " ")

	team, err := h.personService.AssignTeam(chatID, teamName)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.availabilityService.Invalidate()

	h.send(message.Chat.ID, fmt.Sprintf("✅ Привязан к команде «%s» (#%d)", team.Name, team.ID))
}

func (h *Handler) setPersonActive(message *tgbotapi.Message, args string, active bool) {
	if h.requireAdmin(message) == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) != 1 {
		h.send(message.Chat.ID, "❌ Укажите chat_id.")
		return
	}

	chatID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ chat_id должен быть числом.")
		return
	}

	person, err := h.personService.SetActive(chatID, active)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.availabilityService.Invalidate()

	if active {
		h.send(message.Chat.ID, "✅ "+person.FullName()+" снова участвует в расчетах.")
	} else {
		h.send(message.Chat.ID, "🚫 "+person.FullName()+" деактивирован (всегда числится на базе).")
	}
}

func (h *Handler) promoteToAdmin(message *tgbotapi.Message, args string) {
	admin := h.requireAdmin(message)
	if admin == nil {
		return
	}

	fields := splitArgs(args)
	if len(fields) != 1 {
		h.send(message.Chat.ID, "❌ Укажите chat_id.")
		return
	}

	chatID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ chat_id должен быть числом.")
		return
	}

	if err := h.personService.SetRole(admin.ChatID, chatID, models.Role(models.RoleAdmin)); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, "⭐ Права администратора выданы.")
}

// parseTargetAndDate - общий разбор пары (chat_id, дата) админских команд
func (h *Handler) parseTargetAndDate(message *tgbotapi.Message, chatIDArg, dateArg string) (*models.Person, time.Time, bool) {
	chatID, err := strconv.ParseInt(chatIDArg, 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ chat_id должен быть числом.")
		return nil, time.Time{}, false
	}

	target, err := h.personService.Get(chatID)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return nil, time.Time{}, false
	}

	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return nil, time.Time{}, false
	}

	return target, date, true
}
