// internal/handler/commands.go
package handler

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "helpadmin":
		h.sendAdminHelpMessage(message)
	case "register":
		h.registerPerson(message)
	case "myprofile":
		h.showProfile(message)

	// Статус и прогноз (все пользователи)
	case "status":
		h.showStatus(message, args)
	case "board", "who":
		h.showBoard(message, args)
	case "forecast":
		h.showForecast(message, args)

	// Отсутствия (все пользователи)
	case "absence":
		h.startAbsenceRequest(message, args)
	case "myabsences":
		h.showMyAbsences(message)

	// Команды администратора
	case "pending":
		h.showPendingAbsences(message)
	case "approve":
		h.approveAbsence(message, args)
	case "deny":
		h.denyAbsence(message, args)
	case "rotation":
		h.setRotation(message, args)
	case "rotations":
		h.showRotations(message)
	case "blockage":
		h.recordBlockage(message, args)
	case "mark":
		h.markPresence(message, args)
	case "export":
		h.exportWorkbook(message, args)
	case "setteam":
		h.assignTeam(message, args)
	case "deactivate":
		h.setPersonActive(message, args, false)
	case "activate":
		h.setPersonActive(message, args, true)
	case "promote":
		h.promoteToAdmin(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.send(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := strings.Join([]string{
		"👋 Привет! Я бот учета присутствия подразделения.",
		"",
		"Я отвечаю на вопрос «кто где» на любую дату: на базе, дома,",
		"прибывает или убывает - с учетом ротаций, отпусков, почасовых",
		"блокировок и ручных отметок.",
		"",
		"Начните с регистрации: /register",
		"Список команд: /help",
	}, "\n")

	h.send(message.Chat.ID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := strings.Join([]string{
		"📋 Команды:",
		"",
		"/register - регистрация",
		"/myprofile - мой профиль",
		"",
		"/status [дата] - мой статус на дату (по умолчанию сегодня)",
		"/board [дата] - сводка подразделения на дату",
		"/forecast [дней] - мой прогноз дом/база (по умолчанию 30 дней)",
		"",
		"/absence [начало конец причина] - заявка на отсутствие",
		"/myabsences - мои заявки",
		"",
		"Даты в формате ГГГГ-ММ-ДД или ДД.ММ.ГГГГ.",
		"Команды администратора: /helpadmin",
	}, "\n")

	h.send(message.Chat.ID, text)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	if h.requireAdmin(message) == nil {
		return
	}

	text := strings.Join([]string{
		"🛠 Команды администратора:",
		"",
		"/pending - заявки, ожидающие решения",
		"/approve <id> - одобрить заявку",
		"/deny <id> - отклонить заявку",
		"",
		"/rotation <команда> <дата_начала> <паттерн> - задать ротацию",
		"  паттерн: статусы через запятую, например base,base,home,home",
		"/rotations - ротации всех команд",
		"",
		"/blockage <chat_id> <дата> <с> <до> [причина] - почасовая блокировка",
		"/mark <chat_id> <дата> <статус> [категория] [с] [до] - ручная отметка",
		"",
		"/export [дата] [дней] - выгрузка сводки и прогноза в Excel",
		"/setteam <chat_id> <команда> - привязать к команде",
		"/deactivate <chat_id> | /activate <chat_id>",
		"/promote <chat_id> - выдать права администратора",
	}, "\n")

	h.send(message.Chat.ID, text)
}

func (h *Handler) registerPerson(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	username := ""
	firstName := "Боец"
	lastName := ""
	if message.From != nil {
		username = message.From.UserName
		if message.From.FirstName != "" {
			firstName = message.From.FirstName
		}
		lastName = message.From.LastName
	}

	person, err := h.personService.Register(chatID, username, firstName, lastName)
	if err != nil {
		h.send(chatID, "❌ "+err.Error())
		return
	}

	h.send(chatID, "✅ Регистрация завершена, "+person.FullName()+"!\n"+
		"Администратор привяжет вас к команде: /helpadmin")
}

func (h *Handler) showProfile(message *tgbotapi.Message) {
	person := h.requireProfile(message)
	if person == nil {
		return
	}

	h.send(message.Chat.ID, h.personService.FormatPersonInfo(person))
}
