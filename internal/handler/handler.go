package handler

import (
	"strings"

	"attendance-bot/internal/config"
	"attendance-bot/internal/models"
	"attendance-bot/internal/service"
	"attendance-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client              *telegram.Client
	personService       *service.PersonService
	rotationService     *service.RotationService
	absenceService      *service.AbsenceService
	blockageService     *service.BlockageService
	snapshotService     *service.SnapshotService
	availabilityService *service.AvailabilityService
	reportService       *service.ReportService
	userStates          map[int64]string
	config              *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	personService *service.PersonService,
	rotationService *service.RotationService,
	absenceService *service.AbsenceService,
	blockageService *service.BlockageService,
	snapshotService *service.SnapshotService,
	availabilityService *service.AvailabilityService,
	reportService *service.ReportService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:              client,
		personService:       personService,
		rotationService:     rotationService,
		absenceService:      absenceService,
		blockageService:     blockageService,
		snapshotService:     snapshotService,
		availabilityService: availabilityService,
		reportService:       reportService,
		userStates:          make(map[int64]string),
		config:              cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	logrus.WithFields(logrus.Fields{
		"chat_id": chatID,
		"text":    message.Text,
	}).Debug("Message received")

	if message.IsCommand() {
		// Команда сбрасывает незавершенный диалог
		delete(h.userStates, chatID)
		h.handleCommand(message)
		return
	}

	if state, ok := h.userStates[chatID]; ok {
		h.handleStateInput(message, state)
		return
	}

	h.send(chatID, "Используйте /help для списка команд.")
}

// handleStateInput продолжает пошаговый диалог
func (h *Handler) handleStateInput(message *tgbotapi.Message, state string) {
	switch state {
	case stateAbsenceRequest:
		h.handleAbsenceInput(message)
	default:
		delete(h.userStates, message.Chat.ID)
		h.send(message.Chat.ID, "Диалог прерван. Используйте /help.")
	}
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}

// requireProfile возвращает профиль отправителя или подсказку
// зарегистрироваться
func (h *Handler) requireProfile(message *tgbotapi.Message) *models.Person {
	person, err := h.personService.Get(message.Chat.ID)
	if err != nil {
		h.send(message.Chat.ID, "❌ Вы не зарегистрированы. Используйте /register.")
		return nil
	}
	return person
}

// requireAdmin проверяет права администратора
func (h *Handler) requireAdmin(message *tgbotapi.Message) *models.Person {
	person := h.requireProfile(message)
	if person == nil {
		return nil
	}
	if !person.IsAdmin() {
		h.send(message.Chat.ID, "❌ Команда доступна только администраторам.")
		return nil
	}
	return person
}

func splitArgs(args string) []string {
	return strings.Fields(args)
}
