package main

import (
	"os"
	"os/signal"
	"syscall"

	"attendance-bot/internal/config"
	"attendance-bot/internal/handler"
	"attendance-bot/internal/repository"
	"attendance-bot/internal/service"
	"attendance-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite ограничения
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Включаем поддержку внешних ключей (требуется для SQLite)
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	personRepo, err := repository.NewGormPersonRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create person repository")
	}

	teamRepo, err := repository.NewGormTeamRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create team repository")
	}

	rotationRepo, err := repository.NewGormTeamRotationRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create team rotation repository")
	}

	absenceRepo, err := repository.NewGormAbsenceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create absence repository")
	}

	blockageRepo, err := repository.NewGormHourlyBlockageRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create hourly blockage repository")
	}

	snapshotRepo, err := repository.NewGormPresenceSnapshotRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create presence snapshot repository")
	}

	// Создаем сервисы
	personService := service.NewPersonService(personRepo, teamRepo)
	rotationService := service.NewRotationService(rotationRepo, teamRepo)
	absenceService := service.NewAbsenceService(absenceRepo, personRepo)
	blockageService := service.NewBlockageService(blockageRepo, personRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, personRepo)

	availabilityService := service.NewAvailabilityService(
		personRepo,
		rotationRepo,
		absenceRepo,
		blockageRepo,
		snapshotRepo,
	)

	reportService := service.NewReportService(availabilityService, personService)

	// Инициализируем администратора из конфига
	if err := personService.InitializeAdmin(cfg.BaseAdminChatID); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.BaseAdminChatID != 0 {
		logrus.Infof("Admin initialized with chat ID: %d", cfg.BaseAdminChatID)
	}

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken, false)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		personService,
		rotationService,
		absenceService,
		blockageService,
		snapshotService,
		availabilityService,
		reportService,
		cfg,
	)

	// Настраиваем канал обновлений
	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
