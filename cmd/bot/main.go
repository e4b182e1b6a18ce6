package main

import (
	"os"
	"os/signal"
	"syscall"

	"leave-planner-bot/internal/config"
	"leave-planner-bot/internal/handler"
	"leave-planner-bot/internal/repository"
	"leave-planner-bot/internal/service"
	"leave-planner-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// SQLite needs foreign keys enabled per connection.
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	periodRepo, err := repository.NewGormPeriodRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create period repository")
	}

	rangeRepo, err := repository.NewGormColoredRangeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create colored range repository")
	}

	personalInfoRepo, err := repository.NewGormPersonalInfoRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create personal info repository")
	}

	periodService := service.NewPeriodService(periodRepo, rangeRepo)
	plannerService := service.NewPlannerService(periodRepo, rangeRepo)
	profileService := service.NewProfileService(personalInfoRepo)
	exportService := service.NewExportService(cfg.ExportDir)

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		plannerService,
		periodService,
		profileService,
		exportService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

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
