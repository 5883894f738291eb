package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/priyanshu461/gym-backoffice/internal/config"
	"github.com/priyanshu461/gym-backoffice/internal/database"
	"github.com/priyanshu461/gym-backoffice/internal/models"
	"github.com/priyanshu461/gym-backoffice/internal/notify"
	"github.com/priyanshu461/gym-backoffice/internal/repository"
	"github.com/priyanshu461/gym-backoffice/internal/server"
	"github.com/priyanshu461/gym-backoffice/pkg/utils"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		utils.Log.Error("Failed to load config: " + err.Error())
		os.Exit(1)
	}
	if cfg.Database.DSN == "" {
		utils.Log.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewPostgres(cfg.Database.DSN)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	if err := database.AutoMigrateTables(db,
		&models.Routine{},
		&models.Day{},
		&models.Exercise{},
		&models.Member{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	routineRepo := repository.NewRoutineRepo(db)
	memberRepo := repository.NewMemberRepo(db)

	// -----------------------
	// NOTIFIER (необязательный)
	var notifier notify.Notifier
	if cfg.Telegram.Token != "" {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			utils.Log.Error("Failed to create telegram notifier: " + err.Error())
			os.Exit(1)
		}
		notifier = tg
		utils.Log.Info("Telegram notifier enabled")
	}

	// -----------------------
	// SERVER
	router := gin.Default()
	server.SetupRoutes(router, server.NewHandlers(routineRepo, memberRepo, notifier))

	utils.Log.Info("Back office API starting on " + cfg.Server.Port)
	if err := router.Run(cfg.Server.Port); err != nil {
		utils.Log.Error("Failed to run server: " + err.Error())
		os.Exit(1)
	}
}
