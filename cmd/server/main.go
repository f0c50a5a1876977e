package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym_attendance_notifier/internal/app"
	"gym_attendance_notifier/internal/domain/messaging"
	"gym_attendance_notifier/internal/infra/config"
	idb "gym_attendance_notifier/internal/infra/database"
	"gym_attendance_notifier/internal/infra/fcm"
	"gym_attendance_notifier/internal/infra/gemini"
	"gym_attendance_notifier/internal/infra/httpapi"
	"gym_attendance_notifier/internal/infra/logger"
	"gym_attendance_notifier/internal/infra/scheduler"
	"gym_attendance_notifier/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Database
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	memberRepo := idb.NewPostgresMemberRepository(db)

	// External clients are created once here and passed by interface to the
	// services; no stage constructs its own.
	ctx := context.Background()

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Could not create Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Infof("Gemini client initialized with model %s.", cfg.GeminiModel)

	var pusher messaging.Pusher
	if cfg.FirebaseCredentialsFile != "" {
		fcmClient, err := fcm.NewClient(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Fatalf("Could not create FCM client: %v", err)
		}
		pusher = fcmClient
		log.Info("FCM client initialized.")
	} else {
		log.Warn("FIREBASE_CREDENTIALS_FILE not set. Push delivery is disabled; runs will record messages without sending.")
	}

	notifierService := app.NewNotifierService(memberRepo, geminiClient, pusher, log)
	memberService := app.NewMemberService(memberRepo, log)

	var reporter scheduler.RunReporter
	if cfg.TelegramToken != "" {
		tgReporter, err := telegram.NewReporter(cfg.TelegramToken, cfg.AdminChatID)
		if err != nil {
			log.Fatalf("Could not create Telegram reporter: %v", err)
		}
		reporter = tgReporter
		log.Infof("Telegram batch reporter initialized for chat %d.", cfg.AdminChatID)
	}

	dailyScheduler := scheduler.NewDailyScheduler(notifierService, reporter, log, cfg.CronSpecDailyRun)
	dailyScheduler.Start()

	server := httpapi.NewServer(cfg.ListenAddr, cfg.Environment, notifierService, memberService)
	go func() {
		log.Infof("HTTP server listening on %s.", cfg.ListenAddr)
		if err := server.Start(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	dailyScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}

	log.Info("Application shut down gracefully.")
}
