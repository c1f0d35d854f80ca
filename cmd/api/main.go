package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"solosync/config"
	"solosync/config/postgre"
	_ "solosync/docs" // Swagger docs
	"solosync/internal/httpserver"
	"solosync/internal/realtime"
	workflowRepo "solosync/internal/workflow/repository"
	"solosync/internal/workflow/repository/memory"
	workflowPostgre "solosync/internal/workflow/repository/postgre"
	workflowUC "solosync/internal/workflow/usecase"
	"solosync/pkg/datemath"
	"solosync/pkg/gcalendar"
	"solosync/pkg/log"
	"solosync/pkg/telegram"
)

// @title       SoloSync API
// @description Turns free-form client messages into clients, projects and invoices.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SoloSync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clock and timezone for deadlines
	dateMath, err := datemath.NewParser(cfg.Analyzer.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Analyzer.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	var (
		db   *sql.DB
		repo workflowRepo.Repository
	)
	if cfg.Postgres.DSN != "" {
		db, err = postgre.Connect(ctx, postgre.Config{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Postgres: ", err)
			return
		}
		defer postgre.Disconnect(context.Background(), db)
		repo = workflowPostgre.New(db, logger)
		logger.Info(ctx, "Workflow store: postgres")
	} else {
		repo = memory.New()
		logger.Warn(ctx, "Workflow store: in-memory (set postgres.dsn to persist data)")
	}

	// 5. Google Calendar (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendar, err = gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendar = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Telegram (optional)
	var bot telegram.IBot
	if cfg.Telegram.BotToken != "" {
		tgBot := telegram.NewBot(cfg.Telegram.BotToken)
		bot = tgBot
		registerTelegramWebhook(ctx, logger, tgBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	hub := realtime.New(logger)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		PostgresDB:      db,
		WorkflowRepo:    repo,
		DateMath:        dateMath,
		Calendar:        calendar,
		CalendarConfig: workflowUC.CalendarConfig{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.GoogleCalendar.Timezone,
		},
		Hub:            hub,
		TelegramBot:    bot,
		TelegramSecret: cfg.Telegram.SecretToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerTelegramWebhook uses the configured URL or, failing that, an ngrok tunnel.
func registerTelegramWebhook(ctx context.Context, logger log.Logger, bot telegram.IBot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL not set, updates will not be delivered")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
