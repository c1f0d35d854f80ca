package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"solosync/internal/realtime"
	workflowRepo "solosync/internal/workflow/repository"
	workflowUC "solosync/internal/workflow/usecase"
	"solosync/pkg/datemath"
	"solosync/pkg/gcalendar"
	"solosync/pkg/log"
	"solosync/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	rateLimitPerMin int

	// Storage
	postgresDB   *sql.DB
	workflowRepo workflowRepo.Repository

	// Domain dependencies
	dateMath       *datemath.Parser
	calendar       gcalendar.ICalendar
	calendarConfig workflowUC.CalendarConfig
	hub            *realtime.Hub
	telegramBot    telegram.IBot
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	RateLimitPerMin int

	// PostgresDB is optional and only used for readiness checks.
	PostgresDB   *sql.DB
	WorkflowRepo workflowRepo.Repository

	DateMath       *datemath.Parser
	Calendar       gcalendar.ICalendar // Optional
	CalendarConfig workflowUC.CalendarConfig
	Hub            *realtime.Hub
	TelegramBot    telegram.IBot // Optional
	TelegramSecret string
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		postgresDB:      cfg.PostgresDB,
		workflowRepo:    cfg.WorkflowRepo,
		dateMath:        cfg.DateMath,
		calendar:        cfg.Calendar,
		calendarConfig:  cfg.CalendarConfig,
		hub:             cfg.Hub,
		telegramBot:     cfg.TelegramBot,
		telegramSecret:  cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.workflowRepo == nil {
		return errors.New("workflow repository is required")
	}
	if srv.dateMath == nil {
		return errors.New("datemath parser is required")
	}
	if srv.hub == nil {
		return errors.New("realtime hub is required")
	}
	return nil
}
