package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/handler"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/middleware"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/notification"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/ratelimit"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/repository"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/router"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/scheduler"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"PartyPass",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	scanLogRepo := repository.NewScanLogRepo(a.db)
	auditRepo := repository.NewAuditRepo(a.db)
	statsRepo := repository.NewStatsRepo(a.db)

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(a.cfg.Auth.BcryptCost)
	notifier := notification.NewDispatcher(a.cfg.Notify, a.log)

	identityService := service.NewIdentityService(
		userRepo, auditRepo, notifier, tokens, hasher, a.cfg.Auth.MinPassword, a.log,
	)
	eventService := service.NewEventService(eventRepo, auditRepo, a.log)
	ticketService := service.NewTicketService(ticketRepo, userRepo, eventRepo, notifier, a.log)
	scanService := service.NewScanService(ticketRepo, a.log)
	statsService := service.NewStatsService(statsRepo, scanLogRepo, auditRepo, userRepo)

	if err := identityService.EnsureAdmin(context.Background(), a.cfg.Admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	limiter := ratelimit.New(a.cfg.RateLimit.Requests, a.cfg.RateLimit.Window)
	a.scheduler = scheduler.New(limiter, a.cfg.Scheduler.SweepInterval, a.log)

	h := handler.NewHandler(identityService, eventService, ticketService, scanService, statsService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		tokens,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.RateLimit(limiter),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
