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

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/api"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/cache"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/config"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/handler"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/middleware"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/notification"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/repository"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/router"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/scheduler"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/telemetry"
)

const migrationsDir = "migrations"

type App struct {
	cfg           *config.Config
	log           logger.Logger
	db            *dbpg.DB
	redis         *cache.Redis
	httpServer    *http.Server
	scheduler     *scheduler.Scheduler
	traceShutdown func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RuanganWeb",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.traceShutdown = telemetry.Setup("ruangan-web")

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
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

func (a *App) initRedis() error {
	r, err := cache.NewRedis(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}

	a.redis = r
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	backend := api.New(api.Options{
		BaseURL:        a.cfg.Backend.BaseURL,
		Timeout:        a.cfg.Backend.Timeout,
		BreakerTimeout: a.cfg.Backend.BreakerTimeout,
	}, a.log)

	sessions := repository.NewSessionRepo(a.db, a.cfg.Session.TTL)

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	checkers := service.NewCheckerRegistry(backend, a.log)
	identitySvc := service.NewIdentityService(backend, a.redis, a.cfg.Cache.IdentityTTL, a.log)
	catalogSvc := service.NewCatalogService(backend, a.redis, a.cfg.Cache.CatalogTTL, a.log)
	bookingSvc := service.NewBookingService(backend, a.redis, checkers, notifier, a.cfg.Cache.BookingsTTL, a.log)
	availabilitySvc := service.NewAvailabilityService(checkers)
	authSvc := service.NewAuthService(backend, sessions, identitySvc, checkers, a.redis, a.log)

	a.scheduler = scheduler.New(
		sessions,
		checkers,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.CheckerIdle,
		a.log,
	)

	h := handler.NewHandler(
		authSvc,
		identitySvc,
		catalogSvc,
		bookingSvc,
		availabilitySvc,
		handler.CookieConfig{
			Name:   a.cfg.Session.CookieName,
			MaxAge: int(a.cfg.Session.TTL.Seconds()),
			Secure: a.cfg.Session.Secure,
		},
	)

	guards := router.Guards{
		PageUser:  middleware.RequireRole(identitySvc, domain.RoleUser),
		PageAdmin: middleware.RequireRole(identitySvc, domain.RoleAdmin),
		APIUser:   middleware.RequireRoleAPI(identitySvc, domain.RoleUser),
		APIAdmin:  middleware.RequireRoleAPI(identitySvc, domain.RoleAdmin),
		APIAny:    middleware.RequireRoleAPI(identitySvc, domain.RoleUser, domain.RoleAdmin),
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		guards,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Session(sessions, a.cfg.Session.CookieName, a.log),
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

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	if err := a.traceShutdown(shutdownCtx); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "trace exporter shutdown failed",
			logger.String("error", err.Error()),
		)
	}

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
