package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk/internal/api/http"
	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/persistence"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := openRecordStore(ctx, cfg, logger)
	defer closeStore()

	sessions, closeSessions := openSessionStore(ctx, cfg, logger)
	defer closeSessions()

	passwords, err := auth.NewPasswordScheme(cfg.Auth)
	if err != nil {
		logger.Fatal("invalid password scheme", zap.Error(err))
	}
	if cfg.Auth.PasswordScheme == config.PasswordSchemePlain {
		logger.Warn("passwords are stored in plain text; set AUTH_PASSWORD_SCHEME=bcrypt to hash them")
	}

	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(logger, cfg.Notification).RegisterHandlers(dispatcher)

	accountService := service.NewAccountService(service.AccountDependencies{
		AccountRepo: repository.NewAccountRepository(store),
		Passwords:   passwords,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: repository.NewTicketRepository(store),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	guard := auth.NewGuard(sessions, auth.NewTokenManager(cfg.Session.Secret), cfg.Session, logger)

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name, view.New())
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, map[string]handlers.Pinger{
			"record_store":  store,
			"session_store": sessions,
		}),
		Pages:   handlers.NewPagesHandler(ticketService),
		Auth:    handlers.NewAuthHandler(accountService, guard),
		Tickets: handlers.NewTicketsHandler(ticketService),
		Guard:   guard,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func openRecordStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.RecordStore, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory record store; data is lost on exit")
		return persistence.NewMemoryStore(), func() {}
	case config.StoreDriverPostgres:
		pool, err := persistence.OpenPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		return persistence.NewPostgresStore(pool), pool.Close
	default:
		logger.Info("using file record store", zap.String("dir", cfg.Store.DataDir))
		return persistence.NewFileStore(cfg.Store.DataDir, logger), func() {}
	}
}

func openSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.SessionStore, func()) {
	if cfg.Session.Driver != config.SessionDriverRedis {
		return auth.NewMemorySessionStore(), func() {}
	}
	client := persistence.OpenRedis(ctx, cfg.Redis, logger)
	return auth.NewRedisSessionStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
