package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexportal_backend/internal/adapters/storage"
	"lexportal_backend/internal/agents"
	agentsrepo "lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/auth"
	"lexportal_backend/internal/clients"
	clientsrepo "lexportal_backend/internal/clients/repository"
	"lexportal_backend/internal/dashboard"
	"lexportal_backend/internal/email"
	"lexportal_backend/internal/events"
	apphttp "lexportal_backend/internal/http"
	"lexportal_backend/internal/http/router"
	"lexportal_backend/internal/notification"
	"lexportal_backend/internal/scheduler"
	"lexportal_backend/internal/tasks"
	tasksservice "lexportal_backend/internal/tasks/service"
	"lexportal_backend/internal/uploads"
	"lexportal_backend/platform/config"
	"lexportal_backend/platform/db"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	reminderScheduler, closeScheduler := initReminderScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	sender := email.NewSender(cfg)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Storage service for file uploads (MinIO)
	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}
	if err := withRetry(ctx, log, "ensure uploads bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, cfg.GetMinioBucketUploads())
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketUploads())
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
	log.Info("storage service initialized", "uploadsBucket", cfg.GetMinioBucketUploads())

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.NewModule(agentsrepo.New(pool), sender, cfg.AppBaseURL, log)
	notificationModule.RegisterHandlers(eventBus)

	authModule := auth.NewModule(pool, cfg, val, log)
	if err := authModule.BootstrapOwner(ctx, cfg); err != nil {
		log.Error("failed to bootstrap owner account", "error", err)
		panic("failed to bootstrap owner account: " + err.Error())
	}

	agentsModule := agents.NewModule(pool, val, log)
	clientsModule := clients.NewModule(pool, val, log)
	tasksModule := tasks.NewModule(pool, clientsrepo.New(pool), eventBus, reminderScheduler, val, log)
	dashboardModule := dashboard.NewModule(pool, log)
	uploadsModule := uploads.NewModule(storageSvc, cfg.GetMinioBucketUploads(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			agentsModule,
			clientsModule,
			tasksModule,
			dashboardModule,
			uploadsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initReminderScheduler(cfg config.SchedulerConfig, log *logger.Logger) (tasksservice.ReminderScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; task due reminders disabled")
		return nil, nil
	}

	reminderClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize reminder scheduler client", "error", err)
		return nil, nil
	}

	return reminderClient, func() {
		_ = reminderClient.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
