package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"referrify/database"
	"referrify/internal/config"
	"referrify/internal/idgen"
	httpapi "referrify/internal/microservices/http-api"
	"referrify/internal/microservices/http-api/repository"
	"referrify/internal/microservices/http-api/service"
	"referrify/internal/poller"
	"referrify/internal/storage"
	"referrify/internal/toast"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage backends
	primary, err := openPrimary(cfg, logger)
	if err != nil {
		return err
	}
	defer primary.Close()

	secondary, purge, err := openSecondary(cfg, logger)
	if err != nil {
		return err
	}
	defer secondary.Close()

	if purge != nil {
		stopPurge := poller.New("purge_expired", cfg.PurgeInterval, purge, logger).Start(ctx)
		defer stopPurge()
	}

	// 3. Repositories and services
	toasts := toast.NewRecorder(50, toast.NewLogSink(logger))
	store := storage.NewAdapter(primary, secondary, toasts, logger)
	ids := idgen.New(nil)
	horizons := storage.Horizons{
		General:    cfg.GeneralTTL,
		Session:    cfg.SessionTTL,
		Collection: cfg.CollectionTTL,
	}

	jobRepo := repository.NewJobRepository(store, horizons, ids)
	notifications := service.NewNotificationService(repository.NewNotificationRepository(store, horizons, ids))

	services := httpapi.Services{
		Jobs:          service.NewJobService(jobRepo, notifications),
		Applications:  service.NewApplicationService(repository.NewApplicationRepository(store, horizons, ids), jobRepo, notifications, cfg.StrictStatusTransitions),
		Notifications: notifications,
		Sessions:      service.NewSessionService(repository.NewSessionRepository(store, horizons)),
		Toasts:        toasts,
	}

	// 4. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := httpapi.NewRouter(services, httpapi.RouterOptions{
		Logger:         logger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		CORSOrigins:    cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_listening", "addr", srv.Addr,
			"primary", primary.Name(), "secondary", secondary.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openPrimary(cfg *config.Config, logger *slog.Logger) (storage.Backend, error) {
	if cfg.PrimaryBackend == "memory" {
		return storage.NewMemoryBackend("memory-primary", nil), nil
	}
	client, err := database.ConnectRedis(cfg, logger)
	if err != nil {
		return nil, err
	}
	return storage.NewRedisBackend(client, "referrify:"), nil
}

// openSecondary also returns the periodic purge of expired rows when the backend has one
func openSecondary(cfg *config.Config, logger *slog.Logger) (storage.Backend, func(context.Context) error, error) {
	if cfg.SecondaryBackend == "memory" {
		return storage.NewMemoryBackend("memory-secondary", nil), nil, nil
	}
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	backend := storage.NewSQLBackend(db, nil)
	purge := func(ctx context.Context) error {
		n, err := backend.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("expired_entries_purged", "count", n)
		}
		return nil
	}
	return backend, purge, nil
}
