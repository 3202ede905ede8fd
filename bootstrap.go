package main

import (
	"CampusTour/config/database"
	"CampusTour/config/environment"
	"CampusTour/logging"
	"CampusTour/repositories"
	route "CampusTour/routes/api"
	"CampusTour/services"
	"CampusTour/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const startupTimeout = 10 * time.Second

// openStore connects the configured database backend.
func openStore(ctx context.Context, cfg environment.DatabaseConfig, logger logging.Logger) (repositories.Manager, error) {
	switch cfg.Driver {
	case environment.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		// requests report the outage themselves; the server still starts
		pingCtx, cancel := context.WithTimeout(ctx, startupTimeout)
		defer cancel()
		if err := database.Ping(pingCtx, client); err != nil {
			logger.Warn(ctx, "mongo not reachable at startup", "error", err)
		}
		return repositories.NewMongoManager(client, cfg.MongoDatabase), nil

	case environment.DriverFirestore:
		client, err := database.NewFirestoreClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repositories.NewFirestoreManager(client), nil

	case environment.DriverMemory:
		logger.Warn(ctx, "using in-memory store, records are lost on restart")
		return repositories.NewMemoryManager(time.Now), nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

// openStorage returns the blob storage for uploaded images.
func openStorage(ctx context.Context, cfg environment.UploadConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case environment.UploadDriverLocal:
		return storage.NewLocalStorage(cfg.Dir)
	case environment.UploadDriverS3:
		client, err := storage.NewS3Client(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewS3Storage(client, cfg.S3Bucket), nil
	}
	return nil, fmt.Errorf("unknown upload driver %q", cfg.Driver)
}

func newNotifier(ctx context.Context, cfg environment.EmailConfig, logger logging.Logger) (services.Notifier, error) {
	if !cfg.Enabled() {
		logger.Warn(ctx, "EMAIL_USER or EMAIL_PASS not set, feedback notifications are disabled")
		return services.SkipNotifier{Logger: logger}, nil
	}
	return services.NewMailService(cfg)
}

// buildDependencies wires the services behind the routes.
func buildDependencies(ctx context.Context, cfg *environment.Config, logger logging.Logger) (route.Dependencies, repositories.Manager, error) {
	store, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return route.Dependencies{}, nil, fmt.Errorf("open store: %w", err)
	}

	blobs, err := openStorage(ctx, cfg.Upload)
	if err != nil {
		_ = store.Close(ctx)
		return route.Dependencies{}, nil, fmt.Errorf("open upload storage: %w", err)
	}

	notifier, err := newNotifier(ctx, cfg.Email, logger)
	if err != nil {
		_ = store.Close(ctx)
		return route.Dependencies{}, nil, fmt.Errorf("create notifier: %w", err)
	}

	hasher, err := services.NewPasswordHasher(cfg.Password)
	if err != nil {
		_ = store.Close(ctx)
		return route.Dependencies{}, nil, err
	}

	uploads := services.NewUploadService(blobs)
	return route.Dependencies{
		Users:     services.NewUserService(store.Users(), hasher),
		Feedback:  services.NewFeedbackService(store.Feedbacks(), uploads, notifier, logger),
		Uploads:   uploads,
		Logger:    logger,
		PublicDir: cfg.PublicDir,
	}, store, nil
}

// run serves the API until ctx is canceled, then shuts down gracefully.
func run(ctx context.Context, cfg *environment.Config, logger logging.Logger) error {
	if logging.ParseLevel(cfg.LogLevel) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, store, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn(ctx, "close store", "error", err)
		}
	}()

	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}

	srv := &http.Server{
		Handler:           route.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server running", "addr", listener.Addr().String())
		serveErr <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
