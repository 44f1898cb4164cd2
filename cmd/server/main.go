package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/identity"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/anonto42/secret-friends/backend/internal/repositories/memory"
	"github.com/anonto42/secret-friends/backend/internal/router"
	"github.com/anonto42/secret-friends/backend/internal/services"
	"github.com/anonto42/secret-friends/backend/pkg/config"
	"github.com/anonto42/secret-friends/backend/pkg/events"
	"github.com/anonto42/secret-friends/backend/pkg/firebase"
	"github.com/anonto42/secret-friends/backend/pkg/ratelimit"
	"github.com/anonto42/secret-friends/backend/pkg/telemetry"
	"github.com/anonto42/secret-friends/backend/validators"
	"github.com/labstack/echo/v4"
)

type stores struct {
	profiles      repositories.ProfileRepository
	secrets       repositories.SecretRepository
	requests      repositories.FriendRequestRepository
	notifications repositories.NotificationRepository
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	logger.Info("Starting server", "env", cfg.Env, "port", cfg.Port, "store", cfg.StoreDriver, "secrets", cfg.SecretBackend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OtelEndpoint != "" {
		tp, err := telemetry.InitTracer(ctx, cfg.OtelEndpoint, cfg.ServiceName, cfg.Env)
		if err != nil {
			logger.Error("Failed to init tracer", "error", err)
		} else {
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					logger.Error("Error shutting down tracer", "error", err)
				}
			}()
		}
	}

	// Initialize database connections
	db, err := config.InitDB(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize databases", "error", err)
		os.Exit(1)
	}
	defer db.CloseDB()

	st, err := openStores(ctx, cfg, db)
	if err != nil {
		logger.Error("Failed to prepare stores", "error", err)
		os.Exit(1)
	}

	// Firebase is optional; without it only local accounts work.
	var firebaseAuth identity.FirebaseAuth
	if cfg.FirebaseCredentialsPath != "" || os.Getenv("FIREBASE_AUTH_EMULATOR_HOST") != "" {
		client, err := firebase.NewAuthClient(ctx, cfg.FirebaseCredentialsPath, logger)
		if err != nil {
			logger.Error("Failed to initialize Firebase", "error", err)
			os.Exit(1)
		}
		firebaseAuth = client
	}

	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow)
		logger.Info("Redis rate limiter enabled", "requests", cfg.RateLimitRequests, "window", cfg.RateLimitWindow)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NatsURL != "" {
		nats, err := events.NewNatsPublisher(ctx, cfg.NatsURL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer nats.Close()
		publisher = nats
		logger.Info("NATS JetStream publisher enabled")
	}

	identitySvc := identity.NewService(st.profiles, firebaseAuth, identity.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL), logger)
	notificationSvc := services.NewNotificationService(st.notifications, st.profiles, logger)
	friendSvc := services.NewFriendService(st.requests, st.profiles, notificationSvc, publisher, logger)
	secretSvc := services.NewSecretService(st.secrets, st.profiles, friendSvc, logger)
	accountSvc := services.NewAccountService(identitySvc, secretSvc, friendSvc, notificationSvc, publisher, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	config.SetupMiddleware(e, cfg.ServiceName, logger)
	router.SetupRoutes(e, router.Dependencies{
		ServiceName:   cfg.ServiceName,
		Identity:      identitySvc,
		Secrets:       secretSvc,
		Friends:       friendSvc,
		Notifications: notificationSvc,
		Accounts:      accountSvc,
		Limiter:       limiter,
		Logger:        logger,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Signal received, shutting down", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

func openStores(ctx context.Context, cfg *config.Config, db *config.DB) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		mem := memory.NewStore()
		st := &stores{
			profiles:      mem.Profiles(),
			secrets:       mem.Secrets(),
			requests:      mem.FriendRequests(),
			notifications: mem.Notifications(),
		}
		if cfg.SecretBackend == config.SecretBackendMongo {
			secrets, err := mongoSecrets(ctx, cfg, db)
			if err != nil {
				return nil, err
			}
			st.secrets = secrets
		}
		return st, nil
	}

	withSecrets := cfg.SecretBackend == config.SecretBackendPostgres
	if err := repositories.AutoMigrate(db.Postgres, withSecrets); err != nil {
		return nil, err
	}
	slog.Info("PostgreSQL auto-migrations completed")

	st := &stores{
		profiles:      repositories.NewPostgresProfileRepository(db.Postgres),
		requests:      repositories.NewPostgresFriendRequestRepository(db.Postgres),
		notifications: repositories.NewPostgresNotificationRepository(db.Postgres),
	}
	if withSecrets {
		st.secrets = repositories.NewPostgresSecretRepository(db.Postgres)
		return st, nil
	}

	secrets, err := mongoSecrets(ctx, cfg, db)
	if err != nil {
		return nil, err
	}
	st.secrets = secrets
	return st, nil
}

func mongoSecrets(ctx context.Context, cfg *config.Config, db *config.DB) (repositories.SecretRepository, error) {
	repo := repositories.NewMongoSecretRepository(db.Mongo.Database(cfg.MongoDatabase))
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
