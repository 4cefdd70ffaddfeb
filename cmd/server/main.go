// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"business-registry/internal/application"
	"business-registry/internal/auth"
	"business-registry/internal/common/config"
	"business-registry/internal/common/database"
	"business-registry/internal/common/logger"
	"business-registry/internal/registration"
	httptransport "business-registry/internal/transport/http"
	"business-registry/internal/upload"
	"business-registry/internal/wizard"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting registration server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rd *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rd, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rd.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rd.Close()
	zapLog.Info("Redis connected successfully")

	// --- Stores ---
	userStore := auth.NewPostgresUserStore(pg.GetDB())
	sessionStore := auth.NewRedisSessionStore(
		rd.GetClient(),
		time.Duration(cfg.Auth.SessionTTL)*time.Minute,
	)
	draftStore := registration.NewRedisDraftStore(rd.GetClient(), log)
	applicationStore := application.NewPostgresStore(pg.GetDB())

	// --- Services ---
	authService := auth.NewService(userStore, sessionStore, auth.Config{
		BcryptCost:      cfg.Auth.BcryptCost,
		SessionTTL:      time.Duration(cfg.Auth.SessionTTL) * time.Minute,
		SimulatedDelay:  time.Duration(cfg.Auth.SimulatedDelay) * time.Millisecond,
		MinPasswordSize: cfg.Auth.MinPasswordSize,
	}, log)

	registrationService := registration.NewService(draftStore, wizard.NewSequencer(), log)

	var gateway application.Gateway
	if cfg.Submission.GatewayURL != "" {
		gateway = application.NewHTTPGateway(
			cfg.Submission.GatewayURL,
			time.Duration(cfg.Submission.GatewayTimeout)*time.Millisecond,
			log,
		)
		zapLog.Info("Using remote registry gateway", zap.String("url", cfg.Submission.GatewayURL))
	} else {
		gateway = application.NewSimulatedGateway(
			time.Duration(cfg.Submission.GatewayDelay)*time.Millisecond,
			cfg.Submission.FailureRate,
		)
	}
	submitter := application.NewSubmitter(applicationStore, draftStore, gateway, log)

	tracker := upload.NewTracker(upload.Config{
		TickInterval: time.Duration(cfg.Uploads.TickInterval) * time.Millisecond,
		TickPercent:  cfg.Uploads.TickPercent,
	}, log)

	// --- Router ---
	router := httptransport.NewRouter(httptransport.RouterDeps{
		Auth:          httptransport.NewAuthHandler(authService, log),
		Registration:  httptransport.NewRegistrationHandler(registrationService, log),
		Applications:  httptransport.NewApplicationHandler(applicationStore, submitter, log),
		Documents:     httptransport.NewDocumentHandler(tracker, log),
		Authenticator: authService,
		Postgres:      pg,
		Redis:         rd,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining connections...")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Registration server stopped gracefully")
}
