package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/crime_reporting_system/internal/config"
	v1 "github.com/shenikar/crime_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/crime_reporting_system/internal/repository"
	"github.com/shenikar/crime_reporting_system/internal/service"
	"github.com/shenikar/crime_reporting_system/internal/sms"
	"github.com/shenikar/crime_reporting_system/pkg/logger"
	"github.com/shenikar/crime_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/crime_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crime_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crime Reporting System API
// @version 1.0
// @description Municipal crime-reporting service: anonymous intake, admin review, public map feed, SMS notifications.
// @host localhost:8080
// @BasePath /
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Repositories
	reportRepo := repository.NewReportRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)
	crimeTypeRepo := repository.NewCrimeTypeRepository(dbpool)
	smsLogRepo := repository.NewSMSLogRepository(dbpool)

	// Seed the default admin and the crime-type catalog on first run.
	bootstrapper := service.NewBootstrapper(userRepo, crimeTypeRepo, log, cfg)
	if err := bootstrapper.Run(ctx); err != nil {
		log.Fatalf("Failed to bootstrap default data: %v", err)
	}

	// Notification sender. Without Twilio credentials the client is nil and
	// every message is simulated.
	twilioClient := sms.NewTwilioClient(cfg)
	var providerClient sms.ProviderClient
	if twilioClient != nil {
		providerClient = twilioClient
		log.Info("Twilio SMS enabled")
	} else {
		log.Info("SMS simulation mode enabled (no actual SMS will be sent)")
	}
	sender := sms.NewSender(providerClient, smsLogRepo, log, cfg)

	// Services
	reportService := service.NewReportService(reportRepo, smsLogRepo, crimeTypeRepo, sender, log, cfg)
	authService := service.NewAuthService(userRepo, log, cfg)

	// Handlers
	handler := v1.NewHandler(reportService, authService, log, cfg)

	router := gin.Default()
	handler.RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
