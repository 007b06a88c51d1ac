package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load(".env")

	configs, err := getConfigs()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.NewLogger(configs.LogLevel)

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.SeedCancellationPolicies(ctx); err != nil {
		log.Fatalf("Failed to seed cancellation policies: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() (cmd.Config, error) {
	feePercentage, err := strconv.ParseFloat(envOr("CANCELLATION_FEE_PERCENTAGE", "10"), 64)
	if err != nil {
		return cmd.Config{}, fmt.Errorf("CANCELLATION_FEE_PERCENTAGE: %w", err)
	}
	windowMinutes, err := strconv.Atoi(envOr("CANCELLATION_WINDOW_MINUTES", "60"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("CANCELLATION_WINDOW_MINUTES: %w", err)
	}
	batchSize, err := strconv.Atoi(envOr("RELAY_BATCH_SIZE", "100"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("RELAY_BATCH_SIZE: %w", err)
	}

	config := cmd.Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               envOr("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOr("DB_SSLMODE", "disable"),
		RecordTimezone:       envOr("RECORD_TIMEZONE", "Asia/Karachi"),
		LogLevel:             envOr("LOG_LEVEL", "info"),
		DefaultFeePercentage: feePercentage,
		DefaultWindowMinutes: windowMinutes,
		EventBroker:          envOr("EVENT_BROKER", cmd.BrokerNone),
		KafkaBrokers:         splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaStatusTopic:     envOr("KAFKA_STATUS_TOPIC", "logistics.status"),
		RabbitMQURL:          os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:     envOr("RABBITMQ_EXCHANGE", "logistics.status"),
		RelaySchedule:        envOr("RELAY_SCHEDULE", "*/5 * * * * *"),
		RelayBatchSize:       batchSize,
	}
	return config, config.Validate()
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpin.NewErrorHandler(logger)
	e.Use(middleware.RequestID())
	e.Use(httpin.RequestMetrics(logger))
	e.Use(middleware.Recover())

	if err := httpin.RegisterOperationalRoutes(ctx, e); err != nil {
		log.Fatalf("Failed to register operational routes: %v", err)
	}
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
