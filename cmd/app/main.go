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

	"kirana/cmd"
	"kirana/internal/adapters/out/gormdb/catalogrepo"
	"kirana/internal/adapters/out/gormdb/orderrepo"
	"kirana/internal/core/domain/model/catalog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; containerized deployments set the environment directly.
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig()

	gormDB, err := openDB(config)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}, &catalogrepo.ItemDTO{}); err != nil {
		log.Fatalf("Error migrating the database schema: %v", err)
	}

	store, err := loadCatalog(gormDB)
	if err != nil {
		log.Fatalf("Error loading the catalog: %v", err)
	}
	logger.Info("catalog ready", "items", store.Len())

	root := cmd.NewCompositionRoot(config, gormDB, store, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	e := echo.New()
	root.CreateServer().RegisterRoutes(e)

	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting the web server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}

	if err := jobManager.StopAll(ctx); err != nil {
		logger.Error("background jobs shutdown failed", "error", err)
	}

	if err := root.Close(); err != nil {
		logger.Error("closing outbound adapters failed", "error", err)
	}
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBDriver:               envOrDefault("DB_DRIVER", "sqlite"),
		DBPath:                 envOrDefault("DB_PATH", "order_db.sqlite"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		LifecycleInterval:      durationOrDefault("LIFECYCLE_INTERVAL", 5*time.Second),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOrDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("ignoring malformed duration", "key", key, "value", raw)
		return fallback
	}

	return value
}

func openDB(config cmd.Config) (*gorm.DB, error) {
	switch config.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(config.DBPath+"?_busy_timeout=5000"), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want sqlite or postgres)", config.DBDriver)
	}
}

func loadCatalog(db *gorm.DB) (*catalog.Store, error) {
	items, err := catalogrepo.NewGormCatalogRepository(db).LoadOrSeed(context.Background())
	if err != nil {
		return nil, err
	}

	return catalog.NewStore(items)
}
