package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	_ "time/tzdata"

	"bakery/cmd"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/domain/services/datagen"
	"bakery/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, prometheus.DefaultRegisterer, logger)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	err = startWebServer(configs.HTTPPort)
	jobManager.StopAll()
	log.Fatal(err)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		DemoDataEnabled:  parseEnv("DEMO_DATA_ENABLED", true, strconv.ParseBool),
		DemoDataSeed:     parseEnv("DEMO_DATA_SEED", datagen.DefaultSeed, parseUint),
		DemoDataSchedule: os.Getenv("DEMO_DATA_SCHEDULE"),
		TimeZone:         envOrDefault("TIME_ZONE", "UTC"),
		BcryptCost:       parseEnv("BCRYPT_COST", 0, strconv.Atoi),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	parsed, err := parse(v)
	if err != nil {
		log.Fatalf("Invalid %s=%q: %v", key, v, err)
	}
	return parsed
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func startWebServer(port string) error {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return e.Start(fmt.Sprintf("0.0.0.0:%s", port))
}
