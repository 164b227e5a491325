package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	HTTPAddr string

	// SheetURL is the remote spreadsheet web-app endpoint. Every durable
	// read and write goes through it.
	SheetURL string
	// SheetTimeoutSeconds bounds a single gateway call. Zero keeps the
	// transport default.
	SheetTimeoutSeconds int

	AdvisorAPIKey string
	AdvisorModel  string
	AdvisorURL    string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:             getenv("APP_SERVICE", "tindahan"),
		AppVersion:          getenv("APP_VERSION", "0.1.0"),
		Environment:         getenv("ENVIRONMENT", "development"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
		HTTPAddr:            getenv("HTTP_ADDR", ":8080"),
		SheetURL:            strings.TrimSpace(getenv("SHEET_URL", "")),
		SheetTimeoutSeconds: getenvInt("SHEET_TIMEOUT_SECONDS", 30),
		AdvisorAPIKey:       strings.TrimSpace(getenv("ADVISOR_API_KEY", "")),
		AdvisorModel:        getenv("ADVISOR_MODEL", "gemini-2.5-flash"),
		AdvisorURL:          strings.TrimSpace(getenv("ADVISOR_URL", "https://generativelanguage.googleapis.com/v1beta/models")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// Module wires application configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewStoreSettingsHolder),
)
