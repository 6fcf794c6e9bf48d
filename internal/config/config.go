package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Events   EventsConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "sqlite"
	Connection string
	LogLevel   string // "silent", "error", "warn", "info"
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
	LoginURL  string
}

type EventsConfig struct {
	NatsURL        string
	NoteEventTopic string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvAsInt("JWT_TTL_MINUTES", 60*24)) * time.Minute,
			LoginURL:  getEnv("LOGIN_URL", "/auth/login/"),
		},
		Events: EventsConfig{
			NatsURL:        getEnv("NATS_URL", ""),
			NoteEventTopic: getEnv("NOTE_EVENTS_TOPIC", "NOTE_EVENTS"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
