package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr          string
		Password      string
		DB            int
		EventsChannel string
	}

	GRPC struct {
		Host string
		Port string
	}

	Metrics struct {
		Addr string
	}

	// Swipe holds the card stack geometry and queue tuning.
	Swipe struct {
		CardWidth         float64
		ScreenHeight      float64
		VelocityThreshold float64
		LowWatermark      int
		PageSize          int
		AnimateExits      bool
	}

	Provider struct {
		Kind      string // "db" or "mock"
		MockDelay time.Duration
	}
}

// New reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "swipe_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "shubhvivah")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.EventsChannel = getEnvDefault("EVENTS_CHANNEL", "swipe_events")

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	cfg.Metrics.Addr = getEnvDefault("METRICS_ADDR", ":9090")

	// Swipe deck
	cfg.Swipe.CardWidth = getEnvFloat("SWIPE_CARD_WIDTH", 360)
	cfg.Swipe.ScreenHeight = getEnvFloat("SWIPE_SCREEN_HEIGHT", 780)
	cfg.Swipe.VelocityThreshold = getEnvFloat("SWIPE_VELOCITY_THRESHOLD", 1000)
	cfg.Swipe.LowWatermark = getEnvInt("SWIPE_LOW_WATERMARK", 2)
	cfg.Swipe.PageSize = getEnvInt("SWIPE_PAGE_SIZE", 10)
	cfg.Swipe.AnimateExits = isTruthy(os.Getenv("SWIPE_ANIMATE_EXITS"))

	// Candidate provider
	cfg.Provider.Kind = strings.ToLower(getEnvDefault("PROVIDER_KIND", "db"))
	cfg.Provider.MockDelay = time.Duration(getEnvInt("MOCK_DELAY_MS", 500)) * time.Millisecond

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(getEnvDefault(k, "")); err == nil {
		return n
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	if f, err := strconv.ParseFloat(getEnvDefault(k, ""), 64); err == nil && f > 0 {
		return f
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
