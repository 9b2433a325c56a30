package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"aurelia-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	CORSAllowOrigin   []string
	ResultStore       string
	DatabaseURL       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	ResultTTL         time.Duration
	MongoURI          string
	MongoDatabase     string
	WizardIdleTimeout time.Duration
	RateLimitRPS      float64
	RateLimitBurst    int
}

// Load reads configuration from environment variables (and an optional config.yaml)
// with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("RESULT_STORE", "memory")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RESULT_TTL", "0s")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "aurelia")
	v.SetDefault("WIZARD_IDLE_TIMEOUT", "30m")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			telemetry.Warn("config.read_failed", map[string]any{"error": err})
		}
	}

	env := normalizeEnv(v.GetString("ENV"))
	store := normalizeStoreType(v.GetString("RESULT_STORE"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))

	if store == "postgres" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"result_store": store})
	}

	return Config{
		Port:              v.GetString("PORT"),
		Env:               env,
		LogLevel:          v.GetString("LOG_LEVEL"),
		CORSAllowOrigin:   splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		ResultStore:       store,
		DatabaseURL:       dbURL,
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		ResultTTL:         nonNegative(v.GetDuration("RESULT_TTL")),
		MongoURI:          v.GetString("MONGO_URI"),
		MongoDatabase:     v.GetString("MONGO_DATABASE"),
		WizardIdleTimeout: nonNegative(v.GetDuration("WIZARD_IDLE_TIMEOUT")),
		RateLimitRPS:      v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:    v.GetInt("RATE_LIMIT_BURST"),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "redis":
		return "redis"
	case "postgres", "pg":
		return "postgres"
	case "mongo", "mongodb":
		return "mongo"
	default:
		return "memory"
	}
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
