package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Target store backends.
const (
	TargetStorePostgres = "postgres"
	TargetStoreSQLite   = "sqlite"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=trainpulse
//	LOG_LEVEL=info
//	APP_TIMEZONE=America/Sao_Paulo
//	TARGET_STORE=postgres
//	TARGET_MONTHLY_HOURS=120
//	TARGET_SCORE=80
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Log      LogConfig      // Logger settings
	Targets  TargetsConfig  // Target store and defaults
	Timezone string         // IANA zone used to snapshot "now" for aggregations
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int    // Requests allowed per client IP per minute
}

// PostgresConfig defines connection details for PostgreSQL.
//
// URL is the computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string // debug|info|warn|error
	Pretty bool   // human-readable console output
}

// TargetsConfig selects where the monthly-hours and score targets live and
// which values apply before anything was saved.
type TargetsConfig struct {
	Store               string  // "postgres" or "sqlite"
	SQLitePath          string  // file used when Store is "sqlite"
	DefaultMonthlyHours float64 // fallback monthly hours target
	DefaultScore        float64 // fallback average score target
}

// AppConfig is the globally accessible configuration instance, populated once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "trainpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("TARGET_STORE", TargetStorePostgres)
	viper.SetDefault("SQLITE_PATH", "./data/targets.db")
	viper.SetDefault("TARGET_MONTHLY_HOURS", 120)
	viper.SetDefault("TARGET_SCORE", 80)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
		Targets: TargetsConfig{
			Store:               viper.GetString("TARGET_STORE"),
			SQLitePath:          viper.GetString("SQLITE_PATH"),
			DefaultMonthlyHours: viper.GetFloat64("TARGET_MONTHLY_HOURS"),
			DefaultScore:        viper.GetFloat64("TARGET_SCORE"),
		},
		Timezone: viper.GetString("APP_TIMEZONE"),
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}

// missingKeys lists every required key that is absent or out of range.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	switch cfg.Targets.Store {
	case TargetStorePostgres:
	case TargetStoreSQLite:
		if cfg.Targets.SQLitePath == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	default:
		missing = append(missing, "TARGET_STORE")
	}
	if cfg.Targets.DefaultMonthlyHours < 0 {
		missing = append(missing, "TARGET_MONTHLY_HOURS")
	}
	if cfg.Targets.DefaultScore < 0 {
		missing = append(missing, "TARGET_SCORE")
	}

	return missing
}
