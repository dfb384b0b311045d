package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Budget   BudgetConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
	SeedDatabase    bool
}

type JWTConfig struct {
	Secret []byte
	Issuer string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// BudgetConfig holds the defaults used when a user's first budget is seeded
// and the dashboard settings.
type BudgetConfig struct {
	DefaultOverallAmount decimal.Decimal
	Timezone             string
	HistoryMonths        int
	SourceMaxFailures    int
	SourceResetTimeout   time.Duration
}

type LoggingConfig struct {
	Level  slog.Level
	Format string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "budget_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			RunMigrations:   getBoolEnv("RUN_MIGRATIONS", true),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
		},
		JWT: JWTConfig{
			Issuer: getEnv("JWT_ISSUER", "budget-api"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Budget: BudgetConfig{
			DefaultOverallAmount: getDecimalEnv("BUDGET_DEFAULT_OVERALL", decimal.NewFromInt(5000)),
			Timezone:             getEnv("BUDGET_TIMEZONE", "Local"),
			HistoryMonths:        getIntEnv("DASHBOARD_HISTORY_MONTHS", 6),
			SourceMaxFailures:    getIntEnv("TRANSACTION_SOURCE_MAX_FAILURES", 5),
			SourceResetTimeout:   getDurationEnv("TRANSACTION_SOURCE_RESET_TIMEOUT", 30*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	secret, err := config.loadJWTSecret()
	if err != nil {
		log.Fatal("Failed to load JWT secret:", err)
	}
	config.JWT.Secret = secret

	return config
}

// Validate checks settings that would otherwise fail at request time
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", c.Server.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if !c.Budget.DefaultOverallAmount.IsPositive() {
		return fmt.Errorf("invalid default overall budget %s: must be greater than 0", c.Budget.DefaultOverallAmount)
	}
	if c.Budget.HistoryMonths < 1 || c.Budget.HistoryMonths > 24 {
		return fmt.Errorf("invalid dashboard history %d: must be between 1 and 24 months", c.Budget.HistoryMonths)
	}
	if c.Security.RateLimitPerSecond < 1 || c.Security.RateLimitBurst < 1 {
		return errors.New("rate limit settings must be positive")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Location resolves the configured timezone used to interpret transaction dates
func (c *BudgetConfig) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("WARNING: unknown BUDGET_TIMEZONE %q, falling back to local time", c.Timezone)
		return time.Local
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if amount, err := decimal.NewFromString(value); err == nil {
			return amount
		}
	}
	return defaultValue
}

func getLogLevelEnv(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}

// loadJWTSecret loads the HMAC secret used to verify access tokens
// Priority order:
// 1. JWT_SECRET env var (works in all environments)
// 2. production without JWT_SECRET fails
// 3. development/testing falls back to a fixed local secret
func (c *Config) loadJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret != "" {
		if len(secret) < 32 {
			return nil, errors.New("JWT_SECRET must be at least 32 characters")
		}
		return []byte(secret), nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: using built-in JWT secret (set JWT_SECRET to override)")
	return []byte("development-only-secret-change-me-please"), nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
