package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8080", Environment: "testing"},
		Security: SecurityConfig{
			RateLimitPerSecond: 5,
			RateLimitBurst:     10,
		},
		Budget: BudgetConfig{
			DefaultOverallAmount: decimal.NewFromInt(5000),
			HistoryMonths:        6,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Server.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Server.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "zero default overall",
			mutate:      func(c *Config) { c.Budget.DefaultOverallAmount = decimal.Zero },
			wantErr:     true,
			errorString: "invalid default overall budget 0: must be greater than 0",
		},
		{
			name:        "history months out of range",
			mutate:      func(c *Config) { c.Budget.HistoryMonths = 0 },
			wantErr:     true,
			errorString: "invalid dashboard history 0: must be between 1 and 24 months",
		},
		{
			name:        "rate limit disabled",
			mutate:      func(c *Config) { c.Security.RateLimitBurst = 0 },
			wantErr:     true,
			errorString: "rate limit settings must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errorString, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("BUDGET_DEFAULT_OVERALL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsTesting())
	assert.True(t, decimal.NewFromInt(5000).Equal(cfg.Budget.DefaultOverallAmount))
	assert.Equal(t, 6, cfg.Budget.HistoryMonths)
	assert.Equal(t, 5, cfg.Budget.SourceMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Budget.SourceResetTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("BUDGET_DEFAULT_OVERALL", "2500.50")
	t.Setenv("BUDGET_TIMEZONE", "UTC")
	t.Setenv("DASHBOARD_HISTORY_MONTHS", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("TRANSACTION_SOURCE_RESET_TIMEOUT", "1m")

	cfg := Load()

	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), cfg.JWT.Secret)
	assert.True(t, decimal.RequireFromString("2500.50").Equal(cfg.Budget.DefaultOverallAmount))
	assert.Equal(t, time.UTC, cfg.Budget.Location())
	assert.Equal(t, 3, cfg.Budget.HistoryMonths)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.Budget.SourceResetTimeout)
}

func TestBudgetConfig_Location_Fallback(t *testing.T) {
	cfg := BudgetConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.Local, cfg.Location())

	cfg = BudgetConfig{Timezone: ""}
	assert.Equal(t, time.Local, cfg.Location())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "budgets",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=budgets sslmode=disable", cfg.DSN())
}
