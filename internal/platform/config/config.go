package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Database drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	DBDriver       string
	DatabaseURL    string
	SQLitePath     string
	MigrationsPath string

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	RateLimit       string `mapstructure:"RATE_LIMIT"`
	ShutdownTimeout time.Duration

	// Timesheet rules
	Location               *time.Location
	OvertimeThresholdHours float64
	HourlyCostRate         decimal.Decimal
	BillingMarkup          decimal.Decimal
	PayrollWithholdingRate decimal.Decimal
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "timesheet.db")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("OVERTIME_THRESHOLD_HOURS", 40)
	v.SetDefault("HOURLY_COST_RATE", "100")
	v.SetDefault("BILLING_MARKUP", "1.2")
	v.SetDefault("PAYROLL_WITHHOLDING_RATE", "0.25")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		DBDriver:        strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected %q or %q", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdown <= 0 {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	tz := v.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	cfg.OvertimeThresholdHours = v.GetFloat64("OVERTIME_THRESHOLD_HOURS")
	if cfg.OvertimeThresholdHours < 0 {
		return nil, fmt.Errorf("invalid OVERTIME_THRESHOLD_HOURS %v: must not be negative", cfg.OvertimeThresholdHours)
	}

	if cfg.HourlyCostRate, err = nonNegativeDecimal(v, "HOURLY_COST_RATE"); err != nil {
		return nil, err
	}
	if cfg.BillingMarkup, err = nonNegativeDecimal(v, "BILLING_MARKUP"); err != nil {
		return nil, err
	}
	if cfg.PayrollWithholdingRate, err = nonNegativeDecimal(v, "PAYROLL_WITHHOLDING_RATE"); err != nil {
		return nil, err
	}
	if cfg.PayrollWithholdingRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("invalid PAYROLL_WITHHOLDING_RATE %s: must be between 0 and 1", cfg.PayrollWithholdingRate)
	}

	return cfg, nil
}

func nonNegativeDecimal(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid %s %s: must not be negative", key, d)
	}
	return d, nil
}
