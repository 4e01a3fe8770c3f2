package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ReportWorkerLimit bounds the per-account fan-out of the report
	// generators. Keep it at or below the database pool size.
	ReportWorkerLimit int

	// DBMaxConns bounds the pgx pool. Zero keeps the driver default.
	DBMaxConns int32

	// FiscalYearStartMonth is the month (1-12) the fiscal year begins in.
	// April is the default; a value of 1 collapses fiscal labels to the
	// calendar year.
	FiscalYearStartMonth time.Month

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "finbooks-backend")
	viper.SetDefault("REPORT_WORKER_LIMIT", 8)
	viper.SetDefault("FISCAL_YEAR_START_MONTH", 4)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("DB_MAX_CONNS", 0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if !cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.ReportWorkerLimit = viper.GetInt("REPORT_WORKER_LIMIT")
	if cfg.ReportWorkerLimit <= 0 {
		cfg.ReportWorkerLimit = 8
		log.Printf("Warning: Invalid REPORT_WORKER_LIMIT. Defaulting to %d.\n", cfg.ReportWorkerLimit)
	}

	fiscalStart := viper.GetInt("FISCAL_YEAR_START_MONTH")
	if fiscalStart < 1 || fiscalStart > 12 {
		fiscalStart = 4
		log.Printf("Warning: Invalid FISCAL_YEAR_START_MONTH. Defaulting to %d (April).\n", fiscalStart)
	}
	cfg.FiscalYearStartMonth = time.Month(fiscalStart)

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")

	return cfg, nil
}
