package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/core/engine"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Supported ledger backends.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	LedgerBackend string
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DB"`

	// TimeZone names the location used for "today" and "this month" when the caller does not pin asOf.
	TimeZone string
	Location *time.Location

	EssentialCategories     []string
	DiscretionaryCategories []string
	Engine                  engine.Settings

	// RateLimit uses the ulule/limiter format, e.g. "60-M".
	RateLimit          string
	WeeklySummaryCron  string
	CORSAllowedOrigins []string
}

// CategoryPolicy builds the shared category policy from the configured lists.
func (c *Config) CategoryPolicy() domain.CategoryPolicy {
	return domain.NewCategoryPolicy(c.EssentialCategories, c.DiscretionaryCategories)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	d := engine.DefaultSettings()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "money-coach-app")
	viper.SetDefault("LEDGER_BACKEND", BackendPostgres)
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DB", "money_coach")
	viper.SetDefault("APP_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("ESSENTIAL_CATEGORIES", strings.Join(domain.DefaultEssentialCategories, ","))
	viper.SetDefault("DISCRETIONARY_CATEGORIES", strings.Join(domain.DefaultDiscretionaryCategories, ","))
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("WEEKLY_SUMMARY_CRON", "0 9 * * 1")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("ENGINE_INCOME_LOOKBACK_MONTHS", d.IncomeLookbackMonths)
	viper.SetDefault("ENGINE_DRIFT_LOOKBACK_MONTHS", d.DriftLookbackMonths)
	viper.SetDefault("ENGINE_DRIFT_MIN_TRANSACTIONS", d.DriftMinTransactions)
	viper.SetDefault("ENGINE_EXHAUSTION_LOOKBACK_DAYS", d.ExhaustionLookbackDays)
	viper.SetDefault("ENGINE_VELOCITY_WINDOW_DAYS", d.VelocityWindowDays)
	viper.SetDefault("ENGINE_VELOCITY_TOLERANCE", d.VelocityTolerance)
	viper.SetDefault("ENGINE_CATEGORY_SHARE_LIMIT_PERCENT", d.CategoryShareLimitPercent)
	viper.SetDefault("ENGINE_OVERSPEND_WEEKS", d.OverspendWeeks)
	viper.SetDefault("ENGINE_WEEKLY_OVERSPEND_THRESHOLD", d.WeeklyOverspendThreshold.String())
	viper.SetDefault("ENGINE_HEALTH_LOOKBACK_DAYS", d.HealthLookbackDays)
	viper.SetDefault("ENGINE_FORECAST_DAYS", d.ForecastDays)
	viper.SetDefault("ENGINE_LOW_BALANCE_THRESHOLD", d.LowBalanceThreshold.String())

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.LedgerBackend = strings.ToLower(viper.GetString("LEDGER_BACKEND"))
	switch cfg.LedgerBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case BackendMongo:
	default:
		return nil, fmt.Errorf("unsupported LEDGER_BACKEND %q, want %q or %q", cfg.LedgerBackend, BackendPostgres, BackendMongo)
	}
	cfg.MongoURI = viper.GetString("MONGODB_URI")
	cfg.MongoDatabase = viper.GetString("MONGODB_DB")

	cfg.TimeZone = viper.GetString("APP_TIMEZONE")
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	cfg.EssentialCategories = splitList(viper.GetString("ESSENTIAL_CATEGORIES"))
	cfg.DiscretionaryCategories = splitList(viper.GetString("DISCRETIONARY_CATEGORIES"))

	settings, err := loadEngineSettings()
	if err != nil {
		return nil, err
	}
	cfg.Engine = settings

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.WeeklySummaryCron = viper.GetString("WEEKLY_SUMMARY_CRON")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}

func loadEngineSettings() (engine.Settings, error) {
	threshold, err := decimal.NewFromString(viper.GetString("ENGINE_WEEKLY_OVERSPEND_THRESHOLD"))
	if err != nil {
		return engine.Settings{}, fmt.Errorf("invalid ENGINE_WEEKLY_OVERSPEND_THRESHOLD: %w", err)
	}
	lowBalance, err := decimal.NewFromString(viper.GetString("ENGINE_LOW_BALANCE_THRESHOLD"))
	if err != nil {
		return engine.Settings{}, fmt.Errorf("invalid ENGINE_LOW_BALANCE_THRESHOLD: %w", err)
	}

	s := engine.Settings{
		IncomeLookbackMonths:      viper.GetInt("ENGINE_INCOME_LOOKBACK_MONTHS"),
		DriftLookbackMonths:       viper.GetInt("ENGINE_DRIFT_LOOKBACK_MONTHS"),
		DriftMinTransactions:      viper.GetInt("ENGINE_DRIFT_MIN_TRANSACTIONS"),
		ExhaustionLookbackDays:    viper.GetInt("ENGINE_EXHAUSTION_LOOKBACK_DAYS"),
		VelocityWindowDays:        viper.GetInt("ENGINE_VELOCITY_WINDOW_DAYS"),
		VelocityTolerance:         viper.GetFloat64("ENGINE_VELOCITY_TOLERANCE"),
		CategoryShareLimitPercent: viper.GetFloat64("ENGINE_CATEGORY_SHARE_LIMIT_PERCENT"),
		OverspendWeeks:            viper.GetInt("ENGINE_OVERSPEND_WEEKS"),
		WeeklyOverspendThreshold:  threshold,
		HealthLookbackDays:        viper.GetInt("ENGINE_HEALTH_LOOKBACK_DAYS"),
		ForecastDays:              viper.GetInt("ENGINE_FORECAST_DAYS"),
		LowBalanceThreshold:       lowBalance,
	}
	if s.VelocityTolerance < 0 || s.CategoryShareLimitPercent < 0 || s.CategoryShareLimitPercent > 100 {
		return engine.Settings{}, fmt.Errorf("engine tolerances out of range: velocity %v, category share %v", s.VelocityTolerance, s.CategoryShareLimitPercent)
	}
	return s.Normalize(), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
