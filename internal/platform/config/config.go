package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	UseMemoryStore bool

	// Connection manager retry policy
	DBMaxRetries     int
	DBRetryBaseDelay time.Duration
	DBRetryMaxDelay  time.Duration

	// Per-IP request ceiling on the API group
	RateLimitRequests int64
	RateLimitWindow   time.Duration

	CORSOrigins []string

	// Seed wallet given to every new registration
	StartingCurrency string
	StartingBalance  decimal.Decimal
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("USE_MEMORY_STORE", false)
	viper.SetDefault("DB_MAX_RETRIES", 5)
	viper.SetDefault("DB_RETRY_BASE_DELAY", "1s")
	viper.SetDefault("DB_RETRY_MAX_DELAY", "30s")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW", "15m")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000,http://localhost:4173")
	viper.SetDefault("STARTING_CURRENCY", "USD")
	viper.SetDefault("STARTING_BALANCE", "1000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.UseMemoryStore = viper.GetBool("USE_MEMORY_STORE")
	cfg.DBMaxRetries = viper.GetInt("DB_MAX_RETRIES")

	baseDelayStr := viper.GetString("DB_RETRY_BASE_DELAY")
	baseDelay, err := time.ParseDuration(baseDelayStr)
	if err != nil {
		baseDelay = time.Second
		log.Printf("Warning: Invalid value for DB_RETRY_BASE_DELAY ('%s'). Defaulting to %s.\n", baseDelayStr, baseDelay)
	}
	cfg.DBRetryBaseDelay = baseDelay

	maxDelayStr := viper.GetString("DB_RETRY_MAX_DELAY")
	maxDelay, err := time.ParseDuration(maxDelayStr)
	if err != nil {
		maxDelay = 30 * time.Second
		log.Printf("Warning: Invalid value for DB_RETRY_MAX_DELAY ('%s'). Defaulting to %s.\n", maxDelayStr, maxDelay)
	}
	cfg.DBRetryMaxDelay = maxDelay

	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")

	windowStr := viper.GetString("RATE_LIMIT_WINDOW")
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		window = 15 * time.Minute
		log.Printf("Warning: Invalid value for RATE_LIMIT_WINDOW ('%s'). Defaulting to %s.\n", windowStr, window)
	}
	cfg.RateLimitWindow = window

	for _, origin := range strings.Split(viper.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	cfg.StartingCurrency = strings.ToUpper(viper.GetString("STARTING_CURRENCY"))

	balanceStr := viper.GetString("STARTING_BALANCE")
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		balance = decimal.NewFromInt(1000)
		log.Printf("Warning: Invalid value for STARTING_BALANCE ('%s'). Defaulting to %s.\n", balanceStr, balance)
	}
	cfg.StartingBalance = balance

	return cfg, nil
}
