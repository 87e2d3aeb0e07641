package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	IsProduction  bool

	// How long a single database connection attempt may take before it is
	// abandoned and reported as a timeout.
	DBConnectTimeout time.Duration

	// Exchange rate provider settings.
	RateAPIURL        string
	RateAPIKey        string
	RateHTTPTimeout   time.Duration
	RateRetryAttempts int
	RateRetryDelay    time.Duration
	RateCacheTTL      time.Duration

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_DATABASE", "currency_converter")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("EXCHANGE_RATE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")
	viper.SetDefault("RATE_HTTP_TIMEOUT", "8s")
	viper.SetDefault("RATE_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("RATE_RETRY_DELAY", "1s")
	viper.SetDefault("RATE_CACHE_TTL", "5m")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURI = viper.GetString("MONGODB_URI")
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGODB_URI environment variable not set.")
	}

	cfg.MongoDatabase = viper.GetString("MONGODB_DATABASE")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DBConnectTimeout = parseDurationOrDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	cfg.RateHTTPTimeout = parseDurationOrDefault("RATE_HTTP_TIMEOUT", 8*time.Second)
	cfg.RateRetryDelay = parseDurationOrDefault("RATE_RETRY_DELAY", time.Second)
	cfg.RateCacheTTL = parseDurationOrDefault("RATE_CACHE_TTL", 5*time.Minute)

	cfg.RateRetryAttempts = viper.GetInt("RATE_RETRY_MAX_ATTEMPTS")
	if cfg.RateRetryAttempts < 1 {
		cfg.RateRetryAttempts = 3
		log.Printf("Warning: Invalid value for RATE_RETRY_MAX_ATTEMPTS. Defaulting to %d.\n", cfg.RateRetryAttempts)
	}

	cfg.RateAPIURL = viper.GetString("EXCHANGE_RATE_API_URL")
	cfg.RateAPIKey = viper.GetString("EXCHANGE_RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Rate lookups will likely be rejected by the provider.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}

// parseDurationOrDefault reads a duration value (e.g. "5s", "1m") from viper,
// falling back to def when the value is missing or malformed.
func parseDurationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
