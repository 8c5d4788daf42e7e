package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CORS
	FrontendBaseURL string

	// Upload limits
	MaxUploadBytes  int64
	UploadRateLimit string // ulule/limiter formatted rate, e.g. "10-M"

	// How far back the classifier history scan reaches.
	ClassifierHistoryWindow time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(5<<20))
	viper.SetDefault("UPLOAD_RATE_LIMIT", "30-M")
	viper.SetDefault("CLASSIFIER_HISTORY_WINDOW", "8760h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	cfg.UploadRateLimit = viper.GetString("UPLOAD_RATE_LIMIT")

	historyWindowStr := viper.GetString("CLASSIFIER_HISTORY_WINDOW")
	historyWindow, err := time.ParseDuration(historyWindowStr)
	if err != nil {
		historyWindow = 365 * 24 * time.Hour
		if historyWindowStr != "" {
			log.Printf("Warning: Invalid value for CLASSIFIER_HISTORY_WINDOW ('%s'). Defaulting to %s.\n", historyWindowStr, historyWindow.String())
		}
	}
	cfg.ClassifierHistoryWindow = historyWindow

	return cfg, nil
}
