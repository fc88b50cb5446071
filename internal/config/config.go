package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port string

	// Storage
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// WatchInterval is how often the storage is polled for writes made by
	// other processes sharing the same database.
	WatchInterval time.Duration

	// Currency is the ISO 4217 code used when formatting amounts for display.
	Currency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "data/finledger.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finledger"),
		DBPassword: getEnv("DB_PASSWORD", "finledger"),
		DBName:     getEnv("DB_NAME", "finledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Currency: getEnv("CURRENCY", "CRC"),
	}

	intervalStr := getEnv("WATCH_INTERVAL", "2s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil || interval <= 0 {
		log.Printf("Warning: invalid WATCH_INTERVAL value '%s', falling back to 2s\n", intervalStr)
		interval = 2 * time.Second
	}
	config.WatchInterval = interval

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
