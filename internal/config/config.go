package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// PlaceholderBaseURL is the non-functional default baked into client builds.
// A client whose base URL is unset or still set to this value stays in
// offline mode for the whole session.
const PlaceholderBaseURL = "https://your-server.com"

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Authoritative store
	StorageDriver string // "file", "sqlite" or "postgres"
	DataDir       string // file driver: one JSON file per token
	PublicDir     string // static assets (setup and tip pages)

	// Client
	BaseURL        string
	RequestTimeout time.Duration
	ClientDir      string // device-local store and bookmark list
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port:          getEnv("PORT", "3000"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "data"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),

		// Client
		BaseURL:   getEnv("TIPJAR_BASE_URL", ""),
		ClientDir: getEnv("TIPJAR_HOME", ".tipjar"),
	}

	// Parse client request timeout
	timeoutStr := getEnv("TIPJAR_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid TIPJAR_TIMEOUT value '%s', falling back to 5s\n", timeoutStr)
		timeout = 5 * time.Second
	}
	config.RequestTimeout = timeout

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
