package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string
	Port                 string
	IsProduction         bool
	EnableDBCheck        bool
	JWTSecret            string
	JWTIssuer            string
	StorageDriver        string // postgres or memory
	MigrationsPath       string
	RateLimit            string // ulule formatted, e.g. 100-M
	CORSAllowedOrigins   []string
	RefNumberMaxAttempts int
	DefaultCurrency      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("REF_NUMBER_MAX_ATTEMPTS", 3)
	viper.SetDefault("DEFAULT_CURRENCY", "BOB")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		StorageDriver:        strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		MigrationsPath:       viper.GetString("MIGRATIONS_PATH"),
		RateLimit:            viper.GetString("RATE_LIMIT"),
		RefNumberMaxAttempts: viper.GetInt("REF_NUMBER_MAX_ATTEMPTS"),
		DefaultCurrency:      strings.ToUpper(viper.GetString("DEFAULT_CURRENCY")),
	}
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.StorageDriver != StorageDriverPostgres && cfg.StorageDriver != StorageDriverMemory {
		log.Printf("Warning: unknown STORAGE_DRIVER %q. Defaulting to %s\n", cfg.StorageDriver, StorageDriverPostgres)
		cfg.StorageDriver = StorageDriverPostgres
	}
	if cfg.StorageDriver == StorageDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.RefNumberMaxAttempts <= 0 {
		cfg.RefNumberMaxAttempts = 3
	}

	return cfg, nil
}
