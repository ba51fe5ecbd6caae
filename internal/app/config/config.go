// Package config loads process-wide configuration from environment
// variables, once at startup.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every setting the service consumes. The JWT secret lives
// only here and in the token service; it must never be logged.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string

	// JWTTTL is the token lifetime; issued tokens expire after it.
	JWTTTL time.Duration

	// BcryptCost is the password hashing cost factor.
	BcryptCost int

	// TrustedOrigin is the single origin allowed to make cross-origin
	// requests. Empty disables CORS handling.
	TrustedOrigin string

	// DB holds the database connection settings.
	DB DBConfig

	// RunMigrations enables schema automigration on startup.
	RunMigrations bool
}

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string

	// Instance is the Cloud SQL unix-socket instance name. When set it
	// takes precedence over Host/Port.
	Instance string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; deployed environments inject real variables.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        getDuration("JWT_TTL", 24*time.Hour),
		BcryptCost:    getInt("BCRYPT_COST", bcrypt.DefaultCost),
		TrustedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		DB: DBConfig{
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			Name:     os.Getenv("DB_NAME"),
			Instance: os.Getenv("INSTANCE_CONNECTION_NAME"),
		},
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
