package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DBConfig holds database configuration
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// GetDSN returns the PostgreSQL connection string
func (c *DBConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// AIConfig holds text-completion provider configuration.
// An empty APIKey is valid: plan generation then serves the static plan only.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// Config holds all configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	JWT    JWTConfig
	AI     AIConfig
	Log    struct {
		Level string
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables. It fails when JWT_SECRET is unset: tokens must never be signed
// with a baked-in default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	config := &Config{
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", "ironlog"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		JWT: JWTConfig{
			Secret:   secret,
			TokenTTL: getEnvAsDuration("JWT_TOKEN_TTL", 7*24*time.Hour),
		},
		AI: loadAIConfig(),
	}
	config.Log.Level = getEnv("LOG_LEVEL", "info")

	return config, nil
}

func loadAIConfig() AIConfig {
	provider := getEnv("AI_PROVIDER", "openai")

	switch provider {
	case "gemini":
		return AIConfig{
			Provider: provider,
			APIKey:   os.Getenv("GEMINI_API_KEY"),
			Model:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		}
	default:
		return AIConfig{
			Provider: "openai",
			APIKey:   os.Getenv("OPENAI_API_KEY"),
			Model:    getEnv("OPENAI_MODEL", "gpt-4o"),
		}
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
