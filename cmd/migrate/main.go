// Standalone schema bootstrap. Safe to run repeatedly: AutoMigrate only
// creates what is missing.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ironlog/internal/config"
	"ironlog/internal/infra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.DBConfig{
		Host:            envOr("DB_HOST", "localhost"),
		Port:            envOr("DB_PORT", "5432"),
		User:            envOr("DB_USER", "postgres"),
		Password:        envOr("DB_PASSWORD", "password"),
		DBName:          envOr("DB_NAME", "ironlog"),
		SSLMode:         envOr("DB_SSL_MODE", "disable"),
		MaxIdleConns:    2,
		MaxOpenConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := infra.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Println("Tables ready: users, workout_logs, workout_exercises, weight_entries, nutrition_entries, workout_plans")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
