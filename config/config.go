package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	ServerPort string

	// DBDriver selects the reservation store implementation: "postgres" for
	// the durable store, "memory" for a process-local one.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// APIKey is the static key clients must present; required.
	APIKey string

	// RabbitURL enables lifecycle event publishing when set.
	RabbitURL string

	RestaurantsFile string

	LogLevel string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", DriverPostgres),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "reservations"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		APIKey:          os.Getenv("API_KEY"),
		RabbitURL:       os.Getenv("RABBITMQ_URL"),
		RestaurantsFile: getEnv("RESTAURANTS_FILE", "restaurants.json"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.APIKey == "" {
		log.Fatal("missing required env var: API_KEY")
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverMemory {
		log.Fatalf("unsupported DB_DRIVER: %q", cfg.DBDriver)
	}

	return cfg
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
