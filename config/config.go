package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIRONMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

type EnvironmentVariable struct {
	// All variables
	GO_ENV string
	PORT   int
	// Dataset configuration
	DATASET_SEED int64
	// Redis Configuration (export cache; optional)
	REDIS_URL        string
	EXPORT_CACHE_TTL time.Duration
	// Scheduled jobs
	CRON_ENABLED bool
	// CORS
	ALLOWED_ORIGINS string
}

func Get() (*EnvironmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	seed, err := strconv.ParseInt(os.Getenv("DATASET_SEED"), 10, 64)
	if err != nil {
		seed = 42
	}

	ttlMinutes, err := strconv.Atoi(os.Getenv("EXPORT_CACHE_TTL_MINUTES"))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 60
	}

	envVariables := &EnvironmentVariable{
		GO_ENV: os.Getenv("GO_ENV"),
		PORT:   port,
		// Dataset
		DATASET_SEED: seed,
		// Redis
		REDIS_URL:        os.Getenv("REDIS_URL"),
		EXPORT_CACHE_TTL: time.Duration(ttlMinutes) * time.Minute,
		// Cron (default enabled)
		CRON_ENABLED: os.Getenv("CRON_ENABLED") != "false",
		// CORS
		ALLOWED_ORIGINS: os.Getenv("ALLOWED_ORIGINS"),
	}

	return envVariables, nil
}
