package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config centralizes the environment-driven settings of the server.
type Config struct {
	Env         string // "local", "dev", "prod"
	DatabaseURL string
	Port        string
	CORSOrigin  string
}

// Load reads .env when present and resolves settings from the environment.
// DATABASE_URL has no default and is required.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := Config{
		Env:         getEnv("ENV", "local"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getEnv("PORT", "4000"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
	return cfg
}

// getEnv returns the environment variable or the default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
