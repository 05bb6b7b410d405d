package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	JWTSecret      string
	AuthEnabled    bool
	StorageBackend string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	SeedFile       string
}

func LoadConfig() Config {
	// Missing .env is fine; system environment wins either way.
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		AuthEnabled:    getEnv("AUTH_ENABLED", "") == "true",
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBHost:         getEnv("DB_HOST", ""),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", ""),
		SeedFile:       getEnv("SEED_FILE", "faqs.yaml"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
