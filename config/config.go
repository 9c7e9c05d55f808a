package config

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// .env is optional, real deployments use environment variables
	godotenv.Load(".env")
}

// Config trả về giá trị env theo key
func Config(key string) string {
	return os.Getenv(key)
}

func ConfigOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
