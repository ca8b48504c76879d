package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. All
// values have working local-development defaults.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
	SeedOnStart bool
}

// Load reads a .env file when present, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getenv("API_PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=dental_practice sslmode=disable"),
		JWTSecret:   getenv("JWT_SECRET", ""),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		SeedOnStart: getenv("SEED_ON_START", "true") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
