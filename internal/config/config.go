package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBURL         string
	HTTPPort      string
	RedisAddr     string
	JWTSecret     string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		DBURL:         envOr("DB_URL", "job_portal.db"), // postgres://... or a sqlite file path
		HTTPPort:      envOr("HTTP_PORT", ":8080"),
		RedisAddr:     os.Getenv("REDIS_ADDR"), // optional, e.g. redis:6379
		JWTSecret:     envOr("JWT_SECRET", "your-secret-key-here"),
		UploadDir:     envOr("UPLOAD_DIR", "uploads"),
		AdminEmail:    envOr("ADMIN_EMAIL", "admin@jobportal.com"),
		AdminPassword: envOr("ADMIN_PASSWORD", "admin123"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
