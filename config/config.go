package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Local fallback store (per-device sqlite file)
	LocalStorePath string

	// External geo services
	GeocoderBaseURL string
	RouterBaseURL   string
	RouterProfile   string

	// Whether the deployment has a position stream to back live navigation
	LocationEnabled bool

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	locationEnabled, _ := strconv.ParseBool(getEnv("LOCATION_ENABLED", "true"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/sportconnect?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		LocalStorePath: getEnv("LOCAL_STORE_PATH", "./data/local_records.db"),

		GeocoderBaseURL: getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		RouterBaseURL:   getEnv("ROUTER_BASE_URL", "https://router.project-osrm.org"),
		RouterProfile:   getEnv("ROUTER_PROFILE", "driving"),

		LocationEnabled: locationEnabled,

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@sportconnect.app"),
		FromName:     getEnv("FROM_NAME", "SportConnect"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
