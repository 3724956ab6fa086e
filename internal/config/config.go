package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	OTPExpiry time.Duration

	// NotificationReadDelay is how long after the feed is viewed the
	// deferred mark-all-read sweep fires.
	NotificationReadDelay time.Duration

	CORSOrigins string

	// SeedDemoData loads the sample users, posts and matches at startup.
	SeedDemoData bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTAccessExpiry:  getDurationEnv("JWT_ACCESS_EXPIRY", 15*time.Minute),
		JWTRefreshExpiry: getDurationEnv("JWT_REFRESH_EXPIRY", 7*24*time.Hour),

		OTPExpiry: getDurationEnv("OTP_EXPIRY", 10*time.Minute),

		NotificationReadDelay: getDurationEnv("NOTIFICATION_READ_DELAY", time.Second),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		SeedDemoData: getBoolEnv("SEED_DEMO_DATA", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
