package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Admin session
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// SMS provider (Twilio). SimulateSMS is the safe default: without
	// credentials no real message ever leaves the process.
	TwilioAccountSID  string        `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string        `env:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string        `env:"TWILIO_PHONE_NUMBER"`
	SimulateSMS       bool          `env:"SIMULATE_SMS" envDefault:"true"`
	SMSTimeout        time.Duration `env:"SMS_TIMEOUT" envDefault:"5s"`
	SMSCountryCode    string        `env:"SMS_COUNTRY_CODE" envDefault:"91"`

	// Bootstrap admin account
	DefaultAdminUsername string `env:"DEFAULT_ADMIN_USERNAME" envDefault:"admin"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD" envDefault:"admin123"`
}

// LoadConfig reads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		SessionTTL:           getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		SimulateSMS:          getEnvAsBool("SIMULATE_SMS", true),
		SMSTimeout:           getEnvAsDuration("SMS_TIMEOUT", 5*time.Second),
		SMSCountryCode:       getEnv("SMS_COUNTRY_CODE", "91"),
		DefaultAdminUsername: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or the default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the value of an environment variable as int or the default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool returns the value of an environment variable as bool or the default.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the value of an environment variable as time.Duration or the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
