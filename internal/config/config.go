package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Email EmailConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// StoreConfig holds the location of the JSON data file
type StoreConfig struct {
	DataFile string
}

// EmailConfig holds the Resend API settings and the department
// notification lists. An empty APIKey disables all sends.
type EmailConfig struct {
	APIKey               string
	From                 string
	HREmails             []string
	DepartmentHeadEmails []string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Store configuration
	config.Store = StoreConfig{
		DataFile: getEnv("DATA_FILE", "data.json"),
	}

	// Email configuration
	config.Email = EmailConfig{
		APIKey:               getEnv("RESEND_API_KEY", ""),
		From:                 getEnv("EMAIL_FROM", "noreply@yourdomain.com"),
		HREmails:             getEnvSlice("HR_EMAIL"),
		DepartmentHeadEmails: getEnvSlice("DEPARTMENT_HEAD_EMAIL"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.DataFile == "" {
		return fmt.Errorf("DATA_FILE is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
