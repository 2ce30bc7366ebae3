// Package config loads settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"

	"github.com/mmynk/servicecharge/internal/numeral"
)

type Config struct {
	// Draft storage
	DBPath string

	// Rendering
	Language string
	Currency string

	// Logging
	LogLevel string

	// Metrics textfile for node_exporter; empty disables it
	MetricsFile string
}

// Load reads .env files (if any) and then the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing .env is normal outside development.
		_ = godotenv.Load(f)
	}

	return &Config{
		DBPath:      getEnv("BILL_DB_PATH", "./data/bills.db"),
		Language:    getEnv("BILL_LANGUAGE", numeral.CodeBangla),
		Currency:    strings.ToUpper(getEnv("BILL_CURRENCY", "BDT")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsFile: getEnv("METRICS_FILE", ""),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if !numeral.Default.Supported(c.Language) {
		var codes []string
		for _, l := range numeral.Default.Languages() {
			codes = append(codes, l.Code)
		}
		errors = append(errors, fmt.Sprintf("unsupported language '%s': must be one of %v", c.Language, codes))
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be an ISO 4217 code", c.Currency))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Display returns the numeral display settings for bills: whole units in the
// configured currency.
func (c *Config) Display() numeral.Display {
	return numeral.WholeUnits(c.Currency)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
