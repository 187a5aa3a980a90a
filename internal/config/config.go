// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/eligibility"
)

type Config struct {
	// HTTP
	APIURL           string
	Port             string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging
	LogFormat string

	// Database
	DBPath string

	// Ledger
	CutoffDay int
	Timezone  string

	// AMQP, publishing is disabled when AMQPURL is empty
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string
}

func Load() *Config {
	return &Config{
		APIURL:           getEnv("API_URL", ""),
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		LogFormat: os.Getenv("LOG_FORMAT"),

		DBPath: getEnv("DB_PATH", "data/family-helper.db"),

		CutoffDay: getEnvInt("ALLOCATION_CUTOFF_DAY", eligibility.DefaultCutoffDay),
		Timezone:  getEnv("TIMEZONE", "Asia/Tokyo"),

		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "family-helper"),
		AMQPRoutingKey: getEnv("AMQP_ROUTING_KEY", "ledger.events"),
	}
}

// Validate returns all problems of the configuration in one error.
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "API_URL must be set")
	} else if _, err := c.BaseURL(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of debug, release or test", c.GinMode))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be human or json", c.LogFormat))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if _, err := eligibility.New(c.CutoffDay); err != nil {
		errors = append(errors, fmt.Sprintf("invalid allocation cutoff day: %v", err))
	}

	if _, err := c.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPRoutingKey == "" {
			errors = append(errors, "AMQP routing key cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API URL.
func (c *Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("scheme must be http or https, not '%s'", u.Scheme)
	}

	return u, nil
}

// Location returns the time zone that calendar days are counted in.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Policy returns the allocation eligibility policy.
func (c *Config) Policy() (eligibility.Policy, error) {
	return eligibility.New(c.CutoffDay)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
