package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v9"

	"budgetbook/internal/log"
)

// Config holds the application settings read from the environment.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Optional budget plan applied at start-up
	SeedFile string `env:"BUDGET_SEED_FILE"`

	// Chart
	ChartWidth      int    `env:"CHART_WIDTH" envDefault:"40"`
	ChartLabelWidth int    `env:"CHART_LABEL_WIDTH" envDefault:"14"`
	ChartColor      string `env:"CHART_COLOR" envDefault:"#5f87ff"`

	// AMQP event publishing, disabled when the URL is empty
	AMQPURL           string `env:"AMQP_URL"`
	AMQPExchange      string `env:"AMQP_EXCHANGE" envDefault:"budgetbook"`
	AMQPRoutingPrefix string `env:"AMQP_ROUTING_PREFIX" envDefault:"ledger"`
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if c.SeedFile != "" {
		if info, err := os.Stat(c.SeedFile); err != nil {
			errors = append(errors, fmt.Sprintf("budget seed file '%s' is not readable: %v", c.SeedFile, err))
		} else if info.IsDir() {
			errors = append(errors, fmt.Sprintf("budget seed file '%s' is a directory", c.SeedFile))
		}
	}

	if c.ChartWidth < 10 || c.ChartWidth > 200 {
		errors = append(errors, fmt.Sprintf("invalid chart width %d: must be between 10 and 200", c.ChartWidth))
	}
	if c.ChartLabelWidth < 4 || c.ChartLabelWidth > 60 {
		errors = append(errors, fmt.Sprintf("invalid chart label width %d: must be between 4 and 60", c.ChartLabelWidth))
	}
	if !hexColor.MatchString(c.ChartColor) {
		errors = append(errors, fmt.Sprintf("invalid chart color '%s': must be a hex color like #5f87ff", c.ChartColor))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPRoutingPrefix == "" {
			errors = append(errors, "AMQP routing prefix cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// EventsEnabled reports whether ledger events should be published.
func (c *Config) EventsEnabled() bool {
	return c.AMQPURL != ""
}
