// Package config loads tradebook settings from TRADEBOOK_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// Prefix is the environment variable prefix.
	Prefix = "TRADEBOOK"
	// EnvFile is read from the working directory when present. Variables
	// already set in the environment win.
	EnvFile = ".env"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `envconfig:"LOGGING"`
	Report  ReportConfig  `envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// ReportConfig contains workbook generation settings
type ReportConfig struct {
	MinColumnWidth    float64 `envconfig:"MIN_COLUMN_WIDTH" default:"12" validate:"gt=0"`
	MaxColumnWidth    float64 `envconfig:"MAX_COLUMN_WIDTH" default:"40" validate:"gtefield=MinColumnWidth"`
	OptionalSummaries bool    `envconfig:"OPTIONAL_SUMMARIES" default:"false"`
	Charts            bool    `envconfig:"CHARTS" default:"true"`
	LookupFile        string  `envconfig:"LOOKUP_FILE"`
}

// Load loads configuration from the .env file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", EnvFile, err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate normalises the log settings and checks every field tag.
func (c *Config) Validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)

	err := validator.New().Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s: value %v fails %q", fe.Namespace(), fe.Value(), fe.Tag())
	}
	return err
}
