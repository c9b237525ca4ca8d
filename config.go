package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
	"github.com/takaryo1010/giongo/internal/logging"
	"github.com/takaryo1010/giongo/internal/onomatopoeia"
	"github.com/takaryo1010/giongo/internal/source/sheet"
)

// Config holds the compiler configuration.
type Config struct {
	SimplePath string         `yaml:"simple_path" env:"GIONGO_SIMPLE_PATH" env-default:"data/nihongoresources.com/giongo.txt"`
	SheetGlob  string         `yaml:"sheet_glob"  env:"GIONGO_SHEET_GLOB"  env-default:"data/japanese-manga-sfx/*.csv"`
	Marker     string         `yaml:"marker"      env:"GIONGO_MARKER"      env-default:"Japanese"`
	Artifacts  []string       `yaml:"artifacts"   env:"GIONGO_ARTIFACTS"   env-default:"More Â»"`
	OutputPath string         `yaml:"output_path" env:"GIONGO_OUTPUT_PATH" env-default:"onomatopoeia.json"`
	Format     string         `yaml:"format"      env:"GIONGO_FORMAT"`
	DryRun     bool           `yaml:"dry_run"     env:"GIONGO_DRY_RUN"`
	Log        logging.Config `yaml:"log"`
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). A .env file in the
// working directory is loaded into the environment first, if present.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, giongoerr.ErrNotFound)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have no usable zero value.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SimplePath) == "" {
		return fmt.Errorf("config: simple_path is required")
	}
	if strings.TrimSpace(c.SheetGlob) == "" {
		return fmt.Errorf("config: sheet_glob is required")
	}
	if c.Marker == "" {
		return fmt.Errorf("config: marker is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("config: output_path is required")
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// OutputFormat returns the configured format, or the one implied by the
// output file extension.
func (c *Config) OutputFormat() (onomatopoeia.Format, error) {
	if c.Format != "" {
		return onomatopoeia.ParseFormat(c.Format)
	}
	return onomatopoeia.FormatForPath(c.OutputPath), nil
}

// SheetOptions returns the extraction options for the tabular sources.
func (c *Config) SheetOptions() sheet.Options {
	return sheet.Options{
		Marker:    c.Marker,
		Artifacts: c.Artifacts,
	}
}
