package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDefaults() error {
	if c.Defaults.Quality < 1 || c.Defaults.Quality > 100 {
		return fmt.Errorf("defaults.quality must be between 1 and 100, got %d", c.Defaults.Quality)
	}
	if c.Defaults.FPS <= 0 {
		return fmt.Errorf("defaults.fps must be positive, got %d", c.Defaults.FPS)
	}
	if c.Defaults.Speed <= 0 {
		return fmt.Errorf("defaults.speed must be positive, got %g", c.Defaults.Speed)
	}
	if c.Defaults.Width < 0 {
		return fmt.Errorf("defaults.width must not be negative, got %d", c.Defaults.Width)
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.VideoExtensions) == 0 {
		return errors.New("scan.video_extensions must not be empty")
	}
	for _, ext := range c.Scan.VideoExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan.video_extensions entries must start with a dot, got %q", ext)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
