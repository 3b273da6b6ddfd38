package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validatePreview(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIngest() error {
	if len(c.Ingest.Extensions) == 0 {
		return errors.New("ingest.extensions must list at least one extension")
	}
	if c.Ingest.Workers < 0 {
		return errors.New("ingest.workers must be 0 (auto) or positive")
	}
	if !slices.Contains(parserNames, c.Ingest.Parser) {
		return fmt.Errorf("ingest.parser must be one of %v, got %q", parserNames, c.Ingest.Parser)
	}
	return nil
}

func (c *Config) validatePreview() error {
	if c.Preview.PixelSize < minPixelSize || c.Preview.PixelSize > maxPixelSize {
		return fmt.Errorf("preview.pixel_size must be between %d and %d", minPixelSize, maxPixelSize)
	}
	if c.Preview.DPI <= 0 {
		return errors.New("preview.dpi must be positive")
	}
	if c.Preview.Padding < 0 {
		return errors.New("preview.padding must not be negative")
	}
	if c.Preview.Gap < 0 {
		return errors.New("preview.gap must not be negative")
	}
	if c.Preview.MaxWidth < 0 {
		return errors.New("preview.max_width must be 0 (no wrapping) or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json", "text":
	default:
		return fmt.Errorf("logging.format must be console, json or text, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// Mirrors parse.Names() and the selection panel limits; kept here so the
// config package has no dependency on them.
var parserNames = []string{"gotext", "ximage"}

const (
	minPixelSize = 12
	maxPixelSize = 128
)
