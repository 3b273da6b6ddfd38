package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeIngest()
	c.normalizeLogging()
}

func (c *Config) normalizeIngest() {
	exts := make([]string, 0, len(c.Ingest.Extensions))
	for _, ext := range c.Ingest.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Ingest.Extensions = exts

	c.Ingest.Parser = strings.ToLower(strings.TrimSpace(c.Ingest.Parser))
	if value, ok := os.LookupEnv("FONTPREVIEW_PARSER"); ok && strings.TrimSpace(value) != "" {
		c.Ingest.Parser = strings.ToLower(strings.TrimSpace(value))
	}
	if c.Ingest.Parser == "" {
		c.Ingest.Parser = defaultParser
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if value, ok := os.LookupEnv("FONTPREVIEW_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
