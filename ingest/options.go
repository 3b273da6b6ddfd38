package ingest

import (
	"strings"

	"github.com/gogpu/fontpreview/identity"
	"github.com/gogpu/fontpreview/parse"
)

// DefaultExtensions are the recognised font file extensions.
var DefaultExtensions = []string{".ttf", ".otf"}

// Option configures a Pipeline.
type Option func(*config)

type config struct {
	workers    int
	parserName string
	parser     parse.FontParser
	extensions []string
	assigner   *identity.Assigner
}

func defaultConfig() config {
	return config{
		workers:    0, // GOMAXPROCS
		parserName: parse.DefaultParser,
		extensions: DefaultExtensions,
	}
}

// WithWorkers caps the number of files loaded at once.
// A value of 0 or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithParser selects a registered parser backend by name.
// Unknown names fall back to parse.DefaultParser.
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
		c.parser = nil
	}
}

// WithFontParser uses p directly, labelled name in parse errors.
func WithFontParser(name string, p parse.FontParser) Option {
	return func(c *config) {
		c.parserName = name
		c.parser = p
	}
}

// WithExtensions replaces the recognised extensions. Matching is
// case-insensitive; a missing leading dot is added.
func WithExtensions(exts ...string) Option {
	return func(c *config) {
		out := make([]string, 0, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			out = append(out, ext)
		}
		if len(out) > 0 {
			c.extensions = out
		}
	}
}

// WithAssigner draws load epochs from a instead of the process-wide
// assigner. Mostly useful in tests with a fake clock.
func WithAssigner(a *identity.Assigner) Option {
	return func(c *config) {
		c.assigner = a
	}
}
