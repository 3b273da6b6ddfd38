package parse

import (
	"sort"
	"sync"
)

// FontParser is a font parsing backend.
// Implementations must be safe for concurrent use: the ingestion pipeline
// parses many files at once with a single parser.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns its metadata handle.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the read-only handle a parser returns for a font.
// Only the fields the previewer reads are exposed; every one is optional and
// reports ok=false when the font does not carry it.
type ParsedFont interface {
	// FamilyName returns the font family name (name ID 1).
	FamilyName() (string, bool)

	// SubfamilyName returns the subfamily label, e.g. "Bold Italic" (name ID 2).
	SubfamilyName() (string, bool)

	// VersionString returns the version string (name ID 5).
	VersionString() (string, bool)

	// GlyphCount returns the number of glyphs in the font.
	GlyphCount() (int, bool)
}

// Parser backend names.
const (
	// ParserXImage parses with golang.org/x/image/font/sfnt.
	ParserXImage = "ximage"

	// ParserGoText parses with github.com/go-text/typesetting.
	ParserGoText = "gotext"
)

// DefaultParser is the backend used when none is requested.
const DefaultParser = ParserXImage

var (
	registryMu sync.RWMutex
	registry   = map[string]FontParser{
		ParserXImage: &ximageParser{},
		ParserGoText: &gotextParser{},
	}
)

// RegisterParser registers a parser backend under name, replacing any
// backend already registered with that name.
func RegisterParser(name string, p FontParser) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = p
}

// Lookup returns the parser registered under name.
func Lookup(name string) (FontParser, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Get returns the parser registered under name, or the default parser if
// name is unknown.
func Get(name string) FontParser {
	if p, ok := Lookup(name); ok {
		return p
	}
	p, _ := Lookup(DefaultParser)
	return p
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
