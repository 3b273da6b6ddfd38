package parse

import (
	"strings"

	"golang.org/x/image/font/sfnt"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	// sfnt.Parse keeps a reference to src; copy so callers may reuse data.
	src := make([]byte, len(data))
	copy(src, data)

	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, err
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use when each call passes its own
// (or a nil) Buffer.
type ximageParsedFont struct {
	font *sfnt.Font
}

func (f *ximageParsedFont) name(id sfnt.NameID) (string, bool) {
	s, err := f.font.Name(nil, id)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// FamilyName implements ParsedFont.FamilyName.
func (f *ximageParsedFont) FamilyName() (string, bool) {
	return f.name(sfnt.NameIDFamily)
}

// SubfamilyName implements ParsedFont.SubfamilyName.
func (f *ximageParsedFont) SubfamilyName() (string, bool) {
	return f.name(sfnt.NameIDSubfamily)
}

// VersionString implements ParsedFont.VersionString.
func (f *ximageParsedFont) VersionString() (string, bool) {
	return f.name(sfnt.NameIDVersion)
}

// GlyphCount implements ParsedFont.GlyphCount.
func (f *ximageParsedFont) GlyphCount() (int, bool) {
	n := f.font.NumGlyphs()
	return n, n > 0
}
