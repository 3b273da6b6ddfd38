package parse

import (
	"bytes"
	"strings"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using go-text/typesetting.
//
// go-text exposes the family and the resolved aspect but neither the raw
// subfamily string nor the version, so the subfamily label is rebuilt from
// the aspect and VersionString and GlyphCount report ok=false.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &gotextParsedFont{desc: face.Font.Describe()}, nil
}

type gotextParsedFont struct {
	desc font.Description
}

// FamilyName implements ParsedFont.FamilyName.
func (f *gotextParsedFont) FamilyName() (string, bool) {
	family := strings.TrimSpace(f.desc.Family)
	return family, family != ""
}

// SubfamilyName implements ParsedFont.SubfamilyName.
func (f *gotextParsedFont) SubfamilyName() (string, bool) {
	return aspectLabel(f.desc.Aspect), true
}

// VersionString implements ParsedFont.VersionString.
func (f *gotextParsedFont) VersionString() (string, bool) {
	return "", false
}

// GlyphCount implements ParsedFont.GlyphCount.
func (f *gotextParsedFont) GlyphCount() (int, bool) {
	return 0, false
}

var weightLabels = []struct {
	max   font.Weight
	label string
}{
	{font.WeightThin, "Thin"},
	{font.WeightExtraLight, "ExtraLight"},
	{font.WeightLight, "Light"},
	{font.WeightNormal, ""},
	{font.WeightMedium, "Medium"},
	{font.WeightSemibold, "SemiBold"},
	{font.WeightBold, "Bold"},
	{font.WeightExtraBold, "ExtraBold"},
	{font.WeightBlack, "Black"},
}

// aspectLabel renders an aspect as a conventional subfamily label such as
// "Bold Italic" or "Regular".
func aspectLabel(a font.Aspect) string {
	a.SetDefaults()

	weight := "Black"
	for _, w := range weightLabels {
		if a.Weight <= w.max+49 {
			weight = w.label
			break
		}
	}

	parts := make([]string, 0, 2)
	if weight != "" {
		parts = append(parts, weight)
	}
	if a.Style == font.StyleItalic {
		parts = append(parts, "Italic")
	}
	if len(parts) == 0 {
		return "Regular"
	}
	return strings.Join(parts, " ")
}
