// Package style infers a normalized weight and slant from a font's
// human-readable subfamily label ("Bold Italic", "ExtraLight", "Book").
//
// Inference is a pure function of the label. It never consults the font
// tables, so it is a best-effort guess and not authoritative.
package style

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weight is a numeric font weight in the range 100-900.
type Weight int

// Standard weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

var weightNames = map[Weight]string{
	WeightThin:       "Thin",
	WeightExtraLight: "ExtraLight",
	WeightLight:      "Light",
	WeightNormal:     "Normal",
	WeightMedium:     "Medium",
	WeightSemiBold:   "SemiBold",
	WeightBold:       "Bold",
	WeightExtraBold:  "ExtraBold",
	WeightBlack:      "Black",
}

// String returns the conventional name of a standard weight, or the number.
func (w Weight) String() string {
	if name, ok := weightNames[w]; ok {
		return name
	}
	return strconv.Itoa(int(w))
}

// CSS returns the weight as a CSS font-weight value.
func (w Weight) CSS() string {
	return strconv.Itoa(int(w))
}

// Style is the slant of a face.
type Style string

// Styles.
const (
	StyleNormal  Style = "normal"
	StyleItalic  Style = "italic"
	StyleOblique Style = "oblique"
)

// String implements fmt.Stringer.
func (s Style) String() string {
	return string(s)
}

// Inferred is the result of Infer.
type Inferred struct {
	Weight Weight
	Style  Style
}

type weightRule struct {
	keywords []string
	weight   Weight
}

// weightLadder is evaluated top-down and the first rule with a matching
// keyword wins. Compound keywords come before the keywords they contain:
// "extralight" before "light", "extrabold" and "semibold" before "bold".
var weightLadder = []weightRule{
	{[]string{"thin", "hairline"}, WeightThin},
	{[]string{"extralight", "ultralight"}, WeightExtraLight},
	{[]string{"light"}, WeightLight},
	{[]string{"book", "regular", "normal"}, WeightNormal},
	{[]string{"medium"}, WeightMedium},
	{[]string{"extrabold", "ultrabold"}, WeightExtraBold},
	{[]string{"semibold", "demibold"}, WeightSemiBold},
	{[]string{"bold"}, WeightBold},
	{[]string{"black", "heavy"}, WeightBlack},
}

// Normalize lower-cases a label the way Infer sees it.
func Normalize(label string) string {
	// A Caser carries state, so each call gets its own.
	return cases.Lower(language.Und).String(strings.TrimSpace(label))
}

// Infer maps a subfamily label to a weight and style.
//
// Style: a label containing "italic" is italic, otherwise one containing
// "oblique" is oblique, otherwise normal. Weight: the first matching rule of
// the weight ladder, or WeightNormal when nothing matches.
func Infer(label string) Inferred {
	normalized := Normalize(label)
	return Inferred{
		Weight: inferWeight(normalized),
		Style:  inferStyle(normalized),
	}
}

func inferStyle(label string) Style {
	switch {
	case strings.Contains(label, "italic"):
		return StyleItalic
	case strings.Contains(label, "oblique"):
		return StyleOblique
	default:
		return StyleNormal
	}
}

func inferWeight(label string) Weight {
	for _, rule := range weightLadder {
		for _, kw := range rule.keywords {
			if strings.Contains(label, kw) {
				return rule.weight
			}
		}
	}
	return WeightNormal
}
