// Package record defines FontRecord, the immutable result of loading one
// font file.
package record

import (
	"strconv"

	"github.com/gogpu/fontpreview/parse"
	"github.com/gogpu/fontpreview/resource"
	"github.com/gogpu/fontpreview/style"
)

// NotAvailable is shown for metadata the font does not carry.
const NotAvailable = "N/A"

// FontRecord is one successfully loaded font.
//
// A FontRecord is immutable. It exclusively owns its resource handle, which
// is released when the record's batch is replaced or the session ends.
type FontRecord struct {
	id           string
	displayName  string
	renderFamily string
	family       string
	subfamily    string
	weight       style.Weight
	style        style.Style
	handle       *resource.Handle
	metadata     parse.ParsedFont
	fileName     string
	index        int
}

// Fields carries the values New copies into a record.
type Fields struct {
	ID           string
	Family       string
	Subfamily    string
	RenderFamily string
	Weight       style.Weight
	Style        style.Style
	Handle       *resource.Handle
	Metadata     parse.ParsedFont
	FileName     string
	Index        int
}

// New builds a record. The display name is "{family} {subfamily}".
func New(f Fields) *FontRecord {
	return &FontRecord{
		id:           f.ID,
		displayName:  f.Family + " " + f.Subfamily,
		renderFamily: f.RenderFamily,
		family:       f.Family,
		subfamily:    f.Subfamily,
		weight:       f.Weight,
		style:        f.Style,
		handle:       f.Handle,
		metadata:     f.Metadata,
		fileName:     f.FileName,
		index:        f.Index,
	}
}

// ID returns the identifier, unique within the record's batch.
func (r *FontRecord) ID() string { return r.id }

// DisplayName returns the human label, "{family} {subfamily}".
func (r *FontRecord) DisplayName() string { return r.displayName }

// RenderFamily returns the process-unique font-family key registered with
// the rendering environment.
func (r *FontRecord) RenderFamily() string { return r.renderFamily }

// Family returns the family name, after fallbacks.
func (r *FontRecord) Family() string { return r.family }

// Subfamily returns the subfamily label, after fallbacks.
func (r *FontRecord) Subfamily() string { return r.subfamily }

// Weight returns the inferred weight.
func (r *FontRecord) Weight() style.Weight { return r.weight }

// Style returns the inferred style.
func (r *FontRecord) Style() style.Style { return r.style }

// Handle returns the record's resource handle.
func (r *FontRecord) Handle() *resource.Handle { return r.handle }

// Metadata returns the parser's read-only handle.
func (r *FontRecord) Metadata() parse.ParsedFont { return r.metadata }

// SourceFileName returns the name of the file the record was loaded from.
func (r *FontRecord) SourceFileName() string { return r.fileName }

// Index returns the position of the source file among the batch's
// recognised input files.
func (r *FontRecord) Index() int { return r.index }

// Detail is one labelled line of font metadata.
type Detail struct {
	Label string
	Value string
}

// Details returns the Family, Style, Version and Glyphs lines shown next to
// a preview, reading the raw parser metadata. Missing values read N/A.
func (r *FontRecord) Details() []Detail {
	value := func(s string, ok bool) string {
		if !ok {
			return NotAvailable
		}
		return s
	}

	family, familyOK := r.metadata.FamilyName()
	sub, subOK := r.metadata.SubfamilyName()
	version, versionOK := r.metadata.VersionString()
	glyphs := NotAvailable
	if n, ok := r.metadata.GlyphCount(); ok {
		glyphs = strconv.Itoa(n)
	}

	return []Detail{
		{Label: "Family", Value: value(family, familyOK)},
		{Label: "Style", Value: value(sub, subOK)},
		{Label: "Version", Value: value(version, versionOK)},
		{Label: "Glyphs", Value: glyphs},
	}
}

var _ resource.Registrant = (*FontRecord)(nil)
