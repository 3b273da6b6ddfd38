package preview

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontpreview/style"
)

// Request describes one text rendering: the registered family to draw
// with, its descriptor, the pixel size and the literal text.
type Request struct {
	Family string
	Weight style.Weight
	Style  style.Style
	Size   int
	Text   string

	// MaxWidth wraps lines at word boundaries to fit the given width in
	// pixels, padding included. 0 disables wrapping.
	MaxWidth int
}

// Render draws req.Text with the font registered under req.Family and
// returns the image, sized to the text plus padding. Newlines start new
// lines.
//
// Weight and Style select among registered faces; they do not synthesise
// bold or slanted glyphs.
func (e *Environment) Render(req Request) (*image.RGBA, error) {
	f, _, err := e.font(req.Family)
	if err != nil {
		return nil, err
	}

	// opentype faces hold a glyph buffer and are not safe for concurrent
	// use, so each render gets its own.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(max(req.Size, 1)),
		DPI:     e.cfg.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &FontError{Family: req.Family, Err: err}
	}
	defer func() {
		_ = face.Close()
	}()

	pad := e.cfg.padding
	lines := layoutLines(face, req.Text, req.MaxWidth-2*pad)

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	bounds := image.Rect(0, 0, width+2*pad, len(lines)*lineHeight+2*pad)

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(e.cfg.background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(e.cfg.foreground),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(pad, pad+ascent+i*lineHeight)
		d.DrawString(line)
	}
	return dst, nil
}

// layoutLines splits text into lines at newlines and, when maxWidth is
// positive, wraps each line at spaces so it fits. A word wider than
// maxWidth gets a line of its own.
func layoutLines(face font.Face, text string, maxWidth int) []string {
	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if maxWidth <= 0 {
		return paragraphs
	}
	limit := fixed.I(maxWidth)

	var lines []string
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if font.MeasureString(face, candidate) > limit {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
