package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// SideBySide places panels left to right, top-aligned, separated by gap
// pixels of bg. Nil panels are skipped.
func SideBySide(gap int, bg color.Color, panels ...image.Image) *image.RGBA {
	width, height, n := 0, 0, 0
	for _, p := range panels {
		if p == nil {
			continue
		}
		b := p.Bounds()
		width += b.Dx()
		height = max(height, b.Dy())
		n++
	}
	if n > 1 {
		width += gap * (n - 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	x := 0
	for _, p := range panels {
		if p == nil {
			continue
		}
		b := p.Bounds()
		r := image.Rect(x, 0, x+b.Dx(), b.Dy())
		draw.Draw(dst, r, p, b.Min, draw.Over)
		x += b.Dx() + gap
	}
	return dst
}

// Fit scales img down with Catmull-Rom resampling so that it is at most
// maxWidth pixels wide. Narrower images are returned unchanged.
func Fit(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := max(b.Dy()*maxWidth/b.Dx(), 1)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
