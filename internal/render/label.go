package render

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelColor is the colour of the generation label.
var LabelColor = color.RGBA{R: 255, G: 133, B: 0, A: 255}

// LabelFace is the font used for the generation label. Glyphs are drawn at
// their native size and scaled to the surface, see LabelRect.
var LabelFace font.Face = basicfont.Face7x13

// LabelText returns the label shown for a generation.
func LabelText(index int) string {
	return "GEN: " + strconv.Itoa(index)
}

// LabelImage draws text at the face's native size on a transparent image
// just large enough to hold it.
func LabelImage(text string) *image.RGBA {
	m := LabelFace.Metrics()
	img := image.NewRGBA(image.Rect(0, 0, font.MeasureString(LabelFace, text).Ceil(), m.Height.Ceil()))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: LabelFace,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)
	return img
}

// LabelRect returns where a label of size src should be drawn on a w*h
// surface: about a tenth of the surface high, centred horizontally, with its
// vertical centre at 90% of the height. It reports false when the label
// cannot fit at native size or larger.
func LabelRect(src image.Rectangle, w, h int) (image.Rectangle, bool) {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || sw > w || sh > h {
		return image.Rectangle{}, false
	}
	scale := float64(h) / 10 / float64(sh)
	if fit := float64(w) / float64(sw); scale > fit {
		scale = fit
	}
	if scale < 1 {
		scale = 1
	}
	tw := int(float64(sw) * scale)
	th := int(float64(sh) * scale)

	x := (w - tw) / 2
	y := h - h/10 - th/2
	if y+th > h {
		y = h - th
	}
	if y < 0 {
		y = 0
	}
	return image.Rect(x, y, x+tw, y+th), true
}
