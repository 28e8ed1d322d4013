package render

import (
	"image"
	"image/color"

	"github.com/Watrick117/Tribute-To-Conway/pkg/life"

	"golang.org/x/image/draw"
)

// FrameRenderer turns generations into still images, one pixel per cell.
type FrameRenderer struct {
	On    color.Color
	Off   color.Color
	Label bool
}

// NewFrameRenderer returns a renderer drawing white cells on black, with the
// generation label when label is set.
func NewFrameRenderer(label bool) *FrameRenderer {
	return &FrameRenderer{On: color.White, Off: color.Black, Label: label}
}

// Render draws gen into a new image. The generation is read only during the
// call.
func (r *FrameRenderer) Render(gen life.Generation) *image.RGBA {
	g := gen.Grid
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillBinaryRGBA(img.Pix, g.Cells(), r.On, r.Off)
	if r.Label {
		drawLabel(img, LabelText(gen.Index))
	}
	return img
}

func drawLabel(img *image.RGBA, text string) {
	label := LabelImage(text)
	b := img.Bounds()
	dr, ok := LabelRect(label.Bounds(), b.Dx(), b.Dy())
	if !ok {
		return
	}
	draw.NearestNeighbor.Scale(img, dr, label, label.Bounds(), draw.Over, nil)
}
