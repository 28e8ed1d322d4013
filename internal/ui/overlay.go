//go:build ebiten

package ui

import (
	"github.com/Watrick117/Tribute-To-Conway/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the generation label on top of the board.
type Overlay struct {
	enabled bool

	index int
	label *ebiten.Image
}

// NewOverlay constructs an overlay. A disabled overlay draws nothing.
func NewOverlay(enabled bool) *Overlay {
	return &Overlay{enabled: enabled, index: -1}
}

// Toggle flips label visibility.
func (o *Overlay) Toggle() { o.enabled = !o.enabled }

// Draw renders the label for generation index onto screen, scaled the same
// way as in exported frames.
func (o *Overlay) Draw(screen *ebiten.Image, index int) {
	if o == nil || !o.enabled {
		return
	}
	if o.label == nil || o.index != index {
		if o.label != nil {
			o.label.Dispose()
		}
		o.label = ebiten.NewImageFromImage(render.LabelImage(render.LabelText(index)))
		o.index = index
	}
	src := o.label.Bounds()
	b := screen.Bounds()
	dr, ok := render.LabelRect(src, b.Dx(), b.Dy())
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dr.Dx())/float64(src.Dx()), float64(dr.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dr.Min.X), float64(dr.Min.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(o.label, op)
}
