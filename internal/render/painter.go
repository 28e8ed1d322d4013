//go:build ebiten

package render

import (
	"image/color"

	"github.com/Watrick117/Tribute-To-Conway/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a board-sized texture in sync with the generation being
// shown and draws it scaled onto the window.
type GridPainter struct {
	w, h  int
	scale int
	On    color.Color
	Off   color.Color

	img   *ebiten.Image
	buf   []byte
	shown int
}

// NewGridPainter allocates a painter for a w*h board drawn at scale screen
// pixels per cell.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	return &GridPainter{
		w:     w,
		h:     h,
		scale: scale,
		On:    color.White,
		Off:   color.Black,
		img:   ebiten.NewImage(w, h),
		buf:   make([]byte, 4*w*h),
		shown: -1,
	}
}

// Draw paints gen onto dst. The texture is only re-uploaded when the
// generation index changes, since a generation never changes once emitted.
func (gp *GridPainter) Draw(dst *ebiten.Image, gen life.Generation) {
	g := gen.Grid
	if g == nil || g.W != gp.w || g.H != gp.h {
		return
	}
	if gen.Index != gp.shown {
		fillBinaryRGBA(gp.buf, g.Cells(), gp.On, gp.Off)
		gp.img.WritePixels(gp.buf)
		gp.shown = gen.Index
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the window size in screen pixels.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
