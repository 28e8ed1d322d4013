//go:build ebiten

package app

import (
	"github.com/Watrick117/Tribute-To-Conway/internal/core"
	"github.com/Watrick117/Tribute-To-Conway/internal/render"
	"github.com/Watrick117/Tribute-To-Conway/internal/ui"
	"github.com/Watrick117/Tribute-To-Conway/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. Each paced step either
// emits generation 0 or ticks the simulator and emits the new generation;
// Draw always shows the current generation.
type Game struct {
	session *Session
	sim     *life.Simulator
	painter *render.GridPainter
	overlay *ui.Overlay
	step    *core.FixedStep

	emitted bool
}

// New constructs a Game for the provided session.
func New(s *Session, scale, rate int) *Game {
	cfg := s.sim.Config()
	return &Game{
		session: s,
		sim:     s.sim,
		painter: render.NewGridPainter(cfg.Width, cfg.Height, scale),
		overlay: ui.NewOverlay(s.cfg.Text),
		step:    core.NewFixedStep(rate),
	}
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.RequestStop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.overlay.Toggle()
	}
	if g.sim.State() == life.StateHalted {
		return ebiten.Termination
	}
	if !g.step.ShouldStep() {
		return nil
	}
	if !g.emitted {
		g.session.Emit(g.sim.Current())
		g.emitted = true
		return nil
	}
	gen, ok := g.sim.Tick()
	if !ok {
		return ebiten.Termination
	}
	g.session.Emit(gen)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.sim.Current()
	g.painter.Draw(screen, cur)
	g.overlay.Draw(screen, cur.Index)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
