//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"porestate/internal/core"
	"porestate/internal/render"
	"porestate/internal/state"
)

var viewKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a simulation state to the ebiten.Game interface.
type Game struct {
	st     *state.State
	reinit func()
	grid   *core.CartesianGrid
	model  core.PropertyModel
	cells  []int
	log    zerolog.Logger

	painter *render.GridPainter
	views   []View
	current int
	scale   int
}

// New constructs a Game. reinit reinitializes st in place.
func New(st *state.State, reinit func(), grid *core.CartesianGrid, model core.PropertyModel, cells []int, scale int, log zerolog.Logger) *Game {
	return &Game{
		st:      st,
		reinit:  reinit,
		grid:    grid,
		model:   model,
		cells:   cells,
		log:     log,
		painter: render.NewGridPainter(grid.W, grid.H),
		views:   Views(st),
		scale:   scale,
	}
}

func (g *Game) seed(es state.ExtremalSat) {
	g.st.SetFirstSat(g.cells, g.model, es)
	g.log.Info().Str("extremal", es.String()).Int("cells", len(g.cells)).Msg("saturation seeded")
}

// Update handles key presses.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, k := range viewKeys {
		if i < len(g.views) && inpututil.IsKeyJustPressed(k) {
			g.current = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.seed(state.MinSat)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.seed(state.MaxSat)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reinit()
		g.log.Info().Msg("state reinitialized")
	}
	return nil
}

// Draw renders the selected field with its value range.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.views[g.current]
	values, stride, ok := v.Values(g.st)
	if !ok {
		return
	}
	lo, hi := render.Range(values, stride, v.Offset)
	g.painter.Blit(screen, values, stride, v.Offset, lo, hi, render.Ramp, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s [%g, %g]", v.Label, lo, hi))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
