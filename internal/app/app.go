//go:build ebiten

package app

import (
	"time"

	"mad-life/internal/control"
	"mad-life/internal/core"
	"mad-life/internal/input"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[input.Action][]ebiten.Key{
	input.Start:       {ebiten.KeySpace, ebiten.KeyEnter},
	input.ToggleErase: {ebiten.KeyE},
	input.SpeedUp:     {ebiten.KeyArrowUp, ebiten.KeyEqual},
	input.SpeedDown:   {ebiten.KeyArrowDown, ebiten.KeyMinus},
	input.Clear:       {ebiten.KeyC},
	input.Randomize:   {ebiten.KeyR},
	input.StepOnce:    {ebiten.KeyN},
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *control.Controller
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	src     ebitenSource

	scale    int
	hudWidth int
	last     time.Time
}

// New constructs a Game for the provided controller.
func New(ctrl *control.Controller, cfg *Config) *Game {
	size := ctrl.Life().Size()
	g := &Game{
		ctrl:    ctrl,
		sim:     ctrl.Life(),
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette),
		hud:     ui.NewHUD(ctrl, cfg.HUDWidth),
		src:     ebitenSource{extra: map[input.Action]bool{}},
		scale:   ctrl.Mapper().CellSize(),
	}
	if g.hud != nil {
		g.hudWidth = cfg.HUDWidth
	}
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	delta := 0.0
	if !g.last.IsZero() {
		delta = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.src.refresh(g.hud.Update(g.boardWidth()))
	g.ctrl.Update(&g.src, delta)
	return nil
}

// Draw renders the current generation and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	if g.hudWidth > 0 {
		_, h := g.Layout(0, 0)
		g.hud.Draw(screen, g.boardWidth(), h)
		return
	}
	ebitenutil.DebugPrintAt(screen, g.ctrl.Status()+"\n"+g.ctrl.Summary(), 8, 8)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	h := s.H * g.scale
	if g.hudWidth > 0 {
		w += g.hudWidth
		if m := g.hud.MinHeight(); m > h {
			h = m
		}
	}
	return w, h
}

func (g *Game) boardWidth() int { return g.sim.Size().W * g.scale }

// ebitenSource reads keyboard and mouse state once per frame. Clicks on HUD
// buttons are merged in as extra edge actions.
type ebitenSource struct {
	extra map[input.Action]bool
	x, y  int
}

func (s *ebitenSource) refresh(extra []input.Action) {
	for a := range s.extra {
		delete(s.extra, a)
	}
	for _, a := range extra {
		s.extra[a] = true
	}
	s.x, s.y = ebiten.CursorPosition()
}

func (s *ebitenSource) Pointer() (float64, float64, bool) {
	return float64(s.x), float64(s.y), true
}

func (s *ebitenSource) JustPressed(a input.Action) bool {
	if s.extra[a] {
		return true
	}
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (s *ebitenSource) Pressed(a input.Action) bool {
	if a == input.Draw {
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
