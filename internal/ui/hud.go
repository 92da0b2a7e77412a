//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"mad-life/internal/control"
	"mad-life/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the board and turns clicks on
// its buttons into actions.
type HUD struct {
	ctrl       *control.Controller
	width      int
	panel      *ebiten.Image
	lastHeight int

	buttons      []hudButton
	panelOffsetX int

	pixel *ebiten.Image
}

type hudButton struct {
	action input.Action
	label  func(control.State) string
	// enabled reports whether the action does anything in the given state.
	enabled func(control.State) bool
	rect    image.Rectangle
}

// NewHUD constructs a HUD for the provided controller and panel width.
func NewHUD(ctrl *control.Controller, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctrl: ctrl, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	always := func(control.State) bool { return true }
	whilePaused := func(s control.State) bool { return s.Paused }
	fixed := func(label string) func(control.State) string {
		return func(control.State) string { return label }
	}
	h.buttons = []hudButton{
		{action: input.Start, label: func(s control.State) string {
			if s.Paused {
				return "Play"
			}
			return "Pause"
		}, enabled: always},
		{action: input.ToggleErase, label: func(s control.State) string {
			return modeButtonLabel(s.Mode)
		}, enabled: always},
		{action: input.SpeedDown, label: fixed("Period -"), enabled: always},
		{action: input.SpeedUp, label: fixed("Period +"), enabled: always},
		{action: input.StepOnce, label: fixed("Step"), enabled: whilePaused},
		{action: input.Randomize, label: fixed("Random"), enabled: whilePaused},
		{action: input.Clear, label: fixed("Clear"), enabled: whilePaused},
	}
	h.layoutButtons()
	return h
}

// Update handles clicks on the panel and returns the actions they trigger.
func (h *HUD) Update(panelOffsetX int) []input.Action {
	if h == nil || h.width <= 0 {
		return nil
	}
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return nil
	}
	px := mx - h.panelOffsetX
	state := h.ctrl.State()
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) && b.enabled(state) {
			return []input.Action{b.action}
		}
	}
	return nil
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing
	lines := append(strings.Split(h.ctrl.Status(), "\n"), h.ctrl.Summary())
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += textLineHeight
	}

	state := h.ctrl.State()
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.label(state), b.enabled(state))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// MinHeight returns the height needed to show every button.
func (h *HUD) MinHeight() int {
	if h == nil || h.width <= 0 {
		return 0
	}
	return buttonsTop + len(h.buttons)*(buttonHeight+buttonGap) + panelPadding
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutButtons() {
	if h.width <= 0 {
		return
	}
	for i := range h.buttons {
		top := buttonsTop + i*(buttonHeight+buttonGap)
		h.buttons[i].rect = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonHeight)
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	headerBaseline = 18
	infoSpacing    = 28
	textLineHeight = 16
	buttonHeight   = 24
	buttonGap      = 8
	buttonsTop     = panelPadding + headerBaseline + infoSpacing + 4*textLineHeight
)
