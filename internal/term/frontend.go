package term

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"mad-life/internal/control"
)

// StatusRows is the number of terminal rows reserved below the board.
const StatusRows = 4

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Frontend draws a Controller's board to a tcell screen and feeds it
// terminal input.
type Frontend struct {
	screen tcell.Screen
	ctrl   *control.Controller
	src    *Source
	frame  time.Duration

	// status holds the controller's status lines, refreshed by its OnStatus hook.
	status []string
}

// New returns a Frontend ticking fps times per second. The screen must
// already be initialized.
func New(screen tcell.Screen, ctrl *control.Controller, fps int) *Frontend {
	if fps <= 0 {
		fps = 30
	}
	f := &Frontend{
		screen: screen,
		ctrl:   ctrl,
		src:    NewSource(),
		frame:  time.Second / time.Duration(fps),
		status: strings.Split(ctrl.Status(), "\n"),
	}
	ctrl.OnStatus = func(status string) {
		f.status = strings.Split(status, "\n")
	}
	return f
}

// BoardSize returns the board that fits a screen of w by h cells.
func BoardSize(w, h int) (int, int) {
	h -= StatusRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Run processes events and ticks until the user quits or ctx is done. It
// finalizes the screen before returning. Only the tick loop touches the board.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := f.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer f.screen.Fini()
		return f.loop(ctx, events)
	})
	return g.Wait()
}

func (f *Frontend) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(f.frame)
	defer ticker.Stop()

	last := time.Now()
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				f.screen.Sync()
			}
			if f.src.Handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			f.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Tick applies input gathered since the previous tick, advances the clock by
// deltaSeconds and redraws.
func (f *Frontend) Tick(deltaSeconds float64) int {
	n := f.ctrl.Update(f.src, deltaSeconds)
	f.src.EndTick()
	f.Draw()
	return n
}

// Draw renders the board and status rows and shows the result.
func (f *Frontend) Draw() {
	f.screen.Clear()
	g := f.ctrl.Life().Grid()
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if cells[g.Index(x, y)] != 0 {
				f.screen.SetContent(x, y, '█', nil, aliveStyle)
				continue
			}
			f.screen.SetContent(x, y, ' ', nil, deadStyle)
		}
	}
	lines := append(append([]string(nil), f.status...), f.ctrl.Summary())
	for i, line := range lines {
		drawText(f.screen, 0, g.H+i, line, statusStyle)
	}
	f.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
