package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/control"
	"mad-life/internal/input"
	"mad-life/internal/sims/life"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func newFrontend(t *testing.T, w, h int) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := newScreen(t, w, h+StatusRows)
	bw, bh := BoardSize(w, h+StatusRows)
	ctrl := control.New(life.New(bw, bh), input.NewMapper(1), control.DefaultOptions())
	return New(screen, ctrl, 30), screen
}

func runeAt(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestSourceKeys(t *testing.T) {
	s := NewSource()
	if s.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space must not quit")
	}
	s.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	s.Handle(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	for _, a := range []input.Action{input.Start, input.SpeedUp, input.ToggleErase} {
		if !s.JustPressed(a) {
			t.Fatalf("%s should be pressed", a)
		}
	}
	if s.JustPressed(input.SpeedDown) {
		t.Fatal("speed_down was never pressed")
	}
	s.EndTick()
	if s.JustPressed(input.Start) {
		t.Fatal("edges must clear after a tick")
	}
	if !s.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !s.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestSourceMouse(t *testing.T) {
	s := NewSource()
	if _, _, ok := s.Pointer(); ok {
		t.Fatal("pointer unknown before any mouse event")
	}
	s.Handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	x, y, ok := s.Pointer()
	if !ok || x != 3 || y != 2 {
		t.Fatalf("pointer = (%v,%v,%v)", x, y, ok)
	}
	if !s.Pressed(input.Draw) {
		t.Fatal("button 1 should hold draw")
	}
	// Level state survives the tick boundary.
	s.EndTick()
	if !s.Pressed(input.Draw) {
		t.Fatal("draw must stay held across ticks")
	}
	s.Handle(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	if s.Pressed(input.Draw) {
		t.Fatal("release should end draw")
	}
}

func TestBoardSize(t *testing.T) {
	if w, h := BoardSize(80, 24); w != 80 || h != 20 {
		t.Fatalf("BoardSize = %dx%d, want 80x20", w, h)
	}
	if w, h := BoardSize(0, 2); w != 1 || h != 1 {
		t.Fatalf("BoardSize = %dx%d, want 1x1", w, h)
	}
}

func TestTickPaintsAndDraws(t *testing.T) {
	f, screen := newFrontend(t, 10, 6)
	defer screen.Fini()

	f.src.Handle(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	f.Tick(0.016)

	if !f.ctrl.Life().Grid().Alive(4, 3) {
		t.Fatal("mouse drag should paint (4,3)")
	}
	if r := runeAt(t, screen, 4, 3); r != '█' {
		t.Fatalf("rune at (4,3) = %q, want full block", r)
	}
	if r := runeAt(t, screen, 0, 6); r != 'M' {
		t.Fatalf("status row starts with %q, want 'M'", r)
	}
}

func TestTickRunsBlinker(t *testing.T) {
	f, screen := newFrontend(t, 5, 5)
	defer screen.Fini()

	for _, y := range []int{1, 2, 3} {
		f.src.Handle(tcell.NewEventMouse(2, y, tcell.Button1, tcell.ModNone))
		f.Tick(0)
	}
	f.src.Handle(tcell.NewEventMouse(2, 3, tcell.ButtonNone, tcell.ModNone))
	f.src.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if n := f.Tick(0.25); n != 1 {
		t.Fatalf("stepped %d, want 1", n)
	}
	g := f.ctrl.Life().Grid()
	if !g.Alive(1, 2) || !g.Alive(2, 2) || !g.Alive(3, 2) || g.Alive(2, 1) {
		t.Fatal("blinker should be horizontal after one step")
	}
	if f.ctrl.State().Paused {
		t.Fatal("space should start the game")
	}
}

func rowText(t *testing.T, s tcell.SimulationScreen, y, n int) string {
	t.Helper()
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		out = append(out, runeAt(t, s, x, y))
	}
	return string(out)
}

func TestStatusRowsFollowCommands(t *testing.T) {
	f, screen := newFrontend(t, 20, 4)
	defer screen.Fini()

	f.Draw()
	if got := rowText(t, screen, 5, 12); got != "Game: Paused" {
		t.Fatalf("status row = %q, want %q", got, "Game: Paused")
	}

	f.src.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	f.src.Handle(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	f.Tick(0)
	if got := rowText(t, screen, 4, 11); got != "Mode: Erase" {
		t.Fatalf("mode row = %q, want %q", got, "Mode: Erase")
	}
	if got := rowText(t, screen, 5, 10); got != "Game: Live" {
		t.Fatalf("game row = %q, want %q", got, "Game: Live")
	}
	if len(f.status) != 3 || f.status[2] != "Period: 0.25s" {
		t.Fatalf("cached status = %q", f.status)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	f, screen := newFrontend(t, 8, 4)
	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newFrontend(t, 8, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
