package control

import (
	"testing"

	"mad-life/internal/core"
	"mad-life/internal/input"
	"mad-life/internal/sims/life"
)

type fakeSource struct {
	x, y    float64
	pointer bool
	edges   map[input.Action]bool
	held    map[input.Action]bool
}

func (f *fakeSource) Pointer() (float64, float64, bool) { return f.x, f.y, f.pointer }

// JustPressed consumes the edge so it fires once, like a real device.
func (f *fakeSource) JustPressed(a input.Action) bool {
	if f.edges[a] {
		delete(f.edges, a)
		return true
	}
	return false
}

func (f *fakeSource) Pressed(a input.Action) bool { return f.held[a] }

func newSource() *fakeSource {
	return &fakeSource{edges: map[input.Action]bool{}, held: map[input.Action]bool{}}
}

func newController(w, h, cell int) *Controller {
	return New(life.New(w, h), input.NewMapper(cell), DefaultOptions())
}

func TestInitialStatus(t *testing.T) {
	c := newController(4, 4, 1)
	want := "Mode: Draw\nGame: Paused\nPeriod: 0.25s"
	if c.Status() != want {
		t.Fatalf("status = %q, want %q", c.Status(), want)
	}
	if !c.State().Paused {
		t.Fatal("session must start paused")
	}
}

func TestCommandsRefreshStatus(t *testing.T) {
	c := newController(4, 4, 1)
	var notified []string
	c.OnStatus = func(s string) { notified = append(notified, s) }

	if got := c.TogglePause(); got != "Mode: Draw\nGame: Live\nPeriod: 0.25s" {
		t.Fatalf("after pause toggle: %q", got)
	}
	if got := c.ToggleDrawMode(); got != "Mode: Erase\nGame: Live\nPeriod: 0.25s" {
		t.Fatalf("after mode toggle: %q", got)
	}
	if got := c.IncreaseSpeed(); got != "Mode: Erase\nGame: Live\nPeriod: 0.3s" {
		t.Fatalf("after speed up: %q", got)
	}
	c.DecreaseSpeed()
	if got := c.DecreaseSpeed(); got != "Mode: Erase\nGame: Live\nPeriod: 0.2s" {
		t.Fatalf("after speed down: %q", got)
	}
	if len(notified) != 5 {
		t.Fatalf("OnStatus called %d times, want 5", len(notified))
	}
	if notified[4] != c.Status() {
		t.Fatal("last notification must match Status")
	}
}

func TestDecreaseSpeedFloor(t *testing.T) {
	c := newController(4, 4, 1)
	for i := 0; i < 50; i++ {
		c.DecreaseSpeed()
	}
	if p := c.State().Clock.Period(); p != core.MinPeriod {
		t.Fatalf("period = %v, want %v", p, core.MinPeriod)
	}
	if c.Status() != "Mode: Draw\nGame: Paused\nPeriod: 0.05s" {
		t.Fatalf("status = %q", c.Status())
	}
}

func TestAdvanceOnlyWhileRunning(t *testing.T) {
	c := newController(5, 5, 1)
	g := c.Life().Grid()
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if err := g.Set(p[0], p[1], core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	if n := c.Advance(10); n != 0 {
		t.Fatalf("paused advance stepped %d", n)
	}
	if c.State().Clock.Accumulated() != 0 {
		t.Fatal("paused advance must not bank time")
	}

	c.TogglePause()
	if n := c.Advance(0.25); n != 1 {
		t.Fatalf("running advance stepped %d, want 1", n)
	}
	if !c.Life().Grid().Alive(1, 2) || !c.Life().Grid().Alive(3, 2) {
		t.Fatal("blinker did not rotate")
	}
}

func TestDrawWhileRunningHasNoEffect(t *testing.T) {
	c := newController(6, 6, 10)
	c.TogglePause()
	src := newSource()
	src.x, src.y, src.pointer = 15, 15, true
	src.held[input.Draw] = true
	c.Update(src, 0)
	if c.Life().Population() != 0 {
		t.Fatal("drawing while running changed the grid")
	}
}

func TestUpdateDrawAndErase(t *testing.T) {
	c := newController(6, 6, 10)
	src := newSource()
	src.x, src.y, src.pointer = 25, 47, true
	src.held[input.Draw] = true

	c.Update(src, 0.016)
	if !c.Life().Grid().Alive(2, 4) {
		t.Fatal("draw should set cell (2,4)")
	}

	src.edges[input.ToggleErase] = true
	c.Update(src, 0.016)
	if c.State().Mode != input.ModeErase {
		t.Fatal("mode should be erase")
	}
	if c.Life().Grid().Alive(2, 4) {
		t.Fatal("erase should clear cell (2,4) in the same tick")
	}
}

func TestUpdateStartThenStep(t *testing.T) {
	c := newController(5, 5, 1)
	g := c.Life().Grid()
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if err := g.Set(p[0], p[1], core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	src := newSource()
	src.edges[input.Start] = true
	if n := c.Update(src, 0.3); n != 1 {
		t.Fatalf("stepped %d, want 1", n)
	}
	if c.State().Paused {
		t.Fatal("start should unpause")
	}
	// The edge was consumed, so the session keeps running.
	if n := c.Update(src, 0.25); n != 1 {
		t.Fatalf("stepped %d, want 1", n)
	}
	if c.Life().Generation() != 2 {
		t.Fatalf("generation = %d, want 2", c.Life().Generation())
	}
}

func TestBoardCommandsRequirePause(t *testing.T) {
	c := newController(8, 8, 1)
	if !c.Randomize() {
		t.Fatal("randomize should apply while paused")
	}
	if !c.StepOnce() || c.Life().Generation() != 1 {
		t.Fatal("step once should advance while paused")
	}
	c.TogglePause()
	pop := c.Life().Population()
	if c.Clear() || c.Randomize() || c.StepOnce() {
		t.Fatal("board commands must be ignored while running")
	}
	if c.Life().Population() != pop {
		t.Fatal("board changed while running")
	}
	c.TogglePause()
	if !c.Clear() || c.Life().Population() != 0 {
		t.Fatal("clear should empty the board")
	}
}

func TestSummary(t *testing.T) {
	c := newController(3, 3, 1)
	if err := c.Life().Grid().Set(1, 1, core.Alive); err != nil {
		t.Fatal(err)
	}
	if got := c.Summary(); got != "Gen: 0  Pop: 1" {
		t.Fatalf("summary = %q", got)
	}
}

func TestFormatPeriod(t *testing.T) {
	cases := map[float64]string{0.25: "0.25", 0.05: "0.05", 1: "1", 0.3: "0.3", 1.5: "1.5"}
	for p, want := range cases {
		if got := FormatPeriod(p); got != want {
			t.Fatalf("FormatPeriod(%v) = %q, want %q", p, got, want)
		}
	}
}
