//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/control"
	"mad-life/internal/input"
	"mad-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()
	if cfg.Width == 0 || cfg.Height == 0 {
		log.Fatalf("board must be at least 1x1, got %dx%d", cfg.Width, cfg.Height)
	}

	board := life.New(cfg.Width, cfg.Height)
	ctrl := control.New(board, input.NewMapper(cfg.CellSize), cfg.Options())
	game := app.New(ctrl, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-life - " + board.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
