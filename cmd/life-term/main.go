package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/app"
	"mad-life/internal/control"
	"mad-life/internal/input"
	"mad-life/internal/sims/life"
	"mad-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	// Zero means fit the terminal.
	cfg.Width, cfg.Height, cfg.TPS = 0, 0, 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	w, h := term.BoardSize(screen.Size())
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}

	board := life.New(w, h)
	ctrl := control.New(board, input.NewMapper(1), cfg.Options())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.New(screen, ctrl, cfg.TPS).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
