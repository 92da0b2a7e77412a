package main

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mad-life/internal/sims/life"
)

// runSweep runs every scenario on its own w x h board, at most workers at a
// time. A non-positive workers value means one per CPU. Results keep the
// order of sets.
func runSweep(ctx context.Context, w, h int, sets []scenario, steps, workers int) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runScenario(w, h, sc, steps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(w, h int, sc scenario, steps int) scenarioResult {
	board := life.New(w, h)
	board.Randomize(sc.seed, sc.density)
	initial := board.Population()
	gen, settled := board.RunUntilSettled(steps)
	return scenarioResult{
		scenario:   sc,
		initial:    initial,
		final:      board.Population(),
		generation: gen,
		settled:    settled,
	}
}
