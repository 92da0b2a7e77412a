package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"
)

type scenario struct {
	seed    int64
	density float64
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d density=%.2f", s.seed, s.density)
}

type scenarioResult struct {
	scenario
	initial    int
	final      int
	generation uint64
	settled    bool
}

func main() {
	width := flag.Int("w", 120, "board width in cells")
	height := flag.Int("h", 68, "board height in cells")
	steps := flag.Int("steps", 2000, "maximum generations per scenario")
	seeds := flag.Int("seeds", 8, "seeds per density")
	baseSeed := flag.Int64("seed", 42, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios run at once")
	flag.Parse()
	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	densities := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	var sets []scenario
	for _, d := range densities {
		for i := 0; i < *seeds; i++ {
			sets = append(sets, scenario{seed: *baseSeed + int64(i), density: d})
		}
	}

	log.Printf("Sweeping %d scenarios on %dx%d (%d workers, up to %d steps)", len(sets), *width, *height, *workers, *steps)

	start := time.Now()
	results, err := runSweep(context.Background(), *width, *height, sets, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool { return results[i].generation > results[j].generation })

	fmt.Printf("\nLongest-lived soups (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) gen=%d settled=%v pop=%d->%d %s\n", i+1, res.generation, res.settled, res.initial, res.final, res.scenario)
	}

	fmt.Println("\nPer density:")
	for _, d := range densities {
		var gens uint64
		var final, n, settled int
		for _, res := range results {
			if res.density != d {
				continue
			}
			gens += res.generation
			final += res.final
			n++
			if res.settled {
				settled++
			}
		}
		if n == 0 {
			continue
		}
		fmt.Printf("density=%.2f avgGen=%.1f avgFinalPop=%.1f settled=%d/%d\n",
			d, float64(gens)/float64(n), float64(final)/float64(n), settled, n)
	}
}
