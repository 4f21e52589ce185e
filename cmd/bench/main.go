package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/renproject/tinymt64"
)

const draws = 500_000_000

func main() {
	defer profile.Start().Stop()

	rng := tinymt64.NewFromSeed(1)

	var sink uint64
	start := time.Now()
	for i := 0; i < draws; i++ {
		sink ^= rng.Uint64()
	}
	elapsed := time.Since(start)

	reportMetrics(elapsed, sink, "uint64.metrics")

	rngF := tinymt64.NewFromSeed(1)

	var sinkF float64
	start = time.Now()
	for i := 0; i < draws; i++ {
		sinkF += rngF.Float64()
	}
	elapsed = time.Since(start)

	reportMetrics(elapsed, uint64(sinkF), "float64.metrics")
}

func reportMetrics(elapsed time.Duration, sink uint64, filename string) {
	perDraw := elapsed / draws
	rate := float64(draws) / elapsed.Seconds()

	summary := fmt.Sprintf("draws: %v\ntotal: %v\nper draw: %v\nrate: %.0f/s\nsink: %v\n", draws, elapsed, perDraw, rate, sink)

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if _, err := file.WriteString(summary); err != nil {
		panic(err)
	}

	fmt.Print(summary)
}
