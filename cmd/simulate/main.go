package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/pokersim/holdem-env/internal/simulator"
	"github.com/pokersim/holdem-env/internal/statistics"
)

type CLI struct {
	Hands      int    `default:"10000" help:"Number of hands to simulate"`
	Players    int    `default:"6" help:"Players per table"`
	Chips      int    `default:"200" help:"Starting chips per player"`
	SmallBlind int    `default:"1" help:"Small blind size"`
	BigBlind   int    `default:"2" help:"Big blind size"`
	Seed       int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Workers    int    `default:"0" help:"Parallel workers (0 = CPU count)"`
	HandLog    string `help:"Write per-hand JSON records to this file" type:"path"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg := simulator.Config{
		Hands:            cli.Hands,
		NumPlayers:       cli.Players,
		InitChips:        cli.Chips,
		SmallBlind:       cli.SmallBlind,
		BigBlind:         cli.BigBlind,
		Seed:             cli.Seed,
		Workers:          cli.Workers,
		ProgressInterval: 5 * time.Second,
		Logger:           logger,
	}

	if cli.HandLog != "" {
		f, err := os.Create(cli.HandLog)
		if err != nil {
			log.Fatal("Failed to open hand log", "error", err)
		}
		defer f.Close()
		handLog := simulator.NewHandLogger(f)
		cfg.HandLog = &handLog
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Simulating %d hands, %d players (seed %d)\n\n", cli.Hands, cli.Players, cli.Seed)

	start := time.Now()
	stats, err := simulator.New(cfg).Run(ctx)
	if err != nil {
		log.Fatal("Simulation failed", "error", err)
	}
	printResults(stats, time.Since(start))

	kctx.Exit(0)
}

func printResults(stats *statistics.Statistics, duration time.Duration) {
	mean := stats.Mean()
	stdErr := stats.StdError()
	low, high := stats.ConfidenceInterval95()

	handsPerSec := float64(stats.Hands) / duration.Seconds()

	fmt.Printf("=== RESULTS (seat 0) ===\n")
	fmt.Printf("Hands played: %d\n", stats.Hands)
	fmt.Printf("Total time: %v (%.0f hands/sec)\n", duration.Round(time.Millisecond), handsPerSec)

	fmt.Printf("\nMean: %.4f bb/hand\n", mean)
	fmt.Printf("Median: %.4f bb/hand\n", stats.Median())
	fmt.Printf("Std Dev: %.4f bb\n", stats.StdDev())
	fmt.Printf("Std Error: %.4f bb\n", stdErr)
	fmt.Printf("95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
	fmt.Printf("Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Printf("\n=== PROFIT SOURCES ===\n")
	totalWins := stats.ShowdownWins + stats.NonShowdownWins
	if totalWins > 0 {
		fmt.Printf("Winning hands: %d showdown (%.1f%%), %d fold equity (%.1f%%)\n",
			stats.ShowdownWins, float64(stats.ShowdownWins)/float64(totalWins)*100,
			stats.NonShowdownWins, float64(stats.NonShowdownWins)/float64(totalWins)*100)
	}
	fmt.Printf("Showdown: %.3f bb/hand, non-showdown: %.3f bb/hand\n",
		stats.ShowdownBB/float64(stats.Hands), stats.NonShowdownBB/float64(stats.Hands))

	fmt.Printf("\n=== POT SIZES ===\n")
	fmt.Printf("Max pot: %d chips (%.1f bb)\n", stats.MaxPotChips, stats.MaxPotBB)
	fmt.Printf("Big pots (>=50bb): %d hands (%.1f%%)\n",
		stats.BigPots, float64(stats.BigPots)/float64(stats.Hands)*100)

	fmt.Printf("\n=== POSITIONS (offset from button) ===\n")
	for pos, ps := range stats.Positions {
		if ps.Hands > 0 {
			fmt.Printf("Button+%d: %d hands, %.3f bb/hand\n", pos, ps.Hands, stats.PositionMean(pos))
		}
	}
}
