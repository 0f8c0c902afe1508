package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pokersim/holdem-env/internal/game"
	"github.com/pokersim/holdem-env/internal/randutil"
	"github.com/pokersim/holdem-env/internal/statistics"
)

// maxStepsPerHand bounds a single hand; a run that long means the
// betting loop is stuck.
const maxStepsPerHand = 500

// Config holds the parameters for a simulation run. Results are
// tracked from seat zero's point of view.
type Config struct {
	Hands      int
	NumPlayers int
	InitChips  int
	SmallBlind int
	BigBlind   int
	Seed       int64

	// Workers caps the parallel hand runners; 0 picks a sensible
	// default from the CPU count.
	Workers int

	// ProgressInterval spaces the progress log lines; 0 disables them.
	ProgressInterval time.Duration

	Logger *log.Logger

	// HandLog receives one structured record per completed hand.
	HandLog *zerolog.Logger
}

// Simulator plays batches of randomly acted hands and aggregates the
// results. Each hand is seeded independently, so a batch is
// reproducible regardless of worker scheduling.
type Simulator struct {
	cfg   Config
	clock quartz.Clock
}

// Option configures a Simulator during creation.
type Option func(*Simulator)

// WithClock injects the clock used for progress ticks. Defaults to the
// real clock; tests pass a mock.
func WithClock(clock quartz.Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// New creates a simulator, filling unset config fields with defaults.
func New(cfg Config, opts ...Option) *Simulator {
	if cfg.NumPlayers == 0 {
		cfg.NumPlayers = 6
	}
	if cfg.InitChips == 0 {
		cfg.InitChips = 200
	}
	if cfg.SmallBlind == 0 {
		cfg.SmallBlind = 1
	}
	if cfg.BigBlind == 0 {
		cfg.BigBlind = 2 * cfg.SmallBlind
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
		if cfg.Workers > 8 {
			cfg.Workers = 8
		}
	}
	if cfg.Workers > cfg.Hands && cfg.Hands > 0 {
		cfg.Workers = cfg.Hands
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}

	s := &Simulator{cfg: cfg, clock: quartz.NewReal()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays the configured number of hands and returns the aggregated
// statistics. Any chip-conservation violation or stuck hand aborts the
// whole run with an error naming the offending seed.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.cfg.Hands <= 0 {
		return nil, fmt.Errorf("simulator: hands must be positive, got %d", s.cfg.Hands)
	}

	stats := &statistics.Statistics{BigBlind: s.cfg.BigBlind}

	var completed atomic.Int64
	if s.cfg.ProgressInterval > 0 {
		tickCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		s.clock.TickerFunc(tickCtx, s.cfg.ProgressInterval, func() error {
			s.cfg.Logger.Info("simulation progress",
				"completed", completed.Load(), "total", s.cfg.Hands)
			return nil
		}, "progress")
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan statistics.HandResult, s.cfg.Workers)

	perWorker := s.cfg.Hands / s.cfg.Workers
	remainder := s.cfg.Hands % s.cfg.Workers

	start := 0
	for w := 0; w < s.cfg.Workers; w++ {
		count := perWorker
		if w < remainder {
			count++
		}
		first, last := start, start+count
		start = last

		g.Go(func() error {
			for hand := first; hand < last; hand++ {
				result, err := s.playHand(s.cfg.Seed + int64(hand))
				if err != nil {
					return err
				}
				completed.Add(1)
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(results)
		g.Wait()
	}()

	for result := range results {
		stats.Add(result)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}
	return stats, nil
}

// playHand runs one hand to completion with uniformly random legal
// actions for every seat.
func (s *Simulator) playHand(seed int64) (statistics.HandResult, error) {
	rng := randutil.New(seed)

	h, err := game.NewGame(game.Config{
		NumPlayers: s.cfg.NumPlayers,
		InitChips:  s.cfg.InitChips,
		SmallBlind: s.cfg.SmallBlind,
		BigBlind:   s.cfg.BigBlind,
		DealerID:   -1,
	}, game.WithRNG(rng))
	if err != nil {
		return statistics.HandResult{}, err
	}

	h.InitHand()
	dealer := h.DealerID()

	steps := 0
	for !h.IsOver() {
		if steps++; steps > maxStepsPerHand {
			return statistics.HandResult{}, fmt.Errorf("simulator: hand stuck after %d steps (seed %d)", maxStepsPerHand, seed)
		}
		actions := h.GetLegalActions()
		if len(actions) == 0 {
			return statistics.HandResult{}, fmt.Errorf("simulator: no legal actions mid-hand (seed %d)", seed)
		}
		if _, _, err := h.Step(actions[rng.IntN(len(actions))]); err != nil {
			return statistics.HandResult{}, fmt.Errorf("simulator: step failed (seed %d): %w", seed, err)
		}
	}

	payoffs := h.GetPayoffs()
	sum := 0
	for _, p := range payoffs {
		sum += p
	}
	if sum != 0 {
		return statistics.HandResult{}, fmt.Errorf("simulator: payoffs sum to %d, chips not conserved (seed %d)", sum, seed)
	}

	wentToShowdown := h.Stage() == game.Revealed(game.Showdown)
	street := game.Preflop
	switch len(h.GetState(0).PublicCards) {
	case 3:
		street = game.Flop
	case 4:
		street = game.Turn
	case 5:
		street = game.River
	}

	if s.cfg.HandLog != nil {
		s.cfg.HandLog.Info().
			Int64("seed", seed).
			Int("dealer", dealer).
			Int("pot", h.Pot()).
			Str("street", street.String()).
			Bool("showdown", wentToShowdown).
			Ints("payoffs", payoffs).
			Msg("hand complete")
	}

	return statistics.HandResult{
		NetBB:          float64(payoffs[0]) / float64(s.cfg.BigBlind),
		Seed:           seed,
		Position:       (s.cfg.NumPlayers - dealer) % s.cfg.NumPlayers,
		WentToShowdown: wentToShowdown,
		FinalPot:       h.Pot(),
		StreetReached:  street.String(),
	}, nil
}
