package simulator

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
)

func TestNewDefaults(t *testing.T) {
	s := New(Config{Hands: 10})
	if s.cfg.NumPlayers != 6 {
		t.Errorf("expected 6 players by default, got %d", s.cfg.NumPlayers)
	}
	if s.cfg.BigBlind != 2 {
		t.Errorf("expected big blind 2, got %d", s.cfg.BigBlind)
	}
	if s.cfg.Workers <= 0 {
		t.Errorf("expected positive worker count, got %d", s.cfg.Workers)
	}
	if s.cfg.Logger == nil {
		t.Error("expected a default logger")
	}
	// The default logger must be backed by a real writer so a record
	// above the warn threshold does not blow up the run.
	s.cfg.Logger.Error("writer check")
}

func TestRunRejectsZeroHands(t *testing.T) {
	s := New(Config{})
	if _, err := s.Run(context.Background()); err == nil {
		t.Error("expected error for zero hands")
	}
}

func TestRunSmallBatch(t *testing.T) {
	s := New(Config{Hands: 20, Seed: 12345, Workers: 2})
	stats, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Hands != 20 {
		t.Errorf("expected 20 hands, got %d", stats.Hands)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("statistics should validate: %v", err)
	}
	if !stats.IsLedgerBalanced() {
		t.Error("expected balanced ledger")
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{Hands: 15, Seed: 777, Workers: 1}

	first, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first.SumBB != second.SumBB {
		t.Errorf("expected identical totals, got %f vs %f", first.SumBB, second.SumBB)
	}
	if first.MaxPotChips != second.MaxPotChips {
		t.Errorf("expected identical max pot, got %d vs %d", first.MaxPotChips, second.MaxPotChips)
	}
}

func TestPlayHandDeterministic(t *testing.T) {
	s := New(Config{Hands: 1, Seed: 42})

	first, err := s.playHand(42)
	if err != nil {
		t.Fatalf("playHand failed: %v", err)
	}
	second, err := s.playHand(42)
	if err != nil {
		t.Fatalf("playHand failed: %v", err)
	}

	if first.NetBB != second.NetBB {
		t.Errorf("expected identical NetBB, got %f vs %f", first.NetBB, second.NetBB)
	}
	if first.Position != second.Position {
		t.Errorf("expected identical position, got %d vs %d", first.Position, second.Position)
	}
	if first.FinalPot != second.FinalPot {
		t.Errorf("expected identical pot, got %d vs %d", first.FinalPot, second.FinalPot)
	}
}

func TestPlayHandPotIncludesBlinds(t *testing.T) {
	s := New(Config{Hands: 1, SmallBlind: 5, BigBlind: 10})

	for seed := int64(0); seed < 10; seed++ {
		result, err := s.playHand(seed)
		if err != nil {
			t.Fatalf("playHand failed for seed %d: %v", seed, err)
		}
		if result.FinalPot < 15 {
			t.Errorf("seed %d: pot %d smaller than the blinds", seed, result.FinalPot)
		}
		if result.StreetReached == "" {
			t.Errorf("seed %d: street not recorded", seed)
		}
	}
}

func TestRunHeadsUp(t *testing.T) {
	s := New(Config{Hands: 10, NumPlayers: 2, Seed: 9, Workers: 1})
	stats, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Hands != 10 {
		t.Errorf("expected 10 hands, got %d", stats.Hands)
	}
	if len(stats.Positions) > 2 {
		t.Errorf("heads-up should only see 2 positions, got %d", len(stats.Positions))
	}
}

func TestRunWritesHandLog(t *testing.T) {
	var buf bytes.Buffer
	logger := NewHandLogger(&buf)

	s := New(Config{Hands: 5, Seed: 3, Workers: 1, HandLog: &logger})
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := strings.Count(buf.String(), "\n")
	if lines != 5 {
		t.Errorf("expected 5 hand records, got %d", lines)
	}
	if !strings.Contains(buf.String(), "hand complete") {
		t.Error("expected hand complete records in the log")
	}
}

func TestRunWithMockClockProgress(t *testing.T) {
	mock := quartz.NewMock(t)
	s := New(Config{
		Hands:            5,
		Seed:             1,
		Workers:          1,
		ProgressInterval: time.Second,
	}, WithClock(mock))

	stats, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Hands != 5 {
		t.Errorf("expected 5 hands, got %d", stats.Hands)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Config{Hands: 1000, Workers: 2})
	if _, err := s.Run(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}
