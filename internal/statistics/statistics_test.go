package statistics

import (
	"math"
	"testing"
)

func TestEmptyStatistics(t *testing.T) {
	s := &Statistics{}
	if s.Mean() != 0 {
		t.Errorf("expected zero mean, got %f", s.Mean())
	}
	if s.StdDev() != 0 {
		t.Errorf("expected zero std dev, got %f", s.StdDev())
	}
	if s.Median() != 0 {
		t.Errorf("expected zero median, got %f", s.Median())
	}
}

func TestAddAndMean(t *testing.T) {
	s := &Statistics{}
	for _, v := range []float64{1, -1, 3, 5} {
		s.Add(HandResult{NetBB: v})
	}
	if s.Hands != 4 {
		t.Errorf("expected 4 hands, got %d", s.Hands)
	}
	if got := s.Mean(); got != 2 {
		t.Errorf("expected mean 2, got %f", got)
	}
	if got := s.Median(); got != 2 {
		t.Errorf("expected median 2, got %f", got)
	}
}

func TestVarianceAndStdError(t *testing.T) {
	s := &Statistics{}
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(HandResult{NetBB: v})
	}
	// Sample variance of this set is 32/7.
	want := 32.0 / 7.0
	if got := s.Variance(); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected variance %f, got %f", want, got)
	}
	wantSE := math.Sqrt(want) / math.Sqrt(8)
	if got := s.StdError(); math.Abs(got-wantSE) > 1e-9 {
		t.Errorf("expected std error %f, got %f", wantSE, got)
	}
}

func TestConfidenceIntervalBracketsMean(t *testing.T) {
	s := &Statistics{}
	for _, v := range []float64{-2, 0, 2, 4} {
		s.Add(HandResult{NetBB: v})
	}
	low, high := s.ConfidenceInterval95()
	mean := s.Mean()
	if low > mean || high < mean {
		t.Errorf("interval [%f, %f] does not bracket mean %f", low, high, mean)
	}
}

func TestPercentileInterpolation(t *testing.T) {
	s := &Statistics{}
	for _, v := range []float64{0, 1, 2, 3, 4} {
		s.Add(HandResult{NetBB: v})
	}
	if got := s.Percentile(0.5); got != 2 {
		t.Errorf("expected P50 = 2, got %f", got)
	}
	if got := s.Percentile(0.25); got != 1 {
		t.Errorf("expected P25 = 1, got %f", got)
	}
	if got := s.Percentile(1.0); got != 4 {
		t.Errorf("expected P100 = 4, got %f", got)
	}
}

func TestShowdownBuckets(t *testing.T) {
	s := &Statistics{}
	s.Add(HandResult{NetBB: 3, WentToShowdown: true})
	s.Add(HandResult{NetBB: 1, WentToShowdown: false})
	s.Add(HandResult{NetBB: -2, WentToShowdown: true})

	if s.ShowdownWins != 1 || s.NonShowdownWins != 1 {
		t.Errorf("expected 1 showdown and 1 non-showdown win, got %d and %d",
			s.ShowdownWins, s.NonShowdownWins)
	}
	if s.ShowdownBB != 1 {
		t.Errorf("expected showdown total 1, got %f", s.ShowdownBB)
	}
	if !s.IsLedgerBalanced() {
		t.Error("ledger should balance")
	}
}

func TestPositionTracking(t *testing.T) {
	s := &Statistics{}
	s.Add(HandResult{NetBB: 2, Position: 0})
	s.Add(HandResult{NetBB: 4, Position: 2})
	s.Add(HandResult{NetBB: 6, Position: 2})

	if len(s.Positions) != 3 {
		t.Fatalf("expected 3 position buckets, got %d", len(s.Positions))
	}
	if got := s.PositionMean(2); got != 5 {
		t.Errorf("expected position 2 mean 5, got %f", got)
	}
	if got := s.PositionMean(1); got != 0 {
		t.Errorf("expected empty position mean 0, got %f", got)
	}
}

func TestPotTracking(t *testing.T) {
	s := &Statistics{BigBlind: 2}
	s.Add(HandResult{NetBB: 10, FinalPot: 40})
	s.Add(HandResult{NetBB: 60, FinalPot: 240})

	if s.MaxPotChips != 240 {
		t.Errorf("expected max pot 240, got %d", s.MaxPotChips)
	}
	if s.MaxPotBB != 120 {
		t.Errorf("expected max pot 120bb, got %f", s.MaxPotBB)
	}
	if s.BigPots != 1 {
		t.Errorf("expected 1 big pot, got %d", s.BigPots)
	}
}

func TestValidate(t *testing.T) {
	s := &Statistics{}
	if err := s.Validate(); err == nil {
		t.Error("expected error for empty statistics")
	}

	s.Add(HandResult{NetBB: 1, Position: 0})
	if err := s.Validate(); err != nil {
		t.Errorf("expected valid statistics, got %v", err)
	}

	s.AllBB += 1 // corrupt the ledger
	if err := s.Validate(); err == nil {
		t.Error("expected ledger mismatch error")
	}
}
