package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is the outcome of a single simulated hand from the tracked
// seat's point of view.
type HandResult struct {
	NetBB          float64 // net big blinds won or lost
	Seed           int64   // RNG seed for the hand, kept for replay
	Position       int     // tracked seat's offset from the button (0 = button)
	WentToShowdown bool
	FinalPot       int    // total chips in the pot when the hand ended
	StreetReached  string // furthest street dealt
}

// PositionStats accumulates results for one seat offset from the button.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics aggregates simulation results. BigBlind converts pot sizes
// from chips to big blinds and defaults to 2 when unset.
type Statistics struct {
	BigBlind int

	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // retained for median and percentiles

	// Wins and totals split by how the hand ended. The BB buckets hold
	// losses as well as wins so the ledger always balances.
	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64
	AllBB           float64

	// Indexed by seat offset from the button, grown on demand.
	Positions []PositionStats

	MaxPotChips int
	MaxPotBB    float64
	BigPots     int // pots of at least 50bb
	BigPotsBB   float64
}

func (s *Statistics) bigBlind() float64 {
	if s.BigBlind <= 0 {
		return 2
	}
	return float64(s.BigBlind)
}

// Add incorporates a hand result.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	pos := result.Position
	if pos >= 0 {
		for len(s.Positions) <= pos {
			s.Positions = append(s.Positions, PositionStats{})
		}
		s.Positions[pos].Hands++
		s.Positions[pos].SumBB += netBB
		s.Positions[pos].SumBB2 += netBB * netBB
	}

	potBB := float64(result.FinalPot) / s.bigBlind()
	if result.FinalPot > s.MaxPotChips {
		s.MaxPotChips = result.FinalPot
		s.MaxPotBB = potBB
	}
	if potBB >= 50 {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Mean returns the arithmetic mean in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of all results.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// linearly interpolated.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for a seat offset from the button.
func (s *Statistics) PositionMean(position int) float64 {
	if position < 0 || position >= len(s.Positions) {
		return 0
	}
	ps := s.Positions[position]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced reports whether the showdown and non-showdown
// buckets sum back to the total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the internal accounting for consistency.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.6f showdown=%.6f non-showdown=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length %d does not match hands count %d", len(s.Values), s.Hands)
	}
	if totalWins := s.ShowdownWins + s.NonShowdownWins; totalWins > s.Hands {
		return fmt.Errorf("total wins %d exceeds hands %d", totalWins, s.Hands)
	}
	totalPositionHands := 0
	for _, ps := range s.Positions {
		totalPositionHands += ps.Hands
	}
	if totalPositionHands != s.Hands {
		return fmt.Errorf("position hands %d does not match hands %d", totalPositionHands, s.Hands)
	}
	return nil
}
