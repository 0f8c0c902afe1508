package game

import (
	"github.com/pokersim/holdem-env/internal/evaluator"
	"github.com/pokersim/holdem-env/poker"
)

// Judger decides how the pot is distributed once a hand is terminal.
// hands[i] is the player's hole cards combined with the board, or nil
// when the player folded and contends for nothing.
type Judger interface {
	Judge(players []*Player, hands [][]poker.Card) []int
}

// ChipJudger is the default Judger. It ranks each contender's best five
// cards and splits every side pot among the strongest eligible hands.
// The returned payoff for a player is winnings minus committed chips.
type ChipJudger struct{}

// Judge implements Judger.
func (ChipJudger) Judge(players []*Player, hands [][]poker.Card) []int {
	winnings := make([]int, len(players))

	contenders := make([]int, 0, len(players))
	for i, h := range hands {
		if h != nil {
			contenders = append(contenders, i)
		}
	}

	if len(contenders) == 1 {
		total := 0
		for _, p := range players {
			total += p.InChips
		}
		winnings[contenders[0]] = total
	} else if len(contenders) > 1 {
		ranks := make(map[int]evaluator.HandRank, len(contenders))
		for _, i := range contenders {
			ranks[i] = evaluator.Evaluate(hands[i])
		}
		splitPots(players, ranks, winnings)
	}

	payoffs := make([]int, len(players))
	for i, p := range players {
		payoffs[i] = winnings[i] - p.InChips
	}
	return payoffs
}

// splitPots distributes the pot level by level so that a short all-in
// player can only win up to their own commitment from each opponent.
func splitPots(players []*Player, ranks map[int]evaluator.HandRank, winnings []int) {
	levels := commitmentLevels(players)

	prev := 0
	for _, level := range levels {
		// Chips contributed to the slice (prev, level] by every player.
		amount := 0
		for _, p := range players {
			c := p.InChips
			if c > level {
				c = level
			}
			if c > prev {
				amount += c - prev
			}
		}

		// Best hand among contenders who covered this level.
		best := evaluator.HandRank(0)
		var eligible []int
		for i, p := range players {
			rank, contending := ranks[i]
			if !contending || p.InChips < level {
				continue
			}
			if rank > best {
				best = rank
				eligible = eligible[:0]
				eligible = append(eligible, i)
			} else if rank == best {
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			// Every contributor at this level folded; the slice goes to
			// the contenders of the previous level, which the loop has
			// already paid. Give it to the overall best hand instead.
			eligible = bestOverall(len(players), ranks)
		}

		share := amount / len(eligible)
		for _, i := range eligible {
			winnings[i] += share
		}
		// Odd chips go to the earliest eligible seat.
		for i := 0; i < amount%len(eligible); i++ {
			winnings[eligible[i]]++
		}

		prev = level
	}
}

// commitmentLevels returns the sorted distinct positive InChips values.
func commitmentLevels(players []*Player) []int {
	levels := make([]int, 0, len(players))
	for _, p := range players {
		if p.InChips == 0 {
			continue
		}
		seen := false
		for _, l := range levels {
			if l == p.InChips {
				seen = true
				break
			}
		}
		if !seen {
			levels = append(levels, p.InChips)
		}
	}
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j] < levels[j-1]; j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}
	return levels
}

func bestOverall(numPlayers int, ranks map[int]evaluator.HandRank) []int {
	best := evaluator.HandRank(0)
	var out []int
	for i := 0; i < numPlayers; i++ {
		r, ok := ranks[i]
		if !ok {
			continue
		}
		if r > best {
			best = r
			out = []int{i}
		} else if r == best {
			out = append(out, i)
		}
	}
	return out
}
