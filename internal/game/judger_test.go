package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokersim/holdem-env/poker"
)

// judgeHand builds a contender's seven-card hand from hole cards and
// the board.
func judgeHand(hole, board []poker.Card) []poker.Card {
	h := make([]poker.Card, 0, len(hole)+len(board))
	h = append(h, hole...)
	h = append(h, board...)
	return h
}

func judgePlayers(committed ...int) []*Player {
	players := make([]*Player, len(committed))
	for i, c := range committed {
		players[i] = NewPlayer(i, 0)
		players[i].InChips = c
	}
	return players
}

func TestJudgeSoleContenderTakesPot(t *testing.T) {
	t.Parallel()
	players := judgePlayers(5, 10, 10)
	hands := [][]poker.Card{nil, nil, mustCards("2s", "3h")}

	payoffs := ChipJudger{}.Judge(players, hands)
	assert.Equal(t, []int{-5, -10, 15}, payoffs)
}

func TestJudgeBetterHandWinsHeadsUp(t *testing.T) {
	t.Parallel()
	board := mustCards("2s", "7d", "9c", "Jh", "3d")
	players := judgePlayers(50, 50)
	hands := [][]poker.Card{
		judgeHand(mustCards("As", "Ah"), board), // pair of aces
		judgeHand(mustCards("Ks", "Kd"), board), // pair of kings
	}

	payoffs := ChipJudger{}.Judge(players, hands)
	assert.Equal(t, []int{50, -50}, payoffs)
}

func TestJudgeSplitPotWithOddChip(t *testing.T) {
	t.Parallel()
	board := mustCards("2s", "7d", "9c", "Jh", "3d")
	players := judgePlayers(11, 11, 11)
	hands := [][]poker.Card{
		judgeHand(mustCards("Ah", "Kh"), board), // ace-king high
		judgeHand(mustCards("Qs", "4h"), board), // queen high
		judgeHand(mustCards("Ad", "Kc"), board), // same ace-king high
	}

	payoffs := ChipJudger{}.Judge(players, hands)
	// 33 chips split between seats 0 and 2; the odd chip lands on the
	// earlier seat.
	assert.Equal(t, []int{6, -11, 5}, payoffs)
	sum := 0
	for _, p := range payoffs {
		sum += p
	}
	assert.Equal(t, 0, sum)
}

func TestJudgeSidePotCapsShortStack(t *testing.T) {
	t.Parallel()
	board := mustCards("2s", "7d", "9c", "Jh", "3d")
	// Seat 0 is all-in short with the best hand: it wins the main pot
	// only, and the side pot goes to the best covering hand.
	players := judgePlayers(30, 100, 100)
	hands := [][]poker.Card{
		judgeHand(mustCards("As", "Ah"), board),
		judgeHand(mustCards("Ks", "Kd"), board),
		judgeHand(mustCards("Qs", "Qd"), board),
	}

	payoffs := ChipJudger{}.Judge(players, hands)
	assert.Equal(t, []int{60, 40, -100}, payoffs)
}

func TestJudgeFoldedChipsGoToWinner(t *testing.T) {
	t.Parallel()
	board := mustCards("2s", "7d", "9c", "Jh", "3d")
	players := judgePlayers(20, 10, 20)
	hands := [][]poker.Card{
		judgeHand(mustCards("As", "Ah"), board),
		nil, // folded after committing 10
		judgeHand(mustCards("Ks", "Kd"), board),
	}

	payoffs := ChipJudger{}.Judge(players, hands)
	assert.Equal(t, []int{30, -10, -20}, payoffs)
}

func TestJudgeNestedSidePots(t *testing.T) {
	t.Parallel()
	board := mustCards("2s", "7d", "9c", "Jh", "3d")
	// Three commitment levels with the hand strength inverted against
	// stack depth: each seat wins exactly the slice it covered.
	players := judgePlayers(10, 40, 90)
	hands := [][]poker.Card{
		judgeHand(mustCards("As", "Ah"), board),
		judgeHand(mustCards("Ks", "Kd"), board),
		judgeHand(mustCards("Qs", "Qd"), board),
	}

	payoffs := ChipJudger{}.Judge(players, hands)
	// Main pot 30 to seat 0, first side pot 60 to seat 1, and the
	// uncalled 50 returns to seat 2.
	assert.Equal(t, []int{20, 20, -40}, payoffs)
}
