package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayers(chips ...int) []*Player {
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = NewPlayer(i, c)
	}
	return players
}

// seedBlinds posts blinds and opens a preflop round the way InitHand
// does: raised amounts seeded, big blind not yet marked as having acted.
func seedBlinds(players []*Player, sb, bb int) *BettingRound {
	players[sb].Bet(1)
	players[bb].Bet(2)
	raised := make([]int, len(players))
	for i, p := range players {
		raised[i] = p.InChips
	}
	r := NewBettingRound(len(players), 2)
	r.StartNewRound((bb+1)%len(players), raised)
	return r
}

func pot(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.InChips
	}
	return total
}

func TestLegalActionsFacingABet(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	// Seat 0 (UTG) faces the big blind.
	actions := r.LegalActions(players, pot(players))
	assert.Contains(t, actions, Fold)
	assert.Contains(t, actions, Call)
	assert.Contains(t, actions, AllIn)
	assert.NotContains(t, actions, Check)
}

func TestLegalActionsUnraised(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100)
	r := NewBettingRound(2, 2)
	r.StartNewRound(0, nil)

	actions := r.LegalActions(players, 0)
	assert.Contains(t, actions, Check)
	assert.NotContains(t, actions, Call)
	// Pot-fraction raises need a pot to size against.
	assert.NotContains(t, actions, RaisePot)
	assert.NotContains(t, actions, RaiseHalfPot)
}

func TestPotRaiseNotOfferedWithoutCoverage(t *testing.T) {
	t.Parallel()
	// Seat 0 has barely more than the call; a pot-size raise would be
	// an all-in, so only AllIn is offered.
	players := newTestPlayers(3, 100, 100)
	r := seedBlinds(players, 1, 2)

	actions := r.LegalActions(players, pot(players))
	assert.Contains(t, actions, Call)
	assert.Contains(t, actions, AllIn)
	assert.NotContains(t, actions, RaisePot)
}

func TestCallMatchesMaxRaised(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	next := r.ProceedRound(players, pot(players), Call)
	assert.Equal(t, 1, next)
	assert.Equal(t, 2, r.Raised(0))
	assert.Equal(t, 2, players[0].InChips)
	assert.Equal(t, 98, players[0].RemainedChips)
}

func TestBigBlindGetsOption(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	r.ProceedRound(players, pot(players), Call) // UTG calls
	r.ProceedRound(players, pot(players), Call) // SB completes
	require.False(t, r.IsOver(players), "big blind still has the option")

	r.ProceedRound(players, pot(players), Check)
	assert.True(t, r.IsOver(players))
}

func TestRaiseReopensBetting(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	r.ProceedRound(players, pot(players), Call)     // UTG
	r.ProceedRound(players, pot(players), Call)     // SB
	r.ProceedRound(players, pot(players), RaisePot) // BB raises
	require.False(t, r.IsOver(players))

	r.ProceedRound(players, pot(players), Call) // UTG calls the raise
	require.False(t, r.IsOver(players))
	r.ProceedRound(players, pot(players), Call) // SB calls the raise
	assert.True(t, r.IsOver(players))
}

func TestRaisePotSizing(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	// Pot is 3; a pot raise commits 3 more chips.
	r.ProceedRound(players, 3, RaisePot)
	assert.Equal(t, 3, r.Raised(0))
	assert.Equal(t, 3, players[0].InChips)
}

func TestFoldSkipsSeat(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	r.ProceedRound(players, pot(players), Fold) // UTG folds
	assert.Equal(t, Folded, players[0].Status)

	// Pointer cycles SB -> BB and never returns to the folded seat.
	next := r.ProceedRound(players, pot(players), Call) // SB
	assert.Equal(t, 2, next)
	next = r.ProceedRound(players, pot(players), Check) // BB
	assert.Equal(t, 1, next)
}

func TestAllInMarksStatus(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	r.ProceedRound(players, pot(players), AllIn)
	assert.Equal(t, AllInStatus, players[0].Status)
	assert.Equal(t, 0, players[0].RemainedChips)
	assert.Equal(t, 100, r.Raised(0))
	require.False(t, r.IsOver(players), "others must respond to the shove")
}

func TestShortCallGoesAllIn(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100, 100)
	r := seedBlinds(players, 1, 2)

	r.ProceedRound(players, pot(players), AllIn) // UTG shoves 100
	r.ProceedRound(players, pot(players), Fold)  // SB folds

	// BB calls with only 98 behind; capped and flagged all-in.
	r.ProceedRound(players, pot(players), Call)
	assert.Equal(t, AllInStatus, players[2].Status)
	assert.Equal(t, 100, players[2].InChips)
	assert.True(t, r.IsOver(players))
}

func TestSoleCoveredActorEndsStreet(t *testing.T) {
	t.Parallel()
	// Two short stacks shove below the big blind; the big blind has
	// already committed the maximum and owes nothing.
	players := newTestPlayers(2, 2, 100)
	r := seedBlinds(players, 1, 2)

	r.ProceedRound(players, pot(players), AllIn) // seat 0 shoves 2 total
	r.ProceedRound(players, pot(players), AllIn) // seat 1 shoves 2 total
	assert.True(t, r.IsOver(players), "covered big blind has no decision left")
}

func TestStartNewRoundResetsActedOnly(t *testing.T) {
	t.Parallel()
	players := newTestPlayers(100, 100)
	r := seedBlinds(players, 0, 1)

	r.ProceedRound(players, pot(players), Call)
	r.ProceedRound(players, pot(players), Check)
	require.True(t, r.IsOver(players))

	r.StartNewRound(1, nil)
	assert.False(t, r.IsOver(players), "new street needs fresh actions")
	// Hand totals carry across streets.
	assert.Equal(t, 2, r.Raised(0))
	assert.Equal(t, 2, r.Raised(1))
}
