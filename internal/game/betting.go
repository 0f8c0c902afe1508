package game

// BettingRound tracks per-street betting state: each player's chips
// committed this hand, and who has acted since the last raise. The
// round is created once per hand and restarted on every street.
type BettingRound struct {
	numPlayers  int
	bigBlind    int
	gamePointer int
	raised      []int
	acted       []bool
}

// NewBettingRound creates the betting state for a fresh hand
func NewBettingRound(numPlayers, bigBlind int) *BettingRound {
	return &BettingRound{
		numPlayers: numPlayers,
		bigBlind:   bigBlind,
		raised:     make([]int, numPlayers),
		acted:      make([]bool, numPlayers),
	}
}

// StartNewRound begins a new betting street at the given actor. For the
// preflop street the raised amounts are seeded with the posted blinds;
// later streets pass nil and keep accumulating hand totals.
func (r *BettingRound) StartNewRound(gamePointer int, raised []int) {
	r.gamePointer = gamePointer
	if raised != nil {
		copy(r.raised, raised)
	}
	for i := range r.acted {
		r.acted[i] = false
	}
}

// GamePointer returns the seat due to act
func (r *BettingRound) GamePointer() int {
	return r.gamePointer
}

// Raised returns the chips the seat has committed this hand
func (r *BettingRound) Raised(seat int) int {
	return r.raised[seat]
}

// MaxRaised returns the highest committed amount across all seats
func (r *BettingRound) MaxRaised() int {
	max := 0
	for _, v := range r.raised {
		if v > max {
			max = v
		}
	}
	return max
}

// ProceedRound applies an action for the seat due to act, moves the
// pointer to the next non-folded seat and returns it. The pot is the
// current total of committed chips, used to size the pot-fraction
// raises.
func (r *BettingRound) ProceedRound(players []*Player, pot int, action Action) int {
	seat := r.gamePointer
	p := players[seat]

	switch action {
	case Fold:
		p.Status = Folded
	case Check:
		r.acted[seat] = true
	case Call:
		diff := r.MaxRaised() - r.raised[seat]
		if diff > p.RemainedChips {
			diff = p.RemainedChips
		}
		r.raised[seat] += diff
		p.Bet(diff)
		r.acted[seat] = true
	case RaiseHalfPot:
		r.applyRaise(players, seat, pot/2)
	case RaisePot:
		r.applyRaise(players, seat, pot)
	case AllIn:
		r.applyRaise(players, seat, p.RemainedChips)
	}

	if p.RemainedChips == 0 && p.Status == Alive {
		p.Status = AllInStatus
	}

	// Advance past folded seats; all-in seats are filtered out at
	// street boundaries by the stage machine instead.
	for i := 0; i < r.numPlayers; i++ {
		r.gamePointer = (r.gamePointer + 1) % r.numPlayers
		if players[r.gamePointer].Status != Folded {
			break
		}
	}
	return r.gamePointer
}

// applyRaise commits quantity more chips for the seat. When the new
// total tops the table maximum everyone else has to act again.
func (r *BettingRound) applyRaise(players []*Player, seat, quantity int) {
	p := players[seat]
	if quantity > p.RemainedChips {
		quantity = p.RemainedChips
	}
	prevMax := r.MaxRaised()
	r.raised[seat] += quantity
	p.Bet(quantity)
	if r.raised[seat] > prevMax {
		for i := range r.acted {
			r.acted[i] = false
		}
	}
	r.acted[seat] = true
}

// LegalActions returns the actions available to the seat due to act.
func (r *BettingRound) LegalActions(players []*Player, pot int) []Action {
	p := players[r.gamePointer]
	diff := r.MaxRaised() - r.raised[r.gamePointer]

	actions := []Action{Fold}
	if diff == 0 {
		actions = append(actions, Check)
	} else {
		actions = append(actions, Call)
	}

	// A pot-fraction raise is only offered when it actually tops the
	// current bet and leaves chips behind; anything bigger is all-in.
	if half := pot / 2; half > diff && half < p.RemainedChips {
		actions = append(actions, RaiseHalfPot)
	}
	if pot > diff && pot < p.RemainedChips {
		actions = append(actions, RaisePot)
	}
	if p.RemainedChips > 0 {
		actions = append(actions, AllIn)
	}
	return actions
}

// IsOver reports whether the street's betting is complete: every player
// still able to act has acted since the last raise and matched the
// table maximum. A sole remaining actor whose commitment already meets
// the maximum has no decision left, so the street ends without them.
func (r *BettingRound) IsOver(players []*Player) bool {
	max := r.MaxRaised()

	alive := 0
	for _, p := range players {
		if p.Status == Alive {
			alive++
		}
	}
	if alive == 1 {
		for i, p := range players {
			if p.Status == Alive {
				return r.raised[i] >= max
			}
		}
	}

	for i, p := range players {
		if p.Status != Alive {
			continue
		}
		if !r.acted[i] || r.raised[i] != max {
			return false
		}
	}
	return true
}

// clone returns an independent deep copy for undo snapshots.
func (r *BettingRound) clone() *BettingRound {
	return &BettingRound{
		numPlayers:  r.numPlayers,
		bigBlind:    r.bigBlind,
		gamePointer: r.gamePointer,
		raised:      append([]int(nil), r.raised...),
		acted:       append([]bool(nil), r.acted...),
	}
}
