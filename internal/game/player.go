package game

import "github.com/pokersim/holdem-env/poker"

// PlayerStatus tracks whether a player can still act this hand
type PlayerStatus int

const (
	Alive PlayerStatus = iota
	Folded
	AllInStatus
)

func (s PlayerStatus) String() string {
	switch s {
	case Alive:
		return "alive"
	case Folded:
		return "folded"
	case AllInStatus:
		return "all-in"
	default:
		return "unknown"
	}
}

// Player represents a player in a hand. RemainedChips is the stack
// behind; InChips is the amount committed to the pot this hand.
type Player struct {
	ID            int
	RemainedChips int
	InChips       int
	Hand          []poker.Card
	Status        PlayerStatus
}

// NewPlayer creates a player with a starting stack
func NewPlayer(id, chips int) *Player {
	return &Player{ID: id, RemainedChips: chips, Status: Alive}
}

// Bet commits chips to the pot, capped at the remaining stack.
func (p *Player) Bet(chips int) {
	quantity := chips
	if quantity > p.RemainedChips {
		quantity = p.RemainedChips
	}
	p.InChips += quantity
	p.RemainedChips -= quantity
}

// Bypassed reports whether the player cannot act further this hand.
func (p *Player) Bypassed() bool {
	return p.Status == Folded || p.Status == AllInStatus
}

// clone returns an independent deep copy for undo snapshots.
func (p *Player) clone() *Player {
	hand := make([]poker.Card, len(p.Hand))
	copy(hand, p.Hand)
	return &Player{
		ID:            p.ID,
		RemainedChips: p.RemainedChips,
		InChips:       p.InChips,
		Hand:          hand,
		Status:        p.Status,
	}
}
