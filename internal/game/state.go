package game

import "github.com/pokersim/holdem-env/poker"

// State is the observable view of a hand assembled for one player. All
// slices are copies; mutating a State never affects the live game.
type State struct {
	PlayerID    int
	Hand        []poker.Card
	PublicCards []poker.Card

	// AllChips holds each seat's chips committed this hand; Stakes
	// holds each seat's remaining stack. Pot is the sum of AllChips.
	AllChips []int
	Stakes   []int
	Pot      int

	CurrentPlayer int
	Stage         Stage
	LegalActions  []Action

	// WaitingForCards is set while the hand is paused for manually
	// supplied cards; WaitingStage then names the paused stage.
	WaitingForCards bool
	WaitingStage    Stage
}
