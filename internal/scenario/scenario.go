// Package scenario loads scripted hands from HCL files. A scenario
// fixes the table parameters and, optionally, the injected cards and
// the action sequence, so a hand can be replayed exactly.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pokersim/holdem-env/internal/game"
	"github.com/pokersim/holdem-env/poker"
)

// Scenario is the on-disk shape of a scripted hand.
type Scenario struct {
	Game    GameSettings `hcl:"game,block"`
	Cards   *CardScript  `hcl:"cards,block"`
	Actions []string     `hcl:"actions,optional"`
}

// GameSettings mirrors the table parameters.
type GameSettings struct {
	Players    int  `hcl:"players,optional"`
	Chips      int  `hcl:"chips,optional"`
	SmallBlind int  `hcl:"small_blind,optional"`
	BigBlind   int  `hcl:"big_blind,optional"`
	Dealer     *int `hcl:"dealer,optional"` // absent means random
	StepBack   bool `hcl:"allow_step_back,optional"`
}

// CardScript names the cards to inject. Any present field switches the
// hand into manual dealing.
type CardScript struct {
	Hole  []string `hcl:"hole,optional"`
	Flop  []string `hcl:"flop,optional"`
	Turn  string   `hcl:"turn,optional"`
	River string   `hcl:"river,optional"`
}

// Compiled is a scenario with every string field parsed into domain
// types, ready to drive a hand.
type Compiled struct {
	Game    game.Config
	Flop    []poker.Card
	Turn    *poker.Card
	River   *poker.Card
	Actions []game.Action
}

// Default returns the scenario used when no file is given: a heads-up
// table with automatic dealing.
func Default() *Scenario {
	return &Scenario{
		Game: GameSettings{
			Players:    2,
			Chips:      100,
			SmallBlind: 1,
			BigBlind:   2,
		},
	}
}

// Load reads a scenario from an HCL file. A missing file yields the
// default scenario; absent fields fall back to the defaults.
func Load(filename string) (*Scenario, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file: %s", diags.Error())
	}

	var s Scenario
	if diags = gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario: %s", diags.Error())
	}

	if s.Game.Players == 0 {
		s.Game.Players = 2
	}
	if s.Game.Chips == 0 {
		s.Game.Chips = 100
	}
	if s.Game.SmallBlind == 0 {
		s.Game.SmallBlind = 1
	}
	if s.Game.BigBlind == 0 {
		s.Game.BigBlind = 2 * s.Game.SmallBlind
	}
	return &s, nil
}

// Validate checks the scenario before compilation.
func (s *Scenario) Validate() error {
	if s.Game.Players < 2 {
		return fmt.Errorf("scenario needs at least 2 players, got %d", s.Game.Players)
	}
	if s.Game.Chips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", s.Game.Chips)
	}
	if s.Game.BigBlind <= s.Game.SmallBlind {
		return fmt.Errorf("big blind %d must exceed small blind %d", s.Game.BigBlind, s.Game.SmallBlind)
	}
	if s.Game.Dealer != nil && (*s.Game.Dealer < 0 || *s.Game.Dealer >= s.Game.Players) {
		return fmt.Errorf("dealer seat %d out of range", *s.Game.Dealer)
	}
	if s.Cards != nil {
		if len(s.Cards.Hole) > 2 {
			return fmt.Errorf("hole script may name at most 2 cards, got %d", len(s.Cards.Hole))
		}
		if n := len(s.Cards.Flop); n != 0 && n != 3 {
			return fmt.Errorf("flop script must name exactly 3 cards, got %d", n)
		}
	}
	for _, a := range s.Actions {
		if _, ok := game.ParseAction(a); !ok {
			return fmt.Errorf("unknown action %q", a)
		}
	}
	return nil
}

// Compile parses the card and action strings and assembles the game
// configuration.
func (s *Scenario) Compile() (*Compiled, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c := &Compiled{
		Game: game.Config{
			NumPlayers:    s.Game.Players,
			InitChips:     s.Game.Chips,
			SmallBlind:    s.Game.SmallBlind,
			BigBlind:      s.Game.BigBlind,
			DealerID:      -1,
			ManualMode:    s.Cards != nil,
			AllowStepBack: s.Game.StepBack,
		},
	}
	if s.Game.Dealer != nil {
		c.Game.DealerID = *s.Game.Dealer
	}

	if s.Cards != nil {
		hole, err := poker.ParseCards(s.Cards.Hole...)
		if err != nil {
			return nil, fmt.Errorf("hole script: %w", err)
		}
		c.Game.PlayerZeroHand = hole

		if c.Flop, err = poker.ParseCards(s.Cards.Flop...); err != nil {
			return nil, fmt.Errorf("flop script: %w", err)
		}
		if s.Cards.Turn != "" {
			card, err := poker.ParseCard(s.Cards.Turn)
			if err != nil {
				return nil, fmt.Errorf("turn script: %w", err)
			}
			c.Turn = &card
		}
		if s.Cards.River != "" {
			card, err := poker.ParseCard(s.Cards.River)
			if err != nil {
				return nil, fmt.Errorf("river script: %w", err)
			}
			c.River = &card
		}
	}

	for _, a := range s.Actions {
		action, _ := game.ParseAction(a)
		c.Actions = append(c.Actions, action)
	}
	return c, nil
}
