package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/pokersim/holdem-env/poker"
)

// CardSource supplies cards for a single hand. In automatic mode every
// draw comes from the shuffled deck. In manual mode externally supplied
// preset queues take priority: up to two cards for player zero's hand,
// exactly three for the flop, and one each for turn and river. A card
// moved into a preset queue is removed from the deck at the same time,
// so no identity can be dealt twice.
type CardSource struct {
	deck   *poker.Deck
	manual bool

	presetHand  []poker.Card
	presetFlop  []poker.Card
	presetTurn  []poker.Card // empty or a single card
	presetRiver []poker.Card

	// street selects which community queue feeds DealCommunity.
	street Street

	// handCardsDealt counts cards already dealt to player zero (0..2).
	handCardsDealt int
}

// NewCardSource creates an automatic-mode card source over a freshly
// shuffled deck.
func NewCardSource(rng *rand.Rand) *CardSource {
	return &CardSource{deck: poker.NewDeck(rng)}
}

// EnableManualMode switches to manual-injection mode. Must be called
// before any cards are drawn for the hand it applies to.
func (cs *CardSource) EnableManualMode() {
	cs.manual = true
}

// ManualMode reports whether preset queues are in effect
func (cs *CardSource) ManualMode() bool {
	return cs.manual
}

// PresetHand stores the preset cards for player zero's hand and removes
// them from the deck. A no-op outside manual mode.
func (cs *CardSource) PresetHand(cards []poker.Card) {
	if !cs.manual {
		return
	}
	cs.presetHand = append([]poker.Card(nil), cards...)
	for _, c := range cards {
		cs.deck.Remove(c)
	}
}

// PresetFlop stores the three flop cards and removes them from the
// deck. A no-op outside manual mode.
func (cs *CardSource) PresetFlop(cards []poker.Card) error {
	if !cs.manual {
		return nil
	}
	if len(cards) != 3 {
		return fmt.Errorf("%w: flop must consist of exactly 3 cards, got %d", ErrInvalidArgument, len(cards))
	}
	cs.presetFlop = append([]poker.Card(nil), cards...)
	for _, c := range cards {
		cs.deck.Remove(c)
	}
	return nil
}

// PresetTurn stores the turn card and removes it from the deck.
// A no-op outside manual mode.
func (cs *CardSource) PresetTurn(card poker.Card) {
	if !cs.manual {
		return
	}
	cs.presetTurn = []poker.Card{card}
	cs.deck.Remove(card)
}

// PresetRiver stores the river card and removes it from the deck.
// A no-op outside manual mode.
func (cs *CardSource) PresetRiver(card poker.Card) {
	if !cs.manual {
		return
	}
	cs.presetRiver = []poker.Card{card}
	cs.deck.Remove(card)
}

// HasPendingCards reports whether the source can deal the given
// street's community cards right now. Automatic mode always can; manual
// mode requires the matching preset queue to be fully populated.
func (cs *CardSource) HasPendingCards(street Street) bool {
	if !cs.manual {
		return true
	}
	switch street {
	case Flop:
		return len(cs.presetFlop) == 3
	case Turn:
		return len(cs.presetTurn) > 0
	case River:
		return len(cs.presetRiver) > 0
	default:
		return false
	}
}

// SetStreet selects which preset queue feeds community dealing.
func (cs *CardSource) SetStreet(street Street) {
	cs.street = street
}

// DealToPlayer draws the next hole card for the given player. Player
// zero is fed from the preset hand queue first when one is configured.
func (cs *CardSource) DealToPlayer(playerID int) poker.Card {
	if cs.manual && playerID == 0 && cs.handCardsDealt < 2 && len(cs.presetHand) > 0 {
		card := cs.presetHand[0]
		cs.presetHand = cs.presetHand[1:]
		cs.handCardsDealt++
		return card
	}
	return cs.pop()
}

// DealCommunity draws the next community card for the current street,
// consuming the street's preset queue before falling back to the deck.
func (cs *CardSource) DealCommunity() poker.Card {
	if cs.manual {
		switch {
		case cs.street == Flop && len(cs.presetFlop) > 0:
			card := cs.presetFlop[0]
			cs.presetFlop = cs.presetFlop[1:]
			return card
		case cs.street == Turn && len(cs.presetTurn) > 0:
			card := cs.presetTurn[0]
			cs.presetTurn = nil
			return card
		case cs.street == River && len(cs.presetRiver) > 0:
			card := cs.presetRiver[0]
			cs.presetRiver = nil
			return card
		}
	}
	return cs.pop()
}

// Shuffle reshuffles the remaining deck and resets the player-zero
// dealt counter. Preset queues are untouched.
func (cs *CardSource) Shuffle() {
	cs.deck.Shuffle()
	cs.handCardsDealt = 0
}

// DeckContains reports whether the given card is still undealt.
func (cs *CardSource) DeckContains(card poker.Card) bool {
	return cs.deck.Contains(card)
}

// DeckLen returns the number of undealt cards.
func (cs *CardSource) DeckLen() int {
	return cs.deck.Len()
}

func (cs *CardSource) pop() poker.Card {
	card, ok := cs.deck.Pop()
	if !ok {
		// Cannot happen with <=10 players and a 52-card deck; an empty
		// deck here means an invariant was violated upstream.
		panic("game: deck exhausted during draw")
	}
	return card
}

// clone returns an independent deep copy for undo snapshots.
func (cs *CardSource) clone() *CardSource {
	return &CardSource{
		deck:           cs.deck.Clone(),
		manual:         cs.manual,
		presetHand:     append([]poker.Card(nil), cs.presetHand...),
		presetFlop:     append([]poker.Card(nil), cs.presetFlop...),
		presetTurn:     append([]poker.Card(nil), cs.presetTurn...),
		presetRiver:    append([]poker.Card(nil), cs.presetRiver...),
		street:         cs.street,
		handCardsDealt: cs.handCardsDealt,
	}
}
