package poker

import "fmt"

// Suit represents a card suit. The numeric order (spades, hearts,
// diamonds, clubs) is part of the wire encoding and must not change.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Rank represents a card rank. Ace is 0 so that the card ID encoding
// (rank + 13*suit) matches the external controller's representation.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const rankChars = "A23456789TJQK"

// String returns the string representation of a rank
func (r Rank) String() string {
	if r > King {
		return "?"
	}
	return string(rankChars[r])
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ID returns the stable integer identity of the card in 0..51,
// computed as rank + 13*suit. This is the representation used
// whenever cards cross a process boundary.
func (c Card) ID() int {
	return int(c.Rank) + 13*int(c.Suit)
}

// CardFromID decodes a card ID produced by Card.ID.
func CardFromID(id int) (Card, error) {
	if id < 0 || id > 51 {
		return Card{}, fmt.Errorf("card id out of range: %d", id)
	}
	return Card{Suit: Suit(id / 13), Rank: Rank(id % 13)}, nil
}

// String returns the string representation of a card (e.g., "As")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a string like "As" or "Td" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var rank Rank
	switch s[0] {
	case 'A', 'a':
		rank = Ace
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	default:
		return Card{}, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit Suit
	switch s[1] {
	case 'S', 's':
		suit = Spades
	case 'H', 'h':
		suit = Hearts
	case 'D', 'd':
		suit = Diamonds
	case 'C', 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", s[1])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCard parses a card string and panics on error.
// Intended for tests and static tables.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a sequence of card strings.
func ParseCards(strs ...string) ([]Card, error) {
	cards := make([]Card, 0, len(strs))
	for _, s := range strs {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// HighValue returns the ace-high comparison value of the rank (2..14).
func (r Rank) HighValue() int {
	if r == Ace {
		return 14
	}
	return int(r) + 1
}
