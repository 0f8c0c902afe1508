// Package evaluator ranks poker hands. Ranks are plain integers where a
// larger value beats a smaller one, so callers compare with < and ==.
package evaluator

import (
	"sort"

	"github.com/pokersim/holdem-env/poker"
)

// HandType enumerates the categories of poker hands ordered from weakest
// to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the hand type
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return "unknown"
	}
}

// HandRank encodes a hand's strength as category plus packed tiebreak
// values. Higher is stronger.
type HandRank uint32

// Type returns the category the rank belongs to.
func (r HandRank) Type() HandType {
	return HandType(r >> 20)
}

// pack builds a HandRank from a category and up to five tiebreak values
// in descending significance. Values are ace-high (2..14) so each fits
// in a nibble.
func pack(t HandType, vals ...int) HandRank {
	r := uint32(t) << 20
	shift := 16
	for _, v := range vals {
		r |= uint32(v) << shift
		shift -= 4
	}
	return HandRank(r)
}

// Evaluate5 ranks exactly five cards.
func Evaluate5(cards []poker.Card) HandRank {
	if len(cards) != 5 {
		panic("evaluator: Evaluate5 requires exactly 5 cards")
	}

	vals := make([]int, 5)
	flush := true
	for i, c := range cards {
		vals[i] = c.Rank.HighValue()
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))

	straightHigh := straightHighCard(vals)

	switch {
	case flush && straightHigh > 0:
		return pack(StraightFlush, straightHigh)
	case flush:
		return pack(Flush, vals...)
	case straightHigh > 0:
		return pack(Straight, straightHigh)
	}

	// Group values by multiplicity: counts maps value -> occurrences.
	counts := make(map[int]int, 5)
	for _, v := range vals {
		counts[v]++
	}

	// Order distinct values by count desc, then value desc.
	distinct := make([]int, 0, 5)
	for v := range counts {
		distinct = append(distinct, v)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return distinct[i] > distinct[j]
	})

	switch counts[distinct[0]] {
	case 4:
		return pack(FourOfAKind, distinct[0], distinct[1])
	case 3:
		if counts[distinct[1]] == 2 {
			return pack(FullHouse, distinct[0], distinct[1])
		}
		return pack(ThreeOfAKind, distinct...)
	case 2:
		if counts[distinct[1]] == 2 {
			return pack(TwoPair, distinct...)
		}
		return pack(Pair, distinct...)
	default:
		return pack(HighCard, vals...)
	}
}

// Evaluate returns the best five-card rank that can be made from five,
// six or seven cards.
func Evaluate(cards []poker.Card) HandRank {
	n := len(cards)
	if n < 5 || n > 7 {
		panic("evaluator: Evaluate requires 5 to 7 cards")
	}
	if n == 5 {
		return Evaluate5(cards)
	}

	var best HandRank
	pick := make([]poker.Card, 0, 5)
	for mask := 0; mask < 1<<n; mask++ {
		if bitsSet(mask) != 5 {
			continue
		}
		pick = pick[:0]
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				pick = append(pick, cards[i])
			}
		}
		if r := Evaluate5(pick); r > best {
			best = r
		}
	}
	return best
}

func bitsSet(x int) int {
	n := 0
	for ; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// straightHighCard returns the high card value of a straight formed by
// the given descending values, or 0 when they do not form one. The
// wheel (A-2-3-4-5) counts with a high card of five.
func straightHighCard(desc []int) int {
	run := true
	for i := 1; i < 5; i++ {
		if desc[i] != desc[0]-i {
			run = false
			break
		}
	}
	if run {
		return desc[0]
	}
	// Wheel: A,5,4,3,2 sorts to 14,5,4,3,2.
	if desc[0] == 14 && desc[1] == 5 && desc[2] == 4 && desc[3] == 3 && desc[4] == 2 {
		return 5
	}
	return 0
}
