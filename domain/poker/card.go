package poker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants. Suits never take part in hand strength.
const (
	Spade   = 'S' // ♠ (black)
	Heart   = 'H' // ♥ (red)
	Diamond = 'D' // ♦ (red)
	Club    = 'C' // ♣ (black)
)

// Card rank constants for face cards and ace
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14 // high; plays low only inside the wheel straight
)

var rankTokens = map[string]uint8{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"10": Ten, "T": Ten,
	"J": Jack, "Q": Queen, "K": King, "A": Ace,
}

// Card represents a playing card with rank and suit.
// Two cards are equal when both rank and suit match; ordering only looks at the rank
// (see CompareCards).
type Card struct {
	rank uint8 // 2-14: two through ace
	suit byte  // one of 'S', 'H', 'D', 'C'
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//   - suit: one of Spade, Heart, Diamond, Club
//
// Returns the Card or an error wrapping ErrInvalidCardFormat.
func NewCard(rank uint8, suit byte) (Card, error) {
	if rank < 2 || rank > Ace {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCardFormat, rank)
	}
	if !validSuit(suit) {
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCardFormat, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCard converts a token such as "AS", "10h" or " td " into a Card.
// The last character is the suit, everything before it is the rank.
func ParseCard(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return Card{}, fmt.Errorf("%w: empty card token", ErrInvalidCardFormat)
	}
	if len(t) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardFormat, token)
	}

	suit := t[len(t)-1]
	if !validSuit(suit) {
		return Card{}, fmt.Errorf("%w: invalid suit %q in %q", ErrInvalidCardFormat, suit, token)
	}
	rank, ok := rankTokens[t[:len(t)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: invalid rank %q in %q", ErrInvalidCardFormat, t[:len(t)-1], token)
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCards parses every token, failing on the first malformed one.
func ParseCards(tokens ...string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCard is like ParseCard but panics on error.
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseCards is like ParseCards but panics on error.
func MustParseCards(tokens ...string) []Card {
	cards, err := ParseCards(tokens...)
	if err != nil {
		panic(err)
	}
	return cards
}

// Rank returns the rank value of the Card (2-14: two through ace).
func (c Card) Rank() uint8 {
	return c.rank
}

// Suit returns the suit letter of the Card ('S', 'H', 'D' or 'C').
func (c Card) Suit() byte {
	return c.suit
}

// String returns the canonical token of the Card, e.g. "AS" or "TD".
// ParseCard(c.String()) always yields c back.
func (c Card) String() string {
	if c.rank == 0 {
		return "??"
	}
	return rankString(c.rank) + string(c.suit)
}

// Pretty returns a human-readable representation of the Card using coloured suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, K, Q, J, T or number).
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return rankString(c.rank) + suit
}

// CompareCards orders two cards by rank only: it returns -1 when a is lower,
// +1 when a is higher and 0 when the ranks match, whatever the suits.
func CompareCards(a, b Card) int {
	switch {
	case a.rank < b.rank:
		return -1
	case a.rank > b.rank:
		return 1
	}
	return 0
}

// SortCardsDesc returns a copy of cards sorted by rank descending, using the suit
// letter as a secondary key so the display order is deterministic.
func SortCardsDesc(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool {
		if out[i].rank != out[j].rank {
			return out[i].rank > out[j].rank
		}
		return out[i].suit > out[j].suit
	})
	return out
}

func validSuit(s byte) bool {
	switch s {
	case Spade, Heart, Diamond, Club:
		return true
	}
	return false
}

func rankString(r uint8) string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	}
	return fmt.Sprintf("%d", r)
}
