package crosscheck

import (
	"fmt"
	"strings"

	treys "github.com/chehsunliu/poker"
	ph "github.com/paulhankin/poker"

	"github.com/luca-patrignani/showdown/domain/poker"
)

// Reference is an independent 7-card evaluator the brute-force search is checked against.
type Reference interface {
	Name() string
	// Compare returns the sign of a against b: -1, 0 or +1.
	Compare(a, b [7]poker.Card) (int, error)
}

// Categorizer is implemented by references that can also name the hand class.
type Categorizer interface {
	Category(h [7]poker.Card) (poker.HandCategory, error)
}

// Describer is implemented by references that can put a hand into words.
type Describer interface {
	Describe(h [7]poker.Card) (string, error)
}

// paulHankin wraps github.com/paulhankin/poker, a perfect-hash 7-card evaluator.
// Bigger scores are stronger.
type paulHankin struct{}

func (paulHankin) Name() string { return "paulhankin" }

func (p paulHankin) Compare(a, b [7]poker.Card) (int, error) {
	ha, err := toPaulHankin(a)
	if err != nil {
		return 0, err
	}
	hb, err := toPaulHankin(b)
	if err != nil {
		return 0, err
	}
	return sign(int(ph.Eval7(&ha)) - int(ph.Eval7(&hb))), nil
}

// Describe returns the reference's own wording of a hand.
func (paulHankin) Describe(h [7]poker.Card) (string, error) {
	c, err := toPaulHankin(h)
	if err != nil {
		return "", err
	}
	return ph.Describe(c[:])
}

// suits are numbered clubs, diamonds, hearts, spades by paulhankin/poker
var paulHankinSuit = map[byte]ph.Suit{
	poker.Club:    0,
	poker.Diamond: 1,
	poker.Heart:   2,
	poker.Spade:   3,
}

func toPaulHankin(h [7]poker.Card) ([7]ph.Card, error) {
	var out [7]ph.Card
	for i, c := range h {
		rank := c.Rank()
		if rank == poker.Ace {
			rank = 1
		}
		card, err := ph.MakeCard(paulHankinSuit[c.Suit()], ph.Rank(rank))
		if err != nil {
			return [7]ph.Card{}, fmt.Errorf("invalid card %v for paulhankin: %w", c, err)
		}
		out[i] = card
	}
	return out, nil
}

// cheHsunLiu wraps github.com/chehsunliu/poker, a port of the treys evaluator.
// Smaller ranks are stronger, 1 being a royal flush.
type cheHsunLiu struct{}

func (cheHsunLiu) Name() string { return "chehsunliu" }

func (cheHsunLiu) Compare(a, b [7]poker.Card) (int, error) {
	return sign(int(treys.Evaluate(toTreys(b))) - int(treys.Evaluate(toTreys(a)))), nil
}

var treysClasses = map[string]poker.HandCategory{
	"Straight Flush":  poker.StraightFlush,
	"Four of a Kind":  poker.FourOfAKind,
	"Full House":      poker.FullHouse,
	"Flush":           poker.Flush,
	"Straight":        poker.Straight,
	"Three of a Kind": poker.ThreeOfAKind,
	"Two Pair":        poker.TwoPair,
	"Pair":            poker.OnePair,
	"High Card":       poker.HighCard,
}

func (cheHsunLiu) Category(h [7]poker.Card) (poker.HandCategory, error) {
	name := treys.RankString(treys.Evaluate(toTreys(h)))
	cat, ok := treysClasses[name]
	if !ok {
		return 0, fmt.Errorf("unknown hand class %q from chehsunliu", name)
	}
	return cat, nil
}

// treys cards are written rank first in upper case, suit in lower case: "Td".
func toTreys(h [7]poker.Card) []treys.Card {
	out := make([]treys.Card, len(h))
	for i, c := range h {
		s := c.String()
		out[i] = treys.NewCard(s[:len(s)-1] + strings.ToLower(s[len(s)-1:]))
	}
	return out
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
