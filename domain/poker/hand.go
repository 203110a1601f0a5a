package poker

import "fmt"

// HandCategory is the class of a five-card hand. The zero value is HighCard and
// the constants are declared weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// categoryStrength is the fixed precedence table. It must stay in this order.
var categoryStrength = [...]int{
	HighCard:      0,
	OnePair:       1,
	TwoPair:       2,
	ThreeOfAKind:  3,
	Straight:      4,
	Flush:         5,
	FullHouse:     6,
	FourOfAKind:   7,
	StraightFlush: 8,
}

var categoryNames = [...]string{
	HighCard:      "HIGH_CARD",
	OnePair:       "ONE_PAIR",
	TwoPair:       "TWO_PAIR",
	ThreeOfAKind:  "THREE_OF_A_KIND",
	Straight:      "STRAIGHT",
	Flush:         "FLUSH",
	FullHouse:     "FULL_HOUSE",
	FourOfAKind:   "FOUR_OF_A_KIND",
	StraightFlush: "STRAIGHT_FLUSH",
}

// Strength returns the global precedence of the category, 0 (high card) to 8
// (straight flush).
func (h HandCategory) Strength() int {
	if int(h) >= len(categoryStrength) {
		return -1
	}
	return categoryStrength[h]
}

func (h HandCategory) String() string {
	if int(h) >= len(categoryNames) {
		return fmt.Sprintf("HandCategory(%d)", uint8(h))
	}
	return categoryNames[h]
}

// HandResult is the classification of a five-card hand.
//
// Two results are ordered by category strength and then by Tiebreak, element by
// element. Chosen is for display and never takes part in the comparison.
type HandResult struct {
	Category HandCategory
	Tiebreak []int
	Chosen   [5]Card
}

// Compare returns -1, 0 or +1 when h is weaker than, equal to or stronger than o.
func (h HandResult) Compare(o HandResult) int {
	if a, b := h.Category.Strength(), o.Category.Strength(); a != b {
		if a < b {
			return -1
		}
		return 1
	}
	for i := 0; i < len(h.Tiebreak) && i < len(o.Tiebreak); i++ {
		switch {
		case h.Tiebreak[i] < o.Tiebreak[i]:
			return -1
		case h.Tiebreak[i] > o.Tiebreak[i]:
			return 1
		}
	}
	switch {
	case len(h.Tiebreak) < len(o.Tiebreak):
		return -1
	case len(h.Tiebreak) > len(o.Tiebreak):
		return 1
	}
	return 0
}

// Beats reports whether h is strictly stronger than o.
func (h HandResult) Beats(o HandResult) bool {
	return h.Compare(o) > 0
}

// Ties reports whether h and o are equal poker hands.
func (h HandResult) Ties(o HandResult) bool {
	return h.Compare(o) == 0
}

// ChosenRanks returns the ranks of the chosen five cards in significance order.
func (h HandResult) ChosenRanks() []int {
	ranks := make([]int, len(h.Chosen))
	for i, c := range h.Chosen {
		ranks[i] = int(c.rank)
	}
	return ranks
}
