package poker

import "fmt"

var rankNames = map[int][2]string{
	2:     {"Two", "Twos"},
	3:     {"Three", "Threes"},
	4:     {"Four", "Fours"},
	5:     {"Five", "Fives"},
	6:     {"Six", "Sixes"},
	7:     {"Seven", "Sevens"},
	8:     {"Eight", "Eights"},
	9:     {"Nine", "Nines"},
	Ten:   {"Ten", "Tens"},
	Jack:  {"Jack", "Jacks"},
	Queen: {"Queen", "Queens"},
	King:  {"King", "Kings"},
	Ace:   {"Ace", "Aces"},
}

func rankName(r int, plural bool) string {
	n, ok := rankNames[r]
	if !ok {
		return fmt.Sprintf("rank %d", r)
	}
	if plural {
		return n[1]
	}
	return n[0]
}

// Describe returns a short English label for a hand, e.g. "Two Pair, Kings and Fives".
func Describe(h HandResult) string {
	tb := h.Tiebreak
	if len(tb) == 0 {
		return h.Category.String()
	}
	switch h.Category {
	case StraightFlush:
		if tb[0] == Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s high", rankName(tb[0], false))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", rankName(tb[0], true))
	case FullHouse:
		if len(tb) < 2 {
			break
		}
		return fmt.Sprintf("Full House, %s over %s", rankName(tb[0], true), rankName(tb[1], true))
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankName(tb[0], false))
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankName(tb[0], false))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", rankName(tb[0], true))
	case TwoPair:
		if len(tb) < 2 {
			break
		}
		return fmt.Sprintf("Two Pair, %s and %s", rankName(tb[0], true), rankName(tb[1], true))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankName(tb[0], true))
	case HighCard:
		return fmt.Sprintf("High Card, %s", rankName(tb[0], false))
	}
	return h.Category.String()
}
