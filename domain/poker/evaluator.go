package poker

import "sort"

// rankGroup is every card of one rank inside a five-card hand.
type rankGroup struct {
	rank  uint8
	cards []Card
}

// Classify5 classifies exactly five cards. The input slice is not modified and
// the result shares no memory with it.
func Classify5(cards []Card) (HandResult, error) {
	if err := checkSize("Classify5", cards, 5); err != nil {
		return HandResult{}, err
	}
	var hand [5]Card
	copy(hand[:], cards)
	return classify(hand), nil
}

func classify(hand [5]Card) HandResult {
	groups := groupByRank(hand)
	flush := isFlush(hand)
	straightHigh, straightRanks, straight := straightOf(groups)

	var res HandResult
	switch {
	case flush && straight:
		res.Category = StraightFlush
		res.Tiebreak = []int{straightHigh}
		res.Chosen = chooseByRanks(groups, straightRanks)
		return res
	case groups[0].count() == 4:
		res.Category = FourOfAKind
	case groups[0].count() == 3 && len(groups) == 2:
		res.Category = FullHouse
	case flush:
		res.Category = Flush
		copy(res.Chosen[:], SortCardsDesc(hand[:]))
		res.Tiebreak = res.ChosenRanks()
		return res
	case straight:
		res.Category = Straight
		res.Tiebreak = []int{straightHigh}
		res.Chosen = chooseByRanks(groups, straightRanks)
		return res
	case groups[0].count() == 3:
		res.Category = ThreeOfAKind
	case groups[0].count() == 2 && len(groups) == 3:
		res.Category = TwoPair
	case groups[0].count() == 2:
		res.Category = OnePair
	default:
		res.Category = HighCard
	}

	// Every remaining category reads its tiebreak straight off the groups:
	// deciding groups first, kickers after, each rank once.
	res.Tiebreak = make([]int, 0, len(groups))
	i := 0
	for _, g := range groups {
		res.Tiebreak = append(res.Tiebreak, int(g.rank))
		for _, c := range g.cards {
			res.Chosen[i] = c
			i++
		}
	}
	return res
}

func (g rankGroup) count() int {
	return len(g.cards)
}

// groupByRank buckets the hand by rank. Groups are sorted by size, then by rank,
// both descending, and the cards of a group are sorted by suit for display.
func groupByRank(hand [5]Card) []rankGroup {
	var byRank [Ace + 1][]Card
	for _, c := range hand {
		byRank[c.rank] = append(byRank[c.rank], c)
	}
	groups := make([]rankGroup, 0, 5)
	for r := Ace; r >= 0; r-- {
		if len(byRank[r]) > 0 {
			groups = append(groups, rankGroup{rank: uint8(r), cards: SortCardsDesc(byRank[r])})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count() > groups[j].count()
	})
	return groups
}

func isFlush(hand [5]Card) bool {
	for _, c := range hand[1:] {
		if c.suit != hand[0].suit {
			return false
		}
	}
	return true
}

// straightOf reports whether five distinct ranks run consecutively. The wheel
// A-2-3-4-5 counts as a five-high straight with the ace placed last.
func straightOf(groups []rankGroup) (high int, order []uint8, ok bool) {
	if len(groups) != 5 {
		return 0, nil, false
	}
	// groups of a single card are already rank-descending
	top, bottom := groups[0].rank, groups[4].rank
	if top == Ace && groups[1].rank == 5 && bottom == 2 {
		return 5, []uint8{5, 4, 3, 2, Ace}, true
	}
	if top-bottom != 4 {
		return 0, nil, false
	}
	order = make([]uint8, 5)
	for i, g := range groups {
		order[i] = g.rank
	}
	return int(top), order, true
}

func chooseByRanks(groups []rankGroup, ranks []uint8) [5]Card {
	var chosen [5]Card
	for i, r := range ranks {
		for _, g := range groups {
			if g.rank == r {
				chosen[i] = g.cards[0]
				break
			}
		}
	}
	return chosen
}

// BestOf7 evaluates every five-card subset of exactly seven cards and returns the
// strongest. Among equally strong subsets the first one found is kept.
func BestOf7(cards []Card) (HandResult, error) {
	if err := checkSize("BestOf7", cards, 7); err != nil {
		return HandResult{}, err
	}

	var best HandResult
	found := false
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						res := classify([5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
						if !found || res.Beats(best) {
							best = res
							found = true
						}
					}
				}
			}
		}
	}
	return best, nil
}

// HoldemBest returns the best five-card hand a Texas Hold'em player makes from
// the five board cards and their two hole cards. Any of 0, 1 or 2 hole cards may
// play.
func HoldemBest(board, hole []Card) (HandResult, error) {
	if err := checkSize("HoldemBest board", board, 5); err != nil {
		return HandResult{}, err
	}
	if err := checkSize("HoldemBest hole", hole, 2); err != nil {
		return HandResult{}, err
	}
	seven := make([]Card, 0, 7)
	seven = append(seven, board...)
	seven = append(seven, hole...)
	return BestOf7(seven)
}
