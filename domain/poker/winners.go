package poker

import "fmt"

// WinnerOutcome is the showdown of one board between several players.
type WinnerOutcome struct {
	Results []HandResult // index-aligned with the hole hands passed in
	Winners []int        // ascending player indices holding the strongest hand
}

// IsSplit reports whether more than one player shares the strongest hand.
func (o WinnerOutcome) IsSplit() bool {
	return len(o.Winners) > 1
}

// DetermineWinners computes every player's best Hold'em hand on the shared board
// and the set of players tied for the strongest one.
func DetermineWinners(board []Card, holes [][]Card) (WinnerOutcome, error) {
	if err := checkSize("DetermineWinners board", board, 5); err != nil {
		return WinnerOutcome{}, err
	}
	if len(holes) == 0 {
		return WinnerOutcome{}, fmt.Errorf("%w: DetermineWinners expects at least one player", ErrInvalidInputSize)
	}

	results := make([]HandResult, len(holes))
	for i, hole := range holes {
		if err := checkSize(fmt.Sprintf("DetermineWinners player %d hole", i), hole, 2); err != nil {
			return WinnerOutcome{}, err
		}
		res, err := HoldemBest(board, hole)
		if err != nil {
			return WinnerOutcome{}, err
		}
		results[i] = res
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Beats(best) {
			best = r
		}
	}
	var winners []int
	for i, r := range results {
		if r.Ties(best) {
			winners = append(winners, i)
		}
	}
	return WinnerOutcome{Results: results, Winners: winners}, nil
}

// SplitPot divides amount between the winners. Odd chips left over go one each
// to the winners in the order given, which DetermineWinners keeps ascending.
func SplitPot(amount uint, winners []int) map[int]uint {
	shares := make(map[int]uint, len(winners))
	if len(winners) == 0 {
		return shares
	}
	share := amount / uint(len(winners))
	rest := amount % uint(len(winners))
	for i, w := range winners {
		shares[w] += share
		if uint(i) < rest {
			shares[w]++
		}
	}
	return shares
}
