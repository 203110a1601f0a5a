package poker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holes(hands ...[]string) [][]Card {
	out := make([][]Card, len(hands))
	for i, h := range hands {
		out[i] = MustParseCards(h...)
	}
	return out
}

func TestDetermineWinnersSingleWinner(t *testing.T) {
	board := MustParseCards("AS", "KD", "9C", "5H", "2D")

	out, err := DetermineWinners(board, holes(
		[]string{"AH", "3S"},
		[]string{"QH", "JS"},
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0}, out.Winners)
	assert.False(t, out.IsSplit())
	require.Len(t, out.Results, 2)
	assert.Equal(t, OnePair, out.Results[0].Category)
	assert.Equal(t, HighCard, out.Results[1].Category)
}

func TestDetermineWinnersSplitBoardPlays(t *testing.T) {
	board := MustParseCards("5C", "6D", "7H", "8S", "9D")

	out, err := DetermineWinners(board, holes(
		[]string{"AS", "AH"},
		[]string{"KC", "QD"},
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, out.Winners)
	assert.True(t, out.IsSplit())
	assert.Equal(t, Straight, out.Results[0].Category)
	assert.Equal(t, Straight, out.Results[1].Category)
	assert.Equal(t, []int{9, 8, 7, 6, 5}, out.Results[0].ChosenRanks())
}

func TestDetermineWinnersKickerDecides(t *testing.T) {
	board := MustParseCards("KS", "KD", "8C", "5H", "2D")

	out, err := DetermineWinners(board, holes(
		[]string{"AH", "3S"}, // kings with ace kicker
		[]string{"QH", "JS"}, // kings with queen kicker
		[]string{"AC", "4D"}, // same as player 0: 4 does not play
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, out.Winners)
	assert.Equal(t, []int{13, 14, 8, 5}, out.Results[0].Tiebreak)
	assert.Equal(t, []int{13, 12, 11, 8}, out.Results[1].Tiebreak)
}

func TestDetermineWinnersLaterPlayerWins(t *testing.T) {
	board := MustParseCards("2H", "7H", "9H", "KC", "JD")

	out, err := DetermineWinners(board, holes(
		[]string{"KS", "KD"}, // set of kings
		[]string{"AS", "AD"}, // aces
		[]string{"3H", "4H"}, // flush
		[]string{"AH", "5H"}, // nut flush
	))
	require.NoError(t, err)

	assert.Equal(t, []int{3}, out.Winners)
	assert.Equal(t, ThreeOfAKind, out.Results[0].Category)
	assert.Equal(t, OnePair, out.Results[1].Category)
	assert.Equal(t, Flush, out.Results[2].Category)
	assert.Equal(t, Flush, out.Results[3].Category)
}

func TestDetermineWinnersSinglePlayer(t *testing.T) {
	board := MustParseCards("5C", "6D", "7H", "8S", "9D")
	out, err := DetermineWinners(board, holes([]string{"2C", "3D"}))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, out.Winners)
}

func TestDetermineWinnersResultsMatchHoldemBest(t *testing.T) {
	board := MustParseCards("TS", "JS", "QD", "3C", "3H")
	players := holes(
		[]string{"KS", "9S"},
		[]string{"3S", "2D"},
		[]string{"QS", "QC"},
		[]string{"AH", "KH"},
	)
	out, err := DetermineWinners(board, players)
	require.NoError(t, err)
	for i, hole := range players {
		expected, err := HoldemBest(board, hole)
		require.NoError(t, err)
		assert.Equal(t, expected, out.Results[i], "player %d", i)
	}
	// queens full beats trips and both straights
	assert.Equal(t, []int{2}, out.Winners)
}

func TestDetermineWinnersInvalidSize(t *testing.T) {
	board := MustParseCards("5C", "6D", "7H", "8S", "9D")

	_, err := DetermineWinners(board, nil)
	assert.ErrorIs(t, err, ErrInvalidInputSize)

	_, err = DetermineWinners(board[:4], holes([]string{"AS", "AH"}))
	assert.ErrorIs(t, err, ErrInvalidInputSize)

	_, err = DetermineWinners(board, holes([]string{"AS", "AH"}, []string{"KC"}))
	assert.ErrorIs(t, err, ErrInvalidInputSize)

	_, err = DetermineWinners(board, holes([]string{"AS", "AH", "2C"}))
	assert.ErrorIs(t, err, ErrInvalidInputSize)
}

func TestSplitPot(t *testing.T) {
	assert.Equal(t, map[int]uint{0: 100}, SplitPot(100, []int{0}))
	assert.Equal(t, map[int]uint{1: 50, 3: 50}, SplitPot(100, []int{1, 3}))
	assert.Equal(t, map[int]uint{0: 34, 1: 33, 2: 33}, SplitPot(100, []int{0, 1, 2}))
	assert.Empty(t, SplitPot(100, nil))
}

func TestDetermineWinnersConcurrent(t *testing.T) {
	board := MustParseCards("AS", "KD", "9C", "5H", "2D")
	players := holes([]string{"AH", "3S"}, []string{"QH", "JS"}, []string{"KS", "KC"})
	expected, err := DetermineWinners(board, players)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]WinnerOutcome, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := DetermineWinners(board, players)
			if err == nil {
				results[i] = out
			}
		}()
	}
	wg.Wait()
	for _, out := range results {
		assert.Equal(t, expected, out)
	}
	assert.Equal(t, []int{2}, expected.Winners)
}
