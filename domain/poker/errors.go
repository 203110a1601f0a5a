package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCardFormat is returned for tokens that are empty, too short, or carry
	// an unknown rank or suit.
	ErrInvalidCardFormat = errors.New("invalid card format")
	// ErrInvalidInputSize is returned when an evaluator receives the wrong number of cards.
	ErrInvalidInputSize = errors.New("invalid input size")
)

func checkSize(what string, cards []Card, want int) error {
	if len(cards) != want {
		return fmt.Errorf("%w: %s expects exactly %d cards, got %d", ErrInvalidInputSize, what, want, len(cards))
	}
	return nil
}
