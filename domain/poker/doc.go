// Package poker classifies poker hands and settles Texas Hold'em showdowns.
//
// # Core Types
//
// Card: an immutable playing card. Cards compare by rank only (CompareCards) while
// equality (==) also looks at the suit.
//
// HandCategory: the nine hand classes from HighCard to StraightFlush, declared in
// strength order.
//
// HandResult: a classified five-card hand with its tiebreak key and the chosen
// cards in significance order.
//
// WinnerOutcome: every player's best hand on a board plus the winning indices.
//
// # Evaluation
//
// Classify5 classifies five cards. BestOf7 tries all 21 five-card subsets of seven
// cards, and HoldemBest joins a board with a hole pair before doing so.
// DetermineWinners runs HoldemBest for every player and reports ties as a split.
//
// All functions are pure and safe for concurrent use. Wrong card counts fail with
// ErrInvalidInputSize and malformed tokens with ErrInvalidCardFormat.
package poker
