package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/showdown/domain/poker"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	pterm.DisableColor()
	m.Run()
}

func TestParseCardList(t *testing.T) {
	cards, err := parseCardList(" AS,kd 10h\tTC ")
	if err != nil {
		t.Fatal(err)
	}
	expected := poker.MustParseCards("AS", "KD", "TH", "TC")
	if len(cards) != len(expected) {
		t.Fatalf("expected %d cards, got %d", len(expected), len(cards))
	}
	for i := range expected {
		if cards[i] != expected[i] {
			t.Fatalf("card %d: expected %v, got %v", i, expected[i], cards[i])
		}
	}
}

func TestParseHolesNamesPlayer(t *testing.T) {
	_, err := parseHoles([]string{"AS AH", "KC XX"})
	if !errors.Is(err, poker.ErrInvalidCardFormat) {
		t.Fatalf("expected ErrInvalidCardFormat, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "player 1:") {
		t.Fatalf("expected error to name player 1, got %q", err.Error())
	}
}

func TestRunCommands(t *testing.T) {
	ctx := context.Background()
	ok := [][]string{
		{"eval", "AS", "2D", "3C", "4H", "5S"},
		{"eval", "AS AH KD 9C 5H 2D 3S"},
		{"holdem", "-board", "5C 6D 7H 8S 9D", "-hole", "AS AH"},
		{"winners", "-board", "AS KD 9C 5H 2D", "-pot", "101", "AH 3S", "QH JS"},
		{"winners", "-board", "5C,6D,7H,8S,9D", "AS,AH", "KC,QD"},
		{"selfcheck", "-n", "50", "-seed", "3"},
	}
	for _, args := range ok {
		if err := run(ctx, quietLogger(), args); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		args     []string
		expected error
	}{
		{nil, errUsage},
		{[]string{"deal"}, errUsage},
		{[]string{"holdem", "-nope"}, errUsage},
		{[]string{"eval", "AS", "KD", "QC", "JH"}, poker.ErrInvalidInputSize},
		{[]string{"eval", "AS", "KD", "QC", "JH", "1S"}, poker.ErrInvalidCardFormat},
		{[]string{"holdem", "-board", "5C 6D 7H 8S", "-hole", "AS AH"}, poker.ErrInvalidInputSize},
		{[]string{"winners", "-board", "5C 6D 7H 8S 9D"}, poker.ErrInvalidInputSize},
		{[]string{"winners", "-board", "5C 6D 7H 8S 9D", "AS"}, poker.ErrInvalidInputSize},
	}
	for _, tt := range tests {
		err := run(ctx, quietLogger(), tt.args)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%v: expected %v, got %v", tt.args, tt.expected, err)
		}
	}
}

func TestWinnerPanelShowsShares(t *testing.T) {
	board := poker.MustParseCards("5C", "6D", "7H", "8S", "9D")
	out, err := poker.DetermineWinners(board, [][]poker.Card{
		poker.MustParseCards("AS", "AH"),
		poker.MustParseCards("KC", "QD"),
	})
	if err != nil {
		t.Fatal(err)
	}
	panel := winnerPanel(out, 101)
	if !strings.Contains(panel, "SPLIT POT") {
		t.Errorf("expected split pot title in %q", panel)
	}
	if !strings.Contains(panel, "Player 0 wins 51") || !strings.Contains(panel, "Player 1 wins 50") {
		t.Errorf("unexpected shares in %q", panel)
	}
}
