package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/showdown/domain/poker"
)

func handPanel(title string, res poker.HandResult) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprintf(
		"%s\nCategory: %s\nTiebreak: %s\n%s",
		pterm.LightCyan(poker.Describe(res)), res.Category, joinInts(res.Tiebreak), prettyCards(res.Chosen[:]))
}

func boardInfo(board []poker.Card) string {
	return pterm.BgGreen.Sprint("\n Board: " + prettyCards(board) + " \n")
}

func resultsTable(holes [][]poker.Card, out poker.WinnerOutcome) (string, error) {
	winners := map[int]bool{}
	for _, w := range out.Winners {
		winners[w] = true
	}
	data := pterm.TableData{{"Player", "Hole", "Hand", "Best five"}}
	for i, res := range out.Results {
		name := "Player " + strconv.Itoa(i)
		if winners[i] {
			name = pterm.LightGreen(name + " *")
		}
		data = append(data, []string{name, prettyCards(holes[i]), poker.Describe(res), prettyCards(res.Chosen[:])})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func winnerPanel(out poker.WinnerOutcome, pot uint) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	if pot > 0 {
		shares := poker.SplitPot(pot, out.Winners)
		for _, w := range out.Winners {
			info += pterm.Sprintfln("Player %d wins %d with %s", w, shares[w], poker.Describe(out.Results[w]))
		}
	} else {
		for _, w := range out.Winners {
			info += pterm.Sprintfln("Player %d wins with %s", w, poker.Describe(out.Results[w]))
		}
	}
	title := "|SHOWDOWN|"
	if out.IsSplit() {
		title = "|SPLIT POT|"
	}
	return pbox.WithTitle(pterm.LightGreen(title)).WithTitleTopCenter().Sprint(info)
}

func prettyCards(cards []poker.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Pretty()
	}
	return strings.Join(s, " - ")
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ", ")
}
