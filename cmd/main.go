package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/showdown/domain/crosscheck"
	"github.com/luca-patrignani/showdown/domain/poker"
)

const usage = `usage: showdown [-v] <command> [arguments]

commands:
  eval CARD...                          classify 5 cards or pick the best 5 of 7
  holdem -board CARDS -hole CARDS       best Hold'em hand of one player
  winners -board CARDS [-pot N] HOLE... showdown between players, one HOLE per player
  selfcheck [-n SAMPLES] [-seed SEED]   compare the evaluator against reference evaluators

cards are tokens such as AS, 10h or td separated by spaces or commas
`

var errUsage = errors.New("bad usage")

func main() {
	global := flag.NewFlagSet("showdown", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	verbose := global.Bool("v", false, "debug logging")
	if err := global.Parse(os.Args[1:]); err != nil {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	level := pterm.LogLevelInfo
	if *verbose {
		level = pterm.LogLevelDebug
	}
	// Create a new slog logger backed by the PTerm logger
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, global.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, args := args[0], args[1:]
	logger.Debug("running command", "command", cmd, "args", strings.Join(args, " "))

	switch cmd {
	case "eval":
		return runEval(args)
	case "holdem":
		return runHoldem(args)
	case "winners":
		return runWinners(args)
	case "selfcheck":
		return runSelfcheck(ctx, logger, args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runEval(args []string) error {
	cards, err := parseCardList(strings.Join(args, " "))
	if err != nil {
		return err
	}
	var res poker.HandResult
	if len(cards) == 7 {
		res, err = poker.BestOf7(cards)
	} else {
		res, err = poker.Classify5(cards)
	}
	if err != nil {
		return err
	}
	pterm.Println(handPanel("|HAND|", res))
	return nil
}

func runHoldem(args []string) error {
	fs := flag.NewFlagSet("holdem", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	boardFlag := fs.String("board", "", "five board cards")
	holeFlag := fs.String("hole", "", "two hole cards")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	board, err := parseCardList(*boardFlag)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	hole, err := parseCardList(*holeFlag)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	res, err := poker.HoldemBest(board, hole)
	if err != nil {
		return err
	}
	pterm.Println(boardInfo(board))
	pterm.Println(handPanel("|BEST HAND|", res))
	return nil
}

func runWinners(args []string) error {
	fs := flag.NewFlagSet("winners", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	boardFlag := fs.String("board", "", "five board cards")
	pot := fs.Uint("pot", 0, "pot to divide between the winners")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	board, err := parseCardList(*boardFlag)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	holes, err := parseHoles(fs.Args())
	if err != nil {
		return err
	}
	out, err := poker.DetermineWinners(board, holes)
	if err != nil {
		return err
	}

	pterm.Println(boardInfo(board))
	table, err := resultsTable(holes, out)
	if err != nil {
		return err
	}
	pterm.Println(table)
	pterm.Println(winnerPanel(out, *pot))
	return nil
}

func runSelfcheck(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("selfcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	samples := fs.Int("n", 10000, "number of random hand pairs")
	seed := fs.Uint64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("howdown", pterm.FgDarkGray.ToStyle()),
	).Render()

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Comparing %d random showdowns with the reference evaluators ...", *samples))
	report, err := crosscheck.New(
		crosscheck.WithSamples(*samples),
		crosscheck.WithSeed(*seed),
		crosscheck.WithLogger(logger),
	).Run(ctx)
	if err != nil {
		spinner.Fail()
		return err
	}
	if !report.OK() {
		spinner.Fail()
		return fmt.Errorf("%d mismatches in %d samples, first: %s", len(report.Mismatches), report.Samples, report.Mismatches[0])
	}
	spinner.Success()
	pterm.Success.Printfln("All %d samples agree", report.Samples)
	return nil
}

// parseCardList splits a list such as "AS KD, 10h" into cards.
func parseCardList(s string) ([]poker.Card, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return poker.ParseCards(tokens...)
}

func parseHoles(args []string) ([][]poker.Card, error) {
	holes := make([][]poker.Card, 0, len(args))
	for i, a := range args {
		hole, err := parseCardList(a)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		holes = append(holes, hole)
	}
	return holes, nil
}
