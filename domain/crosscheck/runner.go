// Package crosscheck verifies the brute-force hand evaluator against independent
// table-driven evaluators on random deals.
package crosscheck

import (
	"context"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/showdown/domain/poker"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Mismatch is a deal on which the brute-force evaluator and a reference disagree.
type Mismatch struct {
	Sample    int
	Reference string
	A, B      [7]poker.Card
	Got, Want int // comparison sign, or category strength for category checks
	Detail    string
	// the reference's own wording of A and B, when it has one
	ReferenceA, ReferenceB string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("sample %d (%s): %s: got %d, want %d, %v vs %v",
		m.Sample, m.Reference, m.Detail, m.Got, m.Want, m.A, m.B)
}

// Report sums up a crosscheck run.
type Report struct {
	Samples    int
	Mismatches []Mismatch
}

// OK reports whether every sample agreed with every reference.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Runner deals random showdowns and compares the evaluators on them.
type Runner struct {
	samples    int
	seed       uint64
	logger     *slog.Logger
	references []Reference
}

type option func(Runner) Runner

// New builds a Runner checking against every bundled reference evaluator.
func New(opts ...option) *Runner {
	r := Runner{
		samples:    1000,
		seed:       1,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		references: []Reference{paulHankin{}, cheHsunLiu{}},
	}
	for _, opt := range opts {
		r = opt(r)
	}
	return &r
}

func WithSamples(samples int) option {
	return func(r Runner) Runner {
		r.samples = samples
		return r
	}
}

func WithSeed(seed uint64) option {
	return func(r Runner) Runner {
		r.seed = seed
		return r
	}
}

func WithLogger(logger *slog.Logger) option {
	return func(r Runner) Runner {
		r.logger = logger
		return r
	}
}

// WithReferences replaces the bundled reference evaluators.
func WithReferences(refs ...Reference) option {
	return func(r Runner) Runner {
		r.references = refs
		return r
	}
}

// Run deals the configured number of hand pairs and compares the results. It
// stops early, returning the partial report, when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	stream := newStream(r.seed)
	deck := fullDeck()
	report := Report{}

	for i := 0; i < r.samples; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("crosscheck interrupted after %d samples: %w", report.Samples, err)
		}
		a, b := deal(stream, deck)
		mm, err := r.check(i, a, b)
		if err != nil {
			return report, err
		}
		for _, m := range mm {
			attrs := []any{"sample", m.Sample, "reference", m.Reference, "detail", m.Detail,
				"a", fmt.Sprint(m.A), "b", fmt.Sprint(m.B)}
			if m.ReferenceA != "" || m.ReferenceB != "" {
				attrs = append(attrs, "reference_a", m.ReferenceA, "reference_b", m.ReferenceB)
			}
			r.logger.Warn("evaluator mismatch", attrs...)
		}
		report.Mismatches = append(report.Mismatches, mm...)
		report.Samples++
		if report.Samples%1000 == 0 {
			r.logger.Debug("crosscheck progress", "samples", report.Samples, "mismatches", len(report.Mismatches))
		}
	}
	r.logger.Info("crosscheck done", "samples", report.Samples, "mismatches", len(report.Mismatches))
	return report, nil
}

func (r *Runner) check(sample int, a, b [7]poker.Card) ([]Mismatch, error) {
	ra, err := poker.BestOf7(a[:])
	if err != nil {
		return nil, err
	}
	rb, err := poker.BestOf7(b[:])
	if err != nil {
		return nil, err
	}
	got := ra.Compare(rb)

	var out []Mismatch
	for _, ref := range r.references {
		start := len(out)
		want, err := ref.Compare(a, b)
		if err != nil {
			return nil, fmt.Errorf("reference %s: %w", ref.Name(), err)
		}
		if got != want {
			out = append(out, Mismatch{Sample: sample, Reference: ref.Name(), A: a, B: b, Got: got, Want: want, Detail: "comparison"})
		}
		if cat, ok := ref.(Categorizer); ok {
			for _, hand := range []struct {
				cards [7]poker.Card
				res   poker.HandResult
			}{{a, ra}, {b, rb}} {
				want, err := cat.Category(hand.cards)
				if err != nil {
					return nil, fmt.Errorf("reference %s: %w", ref.Name(), err)
				}
				if want != hand.res.Category {
					out = append(out, Mismatch{
						Sample: sample, Reference: ref.Name(), A: a, B: b,
						Got: hand.res.Category.Strength(), Want: want.Strength(),
						Detail: "category of " + fmt.Sprint(hand.cards),
					})
				}
			}
		}
		if err := describe(ref, out[start:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// describe attaches the reference's wording of both hands to the mismatches it
// reported on one deal.
func describe(ref Reference, mm []Mismatch) error {
	d, ok := ref.(Describer)
	if !ok || len(mm) == 0 {
		return nil
	}
	da, err := d.Describe(mm[0].A)
	if err != nil {
		return fmt.Errorf("reference %s: %w", ref.Name(), err)
	}
	db, err := d.Describe(mm[0].B)
	if err != nil {
		return fmt.Errorf("reference %s: %w", ref.Name(), err)
	}
	for i := range mm {
		mm[i].ReferenceA, mm[i].ReferenceB = da, db
	}
	return nil
}

// newStream returns a deterministic key stream: the same seed always deals the
// same hands.
func newStream(seed uint64) cipher.Stream {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seed)
	return suite.XOF(b[:])
}

func fullDeck() []poker.Card {
	deck := make([]poker.Card, 0, 52)
	for _, suit := range []byte{poker.Spade, poker.Heart, poker.Diamond, poker.Club} {
		for rank := uint8(2); rank <= poker.Ace; rank++ {
			c, err := poker.NewCard(rank, suit)
			if err != nil {
				panic(err)
			}
			deck = append(deck, c)
		}
	}
	return deck
}

// deal draws fourteen distinct cards and splits them into two seven-card hands.
// The deck slice is only read.
func deal(stream cipher.Stream, deck []poker.Card) (a, b [7]poker.Card) {
	n := len(deck)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// first fourteen steps of a Fisher-Yates shuffle
	for i := 0; i < 14; i++ {
		j := i + int(random.Int(big.NewInt(int64(n-i)), stream).Int64())
		idx[i], idx[j] = idx[j], idx[i]
	}
	for i := 0; i < 7; i++ {
		a[i] = deck[idx[i]]
		b[i] = deck[idx[7+i]]
	}
	return a, b
}
