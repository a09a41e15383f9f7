package namegen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/namegram/alphabet"
	"github.com/katalvlaran/namegram/ngram"
	"github.com/katalvlaran/namegram/phoneme"
	"github.com/katalvlaran/namegram/sample"
)

// Model learns n-gram statistics over symbols and phonetic categories from
// positive and negative samples, and generates new names from them. One
// Model is one experiment: it exclusively owns its tables and RNG, and is
// not safe for concurrent use. Construct with New.
type Model struct {
	order int

	posSym *ngram.Table // symbol transitions observed in positive samples
	negSym *ngram.Table // symbol transitions observed in negative samples
	posCat *ngram.Table // category transitions observed in positive samples
	negCat *ngram.Table // category transitions observed in negative samples

	// sizes[L] counts ingested samples of length L; total counts them all.
	// Together they estimate P(a name has ended at or before a position).
	sizes []uint64
	total uint64

	posEase float64
	negEase float64
	sharpen bool
	maxLen  int
	rng     *rand.Rand
}

// New constructs an empty Model from opts (zero fields select the
// documented defaults). Fails with ngram.ErrOrderTooSmall for an order
// below 2 and ngram.ErrRowCountOverflow when 29^order cannot be addressed.
// Complexity: O(29^order) time and memory for table allocation.
func New(opts Options) (*Model, error) {
	order := opts.Order
	if order == 0 {
		order = DefaultOrder
	}

	posSym, err := ngram.New(order, alphabet.Count)
	if err != nil {
		return nil, fmt.Errorf("namegen: symbol table: %w", err)
	}
	negSym, err := ngram.New(order, alphabet.Count)
	if err != nil {
		return nil, fmt.Errorf("namegen: symbol table: %w", err)
	}
	posCat, err := ngram.New(order, phoneme.Count)
	if err != nil {
		return nil, fmt.Errorf("namegen: category table: %w", err)
	}
	negCat, err := ngram.New(order, phoneme.Count)
	if err != nil {
		return nil, fmt.Errorf("namegen: category table: %w", err)
	}

	m := &Model{
		order:   order,
		posSym:  posSym,
		negSym:  negSym,
		posCat:  posCat,
		negCat:  negCat,
		sizes:   make([]uint64, 1),
		posEase: opts.PositiveEasing,
		negEase: opts.NegativeEasing,
		sharpen: opts.Sharpen,
		maxLen:  opts.MaxLength,
		rng:     opts.Rand,
	}
	if m.posEase == 0 {
		m.posEase = DefaultEasing
	}
	if m.negEase == 0 {
		m.negEase = DefaultEasing
	}
	if m.maxLen == 0 {
		m.maxLen = DefaultMaxLength
	}
	if m.rng == nil {
		m.rng = rngFromSeed(opts.Seed)
	}
	return m, nil
}

// Order returns the context length the model conditions on.
func (m *Model) Order() int { return m.order }

// Samples returns the total number of ingested samples (both polarities).
func (m *Model) Samples() uint64 { return m.total }

// ReadPositiveSample ingests one sample the model should imitate. The text
// is read up to its first NUL rune; runes outside the alphabet are absorbed
// as the End symbol rather than rejected. Counter saturation during bulk
// training is deliberately dropped: a saturated cell already carries maximal
// evidence. Only internal consistency failures surface as errors.
// Complexity: O(len(text) × order).
func (m *Model) ReadPositiveSample(text []rune) error {
	return m.read(text, Positive)
}

// ReadNegativeSample ingests one sample the model should steer away from.
// Same contract as ReadPositiveSample.
func (m *Model) ReadNegativeSample(text []rune) error {
	return m.read(text, Negative)
}

// ReadSample ingests a padded sample record under the given polarity.
func (m *Model) ReadSample(s *sample.Sample, pol Polarity) error {
	return m.read(s.Runes(), pol)
}

// read is the shared ingestion path: encode, observe symbol n-grams with a
// trailing End observation, classify and observe category n-grams, update
// the length histogram.
func (m *Model) read(text []rune, pol Polarity) error {
	symTab, catTab := m.posSym, m.posCat
	if pol == Negative {
		symTab, catTab = m.negSym, m.negCat
	}

	// Encode up to the first empty slot. Leniency rule: anything the
	// alphabet rejects becomes End instead of failing the whole sample.
	syms := make([]alphabet.Symbol, 0, len(text))
	for _, r := range text {
		if r == 0 {
			break
		}
		s, err := alphabet.Encode(r)
		if err != nil {
			s = alphabet.End
		}
		syms = append(syms, s)
	}

	// Slide the N-symbol context over the sample, then record where it
	// ended: the final context maps to the End symbol.
	ctx := newSeededContext(m.order, alphabet.End.Index())
	for _, s := range syms {
		if err := observeLenient(symTab, ctx, s.Index()); err != nil {
			return err
		}
		rotateContext(ctx, s.Index())
	}
	if err := observeLenient(symTab, ctx, alphabet.End.Index()); err != nil {
		return err
	}

	// Category stream: the window is rebuilt from the original symbol
	// sequence at every position (phoneme.Categories), never incrementally
	// mutated, so each position sees exactly its own lookback.
	cctx := newSeededContext(m.order, phoneme.Null.Index())
	for _, c := range phoneme.Categories(syms) {
		if err := observeLenient(catTab, cctx, c.Index()); err != nil {
			return err
		}
		rotateContext(cctx, c.Index())
	}

	m.addToSizes(len(syms))
	return nil
}

// addToSizes bumps the length-histogram bucket for a sample of length n.
func (m *Model) addToSizes(n int) {
	for n >= len(m.sizes) {
		m.sizes = append(m.sizes, 0)
	}
	m.sizes[n]++
	m.total++
}

// endedMass returns the fraction of ingested samples whose length is at
// most position. With no samples at all this is 0/0; the resulting NaN is
// intentionally left to propagate into the distribution sum, where it is
// rejected as ErrDegenerateDistribution.
func (m *Model) endedMass(position int) float64 {
	var ended uint64
	for l := 0; l <= position && l < len(m.sizes); l++ {
		ended += m.sizes[l]
	}
	return float64(ended) / float64(m.total)
}

// observeLenient records one observation, dropping capacity errors (the
// orchestrator's documented policy during bulk ingestion) while surfacing
// anything else, which would indicate a programming error.
func observeLenient(t *ngram.Table, ctx []int, next int) error {
	err := t.Observe(ctx, next)
	if err == nil ||
		errors.Is(err, ngram.ErrCounterSaturated) ||
		errors.Is(err, ngram.ErrSumOverflow) {
		return nil
	}
	return err
}

// newSeededContext allocates an order-long context filled with the given
// pad index (End for symbols, Null for categories).
func newSeededContext(order, pad int) []int {
	ctx := make([]int, order)
	for i := range ctx {
		ctx[i] = pad
	}
	return ctx
}

// rotateContext shifts the context one step left and appends next, keeping
// the most recent element last.
func rotateContext(ctx []int, next int) {
	copy(ctx, ctx[1:])
	ctx[len(ctx)-1] = next
}
