// Package namegen_test verifies model construction, ingestion, and the
// combined distribution contract.
package namegen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/namegram/alphabet"
	"github.com/katalvlaran/namegram/namegen"
	"github.com/katalvlaran/namegram/ngram"
	"github.com/katalvlaran/namegram/phoneme"
	"github.com/katalvlaran/namegram/sample"
	"github.com/stretchr/testify/require"
)

// symSeq encodes a lowercase string into symbols.
func symSeq(t *testing.T, s string) []alphabet.Symbol {
	t.Helper()
	out := make([]alphabet.Symbol, 0, len(s))
	for _, r := range s {
		sym, err := alphabet.Encode(r)
		require.NoError(t, err)
		out = append(out, sym)
	}
	return out
}

// contexts returns the rolling symbol and category contexts a generation
// loop would hold after emitting prefix: both windows seeded with End/Null
// padding and rotated once per emitted symbol.
func contexts(t *testing.T, order int, prefix string) ([]alphabet.Symbol, []phoneme.Category) {
	t.Helper()
	symCtx := make([]alphabet.Symbol, order)
	for i := range symCtx {
		symCtx[i] = alphabet.End
	}
	catCtx := make([]phoneme.Category, order)
	for i := range catCtx {
		catCtx[i] = phoneme.Null
	}
	seq := symSeq(t, prefix)
	for i, cat := range phoneme.Categories(seq) {
		copy(symCtx, symCtx[1:])
		symCtx[order-1] = seq[i]
		copy(catCtx, catCtx[1:])
		catCtx[order-1] = cat
	}
	return symCtx, catCtx
}

// trainedOnAnn builds an order-2 model over a single positive sample "ann".
func trainedOnAnn(t *testing.T) *namegen.Model {
	t.Helper()
	m, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	require.NoError(t, m.ReadPositiveSample([]rune("ann")))
	return m
}

// TestNew_Validation covers constructor-time hard failures and defaults.
func TestNew_Validation(t *testing.T) {
	_, err := namegen.New(namegen.Options{Order: 1})
	require.ErrorIs(t, err, ngram.ErrOrderTooSmall)

	_, err = namegen.New(namegen.Options{Order: 14})
	require.ErrorIs(t, err, ngram.ErrRowCountOverflow)

	m, err := namegen.New(namegen.Options{})
	require.NoError(t, err)
	require.Equal(t, namegen.DefaultOrder, m.Order())
	require.Zero(t, m.Samples())
}

// TestDistribution_Untrained demands a typed error, not silent NaN, when no
// sample was ever ingested.
func TestDistribution_Untrained(t *testing.T) {
	m, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)

	symCtx, catCtx := contexts(t, 2, "")
	_, err = m.Distribution(symCtx, catCtx, 0)
	require.ErrorIs(t, err, namegen.ErrDegenerateDistribution)
}

// TestDistribution_ContextTooShort surfaces the caller bug unchanged.
func TestDistribution_ContextTooShort(t *testing.T) {
	m := trainedOnAnn(t)
	_, err := m.Distribution([]alphabet.Symbol{alphabet.A}, []phoneme.Category{phoneme.VowelRoot, phoneme.Null}, 0)
	require.ErrorIs(t, err, ngram.ErrContextTooShort)
}

// TestDistribution_Trained checks the basic sanity of a trained
// distribution: finite positive sum, non-negative entries, and longer
// contexts using only their trailing order elements.
func TestDistribution_Trained(t *testing.T) {
	m := trainedOnAnn(t)

	symCtx, catCtx := contexts(t, 2, "")
	d, err := m.Distribution(symCtx, catCtx, 0)
	require.NoError(t, err)
	require.Greater(t, d.Sum, 0.0)
	for i, p := range d.P {
		require.False(t, math.IsNaN(p) || math.IsInf(p, 0), "P[%d]", i)
		require.GreaterOrEqual(t, p, 0.0, "P[%d]", i)
	}

	// A longer context must agree with its trailing window.
	long := append([]alphabet.Symbol{alphabet.Z, alphabet.Z}, symCtx...)
	longCat := append([]phoneme.Category{phoneme.Fricative, phoneme.Fricative}, catCtx...)
	d2, err := m.Distribution(long, longCat, 0)
	require.NoError(t, err)
	require.Equal(t, d.P, d2.P)
}

// TestDistribution_AnnTermination pins the end-to-end termination
// properties of the single-sample "ann" model (order 2):
//   - the End symbol has zero probability at the empty seed context,
//   - every step of "ann" has positive probability,
//   - once the context is "nn" at position 3, End has positive probability
//     and, because every training name ended there, all other symbols have
//     zero probability.
func TestDistribution_AnnTermination(t *testing.T) {
	m := trainedOnAnn(t)
	endIdx := alphabet.End.Index()

	steps := []struct {
		prefix string
		next   alphabet.Symbol
	}{
		{"", alphabet.A},
		{"a", alphabet.N},
		{"an", alphabet.N},
	}
	for _, st := range steps {
		symCtx, catCtx := contexts(t, 2, st.prefix)
		d, err := m.Distribution(symCtx, catCtx, len(st.prefix))
		require.NoError(t, err)
		require.Greater(t, d.P[st.next.Index()], 0.0, "P(%v | %q)", st.next, st.prefix)
		require.Zero(t, d.P[endIdx], "no name may end at position %d", len(st.prefix))
	}

	symCtx, catCtx := contexts(t, 2, "ann")
	d, err := m.Distribution(symCtx, catCtx, 3)
	require.NoError(t, err)
	require.Greater(t, d.P[endIdx], 0.0, "terminator must be reachable after nn")
	for i, p := range d.P {
		if i == endIdx {
			continue
		}
		require.Zero(t, p, "P[%d]: every observed name ended at length 3", i)
	}
}

// TestDistribution_NegativeEvidence checks that ingesting the same text as
// a negative sample pushes its continuation down relative to a
// positives-only model.
func TestDistribution_NegativeEvidence(t *testing.T) {
	pos, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	require.NoError(t, pos.ReadPositiveSample([]rune("ab")))

	mixed, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	require.NoError(t, mixed.ReadPositiveSample([]rune("ab")))
	require.NoError(t, mixed.ReadNegativeSample([]rune("ab")))

	symCtx, catCtx := contexts(t, 2, "a")
	dPos, err := pos.Distribution(symCtx, catCtx, 1)
	require.NoError(t, err)
	dMixed, err := mixed.Distribution(symCtx, catCtx, 1)
	require.NoError(t, err)

	b := alphabet.B.Index()
	require.Less(t,
		dMixed.P[b]/dMixed.Sum,
		dPos.P[b]/dPos.Sum,
		"negative evidence must down-weight the observed continuation")
}

// TestDistribution_Sharpen checks the squared relationship between a
// sharpened and a plain model over identical training data.
func TestDistribution_Sharpen(t *testing.T) {
	plain, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	sharp, err := namegen.New(namegen.Options{Order: 2, Sharpen: true})
	require.NoError(t, err)
	for _, n := range []string{"ann", "anna", "anne"} {
		require.NoError(t, plain.ReadPositiveSample([]rune(n)))
		require.NoError(t, sharp.ReadPositiveSample([]rune(n)))
	}

	symCtx, catCtx := contexts(t, 2, "an")
	dPlain, err := plain.Distribution(symCtx, catCtx, 2)
	require.NoError(t, err)
	dSharp, err := sharp.Distribution(symCtx, catCtx, 2)
	require.NoError(t, err)

	for i := range dPlain.P {
		require.InDelta(t, dPlain.P[i]*dPlain.P[i], dSharp.P[i], 1e-12, "P[%d]", i)
	}
}

// TestIngest_Leniency checks out-of-alphabet runes are absorbed, not fatal.
func TestIngest_Leniency(t *testing.T) {
	m, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	require.NoError(t, m.ReadPositiveSample([]rune("a7n!")))
	require.Equal(t, uint64(1), m.Samples())

	// The sample still made generation legal.
	symCtx, catCtx := contexts(t, 2, "")
	_, err = m.Distribution(symCtx, catCtx, 0)
	require.NoError(t, err)
}

// TestIngest_StopsAtFirstEmptySlot checks padded buffers terminate the
// sample at the first NUL: the padding never trains the tables.
func TestIngest_StopsAtFirstEmptySlot(t *testing.T) {
	a, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	b, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)

	require.NoError(t, a.ReadPositiveSample([]rune("ann")))
	require.NoError(t, b.ReadPositiveSample([]rune{'a', 'n', 'n', 0, 0, 'x', 'y', 'z'}))

	symCtx, catCtx := contexts(t, 2, "ann")
	dA, err := a.Distribution(symCtx, catCtx, 3)
	require.NoError(t, err)
	dB, err := b.Distribution(symCtx, catCtx, 3)
	require.NoError(t, err)
	require.Equal(t, dA.P, dB.P)
}

// TestReadSample_Records checks the sample.Sample ingestion path counts
// both polarities.
func TestReadSample_Records(t *testing.T) {
	m, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)

	batch, err := sample.Batch([]string{"Ann", "Anna"}, 16, sample.PadLeft, sample.Labels{MajorCulture: "test"})
	require.NoError(t, err)
	for _, s := range batch {
		require.NoError(t, m.ReadSample(s, namegen.Positive))
	}
	neg, err := sample.New("zzzz", 16, sample.PadLeft, sample.Labels{})
	require.NoError(t, err)
	require.NoError(t, m.ReadSample(neg, namegen.Negative))

	require.Equal(t, uint64(3), m.Samples())
}

// TestIngest_SaturationAbsorbed drives one transition past the 8-bit cap
// and expects ingestion to keep succeeding (the documented drop policy).
func TestIngest_SaturationAbsorbed(t *testing.T) {
	m, err := namegen.New(namegen.Options{Order: 2})
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		require.NoError(t, m.ReadPositiveSample([]rune("ann")))
	}
	require.Equal(t, uint64(300), m.Samples())

	symCtx, catCtx := contexts(t, 2, "an")
	d, err := m.Distribution(symCtx, catCtx, 2)
	require.NoError(t, err)
	require.Greater(t, d.Sum, 0.0)
}
