package namegen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/namegram/alphabet"
	"github.com/katalvlaran/namegram/phoneme"
)

// Distribution combines the model's four tables and length histogram into
// one sampling distribution for the next symbol.
//
// Pipeline, per candidate symbol:
//  1. Positive likelihood with additive smoothing,
//     (pos+α)/(posSum+α·V), multiplied by the inverse-negative-evidence
//     factor (negSum−neg+β)/(negSum+β·V) whenever negative evidence exists.
//  2. The candidate is substituted into the diagnostic 4-window and
//     classified; its probability is multiplied by the analogous combined
//     probability of its category.
//  3. Non-End candidates scale by P(the name continues past position);
//     the End candidate scales by P(it has ended at or before position),
//     both read from the length histogram.
//  4. With Options.Sharpen, every probability is squared.
//
// symCtx and catCtx must carry at least Order elements (only the trailing
// Order are used); position is the number of characters emitted so far.
// Fails with ngram.ErrContextTooShort on short contexts and
// ErrDegenerateDistribution when the final sum is not finite and positive.
// Complexity: O(V × Order), V = 29.
func (m *Model) Distribution(symCtx []alphabet.Symbol, catCtx []phoneme.Category, position int) (Dist, error) {
	var d Dist

	sctx := make([]int, len(symCtx))
	for i, s := range symCtx {
		sctx[i] = s.Index()
	}
	cctx := make([]int, len(catCtx))
	for i, c := range catCtx {
		cctx[i] = c.Index()
	}

	posRow, posSum, err := m.posSym.Row(sctx)
	if err != nil {
		return d, err
	}
	negRow, negSum, err := m.negSym.Row(sctx)
	if err != nil {
		return d, err
	}

	// Diagnostic window: the last three context symbols, oldest first, with
	// slot 3 reserved for the candidate under test.
	d.Window = phoneme.Window{alphabet.End, alphabet.End, alphabet.End, alphabet.End}
	for i := 0; i < 3; i++ {
		if idx := len(symCtx) - 1 - i; idx >= 0 {
			d.Window[2-i] = symCtx[idx]
		}
	}

	// Symbol-level combination, bucketing candidates by their category.
	const v = float64(alphabet.Count)
	var buckets [phoneme.Count][]int
	for i := 0; i < alphabet.Count; i++ {
		p := (float64(posRow[i]) + m.posEase) / (float64(posSum) + m.posEase*v)
		if negSum > 0 {
			inv := float64(negSum) - float64(negRow[i])
			p *= (inv + m.negEase) / (float64(negSum) + m.negEase*v)
		}
		d.P[i] = p

		d.Window[3] = alphabet.All[i]
		cat := phoneme.Classify(d.Window)
		buckets[cat.Index()] = append(buckets[cat.Index()], i)
	}

	// Category-level combination, applied to every candidate in the bucket.
	posCatRow, posCatSum, err := m.posCat.Row(cctx)
	if err != nil {
		return Dist{}, err
	}
	negCatRow, negCatSum, err := m.negCat.Row(cctx)
	if err != nil {
		return Dist{}, err
	}
	const c = float64(phoneme.Count)
	for ci := 0; ci < phoneme.Count; ci++ {
		tp := (float64(posCatRow[ci]) + m.posEase) / (float64(posCatSum) + m.posEase*c)
		if negCatSum > 0 {
			inv := float64(negCatSum) - float64(negCatRow[ci])
			tp *= (inv + m.negEase) / (float64(negCatSum) + m.negEase*c)
		}
		for _, i := range buckets[ci] {
			d.P[i] *= tp
		}
	}

	// Length-aware termination: an untrained histogram yields NaN here,
	// which the finite-positive check below converts into a typed error.
	endMass := m.endedMass(position)
	continues := 1 - endMass
	endIdx := alphabet.End.Index()
	for i := range d.P {
		if i == endIdx {
			d.P[i] *= endMass
		} else {
			d.P[i] *= continues
		}
	}

	if m.sharpen {
		for i := range d.P {
			d.P[i] *= d.P[i]
		}
	}

	sum := 0.0
	for _, p := range d.P {
		sum += p
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) || sum <= 0 {
		return Dist{}, ErrDegenerateDistribution
	}
	d.Sum = sum
	return d, nil
}

// SampleNext draws one symbol from the combined distribution: a uniform
// value in [0, Sum) walks the probability array with a running subtraction.
// Returns the drawn symbol together with its phonetic category in the
// current context. Distribution errors pass through; ErrSamplingFailed
// reports a walk that exhausted the array, which can only arise from a
// floating-point rounding inconsistency.
// Complexity: O(V × Order).
func (m *Model) SampleNext(symCtx []alphabet.Symbol, catCtx []phoneme.Category, position int) (alphabet.Symbol, phoneme.Category, error) {
	d, err := m.Distribution(symCtx, catCtx, position)
	if err != nil {
		return alphabet.End, phoneme.Null, err
	}

	draw := m.rng.Float64() * d.Sum
	residue := draw
	for i, p := range d.P {
		if p >= residue {
			sym := alphabet.All[i]
			d.Window[3] = sym
			return sym, phoneme.Classify(d.Window), nil
		}
		residue -= p
	}
	return alphabet.End, phoneme.Null,
		fmt.Errorf("%w: draw %g not covered by sum %g", ErrSamplingFailed, draw, d.Sum)
}

// Generate builds one name, bounded by the configured MaxLength.
func (m *Model) Generate() (string, error) {
	return m.GenerateN(m.maxLen)
}

// GenerateN builds one name of at most maxLength characters: both context
// windows start fully padded (End symbols, Null categories), each drawn
// symbol is appended and rotated in, and the loop stops at the first End
// draw or at the length bound, whichever comes first. The End sentinel is
// never part of the returned string. A non-positive maxLength yields "".
// Complexity: O(maxLength × V × Order).
func (m *Model) GenerateN(maxLength int) (string, error) {
	if maxLength <= 0 {
		return "", nil
	}
	symCtx := make([]alphabet.Symbol, m.order)
	for i := range symCtx {
		symCtx[i] = alphabet.End
	}
	catCtx := make([]phoneme.Category, m.order)
	for i := range catCtx {
		catCtx[i] = phoneme.Null
	}

	out := make([]rune, 0, maxLength)
	for len(out) < maxLength {
		sym, cat, err := m.SampleNext(symCtx, catCtx, len(out))
		if err != nil {
			return "", err
		}
		if sym == alphabet.End {
			break
		}
		out = append(out, alphabet.Decode(sym))

		copy(symCtx, symCtx[1:])
		symCtx[len(symCtx)-1] = sym
		copy(catCtx, catCtx[1:])
		catCtx[len(catCtx)-1] = cat
	}
	return string(out), nil
}
