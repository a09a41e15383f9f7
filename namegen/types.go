// Package namegen defines the Model configuration surface and sentinel
// errors for distribution and sampling.
package namegen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/namegram/alphabet"
	"github.com/katalvlaran/namegram/phoneme"
)

// Sentinel errors for model operations.
var (
	// ErrDegenerateDistribution indicates the combined probabilities did not
	// sum to a finite positive value, typically because no positive sample
	// was ingested yet. Callers must treat this as a reportable error.
	ErrDegenerateDistribution = errors.New("namegen: probability distribution is degenerate")

	// ErrSamplingFailed indicates the weighted walk exhausted the
	// probability array without covering the drawn value. This is an
	// internal-consistency violation, not a normal outcome.
	ErrSamplingFailed = errors.New("namegen: weighted sampling failed to pick a symbol")
)

// Defaults applied by New for zero-valued Options fields.
const (
	// DefaultOrder is the context length used when Options.Order is zero.
	DefaultOrder = 3
	// DefaultEasing is the additive (Rule-of-Succession) smoothing scale
	// applied to both positive and negative evidence when unset.
	DefaultEasing = 1.0
	// DefaultMaxLength bounds generated names when Options.MaxLength is zero.
	DefaultMaxLength = 16
)

// Polarity labels a training sample as evidence for or against name-ness.
type Polarity uint8

const (
	// Positive marks a sample the model should imitate.
	Positive Polarity = iota
	// Negative marks a sample the model should steer away from.
	Negative
)

// Options configures a Model. The zero value of every field selects a
// documented default, so Options{} and DefaultOptions() are equivalent.
type Options struct {
	// Order is the number of preceding symbols (and categories) each
	// prediction conditions on. Must be at least 2 once defaulted; the
	// underlying 29^Order row count must stay addressable. Default: 3.
	Order int

	// PositiveEasing scales the additive smoothing of positive evidence.
	// Zero selects DefaultEasing (1.0).
	PositiveEasing float64

	// NegativeEasing scales the additive smoothing of negative evidence.
	// Zero selects DefaultEasing (1.0).
	NegativeEasing float64

	// Sharpen squares every combined probability before sampling, biasing
	// generation toward higher-confidence, more repeat-like choices.
	// Default: off (maximum novelty).
	Sharpen bool

	// MaxLength bounds the number of characters Generate may emit.
	// Zero selects DefaultMaxLength (16).
	MaxLength int

	// Seed initializes the model's deterministic random source. Zero
	// selects a fixed default seed, so results are reproducible by default.
	Seed int64

	// Rand, when non-nil, overrides Seed entirely and is used as the
	// model's random source. Not goroutine-safe; do not share it.
	Rand *rand.Rand
}

// DefaultOptions returns the documented defaults: Order 3, easing 1.0 on
// both polarities, sharpening off, MaxLength 16, fixed deterministic seed.
func DefaultOptions() Options {
	return Options{
		Order:          DefaultOrder,
		PositiveEasing: DefaultEasing,
		NegativeEasing: DefaultEasing,
		MaxLength:      DefaultMaxLength,
	}
}

// Dist is one combined sampling distribution over all alphabet symbols.
type Dist struct {
	// P holds one probability per symbol, indexed by Symbol.Index().
	// Entries are unnormalized; divide by Sum when a true probability is
	// needed.
	P [alphabet.Count]float64

	// Sum is the total of P, guaranteed finite and positive.
	Sum float64

	// Window is the diagnostic 4-symbol lookback used to categorize
	// candidates: the last three context symbols, oldest first, with the
	// final slot reserved for the candidate under test.
	Window phoneme.Window
}
