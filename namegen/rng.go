// Package namegen - deterministic RNG policy.
//
// Goals:
//   - Determinism: same seed, identical generated names across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Injection: callers may hand the Model their own *rand.Rand for full
//     control (Options.Rand), or just a seed (Options.Seed).
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; a Model owns its RNG
// exclusively and must not be shared across goroutines.
package namegen

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 selects defaultRNGSeed; any other seed is used verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
