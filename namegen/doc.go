// Package namegen orchestrates the full statistical name model: it learns
// character-level and phonetic-category-level n-gram statistics from
// positive and negative training samples, combines them into a single
// smoothed sampling distribution, and drives the generation loop.
//
// What:
//
//   - Model owns four ngram.Table instances (positive/negative × symbol/
//     category) plus a length histogram for termination statistics.
//   - ReadPositiveSample / ReadNegativeSample ingest one sample each:
//     unknown runes are absorbed as the End symbol, counter saturation is
//     deliberately dropped, and one extra observation records where the
//     sample ended.
//   - Distribution combines positive likelihood, negative-evidence
//     down-weighting (Rule-of-Succession smoothing on both), category-level
//     probabilities, and length-aware termination into probabilities over
//     all 29 symbols.
//   - SampleNext draws one symbol from that distribution; Generate loops
//     until the End symbol is drawn or the configured length bound is hit.
//
// Why:
//
//   - Procedural generators need plausible, culture-flavored strings without
//     shipping (or leaking) a name corpus; the model keeps only bounded
//     counts, never the training sequences.
//
// Behavior and state:
//
//   - Training and generation interleave freely: smoothing is applied at
//     query time, tables never freeze.
//   - Generation is legal once one positive sample was ingested; before
//     that Distribution reports ErrDegenerateDistribution instead of
//     propagating NaN.
//   - Randomness is injected (Options.Seed / Options.Rand) and defaults to
//     a fixed deterministic seed; same seed, same names.
//   - Single-threaded by design: a Model must not be shared across
//     goroutines without external synchronization.
//
// Errors:
//
//   - ErrDegenerateDistribution: combined probabilities are not a finite
//     positive sum (typically: no positive training data).
//   - ErrSamplingFailed: the weighted walk exhausted the probability array;
//     an internal invariant violation, never a normal outcome.
//   - ngram.ErrContextTooShort passes through when a caller supplies fewer
//     than Order context elements to Distribution or SampleNext.
//
// Complexity: ingest O(len(sample) × Order); Distribution O(V × Order) with
// V = 29; Generate O(maxLength × V × Order). Memory: two tables of 29^Order
// rows and two of 10^Order (about 51 KB at Order 2, 1.4 MB at Order 3).
package namegen
