// Package ngram provides a generic fixed-radix frequency table: one row per
// possible N-symbol context over an alphabet of width V, one bounded counter
// per observed next symbol, and a wide running sum per row.
//
// What:
//
//   - Table owns width^order rows in a single flat, row-major allocation.
//   - Row indices are the base-width positional encoding of the context,
//     most-recent symbol in the lowest-order position.
//   - Counters are saturating 8-bit cells with a reject-and-error overflow
//     policy; row sums use uint64 so a row total never silently wraps.
//   - Smoothing is applied by callers at query time; the table itself stores
//     raw counts and never freezes (training and reading interleave freely).
//
// Why:
//
//   - A flat array over a dense alphabet beats a map for both footprint and
//     locality when the context space is small (29^3 rows at order 3).
//   - 8-bit cells keep the whole model in tens of kilobytes at order 2.
//
// Errors:
//
//   - ErrOrderTooSmall / ErrWidthTooSmall / ErrRowCountOverflow: invalid
//     construction; width^order must fit the addressable range, computed
//     once inside New and never accepted as an external parameter.
//   - ErrContextTooShort: fewer than order context elements supplied.
//   - ErrIndexOutOfRange: a context or next element outside [0, width).
//   - ErrCounterSaturated / ErrSumOverflow: a cell or row total at capacity;
//     the observation is not recorded.
//
// Complexity: RowIndex, Observe O(order); Row O(width) for the defensive
// copy. Memory: width^order × (width + 8) bytes.
package ngram
