// Package sample provides the training-record value object consumed by
// namegen: a fixed-width, NUL-padded rune buffer plus optional,
// unopinionated metadata labels.
//
// What:
//
//   - Sample holds one name in a buffer of a declared width; the first NUL
//     slot marks the end of the text, which is how the model knows where a
//     sample stops. Text is folded to lowercase on construction.
//   - Labels carry free-form tags (gender identity, culture, sentiment,
//     family) that the statistical core never interprets; they exist so
//     callers can partition corpora into separate experiments.
//   - Batch builds many records sharing one width, bias and label set.
//
// Why:
//
//   - A fixed-width buffer gives every experiment a uniform record shape
//     and a cheap "where does the text end" contract without string
//     scanning in the hot ingestion path.
//
// Errors:
//
//   - ErrBadWidth: declared width below 1.
//   - ErrTextTooLong: text does not leave at least one padding slot, so no
//     terminator position would exist.
//
// Complexity: construction is O(width); accessors return defensive copies.
package sample
