// Package alphabet defines the closed symbol set every namegram model
// reasons over: the 26 lowercase letters, dash, apostrophe, and a single
// End sentinel that marks sequence termination.
//
// What:
//
//   - Symbol is a dense uint8 enumeration over exactly Count (29) values.
//   - Encode folds a rune to lowercase and maps it into the set; Decode is
//     total and inverts Encode for every non-End symbol.
//   - Index/FromIndex give a bijection with [0, Count), which the ngram
//     package relies on for positional row indexing.
//
// Why:
//
//   - A fixed, dense alphabet lets frequency tables be flat arrays instead
//     of maps, keeping the model's memory footprint small and predictable.
//   - The End sentinel lets "where names end" be learned like any other
//     next-symbol statistic.
//
// Errors:
//
//   - ErrInvalidSymbol: rune outside [a-z, A-Z, dash, apostrophe, NUL] on
//     Encode,
//     or an index outside [0, Count) on FromIndex.
//
// Complexity: every operation is O(1), allocation-free.
package alphabet
