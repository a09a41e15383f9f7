// Package ngram defines sentinel errors and the bounded counter cell used
// by the frequency Table.
package ngram

import "errors"

// Sentinel errors for ngram table construction and mutation.
var (
	// ErrOrderTooSmall indicates a context order below the supported minimum of 2.
	ErrOrderTooSmall = errors.New("ngram: order must be at least 2")
	// ErrWidthTooSmall indicates a non-positive alphabet width.
	ErrWidthTooSmall = errors.New("ngram: width must be at least 1")
	// ErrRowCountOverflow indicates width^order does not fit the addressable range.
	ErrRowCountOverflow = errors.New("ngram: width^order overflows addressable row count")
	// ErrContextTooShort indicates fewer than order context elements were supplied.
	ErrContextTooShort = errors.New("ngram: context shorter than table order")
	// ErrIndexOutOfRange indicates a context or next element outside [0, width).
	ErrIndexOutOfRange = errors.New("ngram: element index outside alphabet width")
	// ErrCounterSaturated indicates a cell already holds its 8-bit maximum.
	ErrCounterSaturated = errors.New("ngram: counter saturated at 255")
	// ErrSumOverflow indicates a row sum already holds its 64-bit maximum.
	ErrSumOverflow = errors.New("ngram: row sum overflow")
)

// Counter is a bounded 8-bit observation cell. Overflow policy is
// reject-and-error: an increment past the cap leaves the cell untouched and
// reports ErrCounterSaturated, so a row sum never drifts from its cells.
type Counter uint8

// counterMax is the saturation cap of a single cell.
const counterMax Counter = 255

// inc bumps the cell by one, or reports ErrCounterSaturated at the cap.
func (c *Counter) inc() error {
	if *c == counterMax {
		return ErrCounterSaturated
	}
	*c++
	return nil
}
