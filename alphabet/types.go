// Package alphabet defines core types and sentinel errors for the closed
// namegram symbol set.
package alphabet

import "errors"

// ErrInvalidSymbol indicates a rune or index outside the closed symbol set.
var ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

// Symbol is one element of the closed training alphabet. Values are dense:
// Symbol(i).Index() == i for every i in [0, Count).
type Symbol uint8

// Count is the total number of distinct symbols, including End.
const Count = 29

// The full symbol enumeration. Letters come first in a-z order so that
// letter arithmetic (Symbol - A) mirrors rune arithmetic (r - 'a').
const (
	A Symbol = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	// Dash is the '-' connector permitted inside names.
	Dash
	// Apostrophe is the ' connector permitted inside names.
	Apostrophe
	// End is the terminator sentinel. It never appears mid-sequence; it is
	// observed once per training sample as the final "next symbol" and is
	// the pad value for lookback windows that reach past sequence start.
	End
)

// endRune is the sentinel rune End decodes to. It is not printable and is
// the same value empty slots hold in padded sample buffers.
const endRune rune = 0
