// Package phoneme defines the Category enumeration and the fixed lookback
// Window consumed by Classify.
package phoneme

import "github.com/katalvlaran/namegram/alphabet"

// Category is a coarse articulatory classification of one symbol in context.
// Values are dense: Category(i).Index() == i for every i in [0, Count).
type Category uint8

// Count is the total number of distinct categories, including Null.
const Count = 10

const (
	// VowelRoot marks a vowel acting as a syllable nucleus.
	VowelRoot Category = iota
	// VowelModifier marks a vowel that colors an immediately preceding vowel.
	VowelModifier
	// SemiPunctuation marks the dash and apostrophe connectors.
	SemiPunctuation
	// Plosive marks stops: air flow blocked, then released (p, b, t, k, d, g).
	Plosive
	// Fricative marks friction sounds through a narrow opening (f, s, z, th).
	Fricative
	// Affricate marks a plosive releasing into a fricative (ch, j).
	Affricate
	// Nasal marks sounds routed through the nose (m, n, ng).
	Nasal
	// Approximant marks near-contact sounds (w, r, y, l).
	Approximant
	// Silent marks letters with no sound of their own (gh, sc).
	Silent
	// Null is the category of the End sentinel.
	Null
)

// Window is the fixed 4-symbol lookback context for one classification:
// oldest symbol first, the symbol being classified in the last slot. Slots
// that would reach past the start of a sequence hold alphabet.End.
type Window [4]alphabet.Symbol

// Index returns the dense position of c in [0, Count).
func (c Category) Index() int { return int(c) }

// String renders the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case VowelRoot:
		return "VowelRoot"
	case VowelModifier:
		return "VowelModifier"
	case SemiPunctuation:
		return "SemiPunctuation"
	case Plosive:
		return "Plosive"
	case Fricative:
		return "Fricative"
	case Affricate:
		return "Affricate"
	case Nasal:
		return "Nasal"
	case Approximant:
		return "Approximant"
	case Silent:
		return "Silent"
	case Null:
		return "Null"
	default:
		return "Category(?)"
	}
}
