package alphabet

import "unicode"

// All enumerates every symbol in index order. Useful for dense iteration
// over candidate next-symbols at generation time.
var All = [Count]Symbol{
	A, B, C, D, E, F, G, H, I, J, K, L, M, N, O,
	P, Q, R, S, T, U, V, W, X, Y, Z, Dash, Apostrophe, End,
}

// Encode maps a rune into the closed symbol set, folding letters to
// lowercase. The NUL rune encodes to End. Returns ErrInvalidSymbol for any
// other rune outside [a-z, A-Z, '-', apostrophe].
// Complexity: O(1).
func Encode(r rune) (Symbol, error) {
	switch r {
	case '-':
		return Dash, nil
	case '\'':
		return Apostrophe, nil
	case endRune:
		return End, nil
	}
	r = unicode.ToLower(r)
	if r >= 'a' && r <= 'z' {
		return A + Symbol(r-'a'), nil
	}
	return End, ErrInvalidSymbol
}

// Decode is the total inverse of Encode for non-End symbols: letters decode
// to their lowercase rune, Dash to '-', Apostrophe to '\''. End decodes to
// the NUL sentinel, not a printable character.
// Complexity: O(1).
func Decode(s Symbol) rune {
	switch s {
	case Dash:
		return '-'
	case Apostrophe:
		return '\''
	case End:
		return endRune
	default:
		return 'a' + rune(s-A)
	}
}

// Index returns the dense position of s in [0, Count). Total and branchless;
// required by ngram positional row indexing.
func (s Symbol) Index() int { return int(s) }

// FromIndex returns the symbol at dense index i, or ErrInvalidSymbol when i
// lies outside [0, Count).
func FromIndex(i int) (Symbol, error) {
	if i < 0 || i >= Count {
		return End, ErrInvalidSymbol
	}
	return Symbol(i), nil
}

// Valid reports whether s is one of the Count enumerated symbols.
func (s Symbol) Valid() bool { return s < Count }

// IsVowel reports whether s is one of the five pure vowels a, e, i, o, u.
// The letter y is deliberately excluded: its vowel-ness is contextual and
// resolved by the phoneme classifier.
func (s Symbol) IsVowel() bool {
	switch s {
	case A, E, I, O, U:
		return true
	default:
		return false
	}
}

// String renders the symbol for diagnostics: letters and connectors as
// themselves, End as "∅".
func (s Symbol) String() string {
	if s == End {
		return "∅"
	}
	return string(Decode(s))
}
