package phoneme

import "github.com/katalvlaran/namegram/alphabet"

// Classify derives the articulatory category of the most recent symbol in w
// (slot 3), consulting up to three predecessors for the letters whose sound
// is context-dependent. Pure and total: any well-formed window yields a
// category, and padded (End) lookback slots select each rule's context-free
// fallback.
// Complexity: O(1).
func Classify(w Window) Category {
	cur, prev := w[3], w[2]
	switch cur {
	case alphabet.P, alphabet.B, alphabet.T, alphabet.K, alphabet.D, alphabet.Q:
		return Plosive
	case alphabet.F, alphabet.S, alphabet.V, alphabet.X, alphabet.Z:
		return Fricative
	case alphabet.J:
		return Affricate
	case alphabet.W, alphabet.R, alphabet.L:
		return Approximant
	case alphabet.M, alphabet.N:
		return Nasal
	case alphabet.Dash, alphabet.Apostrophe:
		return SemiPunctuation
	case alphabet.End:
		return Null
	case alphabet.H:
		// "church" / "the" / "ghost"; bare h defaults to Fricative.
		switch prev {
		case alphabet.C:
			return Affricate
		case alphabet.T:
			return Fricative
		case alphabet.G:
			return Silent
		default:
			return Fricative
		}
	case alphabet.C:
		// "muscle"; otherwise hard c as in "cat".
		if prev == alphabet.S {
			return Silent
		}
		return Plosive
	case alphabet.G:
		// "ring"; otherwise hard g as in "goblin".
		if prev == alphabet.N {
			return Nasal
		}
		return Plosive
	case alphabet.Y:
		// Leading y is a glide ("Yuri"); after a vowel it colors it ("day");
		// after a consonant it carries the syllable ("Gwyn").
		if prev == alphabet.End {
			return Approximant
		}
		if prev.IsVowel() {
			return VowelModifier
		}
		return VowelRoot
	case alphabet.A, alphabet.I, alphabet.O, alphabet.U:
		if prev.IsVowel() {
			return VowelModifier
		}
		return VowelRoot
	case alphabet.E:
		if prev.IsVowel() {
			return VowelModifier
		}
		// The preceding consonant may be the tail of a th/ch/sh digraph, in
		// which case the nucleus test skips the whole digraph ("niche").
		decider := w[1]
		if digraphTransparent(w[1], w[2]) {
			decider = w[0]
		}
		if decider.IsVowel() {
			return VowelModifier
		}
		return VowelRoot
	}
	// Unreachable for symbols inside the closed alphabet.
	return Null
}

// digraphTransparent reports whether the adjacent pair (first, second) forms
// one of the digraphs th, ch, sh, which the e-nucleus test must look through.
func digraphTransparent(first, second alphabet.Symbol) bool {
	if second != alphabet.H {
		return false
	}
	switch first {
	case alphabet.T, alphabet.C, alphabet.S:
		return true
	default:
		return false
	}
}

// Categories classifies every position of seq, rebuilding the lookback
// window from the original sequence at each step (never mutating a rolling
// window), so each position sees exactly its own predecessors.
// Complexity: O(len(seq)) time, O(len(seq)) memory for the result.
func Categories(seq []alphabet.Symbol) []Category {
	cats := make([]Category, len(seq))
	for i := range seq {
		cats[i] = Classify(WindowAt(seq, i))
	}
	return cats
}

// WindowAt builds the 4-symbol lookback window for position i of seq:
// [seq[i-3], seq[i-2], seq[i-1], seq[i]], with End padding wherever an index
// would fall before the start of the sequence.
func WindowAt(seq []alphabet.Symbol, i int) Window {
	w := Window{alphabet.End, alphabet.End, alphabet.End, alphabet.End}
	for j := 0; j < 4; j++ {
		if idx := i - 3 + j; idx >= 0 && idx < len(seq) {
			w[j] = seq[idx]
		}
	}
	return w
}
