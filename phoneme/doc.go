// Package phoneme assigns a coarse articulatory category to each symbol of
// a name, using up to three preceding symbols to disambiguate letters whose
// sound depends on context.
//
// What:
//
//   - Category is a dense 10-way enumeration: two vowel roles, a punctuation
//     role, five consonant manners, a Silent marker, and Null for the End
//     sentinel.
//   - Classify is a pure, total function of a fixed 4-symbol Window (oldest
//     first, the symbol being classified last). Slots that would reach past
//     the start of a sequence hold alphabet.End.
//   - Categories classifies a whole symbol sequence, rebuilding the window
//     from scratch at every position.
//
// Why:
//
//   - Character-level n-grams alone overfit tiny training sets; an n-gram
//     over sound classes generalizes "consonant cluster then vowel" patterns
//     across letters that never co-occurred in training.
//
// Classification rules (most-recent symbol, with lookback):
//
//   - p b t k d q → Plosive; f s v x z → Fricative; j → Affricate;
//     w r l → Approximant; m n → Nasal; dash ' → SemiPunctuation;
//     End → Null.
//   - h: Affricate after c ("church"), Fricative after t ("the"),
//     Silent after g ("ghost"), Fricative otherwise.
//   - c: Silent after s ("muscle"), Plosive otherwise.
//   - g: Nasal after n ("ring"), Plosive otherwise.
//   - y: Approximant at sequence start ("Yuri"), VowelModifier after a
//     vowel ("day"), VowelRoot after a consonant ("Gwyn").
//   - a i o u: VowelModifier directly after a vowel, VowelRoot otherwise.
//   - e: as other vowels, except the th/ch/sh digraphs are transparent to
//     the preceded-by-a-vowel test ("niche" keeps its i visible through ch).
//
// When lookback runs past sequence start every rule falls back to its
// context-free result; Classify never fails.
//
// Complexity: O(1) per symbol, allocation-free.
package phoneme
