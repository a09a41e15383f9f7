// File: phoneme/example_test.go
package phoneme_test

import (
	"fmt"

	"github.com/katalvlaran/namegram/alphabet"
	"github.com/katalvlaran/namegram/phoneme"
)

// ExampleCategories classifies the word "niche" position by position,
// showing the ch digraph staying transparent to the final e.
func ExampleCategories() {
	seq := make([]alphabet.Symbol, 0, 5)
	for _, r := range "niche" {
		s, _ := alphabet.Encode(r)
		seq = append(seq, s)
	}
	for i, c := range phoneme.Categories(seq) {
		fmt.Printf("%c: %s\n", alphabet.Decode(seq[i]), c)
	}

	// Output:
	// n: Nasal
	// i: VowelRoot
	// c: Plosive
	// h: Affricate
	// e: VowelModifier
}
