// Package redup detects reduplicated words (叠词) in segmented Chinese text.
package redup

// Category is the shape of a reduplicated word. Letters stand for
// characters: AABB is a word whose first two and last two characters repeat.
type Category string

const (
	AA   Category = "AA"
	AAB  Category = "AAB"
	ABB  Category = "ABB"
	AABB Category = "AABB"
	ABAB Category = "ABAB"
	ABCC Category = "ABCC"
	AABC Category = "AABC"
	LONG Category = "LONG" // five or more identical characters
)

// Categories lists every category in presentation order.
var Categories = []Category{AA, AAB, ABB, AABB, ABAB, AABC, ABCC, LONG}

func (c Category) String() string { return string(c) }
