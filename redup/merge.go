package redup

import (
	"unicode/utf8"

	"github.com/teatak/dieci/util"
)

// Merge joins two adjacent identical single-character tokens into one
// two-character token when the character is a Chinese ideograph. The
// segmenter often splits an unknown AA word into its two halves; this undoes
// that. Pairs do not overlap: three identical characters become the doubled
// character followed by the third on its own.
func Merge(tokens []string) []string {
	merged := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+1 < len(tokens) && isDoubledIdeograph(tokens[i], tokens[i+1]) {
			merged = append(merged, tokens[i]+tokens[i+1])
			i += 2
			continue
		}
		merged = append(merged, tokens[i])
		i++
	}
	return merged
}

func isDoubledIdeograph(a, b string) bool {
	if a != b || utf8.RuneCountInString(a) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(a)
	return util.IsCJK(r)
}
