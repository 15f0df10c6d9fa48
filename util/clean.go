package util

import "strings"

// keptPunct is the punctuation that survives Clean. Everything else outside
// the CJK ideograph block is dropped, including whitespace and line breaks.
const keptPunct = "。，？、；：（）「」《》“”‘’—…"

// Clean keeps Chinese characters and Chinese punctuation only.
func Clean(text string) string {
	return strings.Map(func(r rune) rune {
		if IsCJK(r) || strings.ContainsRune(keptPunct, r) {
			return r
		}
		return -1
	}, text)
}
