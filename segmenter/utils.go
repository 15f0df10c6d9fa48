package segmenter

import "github.com/teatak/dieci/util"

// textBlock is a maximal run of word characters or of non-word characters.
type textBlock struct {
	runes          []rune
	isPureAlphaNum bool
}

func splitTextToBlocks(runes []rune) []textBlock {
	var blocks []textBlock
	if len(runes) == 0 {
		return blocks
	}

	start := 0
	inWord := util.IsWordChar(runes[0])
	for i := 1; i < len(runes); i++ {
		if w := util.IsWordChar(runes[i]); w != inWord {
			blocks = append(blocks, newBlock(runes[start:i], inWord))
			start, inWord = i, w
		}
	}
	return append(blocks, newBlock(runes[start:], inWord))
}

func newBlock(runes []rune, word bool) textBlock {
	return textBlock{runes: runes, isPureAlphaNum: word && isPureAlphaNum(runes)}
}

func isPureAlphaNum(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !util.IsAlphaNum(r) {
			return false
		}
	}
	return true
}
