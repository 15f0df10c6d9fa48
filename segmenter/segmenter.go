package segmenter

import (
	"math"

	"github.com/teatak/dieci/dictionary"
	"github.com/teatak/dieci/util"
)

// Tags assigned by the segmenter itself when the dictionary has none.
const (
	TagNonWord = "x"   // punctuation and whitespace
	TagAlpha   = "eng" // ASCII letters and digits
)

// Token is a segmented word with its part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Segmenter handles the text segmentation.
type Segmenter struct {
	Dict *dictionary.Dictionary
}

// NewSegmenter creates a new segmenter with the given dictionary.
// A nil dictionary segments every character on its own.
func NewSegmenter(dict *dictionary.Dictionary) *Segmenter {
	if dict == nil {
		dict = dictionary.NewDictionary()
	}
	return &Segmenter{Dict: dict}
}

// Cut segments the text into a slice of strings.
func (s *Segmenter) Cut(text string) []string {
	var result []string
	for _, block := range splitTextToBlocks([]rune(text)) {
		if block.isPureAlphaNum {
			result = append(result, string(block.runes))
			continue
		}
		result = append(result, s.cutDAG(block.runes)...)
	}
	return result
}

// Tag segments the text and tags every token. Dictionary tags win;
// otherwise punctuation and whitespace are tagged TagNonWord and ASCII
// words TagAlpha. Anything else is left untagged.
func (s *Segmenter) Tag(text string) []Token {
	words := s.Cut(text)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Text: w, Tag: s.tagOf(w)}
	}
	return tokens
}

func (s *Segmenter) tagOf(word string) string {
	if tag := s.Dict.Tag(word); tag != "" {
		return tag
	}
	if util.IsNonWord(word) {
		return TagNonWord
	}
	if isPureAlphaNum([]rune(word)) {
		return TagAlpha
	}
	return ""
}

// cutDAG finds the maximum probability path through the word graph of runes.
func (s *Segmenter) cutDAG(runes []rune) []string {
	n := len(runes)
	if n == 0 {
		return nil
	}
	dag := s.buildDAG(runes)

	type routeNode struct {
		prob float64
		end  int
	}
	route := make([]routeNode, n+1)
	for i := n - 1; i >= 0; i-- {
		best := routeNode{prob: -math.MaxFloat64, end: i}
		for _, end := range dag[i] {
			prob := s.Dict.LogProbability(string(runes[i:end+1])) + route[end+1].prob
			if prob > best.prob {
				best = routeNode{prob: prob, end: end}
			}
		}
		route[i] = best
	}

	var result []string
	for idx := 0; idx < n; {
		end := route[idx].end
		result = append(result, string(runes[idx:end+1]))
		idx = end + 1
	}
	return result
}

// buildDAG returns, for every start index, the inclusive end indices of
// candidate words starting there. Every start has at least itself.
func (s *Segmenter) buildDAG(runes []rune) [][]int {
	n := len(runes)
	dag := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i; j < n && j-i+1 <= s.Dict.MaxLen; j++ {
			if s.Dict.Contains(string(runes[i : j+1])) {
				dag[i] = append(dag[i], j)
			}
		}

		// Keep an alphanumeric run whole even when it is not a dictionary word.
		if util.IsAlphaNum(runes[i]) {
			j := i
			for j < n && util.IsAlphaNum(runes[j]) {
				j++
			}
			if !containsInt(dag[i], j-1) {
				dag[i] = append(dag[i], j-1)
			}
		}

		if len(dag[i]) == 0 {
			dag[i] = append(dag[i], i)
		}
	}
	return dag
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
