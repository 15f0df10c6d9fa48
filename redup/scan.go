package redup

import "unicode/utf8"

// Scanner collects the reduplicated words of a token sequence.
type Scanner struct {
	Classifier *Classifier
}

// NewScanner returns a Scanner using c, or the default classifier if c is nil.
func NewScanner(c *Classifier) *Scanner {
	if c == nil {
		c = NewClassifier()
	}
	return &Scanner{Classifier: c}
}

// Scan indexes tokens, normally the output of Merge. Every token is
// classified on its own; then two identical adjacent two-character tokens
// are also recorded together as one ABAB word. A pair such as 看看 看看 is
// therefore reported twice under AA and once under ABAB.
func (s *Scanner) Scan(tokens []string) *Index {
	idx := NewIndex()
	for _, tok := range tokens {
		if c, ok := s.Classifier.Classify(tok); ok {
			idx.Add(c, tok)
		}
	}

	for i := 0; i+1 < len(tokens); {
		a, b := tokens[i], tokens[i+1]
		if a == b && utf8.RuneCountInString(a) == 2 {
			idx.Add(ABAB, a+b)
			i += 2
			continue
		}
		i++
	}
	return idx
}
