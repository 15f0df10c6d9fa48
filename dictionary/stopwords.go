package dictionary

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/teatak/dieci/util"
)

// Stopwords is a set of words excluded from frequency counts.
type Stopwords map[string]struct{}

// LoadStopwords reads one stopword per line. Blank lines are skipped.
func LoadStopwords(path string) (Stopwords, error) {
	text, err := util.ReadText(path)
	if err != nil {
		return nil, err
	}
	sw := make(Stopwords)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			sw[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sw, nil
}

// Contains reports whether w is a stopword. A nil set contains nothing.
func (s Stopwords) Contains(w string) bool {
	_, ok := s[w]
	return ok
}
