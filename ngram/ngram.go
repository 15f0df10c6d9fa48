// Package ngram ranks words and word n-grams by frequency.
package ngram

import (
	"sort"
	"strings"
)

// Entry is one ranked item with the number of times it occurred.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Ranking is a list of entries ordered by count, highest first. Items with
// equal counts keep the order in which they first occurred.
type Ranking[T comparable] []Entry[T]

// Count ranks items by frequency.
func Count[T comparable](items []T) Ranking[T] {
	counts := make(map[T]int, len(items))
	var order []T
	for _, it := range items {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}

	ranking := make(Ranking[T], len(order))
	for i, it := range order {
		ranking[i] = Entry[T]{Item: it, Count: counts[it]}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	return ranking
}

// Top returns at most the first n entries.
func (r Ranking[T]) Top(n int) Ranking[T] {
	if n < 0 {
		n = 0
	}
	if n > len(r) {
		n = len(r)
	}
	return r[:n]
}

// Bigrams returns every pair of adjacent words.
func Bigrams(words []string) [][2]string {
	if len(words) < 2 {
		return [][2]string{}
	}
	grams := make([][2]string, 0, len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		grams = append(grams, [2]string{words[i], words[i+1]})
	}
	return grams
}

// Trigrams returns every run of three adjacent words.
func Trigrams(words []string) [][3]string {
	if len(words) < 3 {
		return [][3]string{}
	}
	grams := make([][3]string, 0, len(words)-2)
	for i := 0; i+2 < len(words); i++ {
		grams = append(grams, [3]string{words[i], words[i+1], words[i+2]})
	}
	return grams
}

// Row is a ranking entry rendered as text.
type Row struct {
	Label string
	Count int
}

// Rows renders every entry with label.
func (r Ranking[T]) Rows(label func(T) string) []Row {
	rows := make([]Row, len(r))
	for i, e := range r {
		rows[i] = Row{Label: label(e.Item), Count: e.Count}
	}
	return rows
}

// Word labels a unigram.
func Word(w string) string { return w }

// Pair labels a bigram as its two words separated by a space.
func Pair(g [2]string) string { return strings.Join(g[:], " ") }

// Triple labels a trigram as its three words separated by spaces.
func Triple(g [3]string) string { return strings.Join(g[:], " ") }
