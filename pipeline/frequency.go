package pipeline

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/teatak/dieci/dictionary"
	"github.com/teatak/dieci/ngram"
	"github.com/teatak/dieci/report"
	"github.com/teatak/dieci/segmenter"
)

// Frequency holds the unigram, bigram and trigram rankings of one text.
type Frequency struct {
	Words    ngram.Ranking[string]
	Bigrams  ngram.Ranking[[2]string]
	Trigrams ngram.Ranking[[3]string]
}

// table is one ranking ready to be written and charted.
type table struct {
	name  string // file name suffix
	label string // chart name suffix
	color drawing.Color
	rows  []ngram.Row
}

// contentWords drops punctuation, whitespace and stopwords.
func contentWords(tokens []segmenter.Token, stop dictionary.Stopwords) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Tag == segmenter.TagNonWord || stop.Contains(t.Text) {
			continue
		}
		words = append(words, t.Text)
	}
	return words
}

// rank counts words and their bigrams and trigrams.
func rank(words []string) *Frequency {
	return &Frequency{
		Words:    ngram.Count(words),
		Bigrams:  ngram.Count(ngram.Bigrams(words)),
		Trigrams: ngram.Count(ngram.Trigrams(words)),
	}
}

func (f *Frequency) tables() []table {
	return []table{
		{name: "词语词频列表", label: "词语", color: report.SteelBlue, rows: f.Words.Rows(ngram.Word)},
		{name: "二元词频率列表", label: "二元词语", color: report.MediumSeaGreen, rows: f.Bigrams.Rows(ngram.Pair)},
		{name: "三元词频率列表", label: "三元词语", color: report.Coral, rows: f.Trigrams.Rows(ngram.Triple)},
	}
}

func (t table) fileName(prefix string) string {
	return fmt.Sprintf("%s_%s.txt", prefix, t.name)
}

func (t table) chartTitle(prefix string, top int) string {
	return fmt.Sprintf("%s_top%d%s", prefix, top, t.label)
}

func (t table) top(n int) []ngram.Row {
	if n < len(t.rows) {
		return t.rows[:n]
	}
	return t.rows
}
