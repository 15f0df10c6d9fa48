package dictionary

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teatak/dieci/util"
)

// DefaultFrequency is assigned to entries listed without a frequency, so a
// bare user word reliably wins over the split it replaces.
const DefaultFrequency = 20000.0

// unknownLogProb is the penalty for a word missing from the dictionary.
const unknownLogProb = -20.0

// Entry is one dictionary word.
type Entry struct {
	Freq float64
	Tag  string
}

// Dictionary holds words with their frequencies and part-of-speech tags.
type Dictionary struct {
	Total  float64
	Words  map[string]Entry
	MaxLen int
	Loaded bool
}

// NewDictionary creates a new empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Words: make(map[string]Entry),
	}
}

// Add inserts or replaces word. A replaced word's old frequency is removed
// from the total first.
func (d *Dictionary) Add(word string, freq float64, tag string) {
	if old, ok := d.Words[word]; ok {
		d.Total -= old.Freq
	}
	d.Words[word] = Entry{Freq: freq, Tag: tag}
	d.Total += freq
	if n := len([]rune(word)); n > d.MaxLen {
		d.MaxLen = n
	}
}

// Load loads words from a file.
// File format, one entry per line: word [frequency] [tag]
func (d *Dictionary) Load(path string) error {
	text, err := util.ReadText(path)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		freq := DefaultFrequency
		tag := ""
		if len(parts) >= 2 {
			f, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				// jieba user dictionaries allow "word tag"
				tag = parts[1]
			} else {
				freq = f
			}
		}
		if len(parts) >= 3 {
			tag = parts[2]
		}
		if freq < 0 {
			return fmt.Errorf("%s:%d: negative frequency %v", path, lineNo, freq)
		}
		d.Add(parts[0], freq, tag)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	d.Loaded = true
	return nil
}

// Frequency returns the frequency of a word.
func (d *Dictionary) Frequency(word string) (float64, bool) {
	e, ok := d.Words[word]
	return e.Freq, ok
}

// Tag returns the part-of-speech tag recorded for word, if any.
func (d *Dictionary) Tag(word string) string {
	return d.Words[word].Tag
}

// Contains checks if a word exists in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Words[word]
	return ok
}

// LogProbability returns the log probability of a word.
// basic smoothing: unknown words and an empty dictionary get a fixed penalty.
func (d *Dictionary) LogProbability(word string) float64 {
	if d.Total <= 0 {
		return unknownLogProb
	}
	e, ok := d.Words[word]
	if !ok || e.Freq <= 0 {
		return unknownLogProb
	}
	return math.Log(e.Freq / d.Total)
}
