package redup

import "strings"

// DefaultDenylist holds names shaped like reduplications that must not be
// counted as such.
var DefaultDenylist = []string{"珊珊", "亭亭"}

// DefaultParticles are the particles the segmenter tends to glue onto an AA
// word, producing a three-character token such as 慢慢地.
var DefaultParticles = []rune{'的', '地', '得', '着', '了'}

// rule assigns category when match holds for a word's characters.
type rule struct {
	category Category
	match    func(c *Classifier, w []rune) bool
}

// branch owns every word whose length satisfies applies. Only the first
// applicable branch is consulted; its rules are tried in order.
type branch struct {
	name    string
	applies func(n int) bool
	rules   []rule
}

// branches is the complete classification table. The order matters:
// the LONG branch also covers three and four characters but can never see
// them, so an all-identical word of length 3 or 4 has no category.
var branches = []branch{
	{
		name:    "two",
		applies: func(n int) bool { return n == 2 },
		rules: []rule{
			{AA, func(_ *Classifier, w []rune) bool { return w[0] == w[1] }},
		},
	},
	{
		name:    "three",
		applies: func(n int) bool { return n == 3 },
		rules: []rule{
			{AA, func(c *Classifier, w []rune) bool { return w[0] == w[1] && c.isParticle(w[2]) }},
			{AAB, func(_ *Classifier, w []rune) bool { return w[0] == w[1] && w[1] != w[2] }},
			{ABB, func(_ *Classifier, w []rune) bool { return w[0] != w[1] && w[1] == w[2] }},
		},
	},
	{
		name:    "four",
		applies: func(n int) bool { return n == 4 },
		rules: []rule{
			{AABB, func(_ *Classifier, w []rune) bool { return w[0] == w[1] && w[2] == w[3] && w[1] != w[2] }},
			{ABAB, func(_ *Classifier, w []rune) bool { return w[0] == w[2] && w[1] == w[3] && w[0] != w[1] }},
			{ABCC, func(_ *Classifier, w []rune) bool {
				return w[0] != w[1] && w[2] == w[3] && w[2] != w[0] && w[2] != w[1]
			}},
			{AABC, func(_ *Classifier, w []rune) bool {
				return w[0] == w[1] && w[2] != w[3] && w[1] != w[2] && w[1] != w[3]
			}},
		},
	},
	{
		name:    "long",
		applies: func(n int) bool { return n >= 3 },
		rules: []rule{
			{LONG, func(_ *Classifier, w []rune) bool { return allSame(w) }},
		},
	},
}

// Classifier decides which Category, if any, a single token belongs to.
// The zero value has no denylist and no particles; use NewClassifier for the
// defaults.
type Classifier struct {
	Denylist  []string
	Particles []rune
}

// NewClassifier returns a Classifier with DefaultDenylist and DefaultParticles.
func NewClassifier() *Classifier {
	return &Classifier{
		Denylist:  append([]string(nil), DefaultDenylist...),
		Particles: append([]rune(nil), DefaultParticles...),
	}
}

// Classify returns the category of word. Words containing a denylisted name
// never match.
func (c *Classifier) Classify(word string) (Category, bool) {
	if c.denied(word) {
		return "", false
	}
	w := []rune(word)
	for _, b := range branches {
		if !b.applies(len(w)) {
			continue
		}
		for _, r := range b.rules {
			if r.match(c, w) {
				return r.category, true
			}
		}
		return "", false
	}
	return "", false
}

func (c *Classifier) denied(word string) bool {
	for _, name := range c.Denylist {
		if name != "" && strings.Contains(word, name) {
			return true
		}
	}
	return false
}

func (c *Classifier) isParticle(r rune) bool {
	for _, p := range c.Particles {
		if p == r {
			return true
		}
	}
	return false
}

func allSame(w []rune) bool {
	for _, r := range w[1:] {
		if r != w[0] {
			return false
		}
	}
	return true
}
