package redup

// Index maps each category to the words found for it, in discovery order.
// Categories are remembered in the order they were first seen.
type Index struct {
	order []Category
	words map[Category][]string
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{words: make(map[Category][]string)}
}

// Add appends word to category c.
func (x *Index) Add(c Category, word string) {
	if _, ok := x.words[c]; !ok {
		x.order = append(x.order, c)
	}
	x.words[c] = append(x.words[c], word)
}

// Categories returns the non-empty categories in first-seen order.
func (x *Index) Categories() []Category {
	return append([]Category(nil), x.order...)
}

// Words returns the words recorded for c.
func (x *Index) Words(c Category) []string {
	return x.words[c]
}

// Count returns the number of words recorded for c.
func (x *Index) Count(c Category) int {
	return len(x.words[c])
}

// Total returns the number of words across all categories.
func (x *Index) Total() int {
	n := 0
	for _, ws := range x.words {
		n += len(ws)
	}
	return n
}

// Len returns the number of non-empty categories.
func (x *Index) Len() int {
	return len(x.order)
}

// Merge appends every category of other, in other's order, to x.
func (x *Index) Merge(other *Index) {
	if other == nil {
		return
	}
	for _, c := range other.order {
		for _, w := range other.words[c] {
			x.Add(c, w)
		}
	}
}

// Union combines per-work indexes into one, keeping work order.
func Union(indexes ...*Index) *Index {
	out := NewIndex()
	for _, x := range indexes {
		out.Merge(x)
	}
	return out
}
