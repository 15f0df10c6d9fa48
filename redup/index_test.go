package redup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexMerge(t *testing.T) {
	first := NewIndex()
	first.Add(ABB, "绿油油")
	first.Add(AA, "妈妈")

	second := NewIndex()
	second.Add(AA, "天天")
	second.Add(AABB, "高高兴兴")
	second.Add(AA, "慢慢")

	first.Merge(second)
	first.Merge(nil)

	assert.Equal(t, []Category{ABB, AA, AABB}, first.Categories())
	assert.Equal(t, []string{"妈妈", "天天", "慢慢"}, first.Words(AA))
	assert.Equal(t, 5, first.Total())
	assert.Equal(t, 3, first.Len())
}

func TestUnion(t *testing.T) {
	s := NewScanner(nil)
	works := []*Index{
		s.Scan([]string{"妈妈", "来", "了"}),
		s.Scan([]string{"他", "来", "了"}),
	}

	author := Union(works...)
	assert.Equal(t, []Category{AA}, author.Categories())
	assert.Equal(t, []string{"妈妈"}, author.Words(AA))
	assert.Equal(t, 1, author.Count(AA))

	assert.Zero(t, Union().Len())
}
