package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleChapters() []Chapter {
	return []Chapter{
		{ID: "https://manga1000.com/a【1】/", ChapNum: 1},
		{ID: "https://manga1000.com/a【2】/", ChapNum: 2},
		{ID: "https://manga1000.com/a【2.5】/", ChapNum: 2.5},
		{ID: "https://manga1000.com/a【3】/", ChapNum: 3},
		{ID: "https://manga1000.com/a【10】/", ChapNum: 10},
	}
}

func TestChapterLabel(t *testing.T) {
	assert.Equal(t, "12", Chapter{ChapNum: 12}.Label())
	assert.Equal(t, "12.5", Chapter{ChapNum: 12.5}.Label())
	assert.Equal(t, "0", Chapter{}.Label())
}

func TestFilter(t *testing.T) {
	all := sampleChapters()

	t.Run("by number", func(t *testing.T) {
		got := Filter(all, "2.5", "", "")
		assert.Len(t, got, 1)
		assert.Equal(t, 2.5, got[0].ChapNum)
	})

	t.Run("number ignores trailing zeros", func(t *testing.T) {
		got := FilterByLabel(all, "3.0")
		assert.Len(t, got, 1)
		assert.Equal(t, 3.0, got[0].ChapNum)
	})

	t.Run("falls back to index", func(t *testing.T) {
		got := Filter(all, "4", "", "")
		assert.Len(t, got, 1)
		assert.Equal(t, 3.0, got[0].ChapNum)
	})

	t.Run("unknown chapter", func(t *testing.T) {
		assert.Nil(t, Filter(all, "9", "", ""))
		assert.Nil(t, Filter(all, "x", "", ""))
	})

	t.Run("range by number", func(t *testing.T) {
		assert.Equal(t, all[1:4], Filter(all, "", "2-3", ""))
		assert.Equal(t, all[2:4], FilterRange(all, "2.5-3"))
	})

	t.Run("open ranges", func(t *testing.T) {
		assert.Equal(t, all[3:], FilterRange(all, "3-"))
		assert.Equal(t, all[:2], FilterRange(all, "-2"))
	})

	t.Run("bad range", func(t *testing.T) {
		assert.Nil(t, FilterRange(all, "3-2"))
		assert.Nil(t, FilterRange(all, "11-20"))
		assert.Nil(t, FilterRange(all, "x"))
		assert.Nil(t, FilterRange(all, "-"))
		assert.Nil(t, FilterRange(all, "a-3"))
	})

	t.Run("list skips junk and repeats", func(t *testing.T) {
		got := Filter(all, "", "", "1, 10,x,,7,2.5,1")
		assert.Equal(t, []Chapter{all[0], all[4], all[2]}, got)
	})

	t.Run("no selector", func(t *testing.T) {
		assert.Equal(t, all, Filter(all, "", "", ""))
	})
}

func TestSelectKeepsDuplicates(t *testing.T) {
	all := []Chapter{{ChapNum: 10}, {ChapNum: 10}, {ChapNum: 11}}

	assert.Equal(t, []int{0, 1}, Select(all, "10", "", ""))
	assert.Equal(t, []int{0, 1, 2}, Select(all, "", "10-11", ""))
	assert.Equal(t, []int{2}, Select(all, "3", "", ""))
}
