package trades

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbers(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, PageSize))
	assert.Equal(t, 1, TotalPages(1, PageSize))
	assert.Equal(t, 1, TotalPages(10, PageSize))
	assert.Equal(t, 2, TotalPages(11, PageSize))
	assert.Equal(t, 3, TotalPages(25, PageSize))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestPager_TwentyFiveItems(t *testing.T) {
	items := numbers(25)
	p := NewPager(len(items), PageSize)

	assert.Equal(t, 3, p.Total())
	assert.Equal(t, 1, p.Current())
	assert.Len(t, Page(items, p.Current(), p.Size()), 10)

	assert.False(t, p.GoTo(0))
	assert.Equal(t, 1, p.Current())

	assert.True(t, p.GoTo(3))
	assert.Equal(t, []int{21, 22, 23, 24, 25}, Page(items, p.Current(), p.Size()))

	assert.False(t, p.GoTo(4))
	assert.Equal(t, 3, p.Current())
}

func TestPager_NextPrev(t *testing.T) {
	p := NewPager(25, PageSize)

	assert.False(t, p.HasPrev())
	assert.False(t, p.Prev())
	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.False(t, p.HasNext())
	assert.False(t, p.Next())
	assert.Equal(t, 3, p.Current())
	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.Current())
}

func TestPager_ResetReturnsToFirstPage(t *testing.T) {
	p := NewPager(25, PageSize)
	p.GoTo(3)

	p.Reset(8)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 1, p.Total())
}

func TestPager_Empty(t *testing.T) {
	p := NewPager(0, PageSize)

	assert.Equal(t, 0, p.Total())
	assert.Equal(t, 1, p.Current())
	assert.False(t, p.GoTo(1))
	assert.Empty(t, Page([]int{}, p.Current(), p.Size()))
}

func TestPage_OutOfRange(t *testing.T) {
	items := numbers(5)
	assert.Nil(t, Page(items, 0, 10))
	assert.Nil(t, Page(items, 2, 10))
	assert.Equal(t, items, Page(items, 1, 10))
}

func pageItems(nums ...int) []PageItem {
	items := make([]PageItem, 0, len(nums))
	for _, n := range nums {
		if n == 0 {
			items = append(items, PageItem{Ellipsis: true})
			continue
		}
		items = append(items, PageItem{Number: n})
	}
	return items
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []PageItem
	}{
		{"none", 1, 0, pageItems()},
		{"few pages listed in full", 2, 5, pageItems(1, 2, 3, 4, 5)},
		{"start", 1, 10, pageItems(1, 2, 0, 10)},
		{"third page has no leading gap", 3, 10, pageItems(1, 2, 3, 4, 0, 10)},
		{"middle", 5, 10, pageItems(1, 0, 4, 5, 6, 0, 10)},
		{"near end", 8, 10, pageItems(1, 0, 7, 8, 9, 10)},
		{"end", 10, 10, pageItems(1, 0, 9, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageNumbers(tt.current, tt.total))
		})
	}
}
