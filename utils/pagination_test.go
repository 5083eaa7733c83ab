package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	pages := Paginate(items, 3)

	require := assert.New(t)
	require.Len(pages, 3)
	require.Equal([]int{1, 2, 3}, pages[0].Items())
	require.Equal([]int{4, 5, 6}, pages[1].Items())
	require.Equal([]int{7}, pages[2].Items())
}

func TestPaginateEmpty(t *testing.T) {
	pages := Paginate([]int{}, 3)
	assert.Empty(t, pages)
}

func TestPaginateNonPositivePageSize(t *testing.T) {
	items := []int{1, 2, 3}
	pages := Paginate(items, 0)
	assert.Len(t, pages, 1)
	assert.Equal(t, items, pages[0].Items())
}

func TestPaginateExactMultiple(t *testing.T) {
	items := []int{1, 2, 3, 4}
	pages := Paginate(items, 2)
	assert.Len(t, pages, 2)
	assert.Equal(t, []int{1, 2}, pages[0].Items())
	assert.Equal(t, []int{3, 4}, pages[1].Items())
}
