package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAll(t *testing.T) {
	assert.True(t, ContainsAll([]int{1, 2, 3}, []int{1, 3}))
	assert.True(t, ContainsAll([]int{1, 2, 3}, []int{}))
	assert.False(t, ContainsAll([]int{1, 2}, []int{1, 4}))
	assert.False(t, ContainsAll([]int{}, []int{1}))
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, groups[true])
	assert.Equal(t, []int{1, 3, 5}, groups[false])
}

func TestUniques(t *testing.T) {
	out := Uniques([]int{3, 1, 3, 2, 1})
	sort.Ints(out)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestSumMax(t *testing.T) {
	values := []int{7, 10, 3}
	assert.Equal(t, 20, Sum(values))
	assert.Equal(t, 10, Max(values))
	assert.Equal(t, 0, Sum([]int{}))
}
