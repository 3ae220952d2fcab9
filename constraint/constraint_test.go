package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtLeastOneSatisfied(t *testing.T) {
	c := AtLeastOne([]int{3, 1, 1, 2})
	require.Equal(t, []int{1, 2, 3}, c.Variables)
	require.Equal(t, 1, c.LowerBound)

	require.False(t, c.Satisfied(map[int]bool{}))
	require.True(t, c.Satisfied(map[int]bool{2: true}))
}

func TestNewWithHigherBound(t *testing.T) {
	c := New([]int{1, 2, 3}, 2)
	require.False(t, c.Satisfied(map[int]bool{1: true}))
	require.True(t, c.Satisfied(map[int]bool{1: true, 3: true}))
}
