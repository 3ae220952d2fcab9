package rangeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertContainsRemove(t *testing.T) {
	rs := New(5)
	require.Equal(t, 0, rs.Len())

	require.True(t, rs.Insert(2))
	require.False(t, rs.Insert(2))
	require.True(t, rs.Contains(2))
	require.False(t, rs.Contains(3))
	require.Equal(t, 1, rs.Len())

	require.True(t, rs.Remove(2))
	require.False(t, rs.Remove(2))
	require.False(t, rs.Contains(2))
	require.Equal(t, 0, rs.Len())
}

func TestRemovePreservesOtherMembers(t *testing.T) {
	rs := FromSlice(5, []int{0, 1, 2, 3, 4})
	require.Equal(t, 5, rs.Len())

	rs.Remove(2)
	require.Equal(t, 4, rs.Len())
	require.False(t, rs.Contains(2))
	for _, v := range []int{0, 1, 3, 4} {
		require.True(t, rs.Contains(v))
	}

	seen := map[int]bool{}
	for i := 0; i < rs.Len(); i++ {
		seen[rs.At(i)] = true
	}
	require.Equal(t, map[int]bool{0: true, 1: true, 3: true, 4: true}, seen)
}

func TestPop(t *testing.T) {
	rs := New(3)
	_, ok := rs.Pop()
	require.False(t, ok)

	rs.Insert(0)
	rs.Insert(1)
	v, ok := rs.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 1, rs.Len())
	require.False(t, rs.Contains(1))
}

func TestClone(t *testing.T) {
	rs := FromSlice(4, []int{0, 2})
	clone := rs.Clone()

	clone.Insert(1)
	require.False(t, rs.Contains(1))
	require.True(t, clone.Contains(1))

	rs.Remove(0)
	require.True(t, clone.Contains(0))
}

func TestMembersReflectsCurrentSet(t *testing.T) {
	rs := FromSlice(3, []int{0, 1, 2})
	require.ElementsMatch(t, []int{0, 1, 2}, rs.Members())

	rs.Remove(1)
	require.ElementsMatch(t, []int{0, 2}, rs.Members())
}
