package reorder

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Run(`move down and up`, func(t *testing.T) {
		list := New([]string{"a", "b", "c", "d"})
		require.Nil(t, list.Move(0, 2))
		require.Equal(t, []string{"b", "c", "a", "d"}, list.Items())
		require.Nil(t, list.Move(3, 0))
		require.Equal(t, []string{"d", "b", "c", "a"}, list.Items())
		require.True(t, list.Dirty())
	})

	t.Run(`same index is a no-op`, func(t *testing.T) {
		list := New([]string{"a", "b"})
		require.Nil(t, list.Move(1, 1))
		require.False(t, list.Dirty())
	})

	t.Run(`out of range`, func(t *testing.T) {
		list := New([]int{1})
		require.True(t, errors.Is(list.Move(0, 1), ErrIndexOutOfRange))
		require.True(t, errors.Is(list.Move(-1, 0), ErrIndexOutOfRange))
	})

	t.Run(`source slice untouched`, func(t *testing.T) {
		src := []int{1, 2, 3}
		list := New(src)
		require.Nil(t, list.Move(2, 0))
		require.Equal(t, []int{1, 2, 3}, src)
	})

	t.Run(`pairs are one based`, func(t *testing.T) {
		type field struct{ id int }
		list := New([]field{{id: 7}, {id: 3}, {id: 9}})
		require.Nil(t, list.Move(2, 0))
		require.Equal(t, [][2]int{{9, 1}, {7, 2}, {3, 3}}, Pairs(list, func(f field) int { return f.id }))
	})
}
