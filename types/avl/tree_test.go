package avl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderbooklabs/clob-engine/types/avl"
)

func TestTreeAddFindRemove(t *testing.T) {
	tree := avl.NewOrderedTree[int, string]()

	_, err := tree.Add(10, "ten")
	require.NoError(t, err)
	_, err = tree.Add(5, "five")
	require.NoError(t, err)
	_, err = tree.Add(15, "fifteen")
	require.NoError(t, err)
	require.Equal(t, 3, tree.Size())

	node := tree.Find(5)
	require.NotNil(t, node)
	require.Equal(t, "five", node.Value())

	require.True(t, tree.Contains(15))
	require.False(t, tree.Contains(99))

	v, err := tree.Remove(10)
	require.NoError(t, err)
	require.Equal(t, "ten", v)
	require.Equal(t, 2, tree.Size())
	require.Nil(t, tree.Find(10))
}

func TestTreeDuplicateKeyRejected(t *testing.T) {
	tree := avl.NewOrderedTree[int, string]()
	_, err := tree.Add(1, "a")
	require.NoError(t, err)
	_, err = tree.Add(1, "b")
	require.ErrorIs(t, err, avl.ErrNodeDuplicate)
}

func TestTreeRemoveMissingKey(t *testing.T) {
	tree := avl.NewOrderedTree[int, string]()
	_, err := tree.Remove(1)
	require.ErrorIs(t, err, avl.ErrNodeNotFound)

	_, err = tree.Add(1, "a")
	require.NoError(t, err)
	_, err = tree.Remove(2)
	require.ErrorIs(t, err, avl.ErrNodeNotFound)
}

func TestTreeMostLeftMostRightTrackBestPrices(t *testing.T) {
	tree := avl.NewOrderedTree[int, string]()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		_, err := tree.Add(key, "")
		require.NoError(t, err)
	}
	require.Equal(t, 20, tree.MostLeft().Key())
	require.Equal(t, 80, tree.MostRight().Key())

	_, err := tree.Remove(20)
	require.NoError(t, err)
	require.Equal(t, 30, tree.MostLeft().Key())

	_, err = tree.Remove(80)
	require.NoError(t, err)
	require.Equal(t, 70, tree.MostRight().Key())
}

func TestTreeIterateInOrderIsSorted(t *testing.T) {
	tree := avl.NewOrderedTree[int, int]()
	keys := []int{42, 7, 19, 3, 88, 23, 1}
	for _, k := range keys {
		_, err := tree.Add(k, k*10)
		require.NoError(t, err)
	}

	var seen []int
	tree.IterateInOrder(func(v int) bool {
		seen = append(seen, v)
		return false
	})
	require.Equal(t, []int{10, 30, 70, 190, 230, 420, 880}, seen)
}

func TestTreeIterateInOrderStopsEarly(t *testing.T) {
	tree := avl.NewOrderedTree[int, int]()
	for _, k := range []int{1, 2, 3, 4, 5} {
		_, err := tree.Add(k, k)
		require.NoError(t, err)
	}

	var seen []int
	tree.IterateInOrder(func(v int) bool {
		seen = append(seen, v)
		return v == 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestTreeClear(t *testing.T) {
	tree := avl.NewOrderedTree[int, int]()
	_, err := tree.Add(1, 1)
	require.NoError(t, err)
	_, err = tree.Add(2, 2)
	require.NoError(t, err)

	tree.Clear()
	require.Equal(t, 0, tree.Size())
	require.Nil(t, tree.MostLeft())
	require.Nil(t, tree.MostRight())
	require.False(t, tree.Contains(1))
}

func TestTreeDescendingComparatorForBidLadder(t *testing.T) {
	// Bid ladders walk best price first, i.e. descending order, so the
	// comparator is inverted relative to the natural ordered comparator.
	tree := avl.NewTree[int, int](func(a, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	for _, k := range []int{100, 105, 95, 110} {
		_, err := tree.Add(k, k)
		require.NoError(t, err)
	}
	require.Equal(t, 110, tree.MostLeft().Key())
	require.Equal(t, 95, tree.MostRight().Key())

	var seen []int
	tree.IterateInOrder(func(v int) bool {
		seen = append(seen, v)
		return false
	})
	require.Equal(t, []int{110, 105, 100, 95}, seen)
}
