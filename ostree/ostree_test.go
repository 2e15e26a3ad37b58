package ostree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laplaceliu/learn-introduction-to-algorithms-sub000/rbtree"
)

func TestSelectAndRankScenario(t *testing.T) {
	keys := []int{26, 17, 41, 14, 21, 30, 47, 10, 16, 19, 21, 28, 38, 7, 12, 14, 20, 35, 39, 3}
	tree := New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}

	// set semantics: the duplicates 21 and 14 collapse
	sorted := slices.Compact(slices.Sorted(slices.Values(keys)))
	require.Equal(t, len(sorted), tree.Len())

	first, err := tree.Select(1)
	require.NoError(t, err)
	require.Equal(t, 3, first)

	r, err := tree.Rank(21)
	require.NoError(t, err)
	require.Equal(t, 1+slices.Index(sorted, 21), r)

	for i, want := range sorted {
		got, err := tree.Select(i + 1)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{4, 2, 6} {
		tree.Insert(k)
	}
	_, err := tree.Select(0)
	require.ErrorIs(t, err, ErrRankOutOfRange)
	_, err = tree.Select(tree.Len() + 1)
	require.ErrorIs(t, err, ErrRankOutOfRange)

	empty := New[int]()
	_, err = empty.Select(1)
	require.ErrorIs(t, err, ErrRankOutOfRange)
}

func TestRankAbsentKey(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	_, err := tree.Rank(2)
	require.ErrorIs(t, err, rbtree.ErrKeyNotFound)
}

func TestMinMaxForwarding(t *testing.T) {
	tree := New[string]()
	_, err := tree.Min()
	require.ErrorIs(t, err, rbtree.ErrEmptyTree)

	for _, s := range []string{"pear", "apple", "quince"} {
		tree.Insert(s)
	}
	min, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, "apple", min)
	max, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, "quince", max)
	require.Equal(t, []string{"apple", "pear", "quince"},
		slices.Collect(tree.All()))
}

// TestRankSelectRoundTrip checks the defining identity of the two queries,
// Rank(Select(i)) == i, across a random insert/delete history.
func TestRankSelectRoundTrip(t *testing.T) {
	tree := New[int]()
	model := make(map[int]bool)
	r := rand.New(rand.NewSource(271828))

	verify := func() {
		t.Helper()
		require.Equal(t, len(model), tree.Len())
		for i := 1; i <= tree.Len(); i++ {
			k, err := tree.Select(i)
			require.NoError(t, err)
			rank, err := tree.Rank(k)
			require.NoError(t, err)
			require.Equal(t, i, rank, "Rank(Select(%d)) diverged", i)
		}
	}

	for i := 0; i < 2000; i++ {
		key := r.Intn(150)
		if r.Intn(3) == 0 {
			require.Equal(t, model[key], tree.Delete(key))
			delete(model, key)
		} else {
			tree.Insert(key)
			model[key] = true
		}
		if i%97 == 0 {
			verify()
		}
	}
	verify()

	// Select must agree with the sorted model, position by position.
	sorted := make([]int, 0, len(model))
	for k := range model {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for i, want := range sorted {
		got, err := tree.Select(i + 1)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDuplicateInsertIsNoop(t *testing.T) {
	tree := New[int]()
	tree.Insert(5)
	tree.Insert(5)
	require.Equal(t, 1, tree.Len())
	require.True(t, tree.Contains(5))
	require.True(t, tree.Delete(5))
	require.False(t, tree.Delete(5))
	require.Equal(t, 0, tree.Len())
}
