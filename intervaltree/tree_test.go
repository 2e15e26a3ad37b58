package intervaltree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildScenarioTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for _, iv := range [][2]int{
		{16, 21}, {8, 9}, {25, 30}, {5, 8}, {15, 23},
		{17, 19}, {26, 26}, {0, 3}, {6, 10}, {19, 20},
	} {
		tree.Insert(iv[0], iv[1])
	}
	return tree
}

func TestSearchScenario(t *testing.T) {
	tree := buildScenarioTree(t)
	require.Equal(t, 10, tree.Len())

	hit, ok := tree.Search(22, 25)
	require.True(t, ok)
	// both [15,23] and [25,30] legitimately overlap [22,25]
	require.Contains(t, []Interval[int]{{15, 23}, {25, 30}}, hit)
	require.True(t, hit.Overlaps(Interval[int]{22, 25}))

	_, ok = tree.Search(31, 35)
	require.False(t, ok, "nothing overlaps [31,35]")

	hit, ok = tree.Search(26, 26)
	require.True(t, ok)
	require.True(t, hit.Overlaps(Interval[int]{26, 26}))
}

func TestExactDelete(t *testing.T) {
	tree := buildScenarioTree(t)
	require.False(t, tree.Delete(16, 22), "only exact endpoint matches delete")
	require.True(t, tree.Delete(16, 21))
	require.False(t, tree.Delete(16, 21), "second delete must report absence")
	require.Equal(t, 9, tree.Len())
	require.False(t, tree.Contains(16, 21))
	require.True(t, tree.Contains(17, 19))
}

func TestReversedEndpointsAreNormalized(t *testing.T) {
	tree := New[int]()
	tree.Insert(10, 5)
	require.True(t, tree.Contains(5, 10))
	hit, ok := tree.Search(9, 9)
	require.True(t, ok)
	require.Equal(t, Interval[int]{5, 10}, hit)
	require.False(t, tree.Delete(7, 8))
	require.True(t, tree.Delete(10, 5), "reversed delete must normalize too")
}

func TestSameLowEndpointCoexists(t *testing.T) {
	tree := New[int]()
	tree.Insert(5, 8)
	tree.Insert(5, 12)
	tree.Insert(5, 8) // duplicate, ignored
	require.Equal(t, 2, tree.Len())
	require.Equal(t, []Interval[int]{{5, 8}, {5, 12}}, slices.Collect(tree.All()))
	require.True(t, tree.Delete(5, 12))
	require.True(t, tree.Contains(5, 8))
}

func TestStab(t *testing.T) {
	tree := buildScenarioTree(t)
	require.Equal(t, []Interval[int]{{5, 8}, {6, 10}, {8, 9}}, tree.Stab(8))
	require.Empty(t, tree.Stab(24))
	require.Equal(t, []Interval[int]{{15, 23}, {16, 21}, {19, 20}}, tree.Stab(20))
}

func TestFloatEndpoints(t *testing.T) {
	tree := New[float64]()
	tree.Insert(0.5, 1.5)
	tree.Insert(2.25, 3.0)
	hit, ok := tree.Search(1.4, 2.0)
	require.True(t, ok)
	require.Equal(t, Interval[float64]{0.5, 1.5}, hit)
	_, ok = tree.Search(1.75, 2.0)
	require.False(t, ok)
}

// TestRandomizedSearch cross-checks the pruned overlap search against a
// linear scan over a model slice, for random mutation histories.
func TestRandomizedSearch(t *testing.T) {
	r := rand.New(rand.NewSource(31415))
	tree := New[int]()
	var model []Interval[int]

	find := func(iv Interval[int]) int {
		return slices.Index(model, iv)
	}

	for i := 0; i < 3000; i++ {
		low := r.Intn(100)
		high := low + r.Intn(20)
		iv := Interval[int]{low, high}
		if r.Intn(4) == 0 {
			got := tree.Delete(low, high)
			if j := find(iv); j >= 0 {
				require.True(t, got, "op %d: stored %v not deleted", i, iv)
				model = slices.Delete(model, j, j+1)
			} else {
				require.False(t, got, "op %d: deleted absent %v", i, iv)
			}
		} else {
			tree.Insert(low, high)
			if find(iv) < 0 {
				model = append(model, iv)
			}
		}
		require.Equal(t, len(model), tree.Len())

		// a random stabbing query per mutation
		qlow := r.Intn(120)
		q := Interval[int]{qlow, qlow + r.Intn(10)}
		hit, ok := tree.Search(q.Low, q.High)
		anyOverlap := slices.ContainsFunc(model, q.Overlaps)
		require.Equal(t, anyOverlap, ok, "op %d: search %v diverged from model", i, q)
		if ok {
			require.True(t, hit.Overlaps(q), "op %d: search returned non-overlapping %v", i, hit)
			require.GreaterOrEqual(t, find(hit), 0, "op %d: search fabricated %v", i, hit)
		}
	}
}

// TestMaxHighMaintained verifies the max-endpoint augmentation formula on
// every node after every mutation.
func TestMaxHighMaintained(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	tree := New[int]()
	equal := func(a, b maxHigh[int]) bool { return a == b }
	stored := make([][2]int, 0, 64)
	for i := 0; i < 800; i++ {
		if r.Intn(3) > 0 || len(stored) == 0 {
			low := r.Intn(50)
			high := low + r.Intn(50)
			tree.Insert(low, high)
			stored = append(stored, [2]int{low, high})
		} else {
			j := r.Intn(len(stored))
			tree.Delete(stored[j][0], stored[j][1])
			stored = slices.Delete(stored, j, j+1)
		}
		require.NoError(t, tree.rb.Check(equal))
	}
}

func TestMakeInterval(t *testing.T) {
	iv := MakeInterval(3, 1)
	require.Equal(t, Interval[int]{1, 3}, iv)
	require.True(t, iv.Contains(2))
	require.False(t, iv.Contains(4))
	require.Equal(t, "[1, 3]", iv.String())
}
