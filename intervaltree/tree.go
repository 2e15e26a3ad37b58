package intervaltree

import (
	"cmp"
	"iter"

	"github.com/laplaceliu/learn-introduction-to-algorithms-sub000/rbtree"
)

// Tree is an interval tree over a totally ordered endpoint type.
//
// Stored intervals form a set keyed by the (low, high) pair: inserting an
// interval that is already present is a no-op, and Delete matches exactly.
// The tree is not safe for concurrent mutation.
type Tree[E cmp.Ordered] struct {
	rb *rbtree.Tree[Interval[E], struct{}, maxHigh[E]]
}

// New creates an empty interval tree.
func New[E cmp.Ordered]() *Tree[E] {
	rb, err := rbtree.New(rbtree.Config[Interval[E], struct{}, maxHigh[E]]{
		Compare: compareIntervals[E],
		Aug:     maxHighAug[E]{},
	})
	assert(err == nil, "intervaltree: cannot create max-augmented tree")
	return &Tree[E]{rb: rb}
}

// Insert adds the closed interval [low, high] to the tree. Reversed
// endpoints are normalized by swapping; duplicates are ignored.
func (t *Tree[E]) Insert(low, high E) {
	t.rb.Insert(MakeInterval(low, high), struct{}{})
}

// Delete removes the interval that matches [low, high] exactly and reports
// whether it was present. The lookup is a plain BST descent by (low, high);
// the max-endpoint augmentation plays no part in it.
func (t *Tree[E]) Delete(low, high E) bool {
	return t.rb.Delete(MakeInterval(low, high))
}

// Contains reports whether the exact interval [low, high] is stored.
func (t *Tree[E]) Contains(low, high E) bool {
	return t.rb.Contains(MakeInterval(low, high))
}

// Len returns the number of stored intervals.
func (t *Tree[E]) Len() int {
	return t.rb.Len()
}

// All returns a restartable iterator over all intervals, ordered by low
// endpoint (ties by high endpoint).
func (t *Tree[E]) All() iter.Seq[Interval[E]] {
	return func(yield func(Interval[E]) bool) {
		for iv := range t.rb.All() {
			if !yield(iv) {
				return
			}
		}
	}
}

// Search returns any one stored interval overlapping the closed query
// interval [qlow, qhigh], or false when nothing overlaps.
//
// The descent follows the classical pruning rule: if the left subtree's
// maximum high endpoint reaches the query's low endpoint, an overlap exists
// in the left subtree or nowhere to the left at all, so going left is safe;
// otherwise only the right subtree can contain a hit.
func (t *Tree[E]) Search(qlow, qhigh E) (Interval[E], bool) {
	q := MakeInterval(qlow, qhigh)
	x := t.rb.Root()
	for !x.Nil() {
		if x.Key().Overlaps(q) {
			return x.Key(), true
		}
		if left := x.Left(); !left.Nil() && left.Aug().Max >= q.Low {
			x = left
		} else {
			x = x.Right()
		}
	}
	return Interval[E]{}, false
}

// Stab returns all stored intervals containing the point e, ordered by low
// endpoint. It runs in O(k log n) for k hits, restarting the pruned descent
// below each one.
func (t *Tree[E]) Stab(e E) []Interval[E] {
	var hits []Interval[E]
	t.stab(t.rb.Root(), e, &hits)
	return hits
}

func (t *Tree[E]) stab(x *rbtree.Node[Interval[E], struct{}, maxHigh[E]], e E, hits *[]Interval[E]) {
	if x.Nil() {
		return
	}
	// Subtrees whose maximum high endpoint lies below e cannot contain e.
	if left := x.Left(); left.Aug().OK && left.Aug().Max >= e {
		t.stab(left, e, hits)
	}
	if x.Key().Contains(e) {
		*hits = append(*hits, x.Key())
	}
	if x.Key().Low <= e {
		t.stab(x.Right(), e, hits)
	}
}
