package ostree

import (
	"cmp"
	"errors"
	"fmt"
	"iter"

	"github.com/laplaceliu/learn-introduction-to-algorithms-sub000/rbtree"
)

// ErrRankOutOfRange signals a selection index outside [1, Len].
var ErrRankOutOfRange = errors.New("ostree: rank out of range")

// sizeAug maintains the number of nodes of every subtree.
type sizeAug[K cmp.Ordered] struct{}

func (sizeAug[K]) Zero() int { return 0 }

func (sizeAug[K]) Combine(_ K, _ struct{}, left, right int) int {
	return left + right + 1
}

// Tree is an order-statistics tree over a totally ordered key type.
//
// Keys form a set: inserting a key that is already present is a no-op. All
// operations run in O(log n). The tree is not safe for concurrent mutation.
type Tree[K cmp.Ordered] struct {
	rb *rbtree.Tree[K, struct{}, int]
}

// New creates an empty order-statistics tree.
func New[K cmp.Ordered]() *Tree[K] {
	rb, err := rbtree.New(rbtree.Config[K, struct{}, int]{
		Compare: cmp.Compare[K],
		Aug:     sizeAug[K]{},
	})
	assert(err == nil, "ostree: cannot create size-augmented tree")
	return &Tree[K]{rb: rb}
}

// Insert adds key to the set; duplicates are ignored.
func (t *Tree[K]) Insert(key K) {
	t.rb.Insert(key, struct{}{})
}

// Delete removes key and reports whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	return t.rb.Delete(key)
}

// Contains reports whether key is in the set.
func (t *Tree[K]) Contains(key K) bool {
	return t.rb.Contains(key)
}

// Len returns the number of keys.
func (t *Tree[K]) Len() int {
	return t.rb.Len()
}

// Min returns the smallest key, or rbtree.ErrEmptyTree.
func (t *Tree[K]) Min() (K, error) {
	return t.rb.Min()
}

// Max returns the largest key, or rbtree.ErrEmptyTree.
func (t *Tree[K]) Max() (K, error) {
	return t.rb.Max()
}

// All returns a restartable in-order iterator over all keys.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range t.rb.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Select returns the i-th smallest key, 1-based. Indices outside [1, Len]
// fail with ErrRankOutOfRange; on an empty tree every index does.
func (t *Tree[K]) Select(i int) (K, error) {
	if i < 1 || i > t.rb.Len() {
		var zero K
		return zero, fmt.Errorf("%w: %d not in [1, %d]", ErrRankOutOfRange, i, t.rb.Len())
	}
	x := t.rb.Root()
	for {
		assert(!x.Nil(), "ostree: size augmentation out of sync with tree")
		r := x.Left().Aug() + 1 // x's rank within its own subtree
		switch {
		case i == r:
			return x.Key(), nil
		case i < r:
			x = x.Left()
		default:
			x = x.Right()
			i -= r
		}
	}
}

// Rank returns the 1-based position of key in the sorted key sequence, or
// rbtree.ErrKeyNotFound for an absent key. Rank is the inverse of Select:
// Rank(Select(i)) == i for every valid i.
func (t *Tree[K]) Rank(key K) (int, error) {
	x := t.rb.Find(key)
	if x.Nil() {
		return 0, fmt.Errorf("%w: %v", rbtree.ErrKeyNotFound, key)
	}
	r := x.Left().Aug() + 1
	// Walk up to the root; everything left of a right-child hop precedes key.
	for y := x; !y.Parent().Nil(); y = y.Parent() {
		if y == y.Parent().Right() {
			r += y.Parent().Left().Aug() + 1
		}
	}
	return r, nil
}
