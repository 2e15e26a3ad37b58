package rbtree

// Augmentation maintains one scalar of per-subtree bookkeeping on every node.
//
// For augmentation values a, the tree guarantees that after every public
// operation each node stores
//
//	Combine(key, value, left.Aug(), right.Aug())
//
// where left/right are the node's children and the NIL sentinel stores
// Zero(). Combine must be a pure function of its arguments and must not walk
// the tree itself; the core calls it bottom-up along every changed path and
// on both endpoints of every rotation.
type Augmentation[K, V, A any] interface {
	// Zero is the augmentation value of the NIL sentinel.
	Zero() A
	// Combine recomputes a node's augmentation from the node's own key and
	// value and the current augmentation values of its two children.
	Combine(key K, value V, left, right A) A
}

// None is the trivial augmentation for plain red-black usage.
type None[K, V any] struct{}

func (None[K, V]) Zero() struct{} { return struct{}{} }

func (None[K, V]) Combine(K, V, struct{}, struct{}) struct{} { return struct{}{} }
