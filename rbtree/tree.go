package rbtree

import (
	"fmt"
	"iter"
)

// Config configures an augmented red-black tree.
type Config[K, V, A any] struct {
	// Compare is a trichotomic key ordering: negative for a < b, zero for
	// a == b, positive for a > b.
	Compare func(a, b K) int
	// Aug maintains the per-subtree bookkeeping; use None for plain
	// red-black usage.
	Aug Augmentation[K, V, A]
}

func (cfg Config[K, V, A]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Aug == nil {
		return fmt.Errorf("%w: augmentation is required", ErrInvalidConfig)
	}
	return nil
}

// Tree is a self-balancing binary search tree with per-node augmentation.
//
// The zero value is not usable; create trees with New. Trees are not safe
// for concurrent mutation.
type Tree[K, V, A any] struct {
	cfg      Config[K, V, A]
	sentinel *Node[K, V, A]
	root     *Node[K, V, A]
	size     int
}

// New creates an empty tree with validated configuration.
func New[K, V, A any](cfg Config[K, V, A]) (*Tree[K, V, A], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	// One shared NIL sentinel per tree: always black, carries the
	// augmentation's Zero, and points at itself so navigation never
	// dereferences a nil pointer.
	sentinel := &Node[K, V, A]{color: black, sent: true, aug: cfg.Aug.Zero()}
	sentinel.left, sentinel.right, sentinel.parent = sentinel, sentinel, sentinel
	return &Tree[K, V, A]{
		cfg:      cfg,
		sentinel: sentinel,
		root:     sentinel,
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V, A]) Config() Config[K, V, A] {
	return t.cfg
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V, A]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, V, A]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// Root returns the root node, or the NIL sentinel for an empty tree.
// Extension packages use it as the entry point for augmented descents.
func (t *Tree[K, V, A]) Root() *Node[K, V, A] {
	return t.root
}

// Find returns the node holding key, or the NIL sentinel when the key is
// absent; check with Node.Nil.
func (t *Tree[K, V, A]) Find(key K) *Node[K, V, A] {
	x := t.root
	for !x.sent {
		c := t.cfg.Compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return t.sentinel
}

// Get returns the value stored under key.
func (t *Tree[K, V, A]) Get(key K) (V, bool) {
	x := t.Find(key)
	if x.sent {
		var zero V
		return zero, false
	}
	return x.value, true
}

// Contains reports whether key is in the tree.
func (t *Tree[K, V, A]) Contains(key K) bool {
	return !t.Find(key).sent
}

// Min returns the smallest key, or ErrEmptyTree for an empty tree.
func (t *Tree[K, V, A]) Min() (K, error) {
	if t.root.sent {
		var zero K
		return zero, fmt.Errorf("%w: no minimum", ErrEmptyTree)
	}
	return t.root.min().key, nil
}

// Max returns the largest key, or ErrEmptyTree for an empty tree.
func (t *Tree[K, V, A]) Max() (K, error) {
	if t.root.sent {
		var zero K
		return zero, fmt.Errorf("%w: no maximum", ErrEmptyTree)
	}
	return t.root.max().key, nil
}

// All returns an in-order iterator over all key/value pairs. The iterator is
// restartable; it snapshots nothing, so the tree must not be mutated while
// iterating.
func (t *Tree[K, V, A]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.inorder(t.root, yield)
	}
}

func (t *Tree[K, V, A]) inorder(n *Node[K, V, A], yield func(K, V) bool) bool {
	if n.sent {
		return true
	}
	return t.inorder(n.left, yield) && yield(n.key, n.value) && t.inorder(n.right, yield)
}

// Clear removes all nodes. Parent links are plain back-references, so the
// released subtree forms no cycle and is collected as a whole.
func (t *Tree[K, V, A]) Clear() {
	tracer().Debugf("rbtree: clearing %d nodes", t.size)
	t.root = t.sentinel
	t.size = 0
}

// recompute refreshes x's augmentation from its current children.
func (t *Tree[K, V, A]) recompute(x *Node[K, V, A]) {
	x.aug = t.cfg.Aug.Combine(x.key, x.value, x.left.aug, x.right.aug)
}

// recomputeUp refreshes augmentations from x up to the root. Called with the
// lowest node whose child set changed; rotations repair their two relinked
// nodes themselves, so this walk is only needed for insert and transplant
// paths.
func (t *Tree[K, V, A]) recomputeUp(x *Node[K, V, A]) {
	for !x.sent {
		t.recompute(x)
		x = x.parent
	}
}
