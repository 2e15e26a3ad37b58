package rbtree

type color bool

const (
	red   color = true
	black color = false
)

// Node is one element of a red-black tree.
//
// Extension packages navigate nodes through the read-only accessors below;
// all mutation goes through Tree. Child links are owning edges, the parent
// link is a plain back-reference. Every tree shares a single NIL sentinel
// node for "no child"/"no parent", so walking code never sees nil pointers;
// use Nil to detect it.
type Node[K, V, A any] struct {
	key    K
	value  V
	aug    A
	left   *Node[K, V, A]
	right  *Node[K, V, A]
	parent *Node[K, V, A]
	color  color
	sent   bool
}

// Key returns the node's key.
func (n *Node[K, V, A]) Key() K { return n.key }

// Value returns the node's stored value.
func (n *Node[K, V, A]) Value() V { return n.value }

// Aug returns the node's augmentation value. On the NIL sentinel this is the
// augmentation's Zero.
func (n *Node[K, V, A]) Aug() A { return n.aug }

// Left returns the left child, possibly the NIL sentinel.
func (n *Node[K, V, A]) Left() *Node[K, V, A] { return n.left }

// Right returns the right child, possibly the NIL sentinel.
func (n *Node[K, V, A]) Right() *Node[K, V, A] { return n.right }

// Parent returns the parent, or the NIL sentinel for the root.
func (n *Node[K, V, A]) Parent() *Node[K, V, A] { return n.parent }

// Nil reports whether n is the shared NIL sentinel (or a nil pointer).
func (n *Node[K, V, A]) Nil() bool { return n == nil || n.sent }

// min returns the leftmost node of the subtree rooted at n.
// Requires n to be a real node.
func (n *Node[K, V, A]) min() *Node[K, V, A] {
	for !n.left.sent {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
// Requires n to be a real node.
func (n *Node[K, V, A]) max() *Node[K, V, A] {
	for !n.right.sent {
		n = n.right
	}
	return n
}
