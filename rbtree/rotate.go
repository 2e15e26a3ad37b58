package rbtree

// rotateLeft promotes x.right into x's position and makes x its left child;
// x.right's former left subtree becomes x's right subtree. BST order is
// preserved. Requires x.right to be a real node.
//
// The two relinked nodes get their augmentation recomputed child-first: the
// promoted node's value depends on x's already-corrected one. Nodes above
// the rotation site keep the same subtree contents and need no repair.
func (t *Tree[K, V, A]) rotateLeft(x *Node[K, V, A]) {
	y := x.right
	assert(!y.sent, "rotateLeft requires a right child")

	x.right = y.left
	if !y.left.sent {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent.sent {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y

	t.recompute(x)
	t.recompute(y)
}

// rotateRight is the mirror image of rotateLeft. Requires y.left to be a
// real node.
func (t *Tree[K, V, A]) rotateRight(y *Node[K, V, A]) {
	x := y.left
	assert(!x.sent, "rotateRight requires a left child")

	y.left = x.right
	if !x.right.sent {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent.sent {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x

	t.recompute(y)
	t.recompute(x)
}
