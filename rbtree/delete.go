package rbtree

// Delete removes key from the tree and reports whether it was present.
// Deleting an absent key leaves the tree untouched.
func (t *Tree[K, V, A]) Delete(key K) bool {
	z := t.Find(key)
	if z.sent {
		return false
	}
	t.deleteNode(z)
	return true
}

// DeleteMin removes and returns the smallest key, or ErrEmptyTree.
func (t *Tree[K, V, A]) DeleteMin() (K, error) {
	if t.root.sent {
		var zero K
		return zero, ErrEmptyTree
	}
	z := t.root.min()
	t.deleteNode(z)
	return z.key, nil
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// v may be the sentinel; its parent pointer is set regardless, since the
// delete fixup navigates upward from v.
func (t *Tree[K, V, A]) transplant(u, v *Node[K, V, A]) {
	if u.parent.sent {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteNode detaches exactly the node z (or moves z's in-order successor
// into its place) following the CLRS protocol, refreshes augmentations along
// the spliced path, and runs the delete fixup when a black node left the
// tree.
func (t *Tree[K, V, A]) deleteNode(z *Node[K, V, A]) {
	y := z
	removedColor := y.color
	var x *Node[K, V, A]
	switch {
	case z.left.sent:
		x = z.right
		t.transplant(z, z.right)
	case z.right.sent:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = z.right.min() // in-order successor, has no left child
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.size--

	// x.parent is the lowest node whose child set changed; walking up from
	// there covers y's new position as well.
	t.recomputeUp(x.parent)

	if removedColor == black {
		t.deleteFixup(x)
	}

	// z is the one node that leaves the tree; drop its links so a stale
	// reference cannot keep the whole subtree alive.
	z.left, z.right, z.parent = nil, nil, nil
}

// deleteFixup restores the black-height invariant. x carries an extra unit
// of blackness ("doubly black"); the loop pushes it upward or discharges it
// through the four sibling cases, each resolved by recolorings and at most
// one rotation per case.
func (t *Tree[K, V, A]) deleteFixup(x *Node[K, V, A]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				// red sibling: rotate to get a black one
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				// both nephews black: push the deficiency upward
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					// near red nephew: straighten toward the far side
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				// far red nephew: terminal rotation absorbs the deficiency
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
