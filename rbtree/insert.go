package rbtree

// Insert adds key with its value to the tree. Inserting a key that is
// already present overwrites the stored value and leaves the tree structure
// untouched.
func (t *Tree[K, V, A]) Insert(key K, value V) {
	y := t.sentinel
	x := t.root
	for !x.sent {
		y = x
		c := t.cfg.Compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			x.value = value
			// The value may feed the augmentation, so the path to the
			// root still needs a refresh.
			t.recomputeUp(x)
			return
		}
	}

	z := &Node[K, V, A]{
		key:    key,
		value:  value,
		color:  red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: y,
	}
	z.aug = t.cfg.Aug.Combine(key, value, t.sentinel.aug, t.sentinel.aug)
	if y.sent {
		t.root = z
	} else if t.cfg.Compare(key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}
	t.size++

	// Bottom-up augmentation walk for the new leaf's ancestors; the fixup
	// below repairs its rotation sites locally.
	t.recomputeUp(y)
	t.insertFixup(z)
}

// insertFixup restores the red-black invariants after linking in the red
// node z. The only possible violation is a red z under a red parent; the
// loop moves it upward via uncle recolorings and clears it with at most two
// rotations.
func (t *Tree[K, V, A]) insertFixup(z *Node[K, V, A]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					// zig-zag: straighten before the terminal rotation
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}
