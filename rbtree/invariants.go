package rbtree

import (
	"errors"
	"fmt"
)

// ErrInvariant signals a violated structural invariant, found by Check.
// A tree that fails Check is corrupt and must not be used further.
var ErrInvariant = errors.New("rbtree: invariant violated")

// Check validates the binary-search-tree order, the red-black invariants
// and, when equalAug is non-nil, the augmentation consistency of every node.
//
// This checker is intentionally strict and meant to be run from tests after
// every mutation; it traverses the whole tree.
func (t *Tree[K, V, A]) Check(equalAug func(a, b A) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if !t.sentinel.sent || t.sentinel.color != black {
		return fmt.Errorf("%w: sentinel must stay black", ErrInvariant)
	}
	if t.root.sent {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root, equalAug)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, count, t.size)
	}
	return nil
}

// checkNode recursively validates the subtree rooted at n and returns its
// node count and black-height.
func (t *Tree[K, V, A]) checkNode(n *Node[K, V, A], equalAug func(a, b A) bool) (count, blackHeight int, err error) {
	if n.sent {
		return 0, 1, nil
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariant, n.key)
	}
	if !n.left.sent {
		if n.left.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at %v", ErrInvariant, n.left.key)
		}
		if t.cfg.Compare(n.left.key, n.key) >= 0 {
			return 0, 0, fmt.Errorf("%w: BST order violated at %v", ErrInvariant, n.key)
		}
	}
	if !n.right.sent {
		if n.right.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at %v", ErrInvariant, n.right.key)
		}
		if t.cfg.Compare(n.right.key, n.key) <= 0 {
			return 0, 0, fmt.Errorf("%w: BST order violated at %v", ErrInvariant, n.key)
		}
	}
	lc, lbh, err := t.checkNode(n.left, equalAug)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := t.checkNode(n.right, equalAug)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black-height mismatch at %v (%d != %d)",
			ErrInvariant, n.key, lbh, rbh)
	}
	if equalAug != nil {
		want := t.cfg.Aug.Combine(n.key, n.value, n.left.aug, n.right.aug)
		if !equalAug(n.aug, want) {
			return 0, 0, fmt.Errorf("%w: stale augmentation at %v", ErrInvariant, n.key)
		}
	}
	if n.color == black {
		lbh++
	}
	return lc + rc + 1, lbh, nil
}
