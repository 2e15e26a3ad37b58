package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrEmptyTree signals a query that needs at least one node.
	ErrEmptyTree = errors.New("rbtree: empty tree")
	// ErrKeyNotFound signals a lookup for a key that is not in the tree.
	ErrKeyNotFound = errors.New("rbtree: key not found")
)
