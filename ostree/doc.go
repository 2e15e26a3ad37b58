/*
Package ostree implements an order-statistics tree: an ordered set of keys
that answers selection ("the i-th smallest key") and rank ("the position of
this key") queries in O(log n).

The tree is a red-black tree from the rbtree package whose augmentation slot
holds the subtree size; the balancing machinery keeps the sizes consistent
through every rotation and transplant, so the extension only ever reads them.
*/
package ostree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
