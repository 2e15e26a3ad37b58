/*
Package rbtree implements a red-black binary search tree with pluggable
per-node augmentation.

The tree keeps the classical red-black balance guarantees, giving O(log n)
insertion, deletion and lookup for arbitrary operation sequences. On top of
the plain ordered-key surface, every node carries one augmentation slot of a
caller-chosen type. The augmentation is recomputed bottom-up after every
structural change (rotation, transplant, fixup), which is what makes
order-statistics and interval-overlap extensions possible without touching
the balancing machinery. See the ostree and intervaltree packages for the two
canonical augmentations.

Trees are not safe for concurrent mutation; callers that share a tree across
goroutines must serialize access with a single lock per tree instance.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trees'
func tracer() tracing.Trace {
	return tracing.Select("trees")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
