/*
Package intervaltree implements an interval tree: a set of closed intervals
[low, high] that answers overlap queries ("any one stored interval
intersecting this query") in O(log n).

Intervals are kept in a red-black tree from the rbtree package, ordered by
low endpoint; the augmentation slot holds the maximum high endpoint of each
subtree, which lets the overlap search prune whole subtrees that cannot
contain a hit.
*/
package intervaltree

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
