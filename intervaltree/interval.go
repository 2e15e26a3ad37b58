package intervaltree

import (
	"cmp"
	"fmt"
)

// Interval is a closed interval [Low, High] over an ordered endpoint type.
type Interval[E cmp.Ordered] struct {
	Low  E
	High E
}

// MakeInterval builds an interval from two endpoints. Reversed endpoints
// (low > high) are normalized by swapping rather than rejected.
func MakeInterval[E cmp.Ordered](low, high E) Interval[E] {
	if low > high {
		tracer().Debugf("interval [%v, %v] is reversed, swapping endpoints", low, high)
		low, high = high, low
	}
	return Interval[E]{Low: low, High: high}
}

// Overlaps reports whether the two closed intervals share at least one
// point, i.e. iv.Low <= other.High && other.Low <= iv.High.
func (iv Interval[E]) Overlaps(other Interval[E]) bool {
	return iv.Low <= other.High && other.Low <= iv.High
}

// Contains reports whether point e lies within the closed interval.
func (iv Interval[E]) Contains(e E) bool {
	return iv.Low <= e && e <= iv.High
}

func (iv Interval[E]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Low, iv.High)
}

// compareIntervals orders by low endpoint, with the high endpoint breaking
// ties so that distinct intervals sharing a low endpoint can coexist.
func compareIntervals[E cmp.Ordered](a, b Interval[E]) int {
	if c := cmp.Compare(a.Low, b.Low); c != 0 {
		return c
	}
	return cmp.Compare(a.High, b.High)
}

// maxHigh is the subtree augmentation: the maximum high endpoint over all
// intervals of a subtree. OK is false only on the NIL sentinel, standing in
// for negative infinity without constraining the endpoint type.
type maxHigh[E cmp.Ordered] struct {
	Max E
	OK  bool
}

type maxHighAug[E cmp.Ordered] struct{}

func (maxHighAug[E]) Zero() maxHigh[E] { return maxHigh[E]{} }

func (maxHighAug[E]) Combine(key Interval[E], _ struct{}, left, right maxHigh[E]) maxHigh[E] {
	m := key.High
	if left.OK && left.Max > m {
		m = left.Max
	}
	if right.OK && right.Max > m {
		m = right.Max
	}
	return maxHigh[E]{Max: m, OK: true}
}
