package forward

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	bcoll "github.com/brynbellomy/go-forward/coll"
	"github.com/brynbellomy/go-forward/opt"
)

// Number is the set of element types Range can count over.
type Number interface {
	constraints.Integer | constraints.Float
}

// SliceSequence is a sequence over the elements of a slice, in slice order.
type SliceSequence[T any] struct {
	items []T
}

// From returns a sequence that borrows s. Cursors read s's backing array as
// they are pulled, so s must not be modified while any cursor over it is live.
func From[S ~[]T, T any](s S) SliceSequence[T] {
	return SliceSequence[T]{items: s}
}

// FromOwned returns a sequence over a copy of s. The caller may modify or
// discard s afterwards.
func FromOwned[S ~[]T, T any](s S) SliceSequence[T] {
	return SliceSequence[T]{items: slices.Clone(s)}
}

// Of returns a sequence over a copy of the given values.
func Of[T any](values ...T) SliceSequence[T] {
	return FromOwned(values)
}

// Empty returns a sequence with no elements.
func Empty[T any]() SliceSequence[T] {
	return SliceSequence[T]{}
}

// FromSet returns a sequence over a snapshot of the members of s, in no
// particular order.
func FromSet[T comparable](s Set[T]) SliceSequence[T] {
	return SliceSequence[T]{items: s.Slice()}
}

// FromSortedSet returns a sequence over a snapshot of the members of s, in
// ascending order.
func FromSortedSet[T cmp.Ordered](s *bcoll.SortedSet[T]) SliceSequence[T] {
	return SliceSequence[T]{items: s.Slice()}
}

func (s SliceSequence[T]) Cursor() Cursor[T] {
	return &SliceCursor[T]{items: s.items}
}

func (s SliceSequence[T]) Len() int {
	return len(s.items)
}

// SliceCursor yields the elements of a slice front to back.
type SliceCursor[T any] struct {
	items []T
	pos   int
}

func (c *SliceCursor[T]) Pull() opt.Opt[T] {
	if c.pos >= len(c.items) {
		return opt.None[T]()
	}
	v := c.items[c.pos]
	c.pos++
	return opt.Some(v)
}

// RangeSequence is the half-open arithmetic progression start, start+1, ...
// up to but excluding end.
type RangeSequence[N Number] struct {
	start N
	end   N
}

// Range returns the sequence [start, endExclusive) counting up by one. If
// start >= endExclusive the sequence is empty.
func Range[N Number](start, endExclusive N) RangeSequence[N] {
	return RangeSequence[N]{start: start, end: endExclusive}
}

func (r RangeSequence[N]) Cursor() Cursor[N] {
	return &RangeCursor[N]{current: r.start, end: r.end}
}

// Len is the number of elements the range yields. For floating-point
// ranges it is an upper bound: counting stops early once adding one no
// longer changes the value.
func (r RangeSequence[N]) Len() int {
	if !(r.start < r.end) {
		return 0
	}
	var half N = 1
	half /= 2
	if half != 0 {
		n := math.Ceil(float64(r.end) - float64(r.start))
		if n >= math.MaxInt {
			return math.MaxInt
		}
		return int(n)
	}
	// modular distance is exact for every integer type, signed or not
	n := uint64(int64(r.end)) - uint64(int64(r.start))
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// RangeCursor counts from its start value up to, but excluding, its end.
type RangeCursor[N Number] struct {
	current N
	end     N
	done    bool
}

func (c *RangeCursor[N]) Pull() opt.Opt[N] {
	// written as !(a < b) so a NaN bound ends the range instead of looping
	if c.done || !(c.current < c.end) {
		return opt.None[N]()
	}
	v := c.current
	c.current++
	if !(v < c.current) {
		// a float too large for +1 to register
		c.done = true
	}
	return opt.Some(v)
}
