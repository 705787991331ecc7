package forward

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	bcoll "github.com/brynbellomy/go-forward/coll"
	"github.com/brynbellomy/go-forward/errors"
	"github.com/brynbellomy/go-forward/opt"
)

// Addable is the set of element types SumFrom can add with +.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// maxPrealloc caps the capacity ToSlice reserves from a length hint, so a
// huge range only allocates as it is actually drained.
const maxPrealloc = 1 << 16

// each pulls a fresh cursor over seq until it is exhausted or fn returns false.
func each[T any](seq Sequence[T], fn func(T) bool) {
	c := seq.Cursor()
	for {
		v, ok := c.Pull().Get()
		if !ok || !fn(v) {
			return
		}
	}
}

// ToSlice drains seq into a slice, in pull order. An empty sequence yields an
// empty, non-nil slice.
func ToSlice[T any](seq Sequence[T]) []T {
	out := make([]T, 0, min(lenHint(seq), maxPrealloc))
	each(seq, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ToSet drains seq into a Set. Duplicates collapse.
func ToSet[T comparable](seq Sequence[T]) Set[T] {
	out := NewSet[T]()
	each(seq, func(v T) bool {
		out.Add(v)
		return true
	})
	return out
}

// ToSortedSet drains seq into a SortedSet, which iterates in ascending order.
func ToSortedSet[T cmp.Ordered](seq Sequence[T]) *bcoll.SortedSet[T] {
	out := bcoll.NewSortedSet[T]()
	each(seq, func(v T) bool {
		out.Insert(v)
		return true
	})
	return out
}

// Distinct drains seq and returns a sequence over its unique elements. The
// order of the result is unspecified. Because it drains eagerly, Distinct is
// not lazy: seq is fully evaluated when Distinct is called.
func Distinct[T comparable](seq Sequence[T]) SliceSequence[T] {
	return FromSet(ToSet(seq))
}

// DistinctStable is like Distinct but keeps the first occurrence of each
// element in its original position relative to the others.
func DistinctStable[T comparable](seq Sequence[T]) SliceSequence[T] {
	seen := bcoll.NewInsertionOrderedSet[T]()
	each(seq, func(v T) bool {
		seen.Add(v)
		return true
	})
	return SliceSequence[T]{items: seen.Elements()}
}

// OrderBy drains seq and sorts it ascending by key. The sort is not stable:
// elements with equal keys may come out in any order. Use OrderByStable when
// their relative order matters.
func OrderBy[T any, K cmp.Ordered](seq Sequence[T], key func(T) K) []T {
	out := ToSlice(seq)
	slices.SortFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// OrderByStable drains seq and sorts it ascending by key, keeping elements
// with equal keys in pull order.
func OrderByStable[T any, K cmp.Ordered](seq Sequence[T], key func(T) K) []T {
	out := ToSlice(seq)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// OrderByDescending drains seq and sorts it descending by key, keeping
// elements with equal keys in pull order.
func OrderByDescending[T any, K cmp.Ordered](seq Sequence[T], key func(T) K) []T {
	out := ToSlice(seq)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	return out
}

// SumFrom adds every element of seq onto zero, left to right. An empty
// sequence returns zero unchanged.
func SumFrom[T Addable](seq Sequence[T], zero T) T {
	return Fold(seq, zero, func(acc T, v T) T { return acc + v })
}

// Fold combines the elements of seq left to right, starting from zero.
func Fold[T, A any](seq Sequence[T], zero A, fn func(A, T) A) A {
	acc := zero
	each(seq, func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc
}

// ForEach calls fn on every element of seq, in pull order.
func ForEach[T any](seq Sequence[T], fn func(T)) {
	each(seq, func(v T) bool {
		fn(v)
		return true
	})
}

// Count drains seq and returns how many elements it yielded.
func Count[T any](seq Sequence[T]) int {
	n := 0
	each(seq, func(T) bool {
		n++
		return true
	})
	return n
}

// IsEmpty reports whether seq has no elements. It pulls at most once.
func IsEmpty[T any](seq Sequence[T]) bool {
	return !seq.Cursor().Pull().IsPresent()
}

// Any reports whether some element satisfies pred. It stops pulling at the
// first match.
func Any[T any](seq Sequence[T], pred func(T) bool) bool {
	found := false
	each(seq, func(v T) bool {
		found = pred(v)
		return !found
	})
	return found
}

// Every reports whether all elements satisfy pred. It stops pulling at the
// first element that does not. An empty sequence satisfies every predicate.
func Every[T any](seq Sequence[T], pred func(T) bool) bool {
	ok := true
	each(seq, func(v T) bool {
		ok = pred(v)
		return ok
	})
	return ok
}

// FirstOpt returns the first element of seq, or an absent Opt if seq is
// empty. It pulls at most once.
func FirstOpt[T any](seq Sequence[T]) opt.Opt[T] {
	return seq.Cursor().Pull()
}

// First returns the first element of seq, or an error wrapping
// errors.ErrEmpty.
func First[T any](seq Sequence[T]) (T, error) {
	v, ok := FirstOpt(seq).Get()
	if !ok {
		return v, errors.WithStack(errors.ErrEmpty)
	}
	return v, nil
}

// Single returns the only element of seq. It fails with errors.ErrEmpty if
// seq is empty and with errors.ErrMultiple if it has a second element; it
// never pulls more than two.
func Single[T any](seq Sequence[T]) (T, error) {
	c := seq.Cursor()
	v, ok := c.Pull().Get()
	if !ok {
		return v, errors.WithStack(errors.ErrEmpty)
	}
	if c.Pull().IsPresent() {
		var zero T
		return zero, errors.WithStack(errors.ErrMultiple)
	}
	return v, nil
}

// ElementAt returns the element at zero-based position i, or an error wrapping
// errors.ErrOutOfRange.
func ElementAt[T any](seq Sequence[T], i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, errors.Wrapf(errors.ErrOutOfRange, "negative index %d", i)
	}
	c := seq.Cursor()
	for n := 0; ; n++ {
		v, ok := c.Pull().Get()
		if !ok {
			return zero, errors.Wrapf(errors.ErrOutOfRange, "index %d, sequence has %d elements", i, n)
		}
		if n == i {
			return v, nil
		}
	}
}
