package bcoll

import (
	"cmp"
	"fmt"
	"iter"
)

// SortedSet is a set of ordered values that iterates in ascending order.
type SortedSet[K cmp.Ordered] KeySortedMap[K, struct{}]

func NewSortedSet[K cmp.Ordered]() *SortedSet[K] {
	return &SortedSet[K]{}
}

func (ss *SortedSet[K]) inner() *KeySortedMap[K, struct{}] {
	return (*KeySortedMap[K, struct{}])(ss)
}

func (ss *SortedSet[K]) Clear() {
	ss.inner().Clear()
}

func (ss *SortedSet[K]) Len() int {
	return ss.inner().Len()
}

// Insert reports whether key was not already a member.
func (ss *SortedSet[K]) Insert(key K) bool {
	return ss.inner().Insert(key, struct{}{})
}

func (ss *SortedSet[K]) Has(key K) bool {
	_, ok := ss.inner().Get(key)
	return ok
}

func (ss *SortedSet[K]) Iter() iter.Seq[K] {
	return func(yield func(k K) bool) {
		for k := range ss.inner().Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

func (ss *SortedSet[K]) ReverseIter() iter.Seq[K] {
	return func(yield func(k K) bool) {
		for k := range ss.inner().ReverseIter() {
			if !yield(k) {
				return
			}
		}
	}
}

// Slice returns the members in ascending order.
func (ss *SortedSet[K]) Slice() []K {
	return ss.inner().Keys()
}

func (ss *SortedSet[K]) String() string {
	return fmt.Sprint(ss.Slice())
}
