package bcoll

import (
	"cmp"
	"iter"
	"slices"
)

// KeySortedMap is a map that maintains keys in sorted order. Keys and values are
// kept in parallel slices; lookups are binary searches and inserts shift the tail.
type KeySortedMap[K cmp.Ordered, V any] struct {
	keys   []K
	values []V
}

func NewKeySortedMap[K cmp.Ordered, V any]() *KeySortedMap[K, V] {
	return &KeySortedMap[K, V]{}
}

func (sm *KeySortedMap[K, V]) Clear() {
	sm.keys = nil
	sm.values = nil
}

func (sm *KeySortedMap[K, V]) Len() int {
	return len(sm.keys)
}

// Insert adds key with value, or replaces the value if key is already present.
// It reports whether the key was newly added.
func (sm *KeySortedMap[K, V]) Insert(key K, value V) bool {
	i, found := slices.BinarySearch(sm.keys, key)
	if found {
		sm.values[i] = value
		return false
	}
	sm.keys = slices.Insert(sm.keys, i, key)
	sm.values = slices.Insert(sm.values, i, value)
	return true
}

func (sm *KeySortedMap[K, V]) Get(key K) (V, bool) {
	i, found := slices.BinarySearch(sm.keys, key)
	if !found {
		var zero V
		return zero, false
	}
	return sm.values[i], true
}

func (sm *KeySortedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		for i := range sm.keys {
			if !yield(sm.keys[i], sm.values[i]) {
				return
			}
		}
	}
}

func (sm *KeySortedMap[K, V]) ReverseIter() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		for i := len(sm.keys) - 1; i >= 0; i-- {
			if !yield(sm.keys[i], sm.values[i]) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys in ascending order.
func (sm *KeySortedMap[K, V]) Keys() []K {
	return slices.Clone(sm.keys)
}
