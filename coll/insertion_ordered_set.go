package bcoll

import (
	"fmt"
	"strings"
)

// InsertionOrderedSet is a set that remembers the order in which members were
// first added.
type InsertionOrderedSet[T comparable] struct {
	elements []T
	set      map[T]struct{}
}

func NewInsertionOrderedSet[T comparable]() *InsertionOrderedSet[T] {
	return &InsertionOrderedSet[T]{
		elements: []T{},
		set:      make(map[T]struct{}),
	}
}

// Add appends element unless it is already a member, and reports whether it was added.
func (s *InsertionOrderedSet[T]) Add(element T) bool {
	if _, exists := s.set[element]; exists {
		return false
	}
	s.elements = append(s.elements, element)
	s.set[element] = struct{}{}
	return true
}

func (s *InsertionOrderedSet[T]) Contains(element T) bool {
	_, exists := s.set[element]
	return exists
}

func (s *InsertionOrderedSet[T]) Size() int {
	return len(s.elements)
}

// Elements returns a copy of the members in first-insertion order.
func (s *InsertionOrderedSet[T]) Elements() []T {
	return append([]T{}, s.elements...)
}

func (s *InsertionOrderedSet[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, element := range s.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", element)
	}
	sb.WriteString("]")
	return sb.String()
}
