// Package opt provides Opt, a value that is either present or absent.
package opt

import "fmt"

// Opt holds either a value (Some) or nothing (None). The zero Opt is None.
type Opt[T any] struct {
	x       T
	present bool
}

func Some[T any](x T) Opt[T] {
	return Opt[T]{
		x:       x,
		present: true,
	}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

func (o Opt[T]) IsPresent() bool {
	return o.present
}

// Value returns the held value, or the zero value of T when absent.
func (o Opt[T]) Value() T {
	return o.x
}

func (o Opt[T]) Get() (T, bool) {
	return o.x, o.present
}

// MustGet returns the held value. Calling it on None is a programmer error and panics.
func (o Opt[T]) MustGet() T {
	if !o.present {
		panic(fmt.Sprintf("invariant violation: MustGet called on absent Opt[%T]", o.x))
	}
	return o.x
}

func (o Opt[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.x
}

func (o Opt[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.x)
}
