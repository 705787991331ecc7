package forward

import (
	"github.com/brynbellomy/go-forward/opt"
)

// MapCursor applies fn to each element pulled from upstream. fn runs exactly
// once per upstream element, at the time that element is pulled.
type MapCursor[T, U any] struct {
	upstream Cursor[T]
	fn       func(T) U
	done     bool
}

func (c *MapCursor[T, U]) Pull() opt.Opt[U] {
	if c.done {
		return opt.None[U]()
	}
	v, ok := c.upstream.Pull().Get()
	if !ok {
		c.done = true
		return opt.None[U]()
	}
	return opt.Some(c.fn(v))
}

// FilterCursor passes through the upstream elements that satisfy pred. A
// single Pull may discard any number of rejected elements before it finds a
// match or reaches the end of upstream.
type FilterCursor[T any] struct {
	upstream Cursor[T]
	pred     func(T) bool
	done     bool
}

func (c *FilterCursor[T]) Pull() opt.Opt[T] {
	for !c.done {
		next := c.upstream.Pull()
		v, ok := next.Get()
		if !ok {
			c.done = true
			break
		}
		if c.pred(v) {
			return next
		}
	}
	return opt.None[T]()
}

// TakeCursor yields at most n upstream elements. Once it has yielded n it
// stops pulling upstream.
type TakeCursor[T any] struct {
	upstream  Cursor[T]
	remaining int
}

func (c *TakeCursor[T]) Pull() opt.Opt[T] {
	if c.remaining <= 0 {
		return opt.None[T]()
	}
	next := c.upstream.Pull()
	if !next.IsPresent() {
		c.remaining = 0
		return next
	}
	c.remaining--
	return next
}

// SkipCursor discards the first n upstream elements on its first Pull and
// passes the rest through.
type SkipCursor[T any] struct {
	upstream Cursor[T]
	skip     int
	done     bool
}

func (c *SkipCursor[T]) Pull() opt.Opt[T] {
	if c.done {
		return opt.None[T]()
	}
	for ; c.skip > 0; c.skip-- {
		if !c.upstream.Pull().IsPresent() {
			c.done = true
			return opt.None[T]()
		}
	}
	next := c.upstream.Pull()
	if !next.IsPresent() {
		c.done = true
	}
	return next
}

// Pair is one element of a zipped sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ZipCursor pulls one element from each side per Pull and ends as soon as
// either side does.
type ZipCursor[A, B any] struct {
	left  Cursor[A]
	right Cursor[B]
	done  bool
}

func (c *ZipCursor[A, B]) Pull() opt.Opt[Pair[A, B]] {
	if c.done {
		return opt.None[Pair[A, B]]()
	}
	a, ok := c.left.Pull().Get()
	if !ok {
		c.done = true
		return opt.None[Pair[A, B]]()
	}
	b, ok := c.right.Pull().Get()
	if !ok {
		c.done = true
		return opt.None[Pair[A, B]]()
	}
	return opt.Some(Pair[A, B]{First: a, Second: b})
}
