package forward

import (
	"iter"
	"log/slog"

	"github.com/brynbellomy/go-forward/opt"
)

// Stage is a combinator waiting for its upstream sequence. Stages are plain
// descriptions: applying one builds a new sequence and evaluates nothing.
type Stage[In, Out any] func(Sequence[In]) Sequence[Out]

func (s Stage[In, Out]) apply(seq Sequence[In]) Sequence[Out] {
	invariant(s != nil, "nil stage in pipeline")
	return s(seq)
}

// Where is the stage form of NewWhere.
func Where[T any](pred func(T) bool) Stage[T, T] {
	invariant(pred != nil, "nil predicate passed to Where")
	return func(upstream Sequence[T]) Sequence[T] {
		return NewWhere(upstream, pred)
	}
}

// Select is the stage form of NewSelect.
func Select[T, U any](fn func(T) U) Stage[T, U] {
	invariant(fn != nil, "nil transform passed to Select")
	return func(upstream Sequence[T]) Sequence[U] {
		return NewSelect(upstream, fn)
	}
}

// Take returns a stage that keeps the first n elements.
func Take[T any](n int) Stage[T, T] {
	return func(upstream Sequence[T]) Sequence[T] {
		return NewTake(upstream, n)
	}
}

// Skip returns a stage that drops the first n elements.
func Skip[T any](n int) Stage[T, T] {
	return func(upstream Sequence[T]) Sequence[T] {
		return NewSkip(upstream, n)
	}
}

// Pipe feeds seq into s1.
func Pipe[A, B any](seq Sequence[A], s1 Stage[A, B]) Sequence[B] {
	return s1.apply(seq)
}

// Pipe2 feeds seq through s1 and then s2.
func Pipe2[A, B, C any](seq Sequence[A], s1 Stage[A, B], s2 Stage[B, C]) Sequence[C] {
	return s2.apply(s1.apply(seq))
}

// Pipe3 feeds seq through three stages in order.
func Pipe3[A, B, C, D any](seq Sequence[A], s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D]) Sequence[D] {
	return s3.apply(s2.apply(s1.apply(seq)))
}

// Pipe4 feeds seq through four stages in order.
func Pipe4[A, B, C, D, E any](seq Sequence[A], s1 Stage[A, B], s2 Stage[B, C], s3 Stage[C, D], s4 Stage[D, E]) Sequence[E] {
	return s4.apply(s3.apply(s2.apply(s1.apply(seq))))
}

// Compose fuses two stages into one that applies first, then second.
func Compose[A, B, C any](first Stage[A, B], second Stage[B, C]) Stage[A, C] {
	invariant(first != nil && second != nil, "nil stage passed to Compose")
	return func(upstream Sequence[A]) Sequence[C] {
		return second(first(upstream))
	}
}

// QuerySequence is a fluent builder over a sequence for stages that keep the
// element type. It is itself a Sequence, so it can be passed to any reducer.
//
//	adults := forward.Query(people).
//	    Where(isAdult).
//	    Skip(page * pageSize).
//	    Take(pageSize).
//	    ToSlice()
//
// Type-changing transforms go through Select or NewSelect.
type QuerySequence[T any] struct {
	seq Sequence[T]
}

// Query wraps seq for fluent chaining. seq must not be nil.
func Query[T any](seq Sequence[T]) QuerySequence[T] {
	invariant(seq != nil, "nil sequence passed to Query")
	return QuerySequence[T]{seq: seq}
}

func (q QuerySequence[T]) Cursor() Cursor[T] { return q.seq.Cursor() }

func (q QuerySequence[T]) Len() int { return lenHint(q.seq) }

func (q QuerySequence[T]) Where(pred func(T) bool) QuerySequence[T] {
	return Query[T](NewWhere(q.seq, pred))
}

func (q QuerySequence[T]) Take(n int) QuerySequence[T] {
	return Query[T](NewTake(q.seq, n))
}

func (q QuerySequence[T]) Skip(n int) QuerySequence[T] {
	return Query[T](NewSkip(q.seq, n))
}

func (q QuerySequence[T]) Then(stage Stage[T, T]) QuerySequence[T] {
	return Query(stage.apply(q.seq))
}

func (q QuerySequence[T]) Inspect(logger *slog.Logger, name string) QuerySequence[T] {
	return Query[T](NewInspect(q.seq, logger, name))
}

func (q QuerySequence[T]) ToSlice() []T                 { return ToSlice[T](q) }
func (q QuerySequence[T]) Count() int                   { return Count[T](q) }
func (q QuerySequence[T]) IsEmpty() bool                { return IsEmpty[T](q) }
func (q QuerySequence[T]) Any(pred func(T) bool) bool   { return Any[T](q, pred) }
func (q QuerySequence[T]) Every(pred func(T) bool) bool { return Every[T](q, pred) }
func (q QuerySequence[T]) First() (T, error)            { return First[T](q) }
func (q QuerySequence[T]) FirstOpt() opt.Opt[T]         { return FirstOpt[T](q) }
func (q QuerySequence[T]) ForEach(fn func(T))           { ForEach[T](q, fn) }
func (q QuerySequence[T]) All() iter.Seq[T]             { return All[T](q) }
