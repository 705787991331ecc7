package forward

import (
	"context"
	"log/slog"

	"github.com/brynbellomy/go-forward/opt"
)

// InspectSequence passes upstream through unchanged, logging every element
// as it is pulled.
type InspectSequence[T any] struct {
	upstream Sequence[T]
	logger   *slog.Logger
	name     string
}

// NewInspect logs each element pulled through it at debug level, tagged with
// name, and logs once when upstream is exhausted. A nil logger means
// slog.Default(). Logging happens on pull, so building the pipeline logs
// nothing.
func NewInspect[T any](upstream Sequence[T], logger *slog.Logger, name string) InspectSequence[T] {
	invariant(upstream != nil, "nil sequence passed to NewInspect")
	return InspectSequence[T]{upstream: upstream, logger: logger, name: name}
}

// Inspect is the stage form of NewInspect.
func Inspect[T any](logger *slog.Logger, name string) Stage[T, T] {
	return func(upstream Sequence[T]) Sequence[T] {
		return NewInspect(upstream, logger, name)
	}
}

func (s InspectSequence[T]) Cursor() Cursor[T] {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &inspectCursor[T]{
		upstream: s.upstream.Cursor(),
		logger:   logger.With("stage", s.name),
	}
}

func (s InspectSequence[T]) Len() int {
	return lenHint(s.upstream)
}

type inspectCursor[T any] struct {
	upstream Cursor[T]
	logger   *slog.Logger
	index    int
	done     bool
}

func (c *inspectCursor[T]) Pull() opt.Opt[T] {
	if c.done {
		return opt.None[T]()
	}
	next := c.upstream.Pull()
	v, ok := next.Get()
	if !ok {
		c.done = true
		c.logger.Debug("sequence exhausted", "count", c.index)
		return next
	}
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("pulled element", "index", c.index, "value", v)
	}
	c.index++
	return next
}
