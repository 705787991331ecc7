// Package errors holds the sentinel errors returned by the element-access
// reducers, along with the few github.com/pkg/errors helpers they are built
// with.
package errors

import (
	stderrors "errors"
	"slices"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty means a sequence produced no elements where at least one was required.
	ErrEmpty = errors.New("sequence contains no elements")
	// ErrMultiple means a sequence produced a second element where exactly one was required.
	ErrMultiple = errors.New("sequence contains more than one element")
	// ErrOutOfRange means a requested position lies past the elements a sequence produced.
	ErrOutOfRange = errors.New("index out of range")
)

var (
	// Wrapf annotates err with a stack trace and a formatted message. If err is nil, Wrapf returns nil.
	Wrapf = errors.Wrapf
	// WithStack annotates err with a stack trace. If err is nil, WithStack returns nil.
	WithStack = errors.WithStack
	// Cause unwraps err down to the first error that does not implement Cause.
	Cause = errors.Cause
	// Is reports whether any error in err's tree matches target.
	Is = stderrors.Is
)

// OneOf reports whether the root cause of received is one of errs.
//
//	if _, err := forward.Single(matches); errors.OneOf(err, errors.ErrEmpty, errors.ErrMultiple) {
//	    // zero or several matches
//	}
func OneOf(received error, errs ...error) bool {
	return slices.Contains(errs, Cause(received))
}
