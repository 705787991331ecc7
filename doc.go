// Package forward provides lazy, composable query operators over in-memory
// sources.
//
// A Sequence is an immutable description of a pipeline. Calling its Cursor
// method produces a fresh, single-pass Cursor that yields elements one Pull
// at a time, wrapped in an opt.Opt. Nothing is evaluated until a cursor is
// pulled: building a pipeline with Where, Select, Take or Skip never runs a
// predicate or transform and never touches the source.
//
//	words := []string{"cat", "bunny", "doggy", "horsey"}
//	lengths := forward.ToSlice(forward.Pipe2(
//	    forward.From(words),
//	    forward.Where(func(s string) bool { return s[0] < 'h' }),
//	    forward.Select(func(s string) int { return len(s) }),
//	))
//	// lengths == []int{3, 5, 5}
//
// From borrows its slice: the sequence and its cursors read the caller's
// backing array, which must not be mutated while a cursor is live. FromOwned
// copies the slice instead.
//
// Cursors are not safe for concurrent use. A Sequence may hand out cursors to
// several goroutines at once provided its source is not being mutated.
package forward
