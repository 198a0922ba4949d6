package result

// Result holds either a value of type T or an error of type E.
//
// The zero Result is a success holding the zero T.
type Result[T any, E error] struct {
	value T
	err   E
	fail  bool
}

// Ok returns a successful Result.
func Ok[T any, E error](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Fail returns a failed Result.
func Fail[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err, fail: true}
}

// IsOk reports whether r holds a value.
func (r Result[T, E]) IsOk() bool { return !r.fail }

// Get returns the value and the error; exactly one of them is meaningful,
// decided by ok.
func (r Result[T, E]) Get() (v T, err E, ok bool) {
	return r.value, r.err, !r.fail
}

// Value returns the value and whether r is a success.
func (r Result[T, E]) Value() (T, bool) { return r.value, !r.fail }

// Err returns the error and whether r is a failure.
func (r Result[T, E]) Err() (E, bool) { return r.err, r.fail }

// GetOrHandle returns the value, or the result of handle applied to the error.
func (r Result[T, E]) GetOrHandle(handle func(E) T) T {
	if r.fail {
		return handle(r.err)
	}
	return r.value
}

// OnFailure calls f with the error when r is a failure and returns r.
func (r Result[T, E]) OnFailure(f func(E)) Result[T, E] {
	if r.fail {
		f(r.err)
	}
	return r
}

// Then runs next with the value of r and returns its Result. A failed r
// short-circuits and next is not called.
func Then[T, U any, E error](r Result[T, E], next func(T) Result[U, E]) Result[U, E] {
	if r.fail {
		return Fail[U](r.err)
	}
	return next(r.value)
}

// Map transforms the value of a successful r.
func Map[T, U any, E error](r Result[T, E], f func(T) U) Result[U, E] {
	if r.fail {
		return Fail[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

// Fold collapses r into a single value.
func Fold[T, U any, E error](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if r.fail {
		return onErr(r.err)
	}
	return onOk(r.value)
}
