/*
Package result implements the result of a computation which may fail.

A Result is either Ok with a value or Err with an error. Clients match on it
the same way they match on a maybe.Maybe:

	switch m := r.Match(); m {
	case m.Ok(&v):
	case m.Err(&err):
	}
*/
package result

import "github.com/p14n/fp/maybe"

// Result is a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. A nil error is not a failure; Err(nil) behaves like
// Ok of the zero value.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From converts a Go-style (value, error) return into a Result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

// Map applies f to an Ok value and passes errors through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(x))
}

// AndThen chains a computation which may fail onto r.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(x)
}

// WithDefault returns the Ok value of r, or def for an error.
func WithDefault[T any](def T, r Result[T]) T {
	if x, err := r.Get(); err == nil {
		return x
	}
	return def
}

// ToMaybe forgets the error of r.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if x, err := r.Get(); err == nil {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to discriminate Ok from Err.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
