// Package optres provides small Option and Result containers used by the
// demo sections: "may be absent" and "may fail with a diagnostic".
package optres

import "fmt"

// Option represents a value that may be absent. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the payload, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Result represents an outcome that is either a value or an error.
// The zero value is Ok with a zero payload.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err builds a failed Result. err must be non-nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("optres: Err called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool { return r.err == nil }

// Get returns the payload and the error; exactly one is meaningful.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
