package unwrap

import (
	"github.com/ib-77/orelse/pkg/rop"
	"github.com/ib-77/orelse/pkg/rop/diag"
)

// Result returns the success value of c. On failure it writes the error to
// the diagnostic sink and returns fallback().
func Result[T any](c rop.Fallible[T], fallback func() T) T {
	v, err := c.Get()
	if err == nil {
		return v
	}
	diag.Emit(err)
	return call(fallback)
}

// ResultFunc returns the success value of c. On failure it returns
// fallback(err) and writes nothing.
func ResultFunc[T any](c rop.Fallible[T], fallback func(err error) T) T {
	v, err := c.Get()
	if err == nil {
		return v
	}
	if fallback == nil {
		panic(errNilFallback)
	}
	return fallback(err)
}

// OrElse accepts either shape. Absence returns fallback() silently; failure
// writes the error first.
//
// There is no error-binding variant of OrElse; use ResultFunc.
func OrElse[T any](c rop.Container[T], fallback func() T) T {
	v, present, err := c.Unpack()
	if present {
		return v
	}
	if err != nil {
		diag.Emit(err)
	}
	return call(fallback)
}

// Option returns the value of c, or fallback() when absent.
func Option[T any](c rop.Optional[T], fallback func() T) T {
	v, ok := c.Get()
	if ok {
		return v
	}
	return call(fallback)
}

// OptionMsg is Option that writes msg before taking the fallback.
func OptionMsg[T any](c rop.Optional[T], msg any, fallback func() T) T {
	v, ok := c.Get()
	if ok {
		return v
	}
	diag.Emit(msg)
	return call(fallback)
}

// Const returns a fallback yielding v.
func Const[T any](v T) func() T {
	return func() T { return v }
}

// Zero is a fallback yielding the zero value of T.
func Zero[T any]() T {
	var zero T
	return zero
}

func call[T any](fallback func() T) T {
	if fallback == nil {
		panic(errNilFallback)
	}
	return fallback()
}
