package unwrap

import (
	"github.com/ib-77/orelse/pkg/rop"
	"github.com/ib-77/orelse/pkg/rop/diag"
)

// ResultOk is Result with the fallback left to the caller:
// on failure the error is written and ok is false.
func ResultOk[T any](c rop.Fallible[T]) (T, bool) {
	v, err := c.Get()
	if err != nil {
		diag.Emit(err)
		return v, false
	}
	return v, true
}

// OrElseOk is OrElse with the fallback left to the caller.
func OrElseOk[T any](c rop.Container[T]) (T, bool) {
	v, present, err := c.Unpack()
	if present {
		return v, true
	}
	if err != nil {
		diag.Emit(err)
	}
	return v, false
}

// OptionOk is Option with the fallback left to the caller.
func OptionOk[T any](c rop.Optional[T]) (T, bool) {
	return c.Get()
}

// OptionMsgOk is OptionMsg with the fallback left to the caller.
func OptionMsgOk[T any](c rop.Optional[T], msg any) (T, bool) {
	v, ok := c.Get()
	if !ok {
		diag.Emit(msg)
	}
	return v, ok
}
