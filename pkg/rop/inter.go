package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// Fallible is the success/failure shape: a value or an error, never both.
type Fallible[T any] interface {
	// Get returns the value, or a non-nil error on failure
	Get() (T, error)
}

// Optional is the present/absent shape.
type Optional[T any] interface {
	// Get returns the value and true, or false when absent
	Get() (T, bool)
}

// Container is satisfied by both shapes.
//
//	success/present: (v, true, nil)
//	failure:         (zero, false, err)
//	absent:          (zero, false, nil)
type Container[T any] interface {
	Unpack() (value T, present bool, err error)
}

var (
	_ WithCancel[int] = Result[int]{}
	_ Fallible[int]   = Result[int]{}
	_ Container[int]  = Result[int]{}
	_ Optional[int]   = Option[int]{}
	_ Container[int]  = Option[int]{}
)
