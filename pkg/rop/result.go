package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyResult is reported by a failed Result that carries no error,
// e.g. the zero value or Fail(nil).
var ErrEmptyResult = errors.New("rop: failed result without error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// From lifts a (value, error) pair into a Result, so calls like
// rop.From(strconv.Atoi(s)) can be unwrapped directly.
// Typed nil errors count as nil; context cancellation becomes Cancel.
func From[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		hasResult: from.hasResult,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Get returns the success payload, or the failure error.
// Exactly one of them is meaningful: a failure always has a non-nil error.
func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	var zero T
	if r.err == nil {
		return zero, ErrEmptyResult
	}
	return zero, r.err
}

// Unpack implements Container. A Result is never absent.
func (r Result[T]) Unpack() (T, bool, error) {
	v, err := r.Get()
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}
