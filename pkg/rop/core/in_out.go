package core

import (
	"context"

	"github.com/ib-77/orelse/pkg/rop"
)

// Pair is a (value, error) tuple waiting to be lifted into a rop.Result.
type Pair[T any] struct {
	Value T
	Err   error
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	return mapChan(ctx, ToChanMany(ctx, values), rop.Success[T])
}

// ToChanResults lifts every pair with rop.From.
func ToChanResults[T any](ctx context.Context, pairs []Pair[T]) <-chan rop.Result[T] {
	return mapChan(ctx, ToChanMany(ctx, pairs), func(p Pair[T]) rop.Result[T] {
		return rop.From(p.Value, p.Err)
	})
}

func mapChan[In, Out any](ctx context.Context, in <-chan In, f func(In) Out) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)
		for v := range in {
			select {
			case out <- f(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Recv reads one value from ch. It reports false when ch is closed or ctx is done.
func Recv[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	if ctx.Err() != nil {
		return zero, false
	}
	select {
	case v, ok := <-ch:
		return v, ok
	case <-ctx.Done():
		return zero, false
	}
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		v, ok := Recv(ctx, out)
		if !ok {
			return res
		}
		res = append(res, v)
	}
}
