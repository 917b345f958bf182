package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/orelse/pkg/rop/diag"
)

func TestSinkFrom(t *testing.T) {
	t.Parallel()

	buf := &diag.Buffer{}
	ctx := WithSink(context.Background(), buf)

	assert.Same(t, buf, SinkFrom(ctx, nil))

	other := &diag.Buffer{}
	assert.Same(t, other, SinkFrom(context.Background(), other))
	assert.NotNil(t, SinkFrom(context.Background(), nil))
}

func TestToChanManyResults(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	results := FromChanMany(ctx, ToChanManyResults(ctx, []int{1, 2, 3}))

	var got []int
	for _, r := range results {
		assert.True(t, r.IsSuccess())
		got = append(got, r.Result())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestToChanResults(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cause := errors.New("bad")
	results := FromChanMany(ctx, ToChanResults(ctx, []Pair[string]{
		{Value: "a"},
		{Err: cause},
		{Err: context.Canceled},
	}))

	if assert.Len(t, results, 3) {
		assert.True(t, results[0].IsSuccess())
		assert.ErrorIs(t, results[1].Err(), cause)
		assert.False(t, results[1].IsCancel())
		assert.True(t, results[2].IsCancel())
	}
}

func TestRecv_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := Recv(ctx, make(chan int))
	assert.False(t, ok)
	assert.Empty(t, FromChanMany(ctx, make(chan int)))
}

func TestToChanFromArgs_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ch := ToChanFromArgs(ctx, 1, 2, 3)

	assert.Equal(t, 1, <-ch)
	cancel()

	select {
	case <-waitClosed(ch):
	case <-time.After(time.Second):
		t.Fatal("producer did not stop")
	}
}

func waitClosed[T any](ch <-chan T) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ch {
		}
	}()
	return done
}
