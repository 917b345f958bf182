package unwrap

import (
	"context"
	"errors"

	"github.com/ib-77/orelse/pkg/rop"
	"github.com/ib-77/orelse/pkg/rop/core"
	"github.com/ib-77/orelse/pkg/rop/diag"
)

var errNilFallback = errors.New("unwrap: nil fallback")

type signalKind int

const (
	noSignal signalKind = iota
	continueSignal
	breakSignal
	returnSignal
)

// ControlSignal is the panic value raised by Continue, Break and Return.
// It only escapes when the signal is used outside a matching scope.
type ControlSignal struct {
	kind signalKind
}

func (s ControlSignal) Error() string {
	switch s.kind {
	case continueSignal:
		return "unwrap: Continue used outside Each or Drain"
	case breakSignal:
		return "unwrap: Break used outside Each or Drain"
	case returnSignal:
		return "unwrap: Return used outside Scope"
	default:
		return "unwrap: unknown control signal"
	}
}

// Continue is a fallback that skips to the next item of the enclosing Each or Drain.
func Continue[T any]() T {
	panic(ControlSignal{kind: continueSignal})
}

// Break is a fallback that stops the enclosing Each or Drain.
func Break[T any]() T {
	panic(ControlSignal{kind: breakSignal})
}

// Return is a fallback that leaves the enclosing Scope.
func Return[T any]() T {
	panic(ControlSignal{kind: returnSignal})
}

// Each calls body for every item until a Break. It returns the number of
// items body was called with.
func Each[S ~[]E, E any](items S, body func(i int, item E)) int {
	visited := 0
	for i, item := range items {
		visited++
		if iterate(func() { body(i, item) }) == breakSignal {
			break
		}
	}
	return visited
}

// Drain reads results from ch until it is closed or ctx is done. Failed
// results are written to the sink attached to ctx (see core.WithSink) and
// skipped; successful values are passed to body, which may use Continue or
// Break. It returns the number of values passed to body.
func Drain[T any](ctx context.Context, ch <-chan rop.Result[T], body func(v T)) int {
	sink := core.SinkFrom(ctx, nil)
	n := 0
	for {
		r, ok := core.Recv(ctx, ch)
		if !ok {
			return n
		}

		v, err := r.Get()
		if err != nil {
			diag.EmitTo(sink, err)
			continue
		}

		n++
		if iterate(func() { body(v) }) == breakSignal {
			return n
		}
	}
}

// Scope runs body and reports whether it was left through Return.
func Scope(body func()) (returned bool) {
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(ControlSignal); ok && s.kind == returnSignal {
				returned = true
				return
			}
			panic(r)
		}
	}()

	body()
	return false
}

// iterate runs one loop body and absorbs Continue and Break.
func iterate(body func()) (kind signalKind) {
	defer func() {
		if r := recover(); r != nil {
			s, ok := r.(ControlSignal)
			if !ok || s.kind == returnSignal {
				panic(r)
			}
			kind = s.kind
		}
	}()

	body()
	return noSignal
}
