package diag

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"sync/atomic"
)

type Sink interface {
	Emit(line string)
}

type SinkFunc func(line string)

func (f SinkFunc) Emit(line string) { f(line) }

// Discard drops every line.
var Discard Sink = SinkFunc(func(string) {})

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// Writer returns a Sink writing each line followed by a newline to w.
// Write errors are ignored.
func Writer(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Emit(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, line)
}

// Buffer keeps emitted lines in memory.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *Buffer) Emit(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// Lines returns a copy of everything emitted so far.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.lines)
}

func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

type holder struct{ sink Sink }

var (
	stderr  = Writer(os.Stderr)
	current atomic.Pointer[holder]
)

// Default returns the process-wide sink, os.Stderr unless replaced.
func Default() Sink {
	if h := current.Load(); h != nil {
		return h.sink
	}
	return stderr
}

// SetDefault replaces the process-wide sink and returns the previous one.
// A nil sink restores os.Stderr.
func SetDefault(s Sink) Sink {
	if s == nil {
		s = stderr
	}
	prev := current.Swap(&holder{sink: s})
	if prev == nil {
		return stderr
	}
	return prev.sink
}

// Emit writes fmt.Sprint(v) to the default sink.
func Emit(v any) {
	EmitTo(Default(), v)
}

// EmitTo writes fmt.Sprint(v) to s, or to the default sink when s is nil.
func EmitTo(s Sink, v any) {
	if s == nil {
		s = Default()
	}
	s.Emit(fmt.Sprint(v))
}
