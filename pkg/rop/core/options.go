package core

import (
	"context"

	"github.com/ib-77/orelse/pkg/rop/diag"
)

type OptionKey string

const (
	SinkOptionKey OptionKey = "sink_options"
)

type SinkOptions struct {
	Sink diag.Sink
}

// WithSink attaches s to ctx. Helpers that take a context write their
// diagnostics there instead of the process-wide default.
func WithSink(ctx context.Context, s diag.Sink) context.Context {
	return context.WithValue(ctx, SinkOptionKey, SinkOptions{Sink: s})
}

// SinkFrom returns the sink attached to ctx, or defaultSink.
// With no defaultSink the process-wide diag.Default is used.
func SinkFrom(ctx context.Context, defaultSink diag.Sink) diag.Sink {
	options, ok := ctx.Value(SinkOptionKey).(SinkOptions)
	if ok && options.Sink != nil {
		return options.Sink
	}
	if defaultSink != nil {
		return defaultSink
	}
	return diag.Default()
}
