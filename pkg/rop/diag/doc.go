// Package diag is the diagnostic stream used by the unwrap helpers.
//
// A Sink receives one line per failure or absence event. The default sink
// writes "{line}\n" to os.Stderr with no prefix or timestamp; Logrus and Slog
// route the same lines into a logger the program already has.
//
// Sinks are expected to serialise concurrent writes themselves.
package diag
