package diag

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Logrus logs every line at error level.
func Logrus(logger logrus.FieldLogger) Sink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return SinkFunc(func(line string) {
		logger.Error(line)
	})
}

// Slog logs every line at error level.
func Slog(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return SinkFunc(func(line string) {
		logger.Error(line)
	})
}

// NewConsoleLogger builds a tint logger on f. Colours are only used when
// color is set and f is a terminal.
func NewConsoleLogger(f *os.File, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		NoColor:    !color || !IsTerminal(f),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	}))
}

func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
