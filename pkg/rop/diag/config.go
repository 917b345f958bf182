package diag

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const EnvPrefix = "ORELSE"

const (
	SinkStderr  = "stderr"
	SinkSlog    = "slog"
	SinkLogrus  = "logrus"
	SinkDiscard = "discard"
)

var ErrUnknownSink = errors.New("diag: unknown sink")

// Config selects the default sink from the environment:
//
//	ORELSE_SINK   stderr | slog | logrus | discard
//	ORELSE_COLOR  colour slog output on terminals
type Config struct {
	Sink  string `envconfig:"SINK" default:"stderr"`
	Color bool   `envconfig:"COLOR" default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("diag: load config: %w", err)
	}
	return cfg, nil
}

// Build returns the sink named by the config.
func (c Config) Build() (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(c.Sink)) {
	case "", SinkStderr:
		return Writer(os.Stderr), nil
	case SinkSlog:
		return Slog(NewConsoleLogger(os.Stderr, c.Color)), nil
	case SinkLogrus:
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !c.Color || !IsTerminal(os.Stderr),
		})
		return Logrus(logger), nil
	case SinkDiscard:
		return Discard, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, c.Sink)
	}
}

// Setup loads the config and installs the resulting sink as the default.
func Setup() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	SetDefault(s)
	return nil
}
