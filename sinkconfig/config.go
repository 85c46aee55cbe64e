// Package sinkconfig builds the assertion sink from a YAML file so that the
// same binary can crash in CI and log-and-continue in production.
//
//	sinks: [log, panic]
//	log:
//	  format: json
//	  output: /var/log/game/assertions.log
//	fatal:
//	  exit_code: 70
//	  stack_trace: true
//
// Environment variables override the file; see applyEnvOverrides.
package sinkconfig

import (
	"errors"
	"fmt"
	"slices"
)

const (
	SinkNone  = "none"
	SinkLog   = "log"
	SinkPanic = "panic"
	SinkFatal = "fatal"

	FormatText = "text"
	FormatJSON = "json"

	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

var (
	ErrUnknownSink      = errors.New("unknown sink")
	ErrTerminalNotLast  = errors.New("terminal sink must be last")
	ErrNoneWithOthers   = errors.New(`"none" cannot be combined with other sinks`)
	ErrDuplicateSink    = errors.New("sink listed more than once")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidExitCode  = errors.New("exit code must be between 1 and 125")
)

type Config struct {
	// Sinks run in order for every failure. Empty or ["none"] leaves no sink
	// registered, so failing assertions panic with *assert.AssertionFailure.
	Sinks []string    `yaml:"sinks"`
	Log   LogConfig   `yaml:"log"`
	Fatal FatalConfig `yaml:"fatal"`
}

type LogConfig struct {
	Format string `yaml:"format"`
	// Output is stderr, stdout or a file path opened for appending.
	Output string `yaml:"output"`
}

type FatalConfig struct {
	ExitCode   int  `yaml:"exit_code"`
	StackTrace bool `yaml:"stack_trace"`
}

// Default panics on failure with no logging.
func Default() Config {
	return Config{
		Sinks: []string{SinkPanic},
		Log: LogConfig{
			Format: FormatText,
			Output: OutputStderr,
		},
		Fatal: FatalConfig{
			ExitCode:   1,
			StackTrace: true,
		},
	}
}

func isTerminal(sink string) bool {
	return sink == SinkPanic || sink == SinkFatal
}

func (c Config) Validate() error {
	for i, sink := range c.Sinks {
		switch sink {
		case SinkNone:
			if len(c.Sinks) > 1 {
				return ErrNoneWithOthers
			}
		case SinkLog, SinkPanic, SinkFatal:
		default:
			return fmt.Errorf("sinks[%d] %q: %w", i, sink, ErrUnknownSink)
		}
		if slices.Index(c.Sinks, sink) != i {
			return fmt.Errorf("sinks[%d] %q: %w", i, sink, ErrDuplicateSink)
		}
		if isTerminal(sink) && i != len(c.Sinks)-1 {
			return fmt.Errorf("sinks[%d] %q: %w", i, sink, ErrTerminalNotLast)
		}
	}

	if slices.Contains(c.Sinks, SinkLog) {
		if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
			return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
		}
		if c.Log.Output == "" {
			return errors.New("log output must not be empty")
		}
	}

	if slices.Contains(c.Sinks, SinkFatal) {
		if c.Fatal.ExitCode < 1 || c.Fatal.ExitCode > 125 {
			return fmt.Errorf("%w, got %d", ErrInvalidExitCode, c.Fatal.ExitCode)
		}
	}
	return nil
}
