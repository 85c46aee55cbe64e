package sinkconfig

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/james-orcales/lazyassert/assert"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Build turns a validated Config into a sink. A nil sink means "none". The
// returned Closer releases the log file, if one was opened, and is never nil.
func (c Config) Build() (assert.Sink, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nopCloser{}, err
	}

	var closer io.Closer = nopCloser{}
	sinks := make([]assert.Sink, 0, len(c.Sinks))
	for _, name := range c.Sinks {
		switch name {
		case SinkNone:
		case SinkLog:
			w, cl, err := openOutput(c.Log.Output)
			if err != nil {
				return nil, nopCloser{}, err
			}
			closer = cl
			sinks = append(sinks, assert.LogSink{Logger: slog.New(newHandler(c.Log.Format, w))})
		case SinkPanic:
			sinks = append(sinks, assert.PanicSink{})
		case SinkFatal:
			sinks = append(sinks, assert.FatalSink{
				ExitCode:   c.Fatal.ExitCode,
				StackTrace: c.Fatal.StackTrace,
			})
		}
	}

	switch len(sinks) {
	case 0:
		return nil, closer, nil
	case 1:
		return sinks[0], closer, nil
	default:
		return assert.Chain(sinks...), closer, nil
	}
}

// Install loads the config at path and registers the resulting sink, replacing
// any sink registered before. Call it once from main, before spawning
// goroutines that assert.
func Install(path string) (io.Closer, error) {
	cfg, err := Load(path)
	if err != nil {
		return nopCloser{}, err
	}
	sink, closer, err := cfg.Build()
	if err != nil {
		return nopCloser{}, err
	}
	assert.SetSink(sink)
	return closer, nil
}

func newHandler(format string, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelError}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case OutputStderr:
		return os.Stderr, nopCloser{}, nil
	case OutputStdout:
		return os.Stdout, nopCloser{}, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}
	return f, f, nil
}
