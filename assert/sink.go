package assert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/james-orcales/lazyassert/xdebug"
)

// Sink receives formatted failure messages and decides what happens next.
// IsTrue, IsNull and IsNotNull failures go to ReportTrue; IsFalse failures go
// to ReportFalse.
//
// A sink that returns lets the failing caller continue.
type Sink interface {
	ReportTrue(msg string)
	ReportFalse(msg string)
}

type sinkHolder struct {
	sink Sink
}

var currentSink atomic.Pointer[sinkHolder]

// SetSink replaces the registered sink and returns the previous one. Passing
// nil restores the fallback of panicking with *AssertionFailure.
func SetSink(sink Sink) Sink {
	var next *sinkHolder
	if sink != nil {
		next = &sinkHolder{sink: sink}
	}
	previous := currentSink.Swap(next)
	if previous == nil {
		return nil
	}
	return previous.sink
}

// RegisterSink installs sink only if none is registered yet and reports
// whether it did. Intended to be called once during startup; concurrent
// callers race safely and exactly one of them wins.
func RegisterSink(sink Sink) bool {
	if sink == nil {
		return false
	}
	return currentSink.CompareAndSwap(nil, &sinkHolder{sink: sink})
}

// CurrentSink returns the registered sink, or nil.
func CurrentSink() Sink {
	holder := currentSink.Load()
	if holder == nil {
		return nil
	}
	return holder.sink
}

// SinkFuncs adapts plain functions to Sink. A nil field ignores that kind of
// failure.
type SinkFuncs struct {
	True  func(msg string)
	False func(msg string)
}

func (s SinkFuncs) ReportTrue(msg string) {
	if s.True != nil {
		s.True(msg)
	}
}

func (s SinkFuncs) ReportFalse(msg string) {
	if s.False != nil {
		s.False(msg)
	}
}

// PanicSink panics with the message prefixed by AssertionFailureMsgPrefix.
type PanicSink struct{}

func (PanicSink) ReportTrue(msg string) {
	panic(AssertionFailureMsgPrefix + ": " + msg)
}

func (PanicSink) ReportFalse(msg string) {
	panic(AssertionFailureMsgPrefix + ": " + msg)
}

// FatalSink prints the failure and terminates the process.
type FatalSink struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	// ExitCode defaults to 1.
	ExitCode   int
	StackTrace bool
	// Exit defaults to os.Exit. Tests swap it out.
	Exit func(code int)
}

func (s FatalSink) ReportTrue(msg string) {
	s.fail(msg)
}

func (s FatalSink) ReportFalse(msg string) {
	s.fail(msg)
}

// WARN: Callers rely on this to terminate control flow. An Exit that returns
// lets the failing assertion fall through.
func (s FatalSink) fail(msg string) {
	w := s.Output
	if w == nil {
		w = os.Stderr
	}
	if s.StackTrace {
		xdebug.FprintStackTrace(w, 2)
	}
	fmt.Fprintf(w, "%s: %s\n", AssertionFailureMsgPrefix, msg)
	code := s.ExitCode
	if code == 0 {
		code = 1
	}
	exit := s.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(code)
}

// LogSink logs failures at error level and lets execution continue. A nil
// Logger uses slog.Default().
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) ReportTrue(msg string) {
	s.logger().Error(AssertionFailureMsgPrefix, "assertion", msg, "report", "true")
}

func (s LogSink) ReportFalse(msg string) {
	s.logger().Error(AssertionFailureMsgPrefix, "assertion", msg, "report", "false")
}

func (s LogSink) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

type chain []Sink

// Chain returns a sink that forwards every failure to each sink in order. Put
// terminal sinks (PanicSink, FatalSink) last, since nothing after them runs.
func Chain(sinks ...Sink) Sink {
	c := make(chain, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

func (c chain) ReportTrue(msg string) {
	for _, s := range c {
		s.ReportTrue(msg)
	}
}

func (c chain) ReportFalse(msg string) {
	for _, s := range c {
		s.ReportFalse(msg)
	}
}
