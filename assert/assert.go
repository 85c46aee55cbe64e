/*
Package assert provides lazily-formatted assertions that compile to nothing in
release builds.

# Assertion Types

  - **IsTrue** / **IsFalse**: The condition must hold (or must not hold).
    Failures are reported through Sink.ReportTrue and Sink.ReportFalse
    respectively.

  - **IsNull** / **IsNotNull**: The value must (or must not) be considered
    null. Null-ness is native Go nil unless a predicate was registered for the
    value's type with RegisterNullPredicate, which lets handles to destroyed
    objects count as null even though the reference itself is not nil. Both
    report through Sink.ReportTrue.

Every assertion has a Func variant taking the message as a func() string. The
func only runs once the assertion has already failed, so expensive
fmt.Sprintf calls stay off the passing path.

	assert.IsTrue(len(queue) <= capacity, "queue overflow")
	assert.IsNotNullFunc(player, func() string {
		return fmt.Sprintf("player %d despawned mid-frame", id)
	})

# Failure Messages

A failing assertion is formatted as `IsTrue(<expr>)` or `IsTrue(<expr>): <msg>`,
where <expr> is the source text of the first argument, read back from the
caller's source file. The lookup only happens on failure. Binaries deployed
without their sources fall back to `file.go:line`.

Call sites are found by file, line and function name. When one line holds two
calls to the same assertion function, say one inside a closure, a failure of
either is reported with the first call's expression. Keep such calls on
separate lines.

# Sinks

Failures go to the Sink registered with SetSink or RegisterSink. The sink owns
the terminal behavior: PanicSink panics, FatalSink exits the process, LogSink
logs and lets execution continue. If no sink is registered, the assertion
panics with an *AssertionFailure so failures are never silently dropped.

# Stripping

Build with `-tags disable_assertions` to turn every assertion into an empty
stub. Sinks are never called and nothing is formatted, but Go still evaluates
every argument before the call. That covers the condition and a plain string
message too, so `IsTrue(ok, expensive())` calls expensive in release builds
as well. Only the Func variants have no message cost when assertions are
stripped: the func value is passed but never invoked.
*/
package assert

import (
	"errors"
	"strings"
)

// Used to detect panics raised by PanicSink
//
//	defer func() {
//		if err := recover(); err != nil {
//			if assert.IsFailurePanic(err) {
//				// handle assertion failure
//			}
//		}
//	}()
const AssertionFailureMsgPrefix = "🚨 Assertion Failure 🚨"

type ConditionType uint8

const (
	ConditionIsTrue ConditionType = iota + 1
	ConditionIsFalse
	ConditionIsNull
	ConditionIsNotNull
)

func (c ConditionType) String() string {
	switch c {
	case ConditionIsTrue:
		return "IsTrue"
	case ConditionIsFalse:
		return "IsFalse"
	case ConditionIsNull:
		return "IsNull"
	case ConditionIsNotNull:
		return "IsNotNull"
	default:
		return "Unknown"
	}
}

// AssertionFailure is raised with panic when an assertion fails and no sink
// is registered.
type AssertionFailure struct {
	Condition  ConditionType
	Expression string
	// Message is empty when the caller supplied none.
	Message string
}

func (f *AssertionFailure) Error() string {
	return FormatMessage(f.Condition, f.Expression, f.Message)
}

// FormatMessage renders `IsTrue(expr)` or `IsTrue(expr): msg`.
func FormatMessage(c ConditionType, expr, msg string) string {
	if msg == "" {
		return c.String() + "(" + expr + ")"
	}
	return c.String() + "(" + expr + "): " + msg
}

// FailureFromPanic extracts the *AssertionFailure from a recovered value.
// Panics raised by PanicSink only carry the formatted message, so they are not
// reported here; use IsFailurePanic for those.
func FailureFromPanic(recovered any) (*AssertionFailure, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var failure *AssertionFailure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}

// IsFailurePanic reports whether a recovered value came from a failed
// assertion, either through the fallback or through PanicSink.
func IsFailurePanic(recovered any) bool {
	if _, ok := FailureFromPanic(recovered); ok {
		return true
	}
	msg, ok := recovered.(string)
	return ok && strings.HasPrefix(msg, AssertionFailureMsgPrefix)
}

// report hands a failed assertion to the registered sink, or panics when there
// is none. Sinks that return leave control flow with the caller.
func report(c ConditionType, expr, msg string) {
	sink := CurrentSink()
	if sink == nil {
		panic(&AssertionFailure{Condition: c, Expression: expr, Message: msg})
	}
	formatted := FormatMessage(c, expr, msg)
	switch c {
	case ConditionIsFalse:
		sink.ReportFalse(formatted)
	default:
		sink.ReportTrue(formatted)
	}
}
