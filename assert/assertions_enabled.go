//go:build !disable_assertions

package assert

// Enabled reports whether assertions were compiled in.
const Enabled = true

// fail captures the failing call's first argument and reports it. It must be
// called directly by the exported assertion named callee.
//
//go:noinline
func fail(c ConditionType, callee, msg string) {
	report(c, callerExpression(2, callee), msg)
}

// IsTrue reports a failure if cond is false.
//
// Note: When deferring assertions, enclose them in a closure. Otherwise, cond
// is evaluated immediately.
//
//	// Correct: deferred assertion evaluates cond later
//	defer func() { assert.IsTrue(x > 0, "x must be positive") }()
//
//	// Incorrect: cond evaluated immediately
//	defer assert.IsTrue(x > 0, "x must be positive")
//
//go:noinline
func IsTrue(cond bool, msg string) {
	if cond {
		return
	}
	fail(ConditionIsTrue, "IsTrue", msg)
}

// IsTrueFunc is IsTrue with a message that is only built on failure.
//
//go:noinline
func IsTrueFunc(cond bool, msg func() string) {
	if cond {
		return
	}
	fail(ConditionIsTrue, "IsTrueFunc", resolve(msg))
}

// IsFalse reports a failure through Sink.ReportFalse if cond is true.
//
//go:noinline
func IsFalse(cond bool, msg string) {
	if !cond {
		return
	}
	fail(ConditionIsFalse, "IsFalse", msg)
}

//go:noinline
func IsFalseFunc(cond bool, msg func() string) {
	if !cond {
		return
	}
	fail(ConditionIsFalse, "IsFalseFunc", resolve(msg))
}

// IsNull reports a failure if value is not considered null. See
// IsConsideredNull.
//
//go:noinline
func IsNull[T any](value T, msg string) {
	if IsConsideredNull(value) {
		return
	}
	fail(ConditionIsNull, "IsNull", msg)
}

//go:noinline
func IsNullFunc[T any](value T, msg func() string) {
	if IsConsideredNull(value) {
		return
	}
	fail(ConditionIsNull, "IsNullFunc", resolve(msg))
}

// IsNotNull reports a failure if value is considered null. Prefer this over
// IsTrue(x != nil) so that registered null predicates are honored.
//
//go:noinline
func IsNotNull[T any](value T, msg string) {
	if !IsConsideredNull(value) {
		return
	}
	fail(ConditionIsNotNull, "IsNotNull", msg)
}

//go:noinline
func IsNotNullFunc[T any](value T, msg func() string) {
	if !IsConsideredNull(value) {
		return
	}
	fail(ConditionIsNotNull, "IsNotNullFunc", resolve(msg))
}

func resolve(msg func() string) string {
	if msg == nil {
		return ""
	}
	return msg()
}
