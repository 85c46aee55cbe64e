//go:build !disable_assertions

package assert_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/james-orcales/lazyassert/assert"
)

func TestEnabled(t *testing.T) {
	require.True(t, assert.Enabled)
}

func TestPassingAssertionsNeverBuildMessages(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)

	evaluated := 0
	msg := func() string {
		evaluated++
		return "unused"
	}
	value := 1
	for _, cond := range []bool{true, 1 < 2, value == 1} {
		assert.IsTrue(cond, "unused")
		assert.IsTrueFunc(cond, msg)
		assert.IsFalse(!cond, "unused")
		assert.IsFalseFunc(!cond, msg)
	}
	assert.IsNullFunc[*int](nil, msg)
	assert.IsNullFunc[any](nil, msg)
	assert.IsNotNullFunc(&value, msg)
	assert.IsNotNullFunc(map[string]int{}, msg)

	require.Zero(t, evaluated)
	require.Empty(t, rec.trues)
	require.Empty(t, rec.falses)
}

func TestIsTrueReportsFormattedMessage(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)

	x := -1
	evaluated := 0
	assert.IsTrue(x > 0, "")
	assert.IsTrue(x > 0, "x must be positive")
	assert.IsTrueFunc(x > 0, func() string {
		evaluated++
		return fmt.Sprintf("got %d", x)
	})
	assert.IsTrueFunc(x > 0, nil)

	require.Equal(t, 1, evaluated)
	require.Equal(t, []string{
		"IsTrue(x > 0)",
		"IsTrue(x > 0): x must be positive",
		"IsTrue(x > 0): got -1",
		"IsTrue(x > 0)",
	}, rec.trues)
	require.Empty(t, rec.falses)
}

func TestIsFalseReportsFormattedMessage(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)

	items := []string{"sword"}
	assert.IsFalse(len(items) == 1, "")
	assert.IsFalseFunc(len(items) == 1, func() string { return fmt.Sprintf("holding %v", items) })

	require.Equal(t, []string{
		"IsFalse(len(items) == 1)",
		"IsFalse(len(items) == 1): holding [sword]",
	}, rec.falses)
	require.Empty(t, rec.trues)
}

func TestNullAssertionsReportThroughReportTrue(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)

	value := 42
	ptr := &value
	var missing *int

	assert.IsNull(ptr, "must be released")
	assert.IsNullFunc(ptr, func() string { return fmt.Sprint(*ptr) })
	assert.IsNotNull(missing, "")
	assert.IsNotNull[*int](nil, "")
	assert.IsNotNullFunc(missing, func() string { return "missing" })

	require.Equal(t, []string{
		"IsNull(ptr): must be released",
		"IsNull(ptr): 42",
		"IsNotNull(missing)",
		"IsNotNull(nil)",
		"IsNotNull(missing): missing",
	}, rec.trues)
	require.Empty(t, rec.falses)
}

type enemy struct{ hp int }

func TestNullAssertionsHonorRegisteredPredicate(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)
	assert.RegisterNullPredicate(func(e *enemy) bool { return e.hp <= 0 })
	t.Cleanup(assert.UnregisterNullPredicate[*enemy])

	dead := &enemy{hp: 0}
	alive := &enemy{hp: 10}

	assert.IsNull(dead, "")
	assert.IsNotNull(alive, "")
	require.Empty(t, rec.trues)

	assert.IsNotNull(dead, "killed this frame")
	assert.IsNull(alive, "")
	require.Equal(t, []string{
		"IsNotNull(dead): killed this frame",
		"IsNull(alive)",
	}, rec.trues)
}

func TestIsNotNullIsTheInverseOfIsNull(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)
	assert.RegisterNullPredicate(func(e *enemy) bool { return e.hp <= 0 })
	t.Cleanup(assert.UnregisterNullPredicate[*enemy])

	value := 3
	inputs := []any{nil, (*int)(nil), &value, 0, "", []int(nil), []int{}, &enemy{}, &enemy{hp: 1}}
	for _, input := range inputs {
		before := len(rec.trues)
		assert.IsNull(input, "")
		nullFailed := len(rec.trues) > before

		before = len(rec.trues)
		assert.IsNotNull(input, "")
		notNullFailed := len(rec.trues) > before

		require.NotEqual(t, nullFailed, notNullFailed, "input %#v", input)
	}
}

func TestSinkThatReturnsLetsCallerContinue(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)

	reached := false
	func() {
		assert.IsTrue(false, "")
		assert.IsFalse(true, "")
		reached = true
	}()
	require.True(t, reached)
	require.Equal(t, []string{"IsTrue(false)"}, rec.trues)
	require.Equal(t, []string{"IsFalse(true)"}, rec.falses)
}

func TestNoSinkPanicsWithAssertionFailure(t *testing.T) {
	withSink(t, nil)

	recovered := catch(func() { assert.IsTrue(false, "x must hold") })
	failure, ok := assert.FailureFromPanic(recovered)
	require.True(t, ok)
	require.Equal(t, assert.ConditionIsTrue, failure.Condition)
	require.Equal(t, "false", failure.Expression)
	require.Equal(t, "x must hold", failure.Message)
	require.EqualError(t, failure, "IsTrue(false): x must hold")

	cases := []struct {
		name      string
		fn        func()
		condition assert.ConditionType
		message   string
	}{
		{"IsTrueFunc", func() { assert.IsTrueFunc(1 > 2, func() string { return "lazy" }) }, assert.ConditionIsTrue, "IsTrue(1 > 2): lazy"},
		{"IsFalse", func() { assert.IsFalse(2 > 1, "") }, assert.ConditionIsFalse, "IsFalse(2 > 1)"},
		{"IsFalseFunc", func() { assert.IsFalseFunc(2 > 1, nil) }, assert.ConditionIsFalse, "IsFalse(2 > 1)"},
		{"IsNull", func() { assert.IsNull(&enemy{}, "leaked") }, assert.ConditionIsNull, "IsNull(&enemy{}): leaked"},
		{"IsNullFunc", func() { assert.IsNullFunc(&enemy{}, nil) }, assert.ConditionIsNull, "IsNull(&enemy{})"},
		{"IsNotNull", func() { assert.IsNotNull[*enemy](nil, "") }, assert.ConditionIsNotNull, "IsNotNull(nil)"},
		{"IsNotNullFunc", func() { assert.IsNotNullFunc[error](nil, nil) }, assert.ConditionIsNotNull, "IsNotNull(nil)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			failure, ok := assert.FailureFromPanic(catch(c.fn))
			require.True(t, ok)
			require.Equal(t, c.condition, failure.Condition)
			require.EqualError(t, failure, c.message)
		})
	}
}

func TestPanicSinkThroughAssertion(t *testing.T) {
	withSink(t, assert.PanicSink{})

	recovered := catch(func() { assert.IsNotNull[*enemy](nil, "spawn failed") })
	require.Equal(t, assert.AssertionFailureMsgPrefix+": IsNotNull(nil): spawn failed", recovered)
	require.True(t, assert.IsFailurePanic(recovered))
}
