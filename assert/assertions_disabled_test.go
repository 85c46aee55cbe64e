//go:build disable_assertions

package assert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/james-orcales/lazyassert/assert"
)

func TestEnabled(t *testing.T) {
	require.False(t, assert.Enabled)
}

func TestDisabledAssertionsHaveNoEffect(t *testing.T) {
	// Without a sink, an active assertion would panic.
	withSink(t, nil)

	evaluated := 0
	msg := func() string {
		evaluated++
		return "never built"
	}
	value := 1

	require.NotPanics(t, func() {
		assert.IsTrue(false, "x must hold")
		assert.IsTrueFunc(false, msg)
		assert.IsFalse(true, "")
		assert.IsFalseFunc(true, msg)
		assert.IsNull(&value, "")
		assert.IsNullFunc(&value, msg)
		assert.IsNotNull[*int](nil, "")
		assert.IsNotNullFunc[*int](nil, msg)
	})
	require.Zero(t, evaluated)
}

func TestDisabledAssertionsNeverReachSink(t *testing.T) {
	rec := &recorder{}
	withSink(t, rec)

	assert.IsTrue(false, "")
	assert.IsFalse(true, "")
	assert.IsNull(rec, "")
	assert.IsNotNull[*recorder](nil, "")

	require.Empty(t, rec.trues)
	require.Empty(t, rec.falses)
}
