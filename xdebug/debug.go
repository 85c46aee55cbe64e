package xdebug

import (
	"fmt"
	"io"
	"path"
	"runtime"
)

const StackTraceDepth = 10

// Frames returns up to StackTraceDepth frames starting `skip` frames above the
// caller of Frames. Function names are trimmed to their last path element and
// the test harness's generated main is dropped.
func Frames(skip int) []runtime.Frame {
	var pcs [StackTraceDepth]uintptr
	n := runtime.Callers(2+max(0, skip), pcs[:])
	if n == 0 {
		return nil
	}
	it := runtime.CallersFrames(pcs[:n])

	frames := make([]runtime.Frame, 0, n)
	for {
		frame, more := it.Next()
		if frame.File != "_testmain.go" {
			frame.Function = path.Base(frame.Function)
			frames = append(frames, frame)
		}
		if !more {
			break
		}
	}
	return frames
}

// FprintStackTrace writes the frames starting `skip` frames above its caller
// as an aligned table.
//
// Output:
//
//	assert.report          | /home/me/lazyassert/assert/assert.go:144
//	assert.fail            | /home/me/lazyassert/assert/assertions_enabled.go:14
//	assert.IsNotNull[...]  | /home/me/lazyassert/assert/assertions_enabled.go:92
//	world.(*World).Despawn | /home/me/game/world/world.go:88
func FprintStackTrace(w io.Writer, skip int) {
	frames := Frames(skip + 1)

	width := 0
	for _, frame := range frames {
		width = max(width, len(frame.Function))
	}
	for _, frame := range frames {
		fmt.Fprintf(w, "%-*s | %s:%d\n", width, frame.Function, frame.File, frame.Line)
	}
}
