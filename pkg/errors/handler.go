package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerSlot struct{ h ErrorHandler }

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// Handler returns the handler errors are currently reported to.
func Handler() ErrorHandler {
	return current.Load().h
}

// SetHandler installs h as the global handler and returns the previous one.
// Pass nil to restore a non-verbose LogHandler.
//
//	defer errors.SetHandler(errors.SetHandler(h))
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerSlot{h: h}).h
}

// Report sends err to the global handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recover reports a panic in the calling goroutine and lets it continue.
//
//	defer errors.Recover("watch.reload")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, r))
	}
}

// RecoverTo is like Recover but also stores the panic in *errp, so a
// function with a named error result returns it.
//
//	defer errors.RecoverTo("document.Build", &err)
func RecoverTo(op string, errp *error) {
	if r := recover(); r != nil {
		p := newPanic(op, r)
		ReportPanic(p)
		if errp != nil {
			*errp = p
		}
	}
}

func newPanic(op string, value any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the caller's stack, one function and file:line
// pair per frame.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
	}
	return sb.String()
}
