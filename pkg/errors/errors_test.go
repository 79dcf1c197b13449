package errors

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "document.Build",
		Kind: KindValidate,
		Err:  &NodeError{Node: "root/children[1]", Field: "axis", Reason: "unknown axis \"diagonal\""},
	}
	want := `document.Build [validate]: root/children[1]: field "axis": unknown axis "diagonal"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithPath(t *testing.T) {
	err := New("document.Load", KindIO, "layouts/home.yaml", fs.ErrNotExist)
	got := err.Error()
	if !strings.Contains(got, "path=layouts/home.yaml") {
		t.Errorf("error string %q should contain the path", got)
	}
	if KindOf(fmt.Errorf("wrapped: %w", err)) != KindIO {
		t.Errorf("KindOf should see through wrapping")
	}
	if !isNotExist(err) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func isNotExist(err error) bool {
	for err != nil {
		if err == fs.ErrNotExist {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != KindUnknown {
		t.Error("expected nil to be unknown")
	}
	if KindOf(fmt.Errorf("plain")) != KindUnknown {
		t.Error("expected plain error to be unknown")
	}
	if KindOf(&PanicError{Value: "boom"}) != KindPanic {
		t.Error("expected PanicError to be a panic")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindDecode, "decode"},
		{KindValidate, "validate"},
		{KindVersion, "version"},
		{KindRender, "render"},
		{KindIO, "io"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "document.Resolve"
	if got, want := err.Error(), "panic in document.Resolve: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestNodeErrorWithoutField(t *testing.T) {
	err := &NodeError{Node: "root", Reason: "missing kind"}
	if got, want := err.Error(), "root: missing kind"; got != want {
		t.Errorf("NodeError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{onError: func(err *Error) { captured = err }}

	defer SetHandler(SetHandler(handler))

	Report(&Error{Op: "test.op", Kind: KindDecode, Err: fmt.Errorf("bad yaml")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	Report(nil)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverTo(t *testing.T) {
	defer SetHandler(SetHandler(&testHandler{}))

	run := func() (err error) {
		defer RecoverTo("test.recoverTo", &err)
		panic("boom")
	}
	err := run()
	if err == nil {
		t.Fatal("expected panic to become an error")
	}
	if KindOf(err) != KindPanic {
		t.Errorf("expected panic kind, got %v", KindOf(err))
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandler(t *testing.T) {
	h := &testHandler{}
	prev := SetHandler(h)
	if Handler() != h {
		t.Errorf("Handler() = %T, want the installed handler", Handler())
	}
	if got := SetHandler(nil); got != h {
		t.Errorf("SetHandler should return the previous handler, got %T", got)
	}
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install a LogHandler, got %T", Handler())
	}
	SetHandler(prev)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&Error{Op: "render.PNG", Kind: KindRender, Err: fmt.Errorf("empty canvas")})
	if got, want := buf.String(), "[boxkit error] render.PNG: empty canvas\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&Error{Op: "document.Load", Kind: KindIO, Path: "a.yaml", Err: fs.ErrNotExist, StackTrace: "frame"})
	if got := buf.String(); !strings.Contains(got, "[io] path=a.yaml") || !strings.Contains(got, "Stack trace:\nframe") {
		t.Errorf("unexpected verbose output %q", got)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "cmd.watch", Value: "boom"})
	if got := buf.String(); !strings.HasPrefix(got, "[boxkit panic] cmd.watch: boom") {
		t.Errorf("unexpected panic output %q", got)
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
