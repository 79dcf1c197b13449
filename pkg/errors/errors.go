// Package errors provides structured errors for loading, resolving and
// rendering layout documents. The layout core itself never fails.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDecode indicates a document that could not be parsed.
	KindDecode
	// KindValidate indicates a well-formed document describing an invalid tree.
	KindValidate
	// KindVersion indicates an unsupported or malformed document version.
	KindVersion
	// KindRender indicates a failure producing debug output.
	KindRender
	// KindIO indicates a filesystem failure.
	KindIO
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindValidate:
		return "validate"
	case KindVersion:
		return "version"
	case KindRender:
		return "render"
	case KindIO:
		return "io"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error raised at the document or CLI boundary.
type Error struct {
	// Op is the operation that failed (e.g., "document.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the document file, if applicable.
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error for op wrapping err.
func New(op string, kind ErrorKind, path string, err error) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind of the outermost [Error] in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	var p *PanicError
	if stderrors.As(err, &p) {
		return KindPanic
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "document.Resolve").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// NodeError describes a problem with one node of a document tree.
type NodeError struct {
	// Node is the slash-separated location of the node (e.g., "root/children[2]").
	Node string
	// Field is the offending field, if any.
	Field string
	// Reason explains what is wrong.
	Reason string
}

func (e *NodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Node, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Node, e.Reason)
}

// ErrorHandler receives errors reported through [Report] and [Recover].
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
