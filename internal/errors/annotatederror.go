// Package errors provides error wrapping with slog annotations and source
// locations, plus re-exports of the standard library helpers so callers need
// only one errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError carries a message, an optional wrapped error, slog attributes
// and the file:line where it was created.
type annotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	source      string
}

func (e *annotatedError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates a new error intended for package-level sentinel values.
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:    msg,
		source: caller(1),
	}
}

// Wrap annotates err with a message and optional slog attributes. The
// attributes surface in logs through SlogError. A nil err is allowed; the
// result then carries only the message.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &annotatedError{
		msg:         msg,
		err:         err,
		annotations: annotations,
		source:      caller(1),
	}
}

// DecoratePanic converts a recovered panic value into an error whose source
// points at the panic site. Returns nil when the panic value is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		source: panicSite(),
	}
}

// SlogError renders an error as a structured attribute group with the error
// message, the creation site of the nearest annotated error, and all
// annotations found in the chain. Safe to call with a nil error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	attrs := []slog.Attr{slog.String("message", err.Error())}
	var annotated *annotatedError
	if errors.As(err, &annotated) && annotated.source != "" {
		attrs = append(attrs, slog.String("source", annotated.source))
	}
	if annotations := collectAnnotations(err); len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// collectAnnotations gathers the annotations from every annotated error in the
// chain, outermost first, traversing joined errors as well.
func collectAnnotations(err error) []slog.Attr {
	var out []slog.Attr
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if annotated, ok := err.(*annotatedError); ok {
			out = append(out, annotated.annotations...)
			walk(annotated.err)
			return
		}
		switch unwrappable := err.(type) {
		case interface{ Unwrap() error }:
			walk(unwrappable.Unwrap())
		case interface{ Unwrap() []error }:
			for _, joined := range unwrappable.Unwrap() {
				walk(joined)
			}
		}
	}
	walk(err)
	return out
}

// caller resolves the file:line that is skip frames above the caller of this
// function.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// panicSite finds the frame that panicked by walking past runtime.gopanic.
// Falls back to empty when the stack does not contain a panic, e.g. when
// DecoratePanic is called outside a deferred recover.
func panicSite() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	seenPanic := false
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			return ""
		}
	}
}

// Standard library re-exports.

// New returns an error with the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
