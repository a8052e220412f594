// Package errors provides error wrapping that preserves the original error
// while recording the call sites it passed through and any annotations
// attached along the way.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

type aerr struct {
	err         error
	locations   []string
	annotations []string
}

func (e aerr) Error() string {
	msg := e.err.Error()
	if len(e.annotations) > 0 {
		msg += " (" + strings.Join(e.annotations, ", ") + ")"
	}
	return msg
}

func (e aerr) Unwrap() error {
	return e.err
}

func wrap(err error) aerr {
	if e, ok := err.(aerr); ok {
		return e
	}
	return aerr{err: err}
}

// New returns a new error with the provided message. The returned
// error carries no trace; use Trace at the point of return to record one.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf returns a new error with the formatted message.
func Errorf(format string, v ...interface{}) error {
	return fmt.Errorf(format, v...)
}

// Trace records the caller's location against the error. It is expected
// to be called at every point an error crosses a function boundary so that
// the path the error took can be reconstructed.
func Trace(err error) error {
	if err == nil {
		return nil
	}
	e := wrap(err)
	e.locations = append(e.locations, location(1))
	return e
}

// Cause returns the underlying error if err was wrapped by this
// package, otherwise it returns err unmodified.
func Cause(err error) error {
	if e, ok := err.(aerr); ok {
		return e.err
	}
	return err
}

// Annotate attaches context to an error that is useful for debugging.
// A nil error stays nil.
func Annotate(err error, msg string) error {
	if err == nil {
		return nil
	}
	e := wrap(err)
	e.annotations = append(e.annotations, msg)
	return e
}

// Annotatef attaches formatted context to an error. A nil error stays nil.
func Annotatef(err error, f string, v ...interface{}) error {
	if err == nil {
		return nil
	}
	e := wrap(err)
	e.annotations = append(e.annotations, fmt.Sprintf(f, v...))
	return e
}

// Annotations returns all annotations attached to an error.
func Annotations(err error) []string {
	if e, ok := err.(aerr); ok {
		return e.annotations
	}
	return nil
}

// Locations returns the call sites recorded against the error in the
// order Trace was called.
func Locations(err error) []string {
	if e, ok := err.(aerr); ok {
		return e.locations
	}
	return nil
}

func location(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return fmt.Sprintf("%s:%d", file, line)
}
