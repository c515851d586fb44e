// Package errors provides comprehensive error handling utilities for glmkit.
//
// This file contains panic recovery helpers that convert unexpected panics,
// including the shape-mismatch panics raised by gonum's mat package, into
// structured errors.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError represents an error created from a recovered panic.
// It includes the original panic value and stack trace information.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns the panic value when it was itself an error, nil otherwise.
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String provides detailed information including the stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a new PanicError with the given operation context and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error assigned through err. It is meant
// to be deferred by functions with a named error return:
//
//	func (g *GLM) Fit(...) (err error) {
//	    defer errors.Recover(&err, "GLM.Fit")
//	    // ...
//	}
//
// Panic values that are errors themselves, such as mat.ErrShape from gonum,
// stay matchable with Is and As through the PanicError chain. If err already
// holds an error when the panic fires, the panic information wraps it.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)

		if *err != nil {
			*err = fmt.Errorf("panic in %s: %v (original error: %w)",
				operation, r, *err)
		} else {
			*err = WithStack(panicErr)
		}
	}
}

// SafeExecute runs fn and recovers from any panic, converting it to an error.
//
// Example:
//
//	err := SafeExecute("glm: objective evaluation", func() error {
//	    // code that may panic inside gonum
//	    return someOperation()
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
