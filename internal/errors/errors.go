// Package errors defines the coded error values used by the compiler
// pipeline. Compiler-time errors (parse, discovery, validation, assembly)
// abort the run with no partial output; decode-time errors belong to the
// generated bindings, not to this package.
package errors

import (
	"fmt"
)

// Error codes for the compiler pipeline.
const (
	ErrCodeSchemaParse            = "SCHEMA_PARSE_FAILED"
	ErrCodeOverrideConflict       = "OVERRIDE_DISCOVERY_CONFLICT"
	ErrCodeOverrideEmpty          = "OVERRIDE_EMPTY_DOCUMENT"
	ErrCodeOverrideInvalidAddress = "OVERRIDE_INVALID_ADDRESS"
	ErrCodeOverrideDefaultAddress = "OVERRIDE_DEFAULT_ADDRESS"
	ErrCodeOverrideZeroTag        = "OVERRIDE_ALL_ZERO_DISCRIMINATOR"
	ErrCodeOverrideUnknownEntity  = "OVERRIDE_UNKNOWN_ENTITY"
	ErrCodeCodegenAssembly        = "CODEGEN_ASSEMBLY_FAILED"
)

// CompilerError is a coded error with an optional cause and free-form
// detail context.
type CompilerError struct {
	// Code is a unique error code for this error kind.
	Code string

	// Message is a human-readable error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error

	// Details contains additional error context.
	Details map[string]any
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *CompilerError) Unwrap() error {
	return e.Cause
}

// Is matches on the error code so sub-kinds stay distinguishable.
func (e *CompilerError) Is(target error) bool {
	t, ok := target.(*CompilerError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause attaches the underlying error.
func (e *CompilerError) WithCause(cause error) *CompilerError {
	e.Cause = cause
	return e
}

// WithDetails attaches additional context.
func (e *CompilerError) WithDetails(details map[string]any) *CompilerError {
	e.Details = details
	return e
}

// NewError creates a new CompilerError.
func NewError(code, message string) *CompilerError {
	return &CompilerError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new CompilerError with a formatted message.
func Newf(code, format string, args ...any) *CompilerError {
	return &CompilerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
