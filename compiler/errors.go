package compiler

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorType classifies a compilation failure.
type ErrorType string

const (
	SyntaxError      ErrorType = "SyntaxError"
	ReferenceError   ErrorType = "ReferenceError"
	UnsupportedError ErrorType = "UnsupportedError"
	ResourceError    ErrorType = "ResourceError"
)

var (
	ErrExpected       = errors.New("expected token missing")
	ErrRedeclared     = errors.New("identifier already exists")
	ErrUndeclared     = errors.New("identifier not found")
	ErrUnsupported    = errors.New("unsupported construct")
	ErrArenaExhausted = errors.New("arena exhausted")
)

// CompileError is returned by every fallible stage of the pipeline. Any
// CompileError is terminal for the whole compilation.
type CompileError struct {
	Type    ErrorType
	Message string

	cause error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *CompileError) Unwrap() error {
	return e.cause
}

func newCompileError(errType ErrorType, cause error, format string, args ...interface{}) *CompileError {
	return &CompileError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

// expectedError reports a missing token. found is nil at end of input.
func expectedError(expected string, found *Token) *CompileError {
	return newCompileError(SyntaxError, ErrExpected, "`%s` expected, got %s", expected, describeToken(found))
}

func describeToken(tok *Token) string {
	if tok == nil {
		return "end of input"
	}
	return fmt.Sprintf("`%s`", tok.Text())
}
