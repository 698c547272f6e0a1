// Package diagnostics defines the error values surfaced by the compiler
// stages. Errors carry a stable code, the offending token, and the source
// file, so boundary layers (CLI, tooling) can render them however they need.
package diagnostics

import (
	"fmt"

	"github.com/vexlang/vex/internal/token"
)

// ErrorCode is a stable identifier for a class of diagnostic.
type ErrorCode string

const (
	// ErrP001 - unexpected token for the parser's current state
	ErrP001 ErrorCode = "P001"
	// ErrP002 - reference to a class that is not declared in the package
	ErrP002 ErrorCode = "P002"
	// ErrP003 - reference to an object that is not declared in the function
	ErrP003 ErrorCode = "P003"
	// ErrP004 - parser was run without a token stream
	ErrP004 ErrorCode = "P004"
)

// DiagnosticError is a single compiler diagnostic. Token is the token the
// stage was looking at when it failed; File is filled in by the pipeline.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

// NewError creates a diagnostic for the given code and offending token.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func (e *DiagnosticError) Error() string {
	location := fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
	if e.File != "" {
		location = e.File + ":" + location
	}
	return fmt.Sprintf("%s: [%s] %s (got %s)", location, e.Code, e.Message, e.Token)
}
