package errors

import (
	"fmt"
)

// ParseError represents a gallery file that could not be decoded, with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures gallery validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HostError wraps a failed host operation (focus, clipboard, geometry).
// Host failures never reach component callers; they are logged and dropped.
type HostError struct {
	Op  string
	Err error
}

// NewHostError constructs a HostError.
func NewHostError(op string, err error) error {
	return &HostError{Op: op, Err: err}
}

func (e *HostError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("host %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *HostError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HandlerPanicError records a recovered panic raised by a caller-supplied handler or task.
type HandlerPanicError struct {
	Op    string
	Value any
}

// NewHandlerPanicError constructs a HandlerPanicError. When the recovered
// value is itself an error it is kept for unwrapping.
func NewHandlerPanicError(op string, value any) error {
	return &HandlerPanicError{Op: op, Value: value}
}

func (e *HandlerPanicError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("handler %s panicked: %v", e.Op, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *HandlerPanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ContractError describes a caller contract violation such as a zero page
// total. Components degrade instead of returning it; it only feeds dev warnings.
type ContractError struct {
	Component string
	Message   string
}

// NewContractError constructs a ContractError.
func NewContractError(component, message string) error {
	return &ContractError{Component: component, Message: message}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Component, e.Message)
}
