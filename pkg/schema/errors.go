package schema

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a definition parse failure.
type ErrorCode string

const (
	// CodeInvalidSchema covers structural failures: the value is not
	// an object, or the `states` mapping is missing.
	CodeInvalidSchema ErrorCode = "INVALID_SCHEMA"
	// CodeMissingInitial is raised when `initial` is absent or not a
	// string.
	CodeMissingInitial ErrorCode = "MISSING_INITIAL"
	// CodeInvalidReference is raised when the initial id or a
	// transition target does not name a declared state.
	CodeInvalidReference ErrorCode = "INVALID_REFERENCE"
)

// ParseError is a single, fatal definition failure. Path locates the
// offending element in the source value (e.g. "states.idle.on.START").
type ParseError struct {
	Code    ErrorCode
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

// NewParseError builds a ParseError with a formatted message.
func NewParseError(code ErrorCode, path, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}

// AsParseError unwraps err into a *ParseError if possible.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
