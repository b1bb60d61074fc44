package parseresult

import (
	"github.com/napalu/parseresult/errs"
)

// ParseError is a diagnostic produced while evaluating a result. It is returned, never
// raised: callers collect ParseErrors from across the tree and decide what to do with them.
type ParseError struct {
	message string
	result  Result
	kind    error
}

// NewParseError returns a ParseError carrying a free-form message about result.
// It unwraps to errs.ErrResultError.
func NewParseError(message string, result Result) *ParseError {
	return newParseError(message, result, errs.ErrResultError)
}

func newParseError(message string, result Result, kind error) *ParseError {
	return &ParseError{
		message: message,
		result:  result,
		kind:    kind,
	}
}

// Message returns the formatted diagnostic text
func (e *ParseError) Message() string {
	return e.message
}

// Result returns the result during whose evaluation the error was produced
func (e *ParseError) Result() Result {
	return e.result
}

func (e *ParseError) Error() string {
	return e.message
}

// Unwrap returns the sentinel describing the kind of diagnostic, so that
// errors.Is(err, errs.ErrUnrecognizedArgument) works.
func (e *ParseError) Unwrap() error {
	return e.kind
}
