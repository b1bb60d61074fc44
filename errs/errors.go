package errs

import (
	"github.com/napalu/parseresult/i18n"
)

// Construction errors: returned when the tree itself cannot be built as requested
var (
	ErrNilSymbol       = i18n.NewError(ErrNilSymbolKey)
	ErrInvalidResult   = i18n.NewError(ErrInvalidResultKey)
	ErrDuplicateResult = i18n.NewError(ErrDuplicateResultKey)
)

// Diagnostic errors: the kinds a ParseError unwraps to
var (
	ErrUnrecognizedArgument          = i18n.NewError(ErrUnrecognizedArgumentKey)
	ErrUnrecognizedCommandOrArgument = i18n.NewError(ErrUnrecognizedCommandOrArgumentKey)
	ErrResultError                   = i18n.NewError(ErrResultErrorKey)
)
