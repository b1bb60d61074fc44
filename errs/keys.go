// Package errs holds the translation keys and sentinel errors of the parseresult module.
package errs

const (
	prefixKey = "parseresult"
)

const (
	ErrorPrefixKey      = prefixKey + ".error"
	ValidationPrefixKey = prefixKey + ".validation"
)

// Construction errors
const (
	ErrNilSymbolKey       = ErrorPrefixKey + ".nil_symbol"
	ErrInvalidResultKey   = ErrorPrefixKey + ".invalid_result"
	ErrDuplicateResultKey = ErrorPrefixKey + ".duplicate_result"
)

// Diagnostic kinds carried by ParseError
const (
	ErrUnrecognizedArgumentKey          = ErrorPrefixKey + ".unrecognized_argument"
	ErrUnrecognizedCommandOrArgumentKey = ErrorPrefixKey + ".unrecognized_command_or_argument"
	ErrResultErrorKey                   = ErrorPrefixKey + ".result_error"
)

// Validation message templates
const (
	MsgUnrecognizedArgumentKey          = ValidationPrefixKey + ".unrecognized_argument"
	MsgUnrecognizedCommandOrArgumentKey = ValidationPrefixKey + ".unrecognized_command_or_argument"
)
