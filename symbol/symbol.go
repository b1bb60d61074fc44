// Package symbol describes the declarations a parse-result tree is built against:
// commands, options and the arguments that consume tokens.
package symbol

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/parseresult/token"
)

// MaximumArity is the upper bound used by the open-ended arity presets.
const MaximumArity = 100000

// Arity is the (minimum, maximum) number of tokens an argument may consume.
type Arity struct {
	Min int
	Max int
}

var (
	Zero       = Arity{Min: 0, Max: 0}
	ZeroOrOne  = Arity{Min: 0, Max: 1}
	ExactlyOne = Arity{Min: 1, Max: 1}
	ZeroOrMore = Arity{Min: 0, Max: MaximumArity}
	OneOrMore  = Arity{Min: 1, Max: MaximumArity}
)

// Symbol is a declared command, option or argument.
//
// ID must be unique and stable for the lifetime of the declaration: parse-result
// trees use it to key children and memoized default values.
type Symbol interface {
	ID() string
	Name() string
	Arguments() []Argument
}

// IsNil reports whether sym is nil or an interface holding a nil pointer,
// such as a (*Command)(nil).
func IsNil(sym Symbol) bool {
	if sym == nil {
		return true
	}
	v := reflect.ValueOf(sym)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Argument is a Symbol which consumes tokens.
type Argument interface {
	Symbol
	Arity() Arity
	AllowedValues() ValueSet
	HasDefaultValue() bool
	DefaultValue() any
}

// ResultContext is the view of a parse result handed to a ContextualDefault.
type ResultContext interface {
	Symbol() Symbol
	Tokens() []token.Token
	ErrorMessage() string
	SetErrorMessage(msg string)
}

// ContextualDefault is implemented by arguments whose default value depends on the
// result it is being resolved for.
type ContextualDefault interface {
	DefaultValueFor(ctx ResultContext) any
}

// NameConversionFunc converts a declared name to the form stored on a symbol
type NameConversionFunc func(string) string

var (
	// DefaultCommandNameConverter lower-cases command names: "Build" -> "build"
	DefaultCommandNameConverter NameConversionFunc = strings.ToLower

	// DefaultOptionNameConverter kebab-cases option names: "dryRun" -> "dry-run"
	DefaultOptionNameConverter NameConversionFunc = strcase.ToKebab
)
