// Package token defines the immutable units of input consumed by a parse-result tree.
package token

import "fmt"

// Type tags a Token with the role it plays in the input.
type Type int

const (
	Argument   Type = iota // Argument is a literal value typed by the user
	Command                // Command names a command or subcommand
	Option                 // Option is an option marker such as --color
	DoubleDash             // DoubleDash ends option processing
	Directive              // Directive is a [directive] token
	Implicit               // Implicit is a placeholder synthesized by the parser for an unset value
)

// String returns the string representation of a Type
func (t Type) String() string {
	switch t {
	case Argument:
		return "argument"
	case Command:
		return "command"
	case Option:
		return "option"
	case DoubleDash:
		return "double-dash"
	case Directive:
		return "directive"
	case Implicit:
		return "implicit"
	}

	return "unknown"
}

// Token is a unit of input text. The zero value is an empty Argument token at position 0.
type Token struct {
	value    string
	typ      Type
	position int
}

// New returns a Token of the given type found at position in the input.
func New(value string, typ Type, position int) Token {
	return Token{value: value, typ: typ, position: position}
}

// NewImplicit returns a placeholder token standing in for a value the user did not type.
// Implicit tokens have no source position and report -1.
func NewImplicit(value string) Token {
	return Token{value: value, typ: Implicit, position: -1}
}

func (t Token) Value() string { return t.value }

func (t Token) Type() Type { return t.typ }

func (t Token) Position() int { return t.position }

// IsImplicit reports whether the token was synthesized rather than typed.
func (t Token) IsImplicit() bool {
	return t.typ == Implicit
}

func (t Token) String() string {
	return fmt.Sprintf("%s: %s", t.typ, t.value)
}
