package symbol

import (
	"github.com/google/uuid"
)

// Arg is the concrete Argument declaration. It implements ContextualDefault, so a
// parse-result tree always resolves its default through DefaultValueFor.
type Arg struct {
	id           string
	name         string
	description  string
	arity        Arity
	allowed      ValueSet
	defaultValue any
	hasDefault   bool
	defaultFunc  func() any
	contextual   func(ctx ResultContext) any
}

// NewArg declares an argument named name. Arity defaults to ExactlyOne.
//
// Usage example:
//
//	target := NewArg("target",
//	    WithArity(ZeroOrOne),
//	    WithDefaultValue("."),
//	    WithDescription("directory to build"))
func NewArg(name string, configs ...ConfigureArgFunc) *Arg {
	a := &Arg{
		id:    uuid.New().String(),
		name:  name,
		arity: ExactlyOne,
	}
	for _, config := range configs {
		config(a)
	}

	return a
}

func (a *Arg) ID() string { return a.id }

func (a *Arg) Name() string { return a.name }

func (a *Arg) Description() string { return a.description }

// Arguments returns the argument itself: an argument is its own single token consumer.
func (a *Arg) Arguments() []Argument {
	return []Argument{a}
}

func (a *Arg) Arity() Arity { return a.arity }

func (a *Arg) AllowedValues() ValueSet { return a.allowed }

// HasDefaultValue reports whether any default (static, computed or contextual) was declared
func (a *Arg) HasDefaultValue() bool {
	return a.hasDefault || a.defaultFunc != nil || a.contextual != nil
}

// DefaultValue returns the declared default without result context. A contextual
// default is not consulted here.
func (a *Arg) DefaultValue() any {
	if a.defaultFunc != nil {
		return a.defaultFunc()
	}

	return a.defaultValue
}

// DefaultValueFor returns the contextual default for ctx when one was declared, else DefaultValue.
func (a *Arg) DefaultValueFor(ctx ResultContext) any {
	if a.contextual != nil {
		return a.contextual(ctx)
	}

	return a.DefaultValue()
}

func (a *Arg) String() string {
	return "<" + a.name + ">"
}
