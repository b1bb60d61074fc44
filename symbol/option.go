package symbol

import (
	"strings"

	"github.com/google/uuid"
)

// Option is a named flag which may carry a single value argument.
type Option struct {
	id          string
	name        string
	aliases     []string
	description string
	value       *Arg
}

// NewOption declares an option. Leading dashes are stripped and the remainder is
// normalized with DefaultOptionNameConverter, so "--dryRun" is named "dry-run".
func NewOption(name string, configs ...ConfigureOptionFunc) *Option {
	o := &Option{
		id:   uuid.New().String(),
		name: normalizeOptionName(name),
	}
	for _, config := range configs {
		config(o)
	}

	return o
}

func (o *Option) ID() string { return o.id }

func (o *Option) Name() string { return o.name }

func (o *Option) Aliases() []string { return o.aliases }

func (o *Option) Description() string { return o.description }

// Value returns the option's value argument or nil for a flag without value
func (o *Option) Value() *Arg { return o.value }

// Arguments returns the value argument, if any
func (o *Option) Arguments() []Argument {
	if o.value == nil {
		return nil
	}

	return []Argument{o.value}
}

// HasAlias reports whether alias names this option. Leading dashes are ignored and
// alias is normalized like the option name, so "--dryRun" matches "dry-run".
func (o *Option) HasAlias(alias string) bool {
	alias = normalizeOptionName(alias)
	if alias == o.name {
		return true
	}
	for _, a := range o.aliases {
		if a == alias {
			return true
		}
	}

	return false
}

func normalizeOptionName(name string) string {
	return DefaultOptionNameConverter(strings.TrimLeft(name, "-"))
}

func (o *Option) String() string {
	return "--" + o.name
}
