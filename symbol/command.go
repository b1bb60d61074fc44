package symbol

import (
	"github.com/google/uuid"
)

// Command is a named verb with its own arguments, options and subcommands.
type Command struct {
	id          string
	name        string
	description string
	arguments   []Argument
	options     []*Option
	subcommands []*Command
}

// NewCommand declares a command; the name is normalized with DefaultCommandNameConverter.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	c := &Command{
		id:   uuid.New().String(),
		name: DefaultCommandNameConverter(name),
	}
	for _, config := range configs {
		config(c)
	}

	return c
}

func (c *Command) ID() string { return c.id }

func (c *Command) Name() string { return c.name }

func (c *Command) Description() string { return c.description }

func (c *Command) Arguments() []Argument { return c.arguments }

func (c *Command) Options() []*Option { return c.options }

func (c *Command) Subcommands() []*Command { return c.subcommands }

// Subcommand returns the direct subcommand called name
func (c *Command) Subcommand(name string) (*Command, bool) {
	name = DefaultCommandNameConverter(name)
	for _, sub := range c.subcommands {
		if sub.name == name {
			return sub, true
		}
	}

	return nil, false
}

// Option returns the option matching name or one of its aliases
func (c *Command) Option(name string) (*Option, bool) {
	for _, o := range c.options {
		if o.HasAlias(name) {
			return o, true
		}
	}

	return nil, false
}

func (c *Command) String() string {
	return c.name
}
