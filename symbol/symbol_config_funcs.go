package symbol

// ConfigureArgFunc is used when declaring arguments
type ConfigureArgFunc func(a *Arg)

// ConfigureOptionFunc is used when declaring options
type ConfigureOptionFunc func(o *Option)

// ConfigureCommandFunc is used when declaring commands
type ConfigureCommandFunc func(c *Command)

// WithArity sets the number of tokens the argument may consume
func WithArity(arity Arity) ConfigureArgFunc {
	return func(a *Arg) {
		a.arity = arity
	}
}

// WithAllowedValues restricts the literal values the argument accepts
func WithAllowedValues(values ...string) ConfigureArgFunc {
	return func(a *Arg) {
		a.allowed = NewValueSet(values...)
	}
}

// WithDefaultValue sets a static default value
func WithDefaultValue(value any) ConfigureArgFunc {
	return func(a *Arg) {
		a.defaultValue = value
		a.hasDefault = true
	}
}

// WithDefaultFunc sets a function computing the default value each time it is requested
func WithDefaultFunc(fn func() any) ConfigureArgFunc {
	return func(a *Arg) {
		a.defaultFunc = fn
	}
}

// WithContextualDefault sets a default computed from the result it is resolved for
func WithContextualDefault(fn func(ctx ResultContext) any) ConfigureArgFunc {
	return func(a *Arg) {
		a.contextual = fn
	}
}

// WithDescription sets the argument description
func WithDescription(description string) ConfigureArgFunc {
	return func(a *Arg) {
		a.description = description
	}
}

// WithValue attaches the value argument of an option
func WithValue(value *Arg) ConfigureOptionFunc {
	return func(o *Option) {
		o.value = value
	}
}

// WithAliases adds alternative names (such as a short form) for an option
func WithAliases(aliases ...string) ConfigureOptionFunc {
	return func(o *Option) {
		for _, alias := range aliases {
			o.aliases = append(o.aliases, normalizeOptionName(alias))
		}
	}
}

// WithOptionDescription sets the option description
func WithOptionDescription(description string) ConfigureOptionFunc {
	return func(o *Option) {
		o.description = description
	}
}

// WithArguments appends declared arguments to a command
func WithArguments(args ...Argument) ConfigureCommandFunc {
	return func(c *Command) {
		c.arguments = append(c.arguments, args...)
	}
}

// WithOptions appends options to a command
func WithOptions(opts ...*Option) ConfigureCommandFunc {
	return func(c *Command) {
		c.options = append(c.options, opts...)
	}
}

// WithSubcommands appends subcommands to a command
func WithSubcommands(cmds ...*Command) ConfigureCommandFunc {
	return func(c *Command) {
		c.subcommands = append(c.subcommands, cmds...)
	}
}

// WithCommandDescription sets the command description
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(c *Command) {
		c.description = description
	}
}
