package parseresult

import (
	"log/slog"

	"github.com/napalu/parseresult/token"
)

// WithValidationMessages sets the messages the whole tree resolves to unless a result
// installs its own with Result.SetValidationMessages.
func WithValidationMessages(messages ValidationMessages) ConfigureTreeFunc {
	return func(tree *Tree, err *error) {
		tree.messages = messages
	}
}

// WithLogger enables debug logging of tree construction and default resolution.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) ConfigureTreeFunc {
	return func(tree *Tree, err *error) {
		tree.logger = logger
	}
}

// WithRootToken sets the token which introduced the root command
func WithRootToken(tok token.Token) ConfigureTreeFunc {
	return func(tree *Tree, err *error) {
		tree.rootToken = &tok
	}
}

// WithToken sets the token which introduced a command or option result
func WithToken(tok token.Token) ConfigureResultFunc {
	return func(cfg *resultConfig) {
		cfg.token = tok
		cfg.hasToken = true
	}
}

// AsImplicit marks an option result as inferred by the parser rather than typed by the user
func AsImplicit() ConfigureResultFunc {
	return func(cfg *resultConfig) {
		cfg.implicit = true
	}
}
