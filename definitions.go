package parseresult

import (
	"github.com/napalu/parseresult/token"
)

// Kind discriminates the three result variants
type Kind int

const (
	CommandKind  Kind = iota // CommandResult: a matched command, root included
	OptionKind               // OptionResult: a matched or inferred option
	ArgumentKind             // ArgumentResult: a matched argument
)

// String returns the debug label of a Kind
func (k Kind) String() string {
	switch k {
	case CommandKind:
		return "CommandResult"
	case OptionKind:
		return "OptionResult"
	case ArgumentKind:
		return "ArgumentResult"
	}

	return "UnknownResult"
}

// ResultID indexes a result inside its Tree
type ResultID int

const noParent ResultID = -1

// ConfigureTreeFunc is used when creating a Tree
type ConfigureTreeFunc func(tree *Tree, err *error)

// ConfigureResultFunc is used when adding a child result
type ConfigureResultFunc func(cfg *resultConfig)

type resultConfig struct {
	token    token.Token
	hasToken bool
	implicit bool
}

// defaultKey addresses one memoized default value: the result it was resolved on and
// the argument it was resolved for.
type defaultKey struct {
	result   ResultID
	argument string
}
