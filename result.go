package parseresult

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/napalu/parseresult/errs"
	"github.com/napalu/parseresult/symbol"
	"github.com/napalu/parseresult/token"
)

// Result is a handle to one matched occurrence of a symbol in a Tree: a CommandResult,
// OptionResult or ArgumentResult depending on Kind. Handles are cheap to copy; all
// state lives in the tree. The zero Result is invalid.
type Result struct {
	tree *Tree
	id   ResultID
}

var _ symbol.ResultContext = Result{}

// IsValid reports whether the handle refers to a result of a tree
func (r Result) IsValid() bool {
	return r.tree != nil && r.id >= 0 && int(r.id) < len(r.tree.nodes)
}

func (r Result) node() *node {
	return &r.tree.nodes[r.id]
}

// ID returns the index of the result in its tree
func (r Result) ID() ResultID {
	return r.id
}

// Tree returns the tree owning the result
func (r Result) Tree() *Tree {
	return r.tree
}

// Kind returns the result variant; invalid handles report an unknown Kind
func (r Result) Kind() Kind {
	if !r.IsValid() {
		return Kind(-1)
	}

	return r.node().kind
}

// Symbol returns the declaration the result was matched against
func (r Result) Symbol() symbol.Symbol {
	if !r.IsValid() {
		return nil
	}

	return r.node().symbol
}

// Parent returns the enclosing result; the root has none
func (r Result) Parent() (Result, bool) {
	if !r.IsValid() {
		return Result{}, false
	}

	return r.tree.Result(r.node().parent)
}

// IsRoot reports whether the result is the root CommandResult of its tree
func (r Result) IsRoot() bool {
	return r.IsValid() && r.node().parent == noParent
}

// Children returns the child results keyed by symbol
func (r Result) Children() *ResultSet {
	if !r.IsValid() {
		return nil
	}

	return r.node().children
}

// IsImplicit reports whether an option result was inferred rather than present in the input.
// It is always false for commands and arguments.
func (r Result) IsImplicit() bool {
	return r.IsValid() && r.node().kind == OptionKind && r.node().implicit
}

// Tokens returns a copy of the tokens attributed to the result, in the order they were added
func (r Result) Tokens() []token.Token {
	if !r.IsValid() {
		return nil
	}

	return slices.Clone(r.node().tokens)
}

// AddToken appends tok. Capacity is not checked here; see IsArgumentLimitReached.
func (r Result) AddToken(tok token.Token) {
	if !r.IsValid() {
		return
	}

	n := r.node()
	n.tokens = append(n.tokens, tok)
}

// Token returns the token which represents the result: the one it was created with, else
// its first token, else an implicit token named after its symbol.
func (r Result) Token() token.Token {
	if !r.IsValid() {
		return token.Token{}
	}

	n := r.node()
	switch {
	case n.hasToken:
		return n.token
	case len(n.tokens) > 0:
		return n.tokens[0]
	}

	return token.NewImplicit(n.symbol.Name())
}

// ErrorMessage returns the diagnostic attached with SetErrorMessage, if any
func (r Result) ErrorMessage() string {
	if !r.IsValid() {
		return ""
	}

	return r.node().errorMessage
}

// SetErrorMessage attaches a diagnostic directly to the result
func (r Result) SetErrorMessage(msg string) {
	if !r.IsValid() {
		return
	}

	r.node().errorMessage = msg
}

// ValidationMessages resolves the message formatter for the result: its own override,
// else the nearest ancestor's, else the tree's, else DefaultValidationMessages.
func (r Result) ValidationMessages() ValidationMessages {
	if r.IsValid() {
		for id := r.id; id != noParent; id = r.tree.nodes[id].parent {
			if m := r.tree.nodes[id].messages; m != nil {
				return m
			}
		}
		if r.tree.messages != nil {
			return r.tree.messages
		}
	}

	return DefaultValidationMessages()
}

// SetValidationMessages overrides the formatter for the result and every descendant
// without an override of its own. Passing nil restores inheritance.
func (r Result) SetValidationMessages(messages ValidationMessages) {
	if !r.IsValid() {
		return
	}

	r.node().messages = messages
}

// MaximumArgumentCapacity is the sum of the maximum arity of the symbol's arguments
func (r Result) MaximumArgumentCapacity() int {
	if !r.IsValid() {
		return 0
	}

	total := 0
	for _, arg := range r.node().symbol.Arguments() {
		total += arg.Arity().Max
	}

	return total
}

// RemainingArgumentCapacity is MaximumArgumentCapacity minus the number of tokens. It is
// negative once more tokens were added than the arguments can take.
func (r Result) RemainingArgumentCapacity() int {
	if !r.IsValid() {
		return 0
	}

	return r.MaximumArgumentCapacity() - len(r.node().tokens)
}

// IsArgumentLimitReached reports whether the result can take no further tokens
func (r Result) IsArgumentLimitReached() bool {
	return r.RemainingArgumentCapacity() <= 0
}

// DefaultValueFor returns the default value of arg as seen from this result and records
// it in the tree's default table: the first call resolves, later calls return the
// recorded value. An argument implementing symbol.ContextualDefault is resolved against
// the ArgumentResult for arg under this result, which is created (unlinked) if missing.
func (r Result) DefaultValueFor(arg symbol.Argument) any {
	if !r.IsValid() || symbol.IsNil(arg) {
		return nil
	}

	key := defaultKey{result: r.id, argument: arg.ID()}
	if v, ok := r.tree.defaults[key]; ok {
		return v
	}

	var v any
	if provider, ok := arg.(symbol.ContextualDefault); ok {
		v = provider.DefaultValueFor(r.argumentResultFor(arg))
	} else {
		v = arg.DefaultValue()
	}
	r.tree.defaults[key] = v

	if r.tree.logging() {
		r.tree.log("default resolved",
			slog.String("kind", r.Kind().String()),
			slog.String("symbol", r.node().symbol.Name()),
			slog.String("argument", arg.Name()))
	}

	return v
}

// HasDefaultValueFor reports whether DefaultValueFor already resolved arg on this result
func (r Result) HasDefaultValueFor(arg symbol.Argument) bool {
	if !r.IsValid() || symbol.IsNil(arg) {
		return false
	}
	_, ok := r.tree.defaults[defaultKey{result: r.id, argument: arg.ID()}]

	return ok
}

func (r Result) argumentResultFor(arg symbol.Argument) Result {
	if child, ok := r.Children().ResultFor(arg); ok && child.Kind() == ArgumentKind {
		return child
	}

	return r.tree.newNode(ArgumentKind, arg, r.id, resultConfig{}, true)
}

// UseDefaultValueFor reports whether the value bound for arg should be treated as a
// default rather than user input. Checked in order:
//   - the result is an implicit OptionResult
//   - the result is a CommandResult whose child for arg only holds implicit tokens
//   - DefaultValueFor was already called for arg on this result
func (r Result) UseDefaultValueFor(arg symbol.Argument) bool {
	if !r.IsValid() || symbol.IsNil(arg) {
		return false
	}

	n := r.node()
	if n.kind == OptionKind && n.implicit {
		return true
	}

	if n.kind == CommandKind {
		if child, ok := n.children.ResultFor(arg); ok && allImplicit(child.node().tokens) {
			return true
		}
	}

	return r.HasDefaultValueFor(arg)
}

func allImplicit(tokens []token.Token) bool {
	for _, tok := range tokens {
		if !tok.IsImplicit() {
			return false
		}
	}

	return true
}

// UnrecognizedArgumentError returns a ParseError for the first token whose value is not
// one of arg's allowed values. It returns nil when arg is unrestricted, when the result
// has no tokens, or when every token is allowed.
func (r Result) UnrecognizedArgumentError(arg symbol.Argument) *ParseError {
	if !r.IsValid() || symbol.IsNil(arg) {
		return nil
	}

	allowed := arg.AllowedValues()
	tokens := r.node().tokens
	if allowed.Len() == 0 || len(tokens) == 0 {
		return nil
	}

	for _, tok := range tokens {
		if !allowed.Contains(tok.Value()) {
			return newParseError(
				r.ValidationMessages().UnrecognizedArgument(tok.Value(), allowed.Values()),
				r,
				errs.ErrUnrecognizedArgument)
		}
	}

	return nil
}

// ArgumentLimitError returns a ParseError for the first token beyond the result's
// argument capacity, or nil when the tokens fit.
func (r Result) ArgumentLimitError() *ParseError {
	if !r.IsValid() || r.RemainingArgumentCapacity() >= 0 {
		return nil
	}

	extra := r.node().tokens[r.MaximumArgumentCapacity()]

	return newParseError(
		r.ValidationMessages().UnrecognizedCommandOrArgument(extra.Value()),
		r,
		errs.ErrUnrecognizedCommandOrArgument)
}

// AddCommand adds a CommandResult for cmd under r
func (r Result) AddCommand(cmd symbol.Symbol, configs ...ConfigureResultFunc) (Result, error) {
	if r.tree == nil {
		return Result{}, errs.ErrInvalidResult
	}

	return r.tree.addChild(r, CommandKind, cmd, configs)
}

// AddOption adds an OptionResult for opt under r. Use AsImplicit for options the
// parser inferred.
func (r Result) AddOption(opt symbol.Symbol, configs ...ConfigureResultFunc) (Result, error) {
	if r.tree == nil {
		return Result{}, errs.ErrInvalidResult
	}

	return r.tree.addChild(r, OptionKind, opt, configs)
}

// AddArgument adds an ArgumentResult for arg under r
func (r Result) AddArgument(arg symbol.Argument, configs ...ConfigureResultFunc) (Result, error) {
	if r.tree == nil {
		return Result{}, errs.ErrInvalidResult
	}
	if symbol.IsNil(arg) {
		return Result{}, errs.ErrNilSymbol
	}

	return r.tree.addChild(r, ArgumentKind, arg, configs)
}

// String returns "<Kind>: <token>" for debugging, e.g. "OptionResult: --color"
func (r Result) String() string {
	if !r.IsValid() {
		return "<invalid result>"
	}

	return fmt.Sprintf("%s: %s", r.Kind(), r.Token().Value())
}
