package parseresult

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/napalu/parseresult/errs"
	"github.com/napalu/parseresult/symbol"
	"github.com/napalu/parseresult/token"
)

// Tree owns every result created during one parse. Results refer to their parent and
// children by index, and the tree also holds the table of resolved default values.
// A Tree is meant to be built and queried by a single goroutine and dropped after the parse.
type Tree struct {
	id        string
	nodes     []node
	defaults  map[defaultKey]any
	messages  ValidationMessages
	logger    *slog.Logger
	rootToken *token.Token
}

type node struct {
	kind         Kind
	symbol       symbol.Symbol
	parent       ResultID
	children     *ResultSet
	tokens       []token.Token
	token        token.Token
	hasToken     bool
	implicit     bool
	transient    bool
	errorMessage string
	messages     ValidationMessages
}

// NewTree creates a tree whose root is a CommandResult for root. The caller should always
// test for error on return because Tree will be nil when an error occurs.
//
// Usage example:
//
//	tree, err := NewTree(rootCommand,
//	    WithValidationMessages(NewValidationMessages(i18n.Default(), language.German)),
//	    WithLogger(slog.Default()))
func NewTree(root symbol.Symbol, configs ...ConfigureTreeFunc) (*Tree, error) {
	if symbol.IsNil(root) {
		return nil, errs.ErrNilSymbol
	}

	t := &Tree{
		id:       uuid.New().String(),
		defaults: map[defaultKey]any{},
	}

	var err error
	for _, config := range configs {
		config(t, &err)
		if err != nil {
			return nil, err
		}
	}

	cfg := resultConfig{}
	if t.rootToken != nil {
		cfg.token = *t.rootToken
		cfg.hasToken = true
	}
	t.newNode(CommandKind, root, noParent, cfg, false)

	return t, nil
}

// ID identifies the tree in log output
func (t *Tree) ID() string {
	return t.id
}

// Root returns the root CommandResult
func (t *Tree) Root() Result {
	return Result{tree: t, id: 0}
}

// Len returns the number of results owned by the tree, including transient argument
// results created while resolving defaults.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Result returns the result with the given id
func (t *Tree) Result(id ResultID) (Result, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Result{}, false
	}

	return Result{tree: t, id: id}, true
}

func (t *Tree) newNode(kind Kind, sym symbol.Symbol, parent ResultID, cfg resultConfig, transient bool) Result {
	id := ResultID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:      kind,
		symbol:    sym,
		parent:    parent,
		children:  newResultSet(t),
		token:     cfg.token,
		hasToken:  cfg.hasToken,
		implicit:  cfg.implicit,
		transient: transient,
	})

	if t.logging() {
		t.log("result created",
			slog.String("kind", kind.String()),
			slog.String("symbol", sym.Name()),
			slog.Int("id", int(id)),
			slog.Bool("transient", transient))
	}

	return Result{tree: t, id: id}
}

func (t *Tree) addChild(parent Result, kind Kind, sym symbol.Symbol, configs []ConfigureResultFunc) (Result, error) {
	if !parent.IsValid() || parent.tree != t {
		return Result{}, errs.ErrInvalidResult
	}
	if symbol.IsNil(sym) {
		return Result{}, errs.ErrNilSymbol
	}

	children := t.nodes[parent.id].children
	if children.Contains(sym) {
		return Result{}, errs.ErrDuplicateResult.WithArgs(sym.Name(), t.nodes[parent.id].symbol.Name())
	}

	cfg := resultConfig{}
	for _, config := range configs {
		config(&cfg)
	}

	child := t.newNode(kind, sym, parent.id, cfg, false)
	children.add(sym, child.id)

	return child, nil
}

func (t *Tree) logging() bool {
	return t.logger != nil
}

func (t *Tree) log(msg string, attrs ...slog.Attr) {
	if !t.logging() {
		return
	}

	t.logger.LogAttrs(context.Background(), slog.LevelDebug, msg,
		append([]slog.Attr{slog.String("tree", t.id)}, attrs...)...)
}
