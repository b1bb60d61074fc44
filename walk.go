package parseresult

import (
	"github.com/ef-ds/deque"
	"github.com/napalu/parseresult/symbol"
)

// Walk visits the tree breadth-first from the root, children in the order they were
// added, until fn returns false. Transient results created while resolving defaults are
// not linked to any parent and are not visited.
func (t *Tree) Walk(fn func(r Result) bool) {
	pending := deque.New()
	pending.PushBack(t.Root())

	for pending.Len() > 0 {
		v, _ := pending.PopFront()
		r := v.(Result)
		if !fn(r) {
			return
		}
		for _, child := range r.Children().Results() {
			pending.PushBack(child)
		}
	}
}

// CollectErrors gathers the diagnostics of every result in Walk order: the result's own
// error message, then a token outside the allowed values of the argument owning the
// result's tokens, then tokens beyond its argument capacity. Nothing in the tree is
// modified and the returned slice is not a verdict on the parse.
func (t *Tree) CollectErrors() []*ParseError {
	var diagnostics []*ParseError
	t.Walk(func(r Result) bool {
		if msg := r.ErrorMessage(); msg != "" {
			diagnostics = append(diagnostics, NewParseError(msg, r))
		}
		if arg, ok := tokenOwner(r); ok {
			if err := r.UnrecognizedArgumentError(arg); err != nil {
				diagnostics = append(diagnostics, err)
			}
		}
		if err := r.ArgumentLimitError(); err != nil {
			diagnostics = append(diagnostics, err)
		}
		return true
	})

	return diagnostics
}

// tokenOwner returns the single argument all of r's tokens belong to. Commands with
// several arguments share their tokens between them, and a command whose argument has
// its own ArgumentResult leaves the check to that child.
func tokenOwner(r Result) (symbol.Argument, bool) {
	args := r.Symbol().Arguments()
	if len(args) != 1 {
		return nil, false
	}
	if r.Kind() == CommandKind && r.Children().Contains(args[0]) {
		return nil, false
	}

	return args[0], true
}
