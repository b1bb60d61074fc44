package parseresult

import (
	"github.com/napalu/parseresult/symbol"
	"github.com/napalu/parseresult/types/orderedmap"
)

// ResultSet is the ordered collection of a result's children, at most one per symbol.
type ResultSet struct {
	tree    *Tree
	results *orderedmap.OrderedMap[string, ResultID]
}

func newResultSet(tree *Tree) *ResultSet {
	return &ResultSet{
		tree:    tree,
		results: orderedmap.NewOrderedMap[string, ResultID](),
	}
}

// ResultFor returns the child result created for sym
func (s *ResultSet) ResultFor(sym symbol.Symbol) (Result, bool) {
	if s == nil || symbol.IsNil(sym) {
		return Result{}, false
	}

	id, ok := s.results.Get(sym.ID())
	if !ok {
		return Result{}, false
	}

	return Result{tree: s.tree, id: id}, true
}

// Contains reports whether a child result exists for sym
func (s *ResultSet) Contains(sym symbol.Symbol) bool {
	if s == nil || symbol.IsNil(sym) {
		return false
	}

	return s.results.Has(sym.ID())
}

// Len returns the number of children
func (s *ResultSet) Len() int {
	if s == nil {
		return 0
	}

	return s.results.Count()
}

// Results returns the children in the order they were added
func (s *ResultSet) Results() []Result {
	if s == nil {
		return nil
	}

	out := make([]Result, 0, s.results.Count())
	s.results.Range(func(_ string, id ResultID) bool {
		out = append(out, Result{tree: s.tree, id: id})
		return true
	})

	return out
}

func (s *ResultSet) add(sym symbol.Symbol, id ResultID) {
	s.results.Set(sym.ID(), id)
}
