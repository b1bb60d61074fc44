package symbol

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// ValueSet is a closed, declaration-ordered set of literal values. The zero value is the
// empty set, which means "unrestricted" when used as an argument's allowed values.
type ValueSet struct {
	values *orderedmap.OrderedMap
}

// NewValueSet returns a set holding values in first-seen order; duplicates are ignored.
func NewValueSet(values ...string) ValueSet {
	if len(values) == 0 {
		return ValueSet{}
	}

	m := orderedmap.New()
	for _, v := range values {
		if _, exists := m.Get(v); !exists {
			m.Set(v, struct{}{})
		}
	}

	return ValueSet{values: m}
}

// Len returns the number of distinct values
func (s ValueSet) Len() int {
	if s.values == nil {
		return 0
	}

	return s.values.Len()
}

// Contains reports whether value is a member of the set
func (s ValueSet) Contains(value string) bool {
	if s.values == nil {
		return false
	}
	_, ok := s.values.Get(value)

	return ok
}

// Values returns the members in declaration order
func (s ValueSet) Values() []string {
	if s.values == nil {
		return nil
	}

	out := make([]string, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key.(string))
	}

	return out
}
