// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import (
	"container/list"
)

// OrderedMap stores key-value pairs in insertion order. Overwriting a key keeps its
// original position. The zero value is not usable; call NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// Iterator walks an OrderedMap from Front or Back. A nil Iterator marks the end.
type Iterator[K comparable, V any] struct {
	forward bool
	e       *list.Element
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores val under key. Existing keys are updated in place.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = keyValue[K, V]{key: key, value: val}
		return
	}

	o.store[key] = o.keys.PushBack(keyValue[K, V]{key: key, value: val})
}

// Get returns the value associated with key and whether it was present
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return e.Value.(keyValue[K, V]).value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key and its value. Missing keys are ignored.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}

	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the number of keys
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Range calls fn for every pair in insertion order until fn returns false
func (o *OrderedMap[K, V]) Range(fn func(key K, val V) bool) {
	for e := o.keys.Front(); e != nil; e = e.Next() {
		kv := e.Value.(keyValue[K, V])
		if !fn(kv.key, kv.value) {
			return
		}
	}
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	o.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.keys.Len())
	o.Range(func(_ K, val V) bool {
		values = append(values, val)
		return true
	})

	return values
}

// Front returns an iterator at the oldest pair, or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	return newIterator[K, V](o.keys.Front(), true)
}

// Back returns an iterator at the newest pair, or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	return newIterator[K, V](o.keys.Back(), false)
}

func newIterator[K comparable, V any](e *list.Element, forward bool) *Iterator[K, V] {
	if e == nil {
		return nil
	}

	return &Iterator[K, V]{forward: forward, e: e}
}

// Next advances in the iterator's direction and returns nil past the last pair
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	if it.forward {
		return newIterator[K, V](it.e.Next(), true)
	}

	return newIterator[K, V](it.e.Prev(), false)
}

// Key returns the current key
func (it *Iterator[K, V]) Key() K {
	return it.e.Value.(keyValue[K, V]).key
}

// Value returns the current value
func (it *Iterator[K, V]) Value() V {
	return it.e.Value.(keyValue[K, V]).value
}
