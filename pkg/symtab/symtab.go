// Package symtab stores declared names for a single compilation.
package symtab

import "sort"

// Table maps names to values. A name can only be inserted once.
type Table[V any] struct {
	entries map[string]V
}

// New creates an empty table
func New[V any]() *Table[V] {
	return &Table[V]{entries: make(map[string]V)}
}

// Lookup returns the value stored under name
func (t *Table[V]) Lookup(name string) (V, bool) {
	v, ok := t.entries[name]
	return v, ok
}

// Insert stores v under name. It reports false and leaves the table untouched when the name is already taken.
func (t *Table[V]) Insert(name string, v V) bool {
	if _, exists := t.entries[name]; exists {
		return false
	}

	t.entries[name] = v
	return true
}

// Len returns the number of names in the table
func (t *Table[V]) Len() int {
	return len(t.entries)
}

// Names returns all names in lexical order
func (t *Table[V]) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
