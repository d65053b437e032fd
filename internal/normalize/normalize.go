// Package normalize maps free-form configuration strings onto typed enum
// values with a shared trim/lowercase convention.
package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a string-to-enum lookup with a default for unrecognized input.
type Table[T comparable] struct {
	values   map[string]T
	fallback T
	keys     []string
}

// NewTable builds a Table. Keys are canonicalized before storage so lookups
// tolerate case and surrounding whitespace.
func NewTable[T comparable](values map[string]T, fallback T) *Table[T] {
	canon := make(map[string]T, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		c := canonical(k)
		canon[c] = v
		keys = append(keys, c)
	}
	sort.Strings(keys)
	return &Table[T]{values: canon, fallback: fallback, keys: keys}
}

// Lookup converts raw to its enum value, falling back on unknown input.
func (t *Table[T]) Lookup(raw string) T {
	if v, ok := t.values[canonical(raw)]; ok {
		return v
	}
	return t.fallback
}

// LookupStrict converts raw to its enum value or reports the valid options.
func (t *Table[T]) LookupStrict(raw string) (T, error) {
	if v, ok := t.values[canonical(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, t.keys)
}

// Keys returns the canonical keys, sorted.
func (t *Table[T]) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
