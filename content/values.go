// Package content provides Values, the writable key-value container that adapters
// serialize objects into.
package content

import "sort"

// Values is an ordered column -> value container.
//
// Keys keep the order in which they were first put; replacing a value does not move
// its key. A nil value represents SQL NULL. Values is not safe for concurrent use.
type Values struct {
	keys  []string
	index map[string]int
	vals  []any
}

// New returns an empty container sized for capHint columns.
func New(capHint int) *Values {
	if capHint < 0 {
		capHint = 0
	}
	return &Values{
		keys:  make([]string, 0, capHint),
		index: make(map[string]int, capHint),
		vals:  make([]any, 0, capHint),
	}
}

func (v *Values) init() {
	if v.index == nil {
		v.index = make(map[string]int)
	}
}

// Put stores value under key.
func (v *Values) Put(key string, value any) {
	v.init()
	if i, ok := v.index[key]; ok {
		v.vals[i] = value
		return
	}
	v.index[key] = len(v.keys)
	v.keys = append(v.keys, key)
	v.vals = append(v.vals, value)
}

// PutNull stores SQL NULL under key.
func (v *Values) PutNull(key string) { v.Put(key, nil) }

// Get returns the value stored under key and whether the key is present.
func (v *Values) Get(key string) (any, bool) {
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.vals[i], true
}

// Contains reports whether key is present.
func (v *Values) Contains(key string) bool {
	_, ok := v.index[key]
	return ok
}

// Remove deletes key, preserving the order of the remaining keys.
func (v *Values) Remove(key string) {
	i, ok := v.index[key]
	if !ok {
		return
	}
	v.keys = append(v.keys[:i], v.keys[i+1:]...)
	v.vals = append(v.vals[:i], v.vals[i+1:]...)
	delete(v.index, key)
	for j := i; j < len(v.keys); j++ {
		v.index[v.keys[j]] = j
	}
}

// Len returns the number of keys.
func (v *Values) Len() int { return len(v.keys) }

// Keys returns a copy of the keys in insertion order.
func (v *Values) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// SortedKeys returns a copy of the keys in lexical order.
func (v *Values) SortedKeys() []string {
	out := v.Keys()
	sort.Strings(out)
	return out
}

// Map returns a copy of the container as a plain map.
func (v *Values) Map() map[string]any {
	out := make(map[string]any, len(v.keys))
	for i, k := range v.keys {
		out[k] = v.vals[i]
	}
	return out
}

// Args returns the values for columns, in that order, for use as statement
// arguments. Missing columns yield nil.
func (v *Values) Args(columns ...string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i], _ = v.Get(c)
	}
	return out
}
