// Package attrs holds the ordered attribute sets that every builder produces
// and renders them into markup attribute lists.
package attrs

import "sort"

// Entry is a named attribute or, when Positional is set, a bare token such
// as "disabled" or "autofocus".
type Entry struct {
	Key        string
	Value      any
	Positional bool
}

// Attributes is an insertion-ordered attribute mapping. Named keys are unique;
// positional tokens keep their relative order among the named entries.
type Attributes struct {
	entries []Entry
}

// New builds an attribute set from alternating key/value pairs. A trailing
// key without a value is ignored.
func New(pairs ...any) *Attributes {
	a := &Attributes{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		a.Set(key, pairs[i+1])
	}
	return a
}

// FromMap copies a plain map into a new set, sorting keys so the result is
// deterministic.
func FromMap(values map[string]any) *Attributes {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	a := &Attributes{entries: make([]Entry, 0, len(keys))}
	for _, key := range keys {
		a.Set(key, values[key])
	}
	return a
}

// Set stores value under key. Existing keys keep their original position.
func (a *Attributes) Set(key string, value any) *Attributes {
	if i := a.index(key); i >= 0 {
		a.entries[i].Value = value
		return a
	}
	a.entries = append(a.entries, Entry{Key: key, Value: value})
	return a
}

// Append adds a positional token.
func (a *Attributes) Append(tokens ...any) *Attributes {
	for _, token := range tokens {
		a.entries = append(a.entries, Entry{Value: token, Positional: true})
	}
	return a
}

// Prepend inserts positional tokens before every other entry.
func (a *Attributes) Prepend(tokens ...any) *Attributes {
	head := make([]Entry, 0, len(tokens)+len(a.entries))
	for _, token := range tokens {
		head = append(head, Entry{Value: token, Positional: true})
	}
	a.entries = append(head, a.entries...)
	return a
}

// Get returns the value stored under key and whether the key is present.
func (a *Attributes) Get(key string) (any, bool) {
	if i := a.index(key); i >= 0 {
		return a.entries[i].Value, true
	}
	return nil, false
}

// Lookup returns the value stored under key, or nil.
func (a *Attributes) Lookup(key string) any {
	value, _ := a.Get(key)
	return value
}

// IsSet reports whether key is present with a non-nil value.
func (a *Attributes) IsSet(key string) bool {
	return a.Lookup(key) != nil
}

// String returns the value under key cast to a string, or "" when it is
// absent or not a scalar.
func (a *Attributes) String(key string) string {
	s, _ := Stringify(a.Lookup(key))
	return s
}

// Delete removes key and returns its previous value.
func (a *Attributes) Delete(key string) (any, bool) {
	i := a.index(key)
	if i < 0 {
		return nil, false
	}
	value := a.entries[i].Value
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	return value, true
}

// Len reports the number of entries, positional tokens included.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Entries returns a copy of the entries in insertion order.
func (a *Attributes) Entries() []Entry {
	if a == nil || len(a.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Clone returns an independent copy. Values are copied shallowly.
func (a *Attributes) Clone() *Attributes {
	return &Attributes{entries: a.Entries()}
}

// EscapeDisabled reports whether the synthetic escape key turns escaping off
// for this set.
func (a *Attributes) EscapeDisabled() bool {
	value, ok := a.Get(EscapeKey)
	if !ok || value == nil {
		return false
	}
	return !Truthy(value)
}

func (a *Attributes) index(key string) int {
	if a == nil {
		return -1
	}
	for i, entry := range a.entries {
		if !entry.Positional && entry.Key == key {
			return i
		}
	}
	return -1
}
