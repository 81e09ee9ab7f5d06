package cache

import "github.com/moznion/go-optional"

// Values is a heterogeneous store keyed by type identity or by explicit value.
// It holds the quote sequence, every computed indicator series and resolved group extremes.
// Values is not safe for concurrent use; the chart guards it.
type Values struct {
	entries map[any]any
}

func NewValues() *Values {
	return &Values{
		entries: make(map[any]any),
	}
}

// Reset removes every entry.
func (v *Values) Reset() {
	v.entries = make(map[any]any)
}

// Get returns the raw value stored under id.
func (v *Values) Get(id any) (any, bool) {
	value, ok := v.entries[id]
	return value, ok
}

// Set stores value under id, overwriting any previous value.
func (v *Values) Set(id any, value any) {
	v.entries[id] = value
}

// Delete removes the entry for id. Deleting a missing entry is a no-op.
func (v *Values) Delete(id any) {
	delete(v.entries, id)
}

// Len returns the number of entries.
func (v *Values) Len() int {
	return len(v.entries)
}

// Get returns the value stored under key, or None when the entry is missing or holds
// a value of another type.
func Get[V any](values *Values, key Key[V]) optional.Option[V] {
	raw, ok := values.Get(key.id)
	if !ok {
		return optional.None[V]()
	}

	typed, ok := raw.(V)
	if !ok {
		return optional.None[V]()
	}

	return optional.Some(typed)
}

// Set stores value under key.
func Set[V any](values *Values, key Key[V], value V) {
	values.Set(key.id, value)
}

// Delete removes the entry addressed by key.
func Delete[V any](values *Values, key Key[V]) {
	values.Delete(key.id)
}
