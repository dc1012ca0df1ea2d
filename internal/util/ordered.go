package util

// OrderedMap is a string keyed map that remembers insertion order.
//
// Setting an existing key overwrites its value in place, the key keeps
// the position of its first insertion.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set sets the value of key.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value of key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, the relative order of the others is kept.
func (m *OrderedMap[V]) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = Filter(m.keys, func(k string) bool { return k != key })
}

// Merge sets every entry of other into m, in other's order.
func (m *OrderedMap[V]) Merge(other *OrderedMap[V]) {
	if other == nil {
		return
	}
	other.Each(func(k string, v V) {
		m.Set(k, v)
	})
}

// Assign merges other into m, or replaces m's content when override is set.
func (m *OrderedMap[V]) Assign(other *OrderedMap[V], override bool) {
	if override {
		m.keys = nil
		m.values = nil
	}
	m.Merge(other)
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return Concat(m.keys)
}

// Values returns the values in key order.
func (m *OrderedMap[V]) Values() []V {
	if m == nil {
		return nil
	}
	return Map(m.keys, func(k string) V { return m.values[k] })
}

// Each calls fn for every entry in order.
func (m *OrderedMap[V]) Each(fn func(key string, value V)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Clone returns a shallow copy of m.
func (m *OrderedMap[V]) Clone() *OrderedMap[V] {
	c := &OrderedMap[V]{}
	c.Merge(m)
	return c
}

// Filter filters a slice in-place based on a predicate function.
func Filter[T any](list []T, f func(T) bool) []T {
	pos := 0
	for _, x := range list {
		if f(x) {
			list[pos] = x
			pos++
		}
	}
	return list[:pos]
}
