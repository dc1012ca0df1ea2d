package util

import "reflect"

// Assign returns items when override is set, otherwise current followed by items.
//
// The returned slice never aliases items when merging, so later appends to
// one builder's state cannot leak into another's.
func Assign[T any](current, items []T, override bool) []T {
	if override {
		return Concat(items)
	}
	return Concat(current, items)
}

// Concat concatenates multiple slices into one slice.
func Concat[T any](slices ...[]T) []T {
	totalLen := 0
	for _, s := range slices {
		totalLen += len(s)
	}
	result := make([]T, 0, totalLen)
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// Map applies a function to each element of a slice and returns a new slice.
func Map[T1 any, T2 any](a []T1, f func(T1) T2) []T2 {
	if a == nil {
		return nil
	}
	b := make([]T2, len(a))
	for i, x := range a {
		b[i] = f(x)
	}
	return b
}

// Repeat returns a slice holding n copies of v.
func Repeat[T any](v T, n int) []T {
	r := make([]T, n)
	for i := range r {
		r[i] = v
	}
	return r
}

// ListValues reports whether v is a list (a slice or an array, except []byte)
// and returns its elements in order.
func ListValues(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	r := make([]any, rv.Len())
	for i := range r {
		r[i] = rv.Index(i).Interface()
	}
	return r, true
}
