package util

import (
	"reflect"
	"testing"
)

func TestAssign(t *testing.T) {
	a := []string{"a"}
	got := Assign(Assign(a, []string{"b"}, false), []string{"c"}, false)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	got = Assign(got, []string{"x"}, true)
	if want := []string{"x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v after override, want %v", got, want)
	}
}

func TestAssignDoesNotAlias(t *testing.T) {
	items := []int{1, 2}
	got := Assign(nil, items, true)
	items[0] = 100
	if got[0] != 1 {
		t.Errorf("result aliases the items: %v", got)
	}
	base := make([]int, 1, 10)
	x := Assign(base, []int{2}, false)
	y := Assign(base, []int{3}, false)
	if x[1] != 2 || y[1] != 3 {
		t.Errorf("appends share the base array: %v, %v", x, y)
	}
}

func TestListValues(t *testing.T) {
	testCases := []struct {
		name   string
		in     any
		want   []any
		isList bool
	}{
		{"nil", nil, nil, false},
		{"scalar", 1, nil, false},
		{"string", "abc", nil, false},
		{"bytes", []byte("abc"), nil, false},
		{"ints", []int{1, 2}, []any{1, 2}, true},
		{"any", []any{"a", 1}, []any{"a", 1}, true},
		{"array", [2]string{"a", "b"}, []any{"a", "b"}, true},
		{"empty", []int{}, []any{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ListValues(tc.in)
			if ok != tc.isList {
				t.Fatalf("got list %v, want %v", ok, tc.isList)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestOrderedMap(t *testing.T) {
	var m OrderedMap[int]
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)
	if want := []string{"a", "b"}; !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("got keys %v, want %v", m.Keys(), want)
	}
	if want := []int{10, 2}; !reflect.DeepEqual(m.Values(), want) {
		t.Errorf("got values %v, want %v", m.Values(), want)
	}

	var other OrderedMap[int]
	other.Set("c", 3)
	other.Set("b", 20)
	m.Merge(&other)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("got keys %v after merge, want %v", m.Keys(), want)
	}
	if want := []int{10, 20, 3}; !reflect.DeepEqual(m.Values(), want) {
		t.Errorf("got values %v after merge, want %v", m.Values(), want)
	}

	m.Delete("b")
	if want := []string{"a", "c"}; !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("got keys %v after delete, want %v", m.Keys(), want)
	}
	if _, ok := m.Get("b"); ok {
		t.Error("deleted key is still present")
	}

	c := m.Clone()
	c.Set("d", 4)
	if m.Len() != 2 || c.Len() != 3 {
		t.Errorf("clone shares entries: %d, %d", m.Len(), c.Len())
	}

	m.Assign(&other, true)
	if want := []string{"c", "b"}; !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("got keys %v after override, want %v", m.Keys(), want)
	}
}

func TestOrderedMapNil(t *testing.T) {
	var m *OrderedMap[string]
	if m.Len() != 0 || m.Keys() != nil || m.Values() != nil {
		t.Error("nil map should be empty")
	}
	m.Each(func(string, string) {
		t.Error("nil map should have no entries")
	})
}
