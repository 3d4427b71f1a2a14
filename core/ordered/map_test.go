package ordered

import (
	"reflect"
	"testing"
)

func TestInsertionOrderKept(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"GATT", "ACGT", "TTTT", "ACGT", "CCCC"} {
		m.Set(k, i)
	}
	want := []string{"GATT", "ACGT", "TTTT", "CCCC"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if v, _ := m.Get("ACGT"); v != 3 {
		t.Fatalf("overwrite lost: got %d want 3", v)
	}
	if m.Len() != 4 {
		t.Fatalf("len = %d, want 4", m.Len())
	}
}

func TestSetReportsInsert(t *testing.T) {
	m := NewWithCapacity[int, bool](2)
	if !m.Set(1, true) {
		t.Fatal("first Set should insert")
	}
	if m.Set(1, false) {
		t.Fatal("second Set should not insert")
	}
	if !m.Has(1) || m.Has(2) {
		t.Fatal("Has mismatch")
	}
}

func TestRangeStopsEarly(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	var seen []string
	m.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Fatalf("range visited %v", seen)
	}
}

func TestKeysIsCopy(t *testing.T) {
	m := New[string, int]()
	m.Set("x", 1)
	ks := m.Keys()
	ks[0] = "y"
	if !m.Has("x") || m.Keys()[0] != "x" {
		t.Fatal("Keys must not alias internal order")
	}
}
