package set

import "testing"

func TestNewSetStartsEmpty(t *testing.T) {
	s := NewSet[int]()
	if s.Contains(1) {
		t.Error("a fresh set should contain nothing")
	}
}

func TestFromSliceDedupes(t *testing.T) {
	s := FromSlice([]string{"a", "b", "a"})
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("FromSlice should add every distinct element")
	}
	if len(s) != 2 {
		t.Errorf("expected 2 distinct elements, got %d", len(s))
	}
}

func TestAddIsIdempotent(t *testing.T) {
	s := NewSet[string]()
	s.Add("hello")
	s.Add("hello")
	if len(s) != 1 {
		t.Errorf("expected length 1 after adding the same element twice, got %d", len(s))
	}
}

func TestContains(t *testing.T) {
	s := FromSlice([]string{"Point", "Named"})
	if !s.Contains("Point") {
		t.Error("expected set to contain Point")
	}
	if s.Contains("Other") {
		t.Error("expected set to not contain Other")
	}
}
