package util

import "testing"

func TestSortedStringKeys(t *testing.T) {
	keys := SortedStringKeys(map[string]int{"c": 1, "a": 2, "b": 3})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys = %v", keys)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("abcdefgh", 4); got != "abcd..." {
		t.Errorf("Truncate(abcdefgh, 4) = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate(_, 0) = %q", got)
	}
}

func TestAppendUnique(t *testing.T) {
	values := AppendUnique(nil, "Child")
	values = AppendUnique(values, "Child")
	values = AppendUnique(values, "")
	values = AppendUnique(values, "Other")
	if len(values) != 2 || values[0] != "Child" || values[1] != "Other" {
		t.Errorf("values = %v", values)
	}
}
