package list_test

import (
	"testing"

	"github.com/p14n/fp/persistent/list"
)

func TestHasSubsequence(t *testing.T) {
	l := list.Of(1, 2, 3, 4, 5)
	cases := []struct {
		sub      list.List[int]
		expected bool
	}{
		{list.Of(1, 2, 3), true},
		{list.Of(2, 3, 4), true},
		{list.Of(3, 4, 5), true},
		{list.Of(5), true},
		{list.Of(1, 2, 3, 4, 5), true},
		{list.Nil[int](), true},
		{list.Of(5, 6, 7), false},
		{list.Of(4, 5, 6), false},
		{list.Of(1, 3), false},
		{list.Of(1, 2, 3, 4, 5, 6), false},
	}
	for i, c := range cases {
		if r := list.HasSubsequence(l, c.sub); r != c.expected {
			t.Errorf("%d: expected HasSubsequence(%v, %v) to be %v, is %v", i, l, c.sub, c.expected, r)
		}
	}
}

func TestHasSubsequenceRestartsAfterPartialMatch(t *testing.T) {
	if !list.HasSubsequence(list.Of(1, 1, 2), list.Of(1, 2)) {
		t.Error("expected [1, 2] to be found in [1, 1, 2] after a failed attempt at position 0")
	}
	if list.HasSubsequence(list.Of(1, 2, 9, 3), list.Of(1, 2, 3)) {
		t.Error("expected [1, 2, 3] not to be found in [1, 2, 9, 3]")
	}
}

func TestHasSubsequenceEmpty(t *testing.T) {
	if !list.HasSubsequence(list.Nil[int](), list.Nil[int]()) {
		t.Error("expected empty list to contain the empty list")
	}
	if list.HasSubsequence(list.Nil[int](), list.Of(1)) {
		t.Error("expected empty list not to contain [1]")
	}
}

func TestIsSorted(t *testing.T) {
	lt := func(a, b int) bool { return a < b }
	if !list.IsSorted(list.Of(1, 2, 3, 4, 5), lt) {
		t.Error("expected [1, 2, 3, 4, 5] to be sorted in ascending order")
	}
	if list.IsSorted(list.Of(1, 2, 3, 5, 4), lt) {
		t.Error("expected [1, 2, 3, 5, 4] not to be sorted in ascending order")
	}
	if !list.IsSorted(list.Nil[int](), lt) || !list.IsSorted(list.Of(1), lt) {
		t.Error("expected empty and single-element lists to be sorted")
	}
}
