package list_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/p14n/fp/persistent/list"
)

func TestFoldRightOrder(t *testing.T) {
	s := list.FoldRight(list.Of(1, 2, 3), "z", func(x int, acc string) string {
		return fmt.Sprintf("f(%d,%s)", x, acc)
	})
	assert.Equal(t, "f(1,f(2,f(3,z)))", s)
	assert.Equal(t, "z", list.FoldRight(list.Nil[int](), "z", func(int, string) string {
		t.Error("combine must not be called for empty list")
		return ""
	}))
}

func TestFoldLeftOrder(t *testing.T) {
	s := list.FoldLeft(list.Of(1, 2, 3), "z", func(acc string, x int) string {
		return fmt.Sprintf("f(%s,%d)", acc, x)
	})
	assert.Equal(t, "f(f(f(z,1),2),3)", s)
}

func TestFoldRightSafe(t *testing.T) {
	f := func(x int, acc string) string {
		return fmt.Sprintf("%d:%s", x, acc)
	}
	for _, l := range sampleLists() {
		assert.Equal(t, list.FoldRight(l, ".", f), list.FoldRightSafe(l, ".", f))
	}
}

func TestFoldLeftLongList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	const n = 1_000_000
	var l list.List[int]
	for i := 0; i < n; i++ {
		l = list.Cons(1, l)
	}
	if sum := list.Sum(l); sum != n {
		t.Errorf("expected sum of %d ones to be %d, is %d", n, n, sum)
	}
	count := list.FoldRightSafe(l, 0, func(_ int, acc int) int { return acc + 1 })
	if count != n {
		t.Errorf("expected FoldRightSafe to count %d elements, counted %d", n, count)
	}
	last, _ := list.Drop(l, n-1).Head()
	assert.Equal(t, 1, last)
	assert.True(t, list.HasSubsequence(list.AppendViaFoldLeft(l, 2), list.Of(1, 2)))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 3, list.Length(list.Of(1, 2, 3)), "length of [1, 2, 3] should be 3")
	assert.Equal(t, 0, list.Length(list.Nil[int]()))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, list.Of(3, 2, 1), list.Reverse(list.Of(1, 2, 3)))
	for _, l := range sampleLists() {
		assert.Equal(t, l, list.Reverse(list.Reverse(l)))
	}
}

// sampleLists returns lists of lengths 0…9 with varying content.
func sampleLists() []list.List[int] {
	var ls []list.List[int]
	for n := 0; n < 10; n++ {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = (i*7 + n) % 5
		}
		ls = append(ls, list.FromSlice(xs))
	}
	return ls
}
