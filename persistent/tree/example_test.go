package tree_test

import (
	"fmt"

	"github.com/p14n/fp/persistent/tree"
)

func ExampleFold() {
	t := tree.Branch(tree.Leaf(1), tree.Branch(tree.Leaf(2), tree.Leaf(3)))
	sum := tree.Fold(t, func(v int) int { return v }, func(a, b int) int { return a + b })
	fmt.Println(sum)
	fmt.Println(tree.Size(t), tree.Depth(t), tree.Max(t))
	// Output:
	// 6
	// 5 3 3
}

func ExampleMap() {
	t := tree.Branch(tree.Leaf(1), tree.Leaf(2))
	fmt.Println(tree.Leaves(tree.Map(t, func(n int) string {
		return fmt.Sprintf("#%d", n)
	})))
	// Output: [#1, #2]
}
