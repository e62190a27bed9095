package tree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

type renderConfig struct {
	rootLabel   string
	branchLabel string
	leafFormat  func(any) string
}

var defaultRenderConfig = renderConfig{
	rootLabel:   ".",
	branchLabel: "●",
	leafFormat: func(v any) string {
		return fmt.Sprintf("%v", v)
	},
}

// Option is a type to help configuring the rendering of trees.
type Option func(renderConfig) renderConfig

// RootLabel sets the label printed above the tree. Default is ".".
func RootLabel(label string) Option {
	return func(conf renderConfig) renderConfig {
		conf.rootLabel = label
		return conf
	}
}

// BranchLabel sets the label printed for branches. Default is "●".
func BranchLabel(label string) Option {
	return func(conf renderConfig) renderConfig {
		conf.branchLabel = label
		return conf
	}
}

// LeafFormat sets the function to format leaf values with. Default is "%v".
//
// Use it like this:
//
//	s := tree.Render(t, tree.LeafFormat(func(v any) string {
//	    return fmt.Sprintf("<%d>", v)
//	}))
func LeafFormat(format func(any) string) Option {
	return func(conf renderConfig) renderConfig {
		if format != nil {
			conf.leafFormat = format
		}
		return conf
	}
}

// Render draws t as indented text, one node per line.
func Render[A any](t Tree[A], opts ...Option) string {
	conf := defaultRenderConfig
	for _, option := range opts {
		conf = option(conf)
	}
	printer := tp.New()
	printer.SetValue(conf.rootLabel)
	// folding t yields a function adding the whole tree below a given parent
	draw := Fold(t, func(v A) func(tp.Tree) {
		return func(parent tp.Tree) {
			parent.AddNode(conf.leafFormat(v))
		}
	}, func(left, right func(tp.Tree)) func(tp.Tree) {
		return func(parent tp.Tree) {
			b := parent.AddBranch(conf.branchLabel)
			left(b)
			right(b)
		}
	})
	draw(printer)
	return printer.String()
}
