package bst

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Graph renders the tree structure, right subtree first, one node per
// line as "key: value (size)".
func (t *Tree[K, V]) Graph() string {
	return t.GraphFunc(func(key K, value V) string {
		return fmt.Sprintf("%s: %v", t.formatKey(key), value)
	})
}

// GraphFunc is like Graph but labels each node with label(key, value).
func (t *Tree[K, V]) GraphFunc(label func(key K, value V) string) string {
	if t.root == nil {
		return "<empty>"
	}

	tree := treeprint.NewWithRoot(nodeLabel(t.root, label))
	addChildren(tree, t.root, label)
	return tree.String()
}

func addChildren[K, V any](branch treeprint.Tree, n *node[K, V], label func(K, V) string) {
	for _, child := range []*node[K, V]{n.right, n.left} {
		if child == nil {
			branch.AddNode("·")
			continue
		}

		if child.left == nil && child.right == nil {
			branch.AddNode(nodeLabel(child, label))
			continue
		}

		addChildren(branch.AddBranch(nodeLabel(child, label)), child, label)
	}
}

func nodeLabel[K, V any](n *node[K, V], label func(K, V) string) string {
	return fmt.Sprintf("%s (%d)", label(n.key, n.value), n.size)
}
