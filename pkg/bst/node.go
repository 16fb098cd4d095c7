package bst

// node is one key-value binding. A node exclusively owns its children;
// a nil child is an empty subtree.
type node[K, V any] struct {
	key   K
	value V

	// size counts the nodes of the subtree rooted here, including itself.
	size int

	left, right *node[K, V]
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, size: 1}
}

func sizeOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

func (n *node[K, V]) resize() {
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1
}

// minOf returns the leftmost node of the subtree.
func minOf[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	for n.left != nil {
		n = n.left
	}

	return n
}

// maxOf returns the rightmost node of the subtree.
func maxOf[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	for n.right != nil {
		n = n.right
	}

	return n
}

func heightOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return max(heightOf(n.left), heightOf(n.right)) + 1
}
