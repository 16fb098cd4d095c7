package bst

import (
	"cmp"
	"fmt"
)

// Tree is an ordered key-value map backed by an unbalanced binary search
// tree. Each node caches the size of its subtree, so Size is O(1).
//
// No rebalancing is done: inserting keys in sorted order degrades the
// tree into a list, and every operation recurses as deep as the tree is
// high. A Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int

	// formatKey renders keys in Validate and Graph output.
	formatKey func(key K) string
}

// New creates an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWithComparator[K, V](cmp.Compare[K])
}

// NewComparable creates an empty tree for keys that order themselves.
func NewComparable[K Comparable[K], V any]() *Tree[K, V] {
	return NewWithComparator[K, V](compareComparable[K])
}

// NewWithComparator creates an empty tree ordered by compare, which must
// return a negative number, zero or a positive number when a is less than,
// equal to or greater than b. compare is never called with a nil key.
func NewWithComparator[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{compare: compare, formatKey: defaultFormatKey[K]}
}

// SetKeyFormatter sets how keys are printed in Validate and Graph output.
// The default is fmt's %v; key types like pointers need their own.
func (t *Tree[K, V]) SetKeyFormatter(format func(key K) string) {
	if format == nil {
		format = defaultFormatKey[K]
	}

	t.formatKey = format
}

func defaultFormatKey[K any](key K) string {
	return fmt.Sprintf("%v", key)
}

// Put binds value to key, replacing the value of an existing binding.
func (t *Tree[K, V]) Put(key K, value V) error {
	if err := checkKey("put", key); err != nil {
		return err
	}

	t.root = t.put(t.root, key, value)
	return nil
}

func (t *Tree[K, V]) put(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return newNode(key, value)
	}

	if c := t.compare(key, n.key); c < 0 {
		n.left = t.put(n.left, key, value)
	} else if c > 0 {
		n.right = t.put(n.right, key, value)
	} else {
		n.value = value
	}

	n.resize()
	return n
}

// Get returns the value bound to key. ok is false when there is no such
// binding.
func (t *Tree[K, V]) Get(key K) (value V, ok bool, err error) {
	if err := checkKey("get", key); err != nil {
		return value, false, err
	}

	n := t.search(t.root, key)
	if n == nil {
		return value, false, nil
	}

	return n.value, true, nil
}

// Contains reports whether key has a binding.
func (t *Tree[K, V]) Contains(key K) (bool, error) {
	if err := checkKey("contains", key); err != nil {
		return false, err
	}

	return t.search(t.root, key) != nil, nil
}

func (t *Tree[K, V]) search(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	if c := t.compare(key, n.key); c < 0 {
		return t.search(n.left, key)
	} else if c > 0 {
		return t.search(n.right, key)
	}

	return n
}

// Update replaces the value of an existing binding. Unlike Put, it does
// nothing when key is not in the tree.
func (t *Tree[K, V]) Update(key K, value V) error {
	if err := checkKey("update", key); err != nil {
		return err
	}

	if n := t.search(t.root, key); n != nil {
		n.value = value
	}

	return nil
}

// Delete removes the binding of key, if any.
func (t *Tree[K, V]) Delete(key K) error {
	if err := checkKey("delete", key); err != nil {
		return err
	}

	t.root = t.delete(t.root, key)
	return nil
}

func (t *Tree[K, V]) delete(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	if c := t.compare(key, n.key); c < 0 {
		n.left = t.delete(n.left, key)
	} else if c > 0 {
		n.right = t.delete(n.right, key)
	} else {
		if n.left == nil {
			return n.right
		}

		if n.right == nil {
			return n.left
		}

		// promote the in-order successor: it takes over the deleted
		// node's left subtree and the right subtree without itself.
		successor := minOf(n.right)
		right := deleteMin(n.right)
		successor.left = n.left
		successor.right = right
		n = successor
	}

	n.resize()
	return n
}

// deleteMin unlinks the leftmost node of the subtree and returns the new
// subtree root.
func deleteMin[K, V any](n *node[K, V]) *node[K, V] {
	if n.left == nil {
		return n.right
	}

	n.left = deleteMin(n.left)
	n.resize()
	return n
}

// Size returns the number of bindings.
func (t *Tree[K, V]) Size() int {
	return sizeOf(t.root)
}

// Height returns the number of nodes on the longest path from the root to
// a leaf, 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	return heightOf(t.root)
}

// Min returns the binding with the smallest key.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if n := minOf(t.root); n != nil {
		return n.key, n.value, true
	}

	return key, value, false
}

// Max returns the binding with the largest key.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if n := maxOf(t.root); n != nil {
		return n.key, n.value, true
	}

	return key, value, false
}
