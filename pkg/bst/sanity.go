package bst

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the ordering and size invariants of every node and
// returns all violations found, or nil.
func (t *Tree[K, V]) Validate() (err error) {
	t.sanityCheck(t.root, nil, nil, &err)
	return err
}

// sanityCheck verifies the subtree rooted at n, whose keys must lie
// strictly between lower and upper when they are set, and returns the
// number of nodes it counted.
func (t *Tree[K, V]) sanityCheck(n *node[K, V], lower, upper *K, err *error) int {
	if n == nil {
		return 0
	}

	if lower != nil && !(t.compare(n.key, *lower) > 0) {
		*err = multierr.Append(*err, fmt.Errorf("key %s is not greater than its ancestor %s", t.formatKey(n.key), t.formatKey(*lower)))
	}

	if upper != nil && !(t.compare(n.key, *upper) < 0) {
		*err = multierr.Append(*err, fmt.Errorf("key %s is not less than its ancestor %s", t.formatKey(n.key), t.formatKey(*upper)))
	}

	count := t.sanityCheck(n.left, lower, &n.key, err) + t.sanityCheck(n.right, &n.key, upper, err) + 1

	if want := sizeOf(n.left) + sizeOf(n.right) + 1; n.size != want {
		*err = multierr.Append(*err, fmt.Errorf("node %s: cached size %d, children give %d", t.formatKey(n.key), n.size, want))
	}

	if n.size != count {
		*err = multierr.Append(*err, fmt.Errorf("node %s: cached size %d, counted %d nodes", t.formatKey(n.key), n.size, count))
	}

	return count
}
