package script

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bstmap/pkg/bst"
	"github.com/c9s/bstmap/pkg/metrics"
)

// Result is the outcome of one operation.
type Result struct {
	Index int
	Op    OpType
	Key   *string

	// Value is the value read by get, min and max.
	Value string

	// Found is set by get, min and max when a binding exists.
	Found bool

	// Count carries the answer of size and height.
	Count int

	// Size is the tree size after the operation.
	Size int

	Error error
}

func (r Result) Outcome() string {
	switch {
	case errors.Is(r.Error, bst.ErrInvalidKey):
		return "invalid_key"
	case r.Error != nil:
		return "error"
	case (r.Op == OpGet || r.Op == OpMin || r.Op == OpMax) && !r.Found:
		return "not_found"
	}

	return "ok"
}

// Runner applies scripts to a tree keyed by strings. The tree persists
// across Run calls.
type Runner struct {
	Name string

	// StopOnError aborts the run at the first failing operation instead of
	// recording the failure and moving on.
	StopOnError bool

	tree   *bst.Tree[*string, string]
	logger logrus.FieldLogger
}

func NewRunner(name string) *Runner {
	tree := bst.NewWithComparator[*string, string](compareKeys)
	tree.SetKeyFormatter(KeyString)

	return &Runner{
		Name:   name,
		tree:   tree,
		logger: logrus.WithFields(logrus.Fields{"component": "script", "tree": name}),
	}
}

func compareKeys(a, b *string) int {
	return strings.Compare(*a, *b)
}

func (r *Runner) Tree() *bst.Tree[*string, string] {
	return r.tree
}

// Graph renders the current tree with plain string keys.
func (r *Runner) Graph() string {
	return r.tree.Graph()
}

func (r *Runner) Run(s *Script) ([]Result, error) {
	r.logger.Infof("running script %q with %d operations", s.Name, len(s.Operations))

	results := make([]Result, 0, len(s.Operations))
	for i, op := range s.Operations {
		result := r.Apply(op)
		result.Index = i
		results = append(results, result)

		if result.Error != nil {
			if r.StopOnError {
				return results, errors.Wrapf(result.Error, "operation #%d %s", i, op.Op)
			}

			r.logger.WithError(result.Error).Warnf("operation #%d %s %s failed", i, op.Op, KeyString(op.Key))
		}
	}

	return results, nil
}

// Apply runs a single operation against the tree.
func (r *Runner) Apply(op Operation) Result {
	result := Result{Op: op.Op, Key: op.Key}

	switch op.Op {
	case OpPut:
		result.Error = r.tree.Put(op.Key, op.Value)

	case OpGet:
		result.Value, result.Found, result.Error = r.tree.Get(op.Key)

	case OpUpdate:
		result.Error = r.tree.Update(op.Key, op.Value)

	case OpDelete:
		result.Error = r.tree.Delete(op.Key)

	case OpSize:
		result.Count = r.tree.Size()

	case OpHeight:
		result.Count = r.tree.Height()

	case OpMin:
		result.Key, result.Value, result.Found = r.tree.Min()

	case OpMax:
		result.Key, result.Value, result.Found = r.tree.Max()

	case OpValidate:
		result.Error = r.tree.Validate()

	default:
		result.Error = errors.Errorf("unknown op %q", op.Op)
	}

	result.Size = r.tree.Size()

	r.logger.Debugf("%s %s -> %s", op.Op, KeyString(op.Key), result.Outcome())

	metrics.TreeOperationsMetrics.WithLabelValues(r.Name, string(op.Op), result.Outcome()).Inc()
	metrics.TreeSizeMetrics.WithLabelValues(r.Name).Set(float64(result.Size))
	metrics.TreeHeightMetrics.WithLabelValues(r.Name).Set(float64(r.tree.Height()))
	return result
}
