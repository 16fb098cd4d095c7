package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bstmap/pkg/bst"
	"github.com/c9s/bstmap/pkg/metrics"
)

var log = logrus.WithField("component", "bench")

type Order string

const (
	OrderRandom     Order = "random"
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

type Config struct {
	Count int   `json:"count" yaml:"count"`
	Order Order `json:"order" yaml:"order"`

	// DeleteRatio is the fraction of the inserted keys deleted after the
	// lookup phase.
	DeleteRatio float64 `json:"deleteRatio" yaml:"deleteRatio"`

	Seed     int64 `json:"seed" yaml:"seed"`
	Validate bool  `json:"validate" yaml:"validate"`
	Progress bool  `json:"progress" yaml:"progress"`
}

func (c *Config) Defaults() {
	if c.Order == "" {
		c.Order = OrderRandom
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}

func (c *Config) Check() error {
	if c.Count <= 0 {
		return errors.Errorf("count must be positive, %d given", c.Count)
	}

	if c.DeleteRatio < 0 || c.DeleteRatio > 1 {
		return errors.Errorf("delete ratio must be within [0, 1], %f given", c.DeleteRatio)
	}

	switch c.Order {
	case OrderRandom, OrderAscending, OrderDescending:
	default:
		return errors.Errorf("unknown order %q", c.Order)
	}

	return nil
}

type Phase struct {
	Name     string
	Ops      int
	Duration time.Duration
}

func (p Phase) PerOp() time.Duration {
	if p.Ops == 0 {
		return 0
	}

	return p.Duration / time.Duration(p.Ops)
}

type Stats struct {
	Order  Order
	Seed   int64
	Phases []Phase

	// PeakHeight is the height after the insert phase.
	PeakHeight int

	Size   int
	Height int
}

// Run inserts Count keys in the configured order, looks all of them up
// and deletes DeleteRatio of them.
func Run(ctx context.Context, config Config) (*Stats, error) {
	config.Defaults()
	if err := config.Check(); err != nil {
		return nil, err
	}

	rnd := rand.New(rand.NewSource(config.Seed))
	keys := generateKeys(rnd, config.Count, config.Order)

	tree := bst.New[int, int]()
	stats := &Stats{Order: config.Order, Seed: config.Seed}

	phase := func(name string, keys []int, apply func(key int) error) error {
		var bar *pb.ProgressBar
		if config.Progress {
			bar = pb.Full.Start(len(keys))
			bar.Set("prefix", name+" ")
			defer bar.Finish()
		}

		start := time.Now()
		for i, key := range keys {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return errors.Wrapf(err, "%s phase interrupted", name)
				}
			}

			if err := apply(key); err != nil {
				return errors.Wrapf(err, "%s %d", name, key)
			}

			if bar != nil {
				bar.Increment()
			}
		}

		duration := time.Since(start)
		stats.Phases = append(stats.Phases, Phase{Name: name, Ops: len(keys), Duration: duration})
		metrics.BenchPhaseDurationMetrics.WithLabelValues(string(config.Order), name).Observe(duration.Seconds())
		log.Debugf("%s phase: %d ops in %s", name, len(keys), duration)
		return nil
	}

	if err := phase("insert", keys, func(key int) error {
		return tree.Put(key, key)
	}); err != nil {
		return nil, err
	}

	stats.PeakHeight = tree.Height()

	if err := phase("lookup", keys, func(key int) error {
		if _, ok, err := tree.Get(key); err != nil {
			return err
		} else if !ok {
			return errors.New("key not found")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	numDeletes := int(float64(len(keys)) * config.DeleteRatio)
	if numDeletes > 0 {
		deleting := make([]int, numDeletes)
		copy(deleting, keys)
		rnd.Shuffle(len(deleting), func(i, j int) {
			deleting[i], deleting[j] = deleting[j], deleting[i]
		})

		if err := phase("delete", deleting, tree.Delete); err != nil {
			return nil, err
		}
	}

	stats.Size = tree.Size()
	stats.Height = tree.Height()

	if config.Validate {
		if err := tree.Validate(); err != nil {
			return stats, errors.Wrap(err, "tree invariants violated")
		}
	}

	if want := len(keys) - numDeletes; stats.Size != want {
		return stats, errors.Errorf("tree size %d, expected %d", stats.Size, want)
	}

	metrics.TreeSizeMetrics.WithLabelValues("bench").Set(float64(stats.Size))
	metrics.TreeHeightMetrics.WithLabelValues("bench").Set(float64(stats.Height))
	return stats, nil
}

// generateKeys returns n distinct keys in the given order.
func generateKeys(rnd *rand.Rand, n int, order Order) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	switch order {
	case OrderRandom:
		rnd.Shuffle(n, func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})

	case OrderDescending:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	return keys
}
