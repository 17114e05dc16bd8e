// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/btree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
)

// degree of the reference B-tree
const referenceDegree = 32

// operation names, also used as metric labels
const (
	opInsert = "insert"
	opErase  = "erase"
	opFind   = "find"
)

// Result - totals from a run
type Result struct {
	Operations  int           `json:"operations"`
	Inserts     int           `json:"inserts"`
	Erases      int           `json:"erases"`
	Finds       int           `json:"finds"`
	Hits        int           `json:"hits"`
	Validations int           `json:"validations"`
	Size        int           `json:"size"`
	FailedAt    int           `json:"failedAt,omitempty"`
	Elapsed     time.Duration `json:"elapsed"`
}

// a pair held by the reference tree, ordered by key only
type entry struct {
	key   int
	value int
}

// Runner - drives one target
type Runner struct {
	log       *logger.L
	config    Configuration
	target    Target
	reference *btree.BTreeG[entry]
	rng       *rand.Rand
	limiter   *rate.Limiter
	progress  counter.Counter

	operations *prometheus.CounterVec
	size       prometheus.Gauge
}

// New - create a runner, metrics are registered when registry is not nil
func New(config Configuration, target Target, registry *prometheus.Registry) (*Runner, error) {

	if err := config.Validate(); nil != err {
		return nil, err
	}

	r := &Runner{
		log:    logger.New("workload"),
		config: config,
		target: target,
		reference: btree.NewG[entry](referenceDegree, func(a entry, b entry) bool {
			return a.key < b.key
		}),
		rng: rand.New(rand.NewSource(config.Seed)),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avlmap",
			Subsystem: "workload",
			Name:      "operations_total",
			Help:      "operations applied to the target",
		}, []string{"op"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "avlmap",
			Subsystem: "workload",
			Name:      "size",
			Help:      "number of keys in the target",
		}),
	}

	if config.Rate > 0 {
		burst := int(config.Rate)
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(config.Rate), burst)
	}

	if nil != registry {
		collectors := []prometheus.Collector{r.operations, r.size}
		if s, ok := target.(statistician); ok {
			collectors = append(collectors, rotationCollector(s))
		}
		for _, c := range collectors {
			if err := registry.Register(c); nil != err {
				return nil, err
			}
		}
	}

	return r, nil
}

// rotations counted by the target itself
func rotationCollector(s statistician) prometheus.Collector {
	return prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: "avlmap",
		Subsystem: "tree",
		Name:      "rotations_total",
		Help:      "rebalancing rotations performed by the tree",
	}, func() float64 {
		return float64(s.Stats().Rotations())
	})
}

// Progress - operations completed so far, safe from any goroutine
func (r *Runner) Progress() uint64 {
	return r.progress.Uint64()
}

// Configuration - the settings of this runner
func (r *Runner) Configuration() Configuration {
	return r.config
}

// Run - apply the configured operations, stopping at the first
// divergence or when ctx is cancelled
func (r *Runner) Run(ctx context.Context) (result Result, err error) {
	start := time.Now()

	defer func() {
		result.Elapsed = time.Since(start)
	}()

	if err := r.preload(&result); nil != err {
		result.Size = r.target.Size()
		return result, err
	}

	total := lo.Sum([]int{r.config.InsertWeight, r.config.EraseWeight, r.config.FindWeight})

	r.log.Infof("start: seed: %d  operations: %d  key space: %d", r.config.Seed, r.config.Operations, r.config.KeySpace)

	for i := 0; i < r.config.Operations; i += 1 {

		if err := r.wait(ctx); nil != err {
			r.log.Warnf("stopped after: %d operations: %s", result.Operations, err)
			result.Size = r.target.Size()
			return result, err
		}

		key := r.rng.Intn(r.config.KeySpace)
		pick := r.rng.Intn(total)

		switch {
		case pick < r.config.InsertWeight:
			err = r.insert(key, &result)
		case pick < r.config.InsertWeight+r.config.EraseWeight:
			err = r.erase(key, &result)
		default:
			err = r.find(key, &result)
		}

		if nil == err && r.target.Size() != r.reference.Len() {
			r.log.Errorf("size: %d  expected: %d", r.target.Size(), r.reference.Len())
			err = fault.ErrShadowMismatch
		}

		if nil == err && r.config.ValidateEvery > 0 && 0 == (i+1)%r.config.ValidateEvery {
			err = r.verify(&result)
		}

		result.Operations += 1
		r.progress.Increment()
		r.size.Set(float64(r.target.Size()))

		if nil != err {
			result.FailedAt = result.Operations
			result.Size = r.target.Size()
			r.log.Errorf("failed at operation: %d  error: %s", result.FailedAt, err)
			return result, err
		}

		if 0 == result.Operations%10000 {
			r.log.Debugf("operations: %d  size: %d", result.Operations, r.target.Size())
		}
	}

	err = r.verify(&result)
	if nil != err {
		result.FailedAt = result.Operations
	}
	result.Size = r.target.Size()

	r.log.Infof("finish: operations: %d  size: %d  error: %v", result.Operations, result.Size, err)
	return result, err
}

// insert a shuffled block of keys before the random phase
func (r *Runner) preload(result *Result) error {
	if 0 == r.config.Preload {
		return nil
	}
	keys := lo.Range(r.config.Preload)
	r.rng.Shuffle(len(keys), func(i int, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for _, key := range keys {
		if err := r.insert(key, result); nil != err {
			return err
		}
	}
	r.log.Infof("preloaded: %d keys", len(keys))
	return r.verify(result)
}

// block for the rate limiter or return early if cancelled
func (r *Runner) wait(ctx context.Context) error {
	if nil != r.limiter {
		return r.limiter.Wait(ctx)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (r *Runner) insert(key int, result *Result) error {
	value := r.rng.Int()
	result.Inserts += 1
	r.operations.WithLabelValues(opInsert).Inc()

	_, present := r.reference.Get(entry{key: key})
	added := r.target.Insert(key, value)
	if added == present {
		r.log.Errorf("insert: %d  added: %v  already present: %v", key, added, present)
		return fault.ErrShadowMismatch
	}
	if added {
		r.reference.ReplaceOrInsert(entry{key: key, value: value})
	}
	return nil
}

func (r *Runner) erase(key int, result *Result) error {
	result.Erases += 1
	r.operations.WithLabelValues(opErase).Inc()

	_, present := r.reference.Delete(entry{key: key})
	removed := r.target.Delete(key)
	if removed != present {
		r.log.Errorf("erase: %d  removed: %v  expected: %v", key, removed, present)
		return fault.ErrShadowMismatch
	}
	return nil
}

func (r *Runner) find(key int, result *Result) error {
	result.Finds += 1
	r.operations.WithLabelValues(opFind).Inc()

	e, present := r.reference.Get(entry{key: key})
	value, found := r.target.Find(key)
	if found != present {
		r.log.Errorf("find: %d  found: %v  expected: %v", key, found, present)
		return fault.ErrShadowMismatch
	}
	if found {
		result.Hits += 1
		if value != e.value {
			r.log.Errorf("find: %d  value: %d  expected: %d", key, value, e.value)
			return fault.ErrShadowMismatch
		}
	}
	return nil
}

// full comparison of the ascending key sequence plus the target's
// own structural check
func (r *Runner) verify(result *Result) error {
	result.Validations += 1

	if err := r.target.Validate(); nil != err {
		r.log.Errorf("validate: %s", err)
		return err
	}

	expected := make([]entry, 0, r.reference.Len())
	r.reference.Ascend(func(e entry) bool {
		expected = append(expected, e)
		return true
	})
	keys := lo.Map(expected, func(e entry, _ int) int {
		return e.key
	})

	actual := r.target.Keys()
	if !slices.Equal(keys, actual) {
		r.log.Errorf("keys: %d  expected: %d", len(actual), len(keys))
		return fault.ErrShadowMismatch
	}
	return nil
}
