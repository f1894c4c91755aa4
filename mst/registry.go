// File: registry.go
// Role: AlgorithmFunc/Registry/RunOptions/Runner — the dispatch and
// cross-algorithm comparison layer, following the
// functional-options pattern (prim_kruskal.MSTOptions/Option).
package mst

import (
	"errors"
	"fmt"
	"math"

	"github.com/mstlab/tpmverify/core"
)

// DefaultTolerance is the maximum allowed difference between two MST total
// weights for them to be considered equal.
const DefaultTolerance = 0.001

// Algorithm names, fixed per `--filter` surface.
const (
	NameKruskal     = "kruskal"
	NamePrimBinHeap = "prim_bin_heap"
	NamePrimFibHeap = "prim_fib_heap"
	NameBoruvka     = "boruvka"
	NameRandomKKT   = "random_KKT"
)

// ErrUnknownAlgorithm indicates a name not present in Registry.
var ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")

// AlgorithmFunc computes an MST (or minimum spanning forest) of g under the
// given options.
type AlgorithmFunc func(g *core.Graph, opts RunOptions) (Result, error)

// Registry maps each fixed algorithm name to its implementation. Thin
// reference wrappers delegating to an external graph library are
// omitted: this implementation has no such collaborator to delegate to.
var Registry = map[string]AlgorithmFunc{
	NameKruskal: func(g *core.Graph, _ RunOptions) (Result, error) {
		return Kruskal(g)
	},
	NamePrimBinHeap: func(g *core.Graph, opts RunOptions) (Result, error) {
		return PrimBinaryHeap(g, opts.Root)
	},
	NamePrimFibHeap: func(g *core.Graph, opts RunOptions) (Result, error) {
		return PrimFibonacciHeap(g, opts.Root)
	},
	NameBoruvka: func(g *core.Graph, _ RunOptions) (Result, error) {
		return Boruvka(g)
	},
	NameRandomKKT: func(g *core.Graph, opts RunOptions) (Result, error) {
		return RandomKKT(g, opts.Seed)
	},
}

// Names returns the registry's algorithm names, in fixed
// order (used by `mstbench ls`).
func Names() []string {
	return []string{NameKruskal, NamePrimBinHeap, NamePrimFibHeap, NameBoruvka, NameRandomKKT}
}

// RunOptions configures a single algorithm invocation.
type RunOptions struct {
	// Root is the starting vertex for the Prim variants. Ignored by
	// Kruskal, Borůvka, and random_KKT.
	Root int

	// Seed feeds random_KKT's sampler. Ignored by every other algorithm.
	Seed int64

	// Tolerance is the maximum allowed difference between this
	// algorithm's total weight and a reference total for them to count
	// as equal. Zero means DefaultTolerance.
	Tolerance float64
}

// Option configures RunOptions.
type Option func(*RunOptions)

// WithRoot sets the Prim variants' starting vertex.
func WithRoot(root int) Option {
	return func(o *RunOptions) { o.Root = root }
}

// WithSeed sets random_KKT's RNG seed.
func WithSeed(seed int64) Option {
	return func(o *RunOptions) { o.Seed = seed }
}

// WithTolerance overrides DefaultTolerance for a Runner comparison.
func WithTolerance(tolerance float64) Option {
	return func(o *RunOptions) { o.Tolerance = tolerance }
}

// WithFilter is accepted for symmetry with the functional-options idiom but
// has no effect on a single RunOptions value: filtering which algorithms to
// run is done by the names passed to Runner.Run (or the caller's own loop
// over Names()), not by one algorithm's options. Nothing in this module
// calls it.
func WithFilter(names ...string) Option {
	return func(*RunOptions) {}
}

// DefaultRunOptions returns RunOptions with Root 0, Seed 0, and
// DefaultTolerance.
func DefaultRunOptions(opts ...Option) RunOptions {
	o := RunOptions{Root: 0, Seed: 0, Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Runner compares every registered algorithm's result against a Kruskal
// reference, backing the `test` sub-command.
type Runner struct {
	Options RunOptions
}

// NewRunner builds a Runner from the given options.
func NewRunner(opts ...Option) Runner {
	return Runner{Options: DefaultRunOptions(opts...)}
}

// RunResult is one algorithm's outcome within a Runner.Run pass.
type RunResult struct {
	Name   string
	Weight float64
	Pass   bool
	Err    error
}

// Run executes every algorithm named in names (Names() if names is empty)
// against g, compares each to a Kruskal reference total weight within
// tolerance, and returns one RunResult per algorithm in the same order.
//
// An algorithm that returns an error does not abort the pass: it is
// recorded with Pass=false and its error, and the remaining algorithms
// still run.
func (r Runner) Run(g *core.Graph, names ...string) ([]RunResult, error) {
	if len(names) == 0 {
		names = Names()
	}

	reference, err := Kruskal(g)
	if err != nil {
		return nil, fmt.Errorf("mst: computing reference: %w", err)
	}
	refWeight, err := reference.TotalWeight(g)
	if err != nil {
		return nil, fmt.Errorf("mst: reference total weight: %w", err)
	}

	tolerance := r.Options.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	out := make([]RunResult, 0, len(names))
	for _, name := range names {
		fn, ok := Registry[name]
		if !ok {
			out = append(out, RunResult{Name: name, Err: fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)})
			continue
		}

		res, err := fn(g, r.Options)
		if err != nil {
			out = append(out, RunResult{Name: name, Err: err})
			continue
		}
		weight, err := res.TotalWeight(g)
		if err != nil {
			out = append(out, RunResult{Name: name, Err: err})
			continue
		}

		out = append(out, RunResult{
			Name:   name,
			Weight: weight,
			Pass:   math.Abs(weight-refWeight) <= tolerance,
		})
	}

	return out, nil
}
