// louvain.go — the multilevel driver and the public entry points.
//
// Control flow per run: build Network → singleton Clustering → local move
// to a fixed point → renumber → merge into the flat labeling → stop, or
// reduce and repeat one level down. An explicit loop over owned
// (Network, Clustering) pairs, no recursion.

package louvain

import (
	"fmt"
	"math/rand"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rseurinc/severo/sparse"
)

// LevelStats records one coarsening level's outcome for diagnostics.
type LevelStats struct {
	Level      int     // 0-based level index (0 = original graph)
	Nodes      int     // nodes in this level's network
	Clusters   int     // clusters after local moving (renumbered)
	Moves      int     // accepted moves during local moving
	Gain       float64 // accumulated modularity gain of this level
	Modularity float64 // flat-labeling modularity after this level
}

// Result is the outcome of one full multilevel run.
type Result struct {
	Membership []int        // node → cluster, dense 0-based ids
	Modularity float64      // modularity of the final flat labeling
	Levels     []LevelStats // per-level diagnostics, in order
	Seed       uint64       // the shuffle seed that produced this result
}

// NumClusters returns the number of distinct clusters in the labeling.
func (r *Result) NumClusters() int {
	max := 0
	for _, cid := range r.Membership {
		if cid+1 > max {
			max = cid + 1
		}
	}

	return max
}

// Labels returns the membership as 1-based labels 1..k, the convention of
// the surrounding pipeline's output boundary.
func (r *Result) Labels() []int {
	out := make([]int, len(r.Membership))
	for i, cid := range r.Membership {
		out[i] = cid + 1
	}

	return out
}

// Louvain partitions the graph described by the symmetric sparse matrix m
// into communities maximizing modularity, by greedy local moving
// interleaved with multi-level coarsening.
//
// Termination: a level that accepts no moves, gains less than MinGain, or
// fails to shrink the network ends the descent; MaxLevels caps the depth
// unconditionally.
//
// Degenerate inputs: a 0×0 matrix returns ErrEmptyGraph; a graph with
// zero total weight (no edges, no self-loops) returns the singleton
// labeling with modularity 0 — the gain arithmetic divides by W and must
// not run.
//
// The run is deterministic for a fixed seed (WithSeed).
// Complexity: O(levels · passes · (n + nnz)) time, O(n + nnz) space.
func Louvain(m *sparse.Matrix, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	cfg := resolveOptions(opts)

	net, err := NewNetwork(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("Louvain: %w", err)
	}

	return run(net, cfg)
}

// run executes the multilevel loop over an already-built Network.
// Exclusively owns every Clustering and scratch buffer it creates.
func run(net *Network, cfg Options) (*Result, error) {
	n := net.NumNodes()
	if n == 0 {
		return nil, fmt.Errorf("Louvain: %w", ErrEmptyGraph)
	}

	res := &Result{Seed: cfg.Seed}
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	// flat is the labeling of the ORIGINAL nodes, updated after each level.
	var flat *Clustering

	for level := 0; level < cfg.MaxLevels; level++ {
		clus := NewClustering(net)
		gain, moves := localMove(net, clus, rng, newMoveScratch(net.NumNodes()))
		k := clus.renumber()

		if flat == nil {
			flat = clus
		} else {
			flat = mergeClusterings(flat, clus)
		}

		q := flat.Modularity()
		res.Levels = append(res.Levels, LevelStats{
			Level:      level,
			Nodes:      net.NumNodes(),
			Clusters:   k,
			Moves:      moves,
			Gain:       gain,
			Modularity: q,
		})
		cfg.Logger.Debug("louvain level complete",
			zap.Int("level", level),
			zap.Int("nodes", net.NumNodes()),
			zap.Int("clusters", k),
			zap.Int("moves", moves),
			zap.Float64("gain", gain),
			zap.Float64("modularity", q),
		)

		// Stop when the level was inert, gains fell below threshold, or
		// coarsening would not shrink the graph further.
		if moves == 0 || gain < cfg.MinGain || k == net.NumNodes() {
			break
		}
		net = reduceNetwork(clus)
	}

	res.Membership = flat.Membership()
	res.Modularity = flat.Modularity()

	return res, nil
}

// MultiStart runs `restarts` independent Louvain runs with derived seeds
// (base seed + run index) and returns the best result by modularity, ties
// resolving to the lowest run index for determinism.
//
// Runs execute concurrently, bounded by GOMAXPROCS. The Network is built
// once and shared read-only; every run owns its Clusterings, rng and
// scratch buffers, per the engine's concurrency contract.
//
// Returns ErrBadRestarts when restarts < 1.
func MultiStart(m *sparse.Matrix, restarts int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if restarts < 1 {
		return nil, fmt.Errorf("MultiStart: restarts=%d: %w", restarts, ErrBadRestarts)
	}
	cfg := resolveOptions(opts)

	net, err := NewNetwork(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("MultiStart: %w", err)
	}

	results := make([]*Result, restarts)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for r := 0; r < restarts; r++ {
		runCfg := cfg
		runCfg.Seed = cfg.Seed + uint64(r)
		idx := r
		g.Go(func() error {
			out, runErr := run(net, runCfg)
			if runErr != nil {
				return runErr
			}
			results[idx] = out

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("MultiStart: %w", err)
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Modularity > best.Modularity {
			best = r
		}
	}

	return best, nil
}
