// types.go — configuration options, defaults, and sentinel errors.
//
// Options:
//
//	– Seed:      shuffle seed driving node visit order (default DefaultSeed).
//	– MaxLevels: cap on coarsening levels (default DefaultMaxLevels).
//	– MinGain:   minimum modularity gain to descend a further level
//	             (default DefaultMinGain).
//	– SelfLoops: record diagonal matrix entries as node self-weight.
//	– Logger:    optional zap logger for per-level progress (default Nop).
//
// Errors (sentinel):
//
//	– ErrNilMatrix        if a nil *sparse.Matrix is provided.
//	– ErrNonSquare        if the input matrix is not square.
//	– ErrEmptyGraph       if the network has zero nodes.
//	– ErrAssignmentLength if a node→cluster assignment has the wrong length.
//	– ErrClusterRange     if an assignment cluster id falls outside [0, n).
//	– ErrBadRestarts      if MultiStart is asked for < 1 restarts.

package louvain

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilMatrix indicates that a nil *sparse.Matrix was passed to
	// NewNetwork, Louvain or MultiStart.
	ErrNilMatrix = errors.New("louvain: matrix is nil")

	// ErrNonSquare indicates that the input adjacency matrix is not square;
	// construction fails immediately with no partial result.
	ErrNonSquare = errors.New("louvain: matrix is not square")

	// ErrEmptyGraph indicates a zero-node network; the optimizer
	// short-circuits rather than divide by a zero total weight.
	ErrEmptyGraph = errors.New("louvain: network has no nodes")

	// ErrAssignmentLength indicates that a node→cluster assignment does not
	// have exactly one entry per network node.
	ErrAssignmentLength = errors.New("louvain: assignment length mismatch")

	// ErrClusterRange indicates an assignment cluster id outside [0, n);
	// cluster ids are node-count-bounded array indices within a level.
	ErrClusterRange = errors.New("louvain: cluster id out of range")

	// ErrBadRestarts indicates that fewer than one restart was requested.
	ErrBadRestarts = errors.New("louvain: restarts must be >= 1")
)

// Documented defaults (single source of truth).
const (
	// DefaultSeed drives the node-order shuffle when WithSeed is not given.
	// Deterministic by default: no global randomness, ever.
	DefaultSeed uint64 = 1

	// DefaultMaxLevels bounds the number of coarsening levels. Each level
	// strictly shrinks the network, so the bound exists purely as a
	// safety valve for callers capping runtime.
	DefaultMaxLevels = 32

	// DefaultMinGain is the minimum accumulated modularity gain a level
	// must achieve for the driver to descend to a further level.
	DefaultMinGain = 1e-7
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicMaxLevelsInvalid = "louvain: WithMaxLevels: levels must be >= 1"
	panicMinGainInvalid   = "louvain: WithMinGain: gain must be finite, non-negative"
	panicLoggerNil        = "louvain: WithLogger: logger must be non-nil"
)

// Options configures network construction and the multilevel driver.
// Fields are resolved from functional options; zero value is never used
// directly — see defaultOptions.
type Options struct {
	Seed      uint64      // shuffle seed for node visit order
	MaxLevels int         // cap on coarsening levels (>= 1)
	MinGain   float64     // gain threshold to continue to a further level
	SelfLoops bool        // record diagonal entries as node self-weight
	Logger    *zap.Logger // per-level progress sink (never nil after resolve)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithSeed fixes the shuffle seed for node visit order. The final
// partition is seed-dependent by design (exploration order matters);
// fixing the seed makes runs bit-reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxLevels caps the number of coarsening levels.
// Panics if levels < 1.
func WithMaxLevels(levels int) Option {
	if levels < 1 {
		panic(panicMaxLevelsInvalid)
	}

	return func(o *Options) { o.MaxLevels = levels }
}

// WithMinGain sets the minimum modularity gain a level must produce for
// the driver to build a reduced network and continue.
// Panics if gain is negative, NaN or ±Inf.
func WithMinGain(gain float64) Option {
	if gain < 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		panic(panicMinGainInvalid)
	}

	return func(o *Options) { o.MinGain = gain }
}

// WithSelfLoops records diagonal matrix entries as node self-weight, so
// they contribute to cluster internal weight and hence to modularity.
// Off by default: the primary construction path counts a diagonal entry
// toward the node's total weight only. Self-loop support is a documented
// but dormant feature of the reference bookkeeping; enable deliberately.
func WithSelfLoops() Option {
	return func(o *Options) { o.SelfLoops = true }
}

// WithLogger installs a structured logger receiving per-level progress
// (nodes, clusters, moves, gain, modularity). Panics if lg is nil; use
// zap.NewNop() to silence explicitly.
func WithLogger(lg *zap.Logger) Option {
	if lg == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.Logger = lg }
}

// defaultOptions returns the resolved defaults; applied before user
// options in every public entry point.
func defaultOptions() Options {
	return Options{
		Seed:      DefaultSeed,
		MaxLevels: DefaultMaxLevels,
		MinGain:   DefaultMinGain,
		SelfLoops: false,
		Logger:    zap.NewNop(),
	}
}

// resolveOptions applies opts over the defaults.
func resolveOptions(opts []Option) Options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
