// louvain_test.go exercises the multilevel driver and multi-start under
// various scenarios, suite-style.
package louvain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rseurinc/severo/builder"
	"github.com/rseurinc/severo/louvain"
	"github.com/rseurinc/severo/sparse"
)

// LouvainSuite exercises the full driver under various scenarios.
type LouvainSuite struct {
	suite.Suite
}

// TestReferenceGraph verifies the reference scenario end to end: from
// singletons the driver must reach the ground-truth triangle partition.
func (s *LouvainSuite) TestReferenceGraph() {
	res, err := louvain.Louvain(builder.ReferenceTriangles())
	require.NoError(s.T(), err)

	require.Equal(s.T(), builder.ReferenceClusters, res.NumClusters())
	require.Equal(s.T(), builder.ReferenceGroundTruth(), res.Membership,
		"renumbering by first appearance makes the triangle partition canonical")
	require.GreaterOrEqual(s.T(), res.Modularity+qTol, refTriangleQ)
	require.NotEmpty(s.T(), res.Levels)
	require.Equal(s.T(), 9, res.Levels[0].Nodes)
}

// TestSeedsAllConverge runs a spread of seeds; the reference fixture has
// a single dominant optimum every exploration order finds.
func (s *LouvainSuite) TestSeedsAllConverge() {
	for seed := uint64(1); seed <= 20; seed++ {
		res, err := louvain.Louvain(builder.ReferenceTriangles(), louvain.WithSeed(seed))
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), res.Modularity+qTol, refTriangleQ, "seed %d", seed)
	}
}

// TestDeterminism: identical seeds produce identical results.
func (s *LouvainSuite) TestDeterminism() {
	m, err := builder.RandomSimilarity(120, 0.08, 2.0, 33)
	require.NoError(s.T(), err)

	a, err := louvain.Louvain(m, louvain.WithSeed(5))
	require.NoError(s.T(), err)
	b, err := louvain.Louvain(m, louvain.WithSeed(5))
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.Membership, b.Membership)
	require.Equal(s.T(), a.Modularity, b.Modularity)
	require.Equal(s.T(), a.Levels, b.Levels)
}

// TestLevelStatsAreMonotone: flat modularity never decreases level over
// level, and per-level gains are non-negative.
func (s *LouvainSuite) TestLevelStatsAreMonotone() {
	m, err := builder.RingOfCliques(8, 5, 2.0, 0.25)
	require.NoError(s.T(), err)

	res, err := louvain.Louvain(m)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), res.Levels)
	prev := -0.5
	for _, lv := range res.Levels {
		require.GreaterOrEqual(s.T(), lv.Gain, 0.0)
		require.GreaterOrEqual(s.T(), lv.Modularity+qTol, prev, "level %d", lv.Level)
		prev = lv.Modularity
	}
	require.Equal(s.T(), res.Modularity, res.Levels[len(res.Levels)-1].Modularity)
}

// TestPlantedCliquesRecovered: a high-contrast ring of cliques must be
// recovered exactly, one cluster per clique.
func (s *LouvainSuite) TestPlantedCliquesRecovered() {
	const cliques, size = 6, 4
	m, err := builder.RingOfCliques(cliques, size, 3.0, 0.1)
	require.NoError(s.T(), err)

	res, err := louvain.Louvain(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), cliques, res.NumClusters())
	for i, cid := range res.Membership {
		require.Equal(s.T(), i/size, cid, "node %d", i)
	}
}

// TestMaxLevelsCapsDescent: with MaxLevels=1 only level 0 runs.
func (s *LouvainSuite) TestMaxLevelsCapsDescent() {
	m, err := builder.RingOfCliques(10, 4, 2.0, 0.5)
	require.NoError(s.T(), err)

	res, err := louvain.Louvain(m, louvain.WithMaxLevels(1))
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Levels, 1)
}

// TestEmptyGraph: a 0×0 matrix is rejected with ErrEmptyGraph.
func (s *LouvainSuite) TestEmptyGraph() {
	var m sparse.Matrix
	_, err := louvain.Louvain(&m)
	require.ErrorIs(s.T(), err, louvain.ErrEmptyGraph)
}

// TestNilMatrix is rejected before any work.
func (s *LouvainSuite) TestNilMatrix() {
	_, err := louvain.Louvain(nil)
	require.ErrorIs(s.T(), err, louvain.ErrNilMatrix)
}

// TestNonSquare surfaces the construction error unchanged.
func (s *LouvainSuite) TestNonSquare() {
	b, err := sparse.NewBuilder(2, 3)
	require.NoError(s.T(), err)
	m, err := b.Build()
	require.NoError(s.T(), err)

	_, err = louvain.Louvain(m)
	require.True(s.T(), errors.Is(err, louvain.ErrNonSquare))
}

// TestZeroWeightGraph: nodes but no weight — singleton labeling,
// modularity 0, no NaN.
func (s *LouvainSuite) TestZeroWeightGraph() {
	// A matrix whose only entries merged to zero: structure-free.
	b, err := sparse.NewBuilder(5, 5)
	require.NoError(s.T(), err)
	m, err := b.Build()
	require.NoError(s.T(), err)

	res, err := louvain.Louvain(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, res.Membership)
	require.Equal(s.T(), 0.0, res.Modularity)
}

// TestLoggerReceivesLevels: the optional zap logger observes one entry
// per level.
func (s *LouvainSuite) TestLoggerReceivesLevels() {
	core, logs := observer.New(zap.DebugLevel)
	lg := zap.New(core)

	res, err := louvain.Louvain(builder.ReferenceTriangles(), louvain.WithLogger(lg))
	require.NoError(s.T(), err)
	require.Equal(s.T(), len(res.Levels), logs.Len())
	entry := logs.All()[0]
	require.Equal(s.T(), "louvain level complete", entry.Message)
	require.Equal(s.T(), int64(9), entry.ContextMap()["nodes"])
}

// TestLabelsAreOneBased: Result.Labels mirrors Membership shifted by one.
func (s *LouvainSuite) TestLabelsAreOneBased() {
	res, err := louvain.Louvain(builder.ReferenceTriangles())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 1, 1, 2, 2, 2, 3, 3, 3}, res.Labels())
}

func TestLouvainSuite(t *testing.T) {
	suite.Run(t, new(LouvainSuite))
}

// ------------------------------------------------------------------------
// Multi-start.
// ------------------------------------------------------------------------

func TestMultiStart_BadRestarts(t *testing.T) {
	_, err := louvain.MultiStart(builder.ReferenceTriangles(), 0)
	require.ErrorIs(t, err, louvain.ErrBadRestarts)
}

func TestMultiStart_NilMatrix(t *testing.T) {
	_, err := louvain.MultiStart(nil, 4)
	require.ErrorIs(t, err, louvain.ErrNilMatrix)
}

func TestMultiStart_BeatsOrMatchesEverySingleRun(t *testing.T) {
	m, err := builder.RandomSimilarity(90, 0.1, 2.0, 55)
	require.NoError(t, err)

	const restarts = 8
	best, err := louvain.MultiStart(m, restarts, louvain.WithSeed(100))
	require.NoError(t, err)

	for r := 0; r < restarts; r++ {
		single, err := louvain.Louvain(m, louvain.WithSeed(100+uint64(r)))
		require.NoError(t, err)
		require.GreaterOrEqual(t, best.Modularity+qTol, single.Modularity, "run %d", r)
	}
}

func TestMultiStart_ReportsWinningSeed(t *testing.T) {
	best, err := louvain.MultiStart(builder.ReferenceTriangles(), 4, louvain.WithSeed(10))
	require.NoError(t, err)

	replay, err := louvain.Louvain(builder.ReferenceTriangles(), louvain.WithSeed(best.Seed))
	require.NoError(t, err)
	require.Equal(t, best.Membership, replay.Membership)
	require.Equal(t, best.Modularity, replay.Modularity)
}
