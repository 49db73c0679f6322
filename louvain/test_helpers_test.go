// Shared fixtures for the louvain test files.
package louvain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rseurinc/severo/builder"
	"github.com/rseurinc/severo/louvain"
	"github.com/rseurinc/severo/sparse"
)

// Reference modularity values of the 9-node ring-of-triangles fixture
// (builder.ReferenceTriangles): three triangles with edge weights
// (5, 11, 3) bridged in a ring with weight 3.
const (
	refSingletonQ = -0.1229338842975207 // every node its own cluster
	refTriangleQ  = 0.5303030303030303  // ground-truth 3-way partition
	qTol          = 1e-9
)

// triangleRingMatrix returns the reference similarity matrix.
func triangleRingMatrix(t *testing.T) *sparse.Matrix {
	t.Helper()

	return builder.ReferenceTriangles()
}

// triangleRingNetwork builds the reference Network.
func triangleRingNetwork(t *testing.T) *louvain.Network {
	t.Helper()
	net, err := louvain.NewNetwork(triangleRingMatrix(t))
	require.NoError(t, err)

	return net
}

// sumClusterTotals adds up WTot over the clusters arena.
func sumClusterTotals(c *louvain.Clustering) float64 {
	var sum float64
	for cid := 0; cid < c.NumClusters(); cid++ {
		sum += c.Cluster(cid).WTot
	}

	return sum
}

// randomNetwork builds a seeded Erdős–Rényi similarity network for
// invariant tests.
func randomNetwork(t *testing.T, n int, p float64, seed uint64) *louvain.Network {
	t.Helper()
	m, err := builder.RandomSimilarity(n, p, 3.0, seed)
	require.NoError(t, err)
	net, err := louvain.NewNetwork(m)
	require.NoError(t, err)

	return net
}
