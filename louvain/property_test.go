// Property-based invariant checks over randomly generated similarity
// graphs. Each property must hold for ANY input the engine accepts.
package louvain_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rseurinc/severo/builder"
	"github.com/rseurinc/severo/louvain"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	parameters.MaxSize = 60

	return parameters
}

// genGraphInputs yields (n, p, seed) triples for builder.RandomSimilarity.
// Sizes stay small so a full multilevel run fits a property iteration.
func genGraphInputs() (gopter.Gen, gopter.Gen, gopter.Gen) {
	return gen.IntRange(2, 60),
		gen.Float64Range(0.02, 0.5),
		gen.Int64Range(1, 1<<30)
}

func TestEngineInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based tests in short mode")
	}

	properties := gopter.NewProperties(propertyParameters())
	gn, gp, gs := genGraphInputs()

	// Modularity of any labeling produced by the engine lies in [-1/2, 1].
	properties.Property("modularity stays within [-0.5, 1]", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			m, err := builder.RandomSimilarity(n, p, 2.0, uint64(seed))
			if err != nil {
				return false
			}
			res, err := louvain.Louvain(m, louvain.WithSeed(uint64(seed)))
			if err != nil {
				return false
			}

			return res.Modularity >= -0.5-qTol && res.Modularity <= 1+qTol
		},
		gn, gp, gs,
	))

	// The final labeling is dense: cluster ids cover 0..k-1 with no gaps.
	properties.Property("membership ids are dense 0..k-1", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			m, err := builder.RandomSimilarity(n, p, 2.0, uint64(seed))
			if err != nil {
				return false
			}
			res, err := louvain.Louvain(m, louvain.WithSeed(uint64(seed)))
			if err != nil {
				return false
			}

			k := res.NumClusters()
			seen := make([]bool, k)
			for _, cid := range res.Membership {
				if cid < 0 || cid >= k {
					return false
				}
				seen[cid] = true
			}
			for _, ok := range seen {
				if !ok {
					return false
				}
			}

			return true
		},
		gn, gp, gs,
	))

	// The driver never does worse than the singleton baseline.
	properties.Property("result beats or matches singletons", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			m, err := builder.RandomSimilarity(n, p, 2.0, uint64(seed))
			if err != nil {
				return false
			}
			net, err := louvain.NewNetwork(m)
			if err != nil {
				return false
			}
			baseline := louvain.NewClustering(net).Modularity()

			res, err := louvain.Louvain(m, louvain.WithSeed(uint64(seed)))
			if err != nil {
				return false
			}

			return res.Modularity >= baseline-qTol
		},
		gn, gp, gs,
	))

	// Coarsening conserves weight: the reduced network carries exactly the
	// total weight of the fine one, whatever partition local moving found.
	properties.Property("reduction conserves total weight", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			m, err := builder.RandomSimilarity(n, p, 2.0, uint64(seed))
			if err != nil {
				return false
			}
			net, err := louvain.NewNetwork(m)
			if err != nil {
				return false
			}
			clus := louvain.NewClustering(net)
			louvain.Optimize(clus, louvain.WithSeed(uint64(seed)))
			louvain.RenumberForTest(clus)

			reduced := louvain.ReduceNetworkForTest(clus)

			return math.Abs(reduced.TotalWeight()-net.TotalWeight()) < 1e-6
		},
		gn, gp, gs,
	))

	// Coarsening preserves modularity: singletons of the reduced network
	// score exactly like the partition they stand for.
	properties.Property("reduction preserves modularity", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			m, err := builder.RandomSimilarity(n, p, 2.0, uint64(seed))
			if err != nil {
				return false
			}
			net, err := louvain.NewNetwork(m)
			if err != nil {
				return false
			}
			clus := louvain.NewClustering(net)
			louvain.Optimize(clus, louvain.WithSeed(uint64(seed)))
			louvain.RenumberForTest(clus)

			qFine := clus.Modularity()
			qCoarse := louvain.NewClustering(louvain.ReduceNetworkForTest(clus)).Modularity()

			return math.Abs(qFine-qCoarse) < 1e-9
		},
		gn, gp, gs,
	))

	properties.TestingRun(t)
}
