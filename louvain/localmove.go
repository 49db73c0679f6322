// localmove.go — single-level greedy modularity optimization.
//
// Hot-path rules:
//   - no maps: neighbor-cluster accumulation uses a dense scratch array
//     plus a first-seen order list, reset by iterating the list;
//   - no allocation per node: scratch buffers are sized once per level
//     and reused across passes;
//   - tie-breaking is first-encountered-wins over the scan order — never
//     substitute a lowest-id or any other secondary key, reference
//     outputs depend on it.

package louvain

import "math/rand"

// moveScratch holds the per-run buffers of the optimizer. One instance
// per optimization run; never shared across concurrent runs.
type moveScratch struct {
	kin   []float64 // kin[c]: weight from the current node into cluster c
	seen  []int     // distinct neighboring clusters, first-seen order
	order []int     // node visit order, reshuffled every pass
}

// newMoveScratch sizes the buffers for a network of n nodes, whose
// cluster ids are always < n within a level.
func newMoveScratch(n int) *moveScratch {
	s := &moveScratch{
		kin:   make([]float64, n),
		seen:  make([]int, 0, n),
		order: make([]int, n),
	}
	for i := range s.order {
		s.order[i] = i
	}

	return s
}

// localMove runs greedy local moving over clus until a full pass accepts
// zero moves. Each pass visits all nodes in a freshly shuffled order
// drawn from rng.
//
// Per node, the candidate gain of leaving cluster `from` for a
// neighboring cluster c is evaluated relative to staying:
//
//	gain(c) = 2·( (kin[c] − WTot[c]·k_i/W) − (kin[from] − (WTot[from]−k_i)·k_i/W) ) / W
//
// which is zero at c == from by construction (the WTot[from] term sees
// the node removed). The strictly largest positive gain wins; ties keep
// the first-encountered candidate.
//
// Returns the accumulated gain — exactly the modularity delta across all
// accepted moves — and the number of accepted moves. Short-circuits with
// (0, 0) on an empty network or zero total weight (the gain arithmetic
// divides by W).
// Complexity: O(passes · (n + nnz)); O(n) extra space via scratch.
func localMove(net *Network, clus *Clustering, rng *rand.Rand, scratch *moveScratch) (gain float64, moves int) {
	n := net.NumNodes()
	w := net.totalWeight
	if n == 0 || w == 0 {
		return 0, 0
	}

	for {
		passMoves := 0
		rng.Shuffle(n, func(a, b int) {
			scratch.order[a], scratch.order[b] = scratch.order[b], scratch.order[a]
		})

		for _, i := range scratch.order {
			from := clus.nodeCluster[i]
			ki := net.nodes[i].totalWeight
			si := net.nodes[i].selfWeight

			// 1) Accumulate kin per distinct neighboring cluster, tracking
			//    first-seen order. Stored weights are strictly positive
			//    (zeros are dropped at build time), so kin[c] == 0 marks
			//    an unseen cluster.
			scratch.seen = scratch.seen[:0]
			for _, e := range net.Edges(i) {
				c := clus.nodeCluster[e.Target]
				if scratch.kin[c] == 0 {
					scratch.seen = append(scratch.seen, c)
				}
				scratch.kin[c] += e.Weight
			}

			// 2) Baseline: the node's standing in `from` with itself removed.
			base := scratch.kin[from] - (clus.clusters[from].WTot-ki)*ki/w

			// 3) Scan candidates in first-seen order; strict improvement only.
			best := from
			bestGain := 0.0
			for _, c := range scratch.seen {
				if c == from {
					continue // staying carries gain 0 by definition
				}
				g := 2 * (scratch.kin[c] - clus.clusters[c].WTot*ki/w - base) / w
				if g > bestGain {
					bestGain = g
					best = c
				}
			}

			// 4) Apply the move, keeping both touched aggregates exact. An
			//    emptied cluster retains its zero-weight entry.
			if best != from {
				clus.clusters[from].WIn -= 2*scratch.kin[from] + si
				clus.clusters[from].WTot -= ki
				clus.clusters[best].WIn += 2*scratch.kin[best] + si
				clus.clusters[best].WTot += ki
				clus.nodeCluster[i] = best
				gain += bestGain
				passMoves++
			}

			// 5) Reset scratch by walking the seen list (not the full array).
			for _, c := range scratch.seen {
				scratch.kin[c] = 0
			}
		}

		moves += passMoves
		if passMoves == 0 {
			return gain, moves
		}
	}
}

// Optimize runs the local-move optimizer over a caller-owned Clustering
// for one level, without coarsening. It allocates fresh scratch buffers
// and a seeded rng per call, so concurrent calls on distinct Clusterings
// are safe as long as each Clustering is exclusively owned.
//
// Returns the accumulated modularity gain and the number of accepted
// moves. Running Optimize again on an already-stable Clustering accepts
// zero moves and leaves the modularity unchanged.
func Optimize(clus *Clustering, opts ...Option) (gain float64, moves int) {
	cfg := resolveOptions(opts)
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	return localMove(clus.net, clus, rng, newMoveScratch(clus.net.NumNodes()))
}
