// aggregate.go — multi-level coarsening: each cluster of the previous
// level becomes one supernode of a reduced Network.

package louvain

// reduceNetwork builds the reduced Network of clus: one supernode per
// cluster id in the arena, including any zero-weight entries (those
// become isolated supernodes with no edges — valid, if unusual; the
// driver renumbers before reducing so they do not occur on its path).
//
// For each cluster, scanning all member nodes and their half-edges:
//   - member self-weights and intra-cluster half-edge weights accumulate
//     into the supernode's self-weight (the doubled convention carries
//     over, since both half-edges of an internal edge land in the scan);
//   - cross-cluster weight aggregates into a single edge per distinct
//     target cluster actually observed, in first-observed order.
//
// The result obeys the same invariants as NewNetwork's output and has
// exactly the same total weight, so the singleton clustering of the
// reduced network reproduces clus's modularity.
// Complexity: O(n + nnz) time, O(n) extra space.
func reduceNetwork(clus *Clustering) *Network {
	net := clus.net
	k := len(clus.clusters)

	// Counting-sorted cluster→members index: offsets then fill.
	counts := make([]int, k+1)
	for _, cid := range clus.nodeCluster {
		counts[cid+1]++
	}
	for c := 1; c <= k; c++ {
		counts[c] += counts[c-1]
	}
	members := make([]int, len(clus.nodeCluster))
	fill := make([]int, k)
	for i, cid := range clus.nodeCluster {
		members[counts[cid]+fill[cid]] = i
		fill[cid]++
	}

	reduced := &Network{nodes: make([]node, k)}
	cross := make([]float64, k)  // per-target accumulated cross weight
	touched := make([]int, 0, k) // distinct targets, first-observed order

	for c := 0; c < k; c++ {
		nd := &reduced.nodes[c]
		nd.edgeLo = len(reduced.edges)

		touched = touched[:0]
		for _, i := range members[counts[c]:counts[c+1]] {
			nd.selfWeight += net.nodes[i].selfWeight
			// Summing member totals (rather than self + cross) keeps the
			// total weight conserved even when diagonal entries were
			// counted into node totals without being recorded as
			// self-weight (the dormant self-loop path).
			nd.totalWeight += net.nodes[i].totalWeight
			for _, e := range net.Edges(i) {
				tc := clus.nodeCluster[e.Target]
				if tc == c {
					nd.selfWeight += e.Weight

					continue
				}
				if cross[tc] == 0 {
					touched = append(touched, tc)
				}
				cross[tc] += e.Weight
			}
		}

		for _, tc := range touched {
			reduced.edges = append(reduced.edges, Edge{Target: tc, Weight: cross[tc]})
			cross[tc] = 0
		}
		nd.edgeHi = len(reduced.edges)
		reduced.totalWeight += nd.totalWeight
	}

	return reduced
}
