// clustering.go — mutable partition state over a Network.
//
// A Clustering is exclusively owned by one optimization run; the Network
// it references stays read-only and may be shared across runs. Cluster
// ids are dense array indices into the clusters arena (index-based
// references only); a cluster emptied by moves keeps a zero-weight entry
// so ids remain stable within a level until renumber compacts them.

package louvain

import "fmt"

// Cluster aggregates one community's weights:
//
//	WIn  — internal weight: member self-loops plus twice the summed weight
//	       of intra-cluster edges (doubled accounting, matching Network).
//	WTot — total weight of all member nodes (WIn plus external incident).
type Cluster struct {
	WIn  float64
	WTot float64
}

// Clustering is a node→cluster assignment plus per-cluster aggregates,
// kept exact under every accepted move.
type Clustering struct {
	net         *Network
	nodeCluster []int
	clusters    []Cluster
}

// NewClustering returns the singleton partition of net: every node in its
// own cluster, WIn = self-weight, WTot = node total weight.
// Complexity: O(n).
func NewClustering(net *Network) *Clustering {
	n := net.NumNodes()
	c := &Clustering{
		net:         net,
		nodeCluster: make([]int, n),
		clusters:    make([]Cluster, n),
	}
	for i := 0; i < n; i++ {
		c.nodeCluster[i] = i
		c.clusters[i] = Cluster{WIn: net.nodes[i].selfWeight, WTot: net.nodes[i].totalWeight}
	}

	return c
}

// NewClusteringFromAssignment builds a Clustering for a known assignment,
// recomputing every cluster's aggregates with one scan over nodes and
// edges. Intended for ground-truth partitions (tests, external labels);
// the optimization hot path maintains aggregates incrementally instead.
//
// Returns ErrAssignmentLength when len(nodeCluster) != n and
// ErrClusterRange on a cluster id outside [0, n). Cluster ids are dense
// array indices bounded by the node count within a level; the optimizer's
// scratch buffers are sized on that invariant.
// Complexity: O(n + nnz).
func NewClusteringFromAssignment(net *Network, nodeCluster []int) (*Clustering, error) {
	n := net.NumNodes()
	if len(nodeCluster) != n {
		return nil, fmt.Errorf("NewClusteringFromAssignment: got %d entries for %d nodes: %w",
			len(nodeCluster), n, ErrAssignmentLength)
	}
	nClusters := 0
	for i, cid := range nodeCluster {
		if cid < 0 || cid >= n {
			return nil, fmt.Errorf("NewClusteringFromAssignment: node %d: id %d not in [0,%d): %w",
				i, cid, n, ErrClusterRange)
		}
		if cid+1 > nClusters {
			nClusters = cid + 1
		}
	}

	c := &Clustering{
		net:         net,
		nodeCluster: append([]int(nil), nodeCluster...),
		clusters:    make([]Cluster, nClusters),
	}
	for i := 0; i < n; i++ {
		cid := c.nodeCluster[i]
		c.clusters[cid].WTot += net.nodes[i].totalWeight
		c.clusters[cid].WIn += net.nodes[i].selfWeight
		for _, e := range net.Edges(i) {
			if c.nodeCluster[e.Target] == cid {
				// Both half-edges of an intra-cluster edge land here,
				// producing the doubled internal weight.
				c.clusters[cid].WIn += e.Weight
			}
		}
	}

	return c, nil
}

// NumNodes returns the number of nodes in the underlying network.
func (c *Clustering) NumNodes() int { return len(c.nodeCluster) }

// NumClusters returns the size of the clusters arena, including any
// zero-weight entries left behind by moves (renumber compacts those).
func (c *Clustering) NumClusters() int { return len(c.clusters) }

// ClusterOf returns node i's current cluster id.
func (c *Clustering) ClusterOf(i int) int { return c.nodeCluster[i] }

// Cluster returns a copy of cluster cid's aggregates.
func (c *Clustering) Cluster(cid int) Cluster { return c.clusters[cid] }

// Membership returns a copy of the node→cluster assignment (0-based ids).
func (c *Clustering) Membership() []int {
	return append([]int(nil), c.nodeCluster...)
}

// Labels returns the assignment as 1-based labels 1..k, the convention of
// the surrounding pipeline's output boundary.
func (c *Clustering) Labels() []int {
	out := make([]int, len(c.nodeCluster))
	for i, cid := range c.nodeCluster {
		out[i] = cid + 1
	}

	return out
}

// Modularity returns Q = Σ_c [WIn/W − (WTot/W)²].
//
// For an empty network or one with W == 0 (no edges, no self-loops) the
// objective is undefined; Modularity returns 0 so degenerate inputs never
// propagate NaN.
func (c *Clustering) Modularity() float64 {
	w := c.net.totalWeight
	if len(c.nodeCluster) == 0 || w == 0 {
		return 0
	}
	var q float64
	for _, cl := range c.clusters {
		frac := cl.WTot / w
		q += cl.WIn/w - frac*frac
	}

	return q
}

// renumber compacts cluster ids to the dense range 0..k−1 in order of
// first appearance when scanning nodes in index order, and truncates the
// clusters arena to the k surviving entries. Bijective on occupied ids;
// every aggregate and the modularity are preserved exactly.
// Returns k. Complexity: O(n + k).
func (c *Clustering) renumber() int {
	const unassigned = -1
	remap := make([]int, len(c.clusters))
	for i := range remap {
		remap[i] = unassigned
	}
	next := 0
	for i, cid := range c.nodeCluster {
		if remap[cid] == unassigned {
			remap[cid] = next
			next++
		}
		c.nodeCluster[i] = remap[cid]
	}

	compact := make([]Cluster, next)
	for old, nw := range remap {
		if nw != unassigned {
			compact[nw] = c.clusters[old]
		}
	}
	c.clusters = compact

	return next
}

// mergeClusterings composes two adjacent levels: for every node of the
// fine level, its merged cluster is the coarse cluster of its fine
// cluster. The merged aggregates are exactly the coarse aggregates, since
// coarsening preserves all weights. fine is left untouched; the result
// references fine's network.
// Complexity: O(n + k).
func mergeClusterings(fine, coarse *Clustering) *Clustering {
	merged := &Clustering{
		net:         fine.net,
		nodeCluster: make([]int, len(fine.nodeCluster)),
		clusters:    append([]Cluster(nil), coarse.clusters...),
	}
	for i, cid := range fine.nodeCluster {
		merged.nodeCluster[i] = coarse.nodeCluster[cid]
	}

	return merged
}
