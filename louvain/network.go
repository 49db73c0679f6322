// network.go — the immutable adjacency representation, one per level.
//
// A Network is built once from a symmetric sparse matrix and never mutated
// afterwards; it may be shared read-concurrently by any number of
// optimization runs. Nodes reference a contiguous range of a shared edge
// arena — index-based references only, no pointers between records.

package louvain

import (
	"fmt"

	"github.com/rseurinc/severo/sparse"
)

// Edge is a weighted half-edge: one endpoint's view of an undirected edge.
// Owned by the Network's edge arena; never mutated after construction.
type Edge struct {
	Target int     // index of the neighboring node
	Weight float64 // non-negative edge weight
}

// node carries the per-node aggregates and the half-open range
// [edgeLo, edgeHi) of the node's edges within the arena.
type node struct {
	selfWeight  float64
	totalWeight float64
	edgeLo      int
	edgeHi      int
}

// Network is an immutable weighted adjacency over n nodes. Every
// undirected edge is stored twice, once per endpoint, so that
// totalWeight == Σ node.totalWeight holds with the doubled accounting
// convention the gain formulas rely on.
type Network struct {
	nodes       []node
	edges       []Edge
	totalWeight float64
}

// NewNetwork builds a Network from a symmetric sparse adjacency matrix.
//
// Per column i, every stored entry (j, w) contributes w to node i's total
// weight; off-diagonal entries additionally become edges i→j. A diagonal
// entry contributes to the total weight only, unless WithSelfLoops() is
// given, in which case it is also recorded as the node's self-weight.
//
// Returns ErrNilMatrix for a nil matrix and ErrNonSquare when rows != cols.
// Complexity: O(n + nnz) time and space.
func NewNetwork(m *sparse.Matrix, opts ...Option) (*Network, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	cfg := resolveOptions(opts)

	rows, cols := m.Dims()
	if rows != cols {
		return nil, fmt.Errorf("NewNetwork: %dx%d: %w", rows, cols, ErrNonSquare)
	}

	net := &Network{
		nodes: make([]node, cols),
		edges: make([]Edge, 0, m.NNZ()),
	}
	for i := 0; i < cols; i++ {
		nd := &net.nodes[i]
		nd.edgeLo = len(net.edges)
		targets, weights := m.Column(i)
		for k, j := range targets {
			w := weights[k]
			nd.totalWeight += w
			if j == i {
				if cfg.SelfLoops {
					nd.selfWeight += w
				}

				continue // diagonal entries are not edges
			}
			net.edges = append(net.edges, Edge{Target: j, Weight: w})
		}
		nd.edgeHi = len(net.edges)
		net.totalWeight += nd.totalWeight
	}

	return net, nil
}

// NumNodes returns the number of nodes.
func (net *Network) NumNodes() int { return len(net.nodes) }

// NumEdges returns the number of stored half-edges (an undirected edge
// counts twice).
func (net *Network) NumEdges() int { return len(net.edges) }

// TotalWeight returns the doubled total weight W of the network: every
// edge is counted from both endpoints, plus any self-loop weight.
func (net *Network) TotalWeight() float64 { return net.totalWeight }

// NodeWeight returns node i's total incident weight (its k_i).
func (net *Network) NodeWeight(i int) float64 { return net.nodes[i].totalWeight }

// SelfWeight returns node i's self-loop weight (zero unless the network
// was built with WithSelfLoops and the matrix had a diagonal entry).
func (net *Network) SelfWeight(i int) float64 { return net.nodes[i].selfWeight }

// Edges returns node i's half-edges as a sub-slice of the shared arena;
// callers must treat it as read-only.
func (net *Network) Edges(i int) []Edge {
	nd := &net.nodes[i]

	return net.edges[nd.edgeLo:nd.edgeHi]
}
