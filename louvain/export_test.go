package louvain

// White-box bridges for the external test package. Test-only surface;
// not part of the public API.

// ReduceNetworkForTest exposes reduceNetwork.
func ReduceNetworkForTest(clus *Clustering) *Network { return reduceNetwork(clus) }

// MergeForTest exposes mergeClusterings.
func MergeForTest(fine, coarse *Clustering) *Clustering { return mergeClusterings(fine, coarse) }

// RenumberForTest exposes Clustering.renumber, returning the compacted
// cluster count.
func RenumberForTest(clus *Clustering) int { return clus.renumber() }
