package netenv

import (
	"fmt"
	"math/rand"
)

// Link is an undirected capacity-limited connection between two nodes.
// Endpoints are stored in canonical form (A < B). A link's position in
// Topology.Links is fixed at construction and never changes.
type Link struct {
	A        int
	B        int
	Capacity float64
}

// Topology is the node set plus the ordered link list of one
// environment instance. Immutable after GenerateTopology returns; all
// components share it read-only.
type Topology struct {
	NumNodes int
	Links    []Link
	index    map[[2]int]int // canonical (A,B) → position in Links
}

// GenerateTopology builds a random connected topology with at most
// maxInterfaces links per node. Every link gets the same capacity.
//
// Phase 1 shuffles the node identifiers and links consecutive nodes in
// the permutation: the spanning path guarantees connectivity no matter
// what the interface cap is. Phase 2 enumerates every remaining
// unordered pair, shuffles them, and adds a link only while both
// endpoints stay strictly below maxInterfaces. Worst case is a
// path-only topology.
func GenerateTopology(numNodes, maxInterfaces int, capacity float64, rng *rand.Rand) (*Topology, error) {
	if numNodes <= 0 {
		return nil, fmt.Errorf("numNodes must be positive, got %d", numNodes)
	}
	if maxInterfaces <= 0 {
		return nil, fmt.Errorf("maxInterfaces must be positive, got %d", maxInterfaces)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity must be non-negative, got %v", capacity)
	}

	topo := &Topology{
		NumNodes: numNodes,
		index:    make(map[[2]int]int),
	}
	degree := make([]int, numNodes)

	// Phase 1: spanning path over a random node permutation.
	perm := rng.Perm(numNodes)
	for i := 0; i+1 < len(perm); i++ {
		topo.addLink(perm[i], perm[i+1], capacity)
		degree[perm[i]]++
		degree[perm[i+1]]++
	}

	// Phase 2: extra links in shuffled pair order, under the cap.
	var pairs [][2]int
	for u := 0; u < numNodes; u++ {
		for v := u + 1; v < numNodes; v++ {
			if _, linked := topo.index[[2]int{u, v}]; !linked {
				pairs = append(pairs, [2]int{u, v})
			}
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	for _, p := range pairs {
		u, v := p[0], p[1]
		if degree[u] < maxInterfaces && degree[v] < maxInterfaces {
			topo.addLink(u, v, capacity)
			degree[u]++
			degree[v]++
		}
	}

	return topo, nil
}

// NewTopology builds a topology from an explicit link list, preserving
// the given order. Endpoints are canonicalized; out-of-range endpoints,
// self-loops, and duplicate links are rejected. Useful for fixed test
// networks and hand-built scenarios.
func NewTopology(numNodes int, links []Link) (*Topology, error) {
	if numNodes <= 0 {
		return nil, fmt.Errorf("numNodes must be positive, got %d", numNodes)
	}
	topo := &Topology{NumNodes: numNodes, index: make(map[[2]int]int)}
	for _, l := range links {
		u, v := l.A, l.B
		if u > v {
			u, v = v, u
		}
		if u < 0 || v >= numNodes || u == v {
			return nil, fmt.Errorf("invalid link endpoints (%d,%d)", l.A, l.B)
		}
		if _, dup := topo.index[[2]int{u, v}]; dup {
			return nil, fmt.Errorf("duplicate link (%d,%d)", u, v)
		}
		topo.addLink(u, v, l.Capacity)
	}
	return topo, nil
}

func (t *Topology) addLink(u, v int, capacity float64) {
	if u > v {
		u, v = v, u
	}
	t.index[[2]int{u, v}] = len(t.Links)
	t.Links = append(t.Links, Link{A: u, B: v, Capacity: capacity})
}

// NumLinks returns the number of links.
func (t *Topology) NumLinks() int { return len(t.Links) }

// LinkIndex returns the position of the link between u and v in the
// ordered link list, or -1 if no such link exists. Endpoint order does
// not matter.
func (t *Topology) LinkIndex(u, v int) int {
	if u > v {
		u, v = v, u
	}
	if i, ok := t.index[[2]int{u, v}]; ok {
		return i
	}
	return -1
}

// Degrees returns the per-node link counts.
func (t *Topology) Degrees() []int {
	deg := make([]int, t.NumNodes)
	for _, l := range t.Links {
		deg[l.A]++
		deg[l.B]++
	}
	return deg
}
