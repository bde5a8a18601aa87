package netenv

import "sort"

// RouteDemands recomputes per-link usage from scratch for the given
// open/closed link state and demand matrix.
//
// A restricted adjacency list is built over the open links only. One
// breadth-first search per source node yields hop-count shortest paths
// to every reachable destination; neighbors are visited in ascending
// node-id order, so tie-breaking between equal-length paths is
// deterministic. Each positive demand is routed unsplit along its path,
// adding the full demand value to every link on it. A demand between
// disconnected nodes contributes nothing; it is dropped, not queued or
// partially rerouted.
//
// The call is stateless: usage is always rebuilt from an all-zero
// vector, never incrementally adjusted.
func RouteDemands(topo *Topology, open []bool, demand DemandMatrix) []float64 {
	usage := make([]float64, topo.NumLinks())
	adj := openAdjacency(topo, open)
	parent := make([]int, topo.NumNodes)

	for src := 0; src < topo.NumNodes; src++ {
		bfsTree(adj, src, parent)
		for dst := 0; dst < topo.NumNodes; dst++ {
			if dst == src || demand[src][dst] <= 0 || parent[dst] < 0 {
				continue
			}
			// Walk the shortest-path tree back from dst, charging
			// the full demand to each hop.
			for v := dst; v != src; v = parent[v] {
				usage[topo.LinkIndex(parent[v], v)] += float64(demand[src][dst])
			}
		}
	}
	return usage
}

// openAdjacency builds per-node neighbor lists restricted to open
// links, sorted ascending so BFS visit order is fixed.
func openAdjacency(topo *Topology, open []bool) [][]int {
	adj := make([][]int, topo.NumNodes)
	for i, l := range topo.Links {
		if open[i] {
			adj[l.A] = append(adj[l.A], l.B)
			adj[l.B] = append(adj[l.B], l.A)
		}
	}
	for _, neighbors := range adj {
		sort.Ints(neighbors)
	}
	return adj
}

// bfsTree runs a breadth-first search from src, filling parent with
// each node's predecessor on a hop-count shortest path. parent[src] is
// src itself; unreachable nodes get -1.
func bfsTree(adj [][]int, src int, parent []int) {
	for i := range parent {
		parent[i] = -1
	}
	parent[src] = src
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if parent[v] < 0 {
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
}
