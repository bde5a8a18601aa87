package netenv

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableFrom counts the nodes reachable from node 0 over all links.
func reachableFrom(topo *Topology) int {
	open := make([]bool, topo.NumLinks())
	for i := range open {
		open[i] = true
	}
	adj := openAdjacency(topo, open)
	parent := make([]int, topo.NumNodes)
	bfsTree(adj, 0, parent)

	count := 0
	for _, p := range parent {
		if p >= 0 {
			count++
		}
	}
	return count
}

func TestGenerateTopology_RespectsInterfaceCap(t *testing.T) {
	tests := []struct {
		name          string
		numNodes      int
		maxInterfaces int
	}{
		{"default sizing", 6, 4},
		{"tight cap", 8, 2},
		{"generous cap", 5, 10},
		{"single node", 1, 4},
		{"two nodes", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			topo, err := GenerateTopology(tt.numNodes, tt.maxInterfaces, 100, rng)
			require.NoError(t, err)

			// The spanning path may push interior nodes to degree 2
			// even under a cap of 1; beyond that the cap must hold.
			limit := tt.maxInterfaces
			if limit < 2 {
				limit = 2
			}
			for node, deg := range topo.Degrees() {
				if deg > limit {
					t.Errorf("node %d has degree %d, cap %d", node, deg, tt.maxInterfaces)
				}
			}
		})
	}
}

func TestGenerateTopology_Connected(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		topo, err := GenerateTopology(10, 3, 100, rng)
		require.NoError(t, err)

		if got := reachableFrom(topo); got != 10 {
			t.Errorf("seed %d: only %d of 10 nodes reachable", seed, got)
		}
	}
}

func TestGenerateTopology_CanonicalLinks(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	topo, err := GenerateTopology(8, 4, 100, rng)
	require.NoError(t, err)

	seen := map[[2]int]bool{}
	for i, l := range topo.Links {
		assert.Less(t, l.A, l.B, "link %d not canonical", i)
		assert.Equal(t, 100.0, l.Capacity)
		assert.Equal(t, i, topo.LinkIndex(l.A, l.B))
		assert.Equal(t, i, topo.LinkIndex(l.B, l.A), "lookup must ignore endpoint order")

		key := [2]int{l.A, l.B}
		assert.False(t, seen[key], "duplicate link %v", key)
		seen[key] = true
	}
}

func TestGenerateTopology_DeterministicForSeed(t *testing.T) {
	build := func() *Topology {
		rng := rand.New(rand.NewSource(99))
		topo, err := GenerateTopology(7, 3, 50, rng)
		require.NoError(t, err)
		return topo
	}

	a, b := build(), build()
	require.Equal(t, a.NumLinks(), b.NumLinks())
	assert.Equal(t, a.Links, b.Links)
}

func TestGenerateTopology_InvalidParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := GenerateTopology(0, 4, 100, rng)
	assert.Error(t, err)

	_, err = GenerateTopology(-3, 4, 100, rng)
	assert.Error(t, err)

	_, err = GenerateTopology(6, 0, 100, rng)
	assert.Error(t, err)

	_, err = GenerateTopology(6, 4, -1, rng)
	assert.Error(t, err)
}

func TestNewTopology_BuildsFixedNetwork(t *testing.T) {
	topo, err := NewTopology(3, []Link{
		{A: 0, B: 1, Capacity: 10},
		{A: 2, B: 1, Capacity: 10}, // non-canonical input order
		{A: 0, B: 2, Capacity: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, topo.NumLinks())
	assert.Equal(t, Link{A: 1, B: 2, Capacity: 10}, topo.Links[1])
	assert.Equal(t, 1, topo.LinkIndex(2, 1))
	assert.Equal(t, -1, topo.LinkIndex(0, 0))
}

func TestNewTopology_RejectsBadLinks(t *testing.T) {
	_, err := NewTopology(3, []Link{{A: 0, B: 3, Capacity: 1}})
	assert.Error(t, err, "out-of-range endpoint")

	_, err = NewTopology(3, []Link{{A: 1, B: 1, Capacity: 1}})
	assert.Error(t, err, "self-loop")

	_, err = NewTopology(3, []Link{
		{A: 0, B: 1, Capacity: 1},
		{A: 1, B: 0, Capacity: 1},
	})
	assert.Error(t, err, "duplicate after canonicalization")
}
