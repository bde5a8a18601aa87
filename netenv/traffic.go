package netenv

import "math/rand"

// maxDemandExclusive bounds every off-diagonal demand draw: entries lie
// in [0, maxDemandExclusive).
const maxDemandExclusive = 50

// DemandMatrix holds the traffic demand for every ordered node pair.
// Entry [i][j] is the volume requested from node i to node j; the
// diagonal is always zero.
type DemandMatrix [][]int

// GenerateDemands draws a fresh demand matrix for one episode.
// Off-diagonal entries are independent uniform draws; the rng stream
// continues across calls, so repeated resets yield different but, given
// a fixed initial seed, reproducible matrix sequences.
func GenerateDemands(numNodes int, rng *rand.Rand) DemandMatrix {
	m := make(DemandMatrix, numNodes)
	for i := range m {
		m[i] = make([]int, numNodes)
		for j := range m[i] {
			if i == j {
				continue
			}
			m[i][j] = rng.Intn(maxDemandExclusive)
		}
	}
	return m
}
