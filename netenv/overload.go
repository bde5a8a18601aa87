package netenv

// CountOverloaded returns the number of links whose usage strictly
// exceeds their capacity. Only the count is reported, not the magnitude
// of the overage, keeping the feedback signal simple and bounded.
func CountOverloaded(topo *Topology, usage []float64) int {
	overloaded := 0
	for i, l := range topo.Links {
		if usage[i] > l.Capacity {
			overloaded++
		}
	}
	return overloaded
}
