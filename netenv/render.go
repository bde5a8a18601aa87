package netenv

import (
	"fmt"
	"io"
)

// Render writes a human-readable dump of the current per-link state
// (open flag, usage, capacity) to w. It reads the environment's state
// without changing it; safe to call before the first Reset.
func (e *NetworkEnv) Render(w io.Writer) {
	fmt.Fprintf(w, "Current step: %d\n", e.step)
	fmt.Fprintln(w, "Link usage / capacity (open=1/closed=0):")
	for i, l := range e.topo.Links {
		open := 0
		if i < len(e.linkOpen) && e.linkOpen[i] {
			open = 1
		}
		var usage float64
		if i < len(e.usage) {
			usage = e.usage[i]
		}
		fmt.Fprintf(w, "Edge %d-%d | Open=%d | Usage=%.2f / %g\n", l.A, l.B, open, usage, l.Capacity)
	}
}
