// Package netenv implements a synchronous link-failure environment for
// traffic-engineering experiments: a fixed random topology of
// capacity-limited links, a per-episode traffic demand matrix,
// hop-count rerouting over whichever links the controller leaves open,
// and the number of overloaded links fed back as negative reward.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - topology.go: random connected topology under a per-node interface cap
//   - traffic.go: per-episode demand matrix generation
//   - routing.go: BFS hop-count routing and per-link usage aggregation
//   - env.go: the Reset/Step state machine tying it together
//
// Everything runs to completion on the caller's goroutine. The only
// state carried across calls beyond what NetworkEnv owns directly is
// its seeded RNG (rng.go); nothing touches the process-wide generator,
// so concurrent environment instances stay independent and
// reproducible.
package netenv
