package cmd

import (
	"fmt"
	"math/rand"

	"github.com/andy9310/GreenNetwork/netenv"
)

// policyFunc maps the latest observation (and the previous action) to
// the next per-link open/closed decision.
type policyFunc func(obs netenv.Observation, prev netenv.Action) netenv.Action

// newPolicy returns one of the built-in demonstration policies.
//
//	all-open:          keep every link open forever
//	random:            open each link with probability 1/2
//	close-overloaded:  close any open link whose usage ratio exceeds 1
func newPolicy(name string, numLinks int, seed int64) (policyFunc, error) {
	switch name {
	case "all-open":
		return func(_ netenv.Observation, _ netenv.Action) netenv.Action {
			action := make(netenv.Action, numLinks)
			for i := range action {
				action[i] = true
			}
			return action
		}, nil

	case "random":
		// The environment derives its subsystem streams by hashing, so
		// reusing the master seed here cannot collide with them.
		rng := rand.New(rand.NewSource(seed))
		return func(_ netenv.Observation, _ netenv.Action) netenv.Action {
			action := make(netenv.Action, numLinks)
			for i := range action {
				action[i] = rng.Intn(2) == 1
			}
			return action
		}, nil

	case "close-overloaded":
		return func(obs netenv.Observation, _ netenv.Action) netenv.Action {
			action := make(netenv.Action, numLinks)
			for i := 0; i < numLinks; i++ {
				open := obs[2*i+1] > 0
				overloaded := obs[2*i] > 1
				action[i] = open && !overloaded
			}
			return action
		}, nil

	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
