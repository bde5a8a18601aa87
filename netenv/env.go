package netenv

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Observation is the flat read-only view handed to the controller: for
// link i, position 2i holds usage[i]/capacity[i] (0 when capacity is 0)
// and position 2i+1 holds the open flag (1.0 open, 0.0 closed).
type Observation []float64

// Action is the controller's per-step decision: one flag per link, in
// the same fixed link order as the observation. true keeps the link
// open, false closes it.
type Action []bool

// StepInfo carries auxiliary per-step diagnostics.
type StepInfo struct {
	OverloadedLinks int
}

// StepResult bundles everything one Step hands back to the controller.
type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
	Info        StepInfo
}

// Environment is the decision-and-feedback contract: an episode starts
// with Reset and proceeds through repeated Steps. NetworkEnv implements
// it directly through composition; there is no framework base type.
type Environment interface {
	Reset() Observation
	Step(Action) (StepResult, error)
}

// InvalidActionError reports an action whose length does not match the
// environment's link count. Step returns it before mutating any state.
type InvalidActionError struct {
	Got  int
	Want int
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("action length %d does not match link count %d", e.Got, e.Want)
}

// NetworkEnv simulates a network of nodes joined by capacity-limited
// links. Each step the controller decides which links stay open, every
// positive demand is rerouted over the surviving topology by hop count,
// and the number of overloaded links comes back as negative reward.
//
// NetworkEnv exclusively owns the link state, usage vector, demand
// matrix, and step counter; the topology is fixed for the life of the
// instance and shared read-only. All methods are synchronous and run to
// completion on the caller's goroutine.
type NetworkEnv struct {
	cfg  Config
	rng  *PartitionedRNG
	topo *Topology

	demand   DemandMatrix
	linkOpen []bool
	usage    []float64
	step     int
}

var _ Environment = (*NetworkEnv)(nil)

// New constructs a NetworkEnv from cfg. The topology is generated once
// here and never changes afterwards. When cfg.Seed is nil a seed is
// taken from the wall clock; Seed reports the value in use either way.
func New(cfg Config) (*NetworkEnv, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment config: %w", err)
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := NewPartitionedRNG(seed)

	topo, err := GenerateTopology(cfg.NumNodes, cfg.MaxInterfaces, cfg.MaxCapacity, rng.ForSubsystem(SubsystemTopology))
	if err != nil {
		return nil, err
	}
	logrus.Debugf("generated topology: %d nodes, %d links, seed=%d", cfg.NumNodes, topo.NumLinks(), seed)

	return &NetworkEnv{cfg: cfg, rng: rng, topo: topo}, nil
}

// Reset starts a new episode: the step counter returns to zero, a fresh
// demand matrix is drawn from the continuing traffic stream, every link
// opens, and usage is recomputed from scratch. Returns the initial
// observation.
func (e *NetworkEnv) Reset() Observation {
	e.step = 0
	e.demand = GenerateDemands(e.cfg.NumNodes, e.rng.ForSubsystem(SubsystemTraffic))
	e.linkOpen = make([]bool, e.topo.NumLinks())
	for i := range e.linkOpen {
		e.linkOpen[i] = true
	}
	e.usage = RouteDemands(e.topo, e.linkOpen, e.demand)
	logrus.Debugf("episode reset: step counter 0, all %d links open", e.topo.NumLinks())
	return e.observation()
}

// Step replaces the whole link-state vector with action, reroutes every
// demand over the surviving topology, and scores the result. The action
// must carry exactly one flag per link; a wrong-length action is
// rejected before any state changes. Once the step counter reaches the
// horizon, Done latches true but further Steps keep executing normally,
// counter still incrementing.
func (e *NetworkEnv) Step(action Action) (StepResult, error) {
	if len(action) != e.topo.NumLinks() {
		return StepResult{}, &InvalidActionError{Got: len(action), Want: e.topo.NumLinks()}
	}
	if e.demand == nil {
		return StepResult{}, fmt.Errorf("Step called before Reset")
	}

	e.linkOpen = append([]bool(nil), action...)
	e.usage = RouteDemands(e.topo, e.linkOpen, e.demand)
	overloaded := CountOverloaded(e.topo, e.usage)
	e.step++

	return StepResult{
		Observation: e.observation(),
		Reward:      -float64(overloaded),
		Done:        e.step >= e.cfg.MaxSteps,
		Info:        StepInfo{OverloadedLinks: overloaded},
	}, nil
}

// observation assembles the per-link (usage ratio, open flag) pairs in
// fixed link order.
func (e *NetworkEnv) observation() Observation {
	obs := make(Observation, 0, 2*e.topo.NumLinks())
	for i, l := range e.topo.Links {
		ratio := 0.0
		if l.Capacity > 0 {
			ratio = e.usage[i] / l.Capacity
		}
		flag := 0.0
		if e.linkOpen[i] {
			flag = 1.0
		}
		obs = append(obs, ratio, flag)
	}
	return obs
}

// Topology returns the fixed topology shared read-only with callers.
func (e *NetworkEnv) Topology() *Topology {
	return e.topo
}

// Seed returns the master seed in use, whether configured or
// clock-derived, so any run can be reproduced.
func (e *NetworkEnv) Seed() int64 {
	return e.rng.Seed()
}

// ObservationLen returns the length of every observation vector:
// two values per link.
func (e *NetworkEnv) ObservationLen() int {
	return 2 * e.topo.NumLinks()
}

// ActionLen returns the required action length: one flag per link.
func (e *NetworkEnv) ActionLen() int {
	return e.topo.NumLinks()
}

// StepCount returns the number of Steps taken since the last Reset.
func (e *NetworkEnv) StepCount() int {
	return e.step
}

// Close releases nothing; the environment holds no external resources.
// Kept for lifecycle symmetry with Reset/Step drivers.
func (e *NetworkEnv) Close() error {
	return nil
}
