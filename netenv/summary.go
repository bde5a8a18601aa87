package netenv

import "gonum.org/v1/gonum/stat"

// EpisodeSummary aggregates the feedback signal over one episode.
type EpisodeSummary struct {
	Steps          int
	TotalReward    float64
	MeanReward     float64
	StdevReward    float64
	MeanOverloaded float64
	MaxOverloaded  int
}

// Summarize computes aggregate statistics from per-step results.
// Safe for empty input (returns zero-value fields).
func Summarize(results []StepResult) EpisodeSummary {
	s := EpisodeSummary{Steps: len(results)}
	if len(results) == 0 {
		return s
	}

	rewards := make([]float64, len(results))
	overloads := make([]float64, len(results))
	for i, r := range results {
		rewards[i] = r.Reward
		overloads[i] = float64(r.Info.OverloadedLinks)
		s.TotalReward += r.Reward
		if r.Info.OverloadedLinks > s.MaxOverloaded {
			s.MaxOverloaded = r.Info.OverloadedLinks
		}
	}

	s.MeanReward = stat.Mean(rewards, nil)
	s.MeanOverloaded = stat.Mean(overloads, nil)
	if len(results) > 1 {
		s.StdevReward = stat.StdDev(rewards, nil)
	}
	return s
}
