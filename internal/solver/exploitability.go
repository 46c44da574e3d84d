package solver

import "github.com/lox/postflop/internal/tree"

// Exploitability measures how far the average strategy profile is from
// equilibrium: the mean gain, over both players, of switching to a best
// response. EV is subtracted per player so non zero-sum payoffs such as ICM
// are measured correctly.
func (s *Solver) Exploitability() float64 {
	br := s.BestResponse()
	ev := s.RootEV()
	return (br[0] - ev[0] + br[1] - ev[1]) / 2
}

// BestResponse returns each player's expected payoff when best responding to
// the other's average strategy.
func (s *Solver) BestResponse() [2]float64 {
	var out [2]float64
	for p := range 2 {
		out[p] = s.expected(p, s.values(p, modeBest))
	}
	return out
}

// RootEV returns each player's expected payoff when both follow their average
// strategies.
func (s *Solver) RootEV() [2]float64 {
	var out [2]float64
	for p := range 2 {
		out[p] = s.expected(p, s.values(p, modeAverage))
	}
	return out
}

func (s *Solver) values(p int, m mode) []float64 {
	ps := &pass{s: s, mode: m, player: p}
	return ps.walk(tree.Root, s.rootReach())
}

// expected weights counterfactual root values by player p's range and
// normalises by the joint deal mass.
func (s *Solver) expected(p int, values []float64) float64 {
	total := 0.0
	for i, v := range values {
		total += s.weights[p][i] * v
	}
	return total / s.tree.Ranges.PairNorm
}
