package solver

import (
	"math"

	"github.com/lox/postflop/internal/tree"
)

type mode uint8

const (
	// modeTrain follows current strategies and updates the traverser's
	// accumulators.
	modeTrain mode = iota
	// modeAverage evaluates both players' average strategies.
	modeAverage
	// modeBest plays a best response for the traverser against the
	// opponent's average strategy.
	modeBest
)

// pass is one traversal of the tree on behalf of player. Values returned by
// walk are counterfactual: hand i's value sums payoff times opponent reach
// over every opponent hand it can be dealt against.
type pass struct {
	s      *Solver
	mode   mode
	player int
	w      weights
}

func (ps *pass) walk(idx uint32, reach [2][]float64) []float64 {
	t := ps.s.tree
	n := &t.Nodes[idx]
	out := make([]float64, t.Hands(ps.player))

	switch n.Kind {
	case tree.NodeFold:
		ps.s.foldValues(n, ps.player, reach[1-ps.player], out)
	case tree.NodeShowdown:
		ps.s.showdownValues(n, ps.player, reach[1-ps.player], out)
	case tree.NodeChance:
		ps.chance(idx, n, reach, out)
	case tree.NodeDecision:
		ps.decision(idx, n, reach, out)
	}
	return out
}

func (ps *pass) chance(idx uint32, n *tree.Node, reach [2][]float64, out []float64) {
	t := ps.s.tree
	deals := t.NodeDeals(idx)

	canonical := make([]tree.Deal, 0, n.NumChildren)
	for _, d := range deals {
		if !d.Iso() {
			canonical = append(canonical, d)
		}
	}

	values := make([][]float64, n.NumChildren)
	ps.s.pool.run(len(canonical), func(k int) {
		d := canonical[k]
		next := [2][]float64{
			ps.s.dealt(0, reach[0], d.Card),
			ps.s.dealt(1, reach[1], d.Card),
		}
		values[d.Child-n.Children] = ps.walk(d.Child, next)
	})

	for _, d := range deals {
		v := values[d.Child-n.Children]
		if !d.Iso() {
			for i, x := range v {
				out[i] += x
			}
			continue
		}
		for i, j := range t.Swaps[d.Swap].Perm[ps.player] {
			if j >= 0 {
				out[i] += v[j]
			}
		}
	}

	// Every compatible pair of hands sees all but the four cards they hold.
	scale := 1 / float64(int(n.NumEdges)-4)
	for i := range out {
		out[i] *= scale
	}
}

func (ps *pass) decision(idx uint32, n *tree.Node, reach [2][]float64, out []float64) {
	t := ps.s.tree
	actor := int(n.Player)
	actions := int(n.NumEdges)
	hands := t.Hands(actor)
	regret, strategy := t.Region(idx)

	var sigma []float64
	switch {
	case ps.mode == modeTrain:
		sigma = currentStrategy(regret, actions, hands)
	case ps.mode == modeBest && actor == ps.player:
		// own reach is irrelevant to a best response
	default:
		sigma = averageStrategy(strategy, actions, hands)
	}

	values := make([][]float64, actions)
	ps.s.pool.run(actions, func(a int) {
		next := reach
		if sigma != nil {
			r := make([]float64, hands)
			row := sigma[a*hands : (a+1)*hands]
			for i, x := range reach[actor] {
				r[i] = x * row[i]
			}
			next[actor] = r
		}
		values[a] = ps.walk(n.Children+uint32(a), next)
	})

	if actor != ps.player {
		for _, v := range values {
			for i, x := range v {
				out[i] += x
			}
		}
		return
	}

	if ps.mode == modeBest {
		for i := range out {
			best := math.Inf(-1)
			for _, v := range values {
				best = max(best, v[i])
			}
			out[i] = best
		}
		return
	}

	for a, v := range values {
		row := sigma[a*hands : (a+1)*hands]
		for i, x := range v {
			out[i] += row[i] * x
		}
	}
	if ps.mode != modeTrain {
		return
	}

	own := reach[actor]
	for a, v := range values {
		base := a * hands
		for i, x := range v {
			k := base + i
			regret[k] = ps.w.regret(regret[k], x-out[i])
			strategy[k] = ps.w.strategySum(strategy[k], own[i]*sigma[k])
		}
	}
}

// currentStrategy is regret matching over a [action][hand] region: positive
// regret normalised per hand, uniform where no action has positive regret.
func currentStrategy(regret []float32, actions, hands int) []float64 {
	return normalise(regret, actions, hands, true)
}

// averageStrategy normalises the strategy sums of a region, uniform where
// a hand never reached the node.
func averageStrategy(sum []float32, actions, hands int) []float64 {
	return normalise(sum, actions, hands, false)
}

func normalise(src []float32, actions, hands int, positive bool) []float64 {
	out := make([]float64, actions*hands)
	uniform := 1 / float64(actions)
	for i := range hands {
		total := 0.0
		for a := range actions {
			v := float64(src[a*hands+i])
			if positive && v < 0 {
				v = 0
			}
			out[a*hands+i] = v
			total += v
		}
		for a := range actions {
			k := a*hands + i
			if total > 0 {
				out[k] /= total
			} else {
				out[k] = uniform
			}
		}
	}
	return out
}
