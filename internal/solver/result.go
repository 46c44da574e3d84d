package solver

import (
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
)

// Result summarises a solved tree.
type Result struct {
	RunID          string
	Iterations     int
	Exploitability float64
	EV             [2]float64
	BestResponse   [2]float64
}

// Result measures the average strategy profile.
func (s *Solver) Result() Result {
	br := s.BestResponse()
	ev := s.RootEV()
	return Result{
		RunID:          s.runID.String(),
		Iterations:     s.iteration,
		Exploitability: (br[0] - ev[0] + br[1] - ev[1]) / 2,
		EV:             ev,
		BestResponse:   br,
	}
}

// AverageStrategy returns the average strategy of a decision node indexed
// [action][hand], or nil for any other node.
func (s *Solver) AverageStrategy(node uint32) [][]float64 {
	return s.strategy(node, averageStrategy, false)
}

// CurrentStrategy returns the regret-matching strategy of a decision node
// indexed [action][hand], or nil for any other node.
func (s *Solver) CurrentStrategy(node uint32) [][]float64 {
	return s.strategy(node, currentStrategy, true)
}

func (s *Solver) strategy(node uint32, fn func([]float32, int, int) []float64, current bool) [][]float64 {
	if int(node) >= len(s.tree.Nodes) {
		return nil
	}
	n := &s.tree.Nodes[node]
	if n.Kind != tree.NodeDecision {
		return nil
	}
	actions, hands := int(n.NumEdges), s.tree.Hands(int(n.Player))
	regret, sum := s.tree.Region(node)
	src := sum
	if current {
		src = regret
	}
	flat := fn(src, actions, hands)
	out := make([][]float64, actions)
	for a := range out {
		out[a] = flat[a*hands : (a+1)*hands : (a+1)*hands]
	}
	return out
}

// HandEV returns player p's expected payoff per hand under the average
// strategies, conditional on holding that hand. Hands that cannot be dealt
// against any opponent hand get zero.
func (s *Solver) HandEV(p int) []float64 {
	values := s.values(p, modeAverage)
	mass := s.mass(p)
	for i := range values {
		if mass[i] > 0 {
			values[i] /= mass[i]
		} else {
			values[i] = 0
		}
	}
	return values
}

// HandEquity returns player p's all-in equity per hand against the
// opponent's full range, averaged over every runout of the root board. Ties
// count half.
func (s *Solver) HandEquity(p int) []float64 {
	root := s.tree.Config.Board
	deck := poker.NewDeck(root).Cards()
	need := 5 - root.CountCards()

	var runouts []poker.Hand
	switch need {
	case 0:
		runouts = []poker.Hand{0}
	case 1:
		for _, c := range deck {
			runouts = append(runouts, poker.NewHand(c))
		}
	case 2:
		for a := range deck {
			for b := a + 1; b < len(deck); b++ {
				runouts = append(runouts, poker.NewHand(deck[a], deck[b]))
			}
		}
	}

	hands := s.tree.Hands(p)
	partial := make([][]float64, len(runouts))
	s.pool.run(len(runouts), func(r int) {
		extra := runouts[r]
		opp := s.weights[1-p]
		for _, c := range extra.Cards() {
			opp = s.dealt(1-p, opp, c)
		}
		table := tree.NewShowdownTable(root|extra, s.tree.Ranges)
		out := make([]float64, hands)
		s.sweep(table, p, opp, [3]float64{1, 0, 0.5}, out)
		partial[r] = out
	})

	equity := make([]float64, hands)
	for _, v := range partial {
		for i, x := range v {
			equity[i] += x
		}
	}

	// Each compatible pair of hands meets every runout drawn from the cards
	// neither holds.
	pairs := float64(binomial(len(deck)-4, need))
	mass := s.mass(p)
	for i := range equity {
		if mass[i] > 0 {
			equity[i] /= pairs * mass[i]
		} else {
			equity[i] = 0
		}
	}
	return equity
}

// mass is the opponent range weight compatible with each of player p's hands
// at the root.
func (s *Solver) mass(p int) []float64 {
	out := make([]float64, s.tree.Hands(p))
	s.compatible(p, s.tree.Config.Board, s.weights[1-p], out)
	return out
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	out := 1
	for i := range k {
		out = out * (n - i) / (i + 1)
	}
	return out
}
