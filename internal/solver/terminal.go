package solver

import (
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
)

// compatible writes, for each hand of player p that is live on board, the
// opponent reach that can be dealt alongside it. Blocker sums per card
// remove overlapping opponent hands and the identical hand is added back
// once.
func (s *Solver) compatible(p int, board poker.Hand, opp, out []float64) {
	own := s.tree.Ranges.Players[p]
	oppSet := s.tree.Ranges.Players[1-p]
	same := s.tree.Ranges.Same[p]

	var total float64
	var cards [poker.NumCards]float64
	for j, r := range opp {
		if r == 0 {
			continue
		}
		total += r
		c := oppSet.Cards[j]
		cards[c[0]] += r
		cards[c[1]] += r
	}

	for i, h := range own.Hands {
		if h.Overlaps(board) {
			out[i] = 0
			continue
		}
		c := own.Cards[i]
		v := total - cards[c[0]] - cards[c[1]]
		if j := same[i]; j >= 0 {
			v += opp[j]
		}
		out[i] = v
	}
}

// foldValues evaluates a fold terminal for player p: the folder loses its
// contribution, the other player wins it.
func (s *Solver) foldValues(n *tree.Node, p int, opp, out []float64) {
	pay := s.tree.Payoffs[n.Payoff]
	u := pay.Win[p]
	if int(n.Player) == p {
		u = pay.Lose[p]
	}
	s.compatible(p, n.Board, opp, out)
	for i := range out {
		out[i] *= u
	}
}

// showdownValues evaluates a showdown terminal for player p.
func (s *Solver) showdownValues(n *tree.Node, p int, opp, out []float64) {
	pay := s.tree.Payoffs[n.Payoff]
	s.sweep(s.tree.Showdowns[n.Table], p, opp, [3]float64{pay.Win[p], pay.Lose[p], pay.Tie[p]}, out)
}

// sweep scores player p's hands on a complete board by walking both ranges
// in strength order. Opponent hands weaker than hand i are accumulated on
// the way up and stronger ones on the way down; ties are what remains of the
// compatible mass. pay holds the win, lose and tie utilities.
func (s *Solver) sweep(table *tree.ShowdownTable, p int, opp []float64, pay [3]float64, out []float64) {
	q := 1 - p
	own := s.tree.Ranges.Players[p]
	oppSet := s.tree.Ranges.Players[q]
	ownOrder, oppOrder := table.Order[p], table.Order[q]
	ownStrength, oppStrength := table.Strength[p], table.Strength[q]

	clear(out)
	if len(ownOrder) == 0 || len(oppOrder) == 0 {
		return
	}

	compat := make([]float64, len(out))
	s.compatible(p, table.Board, opp, compat)
	win := make([]float64, len(out))

	var sum float64
	var cards [poker.NumCards]float64
	k := 0
	for _, i := range ownOrder {
		for k < len(oppOrder) && oppStrength[oppOrder[k]] < ownStrength[i] {
			j := oppOrder[k]
			if r := opp[j]; r != 0 {
				c := oppSet.Cards[j]
				sum += r
				cards[c[0]] += r
				cards[c[1]] += r
			}
			k++
		}
		c := own.Cards[i]
		win[i] = sum - cards[c[0]] - cards[c[1]]
	}

	sum = 0
	cards = [poker.NumCards]float64{}
	k = len(oppOrder) - 1
	for x := len(ownOrder) - 1; x >= 0; x-- {
		i := ownOrder[x]
		for k >= 0 && oppStrength[oppOrder[k]] > ownStrength[i] {
			j := oppOrder[k]
			if r := opp[j]; r != 0 {
				c := oppSet.Cards[j]
				sum += r
				cards[c[0]] += r
				cards[c[1]] += r
			}
			k--
		}
		c := own.Cards[i]
		lose := sum - cards[c[0]] - cards[c[1]]
		tie := compat[i] - win[i] - lose
		out[i] = pay[0]*win[i] + pay[1]*lose + pay[2]*tie
	}
}
