package tree

import "github.com/lox/postflop/internal/icm"

// payoffModel turns the chips committed at a terminal into utilities.
type payoffModel interface {
	payoff(contrib [2]int) Payoff
}

// chipModel measures utility in chips won or lost relative to the start of
// the subgame. The starting pot counts as contributed half by each player.
type chipModel struct {
	pot int
}

func (m chipModel) payoff(c [2]int) Payoff {
	half := float64(m.pot) / 2
	var out Payoff
	for p := range 2 {
		q := 1 - p
		out.Win[p] = half + float64(c[q])
		out.Lose[p] = -(half + float64(c[p]))
		out.Tie[p] = float64(c[q]-c[p]) / 2
	}
	return out
}

// icmModel measures utility as the change in tournament equity.
type icmModel struct {
	calc  *icm.Calculator
	pot   int
	stack int
	pre   [2]int
	base  [2]float64
}

func newICMModel(cfg Config) *icmModel {
	m := &icmModel{
		calc:  icm.New(cfg.ICM.OtherStacks, cfg.ICM.Payouts),
		pot:   cfg.Pot,
		stack: cfg.Stack,
		pre:   [2]int{cfg.Pot / 2, cfg.Pot - cfg.Pot/2},
	}
	m.base[0], m.base[1] = m.calc.Calculate(m.stack+m.pre[0], m.stack+m.pre[1])
	return m
}

func (m *icmModel) payoff(c [2]int) Payoff {
	total := m.pot + c[0] + c[1]
	left := [2]int{m.stack - c[0], m.stack - c[1]}

	var out Payoff
	for w := range 2 {
		l := 1 - w
		final := left
		final[w] += total
		e := m.equity(final)
		out.Win[w] = e[w]
		out.Lose[l] = e[l]
	}
	split := left
	split[0] += total / 2
	split[1] += total - total/2
	out.Tie = m.equity(split)
	return out
}

func (m *icmModel) equity(final [2]int) [2]float64 {
	a, b := m.calc.Calculate(final[0], final[1])
	return [2]float64{a - m.base[0], b - m.base[1]}
}

// PotValue returns the starting pot in payoff units. In chips that is the
// pot itself. Under ICM it is the prize equity player 0 gains by winning the
// pot uncontested rather than losing it.
func (c Config) PotValue() float64 {
	if c.ICM == nil {
		return float64(c.Pot)
	}
	m := newICMModel(c)
	win := m.equity([2]int{c.Stack + c.Pot, c.Stack})
	lose := m.equity([2]int{c.Stack, c.Stack + c.Pot})
	return win[0] - lose[0]
}
