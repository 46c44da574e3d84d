package main

import (
	"fmt"

	"github.com/lox/postflop/internal/icm"
)

// ICMCmd prints the prize equity of two players before and after a pot.
type ICMCmd struct {
	Stacks  []int `arg:"" help:"the two players' stacks"`
	Payouts []int `required:"" help:"prizes from first place down"`
	Others  []int `help:"stacks of every other player at the table or in the tournament"`
	Pot     int   `help:"also show equity after each player wins a pot of this many chips from the other"`
	Samples int   `help:"Monte Carlo samples for large fields (0 uses the default)"`
}

func (c *ICMCmd) Run(g *Globals) error {
	if len(c.Stacks) != 2 {
		return fmt.Errorf("need exactly two stacks, got %d", len(c.Stacks))
	}
	a, b := c.Stacks[0], c.Stacks[1]
	if a <= 0 || b <= 0 {
		return fmt.Errorf("stacks must be positive")
	}
	if c.Pot < 0 || c.Pot > min(a, b) {
		return fmt.Errorf("pot must be between 0 and the shorter stack")
	}

	calc := icm.New(c.Others, c.Payouts)
	if c.Samples > 0 {
		calc.Samples = c.Samples
	}
	ea, eb := calc.Calculate(a, b)
	fmt.Fprintf(stdout, "players %d, prize pool %d\n", calc.Players(), sum(c.Payouts))
	fmt.Fprintf(stdout, "%-8s %10s %12s\n", "", "stack", "equity")
	fmt.Fprintf(stdout, "%-8s %10d %12.4f\n", "oop", a, ea)
	fmt.Fprintf(stdout, "%-8s %10d %12.4f\n", "ip", b, eb)

	if c.Pot > 0 {
		winA, loseB := calc.Calculate(a+c.Pot, b-c.Pot)
		loseA, winB := calc.Calculate(a-c.Pot, b+c.Pot)
		fmt.Fprintf(stdout, "pot %d: oop %+.4f/%+.4f, ip %+.4f/%+.4f (win/lose)\n",
			c.Pot, winA-ea, loseA-ea, winB-eb, loseB-eb)
	}
	return nil
}

func sum(vs []int) int {
	var total int
	for _, v := range vs {
		total += v
	}
	return total
}
