package main

import (
	"fmt"

	"github.com/lox/postflop/internal/report"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/sdk/runtime"
)

// ShowCmd renders strategies stored in a snapshot.
type ShowCmd struct {
	Snapshot string `arg:"" type:"existingfile" help:"snapshot file"`
	Line     string `help:"comma-separated actions and cards from the root, e.g. 'check, bet 67, Qh'"`
	Hands    bool   `help:"list every hand's mix"`
	Tree     bool   `help:"print the root street's decision tree instead of one node"`
	Depth    int    `help:"limit --tree to this many actions" default:"0"`
}

func (c *ShowCmd) Run(g *Globals) error {
	logger := setupLogger(g)

	p, err := runtime.Load(c.Snapshot)
	if err != nil {
		return err
	}
	s := p.Solver()
	logger.Debug().
		Str("run_id", s.RunID().String()).
		Int("iteration", s.Iteration()).
		Int("nodes", len(s.Tree().Nodes)).
		Msg("Snapshot loaded")

	if c.Tree {
		r := report.Build(s, report.Options{Depth: c.Depth})
		fmt.Fprintln(stdout, report.RenderSummary(r))
		fmt.Fprint(stdout, report.RenderTree(r))
		return nil
	}

	sp, err := p.Find(runtime.ParseLine(c.Line))
	if err != nil {
		return err
	}
	if sp.Kind != tree.NodeDecision {
		fmt.Fprintf(stdout, "%s node (pot %d, board %s)\n", sp.Kind, sp.Pot, sp.Board)
		return nil
	}
	node, err := report.SpotNode(p, sp, c.Hands)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, report.RenderNode(node))
	return nil
}
