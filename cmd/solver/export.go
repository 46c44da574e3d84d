package main

import (
	"github.com/lox/postflop/internal/report"
	"github.com/lox/postflop/sdk/runtime"
)

// ExportCmd writes a TOML report of a snapshot.
type ExportCmd struct {
	Snapshot string `arg:"" type:"existingfile" help:"snapshot file"`
	Out      string `short:"o" help:"report path (stdout when empty)"`
	Depth    int    `help:"limit reported nodes to this many actions from the root" default:"0"`
	Hands    bool   `help:"include per-hand values and strategies" default:"true" negatable:""`
	Equity   bool   `help:"include all-in equity per hand"`
}

func (c *ExportCmd) Run(g *Globals) error {
	logger := setupLogger(g)

	p, err := runtime.Load(c.Snapshot)
	if err != nil {
		return err
	}
	r := report.Build(p.Solver(), report.Options{Depth: c.Depth, Hands: c.Hands, Equity: c.Equity})
	if c.Out == "" {
		return report.Encode(stdout, r)
	}
	if err := report.Save(c.Out, r); err != nil {
		return err
	}
	logger.Info().Str("path", c.Out).Int("nodes", len(r.Nodes)).Msg("Report saved")
	return nil
}
