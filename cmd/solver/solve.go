package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/lox/postflop/internal/config"
	"github.com/lox/postflop/internal/report"
	"github.com/lox/postflop/internal/snapshot"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
)

// SolveCmd builds and solves a spot from a job file, flags, or both. Flags
// override the file.
type SolveCmd struct {
	Job string `arg:"" optional:"" type:"existingfile" help:"HCL job file"`

	Board string `help:"board cards, e.g. 'Kh 9s 4c'"`
	Pot   int    `help:"starting pot in chips"`
	Stack int    `help:"effective stack in chips"`
	OOP   string `name:"oop" help:"out-of-position range, e.g. 'AA,KQs:0.5,T9s-65s'"`
	IP    string `name:"ip" help:"in-position range"`

	Iterations  int           `help:"maximum iterations" env:"POSTFLOP_ITERATIONS"`
	Target      float64       `help:"stop at this exploitability, in percent of the pot"`
	Threads     int           `help:"worker threads (0 uses every CPU)" env:"POSTFLOP_THREADS"`
	Schedule    string        `help:"regret schedule: vanilla, cfr+, linear, dcfr or dcfr:alpha,beta,gamma"`
	MaxDuration time.Duration `help:"stop after this long"`
	Memory      int64         `help:"accumulator budget in MiB (0 is unbounded)" env:"POSTFLOP_MEMORY"`

	Out             string `short:"o" help:"snapshot path"`
	Report          string `help:"also write a TOML report here"`
	NoCompress      bool   `help:"write an uncompressed snapshot"`
	Resume          string `type:"existingfile" help:"continue from a snapshot of the same spot"`
	CheckpointEvery int    `help:"save a snapshot every N iterations (0 disables)" default:"0"`
	CPUProfile      string `help:"write CPU profile to file"`
}

func (c *SolveCmd) Run(g *Globals) error {
	logger := setupLogger(g)

	job, err := c.job()
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}
	solverCfg, err := job.SolverConfig()
	if err != nil {
		return err
	}

	if c.CPUProfile != "" {
		f, err := os.Create(c.CPUProfile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
		logger.Info().Str("path", c.CPUProfile).Msg("CPU profiling enabled")
	}

	opts := tree.BuildOptions{Logger: logger, Threads: solverCfg.Threads}
	if c.Memory > 0 {
		opts.Allocator = tree.NewBoundedAllocator(int(c.Memory << 20 / 4))
	}
	start := time.Now()
	t, err := job.Build(opts)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	stats := t.Stats()
	logger.Info().
		Str("board", job.Spot.Board).
		Int("nodes", stats.Nodes).
		Int("decisions", stats.Decisions).
		Int("iso_deals", stats.IsoDeals).
		Int64("accumulator_bytes", t.Arena.Bytes()).
		Dur("duration", time.Since(start)).
		Msg("Tree built")

	var s *solver.Solver
	out := job.Output.Path
	snapOpts := snapshot.Options{Compress: *job.Output.Compress}
	save := func() error {
		if err := snapshot.Save(out, snapshot.Capture(s), snapOpts); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		logger.Info().Str("path", out).Int("iteration", s.Iteration()).Msg("Snapshot saved")
		return nil
	}
	cp := &checkpointer{every: c.CheckpointEvery, save: save}

	s, err = solver.New(t, solverCfg, solver.WithLogger(logger), solver.WithIterationHook(cp.iteration))
	if err != nil {
		return err
	}
	if c.Resume != "" {
		st, err := snapshot.Load(c.Resume)
		if err != nil {
			return err
		}
		if err := s.Restore(st.Checkpoint()); err != nil {
			return fmt.Errorf("resume %s: %w", c.Resume, err)
		}
		logger.Info().Str("path", c.Resume).Int("iteration", s.Iteration()).Msg("Resumed from snapshot")
	}
	cp.last = s.Iteration()

	ctx, cancel := signalContext(logger)
	defer cancel()

	outcome, err := s.Solve(ctx, nil)
	if cp.err != nil {
		logger.Warn().Err(cp.err).Msg("Periodic checkpoint failed")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if serr := save(); serr != nil {
		return serr
	}
	if err != nil {
		return fmt.Errorf("solve interrupted at iteration %d: %w", outcome.Iterations, err)
	}

	logger.Info().
		Int("iterations", outcome.Iterations).
		Float64("exploitability", outcome.Exploitability).
		Float64("exploitability_pct", 100*outcome.Exploitability/t.Config.PotValue()).
		Str("reason", outcome.Reason.String()).
		Msg("Solve complete")

	r := report.Build(s, report.Options{Depth: 1})
	if job.Output.Report != "" {
		full := report.Build(s, report.Options{Hands: true})
		if err := report.Save(job.Output.Report, full); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		logger.Info().Str("path", job.Output.Report).Msg("Report saved")
	}
	fmt.Fprintln(stdout, report.RenderSummary(r))
	return nil
}

// job loads the job file, if any, and applies flag overrides.
func (c *SolveCmd) job() (*config.Job, error) {
	var job *config.Job
	if c.Job != "" {
		var err error
		if job, err = config.Load(c.Job); err != nil {
			return nil, err
		}
	} else {
		job = config.New(config.SpotConfig{})
	}

	if c.Board != "" {
		job.Spot.Board = c.Board
	}
	if c.Pot != 0 {
		job.Spot.Pot = c.Pot
	}
	if c.Stack != 0 {
		job.Spot.Stack = c.Stack
	}
	if c.OOP != "" {
		job.Spot.OOP = c.OOP
	}
	if c.IP != "" {
		job.Spot.IP = c.IP
	}
	if c.Iterations != 0 {
		job.Solver.Iterations = c.Iterations
	}
	if c.Target != 0 {
		job.Solver.TargetExploitability = c.Target
	}
	if c.Threads != 0 {
		job.Solver.Threads = c.Threads
	}
	if c.Schedule != "" {
		job.Solver.Schedule = c.Schedule
	}
	if c.MaxDuration != 0 {
		job.Solver.MaxDuration = c.MaxDuration.String()
	}
	if c.Out != "" {
		job.Output.Path = c.Out
	}
	if c.Report != "" {
		job.Output.Report = c.Report
	}
	if c.NoCompress {
		compress := false
		job.Output.Compress = &compress
	}

	if job.Spot.Board == "" || job.Spot.OOP == "" || job.Spot.IP == "" {
		return nil, fmt.Errorf("%w: board and both ranges are required", config.ErrInvalidJob)
	}
	return job, nil
}

// checkpointer saves a snapshot every n completed iterations.
type checkpointer struct {
	every int
	last  int
	save  func() error
	err   error
}

func (c *checkpointer) iteration(i int) {
	if c.every > 0 && i-c.last >= c.every {
		c.last = i
		c.err = errors.Join(c.err, c.save())
	}
}
