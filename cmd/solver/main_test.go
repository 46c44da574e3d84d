package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postflop/internal/config"
	"github.com/lox/postflop/internal/report"
	"github.com/lox/postflop/internal/snapshot"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

var quiet = &Globals{LogFormat: "json"}

func riverSolve(dir string) *SolveCmd {
	return &SolveCmd{
		Board:      "Kh 9s 4c 7d 3s",
		Pot:        100,
		Stack:      100,
		OOP:        "AA,33",
		IP:         "22,KQ",
		Iterations: 30,
		Threads:    1,
		Out:        filepath.Join(dir, "river.pfs"),
		Report:     filepath.Join(dir, "river.toml"),
	}
}

func TestSolveShowExport(t *testing.T) {
	dir := t.TempDir()
	out := capture(t)

	cmd := riverSolve(dir)
	require.NoError(t, cmd.Run(quiet))
	assert.Contains(t, out.String(), "RIVER")

	st, err := snapshot.Load(cmd.Out)
	require.NoError(t, err)
	assert.Equal(t, 30, st.Meta.Iteration)

	data, err := os.ReadFile(cmd.Report)
	require.NoError(t, err)
	r, err := report.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 30, r.Solve.Iterations)
	assert.NotEmpty(t, r.Players[0].Hands)

	out.Reset()
	require.NoError(t, (&ShowCmd{Snapshot: cmd.Out, Line: "check", Hands: true}).Run(quiet))
	assert.Contains(t, out.String(), "ip to act after check")
	assert.Contains(t, out.String(), "reach")

	out.Reset()
	require.NoError(t, (&ShowCmd{Snapshot: cmd.Out, Line: "all-in, fold"}).Run(quiet))
	assert.Contains(t, out.String(), "fold node")

	out.Reset()
	require.NoError(t, (&ShowCmd{Snapshot: cmd.Out, Tree: true}).Run(quiet))
	assert.Contains(t, out.String(), "#0")

	assert.Error(t, (&ShowCmd{Snapshot: cmd.Out, Line: "bet 3"}).Run(quiet))

	out.Reset()
	require.NoError(t, (&ExportCmd{Snapshot: cmd.Out, Hands: true}).Run(quiet))
	exported, err := report.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, r.Nodes, exported.Nodes)
}

func TestSolveResume(t *testing.T) {
	dir := t.TempDir()
	capture(t)

	first := riverSolve(dir)
	first.Report = ""
	require.NoError(t, first.Run(quiet))
	before, err := snapshot.Load(first.Out)
	require.NoError(t, err)

	second := riverSolve(dir)
	second.Report = ""
	second.Iterations = 50
	second.Resume = first.Out
	second.Out = filepath.Join(dir, "resumed.pfs")
	require.NoError(t, second.Run(quiet))

	after, err := snapshot.Load(second.Out)
	require.NoError(t, err)
	assert.Equal(t, 50, after.Meta.Iteration)
	assert.Equal(t, before.Meta.RunID, after.Meta.RunID)

	other := riverSolve(dir)
	other.Report = ""
	other.OOP = "KK"
	other.Resume = first.Out
	assert.Error(t, other.Run(quiet), "a snapshot of another spot cannot be resumed")

	reweighted := riverSolve(dir)
	reweighted.Report = ""
	reweighted.OOP = "AA:0.5,33"
	reweighted.Resume = first.Out
	assert.ErrorIs(t, reweighted.Run(quiet), solver.ErrTreeMismatch)
}

func TestCheckpointsFollowIterations(t *testing.T) {
	job := config.New(config.SpotConfig{Board: "Kh 9s 4c 7d 3s", Pot: 100, Stack: 100, OOP: "AA", IP: "22"})
	tr, err := job.Build(tree.BuildOptions{})
	require.NoError(t, err)

	var saved []int
	var s *solver.Solver
	cp := &checkpointer{every: 3, save: func() error {
		saved = append(saved, s.Iteration())
		return nil
	}}
	s, err = solver.New(tr, solver.Config{MaxIterations: 10, Threads: 1, Schedule: solver.DefaultSchedule()},
		solver.WithIterationHook(cp.iteration))
	require.NoError(t, err)

	_, err = s.Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9}, saved, "checkpoints do not wait for exploitability measurements")
	assert.NoError(t, cp.err)

	failing := &checkpointer{every: 1, save: func() error { return assert.AnError }}
	failing.iteration(1)
	failing.iteration(2)
	assert.ErrorIs(t, failing.err, assert.AnError)
	assert.Equal(t, 2, failing.last)
}

func TestSolveFromJobFile(t *testing.T) {
	dir := t.TempDir()
	capture(t)
	job := filepath.Join(dir, "job.hcl")
	out := filepath.Join(dir, "job.pfs")
	src := `
spot {
  board = "Kh 9s 4c 7d 3s"
  pot   = 100
  stack = 100
  oop   = "AA"
  ip    = "22"
}

solver {
  iterations = 10
  threads    = 1
}

output {
  path     = "` + out + `"
  compress = false
}
`
	require.NoError(t, os.WriteFile(job, []byte(src), 0o644))

	cmd := &SolveCmd{Job: job, Iterations: 5}
	require.NoError(t, cmd.Run(quiet))
	st, err := snapshot.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Meta.Iteration, "flags override the file")
}

func TestSolveRejectsIncompleteSpot(t *testing.T) {
	capture(t)
	err := (&SolveCmd{Board: "Kh 9s 4c"}).Run(quiet)
	assert.ErrorIs(t, err, config.ErrInvalidJob)
}

func TestICM(t *testing.T) {
	out := capture(t)
	require.NoError(t, (&ICMCmd{Stacks: []int{1000, 1000}, Payouts: []int{50, 30, 20}, Others: []int{1000}, Pot: 500}).Run(quiet))
	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "players 3, prize pool 100")
	assert.Contains(t, out.String(), "33.3333")
	assert.Contains(t, out.String(), "pot 500")

	assert.Error(t, (&ICMCmd{Stacks: []int{1000}, Payouts: []int{100}}).Run(quiet))
	assert.Error(t, (&ICMCmd{Stacks: []int{100, 50}, Payouts: []int{100}, Pot: 60}).Run(quiet))
}
