// Package solver runs counterfactual regret minimisation over a post-flop game
// tree. Every traversal carries one reach probability per private hand, so a
// single pass updates all hands of the traversing player at once.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
)

// ErrTreeMismatch is returned when a checkpoint addresses a differently
// shaped tree.
var ErrTreeMismatch = errors.New("checkpoint tree does not match solver tree")

// StopReason explains why Solve returned.
type StopReason uint8

const (
	StopMaxIterations StopReason = iota
	StopTargetReached
	StopTimeBudget
	StopCancelled
)

func (r StopReason) String() string {
	switch r {
	case StopMaxIterations:
		return "max iterations"
	case StopTargetReached:
		return "target exploitability"
	case StopTimeBudget:
		return "time budget"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Progress is reported each time exploitability is measured.
type Progress struct {
	Iteration      int
	Exploitability float64
	Elapsed        time.Duration
}

// Outcome summarises a call to Solve.
type Outcome struct {
	Iterations     int
	Exploitability float64
	Elapsed        time.Duration
	Reason         StopReason
}

// Option customises a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for progress reporting.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// WithClock replaces the wall clock used for time budgets.
func WithClock(clock quartz.Clock) Option {
	return func(s *Solver) { s.clock = clock }
}

// WithIterationHook calls fn after every completed iteration of Solve,
// before any exploitability measurement for that iteration.
func WithIterationHook(fn func(iteration int)) Option {
	return func(s *Solver) { s.onIteration = fn }
}

// Solver owns a tree's accumulators for the duration of a solve. Methods are
// not safe for concurrent use; parallelism happens inside an iteration.
type Solver struct {
	tree   *tree.Tree
	cfg    Config
	logger zerolog.Logger
	clock  quartz.Clock
	pool   *pool

	onIteration func(iteration int)

	runID     uuid.UUID
	iteration int

	// blockers[p][c] lists player p's hands containing card c.
	blockers [2][poker.NumCards][]int32
	weights  [2][]float64
}

// New prepares a solver over t.
func New(t *tree.Tree, cfg Config, opts ...Option) (*Solver, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: tree is required", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		tree:   t,
		cfg:    cfg,
		logger: zerolog.Nop(),
		clock:  quartz.NewReal(),
		runID:  uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pool = newPool(cfg.threads())
	s.index()
	return s, nil
}

func (s *Solver) index() {
	for p, set := range s.tree.Ranges.Players {
		s.blockers[p] = [poker.NumCards][]int32{}
		for i, cards := range set.Cards {
			s.blockers[p][cards[0]] = append(s.blockers[p][cards[0]], int32(i))
			s.blockers[p][cards[1]] = append(s.blockers[p][cards[1]], int32(i))
		}
		s.weights[p] = append([]float64(nil), set.Weights...)
	}
}

// Tree returns the tree being solved.
func (s *Solver) Tree() *tree.Tree { return s.tree }

// Config returns the solve parameters.
func (s *Solver) Config() Config { return s.cfg }

// Iteration returns the number of completed iterations.
func (s *Solver) Iteration() int { return s.iteration }

// RunID identifies the solve across checkpoints.
func (s *Solver) RunID() uuid.UUID { return s.runID }

// Iterate runs one iteration: a training traversal for player 0 and then for
// player 1. The context is only consulted before the iteration starts.
func (s *Solver) Iterate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := s.iteration + 1
	w := s.cfg.Schedule.weightsFor(t)
	for p := range 2 {
		ps := &pass{s: s, mode: modeTrain, player: p, w: w}
		ps.walk(tree.Root, s.rootReach())
	}
	s.iteration = t
	return nil
}

// Solve iterates until the iteration cap, the target exploitability, the
// time budget or cancellation, whichever comes first. progress may be nil.
func (s *Solver) Solve(ctx context.Context, progress func(Progress)) (Outcome, error) {
	start := s.clock.Now()
	out := Outcome{Exploitability: -1}
	measured := -1

	s.logger.Info().
		Str("run_id", s.runID.String()).
		Str("schedule", s.cfg.Schedule.String()).
		Int("max_iterations", s.cfg.MaxIterations).
		Int("resume_iteration", s.iteration).
		Int("threads", s.cfg.threads()).
		Msg("Starting solve")

	for {
		if err := ctx.Err(); err != nil {
			out.Reason = StopCancelled
			out.Iterations = s.iteration
			out.Elapsed = s.clock.Since(start)
			return out, err
		}
		if s.iteration >= s.cfg.MaxIterations {
			out.Reason = StopMaxIterations
			break
		}
		if s.cfg.MaxDuration > 0 && s.clock.Since(start) >= s.cfg.MaxDuration {
			out.Reason = StopTimeBudget
			break
		}

		if err := s.Iterate(ctx); err != nil {
			return out, err
		}
		if s.onIteration != nil {
			s.onIteration(s.iteration)
		}

		if every := s.cfg.ExploitabilityEvery; every > 0 && s.iteration%every == 0 {
			out.Exploitability = s.Exploitability()
			measured = s.iteration
			elapsed := s.clock.Since(start)
			s.logger.Info().
				Int("iteration", s.iteration).
				Float64("exploitability", out.Exploitability).
				Dur("elapsed", elapsed).
				Msg("Solve progress")
			if progress != nil {
				progress(Progress{Iteration: s.iteration, Exploitability: out.Exploitability, Elapsed: elapsed})
			}
			if s.cfg.TargetExploitability > 0 && out.Exploitability <= s.cfg.TargetExploitability {
				out.Reason = StopTargetReached
				break
			}
		}
	}

	if measured != s.iteration {
		out.Exploitability = s.Exploitability()
	}
	out.Iterations = s.iteration
	out.Elapsed = s.clock.Since(start)
	s.logger.Info().
		Int("iterations", out.Iterations).
		Float64("exploitability", out.Exploitability).
		Dur("elapsed", out.Elapsed).
		Str("reason", out.Reason.String()).
		Msg("Solve finished")
	return out, nil
}

// Checkpoint is the resumable state of a solve.
type Checkpoint struct {
	Tree      *tree.Tree
	Iteration int
	RunID     uuid.UUID
	Schedule  Schedule
}

// Checkpoint captures the solver state. The tree, and with it the
// accumulator arena, is shared rather than copied.
func (s *Solver) Checkpoint() Checkpoint {
	return Checkpoint{
		Tree:      s.tree,
		Iteration: s.iteration,
		RunID:     s.runID,
		Schedule:  s.cfg.Schedule,
	}
}

// Restore replaces the solver state with cp. Nothing changes unless cp
// addresses a tree of the same shape.
func (s *Solver) Restore(cp Checkpoint) error {
	if cp.Tree == nil || cp.Tree.Arena == nil {
		return fmt.Errorf("%w: checkpoint has no tree", ErrTreeMismatch)
	}
	if cp.Iteration < 0 {
		return fmt.Errorf("%w: negative iteration %d", ErrInvalidConfig, cp.Iteration)
	}
	if got, want := cp.Tree.Fingerprint(), s.tree.Fingerprint(); got != want {
		return fmt.Errorf("%w: fingerprint %016x, want %016x", ErrTreeMismatch, got, want)
	}
	if cp.Schedule != s.cfg.Schedule {
		s.logger.Warn().
			Str("checkpoint", cp.Schedule.String()).
			Str("configured", s.cfg.Schedule.String()).
			Msg("Checkpoint was solved with a different schedule; continuing with the configured one")
	}
	s.tree = cp.Tree
	s.index()
	s.iteration = cp.Iteration
	if cp.RunID != uuid.Nil {
		s.runID = cp.RunID
	}
	return nil
}

// rootReach returns fresh copies of both players' range weights.
func (s *Solver) rootReach() [2][]float64 {
	return [2][]float64{
		append([]float64(nil), s.weights[0]...),
		append([]float64(nil), s.weights[1]...),
	}
}

// dealt returns reach with every hand holding c zeroed.
func (s *Solver) dealt(p int, reach []float64, c poker.Card) []float64 {
	out := append([]float64(nil), reach...)
	for _, i := range s.blockers[p][c.Index()] {
		out[i] = 0
	}
	return out
}
