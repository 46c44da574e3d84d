// Package config loads solve jobs from HCL files.
//
// A job names the spot (board, pot, stack, ranges), the betting abstraction
// per street, solver limits, an optional ICM payout structure and where to
// write the result:
//
//	spot {
//	  board = "Kh 9s 4c"
//	  pot   = 100
//	  stack = 200
//	  oop   = "AA,KK,QQ,AKs,T9s-65s"
//	  ip    = "JJ-22,AQs-ATs,KQs"
//	}
//
//	street "flop" {
//	  bet   = [0.33, 0.75]
//	  raise = [1.0]
//	}
//
//	solver {
//	  iterations            = 2000
//	  target_exploitability = 0.5 # percent of the starting pot
//	  schedule              = "dcfr"
//	  max_duration          = "10m"
//	}
//
//	output {
//	  path     = "kh9s4c.pfs"
//	  compress = true
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
	"github.com/lox/postflop/sdk/analysis"
)

// ErrInvalidJob means a job file decoded but describes an unusable solve.
var ErrInvalidJob = errors.New("invalid job")

// Job is a complete solve description.
type Job struct {
	Spot    SpotConfig     `hcl:"spot,block"`
	Streets []StreetConfig `hcl:"street,block"`
	Tree    *TreeConfig    `hcl:"tree,block"`
	Solver  *SolverConfig  `hcl:"solver,block"`
	ICM     *ICMConfig     `hcl:"icm,block"`
	Output  *OutputConfig  `hcl:"output,block"`
}

// SpotConfig is the situation being solved.
type SpotConfig struct {
	Board string `hcl:"board"`
	Pot   int    `hcl:"pot"`
	Stack int    `hcl:"stack"`
	OOP   string `hcl:"oop"`
	IP    string `hcl:"ip"`
}

// StreetConfig overrides the bet sizes of one street. Streets without a
// block use the default abstraction.
type StreetConfig struct {
	Name  string    `hcl:"name,label"`
	Bet   []float64 `hcl:"bet,optional"`
	Raise []float64 `hcl:"raise,optional"`
	AllIn *bool     `hcl:"all_in,optional"`
}

// TreeConfig holds the street-independent tree settings.
type TreeConfig struct {
	MaxRaises      *int     `hcl:"max_raises,optional"`
	AllInThreshold *float64 `hcl:"all_in_threshold,optional"`
	Isomorphism    *bool    `hcl:"isomorphism,optional"`
}

// SolverConfig holds iteration limits and the discount schedule.
type SolverConfig struct {
	Iterations int `hcl:"iterations,optional"`
	// TargetExploitability is a percentage of the starting pot.
	TargetExploitability float64 `hcl:"target_exploitability,optional"`
	ExploitabilityEvery  int     `hcl:"exploitability_every,optional"`
	Threads              int     `hcl:"threads,optional"`
	Schedule             string  `hcl:"schedule,optional"`
	MaxDuration          string  `hcl:"max_duration,optional"`
}

// ICMConfig switches payoffs to tournament equity.
type ICMConfig struct {
	Payouts     []int `hcl:"payouts"`
	OtherStacks []int `hcl:"other_stacks,optional"`
}

// OutputConfig says where results go.
type OutputConfig struct {
	Path     string `hcl:"path,optional"`
	Compress *bool  `hcl:"compress,optional"`
	Report   string `hcl:"report,optional"`
}

// Load reads and decodes a job file, applying defaults.
func Load(filename string) (*Job, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applying defaults. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Job, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var job Job
	diags = gohcl.DecodeBody(file.Body, nil, &job)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	job.applyDefaults()
	return &job, nil
}

// New returns a job for the given spot with every other setting defaulted.
func New(spot SpotConfig) *Job {
	job := &Job{Spot: spot}
	job.applyDefaults()
	return job
}

func (j *Job) applyDefaults() {
	if j.Tree == nil {
		j.Tree = &TreeConfig{}
	}
	if j.Solver == nil {
		j.Solver = &SolverConfig{}
	}
	if j.Output == nil {
		j.Output = &OutputConfig{}
	}

	defaults := solver.DefaultConfig()
	if j.Solver.Iterations == 0 {
		j.Solver.Iterations = defaults.MaxIterations
	}
	if j.Solver.ExploitabilityEvery == 0 {
		j.Solver.ExploitabilityEvery = defaults.ExploitabilityEvery
	}
	if j.Solver.Schedule == "" {
		j.Solver.Schedule = "discounted"
	}
	if j.Output.Path == "" {
		j.Output.Path = "solve.pfs"
	}
	if j.Output.Compress == nil {
		compress := true
		j.Output.Compress = &compress
	}
}

// Validate checks every field that can be checked without building the
// tree. Errors wrap ErrInvalidJob or the package error describing the
// problem.
func (j *Job) Validate() error {
	if _, err := j.Board(); err != nil {
		return err
	}
	if _, err := j.TreeConfig(); err != nil {
		return err
	}
	if _, err := j.SolverConfig(); err != nil {
		return err
	}
	for name, text := range map[string]string{"oop": j.Spot.OOP, "ip": j.Spot.IP} {
		if _, err := analysis.ParseInput(text); err != nil {
			return fmt.Errorf("%s range: %w", name, err)
		}
	}
	return nil
}

// Board parses the spot's board.
func (j *Job) Board() (poker.Hand, error) {
	cards, err := poker.ParseCards(j.Spot.Board)
	if err != nil {
		return 0, fmt.Errorf("board %q: %w", j.Spot.Board, err)
	}
	board, err := handrange.ValidateBoard(cards)
	if err != nil {
		return 0, fmt.Errorf("board %q: %w", j.Spot.Board, err)
	}
	return board, nil
}

// TreeConfig converts the job to a tree configuration.
func (j *Job) TreeConfig() (tree.Config, error) {
	board, err := j.Board()
	if err != nil {
		return tree.Config{}, err
	}
	cfg := tree.DefaultConfig(board, j.Spot.Pot, j.Spot.Stack)

	seen := map[tree.Street]bool{}
	for _, sc := range j.Streets {
		street, ok := parseStreet(sc.Name)
		if !ok {
			return tree.Config{}, fmt.Errorf("%w: unknown street %q", ErrInvalidJob, sc.Name)
		}
		if seen[street] {
			return tree.Config{}, fmt.Errorf("%w: street %q configured twice", ErrInvalidJob, sc.Name)
		}
		seen[street] = true

		sizes := &cfg.Streets[street]
		if sc.Bet != nil {
			sizes.Bet = sc.Bet
		}
		if sc.Raise != nil {
			sizes.Raise = sc.Raise
		}
		if sc.AllIn != nil {
			sizes.AllIn = *sc.AllIn
		}
	}

	if j.Tree != nil {
		if j.Tree.MaxRaises != nil {
			cfg.MaxRaises = *j.Tree.MaxRaises
		}
		if j.Tree.AllInThreshold != nil {
			cfg.AllInThreshold = *j.Tree.AllInThreshold
		}
		if j.Tree.Isomorphism != nil {
			cfg.Isomorphism = *j.Tree.Isomorphism
		}
	}
	if j.ICM != nil {
		cfg.ICM = &tree.ICMConfig{Payouts: j.ICM.Payouts, OtherStacks: j.ICM.OtherStacks}
	}

	if err := cfg.Validate(); err != nil {
		return tree.Config{}, err
	}
	return cfg, nil
}

// Ranges parses both ranges against the board.
func (j *Job) Ranges() (*handrange.Pair, error) {
	board, err := j.Board()
	if err != nil {
		return nil, err
	}
	oop, err := analysis.ParseInput(j.Spot.OOP)
	if err != nil {
		return nil, fmt.Errorf("oop range: %w", err)
	}
	ip, err := analysis.ParseInput(j.Spot.IP)
	if err != nil {
		return nil, fmt.Errorf("ip range: %w", err)
	}
	return handrange.NewPair(board, oop, ip)
}

// SolverConfig converts the job to solver settings. The exploitability
// target is converted from a percentage of the pot to payoff units: chips,
// or prize equity when the job uses ICM.
func (j *Job) SolverConfig() (solver.Config, error) {
	sc := j.Solver
	if sc == nil {
		sc = &SolverConfig{}
	}
	schedule, err := solver.ParseSchedule(sc.Schedule)
	if err != nil {
		return solver.Config{}, err
	}
	var budget time.Duration
	if sc.MaxDuration != "" {
		budget, err = time.ParseDuration(sc.MaxDuration)
		if err != nil {
			return solver.Config{}, fmt.Errorf("%w: max_duration: %v", ErrInvalidJob, err)
		}
	}
	var target float64
	if sc.TargetExploitability > 0 {
		tc, err := j.TreeConfig()
		if err != nil {
			return solver.Config{}, err
		}
		target = sc.TargetExploitability / 100 * tc.PotValue()
	}
	cfg := solver.Config{
		MaxIterations:        sc.Iterations,
		TargetExploitability: target,
		ExploitabilityEvery:  sc.ExploitabilityEvery,
		Threads:              sc.Threads,
		Schedule:             schedule,
		MaxDuration:          budget,
	}
	if err := cfg.Validate(); err != nil {
		return solver.Config{}, err
	}
	return cfg, nil
}

// Build parses the ranges and builds the tree.
func (j *Job) Build(opts tree.BuildOptions) (*tree.Tree, error) {
	cfg, err := j.TreeConfig()
	if err != nil {
		return nil, err
	}
	ranges, err := j.Ranges()
	if err != nil {
		return nil, err
	}
	return tree.Build(cfg, ranges, opts)
}

func parseStreet(name string) (tree.Street, bool) {
	for s := range tree.Street(tree.NumStreets) {
		if strings.EqualFold(name, s.String()) {
			return s, true
		}
	}
	return 0, false
}

