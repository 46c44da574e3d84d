package solver

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfig is returned when solver parameters cannot be used.
var ErrInvalidConfig = errors.New("invalid solver config")

// ScheduleKind selects how regrets and strategy sums are weighted across
// iterations.
type ScheduleKind uint8

const (
	// Vanilla accumulates every iteration with weight one.
	Vanilla ScheduleKind = iota
	// RegretMatchingPlus clips cumulative regret at zero and averages
	// strategies linearly.
	RegretMatchingPlus
	// Linear weights both regrets and strategies by the iteration number.
	Linear
	// Discounted scales positive regrets, negative regrets and strategy sums
	// by the Alpha, Beta and Gamma discount each iteration.
	Discounted
)

func (k ScheduleKind) String() string {
	switch k {
	case Vanilla:
		return "vanilla"
	case RegretMatchingPlus:
		return "cfr+"
	case Linear:
		return "linear"
	case Discounted:
		return "discounted"
	default:
		return "unknown"
	}
}

// Schedule is the discount configuration of a solve.
type Schedule struct {
	Kind  ScheduleKind
	Alpha float64
	Beta  float64
	Gamma float64
}

// DefaultSchedule returns discounted CFR with the usual parameters.
func DefaultSchedule() Schedule {
	return Schedule{Kind: Discounted, Alpha: 1.5, Beta: 0, Gamma: 2}
}

func (s Schedule) String() string {
	if s.Kind != Discounted {
		return s.Kind.String()
	}
	return fmt.Sprintf("discounted(%g,%g,%g)", s.Alpha, s.Beta, s.Gamma)
}

// ParseSchedule accepts "vanilla", "cfr+", "linear", "discounted" and
// "discounted:α,β,γ".
func ParseSchedule(s string) (Schedule, error) {
	name, params, hasParams := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch name {
	case "vanilla", "cfr":
		return Schedule{Kind: Vanilla}, nil
	case "cfr+", "rm+", "plus":
		return Schedule{Kind: RegretMatchingPlus}, nil
	case "linear", "lcfr":
		return Schedule{Kind: Linear}, nil
	case "discounted", "dcfr", "":
		sched := DefaultSchedule()
		if !hasParams {
			return sched, nil
		}
		parts := strings.Split(params, ",")
		if len(parts) != 3 {
			return Schedule{}, fmt.Errorf("%w: discounted schedule needs alpha,beta,gamma, got %q", ErrInvalidConfig, params)
		}
		vals := make([]float64, 3)
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return Schedule{}, fmt.Errorf("%w: schedule parameter %q: %v", ErrInvalidConfig, p, err)
			}
			vals[i] = v
		}
		sched.Alpha, sched.Beta, sched.Gamma = vals[0], vals[1], vals[2]
		return sched, sched.Validate()
	default:
		return Schedule{}, fmt.Errorf("%w: unknown schedule %q", ErrInvalidConfig, s)
	}
}

// Validate checks the discount parameters.
func (s Schedule) Validate() error {
	if s.Kind > Discounted {
		return fmt.Errorf("%w: schedule kind %d", ErrInvalidConfig, s.Kind)
	}
	if s.Kind != Discounted {
		return nil
	}
	for _, v := range []float64{s.Alpha, s.Beta, s.Gamma} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: schedule parameter %v", ErrInvalidConfig, v)
		}
	}
	if s.Gamma < 0 {
		return fmt.Errorf("%w: gamma must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// Config controls a solve.
type Config struct {
	// MaxIterations stops the solve after this many iterations.
	MaxIterations int
	// TargetExploitability stops the solve once exploitability, in payoff
	// units, is at or below it. Zero disables the check.
	TargetExploitability float64
	// ExploitabilityEvery is the number of iterations between
	// exploitability measurements.
	ExploitabilityEvery int
	// Threads bounds concurrent subtree traversals. Zero uses GOMAXPROCS.
	Threads     int
	Schedule    Schedule
	MaxDuration time.Duration
}

// DefaultConfig returns a configuration suitable for interactive use.
func DefaultConfig() Config {
	return Config{
		MaxIterations:       1000,
		ExploitabilityEvery: 10,
		Schedule:            DefaultSchedule(),
	}
}

// Validate ensures the parameters are safe to use.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be > 0", ErrInvalidConfig)
	}
	if c.TargetExploitability < 0 || math.IsNaN(c.TargetExploitability) {
		return fmt.Errorf("%w: target exploitability cannot be negative", ErrInvalidConfig)
	}
	if c.ExploitabilityEvery < 0 {
		return fmt.Errorf("%w: exploitability cadence cannot be negative", ErrInvalidConfig)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads cannot be negative", ErrInvalidConfig)
	}
	if c.MaxDuration < 0 {
		return fmt.Errorf("%w: max duration cannot be negative", ErrInvalidConfig)
	}
	return c.Schedule.Validate()
}

func (c Config) threads() int {
	if c.Threads > 0 {
		return c.Threads
	}
	return runtime.GOMAXPROCS(0)
}
