package tree

import (
	"errors"
	"fmt"
	"math"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/poker"
)

var (
	// ErrInvalidBetSize means a size fraction is not a positive finite number
	// or a street's abstraction cannot produce a coherent action set.
	ErrInvalidBetSize = errors.New("invalid bet size")
	// ErrInvalidPot means the starting pot is not positive.
	ErrInvalidPot = errors.New("starting pot must be positive")
	// ErrInvalidStack means the effective stack is not positive.
	ErrInvalidStack = errors.New("effective stack must be positive")
	// ErrInvalidICM means the ICM payout structure is unusable.
	ErrInvalidICM = errors.New("invalid icm configuration")
)

// Street is a post-flop betting round.
type Street uint8

const (
	StreetFlop Street = iota
	StreetTurn
	StreetRiver
)

// NumStreets is the number of post-flop betting rounds.
const NumStreets = 3

func (s Street) String() string {
	switch s {
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	default:
		return "unknown"
	}
}

// StreetForBoard returns the street on which a board of n cards is played.
func StreetForBoard(n int) (Street, error) {
	switch n {
	case 3:
		return StreetFlop, nil
	case 4:
		return StreetTurn, nil
	case 5:
		return StreetRiver, nil
	default:
		return 0, fmt.Errorf("%w: got %d cards", handrange.ErrInvalidBoard, n)
	}
}

// StreetSizes is the bet size abstraction of one street. Bet fractions are
// relative to the pot; raise fractions are relative to the pot after calling.
type StreetSizes struct {
	Bet   []float64
	Raise []float64
	AllIn bool
}

// ICMConfig switches terminal payoffs from chips to tournament equity.
type ICMConfig struct {
	// Payouts lists prizes from first place down.
	Payouts []int
	// OtherStacks holds the stacks of every other player in the tournament.
	OtherStacks []int
}

// Config describes the betting game rooted at a post-flop spot.
type Config struct {
	Board poker.Hand
	// Pot is the pot at the root, treated as contributed equally.
	Pot int
	// Stack is the effective stack behind at the root.
	Stack   int
	Streets [NumStreets]StreetSizes
	// MaxRaises caps raises after the opening bet on each street.
	MaxRaises int
	// AllInThreshold turns any bet or raise that would commit at least this
	// fraction of the effective stack into an all-in. Zero disables it.
	AllInThreshold float64
	// Isomorphism collapses chance cards that are suit-symmetric with a
	// lower suit.
	Isomorphism bool
	ICM         *ICMConfig
}

// DefaultConfig returns a compact abstraction for the given spot: one bet
// size and one raise size per street, two raises maximum.
func DefaultConfig(board poker.Hand, pot, stack int) Config {
	cfg := Config{
		Board:          board,
		Pot:            pot,
		Stack:          stack,
		MaxRaises:      2,
		AllInThreshold: 0.67,
		Isomorphism:    true,
	}
	for s := range cfg.Streets {
		cfg.Streets[s] = StreetSizes{Bet: []float64{0.67}, Raise: []float64{1.0}, AllIn: true}
	}
	return cfg
}

// RootStreet returns the street of the root decision.
func (c Config) RootStreet() (Street, error) {
	return StreetForBoard(c.Board.CountCards())
}

// Validate fails fast on configurations the builder cannot expand.
func (c Config) Validate() error {
	root, err := c.RootStreet()
	if err != nil {
		return err
	}
	if c.Pot <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPot, c.Pot)
	}
	if c.Stack <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStack, c.Stack)
	}
	if c.MaxRaises < 0 {
		return fmt.Errorf("%w: max raises %d", ErrInvalidBetSize, c.MaxRaises)
	}
	if math.IsNaN(c.AllInThreshold) || c.AllInThreshold < 0 || c.AllInThreshold > 1 {
		return fmt.Errorf("%w: all-in threshold %v", ErrInvalidBetSize, c.AllInThreshold)
	}
	for s := root; s < NumStreets; s++ {
		sizes := c.Streets[s]
		for _, f := range sizes.Bet {
			if !validFraction(f) {
				return fmt.Errorf("%w: %s bet %v", ErrInvalidBetSize, s, f)
			}
		}
		for _, f := range sizes.Raise {
			if !validFraction(f) {
				return fmt.Errorf("%w: %s raise %v", ErrInvalidBetSize, s, f)
			}
		}
		if len(sizes.Raise) > 0 && len(sizes.Bet) == 0 && !sizes.AllIn {
			return fmt.Errorf("%w: %s has raise sizes but nothing to raise", ErrInvalidBetSize, s)
		}
	}
	if c.ICM != nil {
		if len(c.ICM.Payouts) == 0 {
			return fmt.Errorf("%w: no payouts", ErrInvalidICM)
		}
		for _, p := range c.ICM.Payouts {
			if p < 0 {
				return fmt.Errorf("%w: negative payout %d", ErrInvalidICM, p)
			}
		}
		for _, s := range c.ICM.OtherStacks {
			if s <= 0 {
				return fmt.Errorf("%w: stack %d", ErrInvalidICM, s)
			}
		}
	}
	return nil
}

func validFraction(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
