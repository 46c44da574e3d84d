// Package handrange turns weighted starting-hand lists into the indexed,
// card-removed hand sets the game tree and solver operate on.
package handrange

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lox/postflop/poker"
)

var (
	// ErrEmptyRange means no hand of a range survives card removal.
	ErrEmptyRange = errors.New("range is empty after card removal")
	// ErrInvalidWeight means a weight lies outside (0, 1] or is not finite.
	ErrInvalidWeight = errors.New("range weight must be in (0, 1]")
	// ErrInvalidHand means a combination is not exactly two cards.
	ErrInvalidHand = errors.New("private hand must have exactly two cards")
	// ErrInvalidBoard means the board does not have 3, 4 or 5 cards.
	ErrInvalidBoard = errors.New("board must have 3, 4 or 5 cards")
	// ErrBoardConflict means the same card appears twice on the board.
	ErrBoardConflict = errors.New("board contains a duplicated card")
	// ErrDisconnectedRanges means no hand of one player can coexist with any
	// hand of the other.
	ErrDisconnectedRanges = errors.New("ranges share no card-compatible pair")
)

// Combo is one private hand with its weight.
type Combo struct {
	Hand   poker.Hand
	Weight float64
}

// Input is a pre-parsed weighted range.
type Input []Combo

// Set is a range filtered against a board. Index i identifies the same
// private hand in Hands, Weights and Cards for the lifetime of a solve.
type Set struct {
	Hands   []poker.Hand
	Weights []float64
	// Cards holds the dense 0-51 indices of each hand, lowest first.
	Cards [][2]uint8
	// IsoClass maps each hand to the lowest index of its suit-isomorphic
	// class; hands that are alone in their class map to themselves.
	IsoClass []int32

	raw map[poker.Hand]float64
}

// ValidateBoard checks a dealt board and returns it as a Hand.
func ValidateBoard(cards []poker.Card) (poker.Hand, error) {
	switch len(cards) {
	case 3, 4, 5:
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBoard, len(cards))
	}
	var board poker.Hand
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %v", ErrInvalidBoard, c)
		}
		if board.HasCard(c) {
			return 0, fmt.Errorf("%w: %s", ErrBoardConflict, c)
		}
		board.AddCard(c)
	}
	return board, nil
}

// New filters in against the board. Duplicated hands keep the last weight.
func New(board poker.Hand, in Input) (*Set, error) {
	raw := make(map[poker.Hand]float64, len(in))
	for _, c := range in {
		if c.Hand.CountCards() != 2 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidHand, c.Hand)
		}
		if math.IsNaN(c.Weight) || c.Weight <= 0 || c.Weight > 1 {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidWeight, c.Hand, c.Weight)
		}
		raw[c.Hand] = c.Weight
	}

	hands := make([]poker.Hand, 0, len(raw))
	for h := range raw {
		if h.Overlaps(board) {
			continue
		}
		hands = append(hands, h)
	}
	if len(hands) == 0 {
		return nil, ErrEmptyRange
	}
	slices.Sort(hands)

	s := &Set{
		Hands:   hands,
		Weights: make([]float64, len(hands)),
		Cards:   make([][2]uint8, len(hands)),
		raw:     raw,
	}
	for i, h := range hands {
		s.Weights[i] = raw[h]
		lo, hi := h.Pair()
		s.Cards[i] = [2]uint8{uint8(lo.Index()), uint8(hi.Index())}
	}
	s.IsoClass = s.isoClasses(board)
	return s, nil
}

// Len returns the number of private hands.
func (s *Set) Len() int {
	return len(s.Hands)
}

// Index returns the index of h or -1 when h is not part of the set.
func (s *Set) Index(h poker.Hand) int {
	i, ok := slices.BinarySearch(s.Hands, h)
	if !ok {
		return -1
	}
	return i
}

// Blocked reports whether hand i shares a card with h.
func (s *Set) Blocked(i int, h poker.Hand) bool {
	return s.Hands[i].Overlaps(h)
}

// Input returns the range as given to New, before card removal, sorted by
// hand.
func (s *Set) Input() Input {
	out := make(Input, 0, len(s.raw))
	for h, w := range s.raw {
		out = append(out, Combo{Hand: h, Weight: w})
	}
	slices.SortFunc(out, func(a, b Combo) int {
		return cmp.Compare(a.Hand, b.Hand)
	})
	return out
}

// Mass returns the total weight of the set.
func (s *Set) Mass() float64 {
	total := 0.0
	for _, w := range s.Weights {
		total += w
	}
	return total
}

// SuitSymmetric reports whether the unfiltered range gives every hand the
// same weight as its image under swapping suits a and b.
func (s *Set) SuitSymmetric(a, b uint8) bool {
	if a == b {
		return true
	}
	for h, w := range s.raw {
		if other, ok := s.raw[poker.SwapSuits(h, a, b)]; !ok || other != w {
			return false
		}
	}
	return true
}

// Permutation maps each index to the index of its suit-swapped hand, or -1
// when the swapped hand was removed by the board.
func (s *Set) Permutation(a, b uint8) []int32 {
	perm := make([]int32, len(s.Hands))
	for i, h := range s.Hands {
		perm[i] = int32(s.Index(poker.SwapSuits(h, a, b)))
	}
	return perm
}

// Pair is the pair of ranges of one subgame.
type Pair struct {
	Board   poker.Hand
	Players [2]*Set
	// Same[p][i] is the index in the opponent's set of the hand identical to
	// Players[p].Hands[i], or -1.
	Same [2][]int32
	// PairNorm is the weight of all card-compatible (oop, ip) hand pairs; it
	// normalises the joint deal distribution.
	PairNorm float64
}

// NewPair filters both ranges and checks that at least one pair of hands
// can be dealt together.
func NewPair(board poker.Hand, oop, ip Input) (*Pair, error) {
	a, err := New(board, oop)
	if err != nil {
		return nil, fmt.Errorf("oop range: %w", err)
	}
	b, err := New(board, ip)
	if err != nil {
		return nil, fmt.Errorf("ip range: %w", err)
	}
	p := &Pair{Board: board, Players: [2]*Set{a, b}}
	for pl := 0; pl < 2; pl++ {
		own, opp := p.Players[pl], p.Players[1-pl]
		p.Same[pl] = make([]int32, own.Len())
		for i, h := range own.Hands {
			p.Same[pl][i] = int32(opp.Index(h))
		}
	}
	for i, ha := range a.Hands {
		for j, hb := range b.Hands {
			if ha.Overlaps(hb) {
				continue
			}
			p.PairNorm += a.Weights[i] * b.Weights[j]
		}
	}
	if p.PairNorm <= 0 {
		return nil, ErrDisconnectedRanges
	}
	return p, nil
}

// SuitSymmetric reports whether both ranges are symmetric in suits a and b.
func (p *Pair) SuitSymmetric(a, b uint8) bool {
	return p.Players[0].SuitSymmetric(a, b) && p.Players[1].SuitSymmetric(a, b)
}
