// Package classification labels boards and hole cards for reports: how
// coordinated a board is, the made hand a player holds on a board of any
// size, and the best draw behind it.
package classification

import (
	"fmt"
	"math/bits"

	"github.com/lox/postflop/poker"
)

// BoardTexture grades a board from dry to very wet.
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// Texture describes a board.
type Texture struct {
	Wetness BoardTexture
	Cards   int
	// MaxSuit is the largest number of cards sharing a suit.
	MaxSuit int
	// StraightCards is the most distinct ranks inside any five-rank window.
	StraightCards int
	Paired        bool
	// HighCards counts tens or better.
	HighCards int
}

// Analyze measures a board.
func Analyze(board poker.Hand) Texture {
	t := Texture{Cards: board.CountCards()}
	for suit := range uint8(4) {
		t.MaxSuit = max(t.MaxSuit, bits.OnesCount16(board.GetSuitMask(suit)))
	}
	ranks := board.GetRankMask()
	t.Paired = bits.OnesCount16(ranks) < t.Cards
	t.HighCards = bits.OnesCount16(ranks >> poker.Ten)
	t.StraightCards = straightCards(ranks)
	if t.Cards >= 3 {
		t.Wetness = wetness(t)
	}
	return t
}

// SuitPattern names the suit distribution: monotone, two-tone, rainbow, or
// "N-flush" when N cards of a suit are out on a bigger board.
func (t Texture) SuitPattern() string {
	switch {
	case t.Cards >= 3 && t.MaxSuit == t.Cards:
		return "monotone"
	case t.MaxSuit <= 1:
		return "rainbow"
	case t.MaxSuit == 2:
		return "two-tone"
	default:
		return fmt.Sprintf("%d-flush", t.MaxSuit)
	}
}

func wetness(t Texture) BoardTexture {
	var score int
	switch {
	case t.MaxSuit == t.Cards, t.MaxSuit >= 4:
		score += 4
	case t.MaxSuit == 3:
		score += 3
	case t.MaxSuit == 2:
		score++
	}
	switch {
	case t.StraightCards >= 4:
		score += 4
	case t.StraightCards == 3:
		score += 2
	}
	if t.Paired {
		score++
	}
	if t.HighCards >= 3 {
		score++
	}

	switch {
	case score <= 0:
		return Dry
	case score <= 2:
		return SemiWet
	case score <= 4:
		return Wet
	default:
		return VeryWet
	}
}

// withLowAce shifts a rank mask up one bit and copies the ace below the
// deuce, so bit 0 is a low ace and bit 13 a high one.
func withLowAce(mask uint16) uint32 {
	m := uint32(mask) << 1
	if mask&(1<<poker.Ace) != 0 {
		m |= 1
	}
	return m
}

func straightCards(mask uint16) int {
	m := withLowAce(mask)
	best := 0
	for low := range 10 {
		best = max(best, bits.OnesCount32(m>>low&0x1F))
	}
	return best
}

// hasStraight reports whether a rank mask holds five consecutive ranks.
func hasStraight(mask uint16) bool {
	m := withLowAce(mask)
	return m&(m>>1)&(m>>2)&(m>>3)&(m>>4) != 0
}
