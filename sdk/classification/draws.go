package classification

import (
	"math/bits"

	"github.com/lox/postflop/poker"
)

// Draw is the strongest unmade holding of a hand.
type Draw int

const (
	NoDraw Draw = iota
	Overcards
	Gutshot
	OpenEnded
	FlushDraw
)

func (d Draw) String() string {
	switch d {
	case NoDraw:
		return "none"
	case Overcards:
		return "overcards"
	case Gutshot:
		return "gutshot"
	case OpenEnded:
		return "open-ended"
	case FlushDraw:
		return "flush draw"
	default:
		return "unknown"
	}
}

// BestDraw returns the strongest draw the hole cards hold. A draw must use
// at least one hole card, and a hand that already has the straight or flush
// has no draw to it.
func BestDraw(holeCards, board poker.Hand) Draw {
	all := holeCards | board

	for suit := range uint8(4) {
		if bits.OnesCount16(all.GetSuitMask(suit)) == 4 && holeCards.GetSuitMask(suit) != 0 {
			return FlushDraw
		}
	}

	ranks, boardRanks := all.GetRankMask(), board.GetRankMask()
	if !hasStraight(ranks) {
		outs := 0
		for r := range poker.NumRanks {
			bit := uint16(1) << r
			if ranks&bit == 0 && hasStraight(ranks|bit) && !hasStraight(boardRanks|bit) {
				outs++
			}
		}
		switch {
		case outs >= 2:
			return OpenEnded
		case outs == 1:
			return Gutshot
		}
	}

	a, b := holeCards.Pair()
	top := topRank(boardRanks)
	if a.Rank() != b.Rank() && a.Rank() > top && b.Rank() > top {
		return Overcards
	}
	return NoDraw
}

func topRank(mask uint16) uint8 {
	if mask == 0 {
		return 0
	}
	return uint8(15 - bits.LeadingZeros16(mask))
}
