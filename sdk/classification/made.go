package classification

import (
	"math/bits"

	"github.com/lox/postflop/poker"
)

// MadeHand returns the best hand type formed by the hole cards and a board of
// any size. Unlike poker.Evaluate7Cards it works before the river.
func MadeHand(holeCards, board poker.Hand) poker.HandType {
	all := holeCards | board

	var rankCounts [13]int
	flushSuit := -1
	for suit := range uint8(4) {
		mask := all.GetSuitMask(suit)
		if bits.OnesCount16(mask) >= 5 {
			flushSuit = int(suit)
		}
		for rank := range poker.NumRanks {
			if mask&(1<<rank) != 0 {
				rankCounts[rank]++
			}
		}
	}

	if flushSuit >= 0 && hasStraight(all.GetSuitMask(uint8(flushSuit))) {
		return poker.StraightFlush
	}

	var quads, trips, pairs int
	for _, count := range rankCounts {
		switch {
		case count == 4:
			quads++
		case count == 3:
			trips++
		case count == 2:
			pairs++
		}
	}

	switch {
	case quads > 0:
		return poker.FourOfAKind
	case trips >= 2 || (trips == 1 && pairs > 0):
		return poker.FullHouse
	case flushSuit >= 0:
		return poker.Flush
	case hasStraight(all.GetRankMask()):
		return poker.Straight
	case trips == 1:
		return poker.ThreeOfAKind
	case pairs >= 2:
		return poker.TwoPair
	case pairs == 1:
		return poker.Pair
	default:
		return poker.HighCard
	}
}
