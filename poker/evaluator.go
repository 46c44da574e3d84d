package poker

import (
	"math/bits"
)

// HandRank represents the strength of a poker hand. Lower values are stronger.
type HandRank uint16

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

const (
	baseStraightFlush = 0
	baseFourOfAKind   = baseStraightFlush + straightFlushCount
	baseFullHouse     = baseFourOfAKind + fourOfAKindCount
	baseFlush         = baseFullHouse + fullHouseCount
	baseStraight      = baseFlush + flushCount
	baseThreeOfAKind  = baseStraight + straightCount
	baseTwoPair       = baseThreeOfAKind + threeOfAKindCount
	baseOnePair       = baseTwoPair + twoPairCount
	baseHighCard      = baseOnePair + onePairCount
)

// boundaries mark the exclusive upper bound for each category in ascending strength order.
var handTypeBoundaries = [...]HandRank{
	HandRank(baseFourOfAKind),
	HandRank(baseFullHouse),
	HandRank(baseFlush),
	HandRank(baseStraight),
	HandRank(baseThreeOfAKind),
	HandRank(baseTwoPair),
	HandRank(baseOnePair),
	HandRank(baseHighCard),
	HandRank(baseHighCard + highCardCount),
}

// HandType returns the type of hand (pair, flush, etc.).
func (hr HandRank) Type() HandType {
	switch {
	case hr < handTypeBoundaries[0]:
		return StraightFlush
	case hr < handTypeBoundaries[1]:
		return FourOfAKind
	case hr < handTypeBoundaries[2]:
		return FullHouse
	case hr < handTypeBoundaries[3]:
		return Flush
	case hr < handTypeBoundaries[4]:
		return Straight
	case hr < handTypeBoundaries[5]:
		return ThreeOfAKind
	case hr < handTypeBoundaries[6]:
		return TwoPair
	case hr < handTypeBoundaries[7]:
		return Pair
	default:
		return HighCard
	}
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	return hr.Type().String()
}

func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// InvalidRank is returned for inputs that are not exactly seven cards.
const InvalidRank HandRank = 0xFFFF

// worstRank is the weakest possible seven card hand (7-5-4-3-2 high).
const worstRank = HandRank(baseHighCard + highCardCount - 1)

// Evaluate7Cards evaluates the best 5-card hand from 7 cards
func Evaluate7Cards(hand Hand) HandRank {
	if hand.CountCards() != 7 {
		return InvalidRank
	}

	return evaluate7CardsUnchecked(hand)
}

// Evaluate7CardsBatch evaluates multiple 7-card hands and writes results into out.
// If out is nil or smaller than hands, a new slice is allocated and returned.
// Each hand is assumed to contain exactly seven cards; behavior is undefined otherwise.
func Evaluate7CardsBatch(hands []Hand, out []HandRank) []HandRank {
	if len(out) < len(hands) {
		out = make([]HandRank, len(hands))
	} else {
		out = out[:len(hands)]
	}

	for i, hand := range hands {
		out[i] = evaluate7CardsUnchecked(hand)
	}

	return out
}

func evaluate7CardsUnchecked(hand Hand) HandRank {
	var suitMasks [4]uint16
	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask := hand.GetSuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}

	return rankFromMasks(suitMasks, rankMask)
}

func rankFromMasks(suitMasks [4]uint16, rankMask uint16) HandRank {
	// At most one suit can hold five of seven cards.
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		if high := straightHighMask(suitMask); high > 0 {
			detail := uint16(straightFlushCount-1) - straightIndex(high)
			return HandRank(baseStraightFlush + detail)
		}
		idxAdj := adjustFiveCardIndex(comboIndex13of5[topRanks(suitMask, 5)])
		return HandRank(baseFlush + uint16(flushCount-1) - idxAdj)
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		quadBit := uint16(1) << quad
		kicker := highestRank(rankMask &^ quadBit)
		idxAsc := uint16(quad)*12 + ordinal(uint8(kicker), quadBit)
		return HandRank(baseFourOfAKind + uint16(fourOfAKindCount-1) - idxAsc)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		tripBit := uint16(1) << trip
		if pair := highestRank(pairsMask | (tripsMask &^ tripBit)); pair >= 0 {
			idxAsc := uint16(trip)*12 + ordinal(uint8(pair), tripBit)
			return HandRank(baseFullHouse + uint16(fullHouseCount-1) - idxAsc)
		}
	}

	if high := straightHighMask(rankMask); high > 0 {
		return HandRank(baseStraight + uint16(straightCount-1) - straightIndex(high))
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		tripBit := uint16(1) << trip
		kickers := compressRanks(topRanks(rankMask&^tripBit, 2), tripBit)
		idxAsc := uint16(trip)*66 + comboIndex12of2[kickers]
		return HandRank(baseThreeOfAKind + uint16(threeOfAKindCount-1) - idxAsc)
	}

	if highPair := highestRank(pairsMask); highPair >= 0 {
		highBit := uint16(1) << highPair
		if lowPair := highestRank(pairsMask &^ highBit); lowPair >= 0 {
			both := highBit | uint16(1)<<lowPair
			kicker := highestRank(rankMask &^ both)
			idxAsc := comboIndex13of2[both]*11 + ordinal(uint8(kicker), both)
			return HandRank(baseTwoPair + uint16(twoPairCount-1) - idxAsc)
		}
		kickers := compressRanks(topRanks(rankMask&^highBit, 3), highBit)
		idxAsc := uint16(highPair)*220 + comboIndex12of3[kickers]
		return HandRank(baseOnePair + uint16(onePairCount-1) - idxAsc)
	}

	idxAdj := adjustFiveCardIndex(comboIndex13of5[topRanks(rankMask, 5)])
	return HandRank(baseHighCard + uint16(highCardCount-1) - idxAdj)
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topRanks keeps the n highest bits of mask.
func topRanks(mask uint16, n int) uint16 {
	var out uint16
	for ; n > 0 && mask != 0; n-- {
		top := uint16(1) << (bits.Len16(mask) - 1)
		out |= top
		mask &^= top
	}
	return out
}

// ordinal is the position of rank once the excluded ranks are removed.
func ordinal(rank uint8, exclude uint16) uint16 {
	below := exclude & (uint16(1)<<rank - 1)
	return uint16(rank) - uint16(bits.OnesCount16(below))
}

// compressRanks re-indexes mask into the rank space without the excluded ranks.
func compressRanks(mask, exclude uint16) uint16 {
	var out uint16
	var ord uint
	for r := uint(0); r < 13; r++ {
		bit := uint16(1) << r
		if exclude&bit != 0 {
			continue
		}
		if mask&bit != 0 {
			out |= 1 << ord
		}
		ord++
	}
	return out
}

var comboIndex13of5 = func() [1 << 13]uint16 {
	var table [1 << 13]uint16
	var idx uint16
	for a := 0; a <= 8; a++ {
		for b := a + 1; b <= 9; b++ {
			for c := b + 1; c <= 10; c++ {
				for d := c + 1; d <= 11; d++ {
					for e := d + 1; e <= 12; e++ {
						mask := (1 << a) | (1 << b) | (1 << c) | (1 << d) | (1 << e)
						table[mask] = idx
						idx++
					}
				}
			}
		}
	}
	return table
}()

var comboIndex13of2 = func() [1 << 13]uint16 {
	var table [1 << 13]uint16
	var idx uint16
	for a := 0; a <= 11; a++ {
		for b := a + 1; b <= 12; b++ {
			mask := (1 << a) | (1 << b)
			table[mask] = idx
			idx++
		}
	}
	return table
}()

var comboIndex12of2 = func() [1 << 12]uint16 {
	var table [1 << 12]uint16
	var idx uint16
	for a := 0; a <= 10; a++ {
		for b := a + 1; b <= 11; b++ {
			mask := (1 << a) | (1 << b)
			table[mask] = idx
			idx++
		}
	}
	return table
}()

var comboIndex12of3 = func() [1 << 12]uint16 {
	var table [1 << 12]uint16
	var idx uint16
	for a := 0; a <= 9; a++ {
		for b := a + 1; b <= 10; b++ {
			for c := b + 1; c <= 11; c++ {
				mask := (1 << a) | (1 << b) | (1 << c)
				table[mask] = idx
				idx++
			}
		}
	}
	return table
}()

var straightComboIndices = func() [10]uint16 {
	var arr [10]uint16
	idx := 0
	// Wheel (A-5)
	wheelMask := (1 << 0) | (1 << 1) | (1 << 2) | (1 << 3) | (1 << 12)
	arr[idx] = comboIndex13of5[wheelMask]
	idx++
	for high := 4; high <= 12; high++ {
		mask := uint16(0)
		for r := high - 4; r <= high; r++ {
			mask |= 1 << r
		}
		arr[idx] = comboIndex13of5[mask]
		idx++
	}
	sortSmallUint16(arr[:])
	return arr
}()

func straightIndex(high uint8) uint16 {
	if high == 3 { // wheel
		return 0
	}
	return uint16(high - 3)
}

func sortSmallUint16(vals []uint16) {
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
}

func adjustFiveCardIndex(idx uint16) uint16 {
	var adjust uint16
	for _, s := range straightComboIndices {
		if idx > s {
			adjust++
		} else {
			break
		}
	}
	return idx - adjust
}

// straightHighMask returns the high-card rank of the best straight present in the mask (0 if none).
// The mask is expected to use rank bits (0-12 for deuce through ace) with an optional extra ace bit.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= 0x1FFF           // Ignore any bits above rank twelve

	if mask&wheelMask == wheelMask {
		return 3
	}

	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq == 0 {
		return 0
	}

	low := uint8(bits.Len16(seq) - 1)
	return low + 4
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}

// Strength converts a rank into a score where higher is strictly better and
// equal hands share a score. Zero is reserved for invalid input.
func (hr HandRank) Strength() uint16 {
	if hr > worstRank {
		return 0
	}
	return uint16(worstRank-hr) + 1
}

// Strength evaluates a five card board plus two hole cards. It performs no
// allocation and is safe for concurrent use.
func Strength(board, hole Hand) uint16 {
	if board&hole != 0 {
		return 0
	}
	return Evaluate7Cards(board | hole).Strength()
}

// CompareHoles returns 1 when a beats b on the board, -1 when b wins and 0 on
// a split.
func CompareHoles(board, a, b Hand) int {
	sa, sb := Strength(board, a), Strength(board, b)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}
