package poker

// SwapSuits exchanges every card of suit a with the same rank of suit b.
func SwapSuits(h Hand, a, b uint8) Hand {
	if a == b {
		return h
	}
	ma, mb := uint64(h.GetSuitMask(a)), uint64(h.GetSuitMask(b))
	wipe := uint64(rankMask)<<(uint(a)*suitWidth) | uint64(rankMask)<<(uint(b)*suitWidth)
	out := uint64(h) &^ wipe
	out |= mb << (uint(a) * suitWidth)
	out |= ma << (uint(b) * suitWidth)
	return Hand(out)
}

// SwapCard applies SwapSuits to a single card.
func SwapCard(c Card, a, b uint8) Card {
	return Card(SwapSuits(Hand(c), a, b))
}

// SuitsInterchangeable reports whether swapping suits a and b leaves the
// board unchanged, i.e. both suits hold the same ranks.
func SuitsInterchangeable(board Hand, a, b uint8) bool {
	return board.GetSuitMask(a) == board.GetSuitMask(b)
}
