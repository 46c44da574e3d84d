package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t testing.TB, s string) Hand {
	t.Helper()
	h, err := ParseHand(s)
	require.NoError(t, err)
	return h
}

func TestEvaluate7CardsCategories(t *testing.T) {
	tests := []struct {
		cards string
		want  HandType
	}{
		{"As Ks Qs Js Ts 2h 3d", StraightFlush},
		{"9s 8s 7s 6s 5s 2h 3d", StraightFlush},
		{"Ah Ad Ac As Kd 2h 3c", FourOfAKind},
		{"Kh Kd Kc 2s 2d 7h 9c", FullHouse},
		{"Ah 9h 7h 4h 2h Kd Qc", Flush},
		{"5d 4c 3h 2s Ah Kd 9c", Straight},
		{"7h 7d 7c As Kd 2h 4c", ThreeOfAKind},
		{"Jh Jd 4c 4s Ad 2h 8c", TwoPair},
		{"Th Td 2c 5s 8d Ah Kc", Pair},
		{"Ah Qd Tc 8s 6d 4h 2c", HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			rank := Evaluate7Cards(mustHand(t, tt.cards))
			assert.Equal(t, tt.want, rank.Type(), rank.String())
		})
	}
}

func TestEvaluate7CardsInvalid(t *testing.T) {
	assert.Equal(t, InvalidRank, Evaluate7Cards(mustHand(t, "As Ks")))
	assert.Zero(t, InvalidRank.Strength())
}

func TestStrengthOrdering(t *testing.T) {
	board := mustHand(t, "Kh 9s 4c 7d 2s")

	aces := mustHand(t, "Ac Ad")
	kings := mustHand(t, "Kc Kd")
	nines := mustHand(t, "9c 9d")
	air := mustHand(t, "Qc Jd")

	assert.Greater(t, Strength(board, kings), Strength(board, aces), "set beats overpair")
	assert.Greater(t, Strength(board, nines), Strength(board, aces), "set of nines beats aces")
	assert.Greater(t, Strength(board, kings), Strength(board, nines))
	assert.Greater(t, Strength(board, aces), Strength(board, air))

	assert.Equal(t, 1, CompareHoles(board, kings, nines))
	assert.Equal(t, -1, CompareHoles(board, air, aces))
}

func TestStrengthTiesSplit(t *testing.T) {
	board := mustHand(t, "As Ks Qd Jc Th")
	a := mustHand(t, "2c 3d")
	b := mustHand(t, "4h 5h")
	assert.Equal(t, Strength(board, a), Strength(board, b), "both play the broadway straight")
	assert.Equal(t, 0, CompareHoles(board, a, b))
}

func TestStrengthRejectsCollision(t *testing.T) {
	board := mustHand(t, "As Ks Qd Jc Th")
	assert.Zero(t, Strength(board, mustHand(t, "As 2c")))
}

func TestWheelBelowSixHighStraight(t *testing.T) {
	wheel := Evaluate7Cards(mustHand(t, "Ah 2d 3c 4s 5h Kd 9c"))
	six := Evaluate7Cards(mustHand(t, "6h 2d 3c 4s 5h Kd 9c"))
	assert.Greater(t, six.Strength(), wheel.Strength())
}

func TestStrengthDoesNotAllocate(t *testing.T) {
	board := mustHand(t, "Kh 9s 4c 7d 2s")
	hole := mustHand(t, "Ac Ad")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Strength(board, hole)
	})
	assert.Zero(t, allocs)
}

func TestSwapSuits(t *testing.T) {
	h := mustHand(t, "As Kh 2c")
	swapped := SwapSuits(h, Spades, Hearts)
	assert.Equal(t, mustHand(t, "Ah Ks 2c"), swapped)
	assert.Equal(t, h, SwapSuits(swapped, Hearts, Spades))
	assert.Equal(t, NewCard(Ace, Clubs), SwapCard(NewCard(Ace, Diamonds), Diamonds, Clubs))

	assert.True(t, SuitsInterchangeable(mustHand(t, "Kc Kd 7h"), Clubs, Diamonds))
	assert.False(t, SuitsInterchangeable(mustHand(t, "Kc Kd 7h"), Clubs, Hearts))
}

func BenchmarkStrength(b *testing.B) {
	board := mustHand(b, "Kh 9s 4c 7d 2s")
	hole := mustHand(b, "Ac Ad")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Strength(board, hole)
	}
}
