// Package poker provides bit-packed card and hand primitives together with a
// table-driven seven card evaluator used on the solver's showdown path.
package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Card is a single bit in a 64-bit word at position suit*16 + rank. The zero
// value is not a valid card.
type Card uint64

// Hand is a set of cards, the OR of its members.
type Hand uint64

// Ranks, deuce through ace.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	// NumCards is the size of a standard deck.
	NumCards = 52
	// NumRanks is the number of ranks per suit.
	NumRanks = 13
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
	suitWidth = 16
	rankMask  = 0x1FFF
)

var (
	// ErrInvalidCard is returned when a card string cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when the same card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// NewCard builds a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint(suit)*suitWidth + uint(rank))
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(idx int) Card {
	return NewCard(uint8(idx%13), uint8(idx/13))
}

// Rank returns the rank of the card, 0 for a deuce through 12 for an ace.
func (c Card) Rank() uint8 {
	return uint8(bits.TrailingZeros64(uint64(c)) % suitWidth)
}

// Suit returns the suit of the card.
func (c Card) Suit() uint8 {
	return uint8(bits.TrailingZeros64(uint64(c)) / suitWidth)
}

// Index returns a dense 0-51 index (suit*13 + rank).
func (c Card) Index() int {
	return int(c.Suit())*13 + int(c.Rank())
}

// Valid reports whether the card is exactly one bit inside the card space.
func (c Card) Valid() bool {
	if bits.OnesCount64(uint64(c)) != 1 {
		return false
	}
	return c.Rank() < 13 && c.Suit() < 4
}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses a two character card such as "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	r := strings.IndexByte(rankChars, upper(s[0]))
	u := strings.IndexByte(suitChars, lower(s[1]))
	if r < 0 || u < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	return NewCard(uint8(r), uint8(u)), nil
}

// ParseCards parses a run of cards with optional whitespace or commas, for
// example "Qs Jh 2c" or "QsJh2c".
func ParseCards(s string) ([]Card, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(clean)/2)
	var seen Hand
	for i := 0; i < len(clean); i += 2 {
		c, err := ParseCard(clean[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen.HasCard(c) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.AddCard(c)
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseHand parses cards into a Hand, rejecting duplicates.
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	return NewHand(cards...), nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// NewHand combines cards into a hand.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the card is part of the hand.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// Overlaps reports whether the two hands share any card.
func (h Hand) Overlaps(o Hand) bool {
	return h&o != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the 13-bit rank mask of one suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(uint64(h)>>(uint(suit)*suitWidth)) & rankMask
}

// SuitHand returns the hand holding the ranks of mask in one suit.
func SuitHand(suit uint8, mask uint16) Hand {
	return Hand(uint64(mask&rankMask) << (uint(suit) * suitWidth))
}

// GetRankMask returns the 13-bit mask of ranks present in any suit.
func (h Hand) GetRankMask() uint16 {
	return h.GetSuitMask(Clubs) | h.GetSuitMask(Diamonds) | h.GetSuitMask(Hearts) | h.GetSuitMask(Spades)
}

// GetCard returns the i-th lowest card of the hand, or 0 when out of range.
func (h Hand) GetCard(i int) Card {
	rest := uint64(h)
	for ; i > 0 && rest != 0; i-- {
		rest &= rest - 1
	}
	if rest == 0 {
		return 0
	}
	return Card(rest & -rest)
}

// Cards returns the cards of the hand in ascending bit order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		out = append(out, Card(rest&-rest))
	}
	return out
}

// Pair returns the two cards of a two card hand, lowest first.
func (h Hand) Pair() (Card, Card) {
	rest := uint64(h)
	lo := Card(rest & -rest)
	rest &= rest - 1
	return lo, Card(rest & -rest)
}

func (h Hand) String() string {
	var sb strings.Builder
	cards := h.Cards()
	// Display highest rank first, which is what players expect to read.
	for i := len(cards) - 1; i >= 0; i-- {
		sb.WriteString(cards[i].String())
	}
	return sb.String()
}
