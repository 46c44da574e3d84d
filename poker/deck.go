package poker

import "slices"

// Deck enumerates the cards that are still undealt given a set of dead cards.
// Enumeration order is ascending by Card.Index so that any structure built
// from it is reproducible.
type Deck struct {
	cards [NumCards]Card
	n     int
}

// NewDeck returns a deck containing every card not present in dead.
func NewDeck(dead Hand) *Deck {
	d := &Deck{}
	for idx := 0; idx < NumCards; idx++ {
		c := CardFromIndex(idx)
		if dead.HasCard(c) {
			continue
		}
		d.cards[d.n] = c
		d.n++
	}
	return d
}

// Cards returns the undealt cards. The slice aliases the deck.
func (d *Deck) Cards() []Card {
	return d.cards[:d.n]
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return d.n
}

// Contains reports whether the card is still in the deck.
func (d *Deck) Contains(c Card) bool {
	for _, x := range d.cards[:d.n] {
		if x == c {
			return true
		}
	}
	return false
}

// AllHoleCards enumerates every two card combination not touching dead, in
// ascending Hand order.
func AllHoleCards(dead Hand) []Hand {
	out := make([]Hand, 0, 1326)
	for a := 0; a < NumCards; a++ {
		ca := CardFromIndex(a)
		if dead.HasCard(ca) {
			continue
		}
		for b := a + 1; b < NumCards; b++ {
			cb := CardFromIndex(b)
			if dead.HasCard(cb) {
				continue
			}
			out = append(out, NewHand(ca, cb))
		}
	}
	slices.Sort(out)
	return out
}
