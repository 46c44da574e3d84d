package handrange

import "github.com/lox/postflop/poker"

// suitPermutations lists all 24 orderings of the four suits; perm[s] is the
// suit that s maps to.
var suitPermutations = func() [][4]uint8 {
	var out [][4]uint8
	var rec func(prefix []uint8, used uint8)
	rec = func(prefix []uint8, used uint8) {
		if len(prefix) == 4 {
			out = append(out, [4]uint8{prefix[0], prefix[1], prefix[2], prefix[3]})
			return
		}
		for s := uint8(0); s < 4; s++ {
			if used&(1<<s) != 0 {
				continue
			}
			rec(append(prefix, s), used|1<<s)
		}
	}
	rec(make([]uint8, 0, 4), 0)
	return out
}()

func permuteSuits(h poker.Hand, perm [4]uint8) poker.Hand {
	var out poker.Hand
	for s := uint8(0); s < 4; s++ {
		mask := h.GetSuitMask(s)
		for mask != 0 {
			r := lowestBit(mask)
			mask &= mask - 1
			out.AddCard(poker.NewCard(r, perm[s]))
		}
	}
	return out
}

func lowestBit(m uint16) uint8 {
	var r uint8
	for m&1 == 0 {
		m >>= 1
		r++
	}
	return r
}

// symmetries returns the suit permutations that leave the board and the
// unfiltered range unchanged.
func (s *Set) symmetries(board poker.Hand) [][4]uint8 {
	var out [][4]uint8
	for _, perm := range suitPermutations {
		if permuteSuits(board, perm) != board {
			continue
		}
		ok := true
		for h, w := range s.raw {
			if other, found := s.raw[permuteSuits(h, perm)]; !found || other != w {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, perm)
		}
	}
	return out
}

// isoClasses groups hands that are images of one another under a symmetry
// of the board and range. The identity is always a symmetry, so every hand
// maps to a class.
func (s *Set) isoClasses(board poker.Hand) []int32 {
	syms := s.symmetries(board)
	classes := make([]int32, len(s.Hands))
	for i, h := range s.Hands {
		best := int32(i)
		for _, perm := range syms {
			j := s.Index(permuteSuits(h, perm))
			if j >= 0 && int32(j) < best {
				best = int32(j)
			}
		}
		classes[i] = best
	}
	return classes
}

// IsoClassCount returns the number of distinct isomorphism classes.
func (s *Set) IsoClassCount() int {
	n := 0
	for i, c := range s.IsoClass {
		if int(c) == i {
			n++
		}
	}
	return n
}
