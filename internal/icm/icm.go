// Package icm converts tournament chip stacks into prize equity with the
// Malmuth-Harville independent chip model.
package icm

import (
	"cmp"
	"math"
	"math/bits"
	"slices"
	"sync"

	"github.com/lox/postflop/internal/randutil"
)

const (
	// DefaultSamples is the number of Monte Carlo finishes drawn per player
	// when the field is too large for the exact recursion.
	DefaultSamples = 80000

	maxExactPayouts = 16
	maxExactPlayers = 64
	estimateShards  = 8
)

type equity struct {
	short, deep float64
}

// Calculator computes the prize equity of two players whose stacks vary while
// the rest of the field stays fixed. It is safe for concurrent use.
type Calculator struct {
	payouts []float64
	others  []float64

	// Samples overrides DefaultSamples for the Monte Carlo estimate.
	Samples int
	// Seed makes the Monte Carlo estimate reproducible.
	Seed int64

	mu    sync.Mutex
	cache map[int]equity
}

// New returns a calculator for a field where others holds the stacks of every
// player except the two being evaluated, and payouts lists prizes from first
// place down.
func New(others, payouts []int) *Calculator {
	c := &Calculator{
		payouts: make([]float64, len(payouts)),
		others:  make([]float64, len(others)),
		cache:   make(map[int]equity),
		Seed:    1,
	}
	for i, p := range payouts {
		c.payouts[i] = float64(p)
	}
	for i, s := range others {
		c.others[i] = float64(s)
	}
	return c
}

// Players returns the size of the field including both evaluated players.
func (c *Calculator) Players() int {
	return len(c.others) + 2
}

// Calculate returns the equities of players holding a and b chips. Results
// are cached by the shorter stack, which identifies the state as long as a+b
// is constant between calls.
func (c *Calculator) Calculate(a, b int) (float64, float64) {
	key := min(a, b)
	c.mu.Lock()
	eq, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		if a <= b {
			return eq.short, eq.deep
		}
		return eq.deep, eq.short
	}

	if len(c.payouts) == 0 {
		return 0, 0
	}

	stacks := make([]float64, 0, c.Players())
	stacks = append(stacks, float64(a), float64(b))
	stacks = append(stacks, c.others...)

	var all []float64
	if len(c.payouts) > maxExactPayouts || len(stacks) > maxExactPlayers {
		all = c.estimate(stacks)
	} else {
		memo := make(map[memoKey][]float64)
		mask := ^uint64(0) >> (64 - uint(len(stacks)))
		all = c.exact(stacks, mask, 0, memo)
	}

	eqA, eqB := all[0], all[1]
	if a <= b {
		eq = equity{short: eqA, deep: eqB}
	} else {
		eq = equity{short: eqB, deep: eqA}
	}
	c.mu.Lock()
	c.cache[key] = eq
	c.mu.Unlock()
	return eqA, eqB
}

type memoKey struct {
	mask   uint64
	payout int
}

// exact returns the equity of every player in mask, in ascending bit order,
// for the payouts from index payout onwards.
func (c *Calculator) exact(stacks []float64, mask uint64, payout int, memo map[memoKey][]float64) []float64 {
	key := memoKey{mask, payout}
	if cached, ok := memo[key]; ok {
		return cached
	}

	n := bits.OnesCount64(mask)
	out := make([]float64, n)
	if payout >= len(c.payouts) || n == 0 {
		return out
	}

	active := make([]int, 0, n)
	total := 0.0
	for i, s := range stacks {
		if mask>>uint(i)&1 == 1 {
			active = append(active, i)
			total += s
		}
	}
	if total == 0 {
		return out
	}

	for i, winner := range active {
		p := stacks[winner] / total
		out[i] += p * c.payouts[payout]

		next := mask &^ (1 << uint(winner))
		if next == 0 || payout+1 >= len(c.payouts) {
			continue
		}
		sub := c.exact(stacks, next, payout+1, memo)
		k := 0
		for j := range out {
			if j == i {
				continue
			}
			out[j] += p * sub[k]
			k++
		}
	}

	memo[key] = out
	return out
}

// estimate draws finishing orders where each player's key is u^(avg/stack)
// and pays the highest keys.
func (c *Calculator) estimate(stacks []float64) []float64 {
	n := len(stacks)
	samples := c.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}

	total := 0.0
	for _, s := range stacks {
		total += s
	}
	avg := total / float64(n)
	exps := make([]float64, n)
	for i, s := range stacks {
		exps[i] = avg / s
	}

	perShard := samples*n/estimateShards + 1
	partial := make([][]float64, estimateShards)

	var wg sync.WaitGroup
	for shard := range estimateShards {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := randutil.NewStream(c.Seed, uint64(shard))
			keys := make([]float64, n)
			order := make([]int, n)
			eq := make([]float64, n)
			for range perShard {
				for i := range keys {
					keys[i] = math.Pow(rng.Float64(), exps[i])
					order[i] = i
				}
				slices.SortFunc(order, func(x, y int) int {
					return cmp.Compare(keys[y], keys[x])
				})
				for place, prize := range c.payouts {
					if place >= n {
						break
					}
					eq[order[place]] += prize
				}
			}
			for i := range eq {
				eq[i] /= float64(perShard)
			}
			partial[shard] = eq
		}()
	}
	wg.Wait()

	out := make([]float64, n)
	for _, eq := range partial {
		for i, v := range eq {
			out[i] += v / estimateShards
		}
	}
	return out
}
