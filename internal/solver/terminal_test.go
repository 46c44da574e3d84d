package solver

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postflop/internal/randutil"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
)

// naive scores hand i of player p against every opponent hand directly.
func naive(s *Solver, n *tree.Node, p int, opp []float64) []float64 {
	own := s.tree.Ranges.Players[p].Hands
	other := s.tree.Ranges.Players[1-p].Hands
	pay := s.tree.Payoffs[n.Payoff]
	out := make([]float64, len(own))
	for i, h := range own {
		if h.Overlaps(n.Board) {
			continue
		}
		for j, o := range other {
			if o.Overlaps(h) || o.Overlaps(n.Board) {
				continue
			}
			u := pay.Tie[p]
			switch {
			case n.Kind == tree.NodeFold && int(n.Player) == p:
				u = pay.Lose[p]
			case n.Kind == tree.NodeFold:
				u = pay.Win[p]
			default:
				switch poker.CompareHoles(n.Board, h, o) {
				case 1:
					u = pay.Win[p]
				case -1:
					u = pay.Lose[p]
				}
			}
			out[i] += u * opp[j]
		}
	}
	return out
}

func TestTerminalValuesMatchPairwise(t *testing.T) {
	sp := spot{board: "Kh 9s 4c 7d 2s", oop: "AA,KK,99,K9s,AK,T8s,65s,44", ip: "KQ,99,A9s,AK,77,43s,22", pot: 100, stack: 100}
	tr := sp.build(t)
	s := newSolver(t, tr, DefaultConfig())
	rng := randutil.New(7)

	checked := map[tree.Kind]int{}
	for idx := range tr.Nodes {
		n := &tr.Nodes[idx]
		if !n.Kind.Terminal() {
			continue
		}
		for p := range 2 {
			opp := make([]float64, tr.Hands(1-p))
			for j := range opp {
				// leave some hands unreached
				if rng.IntN(4) > 0 {
					opp[j] = rng.Float64()
				}
			}
			got := make([]float64, tr.Hands(p))
			if n.Kind == tree.NodeFold {
				s.foldValues(n, p, opp, got)
			} else {
				s.showdownValues(n, p, opp, got)
			}
			want := naive(s, n, p, opp)
			for i := range want {
				require.InDelta(t, want[i], got[i], 1e-9, "node %d player %d hand %s", idx, p, tr.Ranges.Players[p].Hands[i])
			}
		}
		checked[n.Kind]++
	}
	assert.Positive(t, checked[tree.NodeFold])
	assert.Positive(t, checked[tree.NodeShowdown])
}

func TestScheduleWeights(t *testing.T) {
	vanilla := Schedule{Kind: Vanilla}.weightsFor(5)
	assert.Equal(t, float32(3), vanilla.regret(1, 2))
	assert.Equal(t, float32(-3), vanilla.regret(-1, -2))
	assert.Equal(t, float32(1.5), vanilla.strategySum(1, 0.5))

	plus := Schedule{Kind: RegretMatchingPlus}.weightsFor(3)
	assert.Equal(t, float32(0), plus.regret(1, -4))
	assert.Equal(t, float32(2), plus.regret(1, 1))
	assert.Equal(t, float32(1+3*0.5), plus.strategySum(1, 0.5))

	linear := Schedule{Kind: Linear}.weightsFor(4)
	assert.Equal(t, float32(1+4*2), linear.regret(1, 2))
	assert.Equal(t, float32(4), linear.strategySum(2, 0.5))

	dcfr := DefaultSchedule().weightsFor(3)
	// t-1 = 2: positive 2^1.5/(2^1.5+1), negative 1/2, strategy (2/3)^2
	assert.InDelta(t, 2.8284271247461903/3.8284271247461903, dcfr.positive, 1e-12)
	assert.InDelta(t, 0.5, dcfr.negative, 1e-12)
	assert.InDelta(t, 4.0/9.0, dcfr.strategy, 1e-12)
	assert.InDelta(t, -1, float64(dcfr.regret(-4, 1)), 1e-6)

	first := DefaultSchedule().weightsFor(1)
	assert.Zero(t, first.positive)
	assert.Zero(t, first.strategy)
}

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		in      string
		want    Schedule
		wantErr bool
	}{
		{in: "vanilla", want: Schedule{Kind: Vanilla}},
		{in: "CFR+", want: Schedule{Kind: RegretMatchingPlus}},
		{in: "linear", want: Schedule{Kind: Linear}},
		{in: "discounted", want: DefaultSchedule()},
		{in: "", want: DefaultSchedule()},
		{in: "dcfr:1,0.5,3", want: Schedule{Kind: Discounted, Alpha: 1, Beta: 0.5, Gamma: 3}},
		{in: "dcfr:1,2", wantErr: true},
		{in: "dcfr:1,x,2", wantErr: true},
		{in: "dcfr:1,0,-1", wantErr: true},
		{in: "fictitious", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSchedule(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "discounted(1.5,0,2)", DefaultSchedule().String())
}

func TestPoolRunsEveryIndex(t *testing.T) {
	for _, threads := range []int{0, 1, 2, 8} {
		p := newPool(threads)
		var mu sync.Mutex
		seen := map[int]int{}
		var nested atomic.Int64
		p.run(16, func(i int) {
			mu.Lock()
			seen[i]++
			mu.Unlock()
			p.run(4, func(int) { nested.Add(1) })
		})
		assert.Len(t, seen, 16)
		for i, n := range seen {
			assert.Equal(t, 1, n, "index %d", i)
		}
		assert.Equal(t, int64(64), nested.Load())
	}
}
