package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/poker"
	"github.com/lox/postflop/sdk/analysis"
)

func mustBoard(t *testing.T, s string) poker.Hand {
	t.Helper()
	h, err := poker.ParseHand(s)
	require.NoError(t, err)
	return h
}

func mustPair(t *testing.T, board poker.Hand, oop, ip string) *handrange.Pair {
	t.Helper()
	a, err := analysis.ParseInput(oop)
	require.NoError(t, err)
	b, err := analysis.ParseInput(ip)
	require.NoError(t, err)
	p, err := handrange.NewPair(board, a, b)
	require.NoError(t, err)
	return p
}

// potOnly is a single all-in-or-check street per round.
func potOnly(board poker.Hand, pot, stack int) Config {
	cfg := Config{Board: board, Pot: pot, Stack: stack}
	for s := range cfg.Streets {
		cfg.Streets[s] = StreetSizes{Bet: []float64{1.0}}
	}
	return cfg
}

func TestConfigValidate(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero pot", func(c *Config) { c.Pot = 0 }, ErrInvalidPot},
		{"negative stack", func(c *Config) { c.Stack = -5 }, ErrInvalidStack},
		{"zero bet size", func(c *Config) { c.Streets[StreetRiver].Bet = []float64{0} }, ErrInvalidBetSize},
		{"nan raise size", func(c *Config) { c.Streets[StreetRiver].Raise = []float64{math.NaN()} }, ErrInvalidBetSize},
		{"infinite bet", func(c *Config) { c.Streets[StreetRiver].Bet = []float64{math.Inf(1)} }, ErrInvalidBetSize},
		{"raise without bet", func(c *Config) {
			c.Streets[StreetRiver] = StreetSizes{Raise: []float64{1}}
		}, ErrInvalidBetSize},
		{"threshold above one", func(c *Config) { c.AllInThreshold = 1.5 }, ErrInvalidBetSize},
		{"negative raises", func(c *Config) { c.MaxRaises = -1 }, ErrInvalidBetSize},
		{"two card board", func(c *Config) { c.Board = mustBoard(t, "Kh 9s") }, handrange.ErrInvalidBoard},
		{"icm without payouts", func(c *Config) { c.ICM = &ICMConfig{OtherStacks: []int{100}} }, ErrInvalidICM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := potOnly(board, 100, 100)
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	assert.NoError(t, potOnly(board, 100, 100).Validate())
	assert.NoError(t, DefaultConfig(board, 100, 100).Validate())
}

func TestBuildRiverShoveOrCheck(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	tr, err := Build(potOnly(board, 100, 100), mustPair(t, board, "AA", "22"), BuildOptions{})
	require.NoError(t, err)

	// root: check | all-in 100
	//   check: check (showdown) | all-in 100 -> fold | call
	//   all-in 100: fold | call
	require.Len(t, tr.Nodes, 9)
	assert.Equal(t, []Action{{Kind: ActionCheck}, {Kind: ActionAllIn, Amount: 100}}, tr.NodeActions(Root))

	kinds := make([]Kind, len(tr.Nodes))
	for i, n := range tr.Nodes {
		kinds[i] = n.Kind
	}
	assert.Equal(t, []Kind{
		NodeDecision,
		NodeDecision, NodeDecision,
		NodeShowdown, NodeDecision,
		NodeFold, NodeShowdown,
		NodeFold, NodeShowdown,
	}, kinds)

	facing := tr.Nodes[2]
	assert.Equal(t, uint8(1), facing.Player)
	assert.Equal(t, []Action{{Kind: ActionFold}, {Kind: ActionCall, Amount: 100}}, tr.NodeActions(2))
	assert.Equal(t, 300, tr.Pot(8))

	fold := tr.Nodes[7]
	assert.Equal(t, uint8(1), fold.Player, "player 1 folded")
	pay := tr.Payoffs[fold.Payoff]
	assert.Equal(t, 50.0, pay.Win[0])
	assert.Equal(t, -50.0, pay.Lose[1])

	show := tr.Payoffs[tr.Nodes[8].Payoff]
	assert.Equal(t, 150.0, show.Win[1])
	assert.Equal(t, -150.0, show.Lose[0])
	assert.Zero(t, show.Tie[0])

	require.Len(t, tr.Showdowns, 1)
	stats := tr.Stats()
	assert.Equal(t, 4, stats.Decisions)
	assert.Equal(t, 5, stats.Terminals)
	// AA keeps six combos, 22 loses the deuce of spades to the board.
	assert.Equal(t, 2*6*2+2*3*2, stats.Slots)
	assert.Equal(t, stats.Slots, tr.Arena.Slots())
}

func TestBuildIsDeterministic(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	cfg := DefaultConfig(board, 60, 200)
	ranges := mustPair(t, board, "AA,KK,AQs,T9s", "QQ,JJ,KQ,98s")

	a, err := Build(cfg, ranges, BuildOptions{Threads: 1})
	require.NoError(t, err)
	b, err := Build(cfg, ranges, BuildOptions{Threads: 4})
	require.NoError(t, err)

	require.Equal(t, len(a.Nodes), len(b.Nodes))
	assert.Equal(t, a.Nodes, b.Nodes)
	assert.Equal(t, a.Actions, b.Actions)
	assert.Equal(t, a.Deals, b.Deals)
	assert.Equal(t, a.Arena.Slots(), b.Arena.Slots())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	other := cfg
	other.Streets[StreetRiver].Bet = []float64{0.33, 0.67}
	c, err := Build(other, ranges, BuildOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestFingerprintCoversPayoffsAndWeights(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	cfg := potOnly(board, 100, 100)
	chips, err := Build(cfg, mustPair(t, board, "AA", "22"), BuildOptions{})
	require.NoError(t, err)

	withICM := cfg
	withICM.ICM = &ICMConfig{Payouts: []int{50, 30, 20}, OtherStacks: []int{150, 150}}
	icm, err := Build(withICM, mustPair(t, board, "AA", "22"), BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, chips.Nodes, icm.Nodes)
	assert.NotEqual(t, chips.Fingerprint(), icm.Fingerprint())

	halved, err := Build(cfg, mustPair(t, board, "AA:0.5", "22"), BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, chips.Ranges.Players[0].Hands, halved.Ranges.Players[0].Hands)
	assert.NotEqual(t, chips.Fingerprint(), halved.Fingerprint())
}

// walk visits every node reachable from the root, passing the committed
// chips along the path.
func walk(t *testing.T, tr *Tree, fn func(idx uint32, committed int)) {
	t.Helper()
	type item struct {
		idx       uint32
		committed int
	}
	stack := []item{{Root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(it.idx, it.committed)

		n := tr.Nodes[it.idx]
		switch n.Kind {
		case NodeDecision:
			for k, a := range tr.NodeActions(it.idx) {
				stack = append(stack, item{n.Children + uint32(k), it.committed + a.Amount})
			}
		case NodeChance:
			for k := range n.NumChildren {
				stack = append(stack, item{n.Children + uint32(k), it.committed})
			}
		}
	}
}

func TestPotIsConserved(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	cfg := DefaultConfig(board, 60, 200)
	tr, err := Build(cfg, mustPair(t, board, "AA,KK,AQs", "QQ,JJ,KQ"), BuildOptions{})
	require.NoError(t, err)

	visited := 0
	walk(t, tr, func(idx uint32, committed int) {
		visited++
		n := tr.Nodes[idx]
		require.Equal(t, committed, n.Contrib[0]+n.Contrib[1], "node %d", idx)
		require.Equal(t, cfg.Pot+committed, tr.Pot(idx))
		require.LessOrEqual(t, n.Contrib[0], cfg.Stack)
		require.LessOrEqual(t, n.Contrib[1], cfg.Stack)

		switch n.Kind {
		case NodeShowdown:
			require.Equal(t, n.Contrib[0], n.Contrib[1])
			require.Equal(t, 5, n.Board.CountCards())
			pay := tr.Payoffs[n.Payoff]
			require.Equal(t, pay.Win[0], -pay.Lose[1], "zero sum")
		case NodeDecision:
			p := n.Player
			for k, a := range tr.NodeActions(idx) {
				child := tr.Nodes[n.Children+uint32(k)]
				require.Equal(t, n.Contrib[p]+a.Amount, child.Contrib[p])
				require.Equal(t, n.Contrib[1-p], child.Contrib[1-p])
			}
		}
	})
	assert.Equal(t, len(tr.Nodes), visited, "every node is reachable exactly once")
}

func TestAllInRunsOutToTheRiver(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c")
	cfg := Config{Board: board, Pot: 100, Stack: 50}
	for s := range cfg.Streets {
		cfg.Streets[s] = StreetSizes{AllIn: true}
	}
	tr, err := Build(cfg, mustPair(t, board, "AA", "KK"), BuildOptions{})
	require.NoError(t, err)

	// all-in then call on the flop: chance (turn) -> chance (river) -> showdown
	root := tr.Nodes[Root]
	shove := tr.Nodes[root.Children+1]
	require.Equal(t, NodeDecision, shove.Kind)
	call := shove.Children + 1
	require.Equal(t, NodeChance, tr.Nodes[call].Kind)

	walk(t, tr, func(idx uint32, _ int) {
		n := tr.Nodes[idx]
		if n.Contrib[0] == cfg.Stack && n.Contrib[1] == cfg.Stack {
			assert.NotEqual(t, NodeDecision, n.Kind, "no decisions once both players are all in")
		}
	})
	turn := tr.Nodes[tr.Nodes[call].Children]
	assert.Equal(t, NodeChance, turn.Kind)
	river := tr.Nodes[turn.Children]
	assert.Equal(t, NodeShowdown, river.Kind)
}

func TestRaiseCap(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	cfg := Config{Board: board, Pot: 10, Stack: 10000, MaxRaises: 1}
	cfg.Streets[StreetRiver] = StreetSizes{Bet: []float64{0.5}, Raise: []float64{1}}
	tr, err := Build(cfg, mustPair(t, board, "AA", "KK"), BuildOptions{})
	require.NoError(t, err)

	// bet 5 -> raise 5 + 1.0*(20) = 25 -> only fold/call
	bet := tr.Nodes[Root].Children + 1
	raise := tr.Nodes[bet].Children + 2
	assert.Equal(t, []Action{{Kind: ActionFold}, {Kind: ActionCall, Amount: 5}, {Kind: ActionRaise, Amount: 25}}, tr.NodeActions(bet))
	assert.Equal(t, []Action{{Kind: ActionFold}, {Kind: ActionCall, Amount: 20}}, tr.NodeActions(raise))
}

func TestAllInThresholdAndDeduplication(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	cfg := Config{Board: board, Pot: 100, Stack: 150, AllInThreshold: 0.6}
	cfg.Streets[StreetRiver] = StreetSizes{Bet: []float64{0.5, 1.0, 2.0}, AllIn: true}
	tr, err := Build(cfg, mustPair(t, board, "AA", "KK"), BuildOptions{})
	require.NoError(t, err)

	// 50 stays a bet; 100 crosses 0.6*150 and 200 exceeds the stack, both
	// collapse into a single all-in.
	assert.Equal(t, []Action{
		{Kind: ActionCheck},
		{Kind: ActionBet, Amount: 50},
		{Kind: ActionAllIn, Amount: 150},
	}, tr.NodeActions(Root))
}

func TestCardRemoval(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	tr, err := Build(potOnly(board, 60, 120), mustPair(t, board, "QQ,JJ,AKs", "77,22,AK"), BuildOptions{})
	require.NoError(t, err)

	for _, set := range tr.Ranges.Players {
		for _, h := range set.Hands {
			assert.False(t, h.Overlaps(board))
		}
	}
	for _, d := range tr.Deals {
		assert.False(t, board.HasCard(d.Card))
	}
	for _, table := range tr.Showdowns {
		for p := range 2 {
			live := 0
			for i, h := range tr.Ranges.Players[p].Hands {
				if h.Overlaps(table.Board) {
					assert.Zero(t, table.Strength[p][i])
					continue
				}
				live++
				assert.NotZero(t, table.Strength[p][i])
			}
			require.Len(t, table.Order[p], live)
			for k := 1; k < len(table.Order[p]); k++ {
				assert.LessOrEqual(t, table.Strength[p][table.Order[p][k-1]], table.Strength[p][table.Order[p][k]])
			}
		}
	}
}

func TestIsomorphicDeals(t *testing.T) {
	board := mustBoard(t, "Ah Kh 7h")
	ranges := mustPair(t, board, "QQ,JTs", "QQ,T9s")
	cfg := potOnly(board, 100, 100)

	plain, err := Build(cfg, ranges, BuildOptions{})
	require.NoError(t, err)
	assert.Zero(t, plain.Stats().IsoDeals)

	cfg.Isomorphism = true
	iso, err := Build(cfg, ranges, BuildOptions{})
	require.NoError(t, err)
	assert.Less(t, len(iso.Nodes), len(plain.Nodes))
	assert.Positive(t, iso.Stats().IsoDeals)

	// Turn deals at the first chance node: clubs and hearts are canonical,
	// diamonds and spades map onto clubs.
	var chance uint32
	walk(t, iso, func(idx uint32, _ int) {
		if chance == 0 && iso.Nodes[idx].Kind == NodeChance {
			chance = idx
		}
	})
	require.NotZero(t, chance)
	deals := iso.NodeDeals(chance)
	require.Len(t, deals, 49)
	assert.Equal(t, 23, int(iso.Nodes[chance].NumChildren))

	n := iso.Nodes[chance]
	for _, d := range deals {
		if !d.Iso() {
			assert.Contains(t, []uint8{poker.Clubs, poker.Hearts}, d.Card.Suit())
			continue
		}
		sw := iso.Swaps[d.Swap]
		assert.Equal(t, poker.Clubs, sw.A)
		canonical := iso.Deals[n.Edges+indexOfChild(deals, d.Child)].Card
		assert.Equal(t, d.Card, poker.SwapCard(canonical, sw.A, sw.B))
		for p := range 2 {
			for i, j := range sw.Perm[p] {
				require.GreaterOrEqual(t, j, int32(0))
				assert.Equal(t, poker.SwapSuits(iso.Ranges.Players[p].Hands[i], sw.A, sw.B), iso.Ranges.Players[p].Hands[j])
			}
		}
	}
}

func indexOfChild(deals []Deal, child uint32) uint32 {
	for i, d := range deals {
		if !d.Iso() && d.Child == child {
			return uint32(i)
		}
	}
	return 0
}

func TestIsomorphismNeedsSymmetricRanges(t *testing.T) {
	board := mustBoard(t, "Ah Kh 7h")
	cfg := potOnly(board, 100, 100)
	cfg.Isomorphism = true
	tr, err := Build(cfg, mustPair(t, board, "QcQd", "QQ"), BuildOptions{})
	require.NoError(t, err)

	// QcQd breaks club/spade and diamond/spade symmetry but keeps clubs and
	// diamonds interchangeable.
	for _, d := range tr.Deals {
		if d.Iso() {
			sw := tr.Swaps[d.Swap]
			assert.Equal(t, [2]uint8{poker.Clubs, poker.Diamonds}, [2]uint8{sw.A, sw.B})
		}
	}
}

func TestAllocators(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	cfg := potOnly(board, 60, 120)
	ranges := mustPair(t, board, "AA,KK", "QQ,JJ")

	tracking := &TrackingAllocator{}
	tr, err := Build(cfg, ranges, BuildOptions{Allocator: tracking})
	require.NoError(t, err)
	assert.Equal(t, 2, tracking.Allocs())
	assert.Equal(t, int64(2*4*tr.Arena.Slots()), tracking.Bytes())
	assert.Equal(t, tracking.Bytes(), tr.Arena.Bytes())

	bounded := NewBoundedAllocator(tr.Arena.Slots())
	_, err = Build(cfg, ranges, BuildOptions{Allocator: bounded})
	assert.ErrorIs(t, err, ErrArenaExhausted)
	assert.Equal(t, tr.Arena.Slots(), bounded.Used(), "first buffer fits, second does not")

	roomy := NewBoundedAllocator(2 * tr.Arena.Slots())
	_, err = Build(cfg, ranges, BuildOptions{Allocator: roomy})
	assert.NoError(t, err)
}

func TestRegionsAreDisjoint(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	tr, err := Build(DefaultConfig(board, 60, 200), mustPair(t, board, "AA,KK,AQs", "QQ,JJ,KQ"), BuildOptions{})
	require.NoError(t, err)

	next := uint64(0)
	for i, n := range tr.Nodes {
		if n.Kind != NodeDecision {
			continue
		}
		require.Equal(t, next, n.Offset, "node %d", i)
		regret, strategy := tr.Region(uint32(i))
		require.Len(t, regret, int(n.NumEdges)*tr.Hands(int(n.Player)))
		require.Len(t, strategy, len(regret))
		next += uint64(len(regret))
	}
	assert.Equal(t, uint64(tr.Arena.Slots()), next)

	regret, _ := tr.Region(Root)
	regret[0] = 3
	tr.Arena.Reset()
	assert.Zero(t, tr.Arena.Regret[0])
}

func TestRestore(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	cfg := potOnly(board, 60, 120)
	cfg.Isomorphism = true
	ranges := mustPair(t, board, "AA,KK", "AA,KK")
	tr, err := Build(cfg, ranges, BuildOptions{})
	require.NoError(t, err)

	restored, err := Restore(cfg, ranges, tr.Topology(), tr.Arena, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, tr.Fingerprint(), restored.Fingerprint())
	require.Len(t, restored.Showdowns, len(tr.Showdowns))
	assert.Equal(t, tr.Showdowns[0].Order, restored.Showdowns[0].Order)
	assert.Equal(t, len(tr.Swaps), len(restored.Swaps))

	topo := tr.Topology()
	topo.Nodes = append([]Node(nil), topo.Nodes...)
	topo.Nodes[0].Children = uint32(len(topo.Nodes))
	_, err = Restore(cfg, ranges, topo, tr.Arena, BuildOptions{})
	assert.ErrorIs(t, err, ErrInvalidTopology)

	short := &Arena{Regret: tr.Arena.Regret[:1], Strategy: tr.Arena.Strategy[:1]}
	_, err = Restore(cfg, ranges, tr.Topology(), short, BuildOptions{})
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestBuildRejectsMismatchedBoard(t *testing.T) {
	board := mustBoard(t, "Qs Jh 2c 7d")
	other := mustBoard(t, "Qs Jh 2c 8d")
	_, err := Build(potOnly(board, 60, 120), mustPair(t, other, "AA", "KK"), BuildOptions{})
	assert.ErrorIs(t, err, handrange.ErrBoardConflict)
}

func TestPotValue(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	cfg := potOnly(board, 100, 100)
	assert.Equal(t, 100.0, cfg.PotValue())

	cfg.ICM = &ICMConfig{Payouts: []int{50, 30, 20}, OtherStacks: []int{150, 150}}
	tr, err := Build(cfg, mustPair(t, board, "AA", "22"), BuildOptions{})
	require.NoError(t, err)

	// check-check is the pot changing hands with nothing else committed
	found := false
	for _, n := range tr.Nodes {
		if n.Kind == NodeShowdown && n.Contrib == [2]int{} {
			pay := tr.Payoffs[n.Payoff]
			assert.InDelta(t, pay.Win[0]-pay.Lose[0], cfg.PotValue(), 1e-12)
			found = true
		}
	}
	require.True(t, found)
	assert.Less(t, cfg.PotValue(), 50.0)
}

func TestICMPayoffs(t *testing.T) {
	board := mustBoard(t, "Kh 9s 4c 7d 2s")
	cfg := potOnly(board, 100, 100)
	cfg.ICM = &ICMConfig{Payouts: []int{50, 30, 20}, OtherStacks: []int{150, 150}}
	tr, err := Build(cfg, mustPair(t, board, "AA", "22"), BuildOptions{})
	require.NoError(t, err)

	pay := tr.Payoffs[tr.Nodes[8].Payoff]
	assert.Positive(t, pay.Win[0])
	assert.Negative(t, pay.Lose[0])
	assert.Greater(t, -pay.Lose[0], pay.Win[0], "losing a stack costs more equity than doubling gains")
	assert.InDelta(t, 0, pay.Tie[0], 1e-9)
}
