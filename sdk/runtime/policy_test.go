package runtime

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/internal/snapshot"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
	"github.com/lox/postflop/sdk/analysis"
)

func solve(t *testing.T, board, oop, ip string, iterations int) *solver.Solver {
	t.Helper()
	b, err := poker.ParseHand(board)
	require.NoError(t, err)
	a, err := analysis.ParseInput(oop)
	require.NoError(t, err)
	c, err := analysis.ParseInput(ip)
	require.NoError(t, err)
	ranges, err := handrange.NewPair(b, a, c)
	require.NoError(t, err)

	cfg := tree.Config{Board: b, Pot: 100, Stack: 100, Isomorphism: true}
	for s := range cfg.Streets {
		cfg.Streets[s] = tree.StreetSizes{Bet: []float64{1.0}}
	}
	tr, err := tree.Build(cfg, ranges, tree.BuildOptions{Threads: 1})
	require.NoError(t, err)
	s, err := solver.New(tr, solver.Config{MaxIterations: iterations, Schedule: solver.DefaultSchedule(), Threads: 1})
	require.NoError(t, err)
	_, err = s.Solve(context.Background(), nil)
	require.NoError(t, err)
	return s
}

func hand(t *testing.T, s string) poker.Hand {
	t.Helper()
	h, err := poker.ParseHand(s)
	require.NoError(t, err)
	return h
}

func TestParseLine(t *testing.T) {
	assert.Nil(t, ParseLine(""))
	assert.Nil(t, ParseLine("root"))
	assert.Equal(t, []string{"check", "bet 67", "Qh"}, ParseLine(" check,bet 67 , Qh,"))
}

func TestFindAndActionWeights(t *testing.T) {
	s := solve(t, "Kh 9s 4c 7d 3s", "AA,33", "22,KQ", 100)
	p := New(s)

	root, err := p.Find(nil)
	require.NoError(t, err)
	assert.Equal(t, tree.NodeDecision, root.Kind)
	assert.Equal(t, 0, root.Player)
	assert.Equal(t, 100, root.Pot)
	require.Len(t, root.Actions, 2)

	aces := hand(t, "AsAd")
	w, err := p.ActionWeights(root, aces)
	require.NoError(t, err)
	i := s.Tree().Ranges.Players[0].Index(aces)
	strategy := s.AverageStrategy(tree.Root)
	for a := range w {
		assert.Equal(t, strategy[a][i], w[a])
	}

	shove, err := p.Find([]string{"All-In"})
	require.NoError(t, err)
	assert.Equal(t, 1, shove.Player)
	assert.Equal(t, 200, shove.Pot)
	assert.InDelta(t, strategy[1][i], shove.Reach[0][i], 1e-12)

	_, err = p.ActionWeights(shove, aces)
	assert.ErrorIs(t, err, ErrUnknownHand, "aces belong to the other player")

	fold, err := p.Find([]string{"all-in 100", "fold"})
	require.NoError(t, err)
	assert.Equal(t, tree.NodeFold, fold.Kind)
	_, err = p.ActionWeights(fold, hand(t, "2c2d"))
	assert.ErrorIs(t, err, ErrUnknownLine)

	for _, line := range [][]string{
		{"bet 50"},
		{"all-in 100", "fold", "check"},
		{"check", "Qh"},
	} {
		_, err := p.Find(line)
		assert.ErrorIs(t, err, ErrUnknownLine, "%v", line)
	}
}

func TestStrategies(t *testing.T) {
	s := solve(t, "Kh 9s 4c 7d 3s", "AA,33", "22,KQ", 100)
	p := New(s)
	sp, err := p.Find([]string{"check"})
	require.NoError(t, err)
	hands, err := p.Strategies(sp)
	require.NoError(t, err)
	assert.Len(t, hands, s.Tree().Hands(1))
	for _, h := range hands {
		var sum float64
		for _, w := range h.Weights {
			sum += w
		}
		assert.InDelta(t, 1, sum, 1e-9, "%s", h.Hand)
		assert.InDelta(t, 1, h.Reach, 1e-12)
	}
}

func TestIsomorphicDealsShareStrategies(t *testing.T) {
	s := solve(t, "Kh 9h 4h 7h", "AA,QQ", "JJ,T9s", 20)
	p := New(s)

	clubs, err := p.Find([]string{"check", "check", "2c"})
	require.NoError(t, err)
	diamonds, err := p.Find([]string{"check", "check", "2d"})
	require.NoError(t, err)
	assert.Equal(t, clubs.Node, diamonds.Node, "both deals address one subtree")
	assert.True(t, diamonds.Board.HasCard(poker.NewCard(poker.Two, poker.Diamonds)))

	got, err := p.ActionWeights(diamonds, hand(t, "AsAd"))
	require.NoError(t, err)
	want, err := p.ActionWeights(clubs, hand(t, "AsAc"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = p.ActionWeights(diamonds, hand(t, "QdQc"))
	require.NoError(t, err)
	for i, h := range s.Tree().Ranges.Players[0].Hands {
		if h.HasCard(poker.NewCard(poker.Two, poker.Diamonds)) {
			assert.Zero(t, diamonds.Reach[0][i])
		}
	}
}

func TestLoad(t *testing.T) {
	s := solve(t, "Kh 9s 4c 7d 3s", "AA,33", "22,KQ", 20)
	path := filepath.Join(t.TempDir(), "spot.pfs")
	require.NoError(t, snapshot.Save(path, snapshot.Capture(s), snapshot.Options{Compress: true}))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.RunID(), p.Solver().RunID())
	assert.Equal(t, 20, p.Solver().Iteration())

	want, err := New(s).Find([]string{"check"})
	require.NoError(t, err)
	got, err := p.Find([]string{"check"})
	require.NoError(t, err)
	assert.Equal(t, want.Reach, got.Reach)

	_, err = Load(filepath.Join(t.TempDir(), "missing.pfs"))
	assert.ErrorIs(t, err, snapshot.ErrLoad)

	var nilPolicy *Policy
	_, err = nilPolicy.Find(nil)
	assert.Error(t, err)
	assert.Nil(t, nilPolicy.Solver())
}
