// Package tree builds the post-flop betting tree, lays its nodes out in an
// index-addressed arena and caches showdown strengths for every river board
// the tree can reach.
package tree

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/poker"
)

// Root is the index of the root node.
const Root uint32 = 0

// ErrInvalidTopology means a stored node table is inconsistent.
var ErrInvalidTopology = errors.New("invalid tree topology")

// Tree is an immutable game tree with mutable accumulators.
type Tree struct {
	Config    Config
	Ranges    *handrange.Pair
	Nodes     []Node
	Actions   []Action
	Deals     []Deal
	Swaps     []Swap
	Payoffs   []Payoff
	Showdowns []*ShowdownTable
	Arena     *Arena
}

// Stats summarises the size of a tree.
type Stats struct {
	Nodes     int
	Decisions int
	Chance    int
	Terminals int
	IsoDeals  int
	Slots     int
}

// Hands returns the number of private hands of player p.
func (t *Tree) Hands(p int) int {
	return t.Ranges.Players[p].Len()
}

// NodeActions returns the actions of a decision node.
func (t *Tree) NodeActions(idx uint32) []Action {
	n := &t.Nodes[idx]
	if n.Kind != NodeDecision {
		return nil
	}
	return t.Actions[n.Edges : n.Edges+uint32(n.NumEdges)]
}

// NodeDeals returns the deals of a chance node.
func (t *Tree) NodeDeals(idx uint32) []Deal {
	n := &t.Nodes[idx]
	if n.Kind != NodeChance {
		return nil
	}
	return t.Deals[n.Edges : n.Edges+uint32(n.NumEdges)]
}

// Pot returns the pot at a node.
func (t *Tree) Pot(idx uint32) int {
	n := &t.Nodes[idx]
	return t.Config.Pot + n.Contrib[0] + n.Contrib[1]
}

// RegionSize returns the number of accumulator slots of a node.
func (t *Tree) RegionSize(idx uint32) int {
	n := &t.Nodes[idx]
	if n.Kind != NodeDecision {
		return 0
	}
	return int(n.NumEdges) * t.Hands(int(n.Player))
}

// Region returns a decision node's regret and strategy-sum regions, laid out
// [action][hand].
func (t *Tree) Region(idx uint32) (regret, strategy []float32) {
	return t.Arena.Slice(t.Nodes[idx].Offset, t.RegionSize(idx))
}

// layout assigns accumulator offsets in node order and returns the total.
func (t *Tree) layout() int {
	total := 0
	for i := range t.Nodes {
		if t.Nodes[i].Kind != NodeDecision {
			continue
		}
		t.Nodes[i].Offset = uint64(total)
		total += t.RegionSize(uint32(i))
	}
	return total
}

// Stats counts nodes by kind.
func (t *Tree) Stats() Stats {
	s := Stats{Nodes: len(t.Nodes)}
	for i := range t.Nodes {
		switch t.Nodes[i].Kind {
		case NodeDecision:
			s.Decisions++
			s.Slots += t.RegionSize(uint32(i))
		case NodeChance:
			s.Chance++
		default:
			s.Terminals++
		}
	}
	for _, d := range t.Deals {
		if d.Iso() {
			s.IsoDeals++
		}
	}
	return s
}

// Fingerprint hashes the game a tree describes: node table, edges,
// accumulator layout, terminal payoffs and both weighted ranges. Two trees
// with the same fingerprint address accumulators identically and solve the
// same game.
func (t *Tree) Fingerprint() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, n := range t.Nodes {
		buf = buf[:0]
		buf = append(buf, byte(n.Kind), n.Player, byte(n.Street))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.Board))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.Contrib[0]))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.Contrib[1]))
		buf = binary.LittleEndian.AppendUint32(buf, n.Children)
		buf = binary.LittleEndian.AppendUint16(buf, n.NumChildren)
		buf = binary.LittleEndian.AppendUint32(buf, n.Edges)
		buf = binary.LittleEndian.AppendUint16(buf, n.NumEdges)
		buf = binary.LittleEndian.AppendUint64(buf, n.Offset)
		_, _ = h.Write(buf)
	}
	for _, a := range t.Actions {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(a.Kind)<<56|uint64(a.Amount))
		_, _ = h.Write(buf)
	}
	for _, d := range t.Deals {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(d.Card))
		buf = binary.LittleEndian.AppendUint32(buf, d.Child)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(d.Swap))
		_, _ = h.Write(buf)
	}
	for _, p := range t.Payoffs {
		buf = buf[:0]
		for _, v := range [...]float64{p.Win[0], p.Win[1], p.Lose[0], p.Lose[1], p.Tie[0], p.Tie[1]} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		_, _ = h.Write(buf)
	}
	for p := range 2 {
		set := t.Ranges.Players[p]
		for i, hand := range set.Hands {
			buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(hand))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(set.Weights[i]))
			_, _ = h.Write(buf)
		}
	}
	return h.Sum64()
}

// Topology is the stored form of a tree's shape.
type Topology struct {
	Nodes   []Node
	Actions []Action
	Deals   []Deal
	Swaps   [][2]uint8
	Payoffs []Payoff
}

// Topology returns the tree's shape for persistence.
func (t *Tree) Topology() Topology {
	swaps := make([][2]uint8, len(t.Swaps))
	for i, s := range t.Swaps {
		swaps[i] = [2]uint8{s.A, s.B}
	}
	return Topology{
		Nodes:   t.Nodes,
		Actions: t.Actions,
		Deals:   t.Deals,
		Swaps:   swaps,
		Payoffs: t.Payoffs,
	}
}

// Restore reassembles a tree from a stored topology and accumulator arena
// without re-expanding it. Showdown tables are recomputed.
func Restore(cfg Config, ranges *handrange.Pair, topo Topology, arena *Arena, opts BuildOptions) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ranges == nil || ranges.Board != cfg.Board {
		return nil, fmt.Errorf("%w: ranges do not match board", ErrInvalidTopology)
	}
	if arena == nil || len(arena.Regret) != len(arena.Strategy) {
		return nil, fmt.Errorf("%w: accumulator buffers differ in size", ErrInvalidTopology)
	}

	t := &Tree{
		Config:  cfg,
		Ranges:  ranges,
		Nodes:   topo.Nodes,
		Actions: topo.Actions,
		Deals:   topo.Deals,
		Payoffs: topo.Payoffs,
		Arena:   arena,
	}
	for _, s := range topo.Swaps {
		if s[0] >= 4 || s[1] >= 4 {
			return nil, fmt.Errorf("%w: swap %v", ErrInvalidTopology, s)
		}
		t.Swaps = append(t.Swaps, newSwap(ranges, s[0], s[1]))
	}

	boards, err := t.check()
	if err != nil {
		return nil, err
	}
	t.Showdowns, err = buildShowdowns(context.Background(), boards, ranges, opts.Threads)
	if err != nil {
		return nil, fmt.Errorf("showdown tables: %w", err)
	}
	return t, nil
}

// check validates every index in the node table and returns the showdown
// boards in table order.
func (t *Tree) check() ([]poker.Hand, error) {
	if len(t.Nodes) == 0 || t.Nodes[Root].Kind != NodeDecision {
		return nil, fmt.Errorf("%w: missing root decision", ErrInvalidTopology)
	}
	var boards []poker.Hand
	slots := 0
	for i := range t.Nodes {
		n := &t.Nodes[i]
		bad := func(what string) error {
			return fmt.Errorf("%w: node %d: %s", ErrInvalidTopology, i, what)
		}
		if n.Player > 1 || n.Street >= NumStreets {
			return nil, bad("player or street out of range")
		}
		children := uint64(n.Children) + uint64(n.NumChildren)
		edges := uint64(n.Edges) + uint64(n.NumEdges)
		switch n.Kind {
		case NodeDecision:
			if children > uint64(len(t.Nodes)) || edges > uint64(len(t.Actions)) || n.NumChildren != n.NumEdges || n.NumEdges == 0 {
				return nil, bad("children or actions out of range")
			}
			if n.Children <= uint32(i) {
				return nil, bad("child precedes parent")
			}
			if n.Offset != uint64(slots) {
				return nil, bad("accumulator offset out of order")
			}
			slots += t.RegionSize(uint32(i))
		case NodeChance:
			if children > uint64(len(t.Nodes)) || edges > uint64(len(t.Deals)) || n.NumChildren == 0 {
				return nil, bad("children or deals out of range")
			}
			if n.Children <= uint32(i) {
				return nil, bad("child precedes parent")
			}
			for _, d := range t.NodeDeals(uint32(i)) {
				if d.Child < n.Children || uint64(d.Child) >= children {
					return nil, bad("deal points outside its children")
				}
				if d.Swap >= int16(len(t.Swaps)) {
					return nil, bad("deal swap out of range")
				}
			}
		case NodeFold, NodeShowdown:
			if n.Payoff < 0 || int(n.Payoff) >= len(t.Payoffs) {
				return nil, bad("payoff out of range")
			}
			if n.Kind == NodeShowdown {
				if n.Table < 0 || n.Board.CountCards() != 5 {
					return nil, bad("showdown without a river board")
				}
				if int(n.Table) > len(boards) {
					return nil, bad("showdown table out of order")
				}
				if int(n.Table) == len(boards) {
					boards = append(boards, n.Board)
				} else if boards[n.Table] != n.Board {
					return nil, bad("showdown table board mismatch")
				}
			}
		default:
			return nil, bad("unknown kind")
		}
	}
	if slots != t.Arena.Slots() {
		return nil, fmt.Errorf("%w: layout needs %d slots, arena has %d", ErrInvalidTopology, slots, t.Arena.Slots())
	}
	return boards, nil
}
