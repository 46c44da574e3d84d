// Package runtime answers strategy queries against a solved snapshot.
package runtime

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/postflop/internal/snapshot"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
)

var (
	// ErrUnknownLine means a line of play leaves the solved tree.
	ErrUnknownLine = errors.New("line not in tree")
	// ErrUnknownHand means a hand is not in the acting player's range at a
	// spot.
	ErrUnknownHand = errors.New("hand not in range")
)

// Policy exposes read-only access to a solved tree.
type Policy struct {
	solver *solver.Solver
}

// Load restores a policy from a snapshot file.
func Load(path string) (*Policy, error) {
	st, err := snapshot.Load(path)
	if err != nil {
		return nil, err
	}
	cfg := solver.DefaultConfig()
	cfg.Schedule = st.Meta.Schedule
	s, err := solver.New(st.Tree, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.Restore(st.Checkpoint()); err != nil {
		return nil, err
	}
	return New(s), nil
}

// New wraps a solver. The policy reads its accumulators as they are at query
// time.
func New(s *solver.Solver) *Policy {
	return &Policy{solver: s}
}

// Solver returns the underlying solver.
func (p *Policy) Solver() *solver.Solver {
	if p == nil {
		return nil
	}
	return p.solver
}

// Spot is the position reached by a line of play from the root.
type Spot struct {
	Line []string
	Node uint32
	Kind tree.Kind
	// Player is the actor at a decision spot.
	Player int
	// Board holds the cards actually dealt, which may differ in suit from
	// the canonical node the spot shares accumulators with.
	Board   poker.Hand
	Pot     int
	Actions []tree.Action
	// Reach is each player's probability of playing to this spot, indexed
	// like the root ranges.
	Reach [2][]float64

	suits [4]uint8
	index [2][]int32
}

// ParseLine splits a comma-separated line such as "check, bet 67, Qh".
func ParseLine(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" && !strings.EqualFold(part, "root") {
			out = append(out, part)
		}
	}
	return out
}

// Find follows line from the root. Decision steps name an action by its full
// label ("bet 67") or, when unambiguous, by its kind ("bet"); chance steps
// name the card dealt.
func (p *Policy) Find(line []string) (*Spot, error) {
	if p == nil || p.solver == nil {
		return nil, errors.New("nil policy")
	}
	t := p.solver.Tree()
	sp := &Spot{Line: line, Node: tree.Root, Board: t.Config.Board, suits: [4]uint8{0, 1, 2, 3}}
	for pl := range 2 {
		set := t.Ranges.Players[pl]
		sp.Reach[pl] = append([]float64(nil), set.Weights...)
		sp.index[pl] = make([]int32, set.Len())
		for i := range sp.index[pl] {
			sp.index[pl][i] = int32(i)
		}
	}

	for step, tok := range line {
		n := &t.Nodes[sp.Node]
		switch n.Kind {
		case tree.NodeDecision:
			a, err := matchAction(t.NodeActions(sp.Node), tok)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", step+1, err)
			}
			pl := int(n.Player)
			strategy := p.solver.AverageStrategy(sp.Node)
			for i, j := range sp.index[pl] {
				if j < 0 {
					sp.Reach[pl][i] = 0
					continue
				}
				sp.Reach[pl][i] *= strategy[a][j]
			}
			sp.Node = n.Children + uint32(a)
		case tree.NodeChance:
			if err := p.deal(sp, n, tok); err != nil {
				return nil, fmt.Errorf("step %d: %w", step+1, err)
			}
		default:
			return nil, fmt.Errorf("%w: step %d %q follows a terminal node", ErrUnknownLine, step+1, tok)
		}
	}

	n := &t.Nodes[sp.Node]
	sp.Kind = n.Kind
	sp.Player = int(n.Player)
	sp.Pot = t.Pot(sp.Node)
	sp.Actions = t.NodeActions(sp.Node)
	return sp, nil
}

func (p *Policy) deal(sp *Spot, n *tree.Node, tok string) error {
	t := p.solver.Tree()
	card, err := poker.ParseCard(tok)
	if err != nil {
		return fmt.Errorf("%w: %q is not a card", ErrUnknownLine, tok)
	}
	if sp.Board.HasCard(card) {
		return fmt.Errorf("%w: %s is already on the board", ErrUnknownLine, card)
	}
	canonical := poker.NewCard(card.Rank(), sp.suits[card.Suit()])
	var deal *tree.Deal
	for i, d := range t.NodeDeals(sp.Node) {
		if d.Card == canonical {
			deal = &t.NodeDeals(sp.Node)[i]
			break
		}
	}
	if deal == nil {
		return fmt.Errorf("%w: %s cannot be dealt", ErrUnknownLine, card)
	}

	sp.Board.AddCard(card)
	for pl := range 2 {
		for i, h := range t.Ranges.Players[pl].Hands {
			if h.HasCard(card) {
				sp.Reach[pl][i] = 0
			}
		}
	}
	if deal.Iso() {
		swap := t.Swaps[deal.Swap]
		for s, c := range sp.suits {
			switch c {
			case swap.A:
				sp.suits[s] = swap.B
			case swap.B:
				sp.suits[s] = swap.A
			}
		}
		for pl := range 2 {
			for i, j := range sp.index[pl] {
				if j >= 0 {
					sp.index[pl][i] = swap.Perm[pl][j]
				}
			}
		}
	}
	sp.Node = deal.Child
	return nil
}

func matchAction(actions []tree.Action, tok string) (int, error) {
	tok = strings.ToLower(strings.Join(strings.Fields(tok), " "))
	found := -1
	for a, act := range actions {
		if act.String() == tok {
			return a, nil
		}
		if act.Kind.String() == tok {
			if found >= 0 {
				return 0, fmt.Errorf("%w: %q is ambiguous", ErrUnknownLine, tok)
			}
			found = a
		}
	}
	if found < 0 {
		names := make([]string, len(actions))
		for a, act := range actions {
			names[a] = act.String()
		}
		return 0, fmt.Errorf("%w: no action %q (have %s)", ErrUnknownLine, tok, strings.Join(names, ", "))
	}
	return found, nil
}

// ActionWeights returns the average strategy of hand at a decision spot,
// indexed like Spot.Actions.
func (p *Policy) ActionWeights(sp *Spot, hand poker.Hand) ([]float64, error) {
	if p == nil || p.solver == nil {
		return nil, errors.New("nil policy")
	}
	if sp.Kind != tree.NodeDecision {
		return nil, fmt.Errorf("%w: %s node has no strategy", ErrUnknownLine, sp.Kind)
	}
	set := p.solver.Tree().Ranges.Players[sp.Player]
	i := set.Index(hand)
	if i < 0 || hand.Overlaps(sp.Board) || sp.index[sp.Player][i] < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHand, hand)
	}
	strategy := p.solver.AverageStrategy(sp.Node)
	out := make([]float64, len(strategy))
	for a := range strategy {
		out[a] = strategy[a][sp.index[sp.Player][i]]
	}
	return out, nil
}

// HandStrategy is one hand's action mix at a spot.
type HandStrategy struct {
	Hand    poker.Hand
	Reach   float64
	Weights []float64
}

// Strategies lists the mix of every hand the actor can still hold at a
// decision spot.
func (p *Policy) Strategies(sp *Spot) ([]HandStrategy, error) {
	if sp.Kind != tree.NodeDecision {
		return nil, fmt.Errorf("%w: %s node has no strategy", ErrUnknownLine, sp.Kind)
	}
	var out []HandStrategy
	for i, h := range p.solver.Tree().Ranges.Players[sp.Player].Hands {
		if sp.Reach[sp.Player][i] == 0 {
			continue
		}
		w, err := p.ActionWeights(sp, h)
		if err != nil {
			return nil, err
		}
		out = append(out, HandStrategy{Hand: h, Reach: sp.Reach[sp.Player][i], Weights: w})
	}
	return out, nil
}
