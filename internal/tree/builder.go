package tree

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/poker"
)

const maxNodes = math.MaxUint32

// BuildOptions carries the collaborators of tree construction.
type BuildOptions struct {
	// Allocator provides the accumulator buffers. Nil uses the heap.
	Allocator Allocator
	// Logger receives build statistics at debug level.
	Logger zerolog.Logger
	// Threads bounds parallel showdown table construction. Zero uses
	// GOMAXPROCS.
	Threads int
}

// state is the betting state carried to a node while expanding.
type state struct {
	street    Street
	board     poker.Hand
	contrib   [2]int
	actor     uint8
	raises    int
	runout    bool
	committed int
}

type pending struct {
	idx uint32
	st  state
}

type builder struct {
	cfg    Config
	ranges *handrange.Pair
	model  payoffModel
	t      *Tree

	stack     []pending
	symmetric [4][4]bool
	swaps     map[[2]uint8]int16
	boards    map[poker.Hand]int32
	order     []poker.Hand
}

// Build expands the game tree for cfg over the filtered ranges and allocates
// its accumulators. The result is a pure function of cfg and ranges.
func Build(cfg Config, ranges *handrange.Pair, opts BuildOptions) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ranges == nil {
		return nil, errors.New("tree: ranges are required")
	}
	if ranges.Board != cfg.Board {
		return nil, fmt.Errorf("%w: ranges were filtered against %s, tree board is %s",
			handrange.ErrBoardConflict, ranges.Board, cfg.Board)
	}
	street, err := cfg.RootStreet()
	if err != nil {
		return nil, err
	}

	b := &builder{
		cfg:    cfg,
		ranges: ranges,
		t:      &Tree{Config: cfg, Ranges: ranges},
		swaps:  make(map[[2]uint8]int16),
		boards: make(map[poker.Hand]int32),
	}
	if cfg.ICM != nil {
		b.model = newICMModel(cfg)
	} else {
		b.model = chipModel{pot: cfg.Pot}
	}
	for a := uint8(0); a < 4; a++ {
		for s := a + 1; s < 4; s++ {
			b.symmetric[a][s] = cfg.Isomorphism &&
				poker.SuitsInterchangeable(cfg.Board, a, s) &&
				ranges.SuitSymmetric(a, s)
		}
	}

	root := state{street: street, board: cfg.Board}
	if _, err := b.newNode(NodeDecision, root); err != nil {
		return nil, err
	}
	if err := b.expand(); err != nil {
		return nil, err
	}

	b.t.Showdowns, err = buildShowdowns(context.Background(), b.order, ranges, opts.Threads)
	if err != nil {
		return nil, fmt.Errorf("showdown tables: %w", err)
	}

	slots := b.t.layout()
	b.t.Arena, err = NewArena(opts.Allocator, slots)
	if err != nil {
		return nil, err
	}

	stats := b.t.Stats()
	opts.Logger.Debug().
		Int("nodes", stats.Nodes).
		Int("decisions", stats.Decisions).
		Int("chance", stats.Chance).
		Int("terminals", stats.Terminals).
		Int("iso_deals", stats.IsoDeals).
		Int("showdown_boards", len(b.t.Showdowns)).
		Int64("arena_bytes", b.t.Arena.Bytes()).
		Msg("Built game tree")
	return b.t, nil
}

func (b *builder) expand() error {
	for len(b.stack) > 0 {
		next := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		var err error
		switch b.t.Nodes[next.idx].Kind {
		case NodeDecision:
			err = b.expandDecision(next.idx, next.st)
		case NodeChance:
			err = b.expandChance(next.idx, next.st)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) newNode(kind Kind, st state) (uint32, error) {
	if uint64(len(b.t.Nodes)) >= maxNodes {
		return 0, fmt.Errorf("%w: more than %d nodes", ErrArenaExhausted, maxNodes)
	}
	idx := uint32(len(b.t.Nodes))
	n := Node{
		Kind:    kind,
		Player:  st.actor,
		Street:  st.street,
		Board:   st.board,
		Contrib: st.contrib,
		Payoff:  -1,
		Table:   -1,
	}

	if kind.Terminal() {
		if st.contrib[0]+st.contrib[1] != st.committed {
			return 0, fmt.Errorf("tree: pot not conserved at node %d: %v vs %d", idx, st.contrib, st.committed)
		}
		n.Payoff = int32(len(b.t.Payoffs))
		b.t.Payoffs = append(b.t.Payoffs, b.model.payoff(st.contrib))
	}
	if kind == NodeShowdown {
		if st.contrib[0] != st.contrib[1] {
			return 0, fmt.Errorf("tree: showdown with unequal contributions %v at node %d", st.contrib, idx)
		}
		if st.board.CountCards() != 5 {
			return 0, fmt.Errorf("tree: showdown before the river at node %d", idx)
		}
		table, ok := b.boards[st.board]
		if !ok {
			table = int32(len(b.order))
			b.boards[st.board] = table
			b.order = append(b.order, st.board)
		}
		n.Table = table
	}

	b.t.Nodes = append(b.t.Nodes, n)
	if kind == NodeDecision || kind == NodeChance {
		b.stack = append(b.stack, pending{idx: idx, st: st})
	}
	return idx, nil
}

// pushReversed makes the first child of the most recent expansion the next
// node popped, so nodes are expanded depth first in edge order.
func (b *builder) pushReversed(from int) {
	slices.Reverse(b.stack[from:])
}

func (b *builder) expandDecision(idx uint32, st state) error {
	acts := b.legalActions(st)
	first := uint32(len(b.t.Nodes))
	edges := uint32(len(b.t.Actions))
	b.t.Actions = append(b.t.Actions, acts...)

	mark := len(b.stack)
	for _, a := range acts {
		kind, next := b.apply(st, a)
		if _, err := b.newNode(kind, next); err != nil {
			return err
		}
	}
	b.pushReversed(mark)

	n := &b.t.Nodes[idx]
	n.Children, n.NumChildren = first, uint16(len(acts))
	n.Edges, n.NumEdges = edges, uint16(len(acts))
	return nil
}

func (b *builder) expandChance(idx uint32, st state) error {
	first := uint32(len(b.t.Nodes))
	edges := uint32(len(b.t.Deals))
	var canonical [poker.NumCards]uint32

	mark := len(b.stack)
	children := 0
	deck := poker.NewDeck(st.board)
	for _, c := range deck.Cards() {
		if low, ok := b.isoSuit(st.board, c.Suit()); ok {
			ref := poker.SwapCard(c, low, c.Suit())
			b.t.Deals = append(b.t.Deals, Deal{
				Card:  c,
				Child: canonical[ref.Index()],
				Swap:  b.swapIndex(low, c.Suit()),
			})
			continue
		}

		next := st
		next.street++
		next.board |= poker.Hand(c)
		next.actor = 0
		next.raises = 0
		kind := NodeDecision
		if st.runout {
			kind = NodeChance
			if next.street == StreetRiver {
				kind = NodeShowdown
			}
		}
		child, err := b.newNode(kind, next)
		if err != nil {
			return err
		}
		canonical[c.Index()] = child
		b.t.Deals = append(b.t.Deals, Deal{Card: c, Child: child, Swap: -1})
		children++
	}
	b.pushReversed(mark)

	n := &b.t.Nodes[idx]
	n.Children, n.NumChildren = first, uint16(children)
	n.Edges, n.NumEdges = edges, uint16(len(b.t.Deals)-int(edges))
	return nil
}

// isoSuit returns the lowest suit below s that s can be exchanged with at a
// chance node dealing on top of board.
func (b *builder) isoSuit(board poker.Hand, s uint8) (uint8, bool) {
	for low := uint8(0); low < s; low++ {
		if b.symmetric[low][s] && poker.SuitsInterchangeable(board, low, s) {
			return low, true
		}
	}
	return 0, false
}

func (b *builder) swapIndex(a, s uint8) int16 {
	key := [2]uint8{a, s}
	if idx, ok := b.swaps[key]; ok {
		return idx
	}
	idx := int16(len(b.t.Swaps))
	b.t.Swaps = append(b.t.Swaps, newSwap(b.ranges, a, s))
	b.swaps[key] = idx
	return idx
}

func newSwap(ranges *handrange.Pair, a, s uint8) Swap {
	return Swap{
		A: a,
		B: s,
		Perm: [2][]int32{
			ranges.Players[0].Permutation(a, s),
			ranges.Players[1].Permutation(a, s),
		},
	}
}

// apply returns the node reached by the actor taking a.
func (b *builder) apply(st state, a Action) (Kind, state) {
	p := st.actor
	next := st
	next.contrib[p] += a.Amount
	next.committed += a.Amount

	switch a.Kind {
	case ActionFold:
		return NodeFold, next
	case ActionCheck:
		if p == 0 {
			next.actor = 1
			return NodeDecision, next
		}
		return b.closeStreet(next)
	case ActionCall:
		return b.closeStreet(next)
	default:
		next.actor = 1 - p
		next.raises++
		return NodeDecision, next
	}
}

func (b *builder) closeStreet(st state) (Kind, state) {
	if st.street == StreetRiver {
		return NodeShowdown, st
	}
	if st.contrib[0] >= b.cfg.Stack || st.contrib[1] >= b.cfg.Stack {
		st.runout = true
	}
	return NodeChance, st
}

// legalActions lists the abstraction's actions for the actor: passive
// actions first, then bets by ascending amount.
func (b *builder) legalActions(st state) []Action {
	p, q := st.actor, 1-st.actor
	pot := b.cfg.Pot + st.contrib[0] + st.contrib[1]
	toCall := st.contrib[q] - st.contrib[p]
	remaining := b.cfg.Stack - st.contrib[p]
	sizes := b.cfg.Streets[st.street]

	var passive, aggressive []Action
	if toCall > 0 {
		passive = []Action{{Kind: ActionFold}, {Kind: ActionCall, Amount: min(toCall, remaining)}}
		canRaise := remaining > toCall && b.cfg.Stack > st.contrib[q] && st.raises <= b.cfg.MaxRaises
		if canRaise {
			for _, f := range sizes.Raise {
				amount := toCall + int(math.Round(f*float64(pot+toCall)))
				aggressive = b.addSized(aggressive, ActionRaise, amount, 2*toCall, st.contrib[p], remaining)
			}
			if sizes.AllIn {
				aggressive = b.addSized(aggressive, ActionAllIn, remaining, remaining, st.contrib[p], remaining)
			}
		}
	} else {
		passive = []Action{{Kind: ActionCheck}}
		if remaining > 0 {
			for _, f := range sizes.Bet {
				amount := int(math.Round(f * float64(pot)))
				aggressive = b.addSized(aggressive, ActionBet, amount, 1, st.contrib[p], remaining)
			}
			if sizes.AllIn {
				aggressive = b.addSized(aggressive, ActionAllIn, remaining, remaining, st.contrib[p], remaining)
			}
		}
	}

	slices.SortStableFunc(aggressive, func(x, y Action) int {
		return cmp.Compare(x.Amount, y.Amount)
	})
	return append(passive, aggressive...)
}

func (b *builder) addSized(acts []Action, kind ActionKind, amount, minimum, contrib, remaining int) []Action {
	amount = max(amount, minimum)
	if amount >= remaining ||
		(b.cfg.AllInThreshold > 0 && float64(contrib+amount) >= b.cfg.AllInThreshold*float64(b.cfg.Stack)) {
		kind, amount = ActionAllIn, remaining
	}
	if slices.ContainsFunc(acts, func(a Action) bool { return a.Amount == amount }) {
		return acts
	}
	return append(acts, Action{Kind: kind, Amount: amount})
}
