package tree

import "github.com/lox/postflop/poker"

// Kind discriminates the node variants.
type Kind uint8

const (
	// NodeChance deals the next street's card
	NodeChance Kind = iota
	// NodeDecision is owned by one player and carries accumulators
	NodeDecision
	// NodeFold ends the hand with Player folding
	NodeFold
	// NodeShowdown ends the hand with a comparison of hands
	NodeShowdown
)

func (k Kind) String() string {
	switch k {
	case NodeChance:
		return "chance"
	case NodeDecision:
		return "decision"
	case NodeFold:
		return "fold"
	case NodeShowdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// Terminal reports whether the node ends the hand.
func (k Kind) Terminal() bool {
	return k == NodeFold || k == NodeShowdown
}

// Node is one vertex of the game tree. Children of a node occupy the index
// range [Children, Children+NumChildren); edges (actions of a decision, deals
// of a chance node) occupy [Edges, Edges+NumEdges) of the matching side table.
type Node struct {
	Kind Kind
	// Player is the actor of a decision node or the player who folded.
	Player uint8
	Street Street
	Board  poker.Hand
	// Contrib holds the chips each player has added since the root.
	Contrib [2]int

	Children    uint32
	NumChildren uint16
	Edges       uint32
	NumEdges    uint16

	// Offset locates a decision node's [action][hand] accumulator region.
	Offset uint64
	// Payoff indexes Tree.Payoffs for terminal nodes.
	Payoff int32
	// Table indexes Tree.Showdowns for showdown nodes.
	Table int32
}

// Deal is one card dealt by a chance node. Canonical deals own a child
// subtree. A deal with Swap >= 0 has no subtree of its own: its values are
// those of the sibling at Child with the hands permuted by Tree.Swaps[Swap].
type Deal struct {
	Card  poker.Card
	Child uint32
	Swap  int16
}

// Iso reports whether the deal reuses a sibling subtree.
func (d Deal) Iso() bool {
	return d.Swap >= 0
}

// Swap exchanges two suits. Perm[p][i] is the index of the image of player
// p's hand i, or -1 when the image is not in the range.
type Swap struct {
	A, B uint8
	Perm [2][]int32
}

// Payoff is the utility for each player of winning, losing or splitting at a
// terminal node.
type Payoff struct {
	Win, Lose, Tie [2]float64
}
