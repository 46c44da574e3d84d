package tree

import "fmt"

// ActionKind is the type of a betting action.
type ActionKind uint8

const (
	// ActionFold gives up the pot
	ActionFold ActionKind = iota
	// ActionCheck passes with nothing to call
	ActionCheck
	// ActionCall matches the outstanding bet
	ActionCall
	// ActionBet opens the betting on a street
	ActionBet
	// ActionRaise increases an outstanding bet
	ActionRaise
	// ActionAllIn commits every remaining chip
	ActionAllIn
)

// String returns the string representation of an action kind
func (k ActionKind) String() string {
	switch k {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Aggressive reports whether the action puts a new bet in front of the
// opponent.
func (k ActionKind) Aggressive() bool {
	return k == ActionBet || k == ActionRaise || k == ActionAllIn
}

// Action is one edge out of a decision node. Amount is the number of chips
// the actor adds to the pot with this action.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionFold, ActionCheck:
		return a.Kind.String()
	default:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	}
}
