package tree

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/poker"
)

// ShowdownTable caches hand strengths for one complete board. It is built
// once per tree and only read while solving.
type ShowdownTable struct {
	Board poker.Hand
	// Strength[p][i] is the strength of player p's hand i, 0 when the hand
	// collides with the board.
	Strength [2][]uint16
	// Order[p] lists player p's live hands by ascending strength.
	Order [2][]int32
}

// NewShowdownTable evaluates both ranges on a five card board.
func NewShowdownTable(board poker.Hand, ranges *handrange.Pair) *ShowdownTable {
	t := &ShowdownTable{Board: board}
	for p, set := range ranges.Players {
		strength := make([]uint16, set.Len())
		order := make([]int32, 0, set.Len())
		for i, h := range set.Hands {
			if h.Overlaps(board) {
				continue
			}
			strength[i] = poker.Strength(board, h)
			order = append(order, int32(i))
		}
		slices.SortStableFunc(order, func(a, b int32) int {
			return cmp.Compare(strength[a], strength[b])
		})
		t.Strength[p] = strength
		t.Order[p] = order
	}
	return t
}

func buildShowdowns(ctx context.Context, boards []poker.Hand, ranges *handrange.Pair, threads int) ([]*ShowdownTable, error) {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	tables := make([]*ShowdownTable, len(boards))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, board := range boards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tables[i] = NewShowdownTable(board, ranges)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
