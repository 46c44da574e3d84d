// Package report summarises a solved tree for export and display.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/postflop/internal/fileutil"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
	"github.com/lox/postflop/sdk/classification"
	"github.com/lox/postflop/sdk/runtime"
)

// Positions names the players by index.
var Positions = [2]string{"oop", "ip"}

// Report is the exported summary of a solve.
type Report struct {
	Solve   Solve    `toml:"solve"`
	Spot    Spot     `toml:"spot"`
	Players []Player `toml:"player"`
	Nodes   []Node   `toml:"node"`
}

// Solve identifies the run and its accuracy.
type Solve struct {
	RunID          string  `toml:"run_id"`
	Iterations     int     `toml:"iterations"`
	Exploitability float64 `toml:"exploitability"`
	// ExploitabilityPct is exploitability as a percentage of the starting
	// pot, valued in prize equity under ICM.
	ExploitabilityPct float64 `toml:"exploitability_pct"`
}

// Spot describes the situation solved.
type Spot struct {
	Board     string `toml:"board"`
	Street    string `toml:"street"`
	Texture   string `toml:"texture"`
	Suits     string `toml:"suits"`
	Pot       int    `toml:"pot"`
	Stack     int    `toml:"stack"`
	TreeNodes int    `toml:"tree_nodes"`
	ICM       bool   `toml:"icm,omitempty"`
}

// Player is one side's result at the root.
type Player struct {
	Position     string      `toml:"position"`
	Combos       int         `toml:"combos"`
	EV           float64     `toml:"ev"`
	BestResponse float64     `toml:"best_response"`
	Classes      []Class     `toml:"class,omitempty"`
	Hands        []HandValue `toml:"hand,omitempty"`
}

// Class aggregates a player's root EV by starting-hand class.
type Class struct {
	Name   string  `toml:"name"`
	Combos float64 `toml:"combos"`
	EV     float64 `toml:"ev"`
}

// HandValue is a single hand's value at the root.
type HandValue struct {
	Hand   string  `toml:"hand"`
	Weight float64 `toml:"weight"`
	EV     float64 `toml:"ev"`
	Equity float64 `toml:"equity,omitempty"`
}

// Node is the average strategy at one decision point.
type Node struct {
	Index   uint32   `toml:"index"`
	Line    string   `toml:"line"`
	Player  string   `toml:"player"`
	Pot     int      `toml:"pot"`
	Actions []string `toml:"actions"`
	// Frequencies is the range-weighted probability of each action.
	Frequencies []float64  `toml:"frequencies"`
	Categories  []Category `toml:"category,omitempty"`
	Hands       []Strategy `toml:"hand,omitempty"`
}

// Category aggregates the strategy of hands with the same made hand or draw.
type Category struct {
	Name        string    `toml:"name"`
	Combos      float64   `toml:"combos"`
	Frequencies []float64 `toml:"frequencies"`
}

// Strategy is one hand's mix at a node.
type Strategy struct {
	Hand        string    `toml:"hand"`
	Reach       float64   `toml:"reach"`
	Frequencies []float64 `toml:"frequencies"`
}

// Options controls what a report includes.
type Options struct {
	// Depth limits how many actions from the root nodes are reported. Zero
	// reports every decision on the root street.
	Depth int
	// Hands adds per-hand values and strategies.
	Hands bool
	// Equity adds all-in equity per hand, which enumerates every runout.
	Equity bool
}

// Build measures s and collects the decision nodes of the root street.
func Build(s *solver.Solver, opts Options) *Report {
	t := s.Tree()
	res := s.Result()
	board := t.Config.Board
	texture := classification.Analyze(board)
	var pct float64
	if v := t.Config.PotValue(); v > 0 {
		pct = 100 * res.Exploitability / v
	}

	r := &Report{
		Solve: Solve{
			RunID:             res.RunID,
			Iterations:        res.Iterations,
			Exploitability:    res.Exploitability,
			ExploitabilityPct: pct,
		},
		Spot: Spot{
			Board:     board.String(),
			Street:    t.Nodes[tree.Root].Street.String(),
			Texture:   texture.Wetness.String(),
			Suits:     texture.SuitPattern(),
			Pot:       t.Config.Pot,
			Stack:     t.Config.Stack,
			TreeNodes: len(t.Nodes),
			ICM:       t.Config.ICM != nil,
		},
	}

	for p := range 2 {
		pl := Player{
			Position:     Positions[p],
			Combos:       t.Hands(p),
			EV:           res.EV[p],
			BestResponse: res.BestResponse[p],
		}
		if opts.Hands {
			set := t.Ranges.Players[p]
			ev := s.HandEV(p)
			var equity []float64
			if opts.Equity {
				equity = s.HandEquity(p)
			}
			for i, h := range set.Hands {
				hv := HandValue{Hand: h.String(), Weight: set.Weights[i], EV: ev[i]}
				if equity != nil {
					hv.Equity = equity[i]
				}
				pl.Hands = append(pl.Hands, hv)
			}
			pl.Classes = classes(set.Hands, set.Weights, ev)
		}
		r.Players = append(r.Players, pl)
	}

	categories := [2][]string{categorise(t, 0), categorise(t, 1)}
	reach := [2][]float64{
		slices.Clone(t.Ranges.Players[0].Weights),
		slices.Clone(t.Ranges.Players[1].Weights),
	}
	r.walk(s, tree.Root, nil, reach, categories, opts)
	return r
}

func (r *Report) walk(s *solver.Solver, idx uint32, line []string, reach [2][]float64, categories [2][]string, opts Options) {
	t := s.Tree()
	n := &t.Nodes[idx]
	if n.Kind != tree.NodeDecision {
		return
	}
	p := int(n.Player)
	actions := t.NodeActions(idx)
	strategy := s.AverageStrategy(idx)

	node := Node{
		Index:       idx,
		Line:        strings.Join(line, ", "),
		Player:      Positions[p],
		Pot:         t.Pot(idx),
		Frequencies: weighted(strategy, reach[p], nil, ""),
	}
	if node.Line == "" {
		node.Line = "root"
	}
	for _, a := range actions {
		node.Actions = append(node.Actions, a.String())
	}
	node.Categories = summarise(strategy, reach[p], categories[p])
	if opts.Hands {
		for i, h := range t.Ranges.Players[p].Hands {
			if reach[p][i] == 0 {
				continue
			}
			st := Strategy{Hand: h.String(), Reach: reach[p][i]}
			for a := range strategy {
				st.Frequencies = append(st.Frequencies, strategy[a][i])
			}
			node.Hands = append(node.Hands, st)
		}
	}
	r.Nodes = append(r.Nodes, node)

	if opts.Depth > 0 && len(line) >= opts.Depth {
		return
	}
	for a, act := range actions {
		next := reach
		next[p] = make([]float64, len(reach[p]))
		for i := range next[p] {
			next[p][i] = reach[p][i] * strategy[a][i]
		}
		r.walk(s, n.Children+uint32(a), append(slices.Clip(line), act.String()), next, categories, opts)
	}
}

// weighted returns the reach-weighted action frequencies of the hands whose
// category is name, or of every hand when name is empty.
func weighted(strategy [][]float64, reach []float64, categories []string, name string) []float64 {
	out := make([]float64, len(strategy))
	var total float64
	for i, w := range reach {
		if w == 0 || (name != "" && categories[i] != name) {
			continue
		}
		total += w
		for a := range strategy {
			out[a] += w * strategy[a][i]
		}
	}
	if total > 0 {
		for a := range out {
			out[a] /= total
		}
	}
	return out
}

func summarise(strategy [][]float64, reach []float64, categories []string) []Category {
	combos := map[string]float64{}
	for i, w := range reach {
		if w > 0 {
			combos[categories[i]] += w
		}
	}
	out := make([]Category, 0, len(combos))
	for name, c := range combos {
		out = append(out, Category{Name: name, Combos: c, Frequencies: weighted(strategy, reach, categories, name)})
	}
	slices.SortFunc(out, func(a, b Category) int {
		return cmp.Or(cmp.Compare(categoryOrder(a.Name), categoryOrder(b.Name)), cmp.Compare(a.Name, b.Name))
	})
	return out
}

// Categories in report order, strongest first.
var categoryNames = []string{
	"straight flush", "quads", "full house", "flush", "straight", "set", "two pair",
	"overpair", "top pair", "pair", "flush draw", "straight draw", "overcards", "air",
}

func categoryOrder(name string) int {
	if i := slices.Index(categoryNames, name); i >= 0 {
		return i
	}
	return len(categoryNames)
}

// categorise labels each of player p's hands by the made hand it forms with
// the root board, or its best draw when it has less than a pair of its own.
func categorise(t *tree.Tree, p int) []string {
	board := t.Config.Board
	hands := t.Ranges.Players[p].Hands
	out := make([]string, len(hands))
	for i, h := range hands {
		out[i] = Categorise(h, board)
	}
	return out
}

// Categorise names the made hand or draw of hole cards on a board.
func Categorise(hole, board poker.Hand) string {
	made := classification.MadeHand(hole, board)
	onBoard := classification.MadeHand(0, board)
	switch made {
	case poker.StraightFlush:
		return "straight flush"
	case poker.FourOfAKind:
		return "quads"
	case poker.FullHouse:
		return "full house"
	case poker.Flush:
		return "flush"
	case poker.Straight:
		return "straight"
	case poker.ThreeOfAKind:
		return "set"
	case poker.TwoPair:
		if onBoard < poker.Pair {
			return "two pair"
		}
	}
	if made > onBoard {
		top := topRank(board)
		a, b := hole.Pair()
		switch {
		case a.Rank() == b.Rank() && a.Rank() > top:
			return "overpair"
		case a.Rank() == top || b.Rank() == top:
			return "top pair"
		default:
			return "pair"
		}
	}
	if board.CountCards() < 5 {
		switch classification.BestDraw(hole, board) {
		case classification.FlushDraw:
			return "flush draw"
		case classification.OpenEnded, classification.Gutshot:
			return "straight draw"
		case classification.Overcards:
			return "overcards"
		}
	}
	return "air"
}

func classes(hands []poker.Hand, weights, ev []float64) []Class {
	var out []Class
	for _, cat := range poker.Categories() {
		c := Class{Name: string(cat)}
		for i, h := range hands {
			if poker.Categorize(h) == cat {
				c.Combos += weights[i]
				c.EV += weights[i] * ev[i]
			}
		}
		if c.Combos > 0 {
			c.EV /= c.Combos
			out = append(out, c)
		}
	}
	return out
}

func topRank(board poker.Hand) uint8 {
	mask := board.GetRankMask()
	for r := poker.Ace; r > 0; r-- {
		if mask&(1<<r) != 0 {
			return r
		}
	}
	return 0
}

// Encode writes r as TOML.
func Encode(w io.Writer, r *Report) error {
	if r == nil {
		return fmt.Errorf("report: nil report")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// Decode reads a TOML report.
func Decode(rd io.Reader) (*Report, error) {
	var r Report
	if _, err := toml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &r, nil
}

// Save writes r to path atomically.
func Save(path string, r *Report) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, r)
	})
}

// SpotNode describes a decision reached by a runtime line, which may lie past
// chance nodes. Hands are categorised on the cards actually dealt.
func SpotNode(p *runtime.Policy, sp *runtime.Spot, hands bool) (Node, error) {
	mixes, err := p.Strategies(sp)
	if err != nil {
		return Node{}, err
	}
	node := Node{
		Index:  sp.Node,
		Line:   strings.Join(sp.Line, ", "),
		Player: Positions[sp.Player],
		Pot:    sp.Pot,
	}
	if node.Line == "" {
		node.Line = "root"
	}
	for _, a := range sp.Actions {
		node.Actions = append(node.Actions, a.String())
	}

	strategy := make([][]float64, len(sp.Actions))
	reach := make([]float64, len(mixes))
	categories := make([]string, len(mixes))
	for k, m := range mixes {
		reach[k] = m.Reach
		categories[k] = Categorise(m.Hand, sp.Board)
		for a, w := range m.Weights {
			strategy[a] = append(strategy[a], w)
		}
		if hands {
			node.Hands = append(node.Hands, Strategy{Hand: m.Hand.String(), Reach: m.Reach, Frequencies: m.Weights})
		}
	}
	node.Frequencies = weighted(strategy, reach, nil, "")
	node.Categories = summarise(strategy, reach, categories)
	return node, nil
}
