package snapshot

//go:generate msgp -io=false -tests=false

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/tinylib/msgp/msgp"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
)

// record is the msgpack payload of a snapshot. Accumulators are stored as
// little-endian float32 bytes.
type record struct {
	Meta     metaRecord     `msg:"meta"`
	Config   configRecord   `msg:"config"`
	OOP      []comboRecord  `msg:"oop"`
	IP       []comboRecord  `msg:"ip"`
	Nodes    []nodeRecord   `msg:"nodes"`
	Actions  []actionRecord `msg:"actions"`
	Deals    []dealRecord   `msg:"deals"`
	Swaps    []swapRecord   `msg:"swaps"`
	Payoffs  []payoffRecord `msg:"payoffs"`
	Regret   []byte         `msg:"regret"`
	Strategy []byte         `msg:"strategy"`
}

type metaRecord struct {
	RunID       []byte         `msg:"run_id"`
	Iteration   int            `msg:"iteration"`
	Schedule    scheduleRecord `msg:"schedule"`
	Fingerprint uint64         `msg:"fingerprint"`
}

type scheduleRecord struct {
	Kind  uint8   `msg:"kind"`
	Alpha float64 `msg:"alpha"`
	Beta  float64 `msg:"beta"`
	Gamma float64 `msg:"gamma"`
}

type configRecord struct {
	Board          uint64         `msg:"board"`
	Pot            int            `msg:"pot"`
	Stack          int            `msg:"stack"`
	Streets        []streetRecord `msg:"streets"`
	MaxRaises      int            `msg:"max_raises"`
	AllInThreshold float64        `msg:"all_in_threshold"`
	Isomorphism    bool           `msg:"isomorphism"`
	ICM            *icmRecord     `msg:"icm"`
}

type streetRecord struct {
	Bet   []float64 `msg:"bet"`
	Raise []float64 `msg:"raise"`
	AllIn bool      `msg:"all_in"`
}

type icmRecord struct {
	Payouts     []int `msg:"payouts"`
	OtherStacks []int `msg:"other_stacks"`
}

type comboRecord struct {
	Hand   uint64  `msg:"hand"`
	Weight float64 `msg:"weight"`
}

type nodeRecord struct {
	Kind        uint8  `msg:"kind"`
	Player      uint8  `msg:"player"`
	Street      uint8  `msg:"street"`
	Board       uint64 `msg:"board"`
	Contrib     [2]int `msg:"contrib"`
	Children    uint32 `msg:"children"`
	NumChildren uint16 `msg:"num_children"`
	Edges       uint32 `msg:"edges"`
	NumEdges    uint16 `msg:"num_edges"`
	Offset      uint64 `msg:"offset"`
	Payoff      int32  `msg:"payoff"`
	Table       int32  `msg:"table"`
}

type actionRecord struct {
	Kind   uint8 `msg:"kind"`
	Amount int   `msg:"amount"`
}

type dealRecord struct {
	Card  uint64 `msg:"card"`
	Child uint32 `msg:"child"`
	Swap  int16  `msg:"swap"`
}

type swapRecord struct {
	A uint8 `msg:"a"`
	B uint8 `msg:"b"`
}

type payoffRecord struct {
	Win  [2]float64 `msg:"win"`
	Lose [2]float64 `msg:"lose"`
	Tie  [2]float64 `msg:"tie"`
}

func encodeState(st *State) ([]byte, error) {
	rec := newRecord(st)
	return rec.MarshalMsg(make([]byte, 0, rec.Msgsize()))
}

func newRecord(st *State) *record {
	t := st.Tree
	r := &record{
		Meta: metaRecord{
			RunID:     st.Meta.RunID[:],
			Iteration: st.Meta.Iteration,
			Schedule: scheduleRecord{
				Kind:  uint8(st.Meta.Schedule.Kind),
				Alpha: st.Meta.Schedule.Alpha,
				Beta:  st.Meta.Schedule.Beta,
				Gamma: st.Meta.Schedule.Gamma,
			},
			Fingerprint: st.Meta.Fingerprint,
		},
		Config:   newConfigRecord(t.Config),
		OOP:      newCombos(t.Ranges.Players[0].Input()),
		IP:       newCombos(t.Ranges.Players[1].Input()),
		Nodes:    make([]nodeRecord, len(t.Nodes)),
		Actions:  make([]actionRecord, len(t.Actions)),
		Deals:    make([]dealRecord, len(t.Deals)),
		Swaps:    make([]swapRecord, len(t.Swaps)),
		Payoffs:  make([]payoffRecord, len(t.Payoffs)),
		Regret:   floatBytes(t.Arena.Regret),
		Strategy: floatBytes(t.Arena.Strategy),
	}
	for i, n := range t.Nodes {
		r.Nodes[i] = nodeRecord{
			Kind:        uint8(n.Kind),
			Player:      n.Player,
			Street:      uint8(n.Street),
			Board:       uint64(n.Board),
			Contrib:     n.Contrib,
			Children:    n.Children,
			NumChildren: n.NumChildren,
			Edges:       n.Edges,
			NumEdges:    n.NumEdges,
			Offset:      n.Offset,
			Payoff:      n.Payoff,
			Table:       n.Table,
		}
	}
	for i, a := range t.Actions {
		r.Actions[i] = actionRecord{Kind: uint8(a.Kind), Amount: a.Amount}
	}
	for i, d := range t.Deals {
		r.Deals[i] = dealRecord{Card: uint64(d.Card), Child: d.Child, Swap: d.Swap}
	}
	for i, s := range t.Swaps {
		r.Swaps[i] = swapRecord{A: s.A, B: s.B}
	}
	for i, p := range t.Payoffs {
		r.Payoffs[i] = payoffRecord{Win: p.Win, Lose: p.Lose, Tie: p.Tie}
	}
	return r
}

func newConfigRecord(c tree.Config) configRecord {
	out := configRecord{
		Board:          uint64(c.Board),
		Pot:            c.Pot,
		Stack:          c.Stack,
		Streets:        make([]streetRecord, len(c.Streets)),
		MaxRaises:      c.MaxRaises,
		AllInThreshold: c.AllInThreshold,
		Isomorphism:    c.Isomorphism,
	}
	for s, sz := range c.Streets {
		out.Streets[s] = streetRecord{Bet: sz.Bet, Raise: sz.Raise, AllIn: sz.AllIn}
	}
	if c.ICM != nil {
		out.ICM = &icmRecord{Payouts: c.ICM.Payouts, OtherStacks: c.ICM.OtherStacks}
	}
	return out
}

func newCombos(in handrange.Input) []comboRecord {
	out := make([]comboRecord, len(in))
	for i, c := range in {
		out[i] = comboRecord{Hand: uint64(c.Hand), Weight: c.Weight}
	}
	return out
}

func floatBytes(vs []float32) []byte {
	out := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

func bytesFloat(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("accumulator buffer of %d bytes", len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out, nil
}

var errFingerprint = errors.New("tree fingerprint mismatch")

// decodeState walks the payload once without allocating, so array headers
// can never claim more elements than the payload holds, then decodes it.
func decodeState(payload []byte) (*State, error) {
	rest, err := msgp.Skip(payload)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes", len(rest))
	}
	var r record
	if _, err := r.UnmarshalMsg(payload); err != nil {
		return nil, err
	}
	return r.state()
}

// state reassembles the tree and checks it is the one that was saved.
func (r *record) state() (*State, error) {
	if len(r.Nodes) == 0 {
		return nil, errors.New("missing nodes")
	}
	if len(r.Config.Streets) != tree.NumStreets {
		return nil, fmt.Errorf("config has %d streets, want %d", len(r.Config.Streets), tree.NumStreets)
	}
	id, err := uuid.FromBytes(r.Meta.RunID)
	if err != nil {
		return nil, fmt.Errorf("run id: %w", err)
	}
	meta := Meta{
		RunID:     id,
		Iteration: r.Meta.Iteration,
		Schedule: solver.Schedule{
			Kind:  solver.ScheduleKind(r.Meta.Schedule.Kind),
			Alpha: r.Meta.Schedule.Alpha,
			Beta:  r.Meta.Schedule.Beta,
			Gamma: r.Meta.Schedule.Gamma,
		},
		Fingerprint: r.Meta.Fingerprint,
	}
	if err := meta.Schedule.Validate(); err != nil {
		return nil, err
	}
	if meta.Iteration < 0 {
		return nil, fmt.Errorf("negative iteration %d", meta.Iteration)
	}

	cfg := tree.Config{
		Board:          poker.Hand(r.Config.Board),
		Pot:            r.Config.Pot,
		Stack:          r.Config.Stack,
		MaxRaises:      r.Config.MaxRaises,
		AllInThreshold: r.Config.AllInThreshold,
		Isomorphism:    r.Config.Isomorphism,
	}
	for s, sz := range r.Config.Streets {
		cfg.Streets[s] = tree.StreetSizes{Bet: sz.Bet, Raise: sz.Raise, AllIn: sz.AllIn}
	}
	if r.Config.ICM != nil {
		cfg.ICM = &tree.ICMConfig{Payouts: r.Config.ICM.Payouts, OtherStacks: r.Config.ICM.OtherStacks}
	}

	ranges, err := handrange.NewPair(cfg.Board, combos(r.OOP), combos(r.IP))
	if err != nil {
		return nil, err
	}

	topo := tree.Topology{
		Nodes:   make([]tree.Node, len(r.Nodes)),
		Actions: make([]tree.Action, len(r.Actions)),
		Deals:   make([]tree.Deal, len(r.Deals)),
		Swaps:   make([][2]uint8, len(r.Swaps)),
		Payoffs: make([]tree.Payoff, len(r.Payoffs)),
	}
	for i, n := range r.Nodes {
		topo.Nodes[i] = tree.Node{
			Kind:        tree.Kind(n.Kind),
			Player:      n.Player,
			Street:      tree.Street(n.Street),
			Board:       poker.Hand(n.Board),
			Contrib:     n.Contrib,
			Children:    n.Children,
			NumChildren: n.NumChildren,
			Edges:       n.Edges,
			NumEdges:    n.NumEdges,
			Offset:      n.Offset,
			Payoff:      n.Payoff,
			Table:       n.Table,
		}
	}
	for i, a := range r.Actions {
		topo.Actions[i] = tree.Action{Kind: tree.ActionKind(a.Kind), Amount: a.Amount}
	}
	for i, d := range r.Deals {
		topo.Deals[i] = tree.Deal{Card: poker.Card(d.Card), Child: d.Child, Swap: d.Swap}
	}
	for i, s := range r.Swaps {
		topo.Swaps[i] = [2]uint8{s.A, s.B}
	}
	for i, p := range r.Payoffs {
		topo.Payoffs[i] = tree.Payoff{Win: p.Win, Lose: p.Lose, Tie: p.Tie}
	}

	regret, err := bytesFloat(r.Regret)
	if err != nil {
		return nil, err
	}
	strategy, err := bytesFloat(r.Strategy)
	if err != nil {
		return nil, err
	}
	arena := &tree.Arena{Regret: regret, Strategy: strategy}

	t, err := tree.Restore(cfg, ranges, topo, arena, tree.BuildOptions{})
	if err != nil {
		return nil, err
	}
	if fp := t.Fingerprint(); fp != meta.Fingerprint {
		return nil, fmt.Errorf("%w: %016x, want %016x", errFingerprint, fp, meta.Fingerprint)
	}
	return &State{Meta: meta, Tree: t}, nil
}

func combos(rs []comboRecord) handrange.Input {
	out := make(handrange.Input, len(rs))
	for i, c := range rs {
		out[i] = handrange.Combo{Hand: poker.Hand(c.Hand), Weight: c.Weight}
	}
	return out
}
