package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"

	"github.com/lox/postflop/internal/handrange"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
	"github.com/lox/postflop/poker"
	"github.com/lox/postflop/sdk/analysis"
)

func buildTree(t *testing.T, board, oop, ip string, icm *tree.ICMConfig) *tree.Tree {
	t.Helper()
	b, err := poker.ParseHand(board)
	require.NoError(t, err)
	a, err := analysis.ParseInput(oop)
	require.NoError(t, err)
	c, err := analysis.ParseInput(ip)
	require.NoError(t, err)
	ranges, err := handrange.NewPair(b, a, c)
	require.NoError(t, err)

	cfg := tree.DefaultConfig(b, 100, 150)
	cfg.ICM = icm
	tr, err := tree.Build(cfg, ranges, tree.BuildOptions{})
	require.NoError(t, err)
	return tr
}

// solved runs a few single-threaded iterations on a turn spot with
// isomorphic deals.
func solved(t *testing.T) *solver.Solver {
	t.Helper()
	tr := buildTree(t, "Kh 9h 4c 7c", "AA,KK,QJs,T8s", "KQ,99,A5s,22", nil)
	s, err := solver.New(tr, solver.Config{MaxIterations: 100, Threads: 1, Schedule: solver.DefaultSchedule()})
	require.NoError(t, err)
	for range 5 {
		require.NoError(t, s.Iterate(context.Background()))
	}
	return s
}

func encode(t *testing.T, st *State, opts Options) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, st, opts))
	return buf.Bytes()
}

// container wraps payload in a valid header.
func container(payload []byte) []byte {
	var header [headerSize]byte
	copy(header[:], magic[:])
	binary.LittleEndian.PutUint16(header[4:], Version)
	binary.LittleEndian.PutUint64(header[8:], xxhash.Sum64(payload))
	binary.LittleEndian.PutUint64(header[16:], uint64(len(payload)))
	return append(header[:], payload...)
}

func TestRoundTrip(t *testing.T) {
	s := solved(t)
	st := Capture(s)
	require.NotEmpty(t, st.Tree.Swaps, "spot should exercise isomorphic deals")

	for _, compress := range []bool{false, true} {
		data := encode(t, st, Options{Compress: compress})

		got, err := Read(bytes.NewReader(data))
		require.NoError(t, err)

		assert.Equal(t, st.Meta, got.Meta)
		assert.Equal(t, 5, got.Meta.Iteration)
		assert.Equal(t, s.RunID(), got.Meta.RunID)
		assert.Equal(t, st.Tree.Config, got.Tree.Config)
		assert.Equal(t, st.Tree.Nodes, got.Tree.Nodes)
		assert.Equal(t, st.Tree.Actions, got.Tree.Actions)
		assert.Equal(t, st.Tree.Deals, got.Tree.Deals)
		assert.Equal(t, st.Tree.Payoffs, got.Tree.Payoffs)
		assert.Equal(t, st.Tree.Swaps, got.Tree.Swaps)
		for p := range 2 {
			assert.Equal(t, st.Tree.Ranges.Players[p].Hands, got.Tree.Ranges.Players[p].Hands)
			assert.Equal(t, st.Tree.Ranges.Players[p].Weights, got.Tree.Ranges.Players[p].Weights)
		}
		assert.Equal(t, floatBytes(st.Tree.Arena.Regret), floatBytes(got.Tree.Arena.Regret))
		assert.Equal(t, floatBytes(st.Tree.Arena.Strategy), floatBytes(got.Tree.Arena.Strategy))
		assert.Equal(t, len(st.Tree.Showdowns), len(got.Tree.Showdowns))

		// re-encoding is byte for byte identical
		assert.Equal(t, data, encode(t, got, Options{Compress: compress}))
	}
}

func TestCompressionShrinksPayload(t *testing.T) {
	st := Capture(solved(t))
	plain := encode(t, st, Options{})
	packed := encode(t, st, Options{Compress: true})
	assert.Less(t, len(packed), len(plain))
	assert.Equal(t, uint16(flagZstd), binary.LittleEndian.Uint16(packed[6:]))
}

func TestRoundTripICM(t *testing.T) {
	icm := &tree.ICMConfig{Payouts: []int{50, 30, 20}, OtherStacks: []int{150, 150}}
	tr := buildTree(t, "Kh 9s 4c 7d 2s", "AA,KK", "22,AK", icm)
	st := &State{Meta: Meta{Schedule: solver.DefaultSchedule(), Fingerprint: tr.Fingerprint()}, Tree: tr}

	got, err := Read(bytes.NewReader(encode(t, st, Options{})))
	require.NoError(t, err)
	require.NotNil(t, got.Tree.Config.ICM)
	assert.Equal(t, *icm, *got.Tree.Config.ICM)
	assert.Equal(t, tr.Payoffs, got.Tree.Payoffs)
}

func TestResumeMatchesUninterruptedSolve(t *testing.T) {
	s := solved(t)
	data := encode(t, Capture(s), Options{Compress: true})

	st, err := Read(bytes.NewReader(data))
	require.NoError(t, err)

	tr := buildTree(t, "Kh 9h 4c 7c", "AA,KK,QJs,T8s", "KQ,99,A5s,22", nil)
	resumed, err := solver.New(tr, s.Config())
	require.NoError(t, err)
	require.NoError(t, resumed.Restore(st.Checkpoint()))
	assert.Equal(t, s.RunID(), resumed.RunID())

	for range 5 {
		require.NoError(t, s.Iterate(context.Background()))
		require.NoError(t, resumed.Iterate(context.Background()))
	}
	assert.Equal(t, 10, resumed.Iteration())
	assert.Equal(t, s.AverageStrategy(tree.Root), resumed.AverageStrategy(tree.Root))
	assert.Equal(t, s.RootEV(), resumed.RootEV())
}

func TestResumeRejectsDifferentGame(t *testing.T) {
	base := buildTree(t, "Kh 9s 4c 7d 2s", "AA,KK", "22,AK", nil)
	s, err := solver.New(base, solver.Config{MaxIterations: 10, Threads: 1, Schedule: solver.DefaultSchedule()})
	require.NoError(t, err)
	require.NoError(t, s.Iterate(context.Background()))

	st, err := Read(bytes.NewReader(encode(t, Capture(s), Options{})))
	require.NoError(t, err)

	icm := &tree.ICMConfig{Payouts: []int{50, 30, 20}, OtherStacks: []int{150, 150}}
	tests := []struct {
		name string
		tr   *tree.Tree
	}{
		{"icm payoffs", buildTree(t, "Kh 9s 4c 7d 2s", "AA,KK", "22,AK", icm)},
		{"reweighted range", buildTree(t, "Kh 9s 4c 7d 2s", "AA:0.5,KK", "22,AK", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, len(base.Nodes), len(tt.tr.Nodes))
			resumed, err := solver.New(tt.tr, s.Config())
			require.NoError(t, err)

			err = resumed.Restore(st.Checkpoint())
			assert.ErrorIs(t, err, solver.ErrTreeMismatch)
			assert.Zero(t, resumed.Iteration())
			assert.Same(t, tt.tr, resumed.Tree())
		})
	}
}

func TestReadRejectsDamagedFiles(t *testing.T) {
	st := Capture(solved(t))
	good := encode(t, st, Options{})

	damage := func(fn func([]byte) []byte) []byte {
		return fn(bytes.Clone(good))
	}
	withBadFingerprint := *st
	payload, err := encodeState(st)
	require.NoError(t, err)
	withBadFingerprint.Meta.Fingerprint++

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short header", good[:10], ErrTruncated},
		{"short payload", good[:len(good)-7], ErrTruncated},
		{"bad magic", damage(func(b []byte) []byte { b[0] = 'X'; return b }), ErrCorrupt},
		{"future version", damage(func(b []byte) []byte { b[4] = Version + 1; return b }), ErrVersion},
		{"unknown flags", damage(func(b []byte) []byte { b[6] = 0x80; return b }), ErrVersion},
		{"flipped payload bit", damage(func(b []byte) []byte { b[len(b)-1] ^= 1; return b }), ErrChecksum},
		{"wrong checksum", damage(func(b []byte) []byte { b[8] ^= 0xff; return b }), ErrChecksum},
		{"huge length", damage(func(b []byte) []byte { binary.LittleEndian.PutUint64(b[16:], 1<<62); return b }), ErrCorrupt},
		{"not msgpack", container([]byte{0xc1}), ErrCorrupt},
		{"empty map", container(msgp.AppendMapHeader(nil, 0)), ErrCorrupt},
		{"oversized array", container(msgp.AppendArrayHeader(msgp.AppendString(msgp.AppendMapHeader(nil, 1), "nodes"), 1<<30)), ErrCorrupt},
		{"trailing bytes", container(append(payload, 0x00)), ErrCorrupt},
		{"fingerprint mismatch", encode(t, &withBadFingerprint, Options{}), ErrCorrupt},
		{"bad zstd frame", damage(func(b []byte) []byte {
			out := container(b[headerSize:])
			binary.LittleEndian.PutUint16(out[6:], flagZstd)
			return out
		}), ErrCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(bytes.NewReader(tt.data))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrLoad)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	s := solved(t)
	path := filepath.Join(t.TempDir(), "spot.pfs")

	require.NoError(t, Save(path, Capture(s), Options{Compress: true}))
	st, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Meta.Iteration)

	// a failed load leaves the solver untouched
	require.NoError(t, os.WriteFile(path, []byte("PFS1"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 5, s.Iteration())

	_, err = Load(filepath.Join(t.TempDir(), "missing.pfs"))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestWriteRequiresTree(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, nil, Options{}))
	assert.Error(t, Write(&bytes.Buffer{}, &State{}, Options{}))
}
