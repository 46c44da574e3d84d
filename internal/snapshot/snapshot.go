// Package snapshot persists a solve: tree configuration, ranges, node table
// and accumulators, in a checksummed and optionally compressed container.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/lox/postflop/internal/fileutil"
	"github.com/lox/postflop/internal/solver"
	"github.com/lox/postflop/internal/tree"
)

// Version is the container version written by this package.
const Version = 1

const (
	headerSize = 24
	flagZstd   = 1 << 0
	knownFlags = flagZstd

	// maxPayload bounds the decoded payload so a corrupt length cannot
	// exhaust memory.
	maxPayload = 16 << 30
)

var magic = [4]byte{'P', 'F', 'S', '1'}

var (
	// ErrLoad wraps every failure to read a snapshot.
	ErrLoad = errors.New("snapshot load failed")
	// ErrVersion means the file was written by an unsupported version.
	ErrVersion = fmt.Errorf("%w: unsupported version", ErrLoad)
	// ErrChecksum means the payload does not match its recorded hash.
	ErrChecksum = fmt.Errorf("%w: checksum mismatch", ErrLoad)
	// ErrTruncated means the file ended early.
	ErrTruncated = fmt.Errorf("%w: truncated", ErrLoad)
	// ErrCorrupt means the payload could not be decoded into a valid solve.
	ErrCorrupt = fmt.Errorf("%w: corrupt", ErrLoad)
)

// Meta identifies the solve a snapshot belongs to.
type Meta struct {
	RunID     uuid.UUID
	Iteration int
	Schedule  solver.Schedule
	// Fingerprint is tree.Tree.Fingerprint at save time.
	Fingerprint uint64
}

// State is a decoded snapshot.
type State struct {
	Meta Meta
	Tree *tree.Tree
}

// Options controls how snapshots are written.
type Options struct {
	Compress bool
}

// Capture takes the current state of a solver. The tree is shared, so the
// state must be written before the solver continues.
func Capture(s *solver.Solver) *State {
	cp := s.Checkpoint()
	return &State{
		Meta: Meta{
			RunID:       cp.RunID,
			Iteration:   cp.Iteration,
			Schedule:    cp.Schedule,
			Fingerprint: cp.Tree.Fingerprint(),
		},
		Tree: cp.Tree,
	}
}

// Checkpoint converts the state for solver.Solver.Restore.
func (st *State) Checkpoint() solver.Checkpoint {
	return solver.Checkpoint{
		Tree:      st.Tree,
		Iteration: st.Meta.Iteration,
		RunID:     st.Meta.RunID,
		Schedule:  st.Meta.Schedule,
	}
}

// Write encodes st to w.
func Write(w io.Writer, st *State, opts Options) error {
	if st == nil || st.Tree == nil {
		return errors.New("snapshot: nothing to write")
	}
	payload, err := encodeState(st)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	sum := xxhash.Sum64(payload)

	var flags uint16
	if opts.Compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("zstd encoder: %w", err)
		}
		payload = enc.EncodeAll(payload, nil)
		_ = enc.Close()
		flags |= flagZstd
	}

	var header [headerSize]byte
	copy(header[:4], magic[:])
	binary.LittleEndian.PutUint16(header[4:], Version)
	binary.LittleEndian.PutUint16(header[6:], flags)
	binary.LittleEndian.PutUint64(header[8:], sum)
	binary.LittleEndian.PutUint64(header[16:], uint64(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// Read decodes a snapshot. The container is fully verified before any of the
// payload is interpreted; errors wrap ErrLoad.
func Read(r io.Reader) (*State, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrTruncated, err)
	}
	if !bytes.Equal(header[:4], magic[:]) {
		return nil, fmt.Errorf("%w: not a snapshot", ErrCorrupt)
	}
	if v := binary.LittleEndian.Uint16(header[4:]); v != Version {
		return nil, fmt.Errorf("%w: %d, want %d", ErrVersion, v, Version)
	}
	flags := binary.LittleEndian.Uint16(header[6:])
	if flags&^knownFlags != 0 {
		return nil, fmt.Errorf("%w: unknown flags %#x", ErrVersion, flags)
	}
	sum := binary.LittleEndian.Uint64(header[8:])
	size := binary.LittleEndian.Uint64(header[16:])
	if size > maxPayload {
		return nil, fmt.Errorf("%w: payload length %d", ErrCorrupt, size)
	}

	payload, err := readPayload(r, size)
	if err != nil {
		return nil, err
	}
	if flags&flagZstd != 0 {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPayload))
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		payload, err = dec.DecodeAll(payload, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: decompress: %v", ErrCorrupt, err)
		}
	}
	if got := xxhash.Sum64(payload); got != sum {
		return nil, fmt.Errorf("%w: %016x, want %016x", ErrChecksum, got, sum)
	}

	st, err := decodeState(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return st, nil
}

// readPayload reads exactly size bytes without trusting size for the initial
// allocation.
func readPayload(r io.Reader, size uint64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, r, int64(size))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: payload has %d of %d bytes", ErrTruncated, n, size)
		}
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return buf.Bytes(), nil
}

// Save writes st to path atomically.
func Save(path string, st *State, opts Options) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, st, opts)
	})
}

// Load reads the snapshot at path.
func Load(path string) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()
	return Read(f)
}
