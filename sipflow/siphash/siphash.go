package siphash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

const (
	// KeySize is the size of a SipHash key in bytes.
	KeySize = 16
	// BlockSize is the size of a compression word in bytes.
	BlockSize = 8
	// Size64 is the size of a SipHash-64 digest in bytes.
	Size64 = 8
	// Size128 is the size of a SipHash-128 digest in bytes.
	Size128 = 16
)

// Initialization constants: "somepseu", "dorandom", "lygenera", "tedbytes".
const (
	c0 = 0x736f6d6570736575
	c1 = 0x646f72616e646f6d
	c2 = 0x6c7967656e657261
	c3 = 0x7465646279746573
)

const (
	defaultCRounds = 2
	defaultDRounds = 4
)

var (
	ErrInvalidOutputSize = errors.New("siphash: output size must be 8 or 16 bytes")
	ErrInvalidRounds     = errors.New("siphash: round counts must be positive")
)

// Params selects the number of compression (c) and finalization (d) rounds.
// The zero value is SipHash-2-4.
type Params struct {
	c, d int
}

var (
	// Default is SipHash-2-4, the parameterization every published test
	// vector refers to.
	Default = Params{c: defaultCRounds, d: defaultDRounds}
	// Fast is SipHash-1-3.
	Fast = Params{c: 1, d: 3}
)

// Rounds returns the SipHash-c-d parameterization.
func Rounds(c, d int) (Params, error) {
	if c < 1 || d < 1 {
		return Params{}, fmt.Errorf("%w: %d-%d", ErrInvalidRounds, c, d)
	}
	return Params{c: c, d: d}, nil
}

// CRounds returns the number of rounds applied per compressed word.
func (p Params) CRounds() int {
	if p.c == 0 {
		return defaultCRounds
	}
	return p.c
}

// DRounds returns the number of rounds applied during finalization.
func (p Params) DRounds() int {
	if p.d == 0 {
		return defaultDRounds
	}
	return p.d
}

func (p Params) String() string {
	return fmt.Sprintf("SipHash-%d-%d", p.CRounds(), p.DRounds())
}

// Hash writes the digest of in under the key (k0, k1) into out.
// len(out) selects the variant and must be Size64 or Size128; any other
// length returns ErrInvalidOutputSize and leaves out untouched.
func (p Params) Hash(out, in []byte, k0, k1 uint64) error {
	var wide bool
	switch len(out) {
	case Size64:
	case Size128:
		wide = true
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidOutputSize, len(out))
	}

	lo, hi := p.sum(in, k0, k1, wide)
	binary.LittleEndian.PutUint64(out, lo)
	if wide {
		binary.LittleEndian.PutUint64(out[8:], hi)
	}
	return nil
}

// Sum64 returns the 64-bit digest of in.
func (p Params) Sum64(in []byte, k0, k1 uint64) uint64 {
	lo, _ := p.sum(in, k0, k1, false)
	return lo
}

// Sum128 returns the 128-bit digest of in as two words; lo holds the first
// eight bytes of the serialized digest, hi the last eight.
func (p Params) Sum128(in []byte, k0, k1 uint64) (lo, hi uint64) {
	return p.sum(in, k0, k1, true)
}

// Hash writes the SipHash-2-4 digest of in into out (8 or 16 bytes).
func Hash(out, in []byte, k0, k1 uint64) error {
	return Default.Hash(out, in, k0, k1)
}

// Sum64 returns the SipHash-2-4 64-bit digest of in.
func Sum64(in []byte, k0, k1 uint64) uint64 {
	return Default.Sum64(in, k0, k1)
}

// Sum128 returns the SipHash-2-4 128-bit digest of in.
func Sum128(in []byte, k0, k1 uint64) (lo, hi uint64) {
	return Default.Sum128(in, k0, k1)
}

func (p Params) sum(in []byte, k0, k1 uint64, wide bool) (uint64, uint64) {
	s := newState(k0, k1, wide)
	full := len(in) &^ (BlockSize - 1)
	p.compress(&s, in[:full], 0)
	return p.finish(&s, in[full:], uint64(len(in)), wide)
}

// state holds the four SipHash registers for a single computation.
type state struct {
	v0, v1, v2, v3 uint64
}

func newState(k0, k1 uint64, wide bool) state {
	s := state{
		v0: k0 ^ c0,
		v1: k1 ^ c1,
		v2: k0 ^ c2,
		v3: k1 ^ c3,
	}
	if wide {
		s.v1 ^= 0xee
	}
	return s
}

func (s *state) round() {
	s.v0 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = bits.RotateLeft64(s.v0, 32)
	s.v2 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v3 ^= s.v2
	s.v0 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v3 ^= s.v0
	s.v2 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = bits.RotateLeft64(s.v2, 32)
}

func (s *state) rounds(n int) {
	for i := 0; i < n; i++ {
		s.round()
	}
}

func (s *state) fold() uint64 {
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// compress absorbs whole 8-byte words; len(in) must be a multiple of
// BlockSize. block is the index of the first word, used only for tracing.
// It returns the index following the last absorbed word.
func (p Params) compress(s *state, in []byte, block int) int {
	c := p.CRounds()
	for ; len(in) >= BlockSize; in = in[BlockSize:] {
		m := binary.LittleEndian.Uint64(in)
		s.v3 ^= m
		s.rounds(c)
		if traceEnabled {
			s.trace("compress", block)
		}
		s.v0 ^= m
		block++
	}
	return block
}

// lastBlock packs the 0-7 trailing bytes little-endian below the low byte
// of the total input length.
func lastBlock(tail []byte, n uint64) uint64 {
	b := n << 56
	for i := 0; i < len(tail); i++ {
		b |= uint64(tail[i]) << (8 * i)
	}
	return b
}

// finish absorbs the length block and runs finalization. hi is only
// computed for the 128-bit variant.
func (p Params) finish(s *state, tail []byte, n uint64, wide bool) (lo, hi uint64) {
	b := lastBlock(tail, n)
	s.v3 ^= b
	s.rounds(p.CRounds())
	if traceEnabled {
		s.trace("tail", -1)
	}
	s.v0 ^= b

	if wide {
		s.v2 ^= 0xee
	} else {
		s.v2 ^= 0xff
	}
	d := p.DRounds()
	s.rounds(d)
	if traceEnabled {
		s.trace("finalize", -1)
	}
	lo = s.fold()
	if !wide {
		return lo, 0
	}

	s.v1 ^= 0xdd
	s.rounds(d)
	if traceEnabled {
		s.trace("finalize128", -1)
	}
	return lo, s.fold()
}
