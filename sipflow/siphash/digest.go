package siphash

import (
	"encoding/binary"
	"hash"
)

// digest is an incremental SipHash computation. Bytes are buffered until a
// full word is available, so writes may be split at any point.
type digest struct {
	p      Params
	k0, k1 uint64
	wide   bool

	s      state
	buf    [BlockSize]byte
	nbuf   int
	n      uint64
	blocks int
}

type digest64 struct {
	digest
}

// New64 returns a hash.Hash64 computing SipHash-2-4 with a 16-byte key.
func New64(key []byte) (hash.Hash64, error) {
	return Default.New64(key)
}

// New128 returns a hash.Hash computing 16-byte SipHash-2-4 digests.
func New128(key []byte) (hash.Hash, error) {
	return Default.New128(key)
}

// New64 returns a hash.Hash64 computing 8-byte digests with these rounds.
func (p Params) New64(key []byte) (hash.Hash64, error) {
	k, err := KeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	d := &digest64{digest{p: p, k0: k.K0, k1: k.K1}}
	d.Reset()
	return d, nil
}

// New128 returns a hash.Hash computing 16-byte digests with these rounds.
func (p Params) New128(key []byte) (hash.Hash, error) {
	k, err := KeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	d := &digest{p: p, k0: k.K0, k1: k.K1, wide: true}
	d.Reset()
	return d, nil
}

func (d *digest) Size() int {
	if d.wide {
		return Size128
	}
	return Size64
}

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.s = newState(d.k0, d.k1, d.wide)
	d.nbuf = 0
	d.n = 0
	d.blocks = 0
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.n += uint64(n)

	if d.nbuf > 0 {
		c := copy(d.buf[d.nbuf:], p)
		d.nbuf += c
		p = p[c:]
		if d.nbuf < BlockSize {
			return n, nil
		}
		d.blocks = d.p.compress(&d.s, d.buf[:], d.blocks)
		d.nbuf = 0
	}

	full := len(p) &^ (BlockSize - 1)
	d.blocks = d.p.compress(&d.s, p[:full], d.blocks)
	d.nbuf = copy(d.buf[:], p[full:])
	return n, nil
}

func (d *digest) words() (uint64, uint64) {
	s := d.s
	return d.p.finish(&s, d.buf[:d.nbuf], d.n, d.wide)
}

// Sum appends the digest to b without changing the running state.
func (d *digest) Sum(b []byte) []byte {
	lo, hi := d.words()
	b = binary.LittleEndian.AppendUint64(b, lo)
	if d.wide {
		b = binary.LittleEndian.AppendUint64(b, hi)
	}
	return b
}

func (d *digest64) Sum64() uint64 {
	lo, _ := d.words()
	return lo
}
