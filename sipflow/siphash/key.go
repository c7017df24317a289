package siphash

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
)

// KeySizeError reports a key of the wrong length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "siphash: invalid key size " + strconv.Itoa(int(k))
}

// Key is a 128-bit SipHash key split into its two little-endian words.
// The 16-byte form is K0 followed by K1, both little-endian.
type Key struct {
	K0, K1 uint64
}

// KeyFromBytes decodes a 16-byte key.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, KeySizeError(len(b))
	}
	return Key{
		K0: binary.LittleEndian.Uint64(b[:8]),
		K1: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

// ParseKeyHex decodes a key from 32 hex characters.
func ParseKeyHex(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, err
	}
	return KeyFromBytes(b)
}

// Bytes returns the 16-byte form of the key.
func (k Key) Bytes() [KeySize]byte {
	var b [KeySize]byte
	binary.LittleEndian.PutUint64(b[:8], k.K0)
	binary.LittleEndian.PutUint64(b[8:], k.K1)
	return b
}

func (k Key) String() string {
	b := k.Bytes()
	return hex.EncodeToString(b[:])
}

// Hash writes the SipHash-2-4 digest of in into out (8 or 16 bytes).
func (k Key) Hash(out, in []byte) error {
	return Default.Hash(out, in, k.K0, k.K1)
}

// Sum64 returns the SipHash-2-4 64-bit digest of in.
func (k Key) Sum64(in []byte) uint64 {
	return Default.Sum64(in, k.K0, k.K1)
}

// Sum128 returns the SipHash-2-4 128-bit digest of in.
func (k Key) Sum128(in []byte) (lo, hi uint64) {
	return Default.Sum128(in, k.K0, k.K1)
}
