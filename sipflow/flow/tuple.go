package flow

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/TheusHen/sipflow/sipflow/siphash"
)

// Protocol is an IP protocol number.
type Protocol uint8

const (
	ProtocolICMP   Protocol = 1
	ProtocolTCP    Protocol = 6
	ProtocolUDP    Protocol = 17
	ProtocolICMPv6 Protocol = 58
)

func (p Protocol) String() string {
	switch p {
	case ProtocolICMP:
		return "icmp"
	case ProtocolTCP:
		return "tcp"
	case ProtocolUDP:
		return "udp"
	case ProtocolICMPv6:
		return "icmpv6"
	default:
		return "proto-" + strconv.Itoa(int(p))
	}
}

// hasPorts reports whether the protocol header starts with 16-bit ports.
func (p Protocol) hasPorts() bool {
	return p == ProtocolTCP || p == ProtocolUDP
}

// EncodedLen is the size of a tuple's binary encoding.
const EncodedLen = 16 + 16 + 2 + 2 + 1

// Tuple identifies a flow.
type Tuple struct {
	Src     netip.Addr
	Dst     netip.Addr
	SrcPort uint16
	DstPort uint16
	Proto   Protocol
}

// AppendBytes appends the encoding of t to b.
// Format:
//
//	16 bytes: source address (IPv4 as IPv4-mapped IPv6, invalid as zeros)
//	16 bytes: destination address
//	2 bytes: source port (big endian)
//	2 bytes: destination port (big endian)
//	1 byte: protocol
func (t Tuple) AppendBytes(b []byte) []byte {
	src, dst := t.Src.As16(), t.Dst.As16()
	b = append(b, src[:]...)
	b = append(b, dst[:]...)
	b = binary.BigEndian.AppendUint16(b, t.SrcPort)
	b = binary.BigEndian.AppendUint16(b, t.DstPort)
	return append(b, byte(t.Proto))
}

// Bytes returns the encoding of t.
func (t Tuple) Bytes() [EncodedLen]byte {
	var out [EncodedLen]byte
	t.AppendBytes(out[:0])
	return out
}

// Reverse returns the tuple of the opposite direction.
func (t Tuple) Reverse() Tuple {
	return Tuple{
		Src:     t.Dst,
		Dst:     t.Src,
		SrcPort: t.DstPort,
		DstPort: t.SrcPort,
		Proto:   t.Proto,
	}
}

// Canonical returns t or its reverse, whichever orders the lower endpoint
// first, so both directions of a connection share one tuple.
func (t Tuple) Canonical() Tuple {
	c := t.Src.Compare(t.Dst)
	if c > 0 || (c == 0 && t.SrcPort > t.DstPort) {
		return t.Reverse()
	}
	return t
}

// Hash returns the SipHash-2-4 64-bit digest of t's encoding.
func (t Tuple) Hash(key siphash.Key) uint64 {
	b := t.Bytes()
	return key.Sum64(b[:])
}

// Hash128 returns the SipHash-2-4 128-bit digest of t's encoding.
func (t Tuple) Hash128(key siphash.Key) (lo, hi uint64) {
	b := t.Bytes()
	return key.Sum128(b[:])
}

// SymmetricHash hashes the canonical tuple: a flow and its reply hash equal.
func (t Tuple) SymmetricHash(key siphash.Key) uint64 {
	return t.Canonical().Hash(key)
}

func (t Tuple) String() string {
	return fmt.Sprintf("%s %s -> %s",
		t.Proto,
		netip.AddrPortFrom(t.Src, t.SrcPort),
		netip.AddrPortFrom(t.Dst, t.DstPort))
}
