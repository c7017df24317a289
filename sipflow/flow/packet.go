package flow

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
)

const (
	ipv4HeaderLen = 20
	ipv6HeaderLen = 40
	portsLen      = 4
)

var (
	ErrTruncated          = errors.New("flow: packet truncated")
	ErrUnsupportedVersion = errors.New("flow: unsupported IP version")
	ErrBadHeaderLength    = errors.New("flow: bad IPv4 header length")
)

// Parse extracts the flow tuple from a raw IP packet (no link-layer header).
//
// Ports are filled in for TCP and UDP only. IPv4 fragments other than the
// first carry no transport header and yield zero ports. IPv6 extension
// headers are not walked: a packet whose next header is not TCP or UDP
// yields zero ports and that next header as Proto.
func Parse(packet []byte) (Tuple, error) {
	if len(packet) == 0 {
		return Tuple{}, ErrTruncated
	}
	switch v := packet[0] >> 4; v {
	case 4:
		return parseIPv4(packet)
	case 6:
		return parseIPv6(packet)
	default:
		return Tuple{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
}

func parseIPv4(p []byte) (Tuple, error) {
	if len(p) < ipv4HeaderLen {
		return Tuple{}, ErrTruncated
	}
	ihl := int(p[0]&0x0f) * 4
	if ihl < ipv4HeaderLen {
		return Tuple{}, fmt.Errorf("%w: %d", ErrBadHeaderLength, ihl)
	}
	if len(p) < ihl {
		return Tuple{}, ErrTruncated
	}

	t := Tuple{
		Src:   netip.AddrFrom4([4]byte(p[12:16])),
		Dst:   netip.AddrFrom4([4]byte(p[16:20])),
		Proto: Protocol(p[9]),
	}
	fragOffset := binary.BigEndian.Uint16(p[6:8]) & 0x1fff
	if fragOffset != 0 {
		return t, nil
	}
	return t.withPorts(p[ihl:])
}

func parseIPv6(p []byte) (Tuple, error) {
	if len(p) < ipv6HeaderLen {
		return Tuple{}, ErrTruncated
	}
	t := Tuple{
		Src:   netip.AddrFrom16([16]byte(p[8:24])),
		Dst:   netip.AddrFrom16([16]byte(p[24:40])),
		Proto: Protocol(p[6]),
	}
	return t.withPorts(p[ipv6HeaderLen:])
}

func (t Tuple) withPorts(l4 []byte) (Tuple, error) {
	if !t.Proto.hasPorts() {
		return t, nil
	}
	if len(l4) < portsLen {
		return Tuple{}, ErrTruncated
	}
	t.SrcPort = binary.BigEndian.Uint16(l4[0:2])
	t.DstPort = binary.BigEndian.Uint16(l4[2:4])
	return t, nil
}
