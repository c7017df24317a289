// Package flow turns packet header tuples into SipHash flow keys.
//
// A Tuple is the classic 5-tuple (source and destination address and port
// plus the IP protocol). It has a fixed 37-byte encoding, so every node
// hashing the same flow with the same key computes the same digest. Parse
// extracts a Tuple from a raw IPv4 or IPv6 packet; HashBatch hashes many
// tuples concurrently.
//
// What the digest is used for (bucket selection, table probing, consistent
// hashing) is left to the caller.
package flow
