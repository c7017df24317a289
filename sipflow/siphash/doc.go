// Package siphash implements the SipHash keyed pseudorandom function.
//
// SipHash maps a byte string and a 128-bit secret key to a 64-bit or
// 128-bit digest. It is fast on short inputs, which makes it a good fit for
// hashing packet header tuples into flow tables or load-balancer buckets
// where an attacker must not be able to predict collisions.
//
// Design goals:
//   - SipHash-2-4 by default, other round counts (e.g. SipHash-1-3) via Params
//   - 8-byte and 16-byte digests from the same engine
//   - No allocation and no shared state on the one-shot path
//   - Incremental digests compatible with the standard hash interfaces
//
// Building with the siphash_debug tag reports the internal registers after
// every round group to a logrus logger (see SetTraceLogger). Without the tag
// the trace compiles to nothing.
//
// SipHash is not a collision-resistant hash function and must not be used
// where one is required.
package siphash
