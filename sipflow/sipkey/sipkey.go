// Package sipkey produces SipHash keys: fresh random keys for process-local
// tables and HKDF-derived keys that several nodes sharing a secret agree on,
// so every node maps a flow to the same digest.
package sipkey

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/TheusHen/sipflow/sipflow/siphash"
)

var ErrEmptySecret = errors.New("sipkey: empty secret")

// Generate returns a key read from crypto/rand.
func Generate() (siphash.Key, error) {
	var b [siphash.KeySize]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		return siphash.Key{}, err
	}
	return siphash.KeyFromBytes(b[:])
}

// MustGenerate is like Generate but panics if the system entropy source fails.
// It is meant for package-level keys.
func MustGenerate() siphash.Key {
	k, err := Generate()
	if err != nil {
		panic(err)
	}
	return k
}

// Derive expands secret into a key using HKDF-SHA256.
// salt can be nil (uses zero salt), info binds the key to its use.
func Derive(secret, salt, info []byte) (siphash.Key, error) {
	if len(secret) == 0 {
		return siphash.Key{}, ErrEmptySecret
	}
	hk := hkdf.New(sha256.New, secret, salt, info)
	var b [siphash.KeySize]byte
	if _, err := io.ReadFull(hk, b[:]); err != nil {
		return siphash.Key{}, err
	}
	return siphash.KeyFromBytes(b[:])
}
