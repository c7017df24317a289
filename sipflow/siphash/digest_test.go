package siphash

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	refsip "github.com/dchest/siphash"
)

func canonicalKey() []byte {
	return sequential(KeySize)
}

func TestDigestSplitWrites(t *testing.T) {
	msg := sequential(45)
	want := Sum64(msg, testK0, testK1)

	h, err := New64(canonicalKey())
	if err != nil {
		t.Fatalf("New64: %v", err)
	}
	for split := 0; split <= len(msg); split++ {
		h.Reset()
		h.Write(msg[:split])
		h.Write(msg[split:])
		if got := h.Sum64(); got != want {
			t.Fatalf("split %d: got %016x, want %016x", split, got, want)
		}
	}
}

func TestDigestByteAtATime(t *testing.T) {
	msg := sequential(33)
	h, err := New128(canonicalKey())
	if err != nil {
		t.Fatalf("New128: %v", err)
	}
	for i := range msg {
		h.Write(msg[i : i+1])
	}

	want := make([]byte, Size128)
	if err := Hash(want, msg, testK0, testK1); err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if got := h.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestDigestSumKeepsState(t *testing.T) {
	h, _ := New64(canonicalKey())
	h.Write([]byte("partial"))
	first := h.Sum([]byte("prefix"))
	if !bytes.HasPrefix(first, []byte("prefix")) || len(first) != len("prefix")+Size64 {
		t.Fatalf("Sum should append the digest")
	}
	h.Write([]byte(" message"))
	if got, want := h.Sum64(), Sum64([]byte("partial message"), testK0, testK1); got != want {
		t.Fatalf("writes after Sum: got %016x, want %016x", got, want)
	}
}

func TestDigestGoldenVectors(t *testing.T) {
	h, _ := New64(canonicalKey())
	for n, want := range golden64 {
		h.Reset()
		h.Write(sequential(n))
		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Fatalf("len %d: got %x, want %x", n, got, want)
		}
	}
}

func TestDigestMatchesReference(t *testing.T) {
	ref := refsip.New128(canonicalKey())
	h, _ := New128(canonicalKey())
	chunk := sequential(13)
	for i := 0; i < 20; i++ {
		ref.Write(chunk)
		h.Write(chunk)
		if got, want := h.Sum(nil), ref.Sum(nil); !bytes.Equal(got, want) {
			t.Fatalf("after %d chunks: got %x, want %x", i+1, got, want)
		}
	}
}

func TestDigestSizes(t *testing.T) {
	h64, _ := New64(canonicalKey())
	h128, _ := New128(canonicalKey())
	if h64.Size() != Size64 || h128.Size() != Size128 {
		t.Fatalf("unexpected sizes %d %d", h64.Size(), h128.Size())
	}
	if h64.BlockSize() != BlockSize {
		t.Fatalf("unexpected block size %d", h64.BlockSize())
	}
	if got := binary.LittleEndian.Uint64(h64.Sum(nil)); got != h64.Sum64() {
		t.Fatalf("Sum and Sum64 disagree")
	}
}

func TestDigestParams(t *testing.T) {
	h, err := Fast.New64(canonicalKey())
	if err != nil {
		t.Fatalf("New64: %v", err)
	}
	msg := sequential(29)
	h.Write(msg)
	if got, want := h.Sum64(), Fast.Sum64(msg, testK0, testK1); got != want {
		t.Fatalf("got %016x, want %016x", got, want)
	}
}

func TestDigestBadKey(t *testing.T) {
	var kse KeySizeError
	if _, err := New64(make([]byte, 15)); !errors.As(err, &kse) || int(kse) != 15 {
		t.Fatalf("expected KeySizeError(15), got %v", err)
	}
	if _, err := New128(nil); !errors.As(err, &kse) {
		t.Fatalf("expected KeySizeError, got %v", err)
	}
}

func BenchmarkDigest64(b *testing.B) {
	h, _ := New64(canonicalKey())
	msg := make([]byte, 1024)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset()
		h.Write(msg)
		_ = h.Sum64()
	}
}
