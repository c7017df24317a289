package flow

import (
	"context"
	"errors"
	"net/netip"
	"testing"
)

func makeTuples(n int) []Tuple {
	tuples := make([]Tuple, n)
	for i := range tuples {
		tuples[i] = Tuple{
			Src:     netip.AddrFrom4([4]byte{10, 0, byte(i >> 8), byte(i)}),
			Dst:     netip.MustParseAddr("10.255.0.1"),
			SrcPort: uint16(1024 + i),
			DstPort: 80,
			Proto:   ProtocolTCP,
		}
	}
	return tuples
}

func TestHashBatchMatchesSequential(t *testing.T) {
	tuples := makeTuples(5000)
	for _, workers := range []int{0, 1, 3, 16} {
		out := make([]uint64, len(tuples))
		if err := HashBatch(context.Background(), testKey, tuples, out, workers); err != nil {
			t.Fatalf("HashBatch(%d workers): %v", workers, err)
		}
		for i, tup := range tuples {
			if out[i] != tup.Hash(testKey) {
				t.Fatalf("workers %d: result %d differs from sequential hash", workers, i)
			}
		}
	}
}

func TestHashBatchDistinct(t *testing.T) {
	tuples := makeTuples(2000)
	out := make([]uint64, len(tuples))
	if err := HashBatch(context.Background(), testKey, tuples, out, 4); err != nil {
		t.Fatalf("HashBatch: %v", err)
	}
	seen := make(map[uint64]struct{}, len(out))
	for _, h := range out {
		if _, ok := seen[h]; ok {
			t.Fatalf("unexpected digest collision among %d flows", len(out))
		}
		seen[h] = struct{}{}
	}
}

func TestHashBatchLengthMismatch(t *testing.T) {
	err := HashBatch(context.Background(), testKey, makeTuples(3), make([]uint64, 2), 1)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestHashBatchEmpty(t *testing.T) {
	if err := HashBatch(context.Background(), testKey, nil, nil, 2); err != nil {
		t.Fatalf("HashBatch: %v", err)
	}
}

func TestHashBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tuples := makeTuples(1000)
	err := HashBatch(ctx, testKey, tuples, make([]uint64, len(tuples)), 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func BenchmarkHashBatch(b *testing.B) {
	tuples := makeTuples(1 << 14)
	out := make([]uint64, len(tuples))
	b.SetBytes(int64(len(tuples) * EncodedLen))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashBatch(context.Background(), testKey, tuples, out, 0)
	}
}
