package flow

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/TheusHen/sipflow/sipflow/siphash"
)

var ErrLengthMismatch = errors.New("flow: result slice length does not match tuples")

// minShard keeps goroutine overhead small relative to the hashing work.
const minShard = 256

// HashBatch writes tuples[i].Hash(key) to out[i] for every tuple, splitting
// the slice into shards hashed by up to workers goroutines (GOMAXPROCS if
// workers <= 0). Shards not yet started when ctx is cancelled are skipped
// and ctx's error is returned.
func HashBatch(ctx context.Context, key siphash.Key, tuples []Tuple, out []uint64, workers int) error {
	if len(out) != len(tuples) {
		return fmt.Errorf("%w: %d tuples, %d results", ErrLengthMismatch, len(tuples), len(out))
	}
	if len(tuples) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	shard := (len(tuples) + workers - 1) / workers
	if shard < minShard {
		shard = minShard
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(tuples); lo += shard {
		hi := min(lo+shard, len(tuples))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = tuples[i].Hash(key)
			}
			return nil
		})
	}
	return g.Wait()
}
