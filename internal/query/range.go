package query

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
)

// Range returns a lazy sequence of count consecutive integers starting at
// start. The sequence holds no state and can be iterated any number of times.
func Range(start, count int) (iter.Seq[int], error) {
	if count < 0 {
		return nil, fmt.Errorf("range count %d: %w", count, ErrInvalidArgument)
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return nil, fmt.Errorf("range %d+%d overflows int: %w", start, count, ErrInvalidArgument)
	}
	return func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	}, nil
}

// RandomInts draws count integers in [0, limit) from rng. The generator is
// owned by the caller; seeding it makes the output reproducible.
func RandomInts(rng *rand.Rand, count, limit int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("random ints: nil generator: %w", ErrInvalidArgument)
	}
	if count < 0 {
		return nil, fmt.Errorf("random ints count %d: %w", count, ErrInvalidArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("random ints limit %d: %w", limit, ErrInvalidArgument)
	}
	seq, err := Range(0, count)
	if err != nil {
		return nil, err
	}
	return Collect(Map(seq, func(int) int { return rng.IntN(limit) })), nil
}
