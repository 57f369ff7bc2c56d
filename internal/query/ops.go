// Package query implements query-style operations over in-memory sequences:
// projection, filtering, ordering, aggregation, deduplication, range
// generation and grouping.
//
// Every operation takes a fully materialized slice and returns a newly
// allocated result. Inputs are never modified.
package query

import (
	"fmt"
	"iter"
)

// Select projects each element of seq through fn, one output per input, in order.
func Select[T, R any](seq []T, fn func(T) R) []R {
	out := make([]R, len(seq))
	for i, v := range seq {
		out[i] = fn(v)
	}
	return out
}

// Where returns the elements of seq for which pred holds, preserving order.
func Where[T any](seq []T, pred func(T) bool) []T {
	var filtered []T
	for _, v := range seq {
		if pred(v) {
			filtered = append(filtered, v)
		}
	}
	if filtered == nil {
		return []T{}
	}
	return filtered
}

// Count returns the number of elements in seq.
func Count[T any](seq []T) int {
	return len(seq)
}

// Take returns at most the first n elements of seq.
func Take[T any](seq []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("take %d: %w", n, ErrInvalidArgument)
	}
	if n > len(seq) {
		n = len(seq)
	}
	out := make([]T, n)
	copy(out, seq[:n])
	return out, nil
}

// Skip returns seq without its first n elements.
func Skip[T any](seq []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("skip %d: %w", n, ErrInvalidArgument)
	}
	if n > len(seq) {
		n = len(seq)
	}
	out := make([]T, len(seq)-n)
	copy(out, seq[n:])
	return out, nil
}

// Map lazily projects an iterator. The returned sequence can be ranged over
// as many times as the source can.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Collect materializes an iterator into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}
