package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is the set of element types aggregations can reduce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AggregateOp selects the reduction performed by Aggregate.
type AggregateOp int

const (
	AggSum     AggregateOp = iota // Sum of values; 0 for empty input
	AggAverage                    // Arithmetic mean
	AggMax                        // Maximum value
	AggMin                        // Minimum value
	AggCount                      // Number of elements
)

var aggregateOpNames = map[AggregateOp]string{
	AggSum:     "sum",
	AggAverage: "average",
	AggMax:     "max",
	AggMin:     "min",
	AggCount:   "count",
}

func (op AggregateOp) String() string {
	if name, ok := aggregateOpNames[op]; ok {
		return name
	}
	return fmt.Sprintf("AggregateOp(%d)", int(op))
}

// ParseAggregateOp parses an operation name. "avg" is accepted for average.
func ParseAggregateOp(s string) (AggregateOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum":
		return AggSum, nil
	case "average", "avg":
		return AggAverage, nil
	case "max":
		return AggMax, nil
	case "min":
		return AggMin, nil
	case "count":
		return AggCount, nil
	}
	return 0, fmt.Errorf("unknown aggregation %q (want sum, average, max, min or count): %w", s, ErrInvalidArgument)
}

// Sum adds up fn over seq. The sum of an empty sequence is 0.
func Sum[T any, N Number](seq []T, fn func(T) N) N {
	var sum N
	for _, v := range seq {
		sum += fn(v)
	}
	return sum
}

// Average returns the floating-point mean of fn over seq.
func Average[T any, N Number](seq []T, fn func(T) N) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("average: %w", ErrEmptyInput)
	}
	var sum float64
	for _, v := range seq {
		sum += float64(fn(v))
	}
	return sum / float64(len(seq)), nil
}

// Max returns the largest value of fn over seq.
func Max[T any, N Number](seq []T, fn func(T) N) (N, error) {
	if len(seq) == 0 {
		var zero N
		return zero, fmt.Errorf("max: %w", ErrEmptyInput)
	}
	maxVal := fn(seq[0])
	for _, v := range seq[1:] {
		if n := fn(v); n > maxVal {
			maxVal = n
		}
	}
	return maxVal, nil
}

// Min returns the smallest value of fn over seq.
func Min[T any, N Number](seq []T, fn func(T) N) (N, error) {
	if len(seq) == 0 {
		var zero N
		return zero, fmt.Errorf("min: %w", ErrEmptyInput)
	}
	minVal := fn(seq[0])
	for _, v := range seq[1:] {
		if n := fn(v); n < minVal {
			minVal = n
		}
	}
	return minVal, nil
}

// Result is the outcome of Aggregate. Sum, max and min are held in Value
// with the element type's own precision; the average is held in Mean.
// Count is always the number of elements aggregated.
type Result[N Number] struct {
	Op    AggregateOp
	Value N
	Mean  float64
	Count int
}

// Float returns the result widened to float64.
func (r Result[N]) Float() float64 {
	switch r.Op {
	case AggAverage:
		return r.Mean
	case AggCount:
		return float64(r.Count)
	default:
		return float64(r.Value)
	}
}

// String formats the result exactly: integers in full, floats in the
// shortest form that round-trips.
func (r Result[N]) String() string {
	switch r.Op {
	case AggAverage:
		return strconv.FormatFloat(r.Mean, 'g', -1, 64)
	case AggCount:
		return strconv.Itoa(r.Count)
	}
	switch v := any(r.Value).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(r.Value)
	}
}

// Aggregate is the dynamic form of Sum, Average, Max, Min and Count, for
// callers that pick the operation at runtime.
func Aggregate[T any, N Number](seq []T, fn func(T) N, op AggregateOp) (Result[N], error) {
	r := Result[N]{Op: op, Count: len(seq)}
	var err error
	switch op {
	case AggSum:
		r.Value = Sum(seq, fn)
	case AggAverage:
		r.Mean, err = Average(seq, fn)
	case AggMax:
		r.Value, err = Max(seq, fn)
	case AggMin:
		r.Value, err = Min(seq, fn)
	case AggCount:
	default:
		return Result[N]{}, fmt.Errorf("aggregate %s: %w", op, ErrInvalidArgument)
	}
	if err != nil {
		return Result[N]{}, err
	}
	return r, nil
}
