package query

import "errors"

// ErrEmptyInput is returned by aggregations that need at least one element
// (average, max, min) when they are given an empty sequence.
var ErrEmptyInput = errors.New("empty input")

// ErrInvalidArgument is returned when a numeric argument is out of range,
// for example a negative count passed to Range.
var ErrInvalidArgument = errors.New("invalid argument")
