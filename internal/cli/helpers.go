package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/querykit/internal/logger"
)

// parseInts parses positional number arguments. Commas are accepted as
// separators so "1,2,3" and "1 2 3" are equivalent.
func parseInts(args []string) ([]int, error) {
	var nums []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", part)
			}
			nums = append(nums, n)
		}
	}
	return nums, nil
}

// numbersFromArgs returns the numbers given on the command line, or the
// dataset's numbers when none are given.
func numbersFromArgs(args []string) ([]int, string, error) {
	if len(args) > 0 {
		nums, err := parseInts(args)
		if err != nil {
			return nil, "", handleError(ErrInvalidInput, err, "Pass integers, e.g. 'qk distinct 1 2 2 3'")
		}
		return nums, "args", nil
	}
	ds, err := loadDataset()
	if err != nil {
		return nil, "", err
	}
	return ds.Numbers, ds.Source, nil
}

// elapsedMs logs the duration of op at debug level and returns it in milliseconds.
func elapsedMs(op string, start time.Time) int64 {
	d := time.Since(start)
	logger.Get().Debug("query finished", "op", op, "duration", d)
	return d.Milliseconds()
}

// outf writes formatted text to stdout.
func outf(format string, args ...interface{}) {
	fmt.Fprintf(stdout, format, args...)
}

// out writes a line to stdout.
func out(args ...interface{}) {
	fmt.Fprintln(stdout, args...)
}

// joinInts renders numbers as "1 2 3" so the output can be fed back as args.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
