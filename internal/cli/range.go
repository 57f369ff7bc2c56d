package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/query"
)

var rangeSquare bool

var rangeCmd = &cobra.Command{
	Use:   "range START COUNT",
	Short: "Generate COUNT consecutive integers from START",
	Long: `Generates START, START+1, ... with exactly COUNT values.
With --square each value is squared.

Examples:
  qk range 12 55
  qk range 1 10 --square`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return handleErrorMsg(ErrMissingArgument, "requires START and COUNT", "Usage: qk range START COUNT")
		}
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("START %q is not an integer", args[0]), "")
		}
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("COUNT %q is not an integer", args[1]), "")
		}

		t0 := time.Now()
		seq, err := query.Range(start, count)
		if err != nil {
			return handleQueryError(err, ErrInvalidArgument)
		}
		if rangeSquare {
			seq = query.Map(seq, func(n int) int { return n * n })
		}
		values := query.Collect(seq)
		elapsed := elapsedMs("range", t0)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"start":  start,
				"count":  count,
				"square": rangeSquare,
				"values": values,
			}, &Meta{Count: len(values), QueryTimeMs: elapsed})
			return nil
		}

		if len(values) > 0 {
			out(joinInts(values))
		}
		return nil
	},
}

func init() {
	rangeCmd.Flags().BoolVar(&rangeSquare, "square", false, "Square each generated value")
	rootCmd.AddCommand(rangeCmd)
}
