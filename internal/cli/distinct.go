package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/query"
	"github.com/aidanlsb/querykit/internal/ui"
)

// DistinctResult is the JSON payload of 'qk distinct'.
type DistinctResult struct {
	Input    []int `json:"input"`
	Distinct []int `json:"distinct"`
	Removed  int   `json:"removed"`
}

var distinctCmd = &cobra.Command{
	Use:   "distinct [numbers...]",
	Short: "Remove duplicate numbers, keeping first occurrences",
	Long: `Removes duplicates from the given numbers (or the dataset's numbers),
keeping the first occurrence of each value in its original position.

Examples:
  qk distinct
  qk distinct 3 1 3 2 1
  qk distinct 1,2,2,3 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, source, err := numbersFromArgs(args)
		if err != nil {
			return err
		}

		start := time.Now()
		distinct := query.Distinct(nums)
		elapsed := elapsedMs("distinct", start)

		if isJSONOutput() {
			outputSuccess(DistinctResult{
				Input:    nums,
				Distinct: distinct,
				Removed:  len(nums) - len(distinct),
			}, &Meta{Count: len(distinct), Source: source, QueryTimeMs: elapsed})
			return nil
		}

		out(joinInts(distinct))
		out(ui.Hint(ui.Count(len(nums)-len(distinct), "duplicate removed", "duplicates removed")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distinctCmd)
}
