package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/query"
	"github.com/aidanlsb/querykit/internal/report"
	"github.com/aidanlsb/querykit/internal/ui"
)

var groupCmd = &cobra.Command{
	Use:   "group [numbers...]",
	Short: "Group numbers by parity",
	Long: `Groups the given numbers (or the dataset's numbers) into "Odd" and "Even".
Groups appear in the order their key first occurs; values keep input order.

Examples:
  qk group
  qk group 1 2 3 4 5 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, source, err := numbersFromArgs(args)
		if err != nil {
			return err
		}

		start := time.Now()
		lookup := query.GroupBy(nums, report.Parity)
		groups := make([]report.Group, 0, lookup.Len())
		for k, values := range lookup.All() {
			groups = append(groups, report.Group{Key: k, Values: values})
		}
		elapsed := elapsedMs("group", start)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"groups": groups,
			}, &Meta{Count: len(groups), Source: source, QueryTimeMs: elapsed})
			return nil
		}

		if len(groups) == 0 {
			out(ui.Hint("No numbers to group."))
			return nil
		}
		for _, g := range groups {
			out(fmt.Sprintf("%s %s", ui.Key(g.Key+":"), joinInts(g.Values)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
