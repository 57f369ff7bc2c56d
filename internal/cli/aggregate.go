package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/model"
	"github.com/aidanlsb/querykit/internal/query"
	"github.com/aidanlsb/querykit/internal/ui"
)

var (
	aggregateOp     string
	aggregateMinAge int
)

// AggregateResult is the JSON payload of 'qk aggregate'.
type AggregateResult struct {
	Op     string  `json:"op"`
	Over   string  `json:"over"`
	Count  int     `json:"count"`
	Value  json.Number `json:"value"`
	MinAge *int    `json:"min_age,omitempty"`
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate [numbers...]",
	Short: "Sum, average, max, min or count",
	Long: `Aggregates the ages of people older than --min-age, or the given numbers.

Average, max and min of an empty selection fail with EMPTY_INPUT; sum of an
empty selection is 0.

Examples:
  qk aggregate --op average
  qk aggregate --op max --min-age 100
  qk aggregate --op sum 1 2 3 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := query.ParseAggregateOp(aggregateOp)
		if err != nil {
			return handleError(ErrInvalidArgument, err, "Use one of: sum, average, max, min, count")
		}

		var (
			value  query.Result[int]
			result AggregateResult
			source string
		)
		start := time.Now()
		if len(args) > 0 {
			nums, err := parseInts(args)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			source = "args"
			value, err = query.Aggregate(nums, func(n int) int { return n }, op)
			if err != nil {
				return handleQueryError(err, ErrInternal)
			}
			result = AggregateResult{Over: "numbers", Count: len(nums)}
		} else {
			ds, err := loadDataset()
			if err != nil {
				return err
			}
			if err := requirePeople(ds); err != nil {
				return err
			}
			source = ds.Source
			matched := query.Where(ds.People, func(p model.Person) bool { return p.Age > aggregateMinAge })
			value, err = query.Aggregate(matched, func(p model.Person) int { return p.Age }, op)
			if err != nil {
				return handleQueryError(fmt.Errorf("people older than %d: %w", aggregateMinAge, err), ErrInternal)
			}
			minAge := aggregateMinAge
			result = AggregateResult{Over: "age", Count: len(matched), MinAge: &minAge}
		}
		result.Op = op.String()
		result.Value = json.Number(value.String())
		elapsed := elapsedMs("aggregate", start)

		if isJSONOutput() {
			outputSuccess(result, &Meta{Count: result.Count, Source: source, QueryTimeMs: elapsed})
			return nil
		}

		label := op.String() + " of " + result.Over
		if result.MinAge != nil {
			label += fmt.Sprintf(" (older than %d)", *result.MinAge)
		}
		out(fmt.Sprintf("%s %s", ui.Muted.Render(label+":"), ui.Accent.Render(formatAggregate(value))))
		return nil
	},
}

// formatAggregate groups digits; only the average has decimals.
func formatAggregate(r query.Result[int]) string {
	switch r.Op {
	case query.AggAverage:
		return strings.TrimSuffix(humanize.FormatFloat("#,###.##", r.Mean), ".00")
	case query.AggCount:
		return humanize.Comma(int64(r.Count))
	default:
		return humanize.Comma(int64(r.Value))
	}
}

func init() {
	aggregateCmd.Flags().StringVar(&aggregateOp, "op", "average", "Operation: sum, average, max, min, count")
	aggregateCmd.Flags().IntVar(&aggregateMinAge, "min-age", 30, "Keep people strictly older than this")
	rootCmd.AddCommand(aggregateCmd)
}
