package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/model"
	"github.com/aidanlsb/querykit/internal/query"
	"github.com/aidanlsb/querykit/internal/report"
	"github.com/aidanlsb/querykit/internal/ui"
)

var (
	peopleMinAge   int
	peopleSort     sortValue
	peopleLimit    int
	peopleSkip     int
	peopleContacts bool
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Filter, order and page through people",
	Long: `Lists people older than --min-age, ordered by --sort.

Sort fields: first_name, last_name, full_name, age, email. Prefix a field
with "-" (or suffix ":desc") for descending order. Later fields break ties.

Examples:
  qk people
  qk people --min-age 0 --sort last_name,-age
  qk people --min-age 0 --skip 2 --limit 3
  qk people --contacts --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		if err := requirePeople(ds); err != nil {
			return err
		}

		start := time.Now()
		keys, err := report.PersonSortKeys(peopleSort.Fields())
		if err != nil {
			return handleQueryError(err, ErrInvalidInput)
		}

		matched := query.Where(ds.People, func(p model.Person) bool { return p.Age > peopleMinAge })
		ordered := query.OrderBy(matched, keys...)

		page, err := query.Skip(ordered, peopleSkip)
		if err != nil {
			return handleQueryError(err, ErrInvalidArgument)
		}
		if cmd.Flags().Changed("limit") {
			page, err = query.Take(page, peopleLimit)
			if err != nil {
				return handleQueryError(err, ErrInvalidArgument)
			}
		}
		elapsed := elapsedMs("people", start)

		if isJSONOutput() {
			meta := &Meta{Count: query.Count(page), Source: ds.Source, QueryTimeMs: elapsed}
			if peopleContacts {
				outputSuccess(map[string]interface{}{
					"contacts": query.Select(page, model.ToContact),
					"total":    query.Count(matched),
				}, meta)
				return nil
			}
			outputSuccess(map[string]interface{}{
				"people": page,
				"total":  query.Count(matched),
			}, meta)
			return nil
		}

		if len(page) == 0 {
			out(ui.Hint("No people match."))
			return nil
		}

		var t *ui.Table
		if peopleContacts {
			t = ui.NewTable(2)
			t.SetHeader("FULL NAME", "EMAIL")
			for _, c := range query.Select(page, model.ToContact) {
				email := "none"
				if c.ConfirmedEmail {
					email = "confirmed"
				}
				t.AddRow(c.FullName, email)
			}
		} else {
			t = ui.NewTable(4)
			t.SetHeader("FIRST", "LAST", "AGE", "EMAIL")
			for _, p := range page {
				t.AddRow(p.FirstName, p.LastName, strconv.Itoa(p.Age), p.Email)
			}
		}
		outf("%s", t.String())
		out(ui.Hint(fmt.Sprintf("%d of %d matching, sorted by %s",
			len(page), len(matched), report.FormatSortFields(peopleSort.Fields()))))
		return nil
	},
}

func init() {
	peopleCmd.Flags().IntVar(&peopleMinAge, "min-age", 30, "Keep people strictly older than this")
	peopleCmd.Flags().Var(&peopleSort, "sort", "Sort fields, e.g. age,-first_name (default age,first_name)")
	peopleCmd.Flags().IntVarP(&peopleLimit, "limit", "n", 0, "Show at most this many people")
	peopleCmd.Flags().IntVar(&peopleSkip, "skip", 0, "Skip this many people before listing")
	peopleCmd.Flags().BoolVar(&peopleContacts, "contacts", false, "Project people to name and email confirmation")
	rootCmd.AddCommand(peopleCmd)
}
