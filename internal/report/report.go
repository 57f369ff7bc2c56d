// Package report runs the standard sequence of queries over a dataset and
// renders the results as text, markdown or HTML.
package report

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/querykit/internal/model"
	"github.com/aidanlsb/querykit/internal/query"
)

// Options tunes Build. DefaultOptions reproduces the sample run.
type Options struct {
	// MinAge is the exclusive lower bound for the filtered people.
	MinAge int
	// SortFields orders the filtered people; empty means age then first name.
	SortFields []query.SortField
	// AllowEmpty lets Build succeed when no person passes the filter;
	// average, max and min are then omitted instead of failing.
	AllowEmpty bool
	// RangeStart and RangeCount describe the generated range.
	RangeStart int
	RangeCount int
	// Squares is how many squares (1², 2², ...) to generate.
	Squares int
}

// DefaultOptions returns the options matching the built-in sample run.
func DefaultOptions() Options {
	return Options{
		MinAge:     30,
		SortFields: DefaultSortFields(),
		RangeStart: 12,
		RangeCount: 55,
		Squares:    10,
	}
}

// Stats holds the aggregates over the filtered people's ages.
// Average, Max and Min are nil when the filtered set is empty.
type Stats struct {
	Count   int      `json:"count"`
	Sum     int      `json:"sum"`
	Average *float64 `json:"average,omitempty"`
	Max     *int     `json:"max,omitempty"`
	Min     *int     `json:"min,omitempty"`
}

// Group is one key of a grouping, in first-occurrence order.
type Group struct {
	Key    string `json:"key"`
	Values []int  `json:"values"`
}

// Report is the result of Build.
type Report struct {
	Source   string          `json:"source"`
	Contacts []model.Contact `json:"contacts"`
	MinAge   int             `json:"min_age"`
	SortSpec string          `json:"sort"`
	Filtered []model.Person  `json:"filtered"`
	Stats    Stats           `json:"stats"`
	Numbers  []int           `json:"numbers"`
	Distinct []int           `json:"distinct"`
	Range    []int           `json:"range"`
	Squares  []int           `json:"squares"`
	Groups   []Group         `json:"groups"`
}

// Build runs projection, filter and order, aggregation, deduplication,
// range generation and grouping over people and numbers.
func Build(source string, people []model.Person, numbers []int, opts Options) (*Report, error) {
	fields := opts.SortFields
	if len(fields) == 0 {
		fields = DefaultSortFields()
	}
	keys, err := PersonSortKeys(fields)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Source:   source,
		MinAge:   opts.MinAge,
		SortSpec: FormatSortFields(fields),
		Numbers:  append([]int{}, numbers...),
	}

	r.Contacts = query.Select(people, model.ToContact)

	adults := query.Where(people, func(p model.Person) bool { return p.Age > opts.MinAge })
	r.Filtered = query.OrderBy(adults, keys...)

	r.Stats, err = ageStats(r.Filtered, opts.AllowEmpty)
	if err != nil {
		return nil, fmt.Errorf("people older than %d: %w", opts.MinAge, err)
	}

	r.Distinct = query.Distinct(numbers)

	rng, err := query.Range(opts.RangeStart, opts.RangeCount)
	if err != nil {
		return nil, err
	}
	r.Range = query.Collect(rng)

	ones, err := query.Range(1, opts.Squares)
	if err != nil {
		return nil, fmt.Errorf("squares: %w", err)
	}
	r.Squares = query.Collect(query.Map(ones, func(n int) int { return n * n }))

	groups := query.GroupBy(numbers, Parity)
	for k, values := range groups.All() {
		r.Groups = append(r.Groups, Group{Key: k, Values: values})
	}
	if r.Groups == nil {
		r.Groups = []Group{}
	}

	return r, nil
}

func ageStats(people []model.Person, allowEmpty bool) (Stats, error) {
	age := func(p model.Person) int { return p.Age }
	s := Stats{
		Count: query.Count(people),
		Sum:   query.Sum(people, age),
	}

	avg, err := query.Average(people, age)
	if errors.Is(err, query.ErrEmptyInput) && allowEmpty {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	maxAge, err := query.Max(people, age)
	if err != nil {
		return s, err
	}
	minAge, err := query.Min(people, age)
	if err != nil {
		return s, err
	}

	s.Average, s.Max, s.Min = &avg, &maxAge, &minAge
	return s, nil
}
