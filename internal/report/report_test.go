package report

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/querykit/internal/model"
	"github.com/aidanlsb/querykit/internal/query"
)

func buildSample(t *testing.T, opts Options) *Report {
	t.Helper()
	r, err := Build("sample", model.SamplePeople(), model.SampleNumbers(), opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

func TestBuildSample(t *testing.T) {
	r := buildSample(t, DefaultOptions())

	if len(r.Contacts) != 7 {
		t.Fatalf("expected 7 contacts, got %d", len(r.Contacts))
	}
	if r.Contacts[4] != (model.Contact{FullName: "212jdas2w ppqim", ConfirmedEmail: false}) {
		t.Errorf("unexpected contact: %+v", r.Contacts[4])
	}

	ages := query.Select(r.Filtered, func(p model.Person) int { return p.Age })
	if diff := cmp.Diff([]int{55, 145, 434}, ages); diff != "" {
		t.Errorf("filtered ages mismatch (-want +got):\n%s", diff)
	}
	if r.SortSpec != "age,first_name" {
		t.Errorf("SortSpec = %q", r.SortSpec)
	}

	if r.Stats.Count != 3 || r.Stats.Sum != 634 {
		t.Errorf("unexpected count/sum: %+v", r.Stats)
	}
	if r.Stats.Average == nil || math.Abs(*r.Stats.Average-634.0/3) > 1e-9 {
		t.Errorf("unexpected average: %v", r.Stats.Average)
	}
	if r.Stats.Max == nil || *r.Stats.Max != 434 || r.Stats.Min == nil || *r.Stats.Min != 55 {
		t.Errorf("unexpected max/min: %+v", r.Stats)
	}

	wantDistinct := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if diff := cmp.Diff(wantDistinct, r.Distinct); diff != "" {
		t.Errorf("distinct mismatch (-want +got):\n%s", diff)
	}

	if len(r.Range) != 55 || r.Range[0] != 12 || r.Range[54] != 66 {
		t.Errorf("unexpected range: len=%d", len(r.Range))
	}
	if diff := cmp.Diff([]int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, r.Squares); diff != "" {
		t.Errorf("squares mismatch (-want +got):\n%s", diff)
	}

	wantGroups := []Group{
		{Key: "Odd", Values: []int{1, 3, 5, 7, 9, 9, 11, 13, 15}},
		{Key: "Even", Values: []int{2, 4, 6, 8, 8, 10, 12, 14}},
	}
	if diff := cmp.Diff(wantGroups, r.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	people := model.SamplePeople()
	numbers := model.SampleNumbers()
	if _, err := Build("sample", people, numbers, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(model.SamplePeople(), people); diff != "" {
		t.Errorf("people mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(model.SampleNumbers(), numbers); diff != "" {
		t.Errorf("numbers mutated (-want +got):\n%s", diff)
	}
}

func TestBuildCustomSort(t *testing.T) {
	opts := DefaultOptions()
	opts.MinAge = 20
	fields, err := query.ParseSortSpec("-age,last")
	if err != nil {
		t.Fatal(err)
	}
	opts.SortFields = fields

	r := buildSample(t, opts)
	names := query.Select(r.Filtered, func(p model.Person) string { return p.FirstName })
	want := []string{"iwopq", "hassan", "asas", "212jdas2w", "oitrq", "pppaiw"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if r.SortSpec != "-age,last" {
		t.Errorf("SortSpec = %q", r.SortSpec)
	}
}

func TestBuildEmptyFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.MinAge = 1000

	_, err := Build("sample", model.SamplePeople(), model.SampleNumbers(), opts)
	if !errors.Is(err, query.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	opts.AllowEmpty = true
	r := buildSample(t, opts)
	if r.Stats.Count != 0 || r.Stats.Sum != 0 {
		t.Errorf("unexpected stats: %+v", r.Stats)
	}
	if r.Stats.Average != nil || r.Stats.Max != nil || r.Stats.Min != nil {
		t.Errorf("expected average/max/min to be omitted: %+v", r.Stats)
	}
}

func TestBuildInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowEmpty = true
	opts.RangeCount = -1
	if _, err := Build("sample", nil, nil, opts); !errors.Is(err, query.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative range, got %v", err)
	}

	opts = DefaultOptions()
	opts.SortFields = []query.SortField{{Name: "height"}}
	if _, err := Build("sample", model.SamplePeople(), nil, opts); !errors.Is(err, query.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown field, got %v", err)
	}
}

func TestPersonSortKeysAliases(t *testing.T) {
	for _, name := range []string{"first", "firstname", "first_name", "last", "lastname", "name", "fullname", "age", "email"} {
		if _, err := PersonSortKeys([]query.SortField{{Name: name}}); err != nil {
			t.Errorf("PersonSortKeys(%q): %v", name, err)
		}
	}
}

func TestParity(t *testing.T) {
	cases := map[int]string{0: "Even", 1: "Odd", 2: "Even", -3: "Odd", -4: "Even"}
	for n, want := range cases {
		if got := Parity(n); got != want {
			t.Errorf("Parity(%d) = %q, want %q", n, got, want)
		}
	}
}
