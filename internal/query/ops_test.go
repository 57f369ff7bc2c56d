package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type person struct {
	First string
	Last  string
	Age   int
	Email string
}

func samplePeople() []person {
	return []person{
		{"hossien", "solymany", 14, "h@gmail.com"},
		{"hassan", "khj", 145, "2aa@gmail.com"},
		{"asas", "sowwy", 55, "aa@gmail.com"},
		{"oitrq", "oooai", 21, "oo@gmail.com"},
		{"212jdas2w", "ppqim", 22, ""},
		{"iwopq", "uurjn", 434, ""},
		{"pppaiw", "qie3uc", 21, "qq@gmail.com"},
	}
}

func TestSelect(t *testing.T) {
	type contact struct {
		FullName       string
		ConfirmedEmail bool
	}

	people := samplePeople()
	got := Select(people, func(p person) contact {
		return contact{FullName: p.First + " " + p.Last, ConfirmedEmail: p.Email != ""}
	})

	if len(got) != len(people) {
		t.Fatalf("Select returned %d elements, want %d", len(got), len(people))
	}
	if got[0] != (contact{"hossien solymany", true}) {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[4].ConfirmedEmail {
		t.Errorf("expected %q to have no confirmed email", got[4].FullName)
	}
}

func TestSelectPreservesLength(t *testing.T) {
	inputs := [][]int{nil, {}, {1}, {3, 1, 2}, {5, 5, 5, 5}}
	for _, in := range inputs {
		out := Select(in, func(n int) string { return strings.Repeat("x", n) })
		if Count(out) != Count(in) {
			t.Errorf("Select(%v) length = %d, want %d", in, Count(out), Count(in))
		}
	}
}

func TestWhere(t *testing.T) {
	people := samplePeople()
	adults := Where(people, func(p person) bool { return p.Age > 30 })

	var names []string
	for _, p := range adults {
		names = append(names, p.First)
	}
	want := []string{"hassan", "asas", "iwopq"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Where order mismatch (-want +got):\n%s", diff)
	}

	// Input untouched
	if people[0].First != "hossien" || len(people) != 7 {
		t.Errorf("Where modified its input")
	}
}

func TestWhereNeverGrows(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 8, 9, 9, 10}
	preds := map[string]func(int) bool{
		"none": func(int) bool { return false },
		"all":  func(int) bool { return true },
		"even": func(n int) bool { return n%2 == 0 },
		"big":  func(n int) bool { return n > 8 },
	}
	for name, p := range preds {
		t.Run(name, func(t *testing.T) {
			if got := Count(Where(in, p)); got > Count(in) {
				t.Fatalf("Count(Where) = %d > %d", got, Count(in))
			}
		})
	}
}

func TestWhereEmptyResultIsNonNil(t *testing.T) {
	got := Where([]int{1, 2}, func(int) bool { return false })
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCount(t *testing.T) {
	if Count([]int{}) != 0 {
		t.Errorf("Count of empty slice should be 0")
	}
	if Count(samplePeople()) != 7 {
		t.Errorf("Count(samplePeople) = %d, want 7", Count(samplePeople()))
	}
}

func TestTakeSkip(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		n        int
		wantTake []int
		wantSkip []int
	}{
		{name: "zero", n: 0, wantTake: []int{}, wantSkip: []int{1, 2, 3, 4, 5}},
		{name: "middle", n: 2, wantTake: []int{1, 2}, wantSkip: []int{3, 4, 5}},
		{name: "all", n: 5, wantTake: []int{1, 2, 3, 4, 5}, wantSkip: []int{}},
		{name: "past end", n: 9, wantTake: []int{1, 2, 3, 4, 5}, wantSkip: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			took, err := Take(in, tt.n)
			if err != nil {
				t.Fatalf("Take: %v", err)
			}
			if diff := cmp.Diff(tt.wantTake, took); diff != "" {
				t.Errorf("Take mismatch (-want +got):\n%s", diff)
			}
			skipped, err := Skip(in, tt.n)
			if err != nil {
				t.Fatalf("Skip: %v", err)
			}
			if diff := cmp.Diff(tt.wantSkip, skipped); diff != "" {
				t.Errorf("Skip mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Take(in, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Take(-1) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Skip(in, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Skip(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestMapIsLazy(t *testing.T) {
	calls := 0
	seq, err := Range(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	squares := Map(seq, func(n int) int {
		calls++
		return n * n
	})
	if calls != 0 {
		t.Fatalf("Map evaluated %d elements before iteration", calls)
	}

	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}
	if diff := cmp.Diff(want, Collect(squares)); diff != "" {
		t.Errorf("squares mismatch (-want +got):\n%s", diff)
	}

	for n := range squares {
		if n > 10 {
			break
		}
	}
	if calls != 14 {
		t.Errorf("expected early break to stop evaluation, calls = %d", calls)
	}
}
