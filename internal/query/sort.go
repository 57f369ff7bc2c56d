package query

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// SortKey is a single ordering criterion. Keys passed to OrderBy are applied
// in order: the first key decides, later keys only break ties.
type SortKey[T any] struct {
	Compare    func(a, b T) int
	Descending bool
}

// Asc orders by the key extracted with fn, smallest first.
func Asc[T any, K cmp.Ordered](fn func(T) K) SortKey[T] {
	return SortKey[T]{Compare: func(a, b T) int { return cmp.Compare(fn(a), fn(b)) }}
}

// Desc orders by the key extracted with fn, largest first.
func Desc[T any, K cmp.Ordered](fn func(T) K) SortKey[T] {
	k := Asc(fn)
	k.Descending = true
	return k
}

// By builds a key from an arbitrary three-way comparator.
func By[T any](compare func(a, b T) int, descending bool) SortKey[T] {
	return SortKey[T]{Compare: compare, Descending: descending}
}

// OrderBy returns a sorted copy of seq. Elements equal on every key keep
// their input order.
func OrderBy[T any](seq []T, keys ...SortKey[T]) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	if len(keys) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range keys {
			c := k.Compare(out[i], out[j])
			if c != 0 {
				if k.Descending {
					return c > 0
				}
				return c < 0
			}
			// Equal on this key, continue to next
		}
		return false
	})
	return out
}

// SortField is one named criterion parsed from a sort spec.
type SortField struct {
	Name       string
	Descending bool
}

// ParseSortSpec parses a comma separated list of field names into sort
// fields. A field is descending when prefixed with "-" or suffixed with
// ":desc"; a leading "." is accepted and dropped.
//
//	age,-first_name
//	.age:asc, .first_name:desc
func ParseSortSpec(spec string) ([]SortField, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ",")
	fields := make([]SortField, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		f := SortField{}

		if strings.HasPrefix(part, "-") {
			f.Descending = true
			part = part[1:]
		}
		if name, dir, ok := strings.Cut(part, ":"); ok {
			switch strings.ToLower(strings.TrimSpace(dir)) {
			case "asc":
			case "desc":
				f.Descending = true
			default:
				return nil, fmt.Errorf("sort direction %q must be asc or desc: %w", dir, ErrInvalidArgument)
			}
			part = name
		}

		f.Name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(part), "."))
		if f.Name == "" {
			return nil, fmt.Errorf("empty field in sort spec %q: %w", spec, ErrInvalidArgument)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
