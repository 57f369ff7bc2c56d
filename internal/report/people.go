package report

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/aidanlsb/querykit/internal/model"
	"github.com/aidanlsb/querykit/internal/query"
)

// personFields maps sort field names to key builders. Aliases share a builder.
var personFields = map[string]func(desc bool) query.SortKey[model.Person]{
	"first_name": func(desc bool) query.SortKey[model.Person] {
		return query.By(func(a, b model.Person) int { return strings.Compare(a.FirstName, b.FirstName) }, desc)
	},
	"last_name": func(desc bool) query.SortKey[model.Person] {
		return query.By(func(a, b model.Person) int { return strings.Compare(a.LastName, b.LastName) }, desc)
	},
	"full_name": func(desc bool) query.SortKey[model.Person] {
		return query.By(func(a, b model.Person) int { return strings.Compare(a.FullName(), b.FullName()) }, desc)
	},
	"age": func(desc bool) query.SortKey[model.Person] {
		return query.By(func(a, b model.Person) int { return cmp.Compare(a.Age, b.Age) }, desc)
	},
	"email": func(desc bool) query.SortKey[model.Person] {
		return query.By(func(a, b model.Person) int { return strings.Compare(a.Email, b.Email) }, desc)
	},
}

var personFieldAliases = map[string]string{
	"first":     "first_name",
	"firstname": "first_name",
	"last":      "last_name",
	"lastname":  "last_name",
	"name":      "full_name",
	"fullname":  "full_name",
}

// PersonFieldNames lists the sortable person fields.
func PersonFieldNames() []string {
	names := make([]string, 0, len(personFields))
	for name := range personFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PersonSortKeys resolves parsed sort fields to keys over model.Person.
func PersonSortKeys(fields []query.SortField) ([]query.SortKey[model.Person], error) {
	keys := make([]query.SortKey[model.Person], 0, len(fields))
	for _, f := range fields {
		name := f.Name
		if alias, ok := personFieldAliases[name]; ok {
			name = alias
		}
		build, ok := personFields[name]
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q (valid: %s): %w",
				f.Name, strings.Join(PersonFieldNames(), ", "), query.ErrInvalidArgument)
		}
		keys = append(keys, build(f.Descending))
	}
	return keys, nil
}

// DefaultSortFields orders by age, then first name.
func DefaultSortFields() []query.SortField {
	return []query.SortField{{Name: "age"}, {Name: "first_name"}}
}

// FormatSortFields renders fields back to spec form, e.g. "age,-first_name".
func FormatSortFields(fields []query.SortField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		if f.Descending {
			parts[i] = "-" + f.Name
		} else {
			parts[i] = f.Name
		}
	}
	return strings.Join(parts, ",")
}

// Parity labels a number "Even" or "Odd".
func Parity(n int) string {
	if n%2 == 0 {
		return "Even"
	}
	return "Odd"
}
