package cli

import (
	"github.com/spf13/pflag"

	"github.com/aidanlsb/querykit/internal/query"
	"github.com/aidanlsb/querykit/internal/report"
)

// sortValue is a pflag.Value holding a parsed sort spec such as
// "age,-first_name". Field names are checked against the person fields
// when the flag is set, so typos fail during flag parsing.
type sortValue struct {
	fields []query.SortField
}

var _ pflag.Value = (*sortValue)(nil)

func (v *sortValue) String() string {
	if v == nil || len(v.fields) == 0 {
		return ""
	}
	return report.FormatSortFields(v.fields)
}

func (v *sortValue) Set(s string) error {
	fields, err := query.ParseSortSpec(s)
	if err != nil {
		return err
	}
	if _, err := report.PersonSortKeys(fields); err != nil {
		return err
	}
	v.fields = fields
	return nil
}

func (v *sortValue) Type() string {
	return "fields"
}

// Fields returns the parsed fields, or the default order when unset.
func (v *sortValue) Fields() []query.SortField {
	if len(v.fields) == 0 {
		return report.DefaultSortFields()
	}
	return v.fields
}
