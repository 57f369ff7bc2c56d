package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/aidanlsb/querykit/internal/model"
	"github.com/aidanlsb/querykit/internal/ui"
)

// Section titles, shared by all renderers.
const (
	titleProjection = "Projection"
	titleFiltered   = "Filtered and ordered"
	titleAggregates = "Aggregates"
	titleDistinct   = "Distinct numbers"
	titleRange      = "Generated range"
	titleSquares    = "Squares"
	titleGroups     = "Grouped by parity"
)

var sectionTitles = []string{
	titleProjection, titleFiltered, titleAggregates, titleDistinct,
	titleRange, titleSquares, titleGroups,
}

// Anchor returns the HTML anchor id for a section title.
func Anchor(title string) string {
	return slug.Make(title)
}

// Text writes a terminal rendering of r.
func Text(w io.Writer, r *Report) error {
	var sb strings.Builder

	section := func(title string, count int, singular, plural string) {
		sb.WriteString("\n")
		sb.WriteString(ui.Header(title))
		if count >= 0 {
			sb.WriteString(" " + ui.Count(count, singular, plural))
		}
		sb.WriteString("\n")
	}

	section(titleProjection, len(r.Contacts), "person", "people")
	contacts := ui.NewTable(2)
	contacts.SetHeader("FULL NAME", "EMAIL")
	for _, c := range r.Contacts {
		contacts.AddRow(c.FullName, confirmed(c.ConfirmedEmail))
	}
	sb.WriteString(contacts.String())

	section(fmt.Sprintf("%s (age > %d, sort %s)", titleFiltered, r.MinAge, r.SortSpec), len(r.Filtered), "person", "people")
	sb.WriteString(peopleTable(r.Filtered).String())

	section(titleAggregates, -1, "", "")
	stats := ui.NewTable(2)
	for _, row := range statsRows(r.Stats) {
		stats.AddRow(ui.Key(row[0]), row[1])
	}
	sb.WriteString(stats.String())

	section(titleDistinct, len(r.Distinct), "value", "values")
	sb.WriteString(joinInts(r.Distinct) + "\n")

	section(fmt.Sprintf("%s (%s)", titleRange, rangeLabel(r.Range)), len(r.Range), "value", "values")
	sb.WriteString(joinInts(r.Range) + "\n")

	section(titleSquares, len(r.Squares), "value", "values")
	sb.WriteString(joinInts(r.Squares) + "\n")

	section(titleGroups, len(r.Groups), "group", "groups")
	groups := ui.NewList()
	for _, g := range r.Groups {
		groups.Add(ui.Key(g.Key+":") + " " + joinInts(g.Values))
	}
	sb.WriteString(groups.String())

	_, err := io.WriteString(w, sb.String())
	return err
}

// Markdown renders r as GitHub-flavoured markdown.
func Markdown(r *Report) string {
	return markdown(r, false)
}

func markdown(r *Report, anchors bool) string {
	var sb strings.Builder

	heading := func(title string) {
		sb.WriteString("\n## " + title)
		if anchors {
			sb.WriteString(" {#" + Anchor(title) + "}")
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("# querykit report\n\n")
	sb.WriteString(fmt.Sprintf("Source: `%s`\n", r.Source))
	if anchors {
		sb.WriteString("\n")
		for _, title := range sectionTitles {
			sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", title, Anchor(title)))
		}
	}

	heading(titleProjection)
	sb.WriteString("| Full name | Email |\n|---|---|\n")
	for _, c := range r.Contacts {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", mdCell(c.FullName), confirmed(c.ConfirmedEmail)))
	}

	heading(titleFiltered)
	sb.WriteString(fmt.Sprintf("People older than %d, ordered by `%s`.\n\n", r.MinAge, r.SortSpec))
	if len(r.Filtered) == 0 {
		sb.WriteString("_No people matched._\n")
	} else {
		sb.WriteString("| First name | Last name | Age | Email |\n|---|---|---:|---|\n")
		for _, p := range r.Filtered {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n",
				mdCell(p.FirstName), mdCell(p.LastName), p.Age, mdCell(p.Email)))
		}
	}

	heading(titleAggregates)
	sb.WriteString("| Aggregate | Value |\n|---|---:|\n")
	for _, row := range statsRows(r.Stats) {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", row[0], row[1]))
	}

	heading(titleDistinct)
	sb.WriteString(fmt.Sprintf("Input: `%s`\n\nDistinct: `%s`\n", joinInts(r.Numbers), joinInts(r.Distinct)))

	heading(titleRange)
	sb.WriteString(fmt.Sprintf("%d values, %s: `%s`\n", len(r.Range), rangeLabel(r.Range), joinInts(r.Range)))

	heading(titleSquares)
	sb.WriteString(fmt.Sprintf("`%s`\n", joinInts(r.Squares)))

	heading(titleGroups)
	sb.WriteString("| Key | Values |\n|---|---|\n")
	for _, g := range r.Groups {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", g.Key, joinInts(g.Values)))
	}

	return strings.TrimLeft(sb.String(), "\n")
}

// HTML renders r as a standalone HTML page. Each section heading carries an
// id derived from its title, linked from a contents list.
func HTML(r *Report) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAttribute()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown(r, true)), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	out.WriteString("<title>querykit report: " + html.EscapeString(r.Source) + "</title>\n")
	out.WriteString("</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}

func peopleTable(people []model.Person) *ui.Table {
	t := ui.NewTable(4)
	t.SetHeader("FIRST NAME", "LAST NAME", "AGE", "EMAIL")
	for _, p := range people {
		t.AddRow(p.FirstName, p.LastName, strconv.Itoa(p.Age), p.Email)
	}
	return t
}

func statsRows(s Stats) [][2]string {
	rows := [][2]string{
		{"count", humanize.Comma(int64(s.Count))},
		{"sum", humanize.Comma(int64(s.Sum))},
	}
	if s.Average != nil {
		rows = append(rows, [2]string{"average", humanize.FormatFloat("#,###.##", *s.Average)})
	}
	if s.Max != nil {
		rows = append(rows, [2]string{"max", humanize.Comma(int64(*s.Max))})
	}
	if s.Min != nil {
		rows = append(rows, [2]string{"min", humanize.Comma(int64(*s.Min))})
	}
	return rows
}

func confirmed(ok bool) string {
	if ok {
		return ui.SymbolSuccess
	}
	return ui.SymbolError
}

func rangeLabel(values []int) string {
	if len(values) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d to %d", values[0], values[len(values)-1])
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// mdCell escapes pipes so values cannot break a markdown table row.
func mdCell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
