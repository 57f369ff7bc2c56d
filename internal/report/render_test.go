package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextRendering(t *testing.T) {
	r := buildSample(t, DefaultOptions())

	var buf bytes.Buffer
	if err := Text(&buf, r); err != nil {
		t.Fatalf("Text: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Projection",
		"hossien solymany",
		"Filtered and ordered (age > 30, sort age,first_name)",
		"average",
		"211.33",
		"634",
		"1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15",
		"Generated range (12 to 66)",
		"1, 4, 9, 16, 25, 36, 49, 64, 81, 100",
		"Grouped by parity",
		"• Odd: 1, 3, 5, 7, 9, 9, 11, 13, 15",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}

	// Filtered rows appear in age order.
	filtered := out[strings.Index(out, "Filtered and ordered"):strings.Index(out, "Aggregates")]
	i55 := strings.Index(filtered, "asas ")
	i145 := strings.Index(filtered, "hassan ")
	i434 := strings.Index(filtered, "iwopq ")
	if i55 < 0 || !(i55 < i145 && i145 < i434) {
		t.Errorf("filtered people out of order: %d %d %d", i55, i145, i434)
	}
}

func TestMarkdownRendering(t *testing.T) {
	r := buildSample(t, DefaultOptions())
	md := Markdown(r)

	if !strings.HasPrefix(md, "# querykit report") {
		t.Errorf("expected title first, got %q", md[:40])
	}
	for _, want := range []string{
		"## Aggregates",
		"| asas | sowwy | 55 | aa@gmail.com |",
		"| Odd | 1, 3, 5, 7, 9, 9, 11, 13, 15 |",
		"| average | 211.33 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "{#") {
		t.Errorf("terminal markdown should not carry heading attributes")
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	if got := mdCell("a|b"); got != `a\|b` {
		t.Errorf("mdCell = %q", got)
	}
	if got := mdCell(""); got != " " {
		t.Errorf("mdCell(\"\") = %q", got)
	}
}

func TestHTMLRendering(t *testing.T) {
	r := buildSample(t, DefaultOptions())
	out, err := HTML(r)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>querykit report: sample</title>",
		`<h2 id="filtered-and-ordered">`,
		`<a href="#grouped-by-parity">`,
		"<table>",
		"<td>iwopq</td>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestAnchor(t *testing.T) {
	tests := map[string]string{
		"Filtered and ordered": "filtered-and-ordered",
		"Grouped by parity":    "grouped-by-parity",
		"Distinct numbers":     "distinct-numbers",
	}
	for in, want := range tests {
		if got := Anchor(in); got != want {
			t.Errorf("Anchor(%q) = %q, want %q", in, got, want)
		}
	}
}
