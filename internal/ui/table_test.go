package ui

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("asas", "55", "aa@gmail.com")
	tbl.AddRow("hassan", "145", "")
	tbl.AddRow("x") // short rows are padded

	got := tbl.String()
	want := "asas    55   aa@gmail.com\n" +
		"hassan  145  \n" +
		"x            \n"
	if got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len = %d, want 3", tbl.Len())
	}
}

func TestTableHeaderCountsTowardWidth(t *testing.T) {
	tbl := NewTable(2)
	tbl.SetHeader("FIRST NAME", "AGE")
	tbl.AddRow("asas", "55")
	tbl.SetPadding(1)

	lines := strings.Split(strings.TrimSuffix(tbl.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "asas       55") {
		t.Errorf("data row not aligned to header width: %q", lines[1])
	}
}

func TestEmptyTable(t *testing.T) {
	if got := NewTable(2).String(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestList(t *testing.T) {
	l := NewList()
	l.SetBullet("-")
	l.Add("Odd")
	l.Add("Even")
	if got, want := l.String(), "  - Odd\n  - Even\n"; got != want {
		t.Errorf("List = %q, want %q", got, want)
	}
}
