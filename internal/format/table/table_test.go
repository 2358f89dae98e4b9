package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"milk", "friday", "3"},
		{"bread", "", "10"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"milk   friday   3",
		"bread          10",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatTrimsTrailingPadding(t *testing.T) {
	rows := [][]string{
		{"a", "long-value"},
		{"bb", ""},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if got[1] != "bb" {
		t.Fatalf("expected trailing padding trimmed, got %q", got[1])
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestFormatCountsRunesNotBytes(t *testing.T) {
	rows := [][]string{
		{"naïve", "x"},
		{"ascii", "y"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if got[0] != "naïve  x" || got[1] != "ascii  y" {
		t.Fatalf("expected rune-width padding, got %q and %q", got[0], got[1])
	}
}
