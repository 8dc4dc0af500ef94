package textwidth

import "testing"

func TestExpandTabs_AlignsToStops(t *testing.T) {
	cases := []struct {
		line    string
		tabSize int
		want    string
	}{
		{line: "\tx", tabSize: 4, want: "    x"},
		{line: "ab\tx", tabSize: 4, want: "ab  x"},
		{line: "abcd\tx", tabSize: 4, want: "abcd    x"},
		{line: "\tx", tabSize: 2, want: "  x"},
		{line: "a\tb\tc", tabSize: 8, want: "a       b       c"},
		{line: "\tx", tabSize: 0, want: " x"},
		{line: "\tx", tabSize: -3, want: " x"},
		{line: "no tabs", tabSize: 4, want: "no tabs"},
	}

	for _, tc := range cases {
		if got := ExpandTabs(tc.line, tc.tabSize); got != tc.want {
			t.Fatalf("ExpandTabs(%q, %d): got %q, want %q", tc.line, tc.tabSize, got, tc.want)
		}
	}
}

func TestExpandTabs_WideAndCombiningClusters(t *testing.T) {
	// "e" + combining acute is one cell, "世" is two.
	line := "e\u0301\t世\tz"
	if got, want := ExpandTabs(line, 4), "e\u0301   世  z"; got != want {
		t.Fatalf("ExpandTabs: got %q, want %q", got, want)
	}
	if got, want := Width(line, 4), 9; got != want {
		t.Fatalf("Width: got %d, want %d", got, want)
	}
}

func TestTruncate_KeepsClustersWhole(t *testing.T) {
	if got, want := Truncate("a世b", 2), "a"; got != want {
		t.Fatalf("Truncate: got %q, want %q", got, want)
	}
	if got, want := Truncate("a世b", 3), "a世"; got != want {
		t.Fatalf("Truncate: got %q, want %q", got, want)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("Truncate width 0: got %q, want empty", got)
	}
}

func TestClampTabSize(t *testing.T) {
	for in, want := range map[int]int{-1: 1, 0: 1, 1: 1, 4: 4} {
		if got := ClampTabSize(in); got != want {
			t.Fatalf("ClampTabSize(%d): got %d, want %d", in, got, want)
		}
	}
}
