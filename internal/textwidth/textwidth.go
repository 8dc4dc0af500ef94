// Package textwidth measures and lays out text in terminal cells, one
// grapheme cluster at a time.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClampTabSize maps tab sizes below 1 to 1.
func ClampTabSize(tabSize int) int {
	if tabSize < 1 {
		return 1
	}
	return tabSize
}

// TabAdvance returns the number of cells a tab occupies when it starts at
// visualCol.
func TabAdvance(visualCol, tabSize int) int {
	tabSize = ClampTabSize(tabSize)
	return tabSize - visualCol%tabSize
}

// ClusterWidth returns the cell width of a single non-tab grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// ExpandTabs replaces every tab in line with spaces up to the next tab stop.
// line must not contain newlines.
func ExpandTabs(line string, tabSize int) string {
	if !strings.Contains(line, "\t") {
		return line
	}

	var sb strings.Builder
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		c := g.Str()
		if c == "\t" {
			adv := TabAdvance(col, tabSize)
			sb.WriteString(strings.Repeat(" ", adv))
			col += adv
			continue
		}
		sb.WriteString(c)
		col += ClusterWidth(c)
	}
	return sb.String()
}

// Width returns the cell width of line, expanding tabs with tabSize.
func Width(line string, tabSize int) int {
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		c := g.Str()
		if c == "\t" {
			col += TabAdvance(col, tabSize)
			continue
		}
		col += ClusterWidth(c)
	}
	return col
}

// Truncate cuts line to at most width cells without splitting a grapheme
// cluster. Tabs count as a single cell; expand them first when that matters.
func Truncate(line string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		c := g.Str()
		w := ClusterWidth(c)
		if col+w > width {
			break
		}
		sb.WriteString(c)
		col += w
	}
	return sb.String()
}
