// Package cell maps document text onto terminal cells: rune columns to
// screen columns and back, tab expansion, and width-aware truncation and
// wrapping. Rune widths come from go-runewidth; cluster boundaries for
// truncation and wrapping come from uniseg so emoji and combining marks
// are never cut apart.
package cell

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the cell width of r drawn at cell column x. Tabs
// advance to the next tabWidth stop; everything else is measured by
// go-runewidth, so CJK and emoji count 2 and combining marks 0.
func RuneWidth(r rune, x, tabWidth int) int {
	if r == '\t' {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - x%tabWidth
	}
	return runewidth.RuneWidth(r)
}

// ColAt returns the rune column whose cell span contains screen cell x.
// Cells past the line end map to the column just past the last rune.
func ColAt(line string, x, tabWidth int) int {
	cx := 0
	col := 0
	for _, r := range line {
		w := RuneWidth(r, cx, tabWidth)
		if cx+w > x {
			return col
		}
		cx += w
		col++
	}
	return col
}

// Width returns the display width of s in cells, cluster-aware.
// s must not contain tabs; expand them first.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate cuts s to at most width cells on a cluster boundary. A wide
// cluster straddling the edge is dropped entirely.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	var sb strings.Builder
	x := 0
	state := -1
	var cl string
	for len(s) > 0 {
		var b int
		cl, s, b, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := b >> uniseg.ShiftWidth
		if x+w > width {
			break
		}
		sb.WriteString(cl)
		x += w
	}
	return sb.String()
}

// Wrap breaks s into lines of at most width cells, preferring space
// boundaries and hard-splitting words longer than a whole line. Newlines
// in s start fresh lines. The result always has at least one entry.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func wrapLine(s string, width int) []string {
	if Width(s) <= width {
		return []string{s}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.SplitAfter(s, " ") {
		w := Width(word)
		if lineWidth+w <= width {
			line.WriteString(word)
			lineWidth += w
			continue
		}
		if lineWidth > 0 {
			flush()
		}
		// The word alone may still overflow; hard-split it by cells.
		for Width(word) > width {
			head := Truncate(word, width)
			if head == "" {
				break
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		line.WriteString(word)
		lineWidth = Width(word)
	}
	if lineWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
