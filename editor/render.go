package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rizrmd/plume/buffer"
	"github.com/rizrmd/plume/internal/cell"
)

// Cell roles, in ascending precedence. The walker styles each run of
// same-role cells as one span.
type cellRole uint8

const (
	roleText cellRole = iota
	roleSelection
	roleMatch
	roleMatchCurrent
	roleCursor
)

type lineMatch struct {
	start, end int
	current    bool
}

// frame is the per-render snapshot of everything the line walker needs.
type frame struct {
	cursor    buffer.Pos
	hasCursor bool

	sel    buffer.Range
	hasSel bool

	matches map[int][]lineMatch

	gutter    int
	textWidth int
	left      int
	tabWidth  int
}

func (m *Model) newFrame() frame {
	sel, ok := m.sess.Selection()
	sel = buffer.NormalizeRange(sel)

	f := frame{
		cursor:    m.sess.CursorPos(),
		hasCursor: m.focused,
		sel:       sel,
		hasSel:    ok && !sel.IsEmpty(),
		gutter:    m.gutterWidth(),
		left:      m.sess.ViewLeft(),
		tabWidth:  m.cfg.TabWidth,
	}
	f.textWidth = m.contentWidth() - f.gutter
	if f.textWidth < 0 {
		f.textWidth = 0
	}

	if fs := m.sess.Find(); fs.Active && len(fs.Matches) > 0 {
		f.matches = make(map[int][]lineMatch)
		for i, match := range fs.Matches {
			f.matches[match.Start.Line] = append(f.matches[match.Start.Line], lineMatch{
				start:   match.Start.Col,
				end:     match.End.Col,
				current: i == fs.Current,
			})
		}
	}
	return f
}

func (f *frame) classify(line, col int) cellRole {
	if f.hasCursor && f.cursor.Line == line && f.cursor.Col == col {
		return roleCursor
	}
	for _, lm := range f.matches[line] {
		if col >= lm.start && col < lm.end {
			if lm.current {
				return roleMatchCurrent
			}
			return roleMatch
		}
	}
	if f.hasSel && f.sel.Contains(buffer.Pos{Line: line, Col: col}) {
		return roleSelection
	}
	return roleText
}

func (m *Model) styleFor(role cellRole) lipgloss.Style {
	st := m.cfg.Style
	switch role {
	case roleCursor:
		return st.Cursor
	case roleMatchCurrent:
		return st.MatchCurrent
	case roleMatch:
		return st.Match
	case roleSelection:
		return st.Selection
	}
	return st.Text
}

// renderContent renders the whole document; the viewport shows a window
// of it. Every line is padded to the content width so the scrollbar
// column lines up on the right edge.
func (m *Model) renderContent() string {
	buf := m.sess.Buffer()
	f := m.newFrame()
	n := buf.LineCount()
	out := make([]string, 0, n)
	for line := 0; line < n; line++ {
		out = append(out, m.renderLine(&f, line, buf.Line(line)))
	}
	return strings.Join(out, "\n")
}

// renderLine walks one line's runes from the horizontal offset, expanding
// tabs against cell columns that start at the window edge, batching runs
// of equally-styled cells, and stopping at the right edge.
func (m *Model) renderLine(f *frame, line int, text string) string {
	var sb strings.Builder

	if f.gutter > 0 {
		numStyle := m.cfg.Style.LineNum
		if f.hasCursor && line == f.cursor.Line {
			numStyle = m.cfg.Style.LineNumActive
		}
		sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", f.gutter-1, line+1)))
		sb.WriteString(m.cfg.Style.Gutter.Render(" "))
	}

	runes := []rune(text)
	x := 0
	role := roleText
	var chunk strings.Builder
	flush := func() {
		if chunk.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(role).Render(chunk.String()))
		chunk.Reset()
	}

	for col := f.left; col < len(runes); col++ {
		r := runes[col]
		w := cell.RuneWidth(r, x, f.tabWidth)
		if x+w > f.textWidth {
			break
		}
		if cr := f.classify(line, col); cr != role {
			flush()
			role = cr
		}
		if r == '\t' {
			chunk.WriteString(strings.Repeat(" ", w))
		} else {
			chunk.WriteRune(r)
		}
		x += w
	}
	flush()

	// The cursor at end of line occupies a one-cell placeholder.
	if f.hasCursor && f.cursor.Line == line && f.cursor.Col == len(runes) &&
		f.cursor.Col >= f.left && x < f.textWidth {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		x++
	}
	if pad := f.textWidth - x; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

// renderPreview renders the read-only markdown preview: no gutter, no
// cursor, word-wrapped to the content width when the session's wrap flag
// is on.
func (m *Model) renderPreview() string {
	w := m.contentWidth()
	if w < 1 {
		w = 1
	}
	tab := strings.Repeat(" ", m.cfg.TabWidth)
	text := strings.ReplaceAll(m.sess.Text(), "\t", tab)

	var lines []string
	if m.sess.WordWrap() {
		lines = cell.Wrap(text, w)
	} else {
		lines = strings.Split(text, "\n")
	}
	for i, line := range lines {
		line = cell.Truncate(line, w)
		if pad := w - cell.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = m.cfg.Style.Text.Render(line)
	}
	return strings.Join(lines, "\n")
}
