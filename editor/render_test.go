package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizrmd/plume/buffer"
	"github.com/rizrmd/plume/session"
)

// renderedLines renders the document and strips the right-edge padding so
// expectations stay readable.
func renderedLines(m Model) []string {
	lines := strings.Split(m.renderContent(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestRender_GutterNumbersAndPadding(t *testing.T) {
	m := New(Config{
		Session:      testSession("one\ntwo\nthree\nfour\nfive"),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(12, 3)

	got := strings.Split(m.renderContent(), "\n")
	if len(got) != 5 {
		t.Fatalf("rendered lines: got %d, want %d", len(got), 5)
	}
	if got[0] != "  1 one    " {
		t.Fatalf("line 0: got %q, want %q", got[0], "  1 one    ")
	}
	if got[2] != "  3 three  " {
		t.Fatalf("line 2: got %q, want %q", got[2], "  3 three  ")
	}
	if got[4] != "  5 five   " {
		t.Fatalf("line 4: got %q, want %q", got[4], "  5 five   ")
	}
}

func TestRender_ActiveLineNumberStyled(t *testing.T) {
	m := New(Config{
		Session:      testSession("one\ntwo"),
		ShowLineNums: true,
		Style: Style{
			LineNumActive: lipgloss.NewStyle().Transform(func(s string) string { return "*" + s }),
		},
	})
	m = m.SetSize(12, 3)

	got := renderedLines(m)
	if !strings.HasPrefix(got[0], "*  1 ") {
		t.Fatalf("cursor line gutter: got %q, want prefix %q", got[0], "*  1 ")
	}
	if !strings.HasPrefix(got[1], "  2 ") {
		t.Fatalf("other line gutter: got %q, want prefix %q", got[1], "  2 ")
	}
}

func TestRender_SelectionStyled(t *testing.T) {
	sess := testSession("hello world")
	sess.MoveTo(buffer.Pos{Line: 0, Col: 6})
	sess.ExtendTo(buffer.Pos{Line: 0, Col: 11})

	m := New(Config{
		Session: sess,
		Style: Style{
			Selection: lipgloss.NewStyle().Transform(strings.ToUpper),
		},
	})
	m = m.SetSize(20, 3)

	got := renderedLines(m)
	if got[0] != "hello WORLD" {
		t.Fatalf("selected line: got %q, want %q", got[0], "hello WORLD")
	}
}

func TestRender_CursorCellAndEOLPlaceholder(t *testing.T) {
	cursorStyle := lipgloss.NewStyle().Transform(func(string) string { return "@" })

	sess := testSession("ab\ncd")
	sess.Right(false)
	m := New(Config{Session: sess, Style: Style{Cursor: cursorStyle}})
	m = m.SetSize(10, 3)

	got := renderedLines(m)
	if got[0] != "a@" {
		t.Fatalf("cursor mid-line: got %q, want %q", got[0], "a@")
	}
	if got[1] != "cd" {
		t.Fatalf("other line: got %q, want %q", got[1], "cd")
	}

	// At end of line the cursor renders as a one-cell placeholder.
	sess.End(false)
	got = renderedLines(m)
	if got[0] != "ab@" {
		t.Fatalf("cursor at eol: got %q, want %q", got[0], "ab@")
	}

	// An empty document is nothing but the placeholder.
	m2 := New(Config{Session: testSession(""), Style: Style{Cursor: cursorStyle}})
	m2 = m2.SetSize(10, 3)
	if got := renderedLines(m2); got[0] != "@" {
		t.Fatalf("empty document: got %q, want %q", got[0], "@")
	}
}

func TestRender_MatchAndCurrentMatchStyled(t *testing.T) {
	sess := testSession("foo bar foo")
	m := New(Config{
		Session: sess,
		Style: Style{
			Match:        lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
			MatchCurrent: lipgloss.NewStyle().Transform(func(s string) string { return "{" + s + "}" }),
		},
	})
	m = m.SetSize(20, 3)
	m = m.Blur()

	sess.StartFind()
	sess.SetQuery("foo")

	got := renderedLines(m)
	if got[0] != "{foo} bar [foo]" {
		t.Fatalf("match line: got %q, want %q", got[0], "{foo} bar [foo]")
	}
}

func TestRender_CursorBeatsMatch(t *testing.T) {
	sess := testSession("foo bar foo")
	m := New(Config{
		Session: sess,
		Style: Style{
			Cursor:       lipgloss.NewStyle().Transform(func(string) string { return "@" }),
			Match:        lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
			MatchCurrent: lipgloss.NewStyle().Transform(func(s string) string { return "{" + s + "}" }),
		},
	})
	m = m.SetSize(20, 3)

	sess.StartFind()
	sess.SetQuery("foo")

	// The cursor sits on the current match's first cell and wins there.
	got := renderedLines(m)
	if got[0] != "@{oo} bar [foo]" {
		t.Fatalf("match line with cursor: got %q, want %q", got[0], "@{oo} bar [foo]")
	}
}

func TestRender_TabExpansion(t *testing.T) {
	m := New(Config{Session: testSession("\tabc"), TabWidth: 4})
	m = m.Blur()
	m = m.SetSize(13, 2)

	got := renderedLines(m)
	if got[0] != "    abc" {
		t.Fatalf("tab line: got %q, want %q", got[0], "    abc")
	}
}

func TestRender_HorizontalWindowSlices(t *testing.T) {
	m := New(Config{Session: testSession(strings.Repeat("a", 100))})
	m = m.SetSize(13, 2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	got := renderedLines(m)
	if got[0] != strings.Repeat("a", 12) {
		t.Fatalf("sliced line: got %q, want %q", got[0], strings.Repeat("a", 12))
	}
}

func TestRender_WideRuneStopsAtEdge(t *testing.T) {
	m := New(Config{Session: testSession("世世世")})
	m = m.Blur()
	m = m.SetSize(6, 2)

	// Only two of the two-cell runes fit in five text cells.
	got := renderedLines(m)
	if got[0] != "世世" {
		t.Fatalf("wide line: got %q, want %q", got[0], "世世")
	}
}

func TestRenderPreview_WrapAndTruncate(t *testing.T) {
	md := session.FromFile("t.md", "alpha beta gamma delta", session.Options{})
	m := New(Config{Session: md})
	m = m.SetSize(11, 5)

	got := strings.Split(m.renderPreview(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(got[i], " ")
	}
	want := []string{"alpha", "beta", "gamma", "delta"}
	if len(got) != len(want) {
		t.Fatalf("wrapped lines: got %d %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wrapped line %d: got %q, want %q", i, got[i], want[i])
		}
	}

	md.ToggleWordWrap()
	got = strings.Split(m.renderPreview(), "\n")
	if len(got) != 1 {
		t.Fatalf("unwrapped lines: got %d, want %d", len(got), 1)
	}
	if trimmed := strings.TrimRight(got[0], " "); trimmed != "alpha beta" {
		t.Fatalf("truncated line: got %q, want %q", trimmed, "alpha beta")
	}
}
