package session

import (
	"testing"

	"github.com/rizrmd/plume/buffer"
)

func findSession(t *testing.T, content string) *Session {
	t.Helper()
	return FromFile("/tmp/find.txt", content, Options{})
}

func matchAt(l1, c1, l2, c2 int) Match {
	return Match{
		Start: buffer.Pos{Line: l1, Col: c1},
		End:   buffer.Pos{Line: l2, Col: c2},
	}
}

func assertMatches(t *testing.T, s *Session, want []Match) {
	t.Helper()
	got := s.Find().Matches
	if len(got) != len(want) {
		t.Fatalf("matches=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestFind_CaseInsensitiveByDefault(t *testing.T) {
	s := findSession(t, "foo bar\nbarfoo")
	s.StartFind()
	s.SetQuery("FOO")

	assertMatches(t, s, []Match{
		matchAt(0, 0, 0, 3),
		matchAt(1, 3, 1, 6),
	})
	if got, want := s.Find().Current, 0; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}
	if got, want := s.CursorPos(), (buffer.Pos{Line: 0, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestFind_WholeWord(t *testing.T) {
	s := findSession(t, "foo bar\nbarfoo")
	s.StartFind()
	s.SetQuery("foo")
	s.ToggleWholeWord()

	assertMatches(t, s, []Match{matchAt(0, 0, 0, 3)})
}

func TestFind_CaseSensitiveToggle(t *testing.T) {
	s := findSession(t, "Foo foo FOO")
	s.StartFind()
	s.SetQuery("foo")
	assertMatches(t, s, []Match{
		matchAt(0, 0, 0, 3),
		matchAt(0, 4, 0, 7),
		matchAt(0, 8, 0, 11),
	})

	s.ToggleCase()
	assertMatches(t, s, []Match{matchAt(0, 4, 0, 7)})
}

func TestFind_NonOverlappingMatches(t *testing.T) {
	s := findSession(t, "aaa")
	s.StartFind()
	s.SetQuery("aa")

	assertMatches(t, s, []Match{matchAt(0, 0, 0, 2)})
}

func TestFind_UnicodeCaseFoldKeepsColumns(t *testing.T) {
	s := findSession(t, "ПРИВЕТ мир привет")
	s.StartFind()
	s.SetQuery("привет")

	assertMatches(t, s, []Match{
		matchAt(0, 0, 0, 6),
		matchAt(0, 11, 0, 17),
	})
}

func TestFind_CurrentStartsAtCursor(t *testing.T) {
	s := findSession(t, "x\nfoo\nx\nfoo\nfoo")
	s.MoveTo(buffer.Pos{Line: 2, Col: 0})
	s.StartFind()
	s.SetQuery("foo")

	if got, want := s.Find().Current, 1; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}
	if got, want := s.CursorPos(), (buffer.Pos{Line: 3, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestFind_CurrentWrapsToFirst(t *testing.T) {
	s := findSession(t, "foo\nfoo\nxxx")
	s.MoveTo(buffer.Pos{Line: 2, Col: 2})
	s.StartFind()
	s.SetQuery("foo")

	if got, want := s.Find().Current, 0; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}
	if got, want := s.CursorPos(), (buffer.Pos{Line: 0, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestFind_NextPrev_Wrap(t *testing.T) {
	s := findSession(t, "foo foo foo")
	s.StartFind()
	s.SetQuery("foo")

	s.FindNext()
	if got, want := s.Find().Current, 1; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}
	s.FindNext()
	s.FindNext()
	if got, want := s.Find().Current, 0; got != want {
		t.Fatalf("wrap: current=%d, want %d", got, want)
	}

	s.FindPrev()
	if got, want := s.Find().Current, 2; got != want {
		t.Fatalf("prev wrap: current=%d, want %d", got, want)
	}
	if got, want := s.CursorPos(), (buffer.Pos{Line: 0, Col: 8}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestFind_EmptyQuery_NoMatches(t *testing.T) {
	s := findSession(t, "anything")
	s.StartFind()
	s.SetQuery("a")
	s.SetQuery("")

	if got := s.Find().Matches; len(got) != 0 {
		t.Fatalf("matches=%v, want none", got)
	}
	if got, want := s.Find().Current, -1; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}

	s.FindNext() // must not panic or move
	if got, want := s.CursorPos(), (buffer.Pos{Line: 0, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestFind_StopKeepsQueriesAndToggles(t *testing.T) {
	s := findSession(t, "foo")
	s.StartFindReplace()
	s.SetQuery("foo")
	s.SetReplace("bar")
	s.ToggleWholeWord()
	s.StopFind()

	st := s.Find()
	if st.Active {
		t.Fatalf("expected inactive")
	}
	if st.Query != "foo" || st.Replace != "bar" || !st.WholeWord {
		t.Fatalf("stop dropped field state: %+v", st)
	}
	if len(st.Matches) != 0 || st.Current != -1 {
		t.Fatalf("stop must drop matches: %+v", st)
	}

	// Reopening re-runs the scan with the kept query.
	s.StartFind()
	if got := len(s.Find().Matches); got != 1 {
		t.Fatalf("matches=%d, want 1", got)
	}
}

func TestFind_FocusToggle_RequiresReplaceMode(t *testing.T) {
	s := findSession(t, "x")
	s.StartFind()
	s.ToggleFocus()
	if got := s.Find().Focus; got != FocusFind {
		t.Fatalf("focus=%v, want find", got)
	}

	s.ToggleReplaceMode()
	s.ToggleFocus()
	if got := s.Find().Focus; got != FocusReplace {
		t.Fatalf("focus=%v, want replace", got)
	}
	s.ToggleFocus()
	if got := s.Find().Focus; got != FocusFind {
		t.Fatalf("focus=%v, want find", got)
	}

	// Leaving replace mode pulls focus back to the query.
	s.ToggleFocus()
	s.ToggleReplaceMode()
	if got := s.Find().Focus; got != FocusFind {
		t.Fatalf("focus=%v, want find after leaving replace mode", got)
	}
}

func TestReplace_Current(t *testing.T) {
	s := findSession(t, "foo bar foo")
	s.StartFindReplace()
	s.SetQuery("foo")
	s.SetReplace("qux")

	if !s.ReplaceCurrent() {
		t.Fatalf("replace failed")
	}
	if got, want := s.Text(), "qux bar foo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	// The scan re-ran and moved on to the survivor.
	assertMatches(t, s, []Match{matchAt(0, 8, 0, 11)})
	if got, want := s.Find().Current, 0; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}

	if !s.ReplaceCurrent() {
		t.Fatalf("second replace failed")
	}
	if got, want := s.Text(), "qux bar qux"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if s.ReplaceCurrent() {
		t.Fatalf("replace with no matches must report false")
	}
}

func TestReplace_Current_RequiresReplaceMode(t *testing.T) {
	s := findSession(t, "foo")
	s.StartFind()
	s.SetQuery("foo")

	if s.ReplaceCurrent() {
		t.Fatalf("plain find mode must not replace")
	}
	if got, want := s.Text(), "foo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if s.ReplaceAll() != 0 {
		t.Fatalf("plain find mode must not replace all")
	}
}

func TestReplace_All_SameLine(t *testing.T) {
	s := findSession(t, "aXaXa")
	s.StartFindReplace()
	s.SetQuery("X")
	s.SetReplace("YY")

	if got, want := s.ReplaceAll(), 2; got != want {
		t.Fatalf("replaced=%d, want %d", got, want)
	}
	if got, want := s.Text(), "aYYaYYa"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestReplace_All_AcrossLines(t *testing.T) {
	s := findSession(t, "one two one\ntwo one two\none")
	s.StartFindReplace()
	s.SetQuery("one")
	s.SetReplace("1")

	if got, want := s.ReplaceAll(), 4; got != want {
		t.Fatalf("replaced=%d, want %d", got, want)
	}
	if got, want := s.Text(), "1 two 1\ntwo 1 two\n1"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := len(s.Find().Matches); got != 0 {
		t.Fatalf("stale matches remain: %d", got)
	}
}

func TestReplace_All_SingleHistoryStep(t *testing.T) {
	s := findSession(t, "x x x x x")
	s.StartFindReplace()
	s.SetQuery("x")
	s.SetReplace("yy")

	if got, want := s.ReplaceAll(), 5; got != want {
		t.Fatalf("replaced=%d, want %d", got, want)
	}
	if !s.Undo() {
		t.Fatalf("undo failed")
	}
	if got, want := s.Text(), "x x x x x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestReplace_All_CursorStaysValid(t *testing.T) {
	s := findSession(t, "aaaa bbbb aaaa")
	s.MoveTo(buffer.Pos{Line: 0, Col: 14})
	s.StartFindReplace()
	s.SetQuery("aaaa")
	s.SetReplace(".")

	s.ReplaceAll()
	if got, want := s.Text(), ". bbbb ."; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	p := s.CursorPos()
	if buffer.ClampPos(s.Buffer(), p) != p {
		t.Fatalf("cursor out of bounds after replace: %v", p)
	}
}

func TestFind_ReplaceFieldEditDoesNotRescan(t *testing.T) {
	s := findSession(t, "foo foo")
	s.StartFindReplace()
	s.SetQuery("foo")
	s.FindNext()
	if got, want := s.Find().Current, 1; got != want {
		t.Fatalf("current=%d, want %d", got, want)
	}

	s.SetReplace("bar")
	if got, want := s.Find().Current, 1; got != want {
		t.Fatalf("replace edit moved current: %d, want %d", got, want)
	}
}

func TestFind_EditRefreshesMatchesAfterTyping(t *testing.T) {
	s := findSession(t, "ab ab")
	s.StartFind()
	s.SetQuery("ab")
	if got := len(s.Find().Matches); got != 2 {
		t.Fatalf("matches=%d, want 2", got)
	}

	// Typing outside the bar is a session edit; the bar re-runs the scan
	// through SetQuery when the host feeds the next keystroke.
	s.SetQuery("ab ")
	if got := len(s.Find().Matches); got != 1 {
		t.Fatalf("matches=%d, want 1", got)
	}
}
