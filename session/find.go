package session

import (
	"unicode"

	"github.com/rizrmd/plume/buffer"
)

// Focus names the find bar field receiving keystrokes.
type Focus uint8

const (
	FocusFind Focus = iota
	FocusReplace
)

// Match is one find hit, in document coordinates on a single line.
type Match struct {
	Start buffer.Pos
	End   buffer.Pos
}

// FindState is the whole find/replace machine of a session. It survives
// closing the bar: queries and toggles keep their values for the
// session's lifetime, only matches are dropped.
type FindState struct {
	Active        bool
	Query         string
	Replace       string
	CaseSensitive bool
	WholeWord     bool
	// ReplaceMode distinguishes the two-field find-and-replace bar from
	// plain find; replacement operations require it.
	ReplaceMode bool
	Focus       Focus
	Matches     []Match
	// Current indexes Matches, -1 when there are none.
	Current int
}

// Find returns a copy of the find/replace state.
func (s *Session) Find() FindState { return s.find }

// CurrentMatch returns the selected match, if any.
func (s *Session) CurrentMatch() (Match, bool) {
	if s.find.Current < 0 || s.find.Current >= len(s.find.Matches) {
		return Match{}, false
	}
	return s.find.Matches[s.find.Current], true
}

// StartFind opens the find bar in plain mode with focus on the query.
func (s *Session) StartFind() {
	s.find.Active = true
	s.find.ReplaceMode = false
	s.find.Focus = FocusFind
	s.PerformFind()
}

// StartFindReplace opens the find bar with the replace field shown.
func (s *Session) StartFindReplace() {
	s.find.Active = true
	s.find.ReplaceMode = true
	s.find.Focus = FocusFind
	s.PerformFind()
}

// StopFind closes the bar and drops the matches, keeping both queries
// and the toggles for the next time.
func (s *Session) StopFind() {
	s.find.Active = false
	s.find.Matches = nil
	s.find.Current = -1
}

// SetQuery replaces the search query and re-runs the scan.
func (s *Session) SetQuery(q string) {
	s.find.Query = q
	s.PerformFind()
}

// SetReplace replaces the replacement text. Matches are unaffected, so
// no re-scan happens.
func (s *Session) SetReplace(q string) {
	s.find.Replace = q
}

// ToggleCase flips case sensitivity and re-runs the scan.
func (s *Session) ToggleCase() {
	s.find.CaseSensitive = !s.find.CaseSensitive
	s.PerformFind()
}

// ToggleWholeWord flips whole-word matching and re-runs the scan.
func (s *Session) ToggleWholeWord() {
	s.find.WholeWord = !s.find.WholeWord
	s.PerformFind()
}

// ToggleReplaceMode switches between the one and two field bars. Leaving
// replace mode pulls focus back to the query.
func (s *Session) ToggleReplaceMode() {
	s.find.ReplaceMode = !s.find.ReplaceMode
	if !s.find.ReplaceMode {
		s.find.Focus = FocusFind
	}
}

// ToggleFocus moves focus between the query and replace fields. Outside
// replace mode focus stays on the query.
func (s *Session) ToggleFocus() {
	if !s.find.ReplaceMode || s.find.Focus == FocusReplace {
		s.find.Focus = FocusFind
		return
	}
	s.find.Focus = FocusReplace
}

// PerformFind rebuilds the match list: a per-line, non-overlapping scan
// of the whole document. Case-insensitive mode lowercases rune by rune so
// match columns line up with the document. The current match becomes the
// first one starting at or after the cursor, wrapping to the first match,
// and the cursor jumps to it.
func (s *Session) PerformFind() {
	s.find.Matches = nil
	s.find.Current = -1
	if s.find.Query == "" {
		return
	}

	query := []rune(s.find.Query)
	if !s.find.CaseSensitive {
		query = foldRunes(query)
	}

	for line := 0; line < s.buf.LineCount(); line++ {
		hay := []rune(s.buf.Line(line))
		if !s.find.CaseSensitive {
			hay = foldRunes(hay)
		}
		for col := 0; col+len(query) <= len(hay); {
			if !runesEqual(hay[col:col+len(query)], query) {
				col++
				continue
			}
			if s.find.WholeWord && !wholeWordAt(hay, col, col+len(query)) {
				col++
				continue
			}
			s.find.Matches = append(s.find.Matches, Match{
				Start: buffer.Pos{Line: line, Col: col},
				End:   buffer.Pos{Line: line, Col: col + len(query)},
			})
			col += len(query)
		}
	}

	if len(s.find.Matches) == 0 {
		return
	}

	s.find.Current = 0
	p := s.cur.Pos()
	for i, m := range s.find.Matches {
		if buffer.ComparePos(m.Start, p) >= 0 {
			s.find.Current = i
			break
		}
	}
	s.jumpToCurrent()
}

// FindNext advances to the next match, wrapping at the end.
func (s *Session) FindNext() {
	n := len(s.find.Matches)
	if n == 0 {
		return
	}
	s.find.Current = (s.find.Current + 1) % n
	s.jumpToCurrent()
}

// FindPrev steps back to the previous match, wrapping at the start.
func (s *Session) FindPrev() {
	n := len(s.find.Matches)
	if n == 0 {
		return
	}
	s.find.Current = (s.find.Current - 1 + n) % n
	s.jumpToCurrent()
}

func (s *Session) jumpToCurrent() {
	m, ok := s.CurrentMatch()
	if !ok {
		return
	}
	s.cur.ClearSelection()
	s.cur.MoveTo(s.buf, m.Start)
	s.UpdateViewport(s.height)
}

// ReplaceCurrent replaces the selected match and re-runs the scan, which
// also re-selects the nearest following match. Requires replace mode and
// a current match; reports whether a replacement happened.
func (s *Session) ReplaceCurrent() bool {
	if !s.find.ReplaceMode {
		return false
	}
	m, ok := s.CurrentMatch()
	if !ok {
		return false
	}
	s.saveState()
	s.spliceMatch(m)
	s.modified = true
	s.PerformFind()
	return true
}

// ReplaceAll replaces every match as one history step and returns the
// count. Matches are applied in reverse document order, re-reading each
// line before splicing, so earlier columns on a shared line stay valid
// as replacements change line lengths.
func (s *Session) ReplaceAll() int {
	if !s.find.ReplaceMode || len(s.find.Matches) == 0 {
		return 0
	}
	matches := s.find.Matches
	s.saveState()
	for i := len(matches) - 1; i >= 0; i-- {
		s.spliceMatch(matches[i])
	}
	s.modified = true
	s.cur.Clamp(s.buf)
	s.PerformFind()
	return len(matches)
}

// spliceMatch swaps one match for the replacement text within its line.
// Stale coordinates that no longer fit the line are skipped.
func (s *Session) spliceMatch(m Match) {
	line := []rune(s.buf.Line(m.Start.Line))
	if m.Start.Col < 0 || m.End.Col > len(line) || m.Start.Col > m.End.Col {
		return
	}
	text := string(line[:m.Start.Col]) + s.find.Replace + string(line[m.End.Col:])
	s.buf.ReplaceLine(m.Start.Line, text)
}

// foldRunes lowercases rune by rune, preserving offsets.
func foldRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// wholeWordAt reports whether [start, end) in line is delimited by
// non-word runes or line edges on both sides.
func wholeWordAt(line []rune, start, end int) bool {
	if start > 0 && buffer.IsWordRune(line[start-1]) {
		return false
	}
	if end < len(line) && buffer.IsWordRune(line[end]) {
		return false
	}
	return true
}
