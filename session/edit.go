package session

import (
	"strings"
	"unicode/utf8"

	"github.com/rizrmd/plume/buffer"
)

// deleteSelection removes the selected text, if any, and parks the cursor
// at its start. Reports whether anything was removed. Collapsed anchors
// are dropped without touching the text.
func (s *Session) deleteSelection() bool {
	r, ok := s.cur.Selection()
	if !ok {
		return false
	}
	s.cur.ClearSelection()
	if r.IsEmpty() {
		return false
	}
	start := s.buf.Offset(r.Start)
	end := s.buf.Offset(r.End)
	s.buf.Remove(start, end)
	s.cur.MoveTo(s.buf, r.Start)
	return true
}

// insertText replaces the selection with text at the cursor. Callers have
// already pushed the undo snapshot.
func (s *Session) insertText(text string) {
	s.deleteSelection()
	p := s.cur.Pos()
	s.buf.Insert(s.buf.Offset(p), text)
	s.cur.MoveTo(s.buf, advance(p, text))
	s.modified = true
}

// advance returns the position just past text inserted at p.
func advance(p buffer.Pos, text string) buffer.Pos {
	nl := strings.Count(text, "\n")
	if nl == 0 {
		return buffer.Pos{Line: p.Line, Col: p.Col + utf8.RuneCountInString(text)}
	}
	tail := text[strings.LastIndexByte(text, '\n')+1:]
	return buffer.Pos{Line: p.Line + nl, Col: utf8.RuneCountInString(tail)}
}

// InsertRune types one rune at the cursor, replacing the selection.
// One undo snapshot per rune.
func (s *Session) InsertRune(ch rune) {
	s.saveState()
	s.insertText(string(ch))
}

// InsertText inserts a block of text as a single history step, as for
// paste. Empty text is a no-op with no snapshot.
func (s *Session) InsertText(text string) {
	if text == "" {
		return
	}
	s.saveState()
	s.insertText(text)
}

// InsertNewline splits the line at the cursor.
func (s *Session) InsertNewline() {
	s.saveState()
	s.insertText("\n")
}

// InsertTab types a literal tab. Tab stops are a rendering concern.
func (s *Session) InsertTab() {
	s.saveState()
	s.insertText("\t")
}

// Backspace removes the selection, or the rune before the cursor, joining
// lines at column 0. At the document start it keeps the snapshot but
// changes nothing.
func (s *Session) Backspace() {
	s.saveState()
	if s.deleteSelection() {
		s.modified = true
		return
	}
	p := s.cur.Pos()
	switch {
	case p.Col > 0:
		off := s.buf.Offset(p)
		s.buf.Remove(off-1, off)
		s.cur.MoveTo(s.buf, buffer.Pos{Line: p.Line, Col: p.Col - 1})
		s.modified = true
	case p.Line > 0:
		col := s.buf.LineLen(p.Line - 1)
		off := s.buf.LineStart(p.Line)
		s.buf.Remove(off-1, off)
		s.cur.MoveTo(s.buf, buffer.Pos{Line: p.Line - 1, Col: col})
		s.modified = true
	}
}

// Delete removes the selection, or the rune under the cursor, joining
// lines at the line end. The cursor stays put.
func (s *Session) Delete() {
	s.saveState()
	if s.deleteSelection() {
		s.modified = true
		return
	}
	off := s.buf.Offset(s.cur.Pos())
	if off < s.buf.Len() {
		s.buf.Remove(off, off+1)
		s.modified = true
	}
}

// DeleteWordLeft removes from the word-left target to the cursor, or the
// selection when one exists.
func (s *Session) DeleteWordLeft() {
	s.deleteToWordBoundary(func(c *buffer.Cursor) { c.WordLeft(s.buf, false) })
}

// DeleteWordRight removes from the cursor to the word-right target, or
// the selection when one exists.
func (s *Session) DeleteWordRight() {
	s.deleteToWordBoundary(func(c *buffer.Cursor) { c.WordRight(s.buf, false) })
}

func (s *Session) deleteToWordBoundary(move func(*buffer.Cursor)) {
	s.saveState()
	if s.deleteSelection() {
		s.modified = true
		return
	}
	p := s.cur.Pos()
	probe := s.cur
	move(&probe)
	q := probe.Pos()
	if q == p {
		return
	}
	r := buffer.NormalizeRange(buffer.Range{Start: p, End: q})
	start := s.buf.Offset(r.Start)
	end := s.buf.Offset(r.End)
	s.buf.Remove(start, end)
	s.cur.MoveTo(s.buf, r.Start)
	s.modified = true
}

// Copy puts the selected text on the clipboard. Without a non-empty
// selection it does nothing.
func (s *Session) Copy(c Clipboard) {
	if c == nil {
		return
	}
	r, ok := s.cur.Selection()
	if !ok || r.IsEmpty() {
		return
	}
	_ = c.WriteText(s.buf.Slice(s.buf.Offset(r.Start), s.buf.Offset(r.End)))
}

// Cut removes the selected text onto the clipboard. Without a selection
// it cuts the whole current line, terminator included.
func (s *Session) Cut(c Clipboard) {
	if c == nil {
		return
	}
	r, ok := s.cur.Selection()
	if !ok || r.IsEmpty() {
		s.cutLine(c)
		return
	}
	s.saveState()
	_ = c.WriteText(s.buf.Slice(s.buf.Offset(r.Start), s.buf.Offset(r.End)))
	s.deleteSelection()
	s.modified = true
}

func (s *Session) cutLine(c Clipboard) {
	p := s.cur.Pos()
	start := s.buf.LineStart(p.Line)
	end := s.buf.LineStart(p.Line + 1)
	text := s.buf.Slice(start, end)
	if text == "" {
		return
	}
	s.saveState()
	_ = c.WriteText(text)
	s.buf.Remove(start, end)
	s.cur.ClearSelection()
	s.cur.MoveTo(s.buf, buffer.Pos{Line: p.Line, Col: 0})
	s.modified = true
}

// Paste inserts the clipboard text as one history step, normalizing CRLF
// and bare CR line endings.
func (s *Session) Paste(c Clipboard) {
	if c == nil {
		return
	}
	text, err := c.ReadText()
	if err != nil || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	s.saveState()
	s.insertText(text)
}

// SelectAll selects the whole document. Not history-worthy.
func (s *Session) SelectAll() {
	s.cur.ClearSelection()
	s.cur.MoveTo(s.buf, buffer.Pos{})
	s.cur.StartSelection()
	s.cur.ExtendTo(s.buf, s.buf.EndPos())
}

// Movement. Each forwards to the cursor over the live buffer; the host
// reconciles the viewport afterwards.

func (s *Session) Left(extend bool)  { s.cur.Left(s.buf, extend) }
func (s *Session) Right(extend bool) { s.cur.Right(s.buf, extend) }
func (s *Session) Up(extend bool)    { s.cur.Up(s.buf, extend) }
func (s *Session) Down(extend bool)  { s.cur.Down(s.buf, extend) }
func (s *Session) Home(extend bool)  { s.cur.Home(s.buf, extend) }
func (s *Session) End(extend bool)   { s.cur.End(s.buf, extend) }

func (s *Session) WordLeft(extend bool)  { s.cur.WordLeft(s.buf, extend) }
func (s *Session) WordRight(extend bool) { s.cur.WordRight(s.buf, extend) }

// MoveTo places the cursor at p and drops any selection, as for a mouse
// click.
func (s *Session) MoveTo(p buffer.Pos) {
	s.cur.ClearSelection()
	s.cur.MoveTo(s.buf, p)
}

// ExtendTo grows a selection toward p, as for a drag or shift-click.
func (s *Session) ExtendTo(p buffer.Pos) {
	s.cur.ExtendTo(s.buf, p)
}

// SelectWordAt selects the word under p, as for a double-click.
func (s *Session) SelectWordAt(p buffer.Pos) {
	s.cur.SelectWordAt(s.buf, p)
}

// ClearSelection drops the anchor. Hosts call it on mouse release when
// the drag never left the press position.
func (s *Session) ClearSelection() {
	s.cur.ClearSelection()
}
