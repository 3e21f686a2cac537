package session

import (
	"fmt"
	"testing"

	"github.com/rizrmd/plume/buffer"
)

func TestSession_UndoRedo_BasicTyping(t *testing.T) {
	s := New("untitled-1", Options{})
	typeString(s, "hi")

	if !s.Undo() {
		t.Fatalf("undo failed")
	}
	if got, want := s.Text(), "h"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := s.CursorPos(), (buffer.Pos{Line: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	if !s.Redo() {
		t.Fatalf("redo failed")
	}
	if got, want := s.Text(), "hi"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := s.CursorPos(), (buffer.Pos{Line: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestSession_UndoRedo_InverseForEveryOperation(t *testing.T) {
	ops := []struct {
		name  string
		apply func(*Session, Clipboard)
	}{
		{name: "rune", apply: func(s *Session, _ Clipboard) { s.InsertRune('x') }},
		{name: "newline", apply: func(s *Session, _ Clipboard) { s.InsertNewline() }},
		{name: "tab", apply: func(s *Session, _ Clipboard) { s.InsertTab() }},
		{name: "backspace", apply: func(s *Session, _ Clipboard) { s.Backspace() }},
		{name: "delete", apply: func(s *Session, _ Clipboard) { s.Delete() }},
		{name: "word-left", apply: func(s *Session, _ Clipboard) { s.DeleteWordLeft() }},
		{name: "word-right", apply: func(s *Session, _ Clipboard) { s.DeleteWordRight() }},
		{name: "cut", apply: func(s *Session, c Clipboard) { s.Cut(c) }},
		{name: "paste", apply: func(s *Session, c Clipboard) {
			_ = c.WriteText("pasted\ntext")
			s.Paste(c)
		}},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			s := FromFile("/tmp/t.txt", "alpha beta\ngamma", Options{})
			clip := &MemClipboard{}
			s.MoveTo(buffer.Pos{Line: 0, Col: 5})

			before := s.Text()
			beforeCur := s.CursorPos()
			op.apply(s, clip)
			after := s.Text()
			afterCur := s.CursorPos()

			if !s.Undo() {
				t.Fatalf("undo failed")
			}
			if got := s.Text(); got != before {
				t.Fatalf("undo text=%q, want %q", got, before)
			}
			if got := s.CursorPos(); got != beforeCur {
				t.Fatalf("undo cursor=%v, want %v", got, beforeCur)
			}

			if !s.Redo() {
				t.Fatalf("redo failed")
			}
			if got := s.Text(); got != after {
				t.Fatalf("redo text=%q, want %q", got, after)
			}
			if got := s.CursorPos(); got != afterCur {
				t.Fatalf("redo cursor=%v, want %v", got, afterCur)
			}
		})
	}
}

func TestSession_Undo_EmptyStackNoOps(t *testing.T) {
	s := FromFile("/tmp/t.txt", "text", Options{})

	if s.Undo() {
		t.Fatalf("undo on empty stack must report false")
	}
	if s.Redo() {
		t.Fatalf("redo on empty stack must report false")
	}
	if got, want := s.Text(), "text"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if s.Modified() {
		t.Fatalf("failed undo must not touch modified")
	}
}

func TestSession_Undo_ClearsModifiedAtBottom(t *testing.T) {
	s := FromFile("/tmp/t.txt", "x", Options{})
	typeString(s, "ab")

	if !s.Undo() {
		t.Fatalf("undo failed")
	}
	if !s.Modified() {
		t.Fatalf("mid-history state must stay modified")
	}

	if !s.Undo() {
		t.Fatalf("undo failed")
	}
	if s.Modified() {
		t.Fatalf("empty undo stack must clear modified")
	}

	if !s.Redo() {
		t.Fatalf("redo failed")
	}
	if !s.Modified() {
		t.Fatalf("redo must mark modified")
	}
}

func TestSession_NewEdit_ClearsRedo(t *testing.T) {
	s := New("untitled-1", Options{})
	typeString(s, "ab")
	s.Undo()
	if !s.CanRedo() {
		t.Fatalf("expected redo available")
	}

	s.InsertRune('z')
	if s.CanRedo() {
		t.Fatalf("new edit must clear redo")
	}
	if got, want := s.Text(), "az"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestSession_Undo_RestoresSelection(t *testing.T) {
	s := FromFile("/tmp/t.txt", "hello", Options{})
	s.Home(false)
	s.Right(true)
	s.Right(true) // select "he"

	s.InsertRune('X')
	if got, want := s.Text(), "Xllo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if !s.Undo() {
		t.Fatalf("undo failed")
	}
	sel, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	want := buffer.Range{Start: buffer.Pos{Line: 0, Col: 0}, End: buffer.Pos{Line: 0, Col: 2}}
	if sel != want {
		t.Fatalf("selection=%v, want %v", sel, want)
	}
}

// 150 edits against a limit of 100: the oldest 50 snapshots are evicted,
// so exactly 100 undos succeed and land on the state after edit 50.
func TestSession_HistoryBound_EvictsOldest(t *testing.T) {
	s := New("untitled-1", Options{})
	for i := 0; i < 150; i++ {
		s.InsertRune(rune('a' + i%26))
	}

	var after50 string
	{
		probe := New("probe", Options{})
		for i := 0; i < 50; i++ {
			probe.InsertRune(rune('a' + i%26))
		}
		after50 = probe.Text()
	}

	undos := 0
	for s.Undo() {
		undos++
		if undos > 151 {
			t.Fatalf("undo never drained")
		}
	}
	if got, want := undos, DefaultHistoryLimit; got != want {
		t.Fatalf("undo steps=%d, want %d", got, want)
	}
	if got := s.Text(); got != after50 {
		t.Fatalf("text=%q, want %q", got, after50)
	}
	if s.Modified() {
		t.Fatalf("drained history must clear modified")
	}
}

func TestSession_HistoryLimit_Option(t *testing.T) {
	s := New("untitled-1", Options{HistoryLimit: 3})
	typeString(s, "abcdef")

	undos := 0
	for s.Undo() {
		undos++
	}
	if got, want := undos, 3; got != want {
		t.Fatalf("undo steps=%d, want %d", got, want)
	}
	if got, want := s.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

// Snapshots share rope structure, so a deep history over a large document
// must not explode memory; this just exercises the path at some size.
func TestSession_History_LargeDocument(t *testing.T) {
	var content string
	for i := 0; i < 500; i++ {
		content += fmt.Sprintf("line %d with some body text\n", i)
	}
	s := FromFile("/tmp/big.txt", content, Options{})
	s.MoveTo(buffer.Pos{Line: 250, Col: 0})

	typeString(s, "inserted here")
	for i := 0; i < 13; i++ {
		if !s.Undo() {
			t.Fatalf("undo %d failed", i)
		}
	}
	if got := s.Text(); got != content {
		t.Fatalf("document did not round-trip through history")
	}
}
