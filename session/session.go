package session

import (
	"path/filepath"
	"strings"

	"github.com/rizrmd/plume/buffer"
)

// DefaultHistoryLimit bounds the undo stack unless Options overrides it.
const DefaultHistoryLimit = 100

// Options configures a new Session.
type Options struct {
	// HistoryLimit caps the number of undo snapshots kept; the oldest is
	// evicted when a new one would exceed it. 0 means DefaultHistoryLimit.
	HistoryLimit int
}

// Session is one open document: its text, cursor, viewport offset,
// modified flag, undo history, and find/replace state. Sessions are not
// safe for concurrent use; the host drives one at a time.
type Session struct {
	name string
	path string

	buf *buffer.Rope
	cur buffer.Cursor

	top    int
	left   int
	height int

	modified bool

	limit int
	undo  []snapshot
	redo  []snapshot

	find FindState

	markdown bool
	preview  bool
	wrap     bool
}

// New returns an empty session named name.
func New(name string, opts Options) *Session {
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s := &Session{
		name:   name,
		buf:    buffer.New(""),
		height: defaultViewHeight,
		limit:  limit,
	}
	s.find.Current = -1
	return s
}

// FromFile returns a session over content, named after the last element
// of path. Markdown files start with word wrap enabled for preview.
func FromFile(path, content string, opts Options) *Session {
	s := New(filepath.Base(path), opts)
	s.path = path
	s.buf = buffer.New(content)
	s.markdown = isMarkdownPath(path)
	s.wrap = s.markdown
	return s
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func (s *Session) Name() string { return s.name }

// Path returns the backing file path, empty for scratch sessions.
func (s *Session) Path() string { return s.path }

// DisplayName is the name with a trailing * when there are unsaved edits.
func (s *Session) DisplayName() string {
	if s.modified {
		return s.name + "*"
	}
	return s.name
}

func (s *Session) Modified() bool { return s.modified }

// MarkSaved clears the modified flag after the host persisted the text.
func (s *Session) MarkSaved() { s.modified = false }

// MarkModified forces the modified flag, for host-driven mutations that
// bypass the edit operations.
func (s *Session) MarkModified() { s.modified = true }

// Text returns the full document text.
func (s *Session) Text() string { return s.buf.String() }

// Buffer exposes the live rope for rendering and measurement. Callers
// must not mutate it; edits go through the Session so history and the
// modified flag stay correct.
func (s *Session) Buffer() *buffer.Rope { return s.buf }

func (s *Session) CursorPos() buffer.Pos { return s.cur.Pos() }

// Selection returns the normalized selection. Like Cursor.Selection it
// reports ok for a collapsed anchor too.
func (s *Session) Selection() (buffer.Range, bool) { return s.cur.Selection() }

func (s *Session) Markdown() bool { return s.markdown }

// Preview reports whether the session shows the markdown preview instead
// of the editable text.
func (s *Session) Preview() bool { return s.preview }

func (s *Session) TogglePreview() {
	if s.markdown {
		s.preview = !s.preview
	}
}

func (s *Session) WordWrap() bool { return s.wrap }

func (s *Session) ToggleWordWrap() { s.wrap = !s.wrap }

// Kind makes *Session a Tab.
func (s *Session) Kind() Kind { return KindEditor }

// Title makes *Session a Tab; tab strips show the modified star.
func (s *Session) Title() string { return s.DisplayName() }
