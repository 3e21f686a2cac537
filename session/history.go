package session

import "github.com/rizrmd/plume/buffer"

// snapshot is one undo step: the whole document plus cursor and
// selection. Rope clones share structure, so holding a hundred of these
// costs far less than a hundred copies of the text.
type snapshot struct {
	buf *buffer.Rope
	cur buffer.Cursor
}

// saveState pushes an undo snapshot of the current state. Every
// history-worthy operation calls it exactly once before mutating, whether
// or not the mutation ends up changing anything. New edits clear the redo
// stack; past the history limit the oldest snapshot is evicted.
func (s *Session) saveState() {
	s.undo = append(s.undo, snapshot{buf: s.buf.Clone(), cur: s.cur})
	if len(s.undo) > s.limit {
		s.undo = s.undo[len(s.undo)-s.limit:]
	}
	s.redo = nil
}

// Undo restores the most recent snapshot, pushing the current state onto
// the redo stack first. It reports false with no state change when the
// undo stack is empty. Walking back to an empty undo stack clears the
// modified flag: the document is assumed to be back at its last saved
// state.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	snap := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, snapshot{buf: s.buf.Clone(), cur: s.cur})
	s.buf = snap.buf
	s.cur = snap.cur
	if len(s.undo) == 0 {
		s.modified = false
	}
	return true
}

// Redo restores the most recently undone state, pushing the current one
// onto the undo stack. A successful redo always marks the session
// modified.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	snap := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, snapshot{buf: s.buf.Clone(), cur: s.cur})
	s.buf = snap.buf
	s.cur = snap.cur
	s.modified = true
	return true
}

func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

func (s *Session) CanRedo() bool { return len(s.redo) > 0 }
