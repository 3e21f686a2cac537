package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.status = ""

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.pasteEvent(string(msg.Runes)), nil
	}

	if m.sess.Preview() {
		return m.updatePreviewKey(msg)
	}
	if m.sess.Find().Active {
		return m.updateFindKey(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.sess.Left(false)
	case key.Matches(msg, km.Right):
		m.sess.Right(false)
	case key.Matches(msg, km.Up):
		m.sess.Up(false)
	case key.Matches(msg, km.Down):
		m.sess.Down(false)

	case key.Matches(msg, km.ShiftLeft):
		m.sess.Left(true)
	case key.Matches(msg, km.ShiftRight):
		m.sess.Right(true)
	case key.Matches(msg, km.ShiftUp):
		m.sess.Up(true)
	case key.Matches(msg, km.ShiftDown):
		m.sess.Down(true)

	case key.Matches(msg, km.WordLeft):
		m.sess.WordLeft(false)
	case key.Matches(msg, km.WordRight):
		m.sess.WordRight(false)
	case key.Matches(msg, km.ShiftWordLeft):
		m.sess.WordLeft(true)
	case key.Matches(msg, km.ShiftWordRight):
		m.sess.WordRight(true)

	case key.Matches(msg, km.Home):
		m.sess.Home(false)
	case key.Matches(msg, km.End):
		m.sess.End(false)
	case key.Matches(msg, km.ShiftHome):
		m.sess.Home(true)
	case key.Matches(msg, km.ShiftEnd):
		m.sess.End(true)

	// Paging scrolls the view and leaves the cursor alone, so no
	// cursor-follow afterwards.
	case key.Matches(msg, km.PageUp):
		m.sess.PageUp(m.contentHeight())
		m.syncViewport()
		return m, nil
	case key.Matches(msg, km.PageDown):
		m.sess.PageDown(m.contentHeight())
		m.syncViewport()
		return m, nil

	case key.Matches(msg, km.SelectAll):
		m.sess.SelectAll()

	case key.Matches(msg, km.Backspace):
		m.sess.Backspace()
	case key.Matches(msg, km.Delete):
		m.sess.Delete()
	case key.Matches(msg, km.DeleteWordLeft):
		m.sess.DeleteWordLeft()
	case key.Matches(msg, km.DeleteWordRight):
		m.sess.DeleteWordRight()
	case key.Matches(msg, km.Enter):
		m.sess.InsertNewline()

	case key.Matches(msg, km.Undo):
		if !m.sess.Undo() {
			m.status = "Nothing to undo"
		}
	case key.Matches(msg, km.Redo):
		if !m.sess.Redo() {
			m.status = "Nothing to redo"
		}

	case key.Matches(msg, km.Copy):
		m.sess.Copy(m.cfg.Clipboard)
	case key.Matches(msg, km.Cut):
		m.sess.Cut(m.cfg.Clipboard)
	case key.Matches(msg, km.Paste):
		m.sess.Paste(m.cfg.Clipboard)

	case key.Matches(msg, km.Find):
		m.sess.StartFind()
	case key.Matches(msg, km.Replace):
		m.sess.StartFindReplace()
	case key.Matches(msg, km.FindNext):
		m.sess.FindNext()
	case key.Matches(msg, km.FindPrev):
		m.sess.FindPrev()

	case key.Matches(msg, km.Preview):
		return m.TogglePreview(), nil
	case key.Matches(msg, km.Wrap):
		m.sess.ToggleWordWrap()

	default:
		if msg.Type == tea.KeyTab {
			m.sess.InsertTab()
			break
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.sess.InsertText(string(msg.Runes))
			break
		}
		return m, nil
	}

	m.followCursor()
	return m, nil
}

// pasteEvent handles bracketed paste: find bar edits when the bar is
// focused, document insertion otherwise. Line endings are normalized the
// same way session.Paste does it.
func (m Model) pasteEvent(text string) Model {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	switch {
	case m.sess.Preview():
		return m
	case m.sess.Find().Active:
		m.findInsert(strings.ReplaceAll(text, "\n", " "))
	default:
		m.sess.InsertText(text)
	}
	m.followCursor()
	return m
}

// updatePreviewKey handles the read-only markdown preview: scrolling and
// the preview/wrap toggles. Everything else is ignored.
func (m Model) updatePreviewKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Preview):
		return m.TogglePreview(), nil
	case key.Matches(msg, km.Wrap):
		m.sess.ToggleWordWrap()
		m.rebuildContent()
		m.viewport.SetYOffset(m.viewport.YOffset)
	case key.Matches(msg, km.Up):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, km.Down):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, km.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - previewPageStep(m.contentHeight()))
	case key.Matches(msg, km.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + previewPageStep(m.contentHeight()))
	case key.Matches(msg, km.Home):
		m.viewport.GotoTop()
	case key.Matches(msg, km.End):
		m.viewport.GotoBottom()
	}
	return m, nil
}

// enterPreview re-renders after flipping into preview, starting the
// preview scroll near the session's edit scroll.
func (m *Model) enterPreview() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.rebuildContent()
	m.viewport.SetYOffset(m.sess.ViewTop())
}

func previewPageStep(height int) int {
	step := height - 4
	if step < 1 {
		step = 1
	}
	return step
}
