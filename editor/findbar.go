package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizrmd/plume/internal/cell"
	"github.com/rizrmd/plume/session"
)

func (m Model) updateFindKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	fk := m.cfg.FindKeys
	switch {
	case key.Matches(msg, fk.Close):
		m.sess.StopFind()

	case key.Matches(msg, fk.Confirm):
		if m.sess.Find().Focus == session.FocusReplace {
			m.sess.ReplaceCurrent()
		} else {
			m.sess.FindNext()
		}
	case key.Matches(msg, fk.Next):
		m.sess.FindNext()
	case key.Matches(msg, fk.Prev):
		m.sess.FindPrev()

	case key.Matches(msg, fk.SwitchField):
		m.sess.ToggleFocus()
	case key.Matches(msg, fk.ToggleCase):
		m.sess.ToggleCase()
	case key.Matches(msg, fk.ToggleWord):
		m.sess.ToggleWholeWord()
	case key.Matches(msg, fk.ToggleReplace):
		m.sess.ToggleReplaceMode()

	case key.Matches(msg, fk.Replace):
		m.sess.ReplaceCurrent()
	case key.Matches(msg, fk.ReplaceAll):
		if m.sess.Find().ReplaceMode {
			n := m.sess.ReplaceAll()
			if n == 1 {
				m.status = "Replaced 1 occurrence"
			} else {
				m.status = fmt.Sprintf("Replaced %d occurrences", n)
			}
		}

	case key.Matches(msg, fk.Backspace):
		m.findBackspace()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.findInsert(string(msg.Runes))
			break
		}
		return m, nil
	}

	m.followCursor()
	return m, nil
}

// findInsert appends typed text to the focused find bar field.
func (m *Model) findInsert(text string) {
	f := m.sess.Find()
	if f.Focus == session.FocusReplace {
		m.sess.SetReplace(f.Replace + text)
		return
	}
	m.sess.SetQuery(f.Query + text)
}

// findBackspace erases the last rune of the focused find bar field.
func (m *Model) findBackspace() {
	f := m.sess.Find()
	if f.Focus == session.FocusReplace {
		if r := []rune(f.Replace); len(r) > 0 {
			m.sess.SetReplace(string(r[:len(r)-1]))
		}
		return
	}
	if r := []rune(f.Query); len(r) > 0 {
		m.sess.SetQuery(string(r[:len(r)-1]))
	}
}

// findBarHeight is the number of widget rows the find bar occupies: one
// for plain find, two with the replace field, zero when closed.
func (m Model) findBarHeight() int {
	f := m.sess.Find()
	switch {
	case !f.Active:
		return 0
	case f.ReplaceMode:
		return 2
	}
	return 1
}

func (m Model) renderFindBar() string {
	f := m.sess.Find()
	if !f.Active {
		return ""
	}

	count := "0/0"
	if len(f.Matches) > 0 {
		count = fmt.Sprintf("%d/%d", f.Current+1, len(f.Matches))
	}
	suffix := count
	if f.CaseSensitive {
		suffix += " [Aa]"
	}
	if f.WholeWord {
		suffix += " [W]"
	}

	top := m.findBarLine(" Find: ", f.Query, f.Focus == session.FocusFind, suffix)
	if !f.ReplaceMode {
		return top
	}
	return top + "\n" + m.findBarLine(" Replace: ", f.Replace, f.Focus == session.FocusReplace, "")
}

// findBarLine renders one bar row padded to the widget width, with the
// focused field styled for emphasis.
func (m Model) findBarLine(label, text string, focused bool, suffix string) string {
	st := m.cfg.Style
	var sb strings.Builder
	w := 0
	write := func(s string, style lipgloss.Style) {
		if s == "" {
			return
		}
		sb.WriteString(style.Render(s))
		w += cell.Width(s)
	}

	field := st.FindBar
	if focused {
		field = st.FindFocus
	}
	write(label, st.FindBar)
	write(text, field)
	if suffix != "" {
		write("  "+suffix, st.FindBar)
	}
	if pad := m.width - w; pad > 0 {
		write(strings.Repeat(" ", pad), st.FindBar)
	}
	return sb.String()
}
