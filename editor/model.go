package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizrmd/plume/buffer"
	"github.com/rizrmd/plume/session"
)

// Model is a Bubble Tea component that renders and edits one session.
// The host owns the session; a tab switch is a SetSession call.
type Model struct {
	cfg  Config
	sess *session.Session

	viewport viewport.Model
	width    int
	height   int

	focused bool
	status  string

	dragging   bool
	dragScroll bool

	lastClick    time.Time
	lastClickPos buffer.Pos

	lastWheel   time.Time
	wheelStreak int
}

func New(cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}
	if !cfg.KeyMap.Left.Enabled() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if !cfg.FindKeys.Close.Enabled() {
		cfg.FindKeys = DefaultFindKeyMap()
	}
	if cfg.Session == nil {
		cfg.Session = session.New("untitled", session.Options{})
	}
	m := Model{
		cfg:      cfg,
		sess:     cfg.Session,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Session() *session.Session { return m.sess }

// Status returns transient feedback from the last key operation, like
// "Nothing to undo". It clears on the next key event.
func (m Model) Status() string { return m.status }

// SetSession swaps the edited session, keeping the widget's size. The new
// session's own viewport offsets take over, so switching back to a tab
// restores its scroll position.
func (m Model) SetSession(s *session.Session) Model {
	if s == nil {
		return m
	}
	m.sess = s
	m.status = ""
	m.dragging = false
	m.dragScroll = false
	if s.Preview() {
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = m.contentHeight()
		m.rebuildContent()
		m.viewport.SetYOffset(s.ViewTop())
		return m
	}
	m.followCursor()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	if m.sess.Preview() {
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = m.contentHeight()
		m.rebuildContent()
		m.viewport.SetYOffset(m.viewport.YOffset)
		return m
	}
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// TogglePreview flips the markdown preview, for hosts that bind their own
// shortcut next to the widget's. Non-markdown sessions are unaffected.
func (m Model) TogglePreview() Model {
	if !m.sess.Markdown() {
		return m
	}
	if m.sess.Preview() {
		m.sess.TogglePreview()
		m.followCursor()
		return m
	}
	m.sess.StopFind()
	m.sess.TogglePreview()
	m.enterPreview()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	body := m.viewport.View()
	if bar := m.renderScrollbar(); bar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
	}
	if fb := m.renderFindBar(); fb != "" {
		body += "\n" + fb
	}
	return body
}

// contentWidth is the text area width: the widget width minus the
// scrollbar column.
func (m Model) contentWidth() int {
	w := m.width - 1
	if w < 0 {
		w = 0
	}
	return w
}

// contentHeight is the text area height: the widget height minus the
// find bar rows.
func (m Model) contentHeight() int {
	h := m.height - m.findBarHeight()
	if h < 0 {
		h = 0
	}
	return h
}

// followCursor pulls the session viewport to the cursor, then projects
// the session state onto the render window.
func (m *Model) followCursor() {
	if h := m.contentHeight(); h > 0 {
		m.sess.UpdateViewport(h)
	}
	m.syncViewport()
}

// syncViewport refreshes the render window from session state without
// moving the view toward the cursor. Scroll-only operations use it so
// the view is not yanked back.
func (m *Model) syncViewport() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.rebuildContent()
	m.viewport.SetYOffset(m.sess.ViewTop())
}

func (m *Model) rebuildContent() {
	if m.sess.Preview() {
		m.viewport.SetContent(m.renderPreview())
		return
	}
	m.viewport.SetContent(m.renderContent())
}
