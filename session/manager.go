package session

import "fmt"

// Manager owns the ordered tab list and the active index. Like Session
// it is driven from the host's update loop and is not safe for
// concurrent use.
type Manager struct {
	tabs     []Tab
	active   int
	untitled int
	opts     Options
}

// NewManager returns an empty manager; sessions it opens use opts.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts}
}

func (m *Manager) Len() int { return len(m.tabs) }

// At returns the tab at index i.
func (m *Manager) At(i int) (Tab, bool) {
	if i < 0 || i >= len(m.tabs) {
		return nil, false
	}
	return m.tabs[i], true
}

func (m *Manager) ActiveIndex() int { return m.active }

// Active returns the active tab, if any tabs exist.
func (m *Manager) Active() (Tab, bool) {
	return m.At(m.active)
}

// ActiveSession returns the active tab as a Session when it is an editor
// tab.
func (m *Manager) ActiveSession() (*Session, bool) {
	t, ok := m.Active()
	if !ok {
		return nil, false
	}
	s, ok := t.(*Session)
	return s, ok
}

// SetActive focuses tab i; out-of-range indices are ignored.
func (m *Manager) SetActive(i int) {
	if i >= 0 && i < len(m.tabs) {
		m.active = i
	}
}

// Add appends a tab and focuses it.
func (m *Manager) Add(t Tab) {
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
}

// OpenFile focuses the existing tab for path, or opens a new session
// over content and focuses that.
func (m *Manager) OpenFile(path, content string) *Session {
	if path != "" {
		for i, t := range m.tabs {
			if s, ok := t.(*Session); ok && s.Path() == path {
				m.active = i
				return s
			}
		}
	}
	s := FromFile(path, content, m.opts)
	m.Add(s)
	return s
}

// NewScratch opens an empty session named untitled-N and focuses it.
// The counter never resets, so names stay unique while the manager
// lives.
func (m *Manager) NewScratch() *Session {
	m.untitled++
	s := New(fmt.Sprintf("untitled-%d", m.untitled), m.opts)
	m.Add(s)
	return s
}

// Close removes tab i. The last remaining tab cannot be closed; Close
// reports whether it removed one. Closing the active tab focuses the tab
// that slid into its place, or the new last tab.
func (m *Manager) Close(i int) bool {
	if len(m.tabs) <= 1 || i < 0 || i >= len(m.tabs) {
		return false
	}
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	if m.active > i || m.active >= len(m.tabs) {
		m.active--
	}
	return true
}

// CloseOthers keeps only tab i and focuses it.
func (m *Manager) CloseOthers(i int) {
	t, ok := m.At(i)
	if !ok {
		return
	}
	m.tabs = []Tab{t}
	m.active = 0
}

// Next focuses the following tab, wrapping at the end.
func (m *Manager) Next() {
	if n := len(m.tabs); n > 1 {
		m.active = (m.active + 1) % n
	}
}

// Prev focuses the preceding tab, wrapping at the start.
func (m *Manager) Prev() {
	if n := len(m.tabs); n > 1 {
		m.active = (m.active - 1 + n) % n
	}
}

// Move reorders tab i to position j. The active tab stays active
// whatever its new index.
func (m *Manager) Move(i, j int) {
	n := len(m.tabs)
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return
	}
	act, _ := m.Active()

	t := m.tabs[i]
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	m.tabs = append(m.tabs, nil)
	copy(m.tabs[j+1:], m.tabs[j:])
	m.tabs[j] = t

	for idx, tab := range m.tabs {
		if tab == act {
			m.active = idx
			break
		}
	}
}

// Titles returns the tab titles in order, for tab strips.
func (m *Manager) Titles() []string {
	out := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		out[i] = t.Title()
	}
	return out
}
