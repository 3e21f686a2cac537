package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rizrmd/plume/buffer"
)

const (
	doubleClickWindow = 500 * time.Millisecond
	wheelAccelWindow  = 100 * time.Millisecond
	wheelMaxStep      = 5
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollLines(-m.wheelStep())
		case tea.MouseButtonWheelDown:
			m.scrollLines(m.wheelStep())
		case tea.MouseButtonLeft:
			m.pressLeft(msg)
		}

	case tea.MouseActionMotion:
		switch {
		case m.dragScroll:
			m.scrollToThumb(msg.Y)
		case m.dragging:
			x, y := m.clampToContent(msg.X, msg.Y)
			m.sess.ExtendTo(m.hitTest(x, y))
			m.followCursor()
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			// A click that never moved leaves a collapsed anchor; drop it.
			if r, ok := m.sess.Selection(); ok && buffer.NormalizeRange(r).IsEmpty() {
				m.sess.ClearSelection()
			}
			m.rebuildContent()
		}
		m.dragScroll = false
	}
	return m, nil
}

// wheelStep ramps the scroll step from 1 up to wheelMaxStep while wheel
// events keep arriving within wheelAccelWindow of each other.
func (m *Model) wheelStep() int {
	now := time.Now()
	if now.Sub(m.lastWheel) <= wheelAccelWindow {
		if m.wheelStreak < wheelMaxStep {
			m.wheelStreak++
		}
	} else {
		m.wheelStreak = 1
	}
	m.lastWheel = now
	return m.wheelStreak
}

// scrollLines scrolls the view without moving the cursor.
func (m *Model) scrollLines(delta int) {
	if m.sess.Preview() {
		m.viewport.SetYOffset(m.viewport.YOffset + delta)
		return
	}
	m.sess.ScrollBy(delta, m.contentHeight())
	m.viewport.SetYOffset(m.sess.ViewTop())
}

func (m *Model) pressLeft(msg tea.MouseMsg) {
	if !m.inContent(msg.X, msg.Y) {
		return
	}
	if msg.X == m.width-1 {
		m.dragScroll = true
		m.scrollToThumb(msg.Y)
		return
	}
	if m.sess.Preview() {
		return
	}

	pos := m.hitTest(msg.X, msg.Y)
	now := time.Now()
	switch {
	case msg.Shift:
		m.sess.ExtendTo(pos)
	case now.Sub(m.lastClick) <= doubleClickWindow && pos == m.lastClickPos:
		m.sess.SelectWordAt(pos)
	default:
		m.sess.MoveTo(pos)
	}
	m.lastClick = now
	m.lastClickPos = pos
	m.dragging = true
	m.followCursor()
}

// scrollToThumb jumps the view so the scrollbar thumb centers on track
// row y, then keeps following while the thumb is dragged.
func (m *Model) scrollToThumb(y int) {
	h := m.contentHeight()
	target := scrollbarTarget(y, m.viewport.TotalLineCount(), h)
	if m.sess.Preview() {
		m.viewport.SetYOffset(target)
		return
	}
	m.sess.ScrollTo(target, h)
	m.viewport.SetYOffset(m.sess.ViewTop())
}

func (m Model) inContent(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.contentHeight()
}

// clampToContent pins drag coordinates to the text area, so dragging past
// an edge keeps selecting the nearest line.
func (m Model) clampToContent(x, y int) (int, int) {
	return clamp(x, 0, m.width-2), clamp(y, 0, m.contentHeight()-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
