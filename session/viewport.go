package session

// The viewport is (top, left) in document coordinates. Vertical height
// comes from the host on every call and is cached for operations that
// scroll without one, like find jumps. The horizontal window is a fixed
// 80 columns regardless of terminal width; rendering may show more, but
// the cursor is kept inside these 80.
const (
	defaultViewHeight = 40
	horizontalWindow  = 80
	pageOverlap       = 4
)

// UpdateViewport reconciles the viewport with the cursor: the offset
// moves only when the cursor sits outside the visible window, and then
// only far enough to pull it back in. A cursor already inside leaves the
// offset untouched.
func (s *Session) UpdateViewport(height int) {
	if height < 1 {
		height = 1
	}
	s.height = height

	p := s.cur.Pos()
	if p.Line < s.top {
		s.top = p.Line
	} else if p.Line >= s.top+height {
		s.top = p.Line - height + 1
	}

	if p.Col < s.left {
		s.left = p.Col
	} else if p.Col >= s.left+horizontalWindow {
		s.left = p.Col - horizontalWindow + 1
	}
}

// EnsureCursorVisible forces a reconcile after jumps that bypass normal
// editing, like find navigation or a tab switch.
func (s *Session) EnsureCursorVisible(height int) {
	s.UpdateViewport(height)
}

// ScrollBy scrolls the viewport by delta lines without moving the
// cursor. The next cursor operation may pull the view back.
func (s *Session) ScrollBy(delta, height int) {
	s.ScrollTo(s.top+delta, height)
}

// ScrollTo scrolls the viewport so line is the top row, clamped into
// [0, LineCount-height].
func (s *Session) ScrollTo(line, height int) {
	if height < 1 {
		height = 1
	}
	s.height = height

	maxTop := s.buf.LineCount() - height
	if maxTop < 0 {
		maxTop = 0
	}
	if line > maxTop {
		line = maxTop
	}
	if line < 0 {
		line = 0
	}
	s.top = line
}

// PageUp scrolls up by nearly a screen, keeping pageOverlap lines of
// context. The cursor does not move.
func (s *Session) PageUp(height int) {
	s.ScrollBy(-pageStep(height), height)
}

// PageDown scrolls down by nearly a screen.
func (s *Session) PageDown(height int) {
	s.ScrollBy(pageStep(height), height)
}

func pageStep(height int) int {
	step := height - pageOverlap
	if step < 1 {
		step = 1
	}
	return step
}

// ViewTop returns the first visible line.
func (s *Session) ViewTop() int { return s.top }

// ViewLeft returns the first visible column.
func (s *Session) ViewLeft() int { return s.left }
