package editor

import (
	"fmt"

	"github.com/rizrmd/plume/buffer"
	"github.com/rizrmd/plume/internal/cell"
)

// gutterWidth is the line-number column width including its trailing
// space: the digit count right-aligned in at least three cells. Zero when
// line numbers are off.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	d := len(fmt.Sprintf("%d", m.sess.Buffer().LineCount()))
	if d < 3 {
		d = 3
	}
	return d + 1
}

// hitTest maps content-area cell coordinates to a document position, the
// inverse of the render walk: y through the vertical scroll offset, x
// through the gutter, the horizontal offset, and tab stops. Gutter clicks
// land on column zero.
func (m Model) hitTest(x, y int) buffer.Pos {
	buf := m.sess.Buffer()
	line := clamp(m.sess.ViewTop()+y, 0, buf.LineCount()-1)

	cx := x - m.gutterWidth()
	if cx < 0 {
		cx = 0
	}

	runes := []rune(buf.Line(line))
	left := m.sess.ViewLeft()
	if left > len(runes) {
		left = len(runes)
	}
	col := left + cell.ColAt(string(runes[left:]), cx, m.cfg.TabWidth)
	return buffer.Pos{Line: line, Col: col}
}
