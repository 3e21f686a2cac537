package editor

import "strings"

// scrollbarLayout sizes the thumb for a track of height rows over total
// content lines scrolled to top. The thumb is proportional, at least one
// cell, and covers the whole track when everything fits.
func scrollbarLayout(top, total, height int) (thumbTop, thumbLen int) {
	if height <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, height
	}
	thumbLen = height * height / total
	if thumbLen < 1 {
		thumbLen = 1
	}
	maxTop := height - thumbLen
	thumbTop = clamp(top*maxTop/(total-height), 0, maxTop)
	return thumbTop, thumbLen
}

// scrollbarTarget maps a click at track row y to a top line, centering
// the thumb on the click.
func scrollbarTarget(y, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	_, thumbLen := scrollbarLayout(0, total, height)
	maxTop := height - thumbLen
	if maxTop <= 0 {
		return 0
	}
	ty := clamp(y-thumbLen/2, 0, maxTop)
	return ty * (total - height) / maxTop
}

// renderScrollbar draws the one-cell track column joined to the right of
// the content.
func (m Model) renderScrollbar() string {
	h := m.contentHeight()
	if h <= 0 || m.width < 2 {
		return ""
	}
	thumbTop, thumbLen := scrollbarLayout(m.viewport.YOffset, m.viewport.TotalLineCount(), h)
	rows := make([]string, h)
	for y := range rows {
		if y >= thumbTop && y < thumbTop+thumbLen {
			rows[y] = m.cfg.Style.ScrollbarThumb.Render("┃")
		} else {
			rows[y] = m.cfg.Style.Scrollbar.Render("│")
		}
	}
	return strings.Join(rows, "\n")
}
