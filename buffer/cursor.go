package buffer

// Cursor is a position in a rope plus two pieces of sticky state: the
// desired column remembered across vertical moves through short lines,
// and the selection anchor set when extending.
//
// Movement methods take the rope they move over and an extend flag. With
// extend set, the first move plants the anchor at the current position
// and later moves keep it; without it, any anchor is dropped before the
// move. Horizontal movement forgets the desired column.
type Cursor struct {
	pos        Pos
	anchor     Pos
	hasAnchor  bool
	desired    int
	hasDesired bool
}

func (c *Cursor) Pos() Pos { return c.pos }

// Anchor returns the selection anchor, if one is set.
func (c *Cursor) Anchor() (Pos, bool) { return c.anchor, c.hasAnchor }

func (c *Cursor) HasSelection() bool { return c.hasAnchor }

// Selection returns the normalized anchor..position range. It reports ok
// whenever an anchor is present, even when the range is collapsed; callers
// that only want non-empty selections must check IsEmpty themselves.
func (c *Cursor) Selection() (Range, bool) {
	if !c.hasAnchor {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: c.anchor, End: c.pos}), true
}

// StartSelection plants the anchor at the current position.
func (c *Cursor) StartSelection() {
	c.anchor = c.pos
	c.hasAnchor = true
}

func (c *Cursor) ClearSelection() {
	c.hasAnchor = false
}

// MoveTo jumps to p, clamped into bounds. The anchor is left alone so
// callers compose it with StartSelection or ClearSelection.
func (c *Cursor) MoveTo(r *Rope, p Pos) {
	c.pos = ClampPos(r, p)
	c.hasDesired = false
}

// ExtendTo grows a selection toward p, planting the anchor first if none
// is set. This is the drag primitive.
func (c *Cursor) ExtendTo(r *Rope, p Pos) {
	if !c.hasAnchor {
		c.StartSelection()
	}
	c.pos = ClampPos(r, p)
	c.hasDesired = false
}

// SelectWordAt selects the maximal word-rune run containing p. When the
// rune under p is not a word rune, nothing changes.
func (c *Cursor) SelectWordAt(r *Rope, p Pos) {
	p = ClampPos(r, p)
	line := []rune(r.Line(p.Line))
	if p.Col >= len(line) || !IsWordRune(line[p.Col]) {
		return
	}
	start, end := p.Col, p.Col
	for start > 0 && IsWordRune(line[start-1]) {
		start--
	}
	for end < len(line) && IsWordRune(line[end]) {
		end++
	}
	c.anchor = Pos{Line: p.Line, Col: start}
	c.hasAnchor = true
	c.pos = Pos{Line: p.Line, Col: end}
	c.hasDesired = false
}

// Clamp pulls the position and anchor back into bounds after the rope
// shrank underneath them.
func (c *Cursor) Clamp(r *Rope) {
	c.pos = ClampPos(r, c.pos)
	if c.hasAnchor {
		c.anchor = ClampPos(r, c.anchor)
	}
}

// prepare applies the extend flag before a move: plant the anchor on the
// first extending move, drop it on a plain one.
func (c *Cursor) prepare(extend bool) {
	if extend {
		if !c.hasAnchor {
			c.StartSelection()
		}
		return
	}
	c.hasAnchor = false
}

// Left moves one rune left, wrapping to the end of the previous line.
func (c *Cursor) Left(r *Rope, extend bool) {
	c.prepare(extend)
	c.hasDesired = false
	if c.pos.Col > 0 {
		c.pos.Col--
		return
	}
	if c.pos.Line > 0 {
		c.pos.Line--
		c.pos.Col = r.LineLen(c.pos.Line)
	}
}

// Right moves one rune right, wrapping to the start of the next line.
func (c *Cursor) Right(r *Rope, extend bool) {
	c.prepare(extend)
	c.hasDesired = false
	if c.pos.Col < r.LineLen(c.pos.Line) {
		c.pos.Col++
		return
	}
	if c.pos.Line < r.LineCount()-1 {
		c.pos.Line++
		c.pos.Col = 0
	}
}

// Up moves one line up, keeping the desired column where the new line is
// long enough. At the first line it does nothing.
func (c *Cursor) Up(r *Rope, extend bool) {
	c.prepare(extend)
	if c.pos.Line == 0 {
		return
	}
	c.pos.Line--
	c.settleVertical(r)
}

// Down moves one line down. At the last line it does nothing.
func (c *Cursor) Down(r *Rope, extend bool) {
	c.prepare(extend)
	if c.pos.Line >= r.LineCount()-1 {
		return
	}
	c.pos.Line++
	c.settleVertical(r)
}

// settleVertical lands the column after a vertical move: the desired
// column is recorded the first time the landing line truncates the
// column, then reused until a horizontal move forgets it.
func (c *Cursor) settleVertical(r *Rope) {
	length := r.LineLen(c.pos.Line)
	if !c.hasDesired && c.pos.Col > length {
		c.desired = c.pos.Col
		c.hasDesired = true
	}
	col := c.pos.Col
	if c.hasDesired {
		col = c.desired
	}
	if col > length {
		col = length
	}
	c.pos.Col = col
}

// Home moves to column 0 of the current line.
func (c *Cursor) Home(r *Rope, extend bool) {
	c.prepare(extend)
	c.hasDesired = false
	c.pos.Col = 0
}

// End moves past the last rune of the current line.
func (c *Cursor) End(r *Rope, extend bool) {
	c.prepare(extend)
	c.hasDesired = false
	c.pos.Col = r.LineLen(c.pos.Line)
}

// WordLeft moves to the start of the word left of the cursor: separators
// are skipped first, then word runes. At column 0 it falls through to the
// end of the previous line.
func (c *Cursor) WordLeft(r *Rope, extend bool) {
	c.prepare(extend)
	c.hasDesired = false
	if c.pos.Col == 0 {
		if c.pos.Line > 0 {
			c.pos.Line--
			c.pos.Col = r.LineLen(c.pos.Line)
		}
		return
	}
	line := []rune(r.Line(c.pos.Line))
	col := clampInt(c.pos.Col, 0, len(line))
	for col > 0 && !IsWordRune(line[col-1]) {
		col--
	}
	for col > 0 && IsWordRune(line[col-1]) {
		col--
	}
	c.pos.Col = col
}

// WordRight moves past the word right of the cursor: word runes are
// skipped first, then separators. At the line end it falls through to the
// start of the next line.
func (c *Cursor) WordRight(r *Rope, extend bool) {
	c.prepare(extend)
	c.hasDesired = false
	line := []rune(r.Line(c.pos.Line))
	if c.pos.Col >= len(line) {
		if c.pos.Line < r.LineCount()-1 {
			c.pos.Line++
			c.pos.Col = 0
		}
		return
	}
	col := c.pos.Col
	for col < len(line) && IsWordRune(line[col]) {
		col++
	}
	for col < len(line) && !IsWordRune(line[col]) {
		col++
	}
	c.pos.Col = col
}
