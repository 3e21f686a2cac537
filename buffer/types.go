package buffer

// Pos points into the document by (line, col) in runes.
// Line and Col are 0-based.
type Pos struct {
	Line int
	Col  int
}

// Range is a half-open span in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders positions by line, then column.
func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRange returns r with Start <= End in document order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p falls inside the half-open range.
// r must be normalized.
func (r Range) Contains(p Pos) bool {
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) < 0
}

// ClampPos clamps p into the bounds of r: the line into [0, LineCount) and
// the column into [0, line length].
func ClampPos(r *Rope, p Pos) Pos {
	p.Line = clampInt(p.Line, 0, r.LineCount()-1)
	p.Col = clampInt(p.Col, 0, r.LineLen(p.Line))
	return p
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
