package buffer

import (
	"strings"
	"unicode/utf8"
)

// Leaves hold at most maxLeafBytes of UTF-8. join merges neighbors below
// mergeLeafBytes so the tree stays shallow under heavy edit churn, and
// rebuilds the subtree once it grows past maxDepth.
const (
	maxLeafBytes   = 512
	mergeLeafBytes = 64
	maxDepth       = 48
)

// node is an immutable rope node. Leaves carry text; internal nodes carry
// two children. Both cache the subtree rune and newline counts, so every
// offset query descends in O(depth). Nodes are never mutated after
// construction, which is what makes Rope.Clone O(1).
type node struct {
	left, right *node
	text        string
	runes       int
	breaks      int
	depth       int
}

func (n *node) isLeaf() bool { return n.left == nil }

func leaf(text string) *node {
	return &node{
		text:   text,
		runes:  utf8.RuneCountInString(text),
		breaks: strings.Count(text, "\n"),
	}
}

func join(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.isLeaf() && r.isLeaf() && len(l.text)+len(r.text) <= mergeLeafBytes {
		return leaf(l.text + r.text)
	}
	n := &node{
		left:   l,
		right:  r,
		runes:  l.runes + r.runes,
		breaks: l.breaks + r.breaks,
		depth:  max(l.depth, r.depth) + 1,
	}
	if n.depth > maxDepth {
		return rebuild(n)
	}
	return n
}

// split divides n at rune offset at, returning the two halves.
// Either half may be nil when at touches an edge.
func split(n *node, at int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if at <= 0 {
		return nil, n
	}
	if at >= n.runes {
		return n, nil
	}
	if n.isLeaf() {
		b := runeIndex(n.text, at)
		return leaf(n.text[:b]), leaf(n.text[b:])
	}
	if at <= n.left.runes {
		l, mid := split(n.left, at)
		return l, join(mid, n.right)
	}
	mid, r := split(n.right, at-n.left.runes)
	return join(n.left, mid), r
}

func rebuild(n *node) *node {
	var leaves []*node
	collect(n, &leaves)
	return build(leaves)
}

func collect(n *node, out *[]*node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		*out = append(*out, n)
		return
	}
	collect(n.left, out)
	collect(n.right, out)
}

// build assembles a balanced tree over leaves without re-merging them.
func build(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	l := build(leaves[:mid])
	r := build(leaves[mid:])
	return &node{
		left:   l,
		right:  r,
		runes:  l.runes + r.runes,
		breaks: l.breaks + r.breaks,
		depth:  max(l.depth, r.depth) + 1,
	}
}

// fromString chunks s into leaves, never cutting inside a rune.
func fromString(s string) *node {
	if s == "" {
		return nil
	}
	var leaves []*node
	for s != "" {
		n := len(s)
		if n > maxLeafBytes {
			n = maxLeafBytes
			for n > 0 && !utf8.RuneStart(s[n]) {
				n--
			}
		}
		leaves = append(leaves, leaf(s[:n]))
		s = s[n:]
	}
	return build(leaves)
}

// runeIndex returns the byte index of rune number at in s.
// Callers guarantee at <= rune count.
func runeIndex(s string, at int) int {
	i := 0
	for at > 0 {
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
		at--
	}
	return i
}

// Rope is the document text. The zero value and New("") are an empty
// document with a single empty line. Methods with out-of-range arguments
// clamp or no-op rather than fail.
//
// Mutations replace the root but never touch existing nodes, so a Clone
// shares all structure with its source and costs O(1); the two ropes then
// diverge edit by edit.
type Rope struct {
	root *node
}

// New builds a rope from s.
func New(s string) *Rope {
	return &Rope{root: fromString(s)}
}

// Clone returns an independent snapshot of the rope.
func (r *Rope) Clone() *Rope {
	return &Rope{root: r.root}
}

// Len returns the document length in runes.
func (r *Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.runes
}

// LineCount returns the number of lines. An empty document has one line.
func (r *Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.breaks + 1
}

func (r *Rope) String() string {
	var sb strings.Builder
	appendNode(&sb, r.root)
	return sb.String()
}

func appendNode(sb *strings.Builder, n *node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		sb.WriteString(n.text)
		return
	}
	appendNode(sb, n.left)
	appendNode(sb, n.right)
}

// Insert places text at rune offset at, clamped into [0, Len].
func (r *Rope) Insert(at int, text string) {
	if text == "" {
		return
	}
	at = clampInt(at, 0, r.Len())
	l, right := split(r.root, at)
	r.root = join(join(l, fromString(text)), right)
}

// InsertRune places a single rune at rune offset at.
func (r *Rope) InsertRune(at int, ch rune) {
	r.Insert(at, string(ch))
}

// Remove deletes the runes in [start, end). Reversed or out-of-range
// bounds clamp; an empty span is a no-op.
func (r *Rope) Remove(start, end int) {
	start = clampInt(start, 0, r.Len())
	end = clampInt(end, 0, r.Len())
	if start >= end {
		return
	}
	l, rest := split(r.root, start)
	_, right := split(rest, end-start)
	r.root = join(l, right)
}

// Slice returns the text in [start, end) as a string.
func (r *Rope) Slice(start, end int) string {
	start = clampInt(start, 0, r.Len())
	end = clampInt(end, 0, r.Len())
	if start >= end {
		return ""
	}
	var sb strings.Builder
	appendSlice(&sb, r.root, start, end)
	return sb.String()
}

func appendSlice(sb *strings.Builder, n *node, start, end int) {
	if n == nil || start >= end || start >= n.runes || end <= 0 {
		return
	}
	if n.isLeaf() {
		lo, hi := 0, len(n.text)
		if start > 0 {
			lo = runeIndex(n.text, start)
		}
		if end < n.runes {
			hi = runeIndex(n.text, end)
		}
		sb.WriteString(n.text[lo:hi])
		return
	}
	appendSlice(sb, n.left, start, end)
	appendSlice(sb, n.right, start-n.left.runes, end-n.left.runes)
}

// LineStart returns the rune offset where line begins. Lines at or past
// LineCount map to Len, negative lines to 0. The result is monotone in
// line.
func (r *Rope) LineStart(line int) int {
	if line <= 0 || r.root == nil {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}
	return offsetAfterBreak(r.root, line)
}

// offsetAfterBreak returns the rune offset just past the k-th newline,
// 1-based. Callers guarantee 1 <= k <= n.breaks.
func offsetAfterBreak(n *node, k int) int {
	if n.isLeaf() {
		off := 0
		for _, ch := range n.text {
			off++
			if ch == '\n' {
				k--
				if k == 0 {
					return off
				}
			}
		}
		return off
	}
	if k <= n.left.breaks {
		return offsetAfterBreak(n.left, k)
	}
	return n.left.runes + offsetAfterBreak(n.right, k-n.left.breaks)
}

// Line returns the text of line without its terminator, or "" when line
// is out of range.
func (r *Rope) Line(line int) string {
	start, end, ok := r.lineSpan(line)
	if !ok {
		return ""
	}
	return r.Slice(start, end)
}

// LineLen returns the rune length of line without its terminator, or 0
// when line is out of range.
func (r *Rope) LineLen(line int) int {
	start, end, ok := r.lineSpan(line)
	if !ok {
		return 0
	}
	return end - start
}

// lineSpan returns the rune offsets [start, end) of line's body.
func (r *Rope) lineSpan(line int) (start, end int, ok bool) {
	if line < 0 || line >= r.LineCount() {
		return 0, 0, false
	}
	start = r.LineStart(line)
	end = r.LineStart(line + 1)
	if line < r.LineCount()-1 {
		end--
	}
	return start, end, true
}

// ReplaceLine swaps the body of line for text in one structural splice,
// leaving the terminator and all other lines untouched. Out-of-range
// lines no-op.
func (r *Rope) ReplaceLine(line int, text string) {
	start, end, ok := r.lineSpan(line)
	if !ok {
		return
	}
	l, rest := split(r.root, start)
	_, right := split(rest, end-start)
	r.root = join(join(l, fromString(text)), right)
}

// Offset converts a position to a rune offset, clamping p into bounds.
func (r *Rope) Offset(p Pos) int {
	p = ClampPos(r, p)
	return r.LineStart(p.Line) + p.Col
}

// EndPos returns the position just past the last rune of the document.
func (r *Rope) EndPos() Pos {
	last := r.LineCount() - 1
	return Pos{Line: last, Col: r.LineLen(last)}
}
